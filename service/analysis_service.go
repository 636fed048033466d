package service

import (
	"context"
	"time"
	"unicode/utf8"

	"lawpick-backend/classifier"
	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/models"
)

// AnalysisService turns a narrative into a Verdict. The generative upstream
// drafts the verdict and the rule-based classifier corrects it, or replaces
// it entirely when the upstream fails.
type AnalysisService struct {
	pipeline
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithGenerator sets the generative upstream; without one every
// verdict comes from the rules
func AnalysisWithGenerator(g llm.Generator) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.generator = g
	}
}

// AnalysisWithTimeout bounds each upstream call
func AnalysisWithTimeout(d time.Duration) AnalysisServiceOption {
	return func(s *AnalysisService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(l logger.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.logger = l.Named("analysis")
	}
}

// AnalysisWithMetrics sets the metrics collectors
func AnalysisWithMetrics(m *metrics.Metrics) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.metrics = m
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{pipeline: newPipeline()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeResult is the verdict plus where it came from
type AnalyzeResult struct {
	Verdict models.Verdict
	// Source is metrics.SourceAI or metrics.SourceRules
	Source   string
	Analysis *classifier.Analysis
}

// Analyze never fails: every narrative yields a verdict. Inputs stopped by
// the gate get the sentinel verdict without an upstream call.
func (s *AnalysisService) Analyze(ctx context.Context, n models.CaseNarrative) *AnalyzeResult {
	a := classifier.Analyze(n)
	result := &AnalyzeResult{
		Verdict:  a.Verdict,
		Source:   metrics.SourceRules,
		Analysis: a,
	}

	if !a.Sentinel() {
		if v, err := s.draft(ctx, n); err != nil {
			s.fallback(opAnalyze, err,
				logger.Int("content_runes", utf8.RuneCountInString(n.Content)),
				logger.String("category", string(a.Classification.Category)),
			)
		} else {
			if found := classifier.Contradictions(v, a); len(found) > 0 {
				s.logger.Info("corrected upstream verdict",
					logger.Any("contradictions", found),
					logger.String("sub_type", a.Classification.SubType),
				)
			}
			result.Verdict = classifier.Correct(v, a)
			result.Source = metrics.SourceAI
		}
	}

	s.metrics.ObserveClassification(string(a.Classification.Category), result.Source)
	return result
}

func (s *AnalysisService) draft(ctx context.Context, n models.CaseNarrative) (models.Verdict, error) {
	raw, err := s.generate(ctx, opAnalyze, llm.AnalysisRequest(n))
	if err != nil {
		return models.Verdict{}, err
	}
	return llm.ParseVerdict(raw)
}
