package service

import (
	"context"
	"time"

	"lawpick-backend/classifier"
	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/models"
)

// DiagnosisService scores the risk self-diagnosis questionnaire
type DiagnosisService struct {
	pipeline
}

// DiagnosisServiceOption is a functional option for DiagnosisService
type DiagnosisServiceOption func(*DiagnosisService)

// DiagnosisWithGenerator sets the generative upstream
func DiagnosisWithGenerator(g llm.Generator) DiagnosisServiceOption {
	return func(s *DiagnosisService) {
		s.generator = g
	}
}

// DiagnosisWithTimeout bounds each upstream call
func DiagnosisWithTimeout(d time.Duration) DiagnosisServiceOption {
	return func(s *DiagnosisService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// DiagnosisWithLogger sets the logger
func DiagnosisWithLogger(l logger.Logger) DiagnosisServiceOption {
	return func(s *DiagnosisService) {
		s.logger = l.Named("diagnosis")
	}
}

// DiagnosisWithMetrics sets the metrics collectors
func DiagnosisWithMetrics(m *metrics.Metrics) DiagnosisServiceOption {
	return func(s *DiagnosisService) {
		s.metrics = m
	}
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(opts ...DiagnosisServiceOption) *DiagnosisService {
	s := &DiagnosisService{pipeline: newPipeline()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiagnoseResult is the scored questionnaire and where it came from
type DiagnoseResult struct {
	Result models.DiagnosisResult
	Source string
}

// Diagnose never fails; missing answers add no risk
func (s *DiagnosisService) Diagnose(ctx context.Context, answers models.DiagnosisAnswers) *DiagnoseResult {
	raw, err := s.generate(ctx, opDiagnosis, llm.DiagnosisRequest(answers))
	if err == nil {
		var r models.DiagnosisResult
		if r, err = llm.ParseDiagnosis(raw); err == nil {
			return &DiagnoseResult{Result: classifier.GuardDiagnosis(r, answers), Source: metrics.SourceAI}
		}
	}

	s.fallback(opDiagnosis, err, logger.Int("answers", len(answers)))
	return &DiagnoseResult{Result: classifier.ScoreDiagnosis(answers), Source: metrics.SourceRules}
}
