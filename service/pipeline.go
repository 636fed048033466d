package service

import (
	"context"
	"errors"
	"time"

	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
)

// DefaultUpstreamTimeout bounds a generative call when no timeout is configured
const DefaultUpstreamTimeout = 8 * time.Second

// Upstream operations, used as log and metric labels
const (
	opAnalyze   = "analyze"
	opLetter    = "letter"
	opDiagnosis = "diagnosis"
	opChat      = "chat"
)

var errGeneratorDisabled = errors.New("generative upstream disabled")

// pipeline is the generative first stage shared by every service. Any
// failure it reports is recovered by the caller with the rule-based result.
type pipeline struct {
	generator llm.Generator
	timeout   time.Duration
	logger    logger.Logger
	metrics   *metrics.Metrics
}

func newPipeline() pipeline {
	return pipeline{
		timeout: DefaultUpstreamTimeout,
		logger:  logger.NewNop(),
	}
}

// generate makes exactly one timeout-bounded upstream call
func (p *pipeline) generate(ctx context.Context, op string, req *llm.Request) (string, error) {
	if p.generator == nil {
		return "", errGeneratorDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	raw, err := p.generator.Generate(ctx, req)
	p.metrics.ObserveUpstream(op, time.Since(start))
	return raw, err
}

// fallback records that the rule-based result replaced the upstream one
func (p *pipeline) fallback(op string, err error, fields ...logger.Field) {
	if errors.Is(err, errGeneratorDisabled) {
		p.metrics.ObserveFallback(op, llm.ReasonDisabled)
		return
	}

	reason := llm.FallbackReason(err)
	fields = append(fields,
		logger.String("operation", op),
		logger.String("reason", reason),
		logger.Err(err),
	)
	p.logger.Warn("generative upstream failed, using rule-based result", fields...)
	p.metrics.ObserveFallback(op, reason)
}
