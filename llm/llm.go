// Package llm wraps the generative upstream used to draft verdicts, letters
// and diagnosis results, and validates what it returns before anything
// downstream trusts it.
package llm

import (
	"context"
	"errors"
)

// Generator produces raw model text for a prompt pair
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// Request is one generation call
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	// JSON asks the upstream to answer with a JSON document only
	JSON bool
	// History holds earlier conversation turns, oldest first
	History []Turn
}

// Turn roles as the Gemini API names them
const (
	TurnUser  = "user"
	TurnModel = "model"
)

// Turn is one prior message of a conversation
type Turn struct {
	Role string
	Text string
}

var (
	ErrUpstreamUnavailable = errors.New("generative upstream unavailable")
	ErrUnparsableOutput    = errors.New("upstream output is not a JSON object")
	ErrSchemaViolation     = errors.New("upstream output does not match the expected schema")
)

// Fallback reasons, used as metric labels
const (
	ReasonDisabled    = "disabled"
	ReasonTimeout     = "timeout"
	ReasonUnavailable = "unavailable"
	ReasonUnparsable  = "unparsable"
	ReasonSchema      = "schema"
)

// FallbackReason maps an upstream error to a fallback reason label
func FallbackReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, ErrSchemaViolation):
		return ReasonSchema
	case errors.Is(err, ErrUnparsableOutput):
		return ReasonUnparsable
	}
	return ReasonUnavailable
}
