package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures a single outbound model request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored model request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// GenerationEventData captures one guide generation request end to end:
// which path produced the guide and, when the primary path failed, why.
// The fallback reason is recorded here for observability only; it is
// never surfaced to the caller as an error.
type GenerationEventData struct {
	RequestID      string
	GuideID        string
	Subject        string
	Topic          string
	Grade          int
	LearningStyle  string
	Difficulty     string
	Source         string // "primary", "template", or "generic"
	FallbackReason string
	LatencyMs      int64
}

// GenerationEvent is a stored guide generation event.
type GenerationEvent struct {
	ID        int64
	Timestamp time.Time
	GenerationEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendGeneration records a guide generation event.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryLLMEvents returns recent model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// QueryGenerations returns recent generation events, newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)
}
