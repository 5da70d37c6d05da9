package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/momentum-ai/guidegen/internal/llm"
	"github.com/momentum-ai/guidegen/internal/standards"
	"github.com/momentum-ai/guidegen/internal/store"
)

// Source identifies which path produced a guide.
type Source string

const (
	// SourcePrimary means the external generation call succeeded.
	SourcePrimary Source = "primary"
	// SourceTemplate means the local template pipeline built the guide.
	SourceTemplate Source = "template"
	// SourceGeneric means no standard matched and the generic guide was used.
	SourceGeneric Source = "generic"
)

// Outcome is the explicit two-branch result of a generation request.
// FallbackReason is set whenever the primary attempt failed; it is kept
// for observability and never reaches the caller as an error.
type Outcome struct {
	Guide          StudyGuide
	Source         Source
	FallbackReason string
}

// Config controls primary-attempt generation.
type Config struct {
	// MaxTokens caps the length of the primary response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service orchestrates study-guide generation: retrieval, one primary
// attempt against the external generation capability, and the local
// template fallback. A Service holds no per-request state; concurrent
// Generate calls are fully independent.
type Service struct {
	provider llm.Provider    // nil disables the primary path
	events   store.EventRepo // nil disables event logging
	cfg      Config
}

// NewService creates a generation service. Both provider and events may
// be nil: without a provider every request takes the template path, and
// without an event repo nothing is logged.
func NewService(provider llm.Provider, events store.EventRepo, cfg Config) *Service {
	return &Service{provider: provider, events: events, cfg: cfg}
}

// Generate produces a StudyGuide for the given params. It never returns
// an error: every defined input, including unmatched topics and primary
// generation failures, terminates in a usable guide.
func (s *Service) Generate(ctx context.Context, params GenerationParams) Outcome {
	start := time.Now()
	requestID := uuid.NewString()

	// Normalize enums so malformed input degrades instead of failing.
	params.LearningStyle = ParseLearningStyle(string(params.LearningStyle))
	params.Difficulty = ParseDifficulty(string(params.Difficulty))

	retrieved := standards.Retrieve(params.Grade, standards.Subject(params.Subject), []string{params.WeakArea})

	outcome := s.generate(ctx, params, retrieved)
	s.logGeneration(ctx, requestID, params, outcome, time.Since(start))
	return outcome
}

// generate runs the primary attempt and, on any failure, the local
// template pipeline. The two paths are mutually exclusive: the fallback
// only begins once the primary attempt has definitively failed.
func (s *Service) generate(ctx context.Context, params GenerationParams, retrieved []standards.Standard) Outcome {
	if s.provider != nil {
		guide, err := s.tryPrimary(ctx, params, retrieved)
		if err == nil {
			return Outcome{Guide: guide, Source: SourcePrimary}
		}
		return s.fallback(params, err.Error())
	}
	return s.fallback(params, "no primary provider configured")
}

// primaryOutput is the raw primary response before assembly.
type primaryOutput struct {
	Title            string     `json:"title"`
	Overview         string     `json:"overview"`
	KeyPoints        []string   `json:"key_points"`
	Examples         []Example  `json:"examples"`
	PracticeProblems []Problem  `json:"practice_problems"`
	Resources        []Resource `json:"resources"`
}

// tryPrimary issues the single outbound generation request. No retries
// happen here; the provider middleware owns retry and timeout policy, and
// any error it surfaces is enough to fall back.
func (s *Service) tryPrimary(ctx context.Context, params GenerationParams, retrieved []standards.Standard) (StudyGuide, error) {
	ctx = llm.WithPurpose(ctx, "guide-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(params, retrieved)},
		},
		Schema:      StudyGuideSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return StudyGuide{}, fmt.Errorf("primary generation: %w", err)
	}

	var out primaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return StudyGuide{}, fmt.Errorf("parse primary response: %w", err)
	}

	now := time.Now()
	return StudyGuide{
		ID:            newGuideID(now),
		Title:         out.Title,
		Subject:       params.Subject,
		Topic:         params.WeakArea,
		Difficulty:    string(params.Difficulty),
		GeneratedAt:   now,
		BasedOnSurvey: true,
		Content: Content{
			Overview:         out.Overview,
			KeyPoints:        out.KeyPoints,
			Examples:         out.Examples,
			PracticeProblems: out.PracticeProblems,
			Resources:        out.Resources,
		},
	}, nil
}

// fallback re-runs retrieval and builds the guide locally. Retrieval is a
// pure function over static data, so this is idempotent with the first
// pass.
func (s *Service) fallback(params GenerationParams, reason string) Outcome {
	retrieved := standards.Retrieve(params.Grade, standards.Subject(params.Subject), []string{params.WeakArea})
	now := time.Now()

	if len(retrieved) == 0 {
		return Outcome{
			Guide:          buildGenericGuide(params, now),
			Source:         SourceGeneric,
			FallbackReason: reason,
		}
	}

	// The first retrieved standard (declaration order, unranked) is primary.
	std := retrieved[0]
	chain := standards.ResolveChain(std.ID)

	guide := StudyGuide{
		ID:            newGuideID(now),
		Title:         fmt.Sprintf("%s: %s", std.Domain, params.WeakArea),
		Subject:       params.Subject,
		Topic:         params.WeakArea,
		Difficulty:    string(params.Difficulty),
		GeneratedAt:   now,
		BasedOnSurvey: true,
		Content:       buildContent(std, chain, params),
	}

	return Outcome{Guide: guide, Source: SourceTemplate, FallbackReason: reason}
}

// logGeneration records the request outcome. Logging failures are
// reported to stderr and never affect the returned guide.
func (s *Service) logGeneration(ctx context.Context, requestID string, params GenerationParams, outcome Outcome, elapsed time.Duration) {
	if s.events == nil {
		return
	}
	data := store.GenerationEventData{
		RequestID:      requestID,
		GuideID:        outcome.Guide.ID,
		Subject:        params.Subject,
		Topic:          params.WeakArea,
		Grade:          params.Grade,
		LearningStyle:  string(params.LearningStyle),
		Difficulty:     string(params.Difficulty),
		Source:         string(outcome.Source),
		FallbackReason: outcome.FallbackReason,
		LatencyMs:      elapsed.Milliseconds(),
	}
	if err := s.events.AppendGeneration(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}

// BuildTemplateGuide runs the local template pipeline directly, skipping
// the primary attempt. Used by callers that want deterministic output.
func (s *Service) BuildTemplateGuide(params GenerationParams) Outcome {
	params.LearningStyle = ParseLearningStyle(string(params.LearningStyle))
	params.Difficulty = ParseDifficulty(string(params.Difficulty))
	return s.fallback(params, "")
}
