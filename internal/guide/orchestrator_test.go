package guide

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentum-ai/guidegen/internal/llm"
)

func limitsParams() GenerationParams {
	return GenerationParams{
		Subject:       "Mathematics",
		WeakArea:      "limits",
		Grade:         11,
		LearningStyle: StyleVisual,
		Difficulty:    DifficultyBeginner,
		StudentName:   "Jordan",
	}
}

func TestGenerate_NoProviderTakesTemplatePath(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), limitsParams())

	require.Equal(t, SourceTemplate, outcome.Source)
	require.Equal(t, "no primary provider configured", outcome.FallbackReason)
	require.Equal(t, "Limits and Continuity: limits", outcome.Guide.Title)
	require.True(t, strings.HasPrefix(outcome.Guide.ID, "guide-"))
}

func TestGenerate_BeginnerGetsOneEasyProblem(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), limitsParams())

	problems := outcome.Guide.Content.PracticeProblems
	require.Len(t, problems, 1)
	require.Equal(t, "math-11-limits-001-easy-1", problems[0].ID)
	require.Equal(t, TierEasy, problems[0].Difficulty)

	// Visual learners get at least one video resource.
	var video bool
	for _, r := range outcome.Guide.Content.Resources {
		if r.Type == ResourceVideo {
			video = true
		}
	}
	require.True(t, video, "expected a video resource for a visual learner")
}

func TestGenerate_UnmatchedTopicYieldsGenericGuide(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), GenerationParams{
		Subject:       "Chemistry",
		WeakArea:      "stoichiometry",
		Grade:         9,
		LearningStyle: StyleReading,
		Difficulty:    DifficultyBeginner,
	})

	require.Equal(t, SourceGeneric, outcome.Source)
	require.Empty(t, outcome.Guide.Content.PracticeProblems)
	require.Len(t, outcome.Guide.Content.Resources, 1)
	require.Equal(t, "Khan Academy", outcome.Guide.Content.Resources[0].Title)
}

func TestGenerate_PrimarySuccess(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"title":    "Mastering Limits",
		"overview": "A short tour of limits.",
		"key_points": []string{
			"A limit describes the value a function approaches.",
		},
		"examples": []map[string]any{
			{"title": "Example 1", "description": "Evaluate a simple limit.", "solution": "Factor and cancel."},
		},
		"practice_problems": []map[string]any{
			{"id": "p1", "question": "Evaluate the limit.", "answer": "4", "difficulty": "easy", "hint": "Factor first."},
		},
		"resources": []map[string]any{
			{"type": "video", "title": "Limits intro", "url": "https://example.com"},
		},
	})
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), limitsParams())

	require.Equal(t, SourcePrimary, outcome.Source)
	require.Empty(t, outcome.FallbackReason)
	require.Equal(t, "Mastering Limits", outcome.Guide.Title)
	require.Equal(t, "limits", outcome.Guide.Topic)
	require.Len(t, outcome.Guide.Content.PracticeProblems, 1)
	require.Equal(t, 1, mock.CallCount())

	// The outbound request carries the structured-output schema.
	require.Equal(t, StudyGuideSchema, mock.Calls[0].Schema)
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("model overloaded")})
	svc := NewService(mock, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), limitsParams())

	require.Equal(t, SourceTemplate, outcome.Source)
	require.Contains(t, outcome.FallbackReason, "model overloaded")
	require.NotEmpty(t, outcome.Guide.Content.Overview)
}

func TestGenerate_MalformedPrimaryResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": `)})
	svc := NewService(mock, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), limitsParams())

	require.Equal(t, SourceTemplate, outcome.Source)
	require.Contains(t, outcome.FallbackReason, "parse primary response")
}

func TestGenerate_FallbackMatchesTemplateGuide(t *testing.T) {
	params := limitsParams()

	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	fellBack := NewService(mock, nil, DefaultConfig()).Generate(context.Background(), params)
	direct := NewService(nil, nil, DefaultConfig()).BuildTemplateGuide(params)

	require.Equal(t, direct.Guide.Title, fellBack.Guide.Title)
	require.Equal(t, direct.Guide.Content.KeyPoints, fellBack.Guide.Content.KeyPoints)
	require.Equal(t, direct.Guide.Content.Overview, fellBack.Guide.Content.Overview)
	require.Len(t, fellBack.Guide.Content.PracticeProblems, len(direct.Guide.Content.PracticeProblems))
}

func TestGenerate_NormalizesEnums(t *testing.T) {
	params := limitsParams()
	params.LearningStyle = LearningStyle("interpretive dance")
	params.Difficulty = Difficulty("impossible")

	svc := NewService(nil, nil, DefaultConfig())
	outcome := svc.Generate(context.Background(), params)

	require.Equal(t, SourceTemplate, outcome.Source)
	require.Equal(t, string(DifficultyBeginner), outcome.Guide.Difficulty)
	// Reading is the default style; its opener frames the overview.
	require.Contains(t, outcome.Guide.Content.Overview, styleOpeners[StyleReading])
}

func TestGenerate_NeverFails(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig())
	cases := []GenerationParams{
		{},
		{Subject: "Basket Weaving", WeakArea: "underwater", Grade: -3},
		{Subject: "Mathematics", WeakArea: "", Grade: 11},
		{Subject: "mathematics", WeakArea: "limits", Grade: 11},
	}
	for _, params := range cases {
		outcome := svc.Generate(context.Background(), params)
		require.NotEmpty(t, outcome.Guide.ID)
		require.NotEmpty(t, outcome.Guide.Title)
		require.NotEmpty(t, outcome.Guide.Content.Overview)
	}
}
