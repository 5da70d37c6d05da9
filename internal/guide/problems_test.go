package guide

import (
	"strings"
	"testing"
)

func TestBuildProblems_TierInclusion(t *testing.T) {
	std := limitsStandard(t)

	tests := []struct {
		difficulty Difficulty
		wantTiers  []ProblemTier
	}{
		{DifficultyBeginner, []ProblemTier{TierEasy}},
		{DifficultyIntermediate, []ProblemTier{TierEasy, TierMedium}},
		{DifficultyAdvanced, []ProblemTier{TierMedium, TierHard}},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			problems := buildProblems(std, tt.difficulty)
			if len(problems) != len(tt.wantTiers) {
				t.Fatalf("expected %d problems, got %d", len(tt.wantTiers), len(problems))
			}
			for i, tier := range tt.wantTiers {
				if problems[i].Difficulty != tier {
					t.Errorf("problem %d: expected tier %q, got %q", i, tier, problems[i].Difficulty)
				}
			}
		})
	}
}

func TestBuildProblems_Monotonicity(t *testing.T) {
	std := limitsStandard(t)
	b := len(buildProblems(std, DifficultyBeginner))
	i := len(buildProblems(std, DifficultyIntermediate))
	a := len(buildProblems(std, DifficultyAdvanced))
	if a < i || i < b {
		t.Errorf("tier counts not monotonic: beginner=%d intermediate=%d advanced=%d", b, i, a)
	}
}

func TestBuildProblems_DeterministicIDs(t *testing.T) {
	std := limitsStandard(t)

	first := buildProblems(std, DifficultyIntermediate)
	second := buildProblems(std, DifficultyIntermediate)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("problem ids not reproducible: %q vs %q", first[i].ID, second[i].ID)
		}
	}
	if first[0].ID != "math-11-limits-001-easy-1" {
		t.Errorf("unexpected id %q", first[0].ID)
	}
	if first[1].ID != "math-11-limits-001-medium-2" {
		t.Errorf("unexpected id %q", first[1].ID)
	}
}

func TestBuildProblems_QuestionsFromExamples(t *testing.T) {
	std := limitsStandard(t)
	problems := buildProblems(std, DifficultyAdvanced)

	// Medium from 2nd example, hard from 3rd.
	if !strings.Contains(problems[0].Question, "continuous") {
		t.Errorf("medium question should derive from 2nd example, got %q", problems[0].Question)
	}
	if !strings.Contains(problems[1].Question, `\infty`) {
		t.Errorf("hard question should derive from formatted 3rd example, got %q", problems[1].Question)
	}
}

func TestBuildProblems_GenericFallbackQuestion(t *testing.T) {
	std := limitsStandard(t)
	std.Examples = []string{"only one"}

	problems := buildProblems(std, DifficultyAdvanced)
	// 2nd and 3rd examples are missing, so both questions fall back.
	for _, p := range problems {
		if !strings.Contains(p.Question, "your own") {
			t.Errorf("expected generic fallback question, got %q", p.Question)
		}
	}
}

func TestBuildProblems_Hints(t *testing.T) {
	std := limitsStandard(t)
	problems := buildProblems(std, DifficultyIntermediate)

	// Easy hint references the first vocabulary term.
	if !strings.Contains(problems[0].Hint, `"limit"`) {
		t.Errorf("easy hint should name the first vocabulary term, got %q", problems[0].Hint)
	}
	// Medium hint references the domain.
	if !strings.Contains(problems[1].Hint, std.Domain) {
		t.Errorf("medium hint should name the domain, got %q", problems[1].Hint)
	}

	// No vocabulary: easy hint falls back.
	std.KeyVocabulary = nil
	problems = buildProblems(std, DifficultyBeginner)
	if !strings.Contains(problems[0].Hint, "main concept") {
		t.Errorf("expected fallback hint, got %q", problems[0].Hint)
	}
}

func TestBuildProblems_AnswerIsPlaceholder(t *testing.T) {
	std := limitsStandard(t)
	for _, p := range buildProblems(std, DifficultyAdvanced) {
		if p.Answer != answerPlaceholder {
			t.Errorf("answer must be the static placeholder, got %q", p.Answer)
		}
	}
}
