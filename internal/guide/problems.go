package guide

import (
	"fmt"

	"github.com/momentum-ai/guidegen/internal/notation"
	"github.com/momentum-ai/guidegen/internal/standards"
)

// answerPlaceholder is the static answer field for every problem. The
// pipeline scaffolds practice; it never computes answers.
const answerPlaceholder = "Work this out, then check with your teacher or an answer key."

// buildProblems emits a difficulty-appropriate set of practice problems.
// Tier inclusion is cumulative: beginner gets easy; intermediate gets easy
// and medium; advanced gets medium and hard. Problem ids derive from the
// standard id, tier, and sequence so regeneration is reproducible.
func buildProblems(std standards.Standard, difficulty Difficulty) []Problem {
	var problems []Problem
	seq := 1

	add := func(tier ProblemTier, exampleIdx int, hint string) {
		problems = append(problems, Problem{
			ID:         fmt.Sprintf("%s-%s-%d", std.ID, tier, seq),
			Question:   problemQuestion(std, exampleIdx, tier),
			Difficulty: tier,
			Hint:       hint,
			Answer:     answerPlaceholder,
		})
		seq++
	}

	if difficulty == DifficultyBeginner || difficulty == DifficultyIntermediate {
		add(TierEasy, 0, easyHint(std))
	}
	if difficulty == DifficultyIntermediate || difficulty == DifficultyAdvanced {
		add(TierMedium, 1, "Think about the core idea of "+std.Domain+".")
	}
	if difficulty == DifficultyAdvanced {
		add(TierHard, 2, "Combine everything you know about "+std.Domain+".")
	}

	return problems
}

// problemQuestion sources the question from the standard's nth example,
// with a generic fallback when the standard has fewer examples.
func problemQuestion(std standards.Standard, idx int, tier ProblemTier) string {
	if idx < len(std.Examples) {
		return notation.Format(std.Examples[idx])
	}
	return fmt.Sprintf("Write and solve your own %s problem about %s.", tier, std.Domain)
}

// easyHint points at the first vocabulary term when one exists.
func easyHint(std standards.Standard) string {
	if len(std.KeyVocabulary) > 0 {
		return fmt.Sprintf("Start from the definition of %q.", std.KeyVocabulary[0])
	}
	return "Start from the definition in the main concept."
}
