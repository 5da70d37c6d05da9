package guide

import (
	"fmt"
	"strings"

	"github.com/momentum-ai/guidegen/internal/notation"
	"github.com/momentum-ai/guidegen/internal/standards"
)

// maxExamples caps how many of a standard's examples appear in a guide.
const maxExamples = 3

// maxKeyTerms caps the vocabulary listed in the "Key Terms" point.
const maxKeyTerms = 5

// styleOpeners are the fixed overview opening clauses, keyed by style.
var styleOpeners = map[LearningStyle]string{
	StyleVisual:      "Picture this topic as a map you can draw:",
	StyleAuditory:    "Read this aloud and talk yourself through it:",
	StyleKinesthetic: "This is a topic you learn best by doing:",
	StyleReading:     "Work through this topic one written step at a time:",
}

// styleTips are the fixed multi-line tip blocks, keyed by style.
var styleTips = map[LearningStyle]string{
	StyleVisual: "Study tip for visual learners:\n" +
		"- Sketch a diagram or graph for every problem before solving it.\n" +
		"- Use color to separate given values from what you need to find.\n" +
		"- Turn the key vocabulary into a labeled concept map.",
	StyleAuditory: "Study tip for auditory learners:\n" +
		"- Explain each step out loud as if teaching a classmate.\n" +
		"- Record yourself summarizing the concept and play it back.\n" +
		"- Turn definitions into rhythmic phrases you can repeat.",
	StyleKinesthetic: "Study tip for kinesthetic learners:\n" +
		"- Work every example by hand; never just read a solution.\n" +
		"- Use physical objects or gestures to model the relationships.\n" +
		"- Take a short walk between problems to reset, then redo the hardest one.",
	StyleReading: "Study tip for reading/writing learners:\n" +
		"- Rewrite the main concept in your own words.\n" +
		"- Keep a running list of definitions and worked steps.\n" +
		"- After each example, write one sentence on what changed from the last.",
}

// buildContent assembles the content block for a standard: overview,
// key points, and worked examples adapted to the requested learning style.
func buildContent(std standards.Standard, chain []standards.Standard, params GenerationParams) Content {
	style := params.LearningStyle

	return Content{
		Overview:         buildOverview(std, style),
		KeyPoints:        buildKeyPoints(std, chain),
		Examples:         buildExamples(std, style),
		PracticeProblems: buildProblems(std, params.Difficulty),
		Resources:        buildResources(std, style, standards.Subject(params.Subject)),
	}
}

// buildOverview produces the templated overview paragraph.
func buildOverview(std standards.Standard, style LearningStyle) string {
	opener, ok := styleOpeners[style]
	if !ok {
		opener = styleOpeners[StyleReading]
	}
	tip, ok := styleTips[style]
	if !ok {
		tip = styleTips[StyleReading]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s.\n\n", opener, std.Domain)
	fmt.Fprintf(&b, "This guide covers Georgia standard %s: %s\n", std.Code, std.Description)
	if len(std.Prerequisites) > 0 {
		fmt.Fprintf(&b, "Before starting, you should be comfortable with: %s.\n", strings.Join(std.Prerequisites, ", "))
	}
	b.WriteString("\n")
	b.WriteString(tip)
	return b.String()
}

// buildKeyPoints produces the ordered key-points list. Order is fixed;
// points are never reordered or scored.
func buildKeyPoints(std standards.Standard, chain []standards.Standard) []string {
	var points []string

	// Foundation line only when the chain holds more than the root.
	if len(chain) > 1 {
		domains := make([]string, 0, len(chain)-1)
		for _, s := range chain[:len(chain)-1] {
			domains = append(domains, s.Domain)
		}
		points = append(points, "Foundation: builds on "+strings.Join(domains, ", "))
	}

	points = append(points, "Main Concept: "+std.Description)

	if len(std.KeyVocabulary) > 0 {
		terms := std.KeyVocabulary
		if len(terms) > maxKeyTerms {
			terms = terms[:maxKeyTerms]
		}
		points = append(points, "Key Terms: "+strings.Join(terms, ", "))
	}

	points = append(points, fmt.Sprintf("Georgia Standard: %s (%s)", std.Code, std.Domain))
	return points
}

// buildExamples converts the standard's first examples into worked
// examples with style-dispatched solution narratives.
func buildExamples(std standards.Standard, style LearningStyle) []Example {
	n := len(std.Examples)
	if n > maxExamples {
		n = maxExamples
	}

	examples := make([]Example, 0, n)
	for i := 0; i < n; i++ {
		raw := std.Examples[i]
		examples = append(examples, Example{
			Title:       fmt.Sprintf("Example %d", i+1),
			Description: notation.Format(raw),
			Solution:    buildSolution(raw, std, style),
		})
	}
	return examples
}

// buildSolution dispatches on learning style to one of four fixed 5-step
// narrative frames. Unknown styles use the reading frame.
func buildSolution(raw string, std standards.Standard, style LearningStyle) string {
	problem := notation.Format(raw)

	var steps []string
	switch style {
	case StyleVisual:
		steps = []string{
			"Step 1: Sketch what the problem describes: " + problem,
			"Step 2: Mark the given information directly on your sketch.",
			fmt.Sprintf("Step 3: Identify which part of %s the picture shows.", std.Domain),
			"Step 4: Solve one region of the sketch at a time, updating labels as you go.",
			"Step 5: Check that your final answer matches the shape of your sketch.",
		}
	case StyleAuditory:
		steps = []string{
			"Step 1: Read the problem out loud: " + problem,
			"Step 2: Say what is given and what is asked, in your own words.",
			fmt.Sprintf("Step 3: Talk through which rule from %s applies and why.", std.Domain),
			"Step 4: Narrate each operation as you perform it.",
			"Step 5: State the final answer aloud as a full sentence.",
		}
	case StyleKinesthetic:
		steps = []string{
			"Step 1: Copy the problem by hand: " + problem,
			"Step 2: Physically cross out information you have used and circle what remains.",
			fmt.Sprintf("Step 3: Work the %s technique on scratch paper, one motion at a time.", std.Domain),
			"Step 4: Rework the step that felt least certain.",
			"Step 5: Cover your work and redo the problem from memory.",
		}
	default:
		steps = []string{
			"Step 1: Read the problem carefully: " + problem,
			"Step 2: Write down what is given and what must be found.",
			fmt.Sprintf("Step 3: Note which definition or rule from %s applies.", std.Domain),
			"Step 4: Carry out the solution in writing, justifying each line.",
			"Step 5: Reread your solution and confirm it answers the original question.",
		}
	}

	closing := "Summarize the idea this example illustrates in one sentence."
	if strings.Contains(raw, "=") {
		// Equation heuristic: the example involves solving or verifying.
		closing = "Substitute your answer back into the equation to verify it."
	}

	return strings.Join(steps, "\n") + "\n" + closing
}
