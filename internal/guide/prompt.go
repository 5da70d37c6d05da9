package guide

import (
	"fmt"
	"strings"

	"github.com/momentum-ai/guidegen/internal/standards"
)

const systemPrompt = `You are an academic support tutor creating a personalized study guide for a student.

Rules:
- Ground every section in the Georgia standards provided. Cite the standard code in the overview and key points.
- Adapt the narrative framing to the student's learning style (visual, auditory, kinesthetic, or reading). The facts stay the same; only the framing changes.
- Include at most 3 worked examples, each with a step-by-step solution a struggling student can follow.
- Match practice problems to the requested difficulty: beginner gets easy problems, intermediate gets easy and medium, advanced gets medium and hard.
- Never provide final numeric answers to practice problems; give hints instead so the student works them out.
- Use plain language appropriate for the student's grade level. Keep math in plain text.
- Recommend only well-known, free external resources.`

// buildUserMessage constructs the primary-generation user message from the
// request params and the retrieved standards.
func buildUserMessage(params GenerationParams, retrieved []standards.Standard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s\n", params.StudentName)
	fmt.Fprintf(&b, "Subject: %s\n", params.Subject)
	fmt.Fprintf(&b, "Weak area: %s\n", params.WeakArea)
	fmt.Fprintf(&b, "Grade: %d\n", params.Grade)
	fmt.Fprintf(&b, "Learning style: %s\n", params.LearningStyle)
	fmt.Fprintf(&b, "Difficulty: %s\n", params.Difficulty)
	if params.CourseCode != "" {
		fmt.Fprintf(&b, "Course: %s", params.CourseCode)
		if params.CourseName != "" {
			fmt.Fprintf(&b, " (%s)", params.CourseName)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nMatching Georgia standards:\n")
	if len(retrieved) == 0 {
		b.WriteString("None found for this grade, subject, and weak area.\n")
	}
	for _, s := range retrieved {
		fmt.Fprintf(&b, "- %s (%s): %s\n", s.Code, s.Domain, s.Description)
		if len(s.KeyVocabulary) > 0 {
			fmt.Fprintf(&b, "  Key vocabulary: %s\n", strings.Join(s.KeyVocabulary, ", "))
		}
		if len(s.Prerequisites) > 0 {
			fmt.Fprintf(&b, "  Prerequisites: %s\n", strings.Join(s.Prerequisites, ", "))
		}
	}

	return b.String()
}
