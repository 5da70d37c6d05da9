package guide

import (
	"fmt"
	"time"
)

// buildGenericGuide produces a minimal guide for topics with no matching
// standard in the catalog. The pipeline never fails outright for an
// unmatched topic: the student gets general study guidance plus a single
// broad resource instead of an error.
func buildGenericGuide(params GenerationParams, now time.Time) StudyGuide {
	topic := params.WeakArea

	overview := fmt.Sprintf(
		"This is a general study guide for %s in %s. "+
			"We couldn't match this topic to a specific Georgia standard, "+
			"so start with the fundamentals below and ask your teacher which "+
			"standard this topic falls under.",
		topic, params.Subject)

	return StudyGuide{
		ID:            newGuideID(now),
		Title:         fmt.Sprintf("%s: %s", params.Subject, topic),
		Subject:       params.Subject,
		Topic:         topic,
		Difficulty:    string(params.Difficulty),
		GeneratedAt:   now,
		BasedOnSurvey: true,
		Content: Content{
			Overview: overview,
			KeyPoints: []string{
				"Break the topic into smaller pieces and master them one at a time.",
				"Collect two or three worked examples and study how each step follows from the last.",
				fmt.Sprintf("Ask your teacher for the %s standard that covers %s.", params.Subject, topic),
			},
			Examples: []Example{
				{
					Title:       "Getting started",
					Description: fmt.Sprintf("Find one solved problem about %s in your textbook or class notes.", topic),
					Solution: "Step 1: Copy the problem and its solution by hand.\n" +
						"Step 2: Cover the solution and attempt the problem yourself.\n" +
						"Step 3: Compare your attempt line by line and note where they differ.",
				},
			},
			PracticeProblems: []Problem{},
			Resources: []Resource{
				{
					Type:        ResourceVideo,
					Title:       "Khan Academy",
					URL:         "https://www.khanacademy.org/",
					Description: fmt.Sprintf("Search Khan Academy for %q to find free lessons and practice.", topic),
				},
			},
		},
	}
}
