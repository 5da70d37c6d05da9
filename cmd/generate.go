package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/momentum-ai/guidegen/internal/guide"
	"github.com/momentum-ai/guidegen/internal/llm"
	"github.com/momentum-ai/guidegen/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study guide for a weak area",
	Example: `  guidegen generate --subject Mathematics --topic limits --grade 11
  guidegen generate --subject Physics --topic "Newton's laws" --grade 10 --style visual --difficulty intermediate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		grade, _ := cmd.Flags().GetInt("grade")
		style, _ := cmd.Flags().GetString("style")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		student, _ := cmd.Flags().GetString("student")
		courseCode, _ := cmd.Flags().GetString("course-code")
		courseName, _ := cmd.Flags().GetString("course-name")
		offline, _ := cmd.Flags().GetBool("offline")
		asJSON, _ := cmd.Flags().GetBool("json")

		if subject == "" || topic == "" {
			return fmt.Errorf("--subject and --topic are required")
		}
		if grade == 0 {
			return fmt.Errorf("--grade is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		// A missing or misconfigured provider is not fatal: the service
		// runs the template pipeline without one.
		var provider llm.Provider
		if !offline {
			provider, err = llm.NewProviderFromEnv(ctx, s.EventRepo())
			if err != nil {
				fmt.Fprintf(os.Stderr, "note: no model provider available (%v), using template pipeline\n", err)
				provider = nil
			}
		}

		svc := guide.NewService(provider, s.EventRepo(), guide.DefaultConfig())
		params := guide.GenerationParams{
			Subject:       subject,
			WeakArea:      topic,
			Grade:         grade,
			LearningStyle: guide.ParseLearningStyle(style),
			Difficulty:    guide.ParseDifficulty(difficulty),
			StudentName:   student,
			CourseCode:    courseCode,
			CourseName:    courseName,
		}

		outcome := svc.Generate(ctx, params)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(outcome.Guide)
		}

		renderGuide(os.Stdout, outcome)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "", "Subject (Mathematics, Physics, English Language Arts)")
	generateCmd.Flags().StringP("topic", "t", "", "Weak area or topic to study")
	generateCmd.Flags().IntP("grade", "g", 0, "Grade level (1-12)")
	generateCmd.Flags().String("style", "reading", "Learning style (visual, auditory, kinesthetic, reading)")
	generateCmd.Flags().String("difficulty", "beginner", "Difficulty (beginner, intermediate, advanced)")
	generateCmd.Flags().String("student", "", "Student name for personalization")
	generateCmd.Flags().String("course-code", "", "Course code for context")
	generateCmd.Flags().String("course-name", "", "Course name for context")
	generateCmd.Flags().Bool("offline", false, "Skip the model provider and use the template pipeline")
	generateCmd.Flags().Bool("json", false, "Print the guide as JSON")
}
