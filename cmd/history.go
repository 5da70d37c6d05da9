package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/momentum-ai/guidegen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent guide generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		source, _ := cmd.Flags().GetString("source")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryGenerations(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query generations: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No guides generated yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-22s  %-20s  %5s  %-12s  %-8s  %-7s  %s\n",
			"Timestamp", "Subject", "Topic", "Grade", "Style", "Source", "Ms", "Fallback Reason")
		fmt.Println(strings.Repeat("─", 120))

		for _, e := range events {
			if source != "" && e.Source != source {
				continue
			}
			topic := e.Topic
			if len(topic) > 20 {
				topic = topic[:17] + "..."
			}
			fmt.Printf("%-19s  %-22s  %-20s  %5d  %-12s  %-8s  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Subject,
				topic,
				e.Grade,
				e.LearningStyle,
				e.Source,
				e.LatencyMs,
				e.FallbackReason,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of generations to show")
	historyCmd.Flags().String("source", "", "Filter by source (primary, template, generic)")
}
