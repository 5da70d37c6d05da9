package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/momentum-ai/guidegen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "guidegen",
	Short: "Standards-grounded study guide generator",
	Long: "Guidegen builds personalized study guides for high-school students, " +
		"grounded in the Georgia Standards of Excellence and adapted to each " +
		"student's learning style and level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GUIDEGEN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GUIDEGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("GUIDEGEN_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
