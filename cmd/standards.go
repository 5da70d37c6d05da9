package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/momentum-ai/guidegen/internal/standards"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Browse the standards catalog",
}

var standardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all standards (optionally filtered by subject or grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetInt("grade")

		var listed []standards.Standard
		for _, s := range standards.All() {
			if subject != "" && !strings.EqualFold(string(s.Subject), subject) {
				continue
			}
			if grade != 0 && s.Grade != grade {
				continue
			}
			listed = append(listed, s)
		}
		if len(listed) == 0 {
			return fmt.Errorf("no standards match the given filters")
		}

		// Header.
		fmt.Printf("%-24s  %5s  %-22s  %-34s  %s\n",
			"ID", "Grade", "Subject", "Domain", "Code")
		fmt.Println(strings.Repeat("─", 110))

		for _, s := range listed {
			domain := s.Domain
			if len(domain) > 34 {
				domain = domain[:31] + "..."
			}
			fmt.Printf("%-24s  %5d  %-22s  %-34s  %s\n",
				s.ID, s.Grade, s.Subject, domain, s.Code)
		}

		fmt.Printf("\n%d standards\n", len(listed))
		return nil
	},
}

var standardsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one standard and its prerequisite chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		std, ok := standards.ByID(args[0])
		if !ok {
			return fmt.Errorf("standard %q not found", args[0])
		}

		fmt.Printf("ID:            %s\n", std.ID)
		fmt.Printf("Code:          %s\n", std.Code)
		fmt.Printf("Grade:         %d\n", std.Grade)
		fmt.Printf("Subject:       %s\n", std.Subject)
		fmt.Printf("Domain:        %s\n", std.Domain)
		fmt.Printf("Description:   %s\n", std.Description)
		fmt.Printf("Vocabulary:    %s\n", strings.Join(std.KeyVocabulary, ", "))
		fmt.Printf("Prerequisites: %s\n", strings.Join(std.Prerequisites, ", "))

		fmt.Println("\nExamples:")
		for _, ex := range std.Examples {
			fmt.Printf("  - %s\n", ex)
		}

		chain := standards.ResolveChain(std.ID)
		fmt.Println("\nLearning path:")
		for i, link := range chain {
			fmt.Printf("  %d. [%d] %s (%s)\n", i+1, link.Grade, link.Domain, link.ID)
		}
		return nil
	},
}

var standardsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the catalog for consistency problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := standards.Validate(); err != nil {
			return err
		}
		fmt.Printf("Catalog OK: %d standards\n", len(standards.All()))
		return nil
	},
}

func init() {
	standardsListCmd.Flags().String("subject", "", "Filter by subject (e.g. Mathematics)")
	standardsListCmd.Flags().Int("grade", 0, "Filter by grade level (1-12)")

	standardsCmd.AddCommand(standardsListCmd)
	standardsCmd.AddCommand(standardsShowCmd)
	standardsCmd.AddCommand(standardsVerifyCmd)
}
