package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/momentum-ai/guidegen/internal/guide"
	"github.com/momentum-ai/guidegen/internal/ui/theme"
)

// renderGuide writes a styled terminal rendering of a generated guide.
func renderGuide(w io.Writer, outcome guide.Outcome) {
	g := outcome.Guide

	fmt.Fprintln(w, theme.Title.Render(g.Title))
	fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%s · %s · %s",
		g.Subject, g.Difficulty, g.ID)))
	if outcome.Source != guide.SourcePrimary {
		fmt.Fprintln(w, theme.Warn.Render("Built from the local template pipeline."))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, theme.Section.Render("Overview"))
	fmt.Fprintln(w, theme.Body.Render(g.Content.Overview))
	fmt.Fprintln(w)

	if len(g.Content.KeyPoints) > 0 {
		fmt.Fprintln(w, theme.Section.Render("Key Points"))
		for _, kp := range g.Content.KeyPoints {
			fmt.Fprintln(w, theme.Body.Render("  • "+kp))
		}
		fmt.Fprintln(w)
	}

	for _, ex := range g.Content.Examples {
		fmt.Fprintln(w, theme.Section.Render(ex.Title))
		fmt.Fprintln(w, theme.Body.Render(ex.Description))
		fmt.Fprintln(w, theme.Hint.Render(indent(ex.Solution, "  ")))
		fmt.Fprintln(w)
	}

	if len(g.Content.PracticeProblems) > 0 {
		fmt.Fprintln(w, theme.Section.Render("Practice Problems"))
		for i, p := range g.Content.PracticeProblems {
			fmt.Fprintf(w, "%s %s\n",
				theme.Badge.Render(fmt.Sprintf("%d", i+1)),
				theme.Body.Render(p.Question))
			fmt.Fprintln(w, theme.Hint.Render("   hint: "+p.Hint))
		}
		fmt.Fprintln(w)
	}

	if len(g.Content.Resources) > 0 {
		fmt.Fprintln(w, theme.Section.Render("Resources"))
		for _, r := range g.Content.Resources {
			fmt.Fprintf(w, "  %s %s\n",
				theme.Badge.Render(string(r.Type)),
				theme.Body.Render(r.Title))
			fmt.Fprintln(w, theme.Hint.Render("     "+r.URL))
		}
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
