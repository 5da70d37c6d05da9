package guide

import (
	"strings"
	"testing"

	"github.com/momentum-ai/guidegen/internal/standards"
)

func limitsStandard(t *testing.T) standards.Standard {
	t.Helper()
	std, ok := standards.ByID("math-11-limits-001")
	if !ok {
		t.Fatal("math-11-limits-001 missing from catalog")
	}
	return std
}

func TestBuildOverview_StyleOpeners(t *testing.T) {
	std := limitsStandard(t)

	tests := []struct {
		style    LearningStyle
		fragment string
	}{
		{StyleVisual, "Picture"},
		{StyleAuditory, "aloud"},
		{StyleKinesthetic, "by doing"},
		{StyleReading, "written step"},
		// Unrecognized styles use the reading phrasing.
		{LearningStyle("telepathic"), "written step"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got := buildOverview(std, tt.style)
			if !strings.Contains(got, tt.fragment) {
				t.Errorf("overview for %q missing %q:\n%s", tt.style, tt.fragment, got)
			}
			if !strings.Contains(got, std.Code) {
				t.Errorf("overview missing standard code %q", std.Code)
			}
			if !strings.Contains(got, std.Description) {
				t.Error("overview missing description")
			}
			if !strings.Contains(got, "functions, graphs") {
				t.Error("overview missing prerequisite listing")
			}
		})
	}
}

func TestBuildKeyPoints_Order(t *testing.T) {
	std := limitsStandard(t)
	chain := standards.ResolveChain(std.ID)

	points := buildKeyPoints(std, chain)
	if len(points) != 4 {
		t.Fatalf("expected 4 key points, got %d: %v", len(points), points)
	}
	if !strings.HasPrefix(points[0], "Foundation:") {
		t.Errorf("point 0 should be Foundation, got %q", points[0])
	}
	if !strings.HasPrefix(points[1], "Main Concept:") {
		t.Errorf("point 1 should be Main Concept, got %q", points[1])
	}
	if !strings.HasPrefix(points[2], "Key Terms:") {
		t.Errorf("point 2 should be Key Terms, got %q", points[2])
	}
	if !strings.HasPrefix(points[3], "Georgia Standard:") {
		t.Errorf("point 3 should be Georgia Standard, got %q", points[3])
	}
}

func TestBuildKeyPoints_NoFoundationForRootOnlyChain(t *testing.T) {
	std, ok := standards.ByID("math-6-ratios-001")
	if !ok {
		t.Fatal("math-6-ratios-001 missing from catalog")
	}
	chain := standards.ResolveChain(std.ID)

	points := buildKeyPoints(std, chain)
	for _, p := range points {
		if strings.HasPrefix(p, "Foundation:") {
			t.Errorf("unexpected Foundation point for root-only chain: %q", p)
		}
	}
}

func TestBuildKeyPoints_KeyTermsCapped(t *testing.T) {
	std := limitsStandard(t)
	std.KeyVocabulary = []string{"a", "b", "c", "d", "e", "f", "g"}

	points := buildKeyPoints(std, nil)
	for _, p := range points {
		if strings.HasPrefix(p, "Key Terms: ") {
			terms := strings.Split(strings.TrimPrefix(p, "Key Terms: "), ", ")
			if len(terms) != 5 {
				t.Errorf("expected 5 key terms, got %d: %v", len(terms), terms)
			}
			return
		}
	}
	t.Error("no Key Terms point found")
}

func TestBuildExamples_CappedAtThree(t *testing.T) {
	std := limitsStandard(t)
	std.Examples = []string{"e1", "e2", "e3", "e4", "e5"}

	examples := buildExamples(std, StyleReading)
	if len(examples) != 3 {
		t.Errorf("expected 3 examples, got %d", len(examples))
	}

	std.Examples = []string{"only one"}
	examples = buildExamples(std, StyleReading)
	if len(examples) != 1 {
		t.Errorf("expected 1 example, got %d", len(examples))
	}
}

func TestBuildExamples_NotationFormatted(t *testing.T) {
	std := limitsStandard(t)
	examples := buildExamples(std, StyleVisual)

	// First limits example contains lim(x→2) and x², both of which must
	// be rewritten to display markup.
	if !strings.Contains(examples[0].Description, `$\lim_{x \to 2}$`) {
		t.Errorf("description not formatted: %q", examples[0].Description)
	}
	if !strings.Contains(examples[0].Description, `$x^2$`) {
		t.Errorf("superscript not formatted: %q", examples[0].Description)
	}
}

func TestBuildSolution_StyleFraming(t *testing.T) {
	std := limitsStandard(t)

	tests := []struct {
		style    LearningStyle
		fragment string
	}{
		{StyleVisual, "Sketch"},
		{StyleAuditory, "out loud"},
		{StyleKinesthetic, "by hand"},
		{StyleReading, "in writing"},
		{LearningStyle("unknown"), "in writing"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got := buildSolution("What is a limit?", std, tt.style)
			if !strings.Contains(got, tt.fragment) {
				t.Errorf("solution for %q missing %q:\n%s", tt.style, tt.fragment, got)
			}
			if strings.Count(got, "Step ") != 5 {
				t.Errorf("expected 5 steps, got %d", strings.Count(got, "Step "))
			}
		})
	}
}

func TestBuildSolution_EquationClosing(t *testing.T) {
	std := limitsStandard(t)

	withEq := buildSolution("Solve x + 2 = 5", std, StyleReading)
	if !strings.Contains(withEq, "Substitute your answer back") {
		t.Errorf("equation example should get verification closing:\n%s", withEq)
	}

	withoutEq := buildSolution("Describe continuity", std, StyleReading)
	if !strings.Contains(withoutEq, "Summarize the idea") {
		t.Errorf("non-equation example should get summary closing:\n%s", withoutEq)
	}
}
