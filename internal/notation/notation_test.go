package notation

import (
	"strings"
	"testing"
)

func TestFormat_Limits(t *testing.T) {
	got := Format("lim(x→2) of (x² - 4)/(x - 2)")
	if !strings.Contains(got, `$\lim_{x \to 2}$`) {
		t.Errorf("missing limit markup in %q", got)
	}
	if !strings.Contains(got, `$x^2$`) {
		t.Errorf("missing superscript markup in %q", got)
	}
}

func TestFormat_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"derivative", "Find dy/dx for y = x³", `Find $\frac{dy}{dx}$ for y = $x^3$`},
		{"limit at infinity", "lim(x→∞) of 1/x", `$\lim_{x \to \infty}$ of 1/x`},
		{"integral", "∫ x² dx", `$\int $x^2$\, dx$`},
		{"sqrt grouped", "√(x + 1)", `$\sqrt{x + 1}$`},
		{"sqrt bare", "√16", `$\sqrt{16}$`},
		{"inequality", "x ≤ 5", `x $\le$ 5`},
		{"theta", "sin(θ)", `sin($\theta$)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_PassThrough(t *testing.T) {
	inputs := []string{
		"",
		"Write a thesis statement arguing for or against school uniforms",
		"Solve 3x + 7 = 22",
	}
	for _, in := range inputs {
		if got := Format(in); got != in {
			t.Errorf("Format(%q) = %q, want unchanged", in, got)
		}
	}
}
