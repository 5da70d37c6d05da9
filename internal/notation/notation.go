// Package notation rewrites plain-text math shorthand into delimited
// display markup ($...$ inline). Rules are applied in a fixed order, each
// operating on the already-transformed string. Text with no matching
// pattern passes through unchanged. Re-applying the formatter to its own
// output is out of contract.
package notation

import (
	"regexp"
	"strings"
)

// rule is a single ordered substitution.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules are applied first to last. Literal Unicode replacements run after
// the regex rules so markup produced above is cleaned up too (e.g. the ∞
// captured inside a limit subscript).
var rules = []rule{
	// lim(x→2) → $\lim_{x \to 2}$
	{regexp.MustCompile(`lim\((\w+)\s*→\s*([^()\s]+)\)`), `$$\lim_{${1} \to ${2}}$$`},
	// Derivatives: dy/dx → $\frac{dy}{dx}$
	{regexp.MustCompile(`\bd([a-z])/d([a-z])\b`), `$$\frac{d${1}}{d${2}}$$`},
	// Integrals: ∫ f(x) dx → $\int f(x)\, dx$
	{regexp.MustCompile(`∫\s*(.+?)\s*d([a-z])\b`), `$$\int ${1}\, d${2}$$`},
	// Square roots: √(x + 1) or √x → $\sqrt{...}$
	{regexp.MustCompile(`√\(([^)]+)\)`), `$$\sqrt{${1}}$$`},
	{regexp.MustCompile(`√(\w+)`), `$$\sqrt{${1}}$$`},
	// Superscripts: x² → $x^2$, x³ → $x^3$
	{regexp.MustCompile(`(\w)²`), `$$${1}^2$$`},
	{regexp.MustCompile(`(\w)³`), `$$${1}^3$$`},
}

// literals are simple symbol substitutions applied after the regex rules.
var literals = [][2]string{
	{"∞", `\infty`},
	{"≤", `$\le$`},
	{"≥", `$\ge$`},
	{"≠", `$\ne$`},
	{"π", `$\pi$`},
	{"θ", `$\theta$`},
}

// Format converts known math shorthand in text to display markup.
// It is a total, pure function: unmatched input is returned unchanged.
func Format(text string) string {
	out := text
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	for _, l := range literals {
		out = strings.ReplaceAll(out, l[0], l[1])
	}
	return out
}
