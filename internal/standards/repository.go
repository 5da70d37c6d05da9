package standards

import (
	"slices"
	"strings"
)

// repository holds the catalog with precomputed indices.
type repository struct {
	standards []Standard
	byID      map[string]*Standard
}

// repo is the package-level repository singleton, built by init().
var repo *repository

func init() {
	repo = buildRepository(catalog)
}

// buildRepository constructs the repository and its ID index.
// The catalog is validated here so a malformed entry fails fast at startup.
func buildRepository(standards []Standard) *repository {
	if err := validateStandards(standards); err != nil {
		panic("standards catalog invalid: " + err.Error())
	}
	r := &repository{
		standards: standards,
		byID:      make(map[string]*Standard, len(standards)),
	}
	for i := range r.standards {
		r.byID[r.standards[i].ID] = &r.standards[i]
	}
	return r
}

// All returns every standard in the catalog in declaration order.
func All() []Standard {
	return slices.Clone(repo.standards)
}

// ByID returns a standard by its catalog key.
func ByID(id string) (Standard, bool) {
	s, ok := repo.byID[id]
	if !ok {
		return Standard{}, false
	}
	return *s, true
}

// Retrieve returns the standards matching the given grade and subject,
// narrowed by weak-area keyword overlap when weakAreas is non-empty.
//
// The weak-area filter keeps a standard when, for at least one weak-area
// string, a case-insensitive substring relationship holds in either
// direction between the weak-area text and the standard's domain,
// description, or any vocabulary term. A zero-result is a value, not an
// error: callers decide how to handle an unmatched topic.
func Retrieve(grade int, subject Subject, weakAreas []string) []Standard {
	var matched []Standard
	for _, s := range repo.standards {
		if s.Grade != grade || s.Subject != subject {
			continue
		}
		if len(weakAreas) > 0 && !matchesAnyWeakArea(s, weakAreas) {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}

// matchesAnyWeakArea reports whether any weak-area string overlaps the
// standard's domain, description, or vocabulary.
func matchesAnyWeakArea(s Standard, weakAreas []string) bool {
	domain := strings.ToLower(s.Domain)
	desc := strings.ToLower(s.Description)
	for _, area := range weakAreas {
		a := strings.TrimSpace(strings.ToLower(area))
		if a == "" {
			continue
		}
		if strings.Contains(domain, a) || strings.Contains(a, domain) {
			return true
		}
		if strings.Contains(desc, a) || strings.Contains(a, desc) {
			return true
		}
		for _, term := range s.KeyVocabulary {
			t := strings.ToLower(term)
			if strings.Contains(a, t) || strings.Contains(t, a) {
				return true
			}
		}
	}
	return false
}

// ResolveChain builds the prerequisite chain for a standard, ordered
// foundation first with the root standard last.
//
// The catalog is scanned in declaration order; each standard whose domain
// or description contains one of the root's declared prerequisite names
// (case-insensitive) is inserted at the front of the chain. A standard
// that satisfies several prerequisite names is inserted once per match;
// duplicates are preserved deliberately (see DESIGN.md).
//
// An unknown id yields an empty chain, not an error.
func ResolveChain(standardID string) []Standard {
	root, ok := repo.byID[standardID]
	if !ok {
		return nil
	}

	chain := []Standard{*root}
	for _, s := range repo.standards {
		domain := strings.ToLower(s.Domain)
		desc := strings.ToLower(s.Description)
		for _, prereq := range root.Prerequisites {
			p := strings.ToLower(prereq)
			if strings.Contains(domain, p) || strings.Contains(desc, p) {
				chain = append([]Standard{s}, chain...)
			}
		}
	}
	return chain
}
