package standards

import (
	"fmt"
	"strings"
)

// validateStandards performs structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateStandards(standards []Standard) error {
	var errs []string

	idSet := make(map[string]bool, len(standards))
	for _, s := range standards {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate standard ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if s.ID == "" {
			errs = append(errs, "standard with empty ID")
			continue
		}
		if s.Grade < 1 || s.Grade > 12 {
			errs = append(errs, fmt.Sprintf("standard %q: grade %d out of range 1-12", s.ID, s.Grade))
		}
		if s.Subject == "" {
			errs = append(errs, fmt.Sprintf("standard %q: empty subject", s.ID))
		}
		if s.Domain == "" {
			errs = append(errs, fmt.Sprintf("standard %q: empty domain", s.ID))
		}
		if s.Code == "" {
			errs = append(errs, fmt.Sprintf("standard %q: empty code", s.ID))
		}
		if s.Description == "" {
			errs = append(errs, fmt.Sprintf("standard %q: empty description", s.ID))
		}
		if len(s.Examples) == 0 {
			errs = append(errs, fmt.Sprintf("standard %q: needs at least one example", s.ID))
		}
		for i, ex := range s.Examples {
			if strings.TrimSpace(ex) == "" {
				errs = append(errs, fmt.Sprintf("standard %q: example %d is blank", s.ID, i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the loaded catalog for structural issues.
func Validate() error {
	return validateStandards(repo.standards)
}
