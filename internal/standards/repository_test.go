package standards

import "testing"

func TestRetrieve_AllStandardsReachable(t *testing.T) {
	// Every catalog entry must be retrievable by its own grade+subject
	// with no weak-area filter.
	for _, s := range All() {
		results := Retrieve(s.Grade, s.Subject, nil)
		if !containsID(results, s.ID) {
			t.Errorf("Retrieve(%d, %q, nil) missing %q", s.Grade, s.Subject, s.ID)
		}
	}
}

func TestRetrieve_VocabularyNarrowing(t *testing.T) {
	// A weak area equal to a vocabulary term must keep the standard.
	for _, s := range All() {
		for _, term := range s.KeyVocabulary {
			results := Retrieve(s.Grade, s.Subject, []string{term})
			if !containsID(results, s.ID) {
				t.Errorf("Retrieve(%d, %q, [%q]) missing %q", s.Grade, s.Subject, term, s.ID)
			}
		}
	}
}

func TestRetrieve_ExactGradeMatch(t *testing.T) {
	// No fuzzy grade matching: grade 10 must not return grade 11 standards.
	for _, s := range Retrieve(10, SubjectMathematics, nil) {
		if s.Grade != 10 {
			t.Errorf("got grade %d standard %q, want only grade 10", s.Grade, s.ID)
		}
	}
}

func TestRetrieve_LimitsScenario(t *testing.T) {
	results := Retrieve(11, SubjectMathematics, []string{"limits"})
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(results))
	}
	if results[0].ID != "math-11-limits-001" {
		t.Errorf("expected math-11-limits-001, got %q", results[0].ID)
	}
}

func TestRetrieve_BidirectionalSubstring(t *testing.T) {
	tests := []struct {
		name     string
		weakArea string
		wantID   string
	}{
		// Weak area contains a vocabulary term.
		{"weak area contains term", "trouble with limit problems", "math-11-limits-001"},
		// Domain contains the weak-area text.
		{"domain contains weak area", "continuity", "math-11-limits-001"},
		// Case-insensitive.
		{"case insensitive", "LIMITS", "math-11-limits-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Retrieve(11, SubjectMathematics, []string{tt.weakArea})
			if !containsID(results, tt.wantID) {
				t.Errorf("Retrieve with weak area %q missing %q", tt.weakArea, tt.wantID)
			}
		})
	}
}

func TestRetrieve_NoMatchIsEmptyNotError(t *testing.T) {
	// Filter that eliminates all candidates returns an empty slice.
	results := Retrieve(11, SubjectMathematics, []string{"photosynthesis"})
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}

	// Unknown grade+subject pairing likewise.
	results = Retrieve(9, Subject("Chemistry"), nil)
	if len(results) != 0 {
		t.Errorf("expected no Chemistry standards, got %d", len(results))
	}
}

func TestRetrieve_DeclarationOrder(t *testing.T) {
	results := Retrieve(11, SubjectMathematics, nil)
	if len(results) < 2 {
		t.Fatalf("expected at least 2 grade-11 math standards, got %d", len(results))
	}
	if results[0].ID != "math-11-functions-001" || results[1].ID != "math-11-limits-001" {
		t.Errorf("unexpected order: %q, %q", results[0].ID, results[1].ID)
	}
}

func TestResolveChain_RootLast(t *testing.T) {
	chain := ResolveChain("math-11-limits-001")
	if len(chain) == 0 {
		t.Fatal("expected non-empty chain")
	}
	if chain[len(chain)-1].ID != "math-11-limits-001" {
		t.Errorf("root must be last, got %q", chain[len(chain)-1].ID)
	}
	// "functions" and "graphs" both match the functions standard, and
	// "functions" also matches the quadratics domain.
	if !containsID(chain, "math-11-functions-001") {
		t.Error("chain missing math-11-functions-001")
	}
	if !containsID(chain, "math-9-quadratics-001") {
		t.Error("chain missing math-9-quadratics-001")
	}
}

func TestResolveChain_DuplicatesPreserved(t *testing.T) {
	// math-11-functions-001 matches both "functions" (domain) and
	// "graphs" (domain), so it appears twice. Accepted quirk.
	chain := ResolveChain("math-11-limits-001")
	count := 0
	for _, s := range chain {
		if s.ID == "math-11-functions-001" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected math-11-functions-001 twice in chain, got %d", count)
	}
}

func TestResolveChain_UnknownID(t *testing.T) {
	chain := ResolveChain("nope-0")
	if len(chain) != 0 {
		t.Errorf("expected empty chain for unknown id, got %d entries", len(chain))
	}
}

func TestResolveChain_NoPrerequisiteMatches(t *testing.T) {
	// Prerequisite names that match nothing yield a chain of just the root.
	chain := ResolveChain("math-6-ratios-001")
	if len(chain) != 1 {
		t.Fatalf("expected chain of 1, got %d", len(chain))
	}
	if chain[0].ID != "math-6-ratios-001" {
		t.Errorf("expected root only, got %q", chain[0].ID)
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("math-11-limits-001")
	if !ok {
		t.Fatal("expected to find math-11-limits-001")
	}
	if s.Domain != "Limits and Continuity" {
		t.Errorf("unexpected domain %q", s.Domain)
	}
	if _, ok := ByID("missing"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("catalog should be valid: %v", err)
	}
}

func containsID(standards []Standard, id string) bool {
	for _, s := range standards {
		if s.ID == id {
			return true
		}
	}
	return false
}
