package standards

// Subject is a curriculum subject area.
type Subject string

const (
	SubjectMathematics Subject = "Mathematics"
	SubjectPhysics     Subject = "Physics"
	SubjectEnglish     Subject = "English"
)

// AllSubjects returns all subjects covered by the catalog, in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectMathematics,
		SubjectPhysics,
		SubjectEnglish,
	}
}

// Standard represents a single curriculum competency entry.
type Standard struct {
	// ID is the stable catalog key, e.g. "math-11-limits-001".
	ID string

	// Grade is the school grade level (1-12).
	Grade int

	// Subject is the subject area this standard belongs to.
	Subject Subject

	// Domain is the human-readable topic cluster, e.g. "Limits and Continuity".
	Domain string

	// Code is the external Georgia Standards of Excellence identifier.
	Code string

	// Description is a one-sentence statement of the competency.
	Description string

	// Examples are prompts illustrating the competency. At least one.
	Examples []string

	// Prerequisites are free-text prerequisite topic names, not IDs.
	// Chains are resolved later by text overlap against the catalog.
	Prerequisites []string

	// KeyVocabulary lists the terms a student should know, in display order.
	KeyVocabulary []string
}
