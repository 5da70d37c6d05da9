package guide

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// LearningStyle selects the narrative framing of generated content.
// It never changes factual content.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// ParseLearningStyle normalizes a raw style string. Unrecognized values
// fall back to StyleReading so malformed input degrades instead of failing.
func ParseLearningStyle(s string) LearningStyle {
	switch LearningStyle(s) {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading:
		return LearningStyle(s)
	default:
		return StyleReading
	}
}

// Difficulty is the requested overall difficulty of a study guide.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a raw difficulty string. Unrecognized values
// fall back to DifficultyBeginner, the narrowest tier-inclusion behavior.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s)
	default:
		return DifficultyBeginner
	}
}

// ProblemTier is the difficulty bucket of a single practice problem.
type ProblemTier string

const (
	TierEasy   ProblemTier = "easy"
	TierMedium ProblemTier = "medium"
	TierHard   ProblemTier = "hard"
)

// GenerationParams is the transient input for one guide generation request.
// It is constructed per request and discarded once the guide is produced.
type GenerationParams struct {
	Subject       string
	WeakArea      string
	Grade         int
	LearningStyle LearningStyle
	Difficulty    Difficulty
	StudentName   string
	CourseCode    string // optional
	CourseName    string // optional
}

// StudyGuide is the output artifact. Immutable after construction;
// ownership transfers entirely to the caller.
type StudyGuide struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	GeneratedAt   time.Time `json:"generated_at"`
	BasedOnSurvey bool      `json:"based_on_survey"`
	Content       Content   `json:"content"`
}

// Content is the study guide body.
type Content struct {
	Overview         string     `json:"overview"`
	KeyPoints        []string   `json:"key_points"`
	Examples         []Example  `json:"examples"`
	PracticeProblems []Problem  `json:"practice_problems"`
	Resources        []Resource `json:"resources"`
}

// Example is a worked example with a style-dependent solution narrative.
type Example struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

// Problem is a single practice problem. The answer field is a static
// placeholder: the system scaffolds practice, it does not solve problems.
type Problem struct {
	ID         string      `json:"id"`
	Question   string      `json:"question"`
	Difficulty ProblemTier `json:"difficulty"`
	Hint       string      `json:"hint"`
	Answer     string      `json:"answer"`
}

// ResourceType classifies an external resource reference.
type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceArticle  ResourceType = "article"
	ResourceExercise ResourceType = "exercise"
	ResourceTool     ResourceType = "tool"
)

// Resource is a curated external reference.
type Resource struct {
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Duration    string       `json:"duration,omitempty"`
}

// newGuideID returns a fresh time-based guide id. ULIDs are time-ordered,
// so ids sort by creation time while staying unique across concurrent
// requests (DefaultEntropy is safe for concurrent readers).
func newGuideID(now time.Time) string {
	return "guide-" + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}
