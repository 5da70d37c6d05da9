package guide

import "github.com/momentum-ai/guidegen/internal/llm"

// StudyGuideSchema defines the JSON schema for primary guide generation
// responses. Any response that fails this schema is a failure signal and
// triggers the template fallback.
var StudyGuideSchema = &llm.Schema{
	Name:        "study-guide",
	Description: "A personalized study guide with overview, key points, worked examples, practice problems, and resources",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Guide title in the form '<topic area>: <weak area>'",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "An overview paragraph adapted to the student's learning style, referencing the relevant Georgia standard",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Ordered key points: foundations, main concept, key terms, standard reference",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"solution":    map[string]any{"type": "string"},
					},
					"required": []any{"title", "description", "solution"},
				},
				"description": "Up to 3 worked examples with step-by-step solutions in the student's learning style",
			},
			"practice_problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":         map[string]any{"type": "string"},
						"question":   map[string]any{"type": "string"},
						"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
						"hint":       map[string]any{"type": "string"},
						"answer":     map[string]any{"type": "string"},
					},
					"required": []any{"question", "difficulty"},
				},
				"description": "Practice problems matching the requested difficulty",
			},
			"resources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":        map[string]any{"type": "string", "enum": []any{"video", "article", "exercise", "tool"}},
						"title":       map[string]any{"type": "string"},
						"url":         map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
					},
					"required": []any{"type", "title", "url"},
				},
				"description": "Curated external resources suited to the learning style and subject",
			},
		},
		"required": []any{"title", "overview", "key_points", "examples", "practice_problems", "resources"},
	},
}
