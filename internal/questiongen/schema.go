package questiongen

import (
	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
)

// ExamSchema defines the JSON schema for a generated question batch.
var ExamSchema = &llm.Schema{
	Name:        "exam-questions",
	Description: "A batch of multiple-choice exam questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": itemSchema(),
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

func itemSchema() map[string]any {
	difficulties := make([]any, len(question.Difficulties))
	for i, d := range question.Difficulties {
		difficulties[i] = string(d)
	}
	levels := make([]any, len(question.CognitiveLevels))
	for i, l := range question.CognitiveLevels {
		levels[i] = string(l)
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Short identifier unique within the batch, e.g. q1",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "One of the requested subjects, spelled exactly as given",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": difficulties,
			},
			"cognitive_level": map[string]any{
				"type":        "string",
				"enum":        levels,
				"description": "Bloom's taxonomy level the question targets",
			},
			"stem": map[string]any{
				"type":        "string",
				"description": "The question text shown to the student",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 answer options in display order",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     question.OptionCount - 1,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences on why the correct option is right",
			},
		},
		"required":             []any{"id", "subject", "difficulty", "cognitive_level", "stem", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	}
}
