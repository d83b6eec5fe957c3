package insight

import "github.com/abhisek/lipredict/internal/llm"

// NarrativeSchema defines the JSON schema for prediction explanations.
var NarrativeSchema = &llm.Schema{
	Name:        "prediction-insight",
	Description: "A short plain-language explanation of a LinkedIn usage prediction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line verdict (5-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentences explaining the prediction in plain language",
			},
			"factors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-4 short notes, one per influential input, strongest first",
			},
		},
		"required":             []any{"headline", "summary", "factors"},
		"additionalProperties": false,
	},
}
