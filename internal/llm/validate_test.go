package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSchema is a cut-down prediction narrative: a headline, up to three
// factors and an optional confidence level.
func testSchema() *Schema {
	return &Schema{
		Name:        "test-narrative",
		Description: "Short explanation of a usage prediction",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string", "minLength": 1},
				"factors": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 3,
				},
				"confidence": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			},
			"required":             []any{"headline", "factors"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"headline":"Likely user","factors":["Income","Education"],"confidence":"high"}`, false},
		{"optional omitted", `{"headline":"Likely user","factors":[]}`, false},
		{"missing factors", `{"headline":"Likely user"}`, true},
		{"factor not a string", `{"headline":"Likely user","factors":[4,6]}`, true},
		{"too many factors", `{"headline":"x","factors":["Income","Education","Age","Parent"]}`, true},
		{"unknown confidence", `{"headline":"x","factors":[],"confidence":"certain"}`, true},
		{"extra property", `{"headline":"x","factors":[],"probability":0.7}`, true},
		{"empty headline", `{"headline":"","factors":[]}`, true},
		{"malformed", `{headline: Likely user}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, string(invalid.Content))
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestValidateResponse_BadSchemaIsInvalidResponse(t *testing.T) {
	schema := &Schema{
		Name:       "test-broken",
		Definition: map[string]any{"type": 5},
	}
	var invalid *ErrInvalidResponse
	require.ErrorAs(t, validateResponse(schema, json.RawMessage(`{}`)), &invalid)
}

func TestCompileSchema_CachedByName(t *testing.T) {
	schema := &Schema{
		Name:       "test-cached",
		Definition: map[string]any{"type": "object"},
	}
	first, err := compileSchema(schema)
	require.NoError(t, err)
	second, err := compileSchema(schema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
