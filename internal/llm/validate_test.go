package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// draftSchema mirrors the shape the insight advisor asks for.
func draftSchema() *Schema {
	return &Schema{
		Name:        "draft-under-test",
		Description: "One concrete next step",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"recommendation": map[string]any{"type": "string", "minLength": 1},
				"confidence":     map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
				"focusAtoms": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"recommendation"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "full draft",
			raw:  `{"recommendation":"Revisit equivalent fractions.","confidence":"high","focusAtoms":["fractions.equivalence"]}`,
		},
		{
			name: "optional fields omitted",
			raw:  `{"recommendation":"Slow the pace down."}`,
		},
		{
			name:    "missing required field",
			raw:     `{"confidence":"low"}`,
			wantErr: true,
		},
		{
			name:    "empty recommendation",
			raw:     `{"recommendation":""}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			raw:     `{"recommendation":42}`,
			wantErr: true,
		},
		{
			name:    "enum violation",
			raw:     `{"recommendation":"x","confidence":"certain"}`,
			wantErr: true,
		},
		{
			name:    "wrong array item type",
			raw:     `{"recommendation":"x","focusAtoms":[1,2]}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(draftSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, json.RawMessage(tt.raw), invalid.Content)
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`anything, even non-JSON`)))
}

func TestCompiledSchemaReused(t *testing.T) {
	schema := draftSchema()
	schema.Name = "draft-cache-check"

	first, err := compiledFor(schema)
	require.NoError(t, err)
	second, err := compiledFor(schema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
