package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelNames(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.5-flash-lite", resolveModel("gemini-flash-lite", geminiModels))
	assert.Equal(t, "gemini-2.5-pro", resolveModel("gemini-pro", geminiModels))
	// Literal model IDs pass through.
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash", geminiModels))
}

func TestToGeminiSchema(t *testing.T) {
	schema := toGeminiSchema(map[string]any{
		"type":        "object",
		"description": "One concrete next step",
		"properties": map[string]any{
			"recommendation": map[string]any{"type": "string", "minLength": 1},
			"confidence":     map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			"focusAtoms": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"recommendation", "confidence"},
	})

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, "One concrete next step", schema.Description)
	assert.ElementsMatch(t, []string{"recommendation", "confidence"}, schema.Required)

	require.Len(t, schema.Properties, 3)
	assert.Equal(t, genai.TypeString, schema.Properties["recommendation"].Type)
	assert.Equal(t, []string{"low", "medium", "high"}, schema.Properties["confidence"].Enum)
	assert.Equal(t, genai.TypeArray, schema.Properties["focusAtoms"].Type)
	require.NotNil(t, schema.Properties["focusAtoms"].Items)
	assert.Equal(t, genai.TypeString, schema.Properties["focusAtoms"].Items.Type)
}

func TestGeminiTypeMapping(t *testing.T) {
	assert.Equal(t, genai.TypeInteger, geminiType("integer"))
	assert.Equal(t, genai.TypeNumber, geminiType("number"))
	assert.Equal(t, genai.TypeBoolean, geminiType("boolean"))
	// Unknown types fall back to string.
	assert.Equal(t, genai.TypeString, geminiType("null"))
}
