package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("requires key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		require.Error(t, err)
	})

	t.Run("slugs pass through untouched", func(t *testing.T) {
		for _, slug := range []string{
			"google/gemini-2.0-flash-exp",
			"anthropic/claude-3-haiku",
			"meta-llama/llama-3-8b",
		} {
			p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: slug})
			require.NoError(t, err)
			assert.Equal(t, slug, p.ModelID())
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://proxy.example.com/v1",
		})
		require.NoError(t, err)
		require.NotNil(t, p)
	})
}
