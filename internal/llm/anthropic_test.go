package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnthropicTestProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicGenerate(t *testing.T) {
	t.Run("drafts an intervention", func(t *testing.T) {
		p := newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":   "msg_01",
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "text", "text": `{"recommendation":"Revisit equivalent fractions with a number line."}`},
				},
				"model":       "claude-haiku-4-5-20251001",
				"stop_reason": "end_turn",
				"usage":       map[string]any{"input_tokens": 120, "output_tokens": 24},
			})
		})

		resp, err := p.Generate(context.Background(), Request{
			System:    "You are a math tutor's assistant.",
			Messages:  []Message{{Role: RoleUser, Content: "Concept: fractions.equivalence"}},
			MaxTokens: 300,
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"recommendation":"Revisit equivalent fractions with a number line."}`, string(resp.Content))
		assert.Equal(t, Usage{InputTokens: 120, OutputTokens: 24, TotalTokens: 144}, resp.Usage)
		assert.Equal(t, "end", resp.StopReason)
	})

	t.Run("rate limited", func(t *testing.T) {
		p := newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
		})

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "x"}},
			MaxTokens: 100,
		})
		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		p := newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
		})

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "x"}},
			MaxTokens: 100,
		})
		var unavail *ErrProviderUnavailable
		require.ErrorAs(t, err, &unavail)
	})
}

func TestAnthropicStopReason(t *testing.T) {
	assert.Equal(t, "end", anthropicStopReason("end_turn"))
	assert.Equal(t, "max_tokens", anthropicStopReason("max_tokens"))
	assert.Equal(t, "end", anthropicStopReason("stop_sequence"))
}

func TestAnthropicModelNames(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-opus-4-1-20250805", resolveModel("claude-opus", anthropicModels))
	// Literal model IDs pass through.
	assert.Equal(t, "claude-sonnet-4-5", resolveModel("claude-sonnet-4-5", anthropicModels))
}

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	require.Error(t, err)
}
