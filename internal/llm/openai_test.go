package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func openAICompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-01",
		"object":  "chat.completion",
		"created": 1756300000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{"prompt_tokens": 90, "completion_tokens": 18, "total_tokens": 108},
	}
}

func TestOpenAIGenerate(t *testing.T) {
	t.Run("drafts an intervention", func(t *testing.T) {
		var gotReq openai.ChatCompletionRequest
		p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openAICompletion(
				`{"recommendation":"Re-run the ratio warm-up before new material."}`, "stop"))
		})

		resp, err := p.Generate(context.Background(), Request{
			System:    "You are a math tutor's assistant.",
			Messages:  []Message{{Role: RoleUser, Content: "Concept: ratios.unit-rate"}},
			MaxTokens: 300,
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"recommendation":"Re-run the ratio warm-up before new material."}`, string(resp.Content))
		assert.Equal(t, Usage{InputTokens: 90, OutputTokens: 18, TotalTokens: 108}, resp.Usage)
		assert.Equal(t, "end", resp.StopReason)

		// The system prompt travels as the leading system message.
		require.NotEmpty(t, gotReq.Messages)
		assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
		assert.Equal(t, "You are a math tutor's assistant.", gotReq.Messages[0].Content)
	})

	t.Run("truncated response", func(t *testing.T) {
		p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openAICompletion(`{"recommendation":"Re`, "length"))
		})

		resp, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "x"}},
			MaxTokens: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "max_tokens", resp.StopReason)
	})

	t.Run("rate limited", func(t *testing.T) {
		p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"type":"tokens","message":"slow down","code":"rate_limit_exceeded"}}`))
		})

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "x"}},
			MaxTokens: 100,
		})
		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"type":"server_error","message":"boom"}}`))
		})

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "x"}},
			MaxTokens: 100,
		})
		var unavail *ErrProviderUnavailable
		require.ErrorAs(t, err, &unavail)
	})
}

func TestNewOpenAIProvider(t *testing.T) {
	t.Run("requires key", func(t *testing.T) {
		_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"})
		require.Error(t, err)
	})

	t.Run("friendly names and pass-through", func(t *testing.T) {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", p.ModelID())

		p, err = NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4.1-mini"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4.1-mini", p.ModelID())
	})

	t.Run("base URL override", func(t *testing.T) {
		p, err := NewOpenAIProvider(OpenAIConfig{
			APIKey:  "test-key",
			Model:   "gpt",
			BaseURL: "https://openrouter.ai/api/v1",
		})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", p.ModelID())
	})
}
