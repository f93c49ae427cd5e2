package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var draftOK = MockResponse{Content: json.RawMessage(`{"recommendation":"ok"}`)}

func TestRetryGenerate(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		mock := NewMockProvider(draftOK)
		p := WithRetry(mock, fastRetryConfig())

		resp, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"recommendation":"ok"}`, string(resp.Content))
		assert.Equal(t, 1, mock.CallCount())
	})

	t.Run("transient failure then success", func(t *testing.T) {
		mock := NewMockProvider(
			MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
			draftOK,
		)
		p := WithRetry(mock, fastRetryConfig())

		_, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, 2, mock.CallCount())
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
		mock := NewMockProvider(down, down, down)
		p := WithRetry(mock, fastRetryConfig())

		_, err := p.Generate(context.Background(), Request{})
		require.Error(t, err)
		assert.Equal(t, 3, mock.CallCount())
	})

	t.Run("truncation is terminal", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
		p := WithRetry(mock, fastRetryConfig())

		_, err := p.Generate(context.Background(), Request{})
		var maxTok *ErrMaxTokensExceeded
		require.ErrorAs(t, err, &maxTok)
		assert.Equal(t, 1, mock.CallCount())
	})

	t.Run("invalid output retried once", func(t *testing.T) {
		bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}
		mock := NewMockProvider(bad, bad, draftOK)
		p := WithRetry(mock, fastRetryConfig())

		_, err := p.Generate(context.Background(), Request{})
		require.Error(t, err)
		// One retry only; the third scripted response is never reached.
		assert.Equal(t, 2, mock.CallCount())
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
		mock := NewMockProvider(down, down, draftOK)
		p := WithRetry(mock, fastRetryConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Generate(ctx, Request{})
		require.Error(t, err)
	})

	t.Run("rate limit honors retry-after", func(t *testing.T) {
		mock := NewMockProvider(
			MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
			draftOK,
		)
		p := WithRetry(mock, fastRetryConfig())

		_, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, 2, mock.CallCount())
	})
}

func TestRetryModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	assert.Equal(t, "mock", p.ModelID())
}
