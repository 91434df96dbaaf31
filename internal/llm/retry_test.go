package llm_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/llm/llmtest"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	fake := llmtest.New(
		llmtest.Reply{Err: errors.New("503 unavailable")},
		llmtest.Reply{Err: errors.New("503 unavailable")},
		llmtest.Reply{Text: "ok"},
	)
	client := llm.WithRetry(fake, 3, time.Millisecond)

	text, err := client.GenerateContent(context.Background(), "hi", llm.TierLite)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, fake.Calls())
}

func TestWithRetry_GivesUp(t *testing.T) {
	fake := llmtest.Failing(errors.New("boom"))
	client := llm.WithRetry(fake, 2, time.Millisecond)

	_, err := client.GenerateJSON(context.Background(), "hi", llm.TierAdvanced)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 2, fake.Calls())
}

func TestWithRetry_NoRetryOnMissingKey(t *testing.T) {
	fake := llmtest.Failing(fmt.Errorf("openai: %w", llm.ErrNoAPIKey))
	client := llm.WithRetry(fake, 5, time.Millisecond)

	_, err := client.GenerateContent(context.Background(), "hi", llm.TierLite)
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)
	assert.Equal(t, 1, fake.Calls())
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	fake := llmtest.Failing(errors.New("transient"))
	client := llm.WithRetry(fake, 5, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateContent(ctx, "hi", llm.TierLite)
	require.Error(t, err)
	assert.Equal(t, 1, fake.Calls())
}

func TestWithRetry_SingleAttemptIsPassthrough(t *testing.T) {
	fake := llmtest.Text("x")
	assert.Same(t, llm.Client(fake), llm.WithRetry(fake, 1, time.Second))
}

func TestWithRetry_ProviderStatus(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCalls int
	}{
		{"unauthorized", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}, 1},
		{"unknown model", &openai.APIError{HTTPStatusCode: http.StatusNotFound, Message: "no such model"}, 1},
		{"bad request wrapped", fmt.Errorf("failed to create chat completion: %w",
			&openai.APIError{HTTPStatusCode: http.StatusBadRequest}), 1},
		{"request error forbidden", &openai.RequestError{HTTPStatusCode: http.StatusForbidden, Err: errors.New("forbidden")}, 1},
		{"gemini bad request", &googleapi.Error{Code: http.StatusBadRequest, Message: "invalid argument"}, 1},
		{"rate limited", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, 3},
		{"server error", &openai.APIError{HTTPStatusCode: http.StatusBadGateway}, 3},
		{"gemini unavailable", &googleapi.Error{Code: http.StatusServiceUnavailable}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := llmtest.Failing(tt.err)
			client := llm.WithRetry(fake, 3, time.Millisecond)

			_, err := client.GenerateContent(context.Background(), "hi", llm.TierLite)
			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, fake.Calls())
		})
	}
}
