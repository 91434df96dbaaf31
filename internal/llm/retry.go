package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// RetryClient wraps a Client and retries failed calls with linear backoff.
// Context cancellation, missing credentials and permanent provider
// rejections (4xx other than 429) are returned immediately.
type RetryClient struct {
	Client
	attempts int
	backoff  time.Duration
}

// WithRetry wraps client so that each call is attempted up to attempts times.
// attempts <= 1 returns client unchanged.
func WithRetry(client Client, attempts int, backoff time.Duration) Client {
	if attempts <= 1 || client == nil {
		return client
	}
	return &RetryClient{Client: client, attempts: attempts, backoff: backoff}
}

// GenerateContent retries the wrapped GenerateContent
func (r *RetryClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return retry(ctx, r.attempts, r.backoff, func() (string, error) {
		return r.Client.GenerateContent(ctx, prompt, tier)
	})
}

// GenerateJSON retries the wrapped GenerateJSON
func (r *RetryClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return retry(ctx, r.attempts, r.backoff, func() (string, error) {
		return r.Client.GenerateJSON(ctx, prompt, tier)
	})
}

func retry[T any](ctx context.Context, attempts int, backoff time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable(ctx, err) || i == attempts-1 {
			break
		}

		wait := backoff * time.Duration(i+1)
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("retry interrupted: %w", ctx.Err())
		case <-time.After(wait):
		}
	}
	return zero, lastErr
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNoAPIKey) {
		return false
	}
	if status, ok := providerStatus(err); ok {
		return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
	}
	return true
}

// providerStatus extracts the HTTP status a provider answered with, if any.
func providerStatus(err error) (int, bool) {
	var (
		apiErr    *openai.APIError
		reqErr    *openai.RequestError
		googleErr *googleapi.Error
	)
	switch {
	case errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0:
		return apiErr.HTTPStatusCode, true
	case errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0:
		return reqErr.HTTPStatusCode, true
	case errors.As(err, &googleErr) && googleErr.Code > 0:
		return googleErr.Code, true
	}
	return 0, false
}
