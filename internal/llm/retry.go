package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDelegateUnavailable marks a delegate call that could not be completed:
// missing credential, timeout, or provider failure after retry.
var ErrDelegateUnavailable = errors.New("delegate unavailable")

const maxAttempts = 2

// RetryClient wraps a ChatClient with a per-attempt timeout and a single
// retry. Exhaustion maps to ErrDelegateUnavailable so callers can branch on
// it without parsing provider errors.
type RetryClient struct {
	inner   ChatClient
	timeout time.Duration
}

func NewRetryClient(inner ChatClient, timeout time.Duration) *RetryClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RetryClient{inner: inner, timeout: timeout}
}

func (c *RetryClient) Chat(ctx context.Context, system string, history []Message, query string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		text, err := c.inner.Chat(attemptCtx, system, history, query)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		// Don't retry when the caller's own context is done.
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("%w: %v", ErrDelegateUnavailable, lastErr)
}
