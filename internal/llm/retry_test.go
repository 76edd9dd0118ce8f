package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyClient struct {
	calls    int
	failures int
	response string
}

func (f *flakyClient) Chat(ctx context.Context, system string, history []Message, query string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("transient provider error")
	}
	return f.response, nil
}

type hangingClient struct {
	calls int
}

func (h *hangingClient) Chat(ctx context.Context, system string, history []Message, query string) (string, error) {
	h.calls++
	<-ctx.Done()
	return "", ctx.Err()
}

func TestRetryClient_SucceedsFirstTry(t *testing.T) {
	inner := &flakyClient{response: "ok"}
	c := NewRetryClient(inner, time.Second)

	text, err := c.Chat(context.Background(), "sys", nil, "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, inner.calls)
}

func TestRetryClient_RetriesOnce(t *testing.T) {
	inner := &flakyClient{failures: 1, response: "ok"}
	c := NewRetryClient(inner, time.Second)

	text, err := c.Chat(context.Background(), "sys", nil, "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryClient_ExhaustionReturnsTypedError(t *testing.T) {
	inner := &flakyClient{failures: 5}
	c := NewRetryClient(inner, time.Second)

	_, err := c.Chat(context.Background(), "sys", nil, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelegateUnavailable)
	// One retry only.
	assert.Equal(t, 2, inner.calls)
}

func TestRetryClient_TimeoutPerAttempt(t *testing.T) {
	inner := &hangingClient{}
	c := NewRetryClient(inner, 10*time.Millisecond)

	_, err := c.Chat(context.Background(), "sys", nil, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelegateUnavailable)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryClient_CallerCancellationStopsRetry(t *testing.T) {
	inner := &hangingClient{}
	c := NewRetryClient(inner, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Chat(ctx, "sys", nil, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelegateUnavailable)
	assert.Equal(t, 1, inner.calls)
}
