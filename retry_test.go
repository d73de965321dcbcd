package lexdraft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProvider fails with the configured errors before succeeding.
type flakyProvider struct {
	errs  []error
	calls int
}

func (f *flakyProvider) Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return nil, f.errs[f.calls-1]
	}
	return &Response{Content: "ok"}, nil
}

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithRetry_TransientErrorsRetried(t *testing.T) {
	p := &flakyProvider{errs: []error{
		NewTransientError("overloaded", 529, nil),
		NewTransientError("rate limited", 429, nil),
	}}

	resp, err := WithRetry(p, fastRetryConfig(5)).Chat(context.Background(), []Message{NewUserMessage("hi")})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 3, p.calls)
}

func TestWithRetry_PermanentErrorNotRetried(t *testing.T) {
	p := &flakyProvider{errs: []error{NewPermanentError("bad key", 401, nil)}}

	_, err := WithRetry(p, fastRetryConfig(5)).Chat(context.Background(), nil)

	assert.True(t, IsPermanent(err))
	assert.Equal(t, 1, p.calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	p := &flakyProvider{errs: []error{
		NewTransientError("overloaded", 529, nil),
		NewTransientError("overloaded", 529, nil),
		NewTransientError("overloaded", 529, nil),
	}}

	_, err := WithRetry(p, fastRetryConfig(2)).Chat(context.Background(), nil)

	assert.True(t, IsTransient(err))
	assert.Equal(t, 2, p.calls)
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	p := &flakyProvider{errs: []error{
		NewTransientErrorWithRetry("rate limited", 429, time.Minute, nil),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(p, fastRetryConfig(3)).Chat(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := RetryConfig{
		InitialDelay: time.Second,
		MaxDelay:     4 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, time.Second, cfg.Delay(0))
	assert.Equal(t, 2*time.Second, cfg.Delay(1))
	assert.Equal(t, 4*time.Second, cfg.Delay(2))
	// Capped at MaxDelay
	assert.Equal(t, 4*time.Second, cfg.Delay(5))
}
