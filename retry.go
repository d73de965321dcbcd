package lexdraft

import (
	"context"
	"math/rand"
	"time"
)

// RetryConfig holds retry configuration parameters.
// Use DefaultRetryConfig() for sensible defaults or create custom configs.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (default: 5).
	// The initial request counts as attempt 1.
	MaxAttempts int

	// InitialDelay is the base delay before the first retry (default: 1s).
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries (default: 60s).
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier (default: 2.0).
	Multiplier float64

	// Jitter adds randomness to prevent thundering herd (default: 0.1 = 10%).
	// Delay is multiplied by (1 + random(-jitter, +jitter)).
	Jitter float64
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  5,
		InitialDelay: 1 * time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
func DisabledRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 1}
}

// Delay computes the backoff delay for the given zero-based attempt number.
func (c RetryConfig) Delay(attempt int) time.Duration {
	delay := float64(c.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= c.Multiplier
	}
	if max := float64(c.MaxDelay); c.MaxDelay > 0 && delay > max {
		delay = max
	}
	if c.Jitter > 0 {
		delay *= 1 + c.Jitter*(2*rand.Float64()-1)
	}
	return time.Duration(delay)
}

// retryProvider wraps a ChatProvider with retry-on-transient behavior.
type retryProvider struct {
	inner ChatProvider
	cfg   RetryConfig
}

// WithRetry wraps a ChatProvider so transient errors are retried with
// exponential backoff. A server-supplied Retry-After delay takes precedence
// over the computed backoff. Permanent and user-input errors are returned
// immediately.
func WithRetry(p ChatProvider, cfg RetryConfig) ChatProvider {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg}
}

// Chat sends a conversation, retrying the call on transient errors.
func (r *retryProvider) Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Chat(ctx, messages, opts...)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !IsTransient(err) {
			return nil, err
		}

		if attempt < r.cfg.MaxAttempts-1 {
			delay := r.cfg.Delay(attempt)
			if ra := RetryAfterOf(err); ra > 0 {
				delay = ra
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, lastErr
}

var _ ChatProvider = (*retryProvider)(nil)
