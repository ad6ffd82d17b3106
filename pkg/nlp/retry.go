package nlp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hestia-ai/hestia/pkg/types"
)

// RetryConfig holds configuration for the synthesis retry policy.
type RetryConfig struct {
	// RateLimitDelay is the sleep after a rate-limiting failure.
	RateLimitDelay time.Duration
	// ConnectionDelay is the sleep after a connection-class failure.
	ConnectionDelay time.Duration
	// UnknownDelay is the sleep after any other transient failure.
	UnknownDelay time.Duration
	// AttemptTimeout bounds a single attempt. A timed-out attempt is
	// abandoned and retried; it does not end the loop.
	AttemptTimeout time.Duration
	// MaxAttempts caps total attempts. Zero means retry indefinitely,
	// bounded only by the caller's context.
	MaxAttempts int
}

// DefaultRetryConfig returns the default retry configuration: indefinite
// retries, rate limits and connection failures backing off longer than
// generic transient errors.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		RateLimitDelay:  5 * time.Second,
		ConnectionDelay: 5 * time.Second,
		UnknownDelay:    1 * time.Second,
		AttemptTimeout:  100 * time.Second,
		MaxAttempts:     0,
	}
}

// RetryClient wraps an LLM client with the per-class retry policy.
type RetryClient struct {
	client Client
	config *RetryConfig
	logger *slog.Logger
}

// NewRetryClient creates a new retry client wrapper.
func NewRetryClient(client Client, config *RetryConfig, logger *slog.Logger) *RetryClient {
	if config == nil {
		config = DefaultRetryConfig()
	}
	if config.RateLimitDelay <= 0 {
		config.RateLimitDelay = 5 * time.Second
	}
	if config.ConnectionDelay <= 0 {
		config.ConnectionDelay = 5 * time.Second
	}
	if config.UnknownDelay <= 0 {
		config.UnknownDelay = 1 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RetryClient{
		client: client,
		config: config,
		logger: logger,
	}
}

// Chat implements the Client interface with retry logic. Permanent
// validation failures return immediately; everything else sleeps per class
// and retries until success, MaxAttempts, or context cancellation.
func (r *RetryClient) Chat(ctx context.Context, messages []types.Message) (*types.Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := r.attempt(ctx, messages)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generation abandoned: %w", ctx.Err())
		}

		class := Classify(err)
		if class == FailureBadRequest {
			r.logger.Error("generation request rejected, not retrying", "error", err)
			return nil, err
		}

		if r.config.MaxAttempts > 0 && attempt >= r.config.MaxAttempts {
			return nil, fmt.Errorf("generation failed after %d attempts: %w", attempt, err)
		}

		delay := r.delayFor(class)
		r.logger.Warn("generation attempt failed, retrying",
			"attempt", attempt,
			"class", className(class),
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("generation abandoned during backoff: %w", ctx.Err())
		}
	}
}

// attempt runs one call under the per-attempt timeout.
func (r *RetryClient) attempt(ctx context.Context, messages []types.Message) (*types.Response, error) {
	if r.config.AttemptTimeout <= 0 {
		return r.client.Chat(ctx, messages)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, r.config.AttemptTimeout)
	defer cancel()
	return r.client.Chat(attemptCtx, messages)
}

// Close implements the Client interface.
func (r *RetryClient) Close() error {
	return r.client.Close()
}

func (r *RetryClient) delayFor(class FailureClass) time.Duration {
	switch class {
	case FailureRateLimit:
		return r.config.RateLimitDelay
	case FailureConnection:
		return r.config.ConnectionDelay
	default:
		return r.config.UnknownDelay
	}
}

func className(class FailureClass) string {
	switch class {
	case FailureBadRequest:
		return "bad_request"
	case FailureRateLimit:
		return "rate_limit"
	case FailureConnection:
		return "connection"
	default:
		return "unknown"
	}
}

var _ Client = (*RetryClient)(nil)
