package providers

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy controls how transient provider failures are retried.
// The zero value performs no retries.
type RetryPolicy struct {
	// Retries is the number of additional attempts after the first failure.
	Retries int
	// Backoff is "fixed" or "exponential". Empty means "exponential".
	Backoff string
	// Base is the initial delay between attempts. Zero means one second.
	Base time.Duration
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	base := p.Base
	if base <= 0 {
		base = time.Second
	}
	if p.Backoff == "fixed" {
		return base
	}
	return time.Duration(1<<uint(attempt)) * base
}

type configError struct {
	message string
}

func (e *configError) Error() string {
	return "configuration error: " + e.message
}

// IsConfigError checks if an error is a missing/invalid credential error.
func IsConfigError(err error) bool {
	var ce *configError
	return errors.As(err, &ce)
}

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

type rateLimitError struct{}

func (e *rateLimitError) Error() string { return "rate limited" }

type serverError struct {
	statusCode int
	body       string
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.statusCode, e.body)
}

// retryable reports whether an error class may succeed on a later attempt.
// Auth and config errors never do.
func retryable(err error) bool {
	var rl *rateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var se *serverError
	return errors.As(err, &se)
}

func retryWithPolicy(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= policy.Retries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt < policy.Retries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(policy.delay(attempt)):
			}
		}
	}
	return lastErr
}
