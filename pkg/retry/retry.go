// Package retry runs operations with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config holds retry strategy configuration.
type Config struct {
	// MaxAttempts counts the first call too.
	MaxAttempts int
	// InitialDelay is the wait after the first failure.
	InitialDelay time.Duration
	// MaxDelay caps every wait.
	MaxDelay time.Duration
	// Multiplier grows the wait after each failure.
	Multiplier float64
	// Retryable decides whether a failure is worth another attempt.
	// Nil retries everything except Permanent errors.
	Retryable func(error) bool
	// OnRetry, when set, is called after a failed attempt that will be retried.
	// attempt is 1-based.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultConfig returns default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// PostgresConfig retries only the failures a starting or restarting
// PostgreSQL server produces.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.Retryable = MatchAny(PostgresTransientErrors()...)
	return cfg
}

// PostgresTransientErrors lists message fragments of transient connection failures.
func PostgresTransientErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"i/o timeout",
		"dial tcp",
		"network is unreachable",
		"no connection could be made",
		"server closed the connection",
		"too many connections",
		"the database system is starting up",
		"the database system is shutting down",
	}
}

// MatchAny returns a predicate reporting whether an error message contains
// any of patterns, case-insensitively.
func MatchAny(patterns ...string) func(error) bool {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return func(err error) bool {
		msg := strings.ToLower(err.Error())
		for _, p := range lowered {
			if strings.Contains(msg, p) {
				return true
			}
		}
		return false
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err so that no further attempt is made.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do executes fn with retry logic.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult executes fn with retry logic and returns its result.
// The error of the last attempt is returned when all attempts fail.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		return zero, fmt.Errorf("MaxAttempts must be greater than 0")
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return zero, perm.err
		}
		lastErr = err
		if !IsRetryableError(err, cfg) || attempt == cfg.MaxAttempts-1 {
			break
		}

		delay := addJitter(calculateDelay(attempt, cfg))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// IsRetryableError reports whether cfg allows retrying err.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	var perm *permanentError
	if errors.As(err, &perm) {
		return false
	}
	if cfg.Retryable == nil {
		return true
	}
	return cfg.Retryable(err)
}

// calculateDelay returns InitialDelay * Multiplier^attempt, capped at MaxDelay.
func calculateDelay(attempt int, cfg Config) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}

// addJitter spreads delay by up to 10% either way.
func addJitter(delay time.Duration) time.Duration {
	//nolint:gosec // jitter has no security requirement
	jitter := float64(delay) * 0.1 * (rand.Float64()*2 - 1)
	return delay + time.Duration(jitter)
}
