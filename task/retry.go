package task

import (
	"context"
	"time"

	"github.com/charmingruby/optres/internal/timeutil"
)

// Timeout runs t with a context that expires after d. Non-positive durations
// leave t unchanged.
//
// Example:
//
//	bounded := Timeout(load, 500*time.Millisecond)
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctx)
	}
}

// RetryConfig controls Retry. Nothing is retried unless a Task is explicitly
// wrapped.
//
// Example:
//
//	cfg := RetryConfig{Attempts: 3, Delay: 100 * time.Millisecond}
type RetryConfig struct { //nolint:govet // fieldalignment: keep numeric fields grouped for readability
	// Attempts is the total number of runs. Values below 1 mean a single run.
	Attempts int
	// Delay is the wait between runs when Backoff is nil.
	Delay time.Duration
	// Backoff computes the wait after the given failed attempt.
	Backoff func(attempt int, err error) time.Duration
	// ShouldRetry stops retrying when it returns false.
	ShouldRetry func(error) bool
	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error)
}

func (cfg RetryConfig) wait(attempt int, err error) time.Duration {
	if cfg.Backoff != nil {
		return cfg.Backoff(attempt, err)
	}
	return cfg.Delay
}

// ExponentialBackoff returns a RetryConfig.Backoff that doubles base after each
// failed attempt, never waiting longer than ceiling.
//
// Example:
//
//	cfg := RetryConfig{Attempts: 4, Backoff: ExponentialBackoff(50*time.Millisecond, time.Second)}
func ExponentialBackoff(base, ceiling time.Duration) func(int, error) time.Duration {
	return func(attempt int, _ error) time.Duration {
		return timeutil.Exponential(base, ceiling, attempt)
	}
}

// Retry runs t until it succeeds, cfg.Attempts runs were made, or
// cfg.ShouldRetry rejects the error. The last error is returned.
//
// Example:
//
//	fetch := Retry(fetchConfig, RetryConfig{Attempts: 5, Delay: time.Second})
func Retry[T any](t Task[T], cfg RetryConfig) Task[T] {
	attempts := max(cfg.Attempts, 1)
	return func(ctx context.Context) (T, error) {
		for attempt := 1; ; attempt++ {
			if ctx.Err() != nil {
				return abort[T](ctx)
			}
			value, err := t(ctx)
			if err == nil {
				return value, nil
			}
			if attempt >= attempts || (cfg.ShouldRetry != nil && !cfg.ShouldRetry(err)) {
				var zero T
				return zero, err
			}
			if cfg.OnRetry != nil {
				cfg.OnRetry(attempt, err)
			}
			if waitErr := timeutil.Wait(ctx, cfg.wait(attempt, err)); waitErr != nil {
				var zero T
				return zero, waitErr
			}
		}
	}
}
