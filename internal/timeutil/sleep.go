// Package timeutil hosts internal timing helpers shared across packages.
package timeutil

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, returning the context error in the
// latter case. Non-positive durations only check the context.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Exponential returns base doubled attempt-1 times, capped at ceiling when
// ceiling is positive.
func Exponential(base, ceiling time.Duration, attempt int) time.Duration {
	if base <= 0 || attempt <= 1 {
		return base
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if ceiling > 0 && d >= ceiling {
			return ceiling
		}
	}
	return d
}
