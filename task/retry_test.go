package task_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmingruby/optres/task"
)

func flaky(failures int32, calls *atomic.Int32) task.Task[string] {
	return task.From(func(context.Context) (string, error) {
		if calls.Add(1) <= failures {
			return "", errors.New("connection reset")
		}
		return "payload", nil
	})
}

func TestRetryEventuallySucceeds(t *testing.T) {
	var calls atomic.Int32
	var retried []int
	cfg := task.RetryConfig{
		Attempts: 5,
		Delay:    time.Millisecond,
		OnRetry:  func(attempt int, _ error) { retried = append(retried, attempt) },
	}
	value, err := task.Retry(flaky(2, &calls), cfg)(context.Background())
	if err != nil || value != "payload" {
		t.Fatalf("unexpected retry result %q %v", value, err)
	}
	if calls.Load() != 3 || len(retried) != 2 {
		t.Fatalf("expected 3 calls and 2 retries, got %d and %v", calls.Load(), retried)
	}
}

func TestRetryGivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	_, err := task.Retry(flaky(10, &calls), task.RetryConfig{Attempts: 3})(context.Background())
	if err == nil || calls.Load() != 3 {
		t.Fatalf("expected 3 failing calls, got %d (%v)", calls.Load(), err)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	var calls atomic.Int32
	_, _ = task.Retry(flaky(10, &calls), task.RetryConfig{})(context.Background())
	if calls.Load() != 1 {
		t.Fatalf("expected a single run, got %d", calls.Load())
	}
}

func TestRetryNegativeDelay(t *testing.T) {
	var calls atomic.Int32
	value, err := task.Retry(flaky(1, &calls), task.RetryConfig{Attempts: 3, Delay: -time.Second})(context.Background())
	if err != nil || value != "payload" {
		t.Fatalf("unexpected retry output %q %v", value, err)
	}
}

func TestRetryStopsWhenShouldRetryRejects(t *testing.T) {
	var attempts atomic.Int32
	permanent := errors.New("permanent")
	work := task.From(func(context.Context) (int, error) {
		attempts.Add(1)
		return 0, permanent
	})
	cfg := task.RetryConfig{Attempts: 5, ShouldRetry: func(err error) bool { return !errors.Is(err, permanent) }}
	if _, err := task.Retry(work, cfg)(context.Background()); !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts.Load())
	}
}

func TestRetryWaitHonorsCancellation(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := task.Retry(flaky(10, &calls), task.RetryConfig{Attempts: 3, Delay: time.Hour})(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline while waiting, got %v", err)
	}
}

func TestExponentialBackoffRetry(t *testing.T) {
	var delays []time.Duration
	backoff := task.ExponentialBackoff(time.Millisecond, 3*time.Millisecond)
	cfg := task.RetryConfig{
		Attempts: 4,
		Backoff: func(attempt int, err error) time.Duration {
			d := backoff(attempt, err)
			delays = append(delays, d)
			return d
		},
	}
	_, err := task.Retry(task.Fail[int](errors.New("down")), cfg)(context.Background())
	if err == nil || err.Error() != "down" {
		t.Fatalf("expected last error, got %v", err)
	}
	want := []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("expected %d waits, got %d", len(want), len(delays))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("wait %d: expected %v, got %v", i, want[i], delays[i])
		}
	}
}

func TestTimeout(t *testing.T) {
	slow := task.From(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 1, nil
		}
	})
	if _, err := task.Timeout(slow, 10*time.Millisecond)(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if v, err := task.Timeout(task.Pure(2), 0)(context.Background()); err != nil || v != 2 {
		t.Fatalf("non-positive timeout should leave the task unchanged")
	}
}
