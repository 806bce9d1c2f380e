// Package task defines context-aware effectful computations, the Future they
// resolve into, and the bridges between Go's (value, error) convention and
// result.Result.
//
// Example:
//
//	load := task.From(func(ctx context.Context) (Config, error) {
//		return store.Load(ctx, "config")
//	})
//	pending := task.Run(ctx, task.Map(load, func(c Config) string { return c.Region }))
//	fmt.Println(pending.Wait())
package task

import (
	"context"
	"errors"

	"github.com/charmingruby/optres/result"
)

// Task is a computation run against a context. Calling it runs it; nothing
// is cached between calls.
//
// Example:
//
//	var ping Task[time.Duration] = func(ctx context.Context) (time.Duration, error) {
//		return client.Ping(ctx)
//	}
type Task[T any] func(ctx context.Context) (T, error)

// abort returns T's zero value with the context error.
func abort[T any](ctx context.Context) (T, error) {
	var zero T
	return zero, ctx.Err()
}

// From turns fn into a Task that does not start when ctx is already done.
//
// Example:
//
//	load := From(repo.Load)
//	cfg, err := load(ctx)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return abort[T](ctx)
		}
		return fn(ctx)
	}
}

// Pure returns value unless ctx is already done.
//
// Example:
//
//	region := Pure("eu-west-1")
func Pure[T any](value T) Task[T] {
	return func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return abort[T](ctx)
		}
		return value, nil
	}
}

// Fail returns a Task failing with err. The context error wins when ctx is
// done, and a nil err is replaced by result.ErrNilError.
//
// Example:
//
//	denied := Fail[Token](ErrForbidden)
func Fail[T any](err error) Task[T] {
	if err == nil {
		err = result.ErrNilError
	}
	return func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return abort[T](ctx)
		}
		var zero T
		return zero, err
	}
}

// Map applies fn to the value of a successful Task. The context is checked
// again before fn runs.
//
// Example:
//
//	region := Map(load, func(c Config) string { return c.Region })
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if ctx.Err() != nil {
			return abort[U](ctx)
		}
		return fn(val), nil
	}
}

// FlatMap runs the Task produced by fn from t's value.
//
// Example:
//
//	profile := FlatMap(loadUser, func(u User) Task[Profile] {
//		return loadProfile(u.ID)
//	})
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if ctx.Err() != nil {
			return abort[U](ctx)
		}
		return fn(val)(ctx)
	}
}

// Tap calls fn with the value of a successful run.
//
// Example:
//
//	logged := Tap(load, func(c Config) { logger.Info("config loaded") })
func Tap[T any](t Task[T], fn func(T)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err == nil {
			fn(val)
		}
		return val, err
	}
}

// TapErr calls fn with the error of a failed run.
//
// Example:
//
//	counted := TapErr(load, func(error) { failures.Inc() })
func TapErr[T any](t Task[T], fn func(error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err != nil {
			fn(err)
		}
		return val, err
	}
}

// Ensure calls fn after every run.
func Ensure[T any](t Task[T], fn func()) Task[T] {
	return func(ctx context.Context) (T, error) {
		defer fn()
		return t(ctx)
	}
}

// Bracket acquires a resource, uses it and always releases it once acquired.
// release receives the error returned by use. When both fail, the errors are
// joined.
//
// Example:
//
//	count := Bracket(openConn,
//		func(c *redis.Conn) Task[int64] { return dbSize(c) },
//		func(_ context.Context, c *redis.Conn, _ error) error { return c.Close() },
//	)
func Bracket[A any, B any](
	acquire Task[A],
	use func(A) Task[B],
	release func(context.Context, A, error) error,
) Task[B] {
	return func(ctx context.Context) (B, error) {
		resource, err := acquire(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		value, useErr := use(resource)(ctx)
		if releaseErr := release(ctx, resource, useErr); releaseErr != nil {
			if useErr == nil {
				var zero B
				return zero, releaseErr
			}
			return value, errors.Join(useErr, releaseErr)
		}
		return value, useErr
	}
}
