package task

import (
	"context"
	"errors"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/result"
)

// FromResult returns a Task yielding the Ok value or the Err error of res.
// The context error wins when ctx is done.
//
// Example:
//
//	t := FromResult(result.Ok[int, error](42))
func FromResult[T any](res result.Result[T, error]) Task[T] {
	return func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return abort[T](ctx)
		}
		return result.Tuple(res)
	}
}

// FromOption returns a Task yielding the value of opt. For None it fails with
// the error from errFactory, or with an error matching option.ErrUnwrapNone
// when errFactory is nil or returns nil.
//
// Example:
//
//	t := FromOption(store.Get(ctx, "token"), func() error { return ErrLoggedOut })
func FromOption[T any](opt option.Option[T], errFactory func() error) Task[T] {
	return func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return abort[T](ctx)
		}
		value, err := opt.Unwrap("task")
		if err == nil {
			return value, nil
		}
		if errFactory != nil {
			if custom := errFactory(); custom != nil {
				err = custom
			}
		}
		return value, err
	}
}

// ToResultTask moves the failure of t into the value. Only cancellation of
// ctx is still reported as the Task error.
//
// Example:
//
//	wrapped := ToResultTask(load)
//	res, err := wrapped(ctx)
//	if err != nil {
//		return err // canceled
//	}
func ToResultTask[T any](t Task[T]) Task[result.Result[T, error]] {
	return func(ctx context.Context) (result.Result[T, error], error) {
		val, err := t(ctx)
		if err == nil {
			return result.Ok[T, error](val), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return result.Err[T](err), err
		}
		return result.Err[T](err), nil
	}
}

// Attempt runs t on the calling goroutine and returns its outcome as a Result.
// A panic inside t becomes Err holding a *result.PanicError.
//
// Example:
//
//	res := Attempt(ctx, load)
func Attempt[T any](ctx context.Context, t Task[T]) result.Result[T, error] {
	return result.Try(func() (T, error) {
		return t(ctx)
	})
}
