package task

import (
	"context"
	"sync"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/result"
)

// Future is a value that becomes available exactly once. Later resolutions are
// ignored, so every reader observes the same value.
//
// Example:
//
//	pending := task.WrapAsync(ctx, loadProfile)
//	res := pending.Wait()
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
}

// NewPromise returns an unresolved Future together with the function that
// resolves it. The resolver reports whether this call was the one that
// settled the Future.
//
// Example:
//
//	fut, resolve := task.NewPromise[int]()
//	go func() { resolve(compute()) }()
func NewPromise[T any]() (*Future[T], func(T) bool) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve
}

// Ready returns a Future already resolved with value.
func Ready[T any](value T) *Future[T] {
	f, resolve := NewPromise[T]()
	resolve(value)
	return f
}

func (f *Future[T]) resolve(value T) bool {
	settled := false
	f.once.Do(func() {
		f.value = value
		settled = true
		close(f.done)
	})
	return settled
}

// Done is closed once the Future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the value is available.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the Future resolves.
func (f *Future[T]) Wait() T {
	<-f.done
	return f.value
}

// Await blocks until the Future resolves or ctx is done. Giving up on the wait
// does not affect the Future.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll returns the value when resolved, None otherwise.
func (f *Future[T]) Poll() option.Option[T] {
	if f.Resolved() {
		return option.Some(f.value)
	}
	return option.None[T]()
}

// Then returns a Future resolved with fn applied to f's value.
//
// Example:
//
//	names := task.Then(pending, func(res result.Result[User, error]) string {
//		return res.UnwrapOr(User{}).Name
//	})
func Then[T any, U any](f *Future[T], fn func(T) U) *Future[U] {
	next, resolve := NewPromise[U]()
	go func() {
		resolve(fn(f.Wait()))
	}()
	return next
}

// WrapAsync runs fn on its own goroutine and returns a Future that resolves to
// Ok with the produced value or Err with the returned error. A panic raised by
// fn resolves the Future to Err holding a *result.PanicError, since the Err
// side is error and a recovered value need not be one; PanicError.Unwrap still
// exposes a recovered error. Errors returned by fn are stored unmodified. The
// call itself never fails; cancellation is whatever fn does with ctx.
//
// Example:
//
//	pending := task.WrapAsync(ctx, func(ctx context.Context) (*User, error) {
//		return repo.Load(ctx, id)
//	})
//	user, err := result.Tuple(pending.Wait())
func WrapAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[result.Result[T, error]] {
	f, resolve := NewPromise[result.Result[T, error]]()
	go func() {
		resolve(Attempt[T](ctx, fn))
	}()
	return f
}

// Run starts t in the background. See WrapAsync.
func Run[T any](ctx context.Context, t Task[T]) *Future[result.Result[T, error]] {
	return WrapAsync[T](ctx, t)
}
