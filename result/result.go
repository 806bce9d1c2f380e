// Package result provides a success/failure container carrying a typed
// payload on both sides.
//
// Example:
//
//	res := result.Ok[string, error]("done")
//	value, err := res.Unwrap()
//	_ = value
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) to make
// transformations predictable even across retries and RPC boundaries.
package result

import (
	"fmt"

	"github.com/charmingruby/optres/internal/format"
)

// Result represents the outcome of a computation that either succeeded with a
// value of type T or failed with a payload of type E. E is not restricted to
// error. Results are immutable; every combinator returns a new value.
//
// The zero value is an Err carrying E's zero value.
//
// Example:
//
//	res := result.Ok[string, error]("token")
//	value, err := res.Unwrap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(value)
type Result[T any, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok[int, string](200)
//	fmt.Println(res.IsOk()) // true
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err constructs a failed Result carrying err.
//
// Example:
//
//	res := result.Err[int, error](errors.New("boom"))
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the Result represents success.
//
// Example:
//
//	if res.IsOk() {
//		fmt.Println("success")
//	}
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result represents failure.
//
// Example:
//
//	if res.IsErr() {
//		log.Println(res)
//	}
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the Result is Ok and predicate accepts its value.
// predicate is never invoked on Err.
//
// Example:
//
//	adult := res.IsOkAnd(func(age int) bool { return age >= 18 })
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// IsErrAnd reports whether the Result is Err and predicate accepts its
// payload. predicate is never invoked on Ok.
//
// Example:
//
//	timeout := res.IsErrAnd(func(err error) bool {
//		return errors.Is(err, context.DeadlineExceeded)
//	})
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Value returns the success value and whether it was present.
//
// Example:
//
//	if v, ok := res.Value(); ok {
//		use(v)
//	}
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure payload and whether it was present.
//
// Example:
//
//	if e, ok := res.Err(); ok {
//		log.Println(e)
//	}
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// Unwrap returns the success value. On Err it returns an *UnwrapError that
// matches ErrUnwrapMismatch and embeds the formatted payload; an optional msg
// is prepended to the error text.
//
// Example:
//
//	cfg, err := loadConfig().Unwrap("loading config")
//	if err != nil {
//		return err
//	}
func (r Result[T, E]) Unwrap(msg ...string) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, newUnwrapError("Err", r.err, msg)
}

// UnwrapErr returns the failure payload. On Ok it returns an *UnwrapError that
// embeds the formatted success value.
//
// Example:
//
//	cause, err := res.UnwrapErr()
func (r Result[T, E]) UnwrapErr(msg ...string) (E, error) {
	if !r.ok {
		return r.err, nil
	}
	var zero E
	return zero, newUnwrapError("Ok", r.value, msg)
}

// MustUnwrap returns the success value or panics with the *UnwrapError that
// Unwrap would have returned.
//
// Example:
//
//	func mustConfig(res result.Result[Config, error]) Config {
//		return res.MustUnwrap("config")
//	}
func (r Result[T, E]) MustUnwrap(msg ...string) T {
	value, err := r.Unwrap(msg...)
	if err != nil {
		panic(err)
	}
	return value
}

// MustUnwrapErr returns the failure payload or panics when the Result is Ok.
func (r Result[T, E]) MustUnwrapErr(msg ...string) E {
	payload, err := r.UnwrapErr(msg...)
	if err != nil {
		panic(err)
	}
	return payload
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	code := res.UnwrapOr(http.StatusInternalServerError)
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback from the failure payload.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// InspectOk runs fn with the value when the Result is Ok and returns the
// Result unchanged.
//
// Example:
//
//	_ = saveUser().InspectOk(func(u User) {
//		metrics.Count("user_saved")
//	})
func (r Result[T, E]) InspectOk(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr runs fn with the payload when the Result is Err and returns the
// Result unchanged.
//
// Example:
//
//	_ = load().InspectErr(func(err error) {
//		log.Println("load failed", err)
//	})
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// String implements fmt.Stringer for debugging.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%s)", format.Payload(r.value))
	}
	return fmt.Sprintf("Err(%s)", format.Payload(r.err))
}

func (Result[T, E]) isResult() {}

// IsResult reports whether v holds a Result of any type parameters. It is
// meant for narrowing values that crossed an `any` boundary.
//
// Example:
//
//	if result.IsResult(payload) {
//		log.Println("handler returned a Result:", payload)
//	}
func IsResult(v any) bool {
	_, ok := v.(interface{ isResult() })
	return ok
}

// And returns other when r is Ok, otherwise the Err of r re-typed to U.
//
// Example:
//
//	next := result.And(validate(req), result.Ok[string, error]("accepted"))
func And[T any, U any, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// AndThen chains computations, propagating the first failure untouched.
//
// Example:
//
//	res := result.AndThen(loadUser(), fetchProfile)
func AndThen[T any, U any, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Or returns r when it is Ok, otherwise other. The failure type may change.
//
// Example:
//
//	res := result.Or(loadPrimary(), loadReplica())
func Or[T any, E any, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return other
}

// OrElse chains error handlers, allowing recovery paths that still return
// Results. fn receives the failure payload.
//
// Example:
//
//	recovered := result.OrElse(load(), func(err error) result.Result[Config, error] {
//		return loadFromFallback()
//	})
func OrElse[T any, E any, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// Map transforms the value on success.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[T any, U any, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the failure payload when present.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) error {
//		return fmt.Errorf("wrap: %w", err)
//	})
func MapErr[T any, E any, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// Recover converts a failed Result into success using fn while keeping success
// values untouched.
//
// Example:
//
//	res := result.Recover(loadConfig(), func(err error) Config {
//		return defaultConfig
//	})
func Recover[T any, E any](r Result[T, E], fn func(E) T) Result[T, E] {
	if r.ok {
		return r
	}
	return Ok[T, E](fn(r.err))
}

// Fold collapses the Result into a single value.
//
// Example:
//
//	message := result.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Fold[T any, E any, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	value, err := repo.Load()
//	res := result.FromTuple(value, err)
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Tuple exposes the (value, error) pair of an error-typed Result, matching
// idiomatic Go callers that expect tuple returns. An Err holding a nil error
// reports ErrNilError so that failures are never read back as successes.
//
// Example:
//
//	value, err := result.Tuple(res)
func Tuple[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if r.err == nil {
		return zero, ErrNilError
	}
	return zero, r.err
}
