// Package option implements a generic Option type for presence/absence semantics.
package option

import (
	"fmt"

	"github.com/charmingruby/optres/internal/format"
	"github.com/charmingruby/optres/result"
)

// Option represents presence or absence of a value of type T. The zero value is
// None, so Options can be embedded safely. Values are stored inline (no pointer
// boxing) which makes Some(nil) safe for nil-capable types; use IsSome to
// distinguish between absence and an explicit nil.
//
// Every None of a given T is the same zero value: it holds no state, cannot be
// mutated, and compares equal to any other None when T is comparable.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value. Some(nil) is valid when T accepts
// nil values; use IsSome to test for presence explicitly.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromResult converts a Result into an Option, discarding the failure payload.
func FromResult[T any, E any](r result.Result[T, E]) Option[T] {
	value, ok := r.Value()
	return FromOk(value, ok)
}

// IsSome reports true when the Option contains a value (even if that value is
// nil).
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IsSomeAnd reports true when the Option contains a value accepted by
// predicate. predicate is not called on None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.ok && predicate(o.value)
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the contained value, or an error matching ErrUnwrapNone when
// the Option is empty. A non-empty msg prefixes the error text.
func (o Option[T]) Unwrap(msg ...string) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, unwrapNoneError(msg)
}

// MustUnwrap returns the contained value or panics with the error Unwrap would
// have returned.
func (o Option[T]) MustUnwrap(msg ...string) T {
	value, err := o.Unwrap(msg...)
	if err != nil {
		panic(err)
	}
	return value
}

// UnwrapOr returns the contained value when present, otherwise it returns the
// provided fallback value.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// UnwrapOrElse behaves like UnwrapOr but lazily evaluates the fallback only
// when necessary.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// UnwrapOrZero returns the contained value or T's zero value.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Or returns the Option itself when it is Some, otherwise returns other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse behaves like Or but lazily constructs the replacement when
// necessary.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// MapNone turns None into Some(fn()) and leaves Some untouched.
func (o Option[T]) MapNone(fn func() T) Option[T] {
	if o.ok {
		return o
	}
	return Some(fn())
}

// InspectSome calls fn with the value when present and returns the Option
// unchanged.
func (o Option[T]) InspectSome(fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// InspectNone calls fn when the Option is empty and returns it unchanged.
func (o Option[T]) InspectNone(fn func()) Option[T] {
	if !o.ok {
		fn()
	}
	return o
}

// Filter keeps the value when predicate returns true, otherwise it becomes None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr converts the Option into a pointer, returning nil when None. The
// returned pointer references a copy of the stored value to preserve immutability.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// OkOr converts the Option into an error-typed Result, using err for None.
func (o Option[T]) OkOr(err error) result.Result[T, error] {
	return ToResult(o, err)
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%s)", format.Payload(o.value))
	}
	return "None"
}

func (Option[T]) isOption() {}

// IsOption reports whether v holds an Option of any element type.
func IsOption(v any) bool {
	_, ok := v.(interface{ isOption() })
	return ok
}

// ToResult converts an Option into a Result, producing Err(err) when the
// Option is None. None carries no failure information, so the caller supplies
// it.
func ToResult[T any, E any](o Option[T], err E) result.Result[T, E] {
	if o.ok {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](err)
}

// Fold collapses the Option into a single value by selecting onNone when the
// Option is empty or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the contained value with fn when present, returning a new
// Option of type U.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// And returns other when o is Some, otherwise None.
func And[T any, U any](o Option[T], other Option[U]) Option[U] {
	if o.ok {
		return other
	}
	return None[U]()
}

// AndThen chains the Option with another Option-valued function.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}
