// Package validated accumulates multiple errors while still returning values.
//
// Use it for input validation, DTO decoding, and config parsing where all
// issues should be reported at once instead of short-circuiting on the first
// failure the way result.All does.
package validated

import (
	"errors"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/result"
)

// Validated wraps either a successful value or a collection of validation errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
	valid  bool
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value, valid: true}
}

// Invalid constructs a failed Validated aggregating the provided errors. It is
// invalid even when no error is given.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{errors: appendErrors(nil, errs)}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return v.valid
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	return appendErrors(make([]E, 0, len(v.errors)), v.errors)
}

// Value returns the stored value when valid.
func (v Validated[E, T]) Value() option.Option[T] {
	return option.FromOk(v.value, v.valid)
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.valid {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E](fn(v.value))
}

// Zip combines two Validated values, accumulating errors from both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, result.Tuple2[A, B]] {
	if a.valid && b.valid {
		return Valid[E](result.Tuple2[A, B]{First: a.value, Second: b.value})
	}
	return Validated[E, result.Tuple2[A, B]]{errors: appendErrors(appendErrors(nil, a.errors), b.errors)}
}

// Sequence collapses a slice of Validated values into one holding every value,
// or every error when at least one item is invalid.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	return Traverse(items, func(item Validated[E, T]) Validated[E, T] { return item })
}

// Traverse maps the input slice to Validated values and sequences them.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var errs []E
	invalid := false
	for _, item := range items {
		res := fn(item)
		if res.valid {
			values = append(values, res.value)
			continue
		}
		invalid = true
		errs = appendErrors(errs, res.errors)
	}
	if invalid {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E](values)
}

// FromResult lifts a Result into a Validated holding at most one error.
func FromResult[T any, E any](res result.Result[T, E]) Validated[E, T] {
	if value, ok := res.Value(); ok {
		return Valid[E](value)
	}
	payload, _ := res.Err()
	return Invalid[E, T](payload)
}

// FromErrors lifts the aggregated form produced by result.Any and ToResult.
func FromErrors[T any, E any](res result.Result[T, []E]) Validated[E, T] {
	if value, ok := res.Value(); ok {
		return Valid[E](value)
	}
	errs, _ := res.Err()
	return Invalid[E, T](errs...)
}

// ToResult converts a Validated into a Result carrying every collected error.
func ToResult[E any, T any](v Validated[E, T]) result.Result[T, []E] {
	if v.valid {
		return result.Ok[T, []E](v.value)
	}
	return result.Err[T](v.Errors())
}

// Join converts a Validated of errors into an error-typed Result, joining the
// errors with errors.Join.
func Join[T any](v Validated[error, T]) result.Result[T, error] {
	if v.valid {
		return result.Ok[T, error](v.value)
	}
	joined := errors.Join(v.errors...)
	if joined == nil {
		joined = errors.New("validated: invalid without errors")
	}
	return result.Err[T](joined)
}

func appendErrors[E any](dst []E, src []E) []E {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
