// Package fp provides the small function helpers used when building Option
// and Result pipelines: identities, lazy constants and composition.
//
// Example:
//
//	port := option.None[int]().UnwrapOrElse(fp.Constant(8080))
package fp

// Identity returns the supplied value unchanged. It is the neutral element of
// Map.
//
// Example:
//
//	same := option.Map(opt, fp.Identity[int])
func Identity[T any](v T) T {
	return v
}

// Constant returns a producer that always returns v, suitable for the lazy
// fallback arguments of UnwrapOrElse and MapNone.
//
// Example:
//
//	timeout := cfg.Timeout.UnwrapOrElse(fp.Constant(time.Minute))
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value from left to right.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, fn := range fns {
		out = fn(out)
	}
	return out
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		out := value
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := Curry(add)(5)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Not negates a predicate, for use with Filter, IsSomeAnd and IsOkAnd.
//
// Example:
//
//	nonEmpty := opt.Filter(fp.Not(func(s string) bool { return s == "" }))
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}
