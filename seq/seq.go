package seq

import "github.com/charmingruby/optres/option"

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterMap applies fn to every element and keeps the present values, in
// order.
func FilterMap[A any, B any](in []A, fn func(A) option.Option[B]) []B {
	out := make([]B, 0, len(in))
	for _, v := range in {
		if mapped, ok := fn(v).Get(); ok {
			out = append(out, mapped)
		}
	}
	return out
}

// Compact unwraps the present values of opts, dropping every None.
func Compact[T any](opts []option.Option[T]) []T {
	return FilterMap(opts, func(o option.Option[T]) option.Option[T] { return o })
}

// FlatMap applies fn to each element and concatenates the resulting slices.
func FlatMap[A any, B any](in []A, fn func(A) []B) []B {
	var out []B
	for _, v := range in {
		out = append(out, fn(v)...)
	}
	if out == nil {
		return []B{}
	}
	return out
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce applies fn across elements. It is None for an empty slice.
func Reduce[T any](in []T, fn func(T, T) T) option.Option[T] {
	if len(in) == 0 {
		return option.None[T]()
	}
	acc := in[0]
	for i := 1; i < len(in); i++ {
		acc = fn(acc, in[i])
	}
	return option.Some(acc)
}

// Find returns the first element satisfying predicate.
func Find[T any](in []T, predicate func(T) bool) option.Option[T] {
	for _, v := range in {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// At returns the element at index i, or None when i is out of range.
func At[T any](in []T, i int) option.Option[T] {
	if i < 0 || i >= len(in) {
		return option.None[T]()
	}
	return option.Some(in[i])
}

// First returns the first element of in.
func First[T any](in []T) option.Option[T] {
	return At(in, 0)
}

// Last returns the last element of in.
func Last[T any](in []T) option.Option[T] {
	return At(in, len(in)-1)
}

// Any reports whether any element satisfies predicate.
func Any[T any](in []T, predicate func(T) bool) bool {
	return Find(in, predicate).IsSome()
}

// All reports whether all elements satisfy predicate.
func All[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// GroupBy groups elements by the key returned from keySelector.
func GroupBy[T any, K comparable](in []T, keySelector func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range in {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	}
	return groups
}

// Partition splits the slice into two slices based on predicate outcome.
func Partition[T any](in []T, predicate func(T) bool) ([]T, []T) {
	if len(in) == 0 {
		return []T{}, []T{}
	}
	matches := make([]T, 0, len(in))
	rest := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}
