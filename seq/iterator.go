// Package seq offers eager and lazy helpers for Go slices whose lookups return
// Options instead of (value, ok) pairs.
package seq

import "github.com/charmingruby/optres/option"

// Iterator is a lazy, pull-based iterator.
type Iterator[T any] struct {
	next func() option.Option[T]
}

// Next yields the next value, or None once iteration is complete.
func (it Iterator[T]) Next() option.Option[T] {
	if it.next == nil {
		return option.None[T]()
	}
	return it.next()
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() option.Option[T] {
			v := At(values, idx)
			if v.IsSome() {
				idx++
			}
			return v
		},
	}
}

// FromFunc creates an iterator that calls produce until it returns None.
func FromFunc[T any](produce func() option.Option[T]) Iterator[T] {
	done := false
	return Iterator[T]{
		next: func() option.Option[T] {
			if done {
				return option.None[T]()
			}
			v := produce()
			done = v.IsNone()
			return v
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() option.Option[B] {
			return option.Map(it.Next(), fn)
		},
	}
}

// FilterIter keeps values satisfying predicate.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() option.Option[T] {
			for {
				v := it.Next()
				if v.IsNone() || v.IsSomeAnd(predicate) {
					return v
				}
			}
		},
	}
}

// Take returns an iterator that yields at most n elements.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() option.Option[T] {
			if count >= n {
				return option.None[T]()
			}
			return it.Next().InspectSome(func(T) { count++ })
		},
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() option.Option[T] {
			if !skipped {
				skipped = true
				for i := 0; i < n; i++ {
					if it.Next().IsNone() {
						return option.None[T]()
					}
				}
			}
			return it.Next()
		},
	}
}

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	out := []T{}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
