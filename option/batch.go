package option

// All returns Some of every value in input order, or None as soon as an input
// is None.
func All[T any](opts ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// AllFunc behaves like All but produces each Option lazily. Producers after
// the first None are never called.
func AllFunc[T any](producers ...func() Option[T]) Option[[]T] {
	values := make([]T, 0, len(producers))
	for _, produce := range producers {
		o := produce()
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Any returns the first Some in input order, scanning past leading Nones. It
// returns None when the input is empty or holds no Some.
func Any[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.ok {
			return o
		}
	}
	return None[T]()
}

// AnyFunc behaves like Any but produces each Option lazily. Producers after
// the first Some are never called.
func AnyFunc[T any](producers ...func() Option[T]) Option[T] {
	for _, produce := range producers {
		if o := produce(); o.ok {
			return o
		}
	}
	return None[T]()
}

// Pair holds the values combined by Zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip combines two Options of different types, returning None when either is
// empty.
func Zip[A any, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: a.value, Second: b.value})
}

// Traverse maps items to Options and collects the values, returning None on
// the first empty result.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}
