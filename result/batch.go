package result

// All returns Ok of every value in input order, or the first Err found.
//
// Example:
//
//	res := result.All(loadA(), loadB())
func All[T any, E any](results ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// AllFunc behaves like All but produces each Result lazily. Producers after the
// first Err are never called.
//
// Example:
//
//	res := result.AllFunc(loadA, loadB, loadC)
func AllFunc[T any, E any](producers ...func() Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(producers))
	for _, produce := range producers {
		r := produce()
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// Any returns the first Ok in input order. When no input is Ok it returns Err
// holding every failure payload in input order; for an empty input that slice
// is empty.
//
// Example:
//
//	res := result.Any(fromCache(), fromReplica(), fromPrimary())
func Any[T any, E any](results ...Result[T, E]) Result[T, []E] {
	errs := make([]E, 0, len(results))
	for _, r := range results {
		if r.ok {
			return Ok[T, []E](r.value)
		}
		errs = append(errs, r.err)
	}
	return Err[T](errs)
}

// AnyFunc behaves like Any but produces each Result lazily. Producers after
// the first Ok are never called.
func AnyFunc[T any, E any](producers ...func() Result[T, E]) Result[T, []E] {
	errs := make([]E, 0, len(producers))
	for _, produce := range producers {
		r := produce()
		if r.ok {
			return Ok[T, []E](r.value)
		}
		errs = append(errs, r.err)
	}
	return Err[T](errs)
}

// Traverse maps input values to Results and collects them, failing fast on
// the first Err.
//
// Example:
//
//	res := result.Traverse(ids, func(id int) result.Result[User, error] {
//		return loadUser(id)
//	})
func Traverse[A any, B any, E any](items []A, fn func(A) Result[B, E]) Result[[]B, E] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if !res.ok {
			return Err[[]B](res.err)
		}
		values = append(values, res.value)
	}
	return Ok[[]B, E](values)
}

// Collect gathers the successful values from the provided Results, ignoring
// failures. The returned slice never shares the backing array with inputs.
//
// Example:
//
//	values := result.Collect(results)
func Collect[T any, E any](results []Result[T, E]) []T {
	if len(results) == 0 {
		return []T{}
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		}
	}
	return values
}

// Partition splits the input slice into successful values and failure
// payloads, both in input order.
//
// Example:
//
//	vals, errs := result.Partition(results)
func Partition[T any, E any](results []Result[T, E]) ([]T, []E) {
	if len(results) == 0 {
		return []T{}, []E{}
	}
	values := make([]T, 0, len(results))
	errs := make([]E, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Zip2 combines two Results of different value types, returning the first Err.
//
// Example:
//
//	combined := result.Zip2(loadUser(), loadProfile())
func Zip2[A any, B any, E any](ra Result[A, E], rb Result[B, E]) Result[Tuple2[A, B], E] {
	if !ra.ok {
		return Err[Tuple2[A, B]](ra.err)
	}
	if !rb.ok {
		return Err[Tuple2[A, B]](rb.err)
	}
	return Ok[Tuple2[A, B], E](Tuple2[A, B]{First: ra.value, Second: rb.value})
}

// Zip3 combines three Results of different value types, returning the first
// Err.
//
// Example:
//
//	combined := result.Zip3(loadUser(), loadProfile(), loadSettings())
func Zip3[A any, B any, C any, E any](ra Result[A, E], rb Result[B, E], rc Result[C, E]) Result[Tuple3[A, B, C], E] {
	if !ra.ok {
		return Err[Tuple3[A, B, C]](ra.err)
	}
	if !rb.ok {
		return Err[Tuple3[A, B, C]](rb.err)
	}
	if !rc.ok {
		return Err[Tuple3[A, B, C]](rc.err)
	}
	return Ok[Tuple3[A, B, C], E](Tuple3[A, B, C]{First: ra.value, Second: rb.value, Third: rc.value})
}

// Tuple2 represents a pair of values.
type Tuple2[A any, B any] struct {
	First  A
	Second B
}

// Tuple3 represents three values.
type Tuple3[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}
