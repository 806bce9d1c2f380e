package result

// Wrap calls fn once and captures its outcome. A normal return becomes Ok; a
// panic becomes Err holding the recovered value unchanged.
//
// Example:
//
//	res := result.Wrap(func() int { return mustParse(input) })
//	if res.IsErr() {
//		log.Println("parse panicked:", res)
//	}
func Wrap[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			res = Err[T, any](recovered)
		}
	}()
	return Ok[T, any](fn())
}

// Try adapts a Go (value, error) call. A returned error becomes Err, and a
// panic becomes Err holding a *PanicError.
//
// Example:
//
//	res := result.Try(func() (*os.File, error) { return os.Open(path) })
func Try[T any](fn func() (T, error)) (res Result[T, error]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			res = Err[T, error](&PanicError{Value: recovered})
		}
	}()
	value, err := fn()
	return FromTuple(value, err)
}
