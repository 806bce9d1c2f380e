package result

import (
	"errors"
	"fmt"

	"github.com/charmingruby/optres/internal/format"
)

var (
	// ErrUnwrapMismatch is matched by every *UnwrapError.
	ErrUnwrapMismatch = errors.New("result: unwrap on mismatched variant")

	// ErrNilError is reported by Tuple for an Err whose error payload is nil.
	ErrNilError = errors.New("result: nil error")
)

// UnwrapError is returned by Unwrap on Err and by UnwrapErr on Ok.
type UnwrapError struct {
	// Variant is the variant that was actually found, "Ok" or "Err".
	Variant string
	// Payload is the formatted payload of that variant.
	Payload string
	// Context is the optional caller message.
	Context string

	cause error
}

func newUnwrapError(variant string, payload any, msg []string) *UnwrapError {
	e := &UnwrapError{Variant: variant, Payload: format.Payload(payload)}
	if len(msg) > 0 {
		e.Context = msg[0]
	}
	if cause, ok := payload.(error); ok && !format.Nil(cause) {
		e.cause = cause
	}
	return e
}

func (e *UnwrapError) Error() string {
	text := fmt.Sprintf("tried to unwrap, but this result is %s: %s", e.Variant, e.Payload)
	if e.Context == "" {
		return text
	}
	return e.Context + " - " + text
}

// Is matches ErrUnwrapMismatch.
func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrapMismatch
}

// Unwrap exposes the payload when the payload is itself an error.
func (e *UnwrapError) Unwrap() error {
	return e.cause
}

// PanicError carries a value recovered from a panicking call.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return "result: recovered panic: " + format.Payload(e.Value)
}

// Unwrap exposes the recovered value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
