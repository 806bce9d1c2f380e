package safe

import (
	"errors"
	"fmt"
)

var (
	// ErrNotText is returned when a decoder receives something other than a
	// string or a byte slice.
	ErrNotText = errors.New("safe: input is not text")
	// ErrUndefinedInput is returned when an untyped nil is given to an encoder.
	ErrUndefinedInput = errors.New("safe: input is undefined")
	// ErrEmptyURL is returned when a fetch target is empty.
	ErrEmptyURL = errors.New("safe: fetch input must be a non-empty string")
	// ErrInvalidURL is returned when a fetch target is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("safe: fetch input is not an http(s) url")
	// ErrBodyTooLarge is returned when a response body exceeds the configured
	// limit.
	ErrBodyTooLarge = errors.New("safe: response body exceeds limit")
	// ErrNotFound is returned by GetJSON when the key is absent.
	ErrNotFound = errors.New("safe: storage key not found")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("safe: GET %s: unexpected status %s", e.URL, e.Status)
}
