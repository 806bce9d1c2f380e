package option

import (
	"errors"
	"fmt"
)

// ErrUnwrapNone is returned, possibly wrapped with caller context, when a
// value is extracted from None.
var ErrUnwrapNone = errors.New("option: tried to unwrap, but this option is None")

func unwrapNoneError(msg []string) error {
	if len(msg) == 0 || msg[0] == "" {
		return ErrUnwrapNone
	}
	return fmt.Errorf("%s - %w", msg[0], ErrUnwrapNone)
}
