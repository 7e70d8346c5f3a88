package hermite

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates an out-of-domain argument, e.g. a negative
// maximum order or a row index outside the table.
var ErrInvalidArgument = errors.New("hermite: invalid argument")

// hermiteErrorf tags a sentinel with the failing operation and offending value.
func hermiteErrorf(op string, v int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, v, err)
}
