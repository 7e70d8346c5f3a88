// SPDX-License-Identifier: MIT
// Package wavefunction: sentinel error set.
//
// Every failure returned by an Evaluator wraps exactly one of these sentinels;
// match them with errors.Is. Validation happens before any work is done, so a
// failed call never returns partial results and never touches the cache.

package wavefunction

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a bad numeric argument: negative mode order,
	// an empty point slice, a non-positive cache capacity or a table order
	// limit outside [0, MaxTableOrderLimit].
	ErrInvalidArgument = errors.New("wavefunction: invalid argument")

	// ErrTypeConflict marks an input whose type does not match the
	// evaluator's configuration: a complex point for a real evaluator (and
	// vice versa), a slice for a single-point evaluator (and vice versa), or
	// a Result accessor that does not match the result's shape/domain.
	ErrTypeConflict = errors.New("wavefunction: type conflict")

	// ErrNumericInstability marks a table-path evaluation refused because the
	// order is beyond the configured limit, or one that produced a non-finite
	// value or a real value above Cramér's bound.
	ErrNumericInstability = errors.New("wavefunction: numeric instability")
)

// waveErrorf tags a sentinel with the operation that detected it.
func waveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
