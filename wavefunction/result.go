// SPDX-License-Identifier: MIT

package wavefunction

import (
	"fmt"

	"github.com/katalvlaran/fastwave/matrix"
)

// Result holds the values produced by one Evaluator call.
//
// Values are laid out as an Orders()×Points() grid in row-major order:
// row k is ψ_{lo+k} where lo is n for single-mode and 0 for multi-mode.
// Typed accessors follow the shape table:
//
//	SingleModeSinglePoint  → Float64 / Complex128
//	SingleModeMultiPoint   → Float64s / Complex128s (one per point)
//	MultiModeSinglePoint   → Float64s / Complex128s (one per order 0..n)
//	MultiModeMultiPoint    → Float64Grid / Complex128Grid / Dense
//
// Grid, Dense and At accessors are valid for every shape. A call that does
// not match the result's domain or shape returns ErrTypeConflict.
type Result struct {
	shape  Shape
	domain Domain
	order  int // requested n
	orders int // rows: 1 or n+1
	points int // columns
	re     []float64
	cx     []complex128
}

// newRealResult wraps real kernel output.
func newRealResult(shape Shape, n, points int, vals []float64) Result {
	return Result{shape: shape, domain: Real, order: n, orders: len(vals) / points, points: points, re: vals}
}

// newComplexResult wraps complex kernel output.
func newComplexResult(shape Shape, n, points int, vals []complex128) Result {
	return Result{shape: shape, domain: Complex, order: n, orders: len(vals) / points, points: points, cx: vals}
}

// Shape returns the evaluator shape that produced the result.
func (r Result) Shape() Shape { return r.shape }

// Domain returns Real or Complex.
func (r Result) Domain() Domain { return r.domain }

// Order returns the requested mode order n.
func (r Result) Order() int { return r.order }

// Orders returns the number of rows (1 for single-mode, n+1 for multi-mode).
func (r Result) Orders() int { return r.orders }

// Points returns the number of columns (evaluation points).
func (r Result) Points() int { return r.points }

// Len returns Orders()*Points().
func (r Result) Len() int { return r.orders * r.points }

// conflict builds the ErrTypeConflict returned by mismatched accessors.
func (r Result) conflict(accessor string) error {
	return fmt.Errorf("Result.%s on %s %s result: %w", accessor, r.domain, r.shape, ErrTypeConflict)
}

// Float64 returns the scalar of a real single-mode/single-point result.
func (r Result) Float64() (float64, error) {
	if r.domain != Real || r.shape != SingleModeSinglePoint {
		return 0, r.conflict("Float64")
	}

	return r.re[0], nil
}

// Complex128 returns the scalar of a complex single-mode/single-point result.
func (r Result) Complex128() (complex128, error) {
	if r.domain != Complex || r.shape != SingleModeSinglePoint {
		return 0, r.conflict("Complex128")
	}

	return r.cx[0], nil
}

// Float64s returns a copy of a real one-dimensional result: one value per
// point (single-mode) or one value per order (single-point).
func (r Result) Float64s() ([]float64, error) {
	if r.domain != Real || (r.shape != SingleModeMultiPoint && r.shape != MultiModeSinglePoint) {
		return nil, r.conflict("Float64s")
	}

	return append([]float64(nil), r.re...), nil
}

// Complex128s is Float64s for complex results.
func (r Result) Complex128s() ([]complex128, error) {
	if r.domain != Complex || (r.shape != SingleModeMultiPoint && r.shape != MultiModeSinglePoint) {
		return nil, r.conflict("Complex128s")
	}

	return append([]complex128(nil), r.cx...), nil
}

// Float64Grid returns a copy of a real result as orders×points rows.
func (r Result) Float64Grid() ([][]float64, error) {
	if r.domain != Real {
		return nil, r.conflict("Float64Grid")
	}
	out := make([][]float64, r.orders)
	for k := range out {
		out[k] = append([]float64(nil), r.re[k*r.points:(k+1)*r.points]...)
	}

	return out, nil
}

// Complex128Grid returns a copy of a complex result as orders×points rows.
func (r Result) Complex128Grid() ([][]complex128, error) {
	if r.domain != Complex {
		return nil, r.conflict("Complex128Grid")
	}
	out := make([][]complex128, r.orders)
	for k := range out {
		out[k] = append([]complex128(nil), r.cx[k*r.points:(k+1)*r.points]...)
	}

	return out, nil
}

// Dense returns a real result as an orders×points *matrix.Dense.
func (r Result) Dense() (*matrix.Dense, error) {
	grid, err := r.Float64Grid()
	if err != nil {
		return nil, err
	}

	return matrix.FromRows(grid)
}

// At returns the real value at (row k, point j).
// Errors: ErrTypeConflict for complex results, matrix.ErrIndexOutOfBounds
// for indices outside the grid.
func (r Result) At(k, j int) (float64, error) {
	if r.domain != Real {
		return 0, r.conflict("At")
	}
	idx, err := r.index(k, j)
	if err != nil {
		return 0, err
	}

	return r.re[idx], nil
}

// ComplexAt returns the complex value at (row k, point j).
func (r Result) ComplexAt(k, j int) (complex128, error) {
	if r.domain != Complex {
		return 0, r.conflict("ComplexAt")
	}
	idx, err := r.index(k, j)
	if err != nil {
		return 0, err
	}

	return r.cx[idx], nil
}

// index maps (k, j) onto the flat buffer.
func (r Result) index(k, j int) (int, error) {
	if k < 0 || k >= r.orders || j < 0 || j >= r.points {
		return 0, fmt.Errorf("Result.At(%d,%d): %w", k, j, matrix.ErrIndexOutOfBounds)
	}

	return k*r.points + j, nil
}
