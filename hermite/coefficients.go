package hermite

import (
	"math"

	"github.com/katalvlaran/fastwave/matrix"
)

// CoefficientMatrix is an immutable (N+1)×(N+1) table of Hermite coefficients.
//
// Row n, column j holds the coefficient of x^(N−j) in H_n (or in the
// normalized H_n for tables built by BuildNormalizedCoefficientMatrix).
// All accessors return copies, so a table can be shared freely between
// goroutines and evaluators.
type CoefficientMatrix struct {
	maxOrder   int           // N
	normalized bool          // rows scaled by Norm(n)
	dense      *matrix.Dense // (N+1)×(N+1), never exposed directly
}

// rowStep describes one application of the shift-and-combine recurrence:
//
//	row[n] = a·shift(row[n-1]) − b·row[n-2]
//
// where shift moves every coefficient one power up (multiplication by x).
type rowStep func(n int) (a, b float64)

// rawStep is the physicists' recurrence H_n = 2x·H_{n-1} − 2(n−1)·H_{n-2}.
func rawStep(n int) (a, b float64) {
	return 2, 2 * float64(n-1)
}

// normalizedStep is the same recurrence rewritten for Norm(n)·H_n:
//
//	P_n = √(2/n)·x·P_{n-1} − √((n−1)/n)·P_{n-2}
func normalizedStep(n int) (a, b float64) {
	fn := float64(n)
	return math.Sqrt(2 / fn), math.Sqrt((fn - 1) / fn)
}

// BuildCoefficientMatrix returns the coefficient table of H_0 … H_maxOrder.
//
// Algorithm:
//  1. Allocate a zero (N+1)×(N+1) Dense.
//  2. Seed row 0 with 1 at column N and row 1 with 2 at column N−1.
//  3. For n = 2..N: row[n][j] = 2·row[n−1][j+1] − 2(n−1)·row[n−2][j].
//
// Errors:
//   - ErrInvalidArgument if maxOrder < 0.
//
// Complexity: O(N²) time and memory.
func BuildCoefficientMatrix(maxOrder int) (*CoefficientMatrix, error) {
	if maxOrder < 0 {
		return nil, hermiteErrorf("BuildCoefficientMatrix", maxOrder, ErrInvalidArgument)
	}

	return build(maxOrder, 1, 2, rawStep, false)
}

// BuildNormalizedCoefficientMatrix returns the table of Norm(n)·H_n for
// n = 0..maxOrder, so Horner over row n yields ψ_n(x)·e^(x²/2).
//
// The rows are produced by the normalized recurrence directly rather than by
// scaling the raw table, which keeps every entry finite long after the raw
// coefficients would overflow.
//
// Errors:
//   - ErrInvalidArgument if maxOrder < 0.
func BuildNormalizedCoefficientMatrix(maxOrder int) (*CoefficientMatrix, error) {
	if maxOrder < 0 {
		return nil, hermiteErrorf("BuildNormalizedCoefficientMatrix", maxOrder, ErrInvalidArgument)
	}
	seed := math.Pow(math.Pi, -0.25)

	return build(maxOrder, seed, math.Sqrt2*seed, normalizedStep, true)
}

// build seeds rows 0 and 1 and applies step for the remaining rows.
func build(maxOrder int, seed0, seed1 float64, step rowStep, normalized bool) (*CoefficientMatrix, error) {
	size := maxOrder + 1
	d, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}

	// Seed H_0 (constant) and H_1 (linear).
	if err = d.Set(0, maxOrder, seed0); err != nil {
		return nil, err
	}
	if maxOrder >= 1 {
		if err = d.Set(1, maxOrder-1, seed1); err != nil {
			return nil, err
		}
	}

	var prev, prev2, cur []float64
	for n := 2; n <= maxOrder; n++ {
		prev, _ = d.RowView(n - 1)
		prev2, _ = d.RowView(n - 2)
		cur, _ = d.RowView(n)
		a, b := step(n)
		// Row n is non-zero only on columns N−n..N.
		for j := maxOrder - n; j <= maxOrder; j++ {
			var shifted float64
			if j < maxOrder {
				shifted = prev[j+1]
			}
			cur[j] = a*shifted - b*prev2[j]
		}
	}

	return &CoefficientMatrix{maxOrder: maxOrder, normalized: normalized, dense: d}, nil
}

// MaxOrder returns N, the highest polynomial order stored in the table.
func (cm *CoefficientMatrix) MaxOrder() int { return cm.maxOrder }

// Rows returns N+1.
func (cm *CoefficientMatrix) Rows() int { return cm.dense.Rows() }

// Cols returns N+1.
func (cm *CoefficientMatrix) Cols() int { return cm.dense.Cols() }

// IsNormalized reports whether rows carry the oscillator normalization.
func (cm *CoefficientMatrix) IsNormalized() bool { return cm.normalized }

// At returns the coefficient of x^(N−j) in row n.
// Errors wrap matrix.ErrIndexOutOfBounds.
func (cm *CoefficientMatrix) At(n, j int) (float64, error) {
	return cm.dense.At(n, j)
}

// Row returns a copy of the full row n, leading zeros included.
func (cm *CoefficientMatrix) Row(n int) ([]float64, error) {
	if n < 0 || n > cm.maxOrder {
		return nil, hermiteErrorf("Row", n, ErrInvalidArgument)
	}

	return cm.dense.Row(n)
}

// Coefficients returns a copy of row n without the leading zeros, i.e. the
// n+1 coefficients of the order-n polynomial from x^n down to x^0.
func (cm *CoefficientMatrix) Coefficients(n int) ([]float64, error) {
	view, err := cm.rowView(n)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), view...), nil
}

// Eval evaluates row n at x by Horner's method.
func (cm *CoefficientMatrix) Eval(n int, x float64) (float64, error) {
	view, err := cm.rowView(n)
	if err != nil {
		return 0, err
	}

	return Horner(view, x), nil
}

// EvalComplex evaluates row n at z by Horner's method.
func (cm *CoefficientMatrix) EvalComplex(n int, z complex128) (complex128, error) {
	view, err := cm.rowView(n)
	if err != nil {
		return 0, err
	}

	return HornerComplex(view, z), nil
}

// Dense returns a deep copy of the table as a *matrix.Dense.
func (cm *CoefficientMatrix) Dense() *matrix.Dense { return cm.dense.CloneDense() }

// String renders the table row by row.
func (cm *CoefficientMatrix) String() string { return cm.dense.String() }

// rowView returns the trimmed, non-copied slice of row n.
func (cm *CoefficientMatrix) rowView(n int) ([]float64, error) {
	if n < 0 || n > cm.maxOrder {
		return nil, hermiteErrorf("Row", n, ErrInvalidArgument)
	}
	full, err := cm.dense.RowView(n)
	if err != nil {
		return nil, err
	}

	return full[cm.maxOrder-n:], nil
}
