package wavefunction

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fastwave/hermite"
	"github.com/katalvlaran/fastwave/matrix"
)

// Table kernels.
//
//	ψ_k(x) = H_k(x) · exp(LogNorm(k) − x²/2)
//
// H_k comes from the cached coefficient rows via Horner; the normalization is
// combined with the envelope in the exponent so the constant itself never
// overflows. Large orders still lose accuracy to cancellation inside Horner,
// which is why callers are held to the evaluator's TableOrderLimit.
//
// For real x every ψ_n obeys Cramér's bound |ψ_n(x)| ≤ π^(−1/4) ≈ 0.7511, so a
// real table value above cramerBound is cancellation noise and is rejected.

// cramerBound is π^(−1/4) plus slack for rounding at n = 0, x = 0.
const cramerBound = 0.76

// tableReal evaluates ψ_n (or ψ_0..ψ_n with keepAll) over xs from a.
// Returns ErrNumericInstability if any value is not finite or exceeds
// cramerBound.
// Complexity: O(n·m) single-mode, O(n²·m) multi-mode.
func tableReal(a *artifact, n int, xs []float64, keepAll bool) ([]float64, error) {
	m := len(xs)
	lo := n
	if keepAll {
		lo = 0
	}
	out := make([]float64, (n-lo+1)*m)
	for k := lo; k <= n; k++ {
		coeffs, ln := a.rows[k], a.logNorms[k]
		row := out[(k-lo)*m : (k-lo+1)*m]
		for j, x := range xs {
			row[j] = hermite.Horner(coeffs, x) * math.Exp(ln-0.5*x*x)
		}
	}
	if err := matrix.ValidateFinite(out); err != nil {
		return nil, fmt.Errorf("table(n=%d): %w (%v)", n, ErrNumericInstability, err)
	}
	for i, v := range out {
		if math.Abs(v) > cramerBound {
			return nil, fmt.Errorf("table(n=%d)[%d]: |ψ|=%g above %g: %w", n, i, math.Abs(v), cramerBound, ErrNumericInstability)
		}
	}

	return out, nil
}

// tableComplex is tableReal over complex points.
func tableComplex(a *artifact, n int, zs []complex128, keepAll bool) ([]complex128, error) {
	m := len(zs)
	lo := n
	if keepAll {
		lo = 0
	}
	out := make([]complex128, (n-lo+1)*m)
	for k := lo; k <= n; k++ {
		coeffs, ln := a.rows[k], complex(a.logNorms[k], 0)
		row := out[(k-lo)*m : (k-lo+1)*m]
		for j, z := range zs {
			row[j] = hermite.HornerComplex(coeffs, z) * cmplx.Exp(ln-0.5*z*z)
		}
	}
	for i, v := range out {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("table(n=%d)[%d]: %w", n, i, ErrNumericInstability)
		}
	}

	return out, nil
}
