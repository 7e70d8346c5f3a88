// Package hermite builds and evaluates physicists' Hermite polynomials H_n.
//
// 🚀 What is H_n?
//
//	H_0(x) = 1, H_1(x) = 2x and, for n ≥ 2,
//	  H_n(x) = 2x·H_{n-1}(x) − 2(n−1)·H_{n-2}(x).
//	They are the polynomial part of the quantum harmonic oscillator
//	eigenfunctions ψ_n(x) = (2ⁿ n! √π)^(−1/2) e^(−x²/2) H_n(x).
//
// ✨ Key features:
//   - BuildCoefficientMatrix(N): an (N+1)×(N+1) table, row n holding the
//     coefficients of H_n in descending-power order, built purely from the
//     three-term recurrence (no factorials, no powers).
//   - BuildNormalizedCoefficientMatrix(N): same layout with row n scaled by
//     the oscillator normalization constant of order n.
//   - Horner / HornerComplex: evaluate a descending-power coefficient row at
//     a real or complex point.
//   - LogNorm / Norm: the normalization constant (2ⁿ n! √π)^(−1/2), computed
//     through lgamma so it never overflows.
//
// ⚙️ Usage:
//
//	cm, err := hermite.BuildCoefficientMatrix(4)
//	if err != nil {
//	  // handle ErrInvalidArgument
//	}
//	h3, _ := cm.Eval(3, 0.5) // H_3(0.5) = 8·0.125 − 12·0.5 = −5
//
// Layout:
//
//	Row n, column j holds the coefficient of x^(N−j). Rows of degree < N carry
//	leading zeros, so a single Horner routine consumes any row directly:
//
//	  N = 2:   [0, 0,  1]   H_0 = 1
//	           [0, 2,  0]   H_1 = 2x
//	           [4, 0, -2]   H_2 = 4x² − 2
//
// Precision:
//
//	Coefficients are integers and stay exact in float64 while they fit in
//	53 bits (through roughly N = 25). Beyond that they are rounded, and
//	evaluating high rows by Horner at large |x| suffers cancellation; prefer
//	the normalized recurrence in package wavefunction for large orders.
//
// Performance:
//
//   - Build:  O(N²) time and memory.
//   - Horner: O(deg) per point.
package hermite
