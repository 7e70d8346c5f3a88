package wavefunction

import (
	"math"
	"math/cmplx"
)

// Recurrence (fast) kernels.
//
// Algorithm (per point x, batched over all points):
//  1. ψ_0 = π^(−1/4)·e^(−x²/2). The envelope is not multiplied in; it is kept
//     as a log-scale offset s = −x²/2 so it cannot underflow.
//  2. ψ_k = a_k·x·ψ_{k−1} − b_k·ψ_{k−2} on the scaled values (see step).
//  3. Whenever a scaled value exceeds 2^500 both live values are divided by
//     2^500 and s grows by 500·ln2.
//  4. ψ_k(x) = scaled_k·e^s, folded through logs when e^s alone would
//     under- or overflow.
//
// Magnitudes therefore never grow like n! or 2ⁿ, and orders in the thousands
// evaluate without overflow.

var psi0Seed = math.Pow(math.Pi, -0.25) // ψ_0 without the envelope

const (
	rescaleAbove = 0x1p+500 // rescale trigger
	rescaleBy    = 0x1p-500 // rescale factor
	expSafe      = 700.0    // |s| below which e^s is representable
)

var rescaleLog = 500 * math.Ln2 // ln(2^500)

// recurrenceReal evaluates ψ over xs for orders 0..len(ladder).
// With keepAll the result is (n+1)×len(xs) row-major (orders by points);
// otherwise only ψ_n is returned (len(xs) values).
// Complexity: O(n·m) time, O(m) scratch.
func recurrenceReal(ladder []step, xs []float64, keepAll bool) []float64 {
	n, m := len(ladder), len(xs)
	rows := 1
	if keepAll {
		rows = n + 1
	}
	out := make([]float64, rows*m)

	scratch := make([]float64, 3*m)
	prev, cur, shift := scratch[:m], scratch[m:2*m], scratch[2*m:]
	for j, x := range xs {
		cur[j] = psi0Seed
		shift[j] = -0.5 * x * x
	}
	if keepAll {
		emitReal(out[:m], cur, shift)
	}

	for k, s := range ladder {
		for j, x := range xs {
			next := s.a*x*cur[j] - s.b*prev[j]
			prev[j], cur[j] = cur[j], next
			if math.Abs(next) > rescaleAbove {
				prev[j] *= rescaleBy
				cur[j] *= rescaleBy
				shift[j] += rescaleLog
			}
		}
		if keepAll {
			emitReal(out[(k+1)*m:(k+2)*m], cur, shift)
		}
	}
	if !keepAll {
		emitReal(out, cur, shift)
	}

	return out
}

// emitReal writes vals[j]·e^shift[j] into dst.
func emitReal(dst, vals, shift []float64) {
	for j, v := range vals {
		dst[j] = unshiftReal(v, shift[j])
	}
}

// unshiftReal returns v·e^s without letting e^s under- or overflow on its own.
func unshiftReal(v, s float64) float64 {
	if math.Abs(s) < expSafe {
		return v * math.Exp(s)
	}
	if v == 0 {
		return 0
	}

	return math.Copysign(math.Exp(math.Log(math.Abs(v))+s), v)
}

// recurrenceComplex is recurrenceReal over complex points. The envelope
// offset −z²/2 is complex; rescaling only moves its real part.
func recurrenceComplex(ladder []step, zs []complex128, keepAll bool) []complex128 {
	n, m := len(ladder), len(zs)
	rows := 1
	if keepAll {
		rows = n + 1
	}
	out := make([]complex128, rows*m)

	scratch := make([]complex128, 3*m)
	prev, cur, shift := scratch[:m], scratch[m:2*m], scratch[2*m:]
	for j, z := range zs {
		cur[j] = complex(psi0Seed, 0)
		shift[j] = -0.5 * z * z
	}
	if keepAll {
		emitComplex(out[:m], cur, shift)
	}

	for k, s := range ladder {
		a, b := complex(s.a, 0), complex(s.b, 0)
		for j, z := range zs {
			next := a*z*cur[j] - b*prev[j]
			prev[j], cur[j] = cur[j], next
			if magnitude(next) > rescaleAbove {
				prev[j] *= complex(rescaleBy, 0)
				cur[j] *= complex(rescaleBy, 0)
				shift[j] += complex(rescaleLog, 0)
			}
		}
		if keepAll {
			emitComplex(out[(k+1)*m:(k+2)*m], cur, shift)
		}
	}
	if !keepAll {
		emitComplex(out, cur, shift)
	}

	return out
}

// emitComplex writes vals[j]·e^shift[j] into dst.
func emitComplex(dst, vals, shift []complex128) {
	for j, v := range vals {
		dst[j] = unshiftComplex(v, shift[j])
	}
}

// unshiftComplex returns v·e^s, going through cmplx.Log when e^s alone
// would under- or overflow.
func unshiftComplex(v, s complex128) complex128 {
	if math.Abs(real(s)) < expSafe {
		return v * cmplx.Exp(s)
	}
	if v == 0 {
		return 0
	}

	return cmplx.Exp(cmplx.Log(v) + s)
}

// magnitude is max(|re|, |im|): a cheap stand-in for cmplx.Abs when only
// the order of magnitude matters.
func magnitude(z complex128) float64 {
	return math.Max(math.Abs(real(z)), math.Abs(imag(z)))
}
