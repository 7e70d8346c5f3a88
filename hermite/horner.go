package hermite

import "math"

// Horner evaluates the polynomial whose coefficients are given in
// descending-power order (coeffs[0] multiplies x^(len−1)) at x.
// An empty slice evaluates to 0.
// Complexity: O(len(coeffs)).
func Horner(coeffs []float64, x float64) float64 {
	var acc float64
	for _, c := range coeffs {
		acc = acc*x + c
	}

	return acc
}

// HornerComplex is Horner over a complex point with real coefficients.
func HornerComplex(coeffs []float64, z complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// logSqrtPi is ½·ln π, the √π part of the normalization.
var logSqrtPi = 0.5 * math.Log(math.Pi)

// LogNorm returns ln((2ⁿ n! √π)^(−1/2)) = −½(n·ln2 + ln n! + ½·ln π).
// The factorial goes through math.Lgamma so the constant stays finite for
// any order. Negative n yields NaN.
func LogNorm(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	lfact, _ := math.Lgamma(float64(n) + 1)

	return -0.5 * (float64(n)*math.Ln2 + lfact + logSqrtPi)
}

// Norm returns (2ⁿ n! √π)^(−1/2). It underflows to 0 for orders past ~300;
// combine LogNorm with other exponents when that matters.
func Norm(n int) float64 {
	return math.Exp(LogNorm(n))
}
