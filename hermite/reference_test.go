// Package hermite_test: exact reference polynomials used as a test oracle.
//
// The reference uses the explicit sum
//
//	H_n(x) = n! Σ_{m=0}^{⌊n/2⌋} (−1)^m (2x)^(n−2m) / (m!·(n−2m)!)
//
// evaluated in math/big, i.e. independently of the recurrence under test.
package hermite_test

import (
	"fmt"
	"math/big"
	"strings"
)

// factorial returns n! as a big integer.
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(max(n, 1)))
}

// referenceHermite returns the exact coefficients of H_n in ascending power
// order: out[k] multiplies x^k.
func referenceHermite(n int) []*big.Int {
	out := make([]*big.Int, n+1)
	for k := range out {
		out[k] = new(big.Int)
	}
	nf := factorial(n)
	for m := 0; 2*m <= n; m++ {
		p := n - 2*m
		den := new(big.Int).Mul(factorial(m), factorial(p))
		term := new(big.Int).Quo(nf, den) // exact: n!/(m!p!) is an integer
		term.Lsh(term, uint(p))           // × 2^p
		if m%2 == 1 {
			term.Neg(term)
		}
		out[p] = term
	}

	return out
}

// referenceString renders H_n the way a computer-algebra system would,
// e.g. "4x^2 - 2".
func referenceString(n int) string {
	coeffs := referenceHermite(n)
	var sb strings.Builder
	for p := n; p >= 0; p-- {
		c := coeffs[p]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(c)
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if p == 0 || abs.Cmp(big.NewInt(1)) != 0 {
			sb.WriteString(abs.String())
		}
		switch p {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString(fmt.Sprintf("x^%d", p))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// referenceRow lays out the exact coefficients of H_n the same way as a
// CoefficientMatrix row of width maxOrder+1 (descending powers).
func referenceRow(n, maxOrder int) []float64 {
	coeffs := referenceHermite(n)
	row := make([]float64, maxOrder+1)
	for p, c := range coeffs {
		f, _ := new(big.Float).SetInt(c).Float64()
		row[maxOrder-p] = f
	}

	return row
}
