package wavefunction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fastwave/hermite"
)

// step holds the coefficients of one normalized recurrence step:
//
//	ψ_k = a·x·ψ_{k-1} − b·ψ_{k-2},   a = √(2/k), b = √((k−1)/k).
//
// The ratio Norm(k)/Norm(k−1) = 1/√(2k) is folded into a and b, so the
// normalization is applied incrementally instead of as a final n!-sized factor.
type step struct {
	a, b float64
}

// artifact is everything about order n that does not depend on x.
// Artifacts are immutable once built and may be shared by concurrent calls.
type artifact struct {
	// Recurrence: ladder[k-1] is the step producing ψ_k, k = 1..order.
	ladder []step

	// Table: rows[k] are the H_k coefficients (descending powers, no leading
	// zeros) and logNorms[k] = LogNorm(k), k = 0..order.
	rows     [][]float64
	logNorms []float64
}

// buildArtifact computes the artifact of order n for alg.
func buildArtifact(alg Algorithm, n int) (*artifact, error) {
	if alg == Table {
		return buildTableArtifact(n)
	}

	return buildLadderArtifact(n), nil
}

// buildLadderArtifact precomputes the recurrence steps 1..n.
// Complexity: O(n).
func buildLadderArtifact(n int) *artifact {
	ladder := make([]step, n)
	for k := 1; k <= n; k++ {
		fk := float64(k)
		ladder[k-1] = step{a: math.Sqrt(2 / fk), b: math.Sqrt((fk - 1) / fk)}
	}

	return &artifact{ladder: ladder}
}

// buildTableArtifact extracts the coefficient rows 0..n of a freshly built
// table together with their log normalization constants.
// Complexity: O(n²).
func buildTableArtifact(n int) (*artifact, error) {
	cm, err := hermite.BuildCoefficientMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("table artifact: %w: %w", ErrInvalidArgument, err)
	}
	rows := make([][]float64, n+1)
	logNorms := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		if rows[k], err = cm.Coefficients(k); err != nil {
			return nil, fmt.Errorf("table artifact(k=%d): %w: %w", k, ErrInvalidArgument, err)
		}
		logNorms[k] = hermite.LogNorm(k)
	}

	return &artifact{rows: rows, logNorms: logNorms}, nil
}
