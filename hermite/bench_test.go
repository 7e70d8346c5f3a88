package hermite_test

import (
	"testing"

	"github.com/katalvlaran/fastwave/hermite"
)

// benchmarkBuild runs BuildCoefficientMatrix for a fixed N.
func benchmarkBuild(b *testing.B, maxOrder int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hermite.BuildCoefficientMatrix(maxOrder); err != nil {
			b.Fatalf("build failed: %v", err)
		}
	}
}

// BenchmarkBuildCoefficientMatrix_60 mirrors the table size most callers keep around.
func BenchmarkBuildCoefficientMatrix_60(b *testing.B) { benchmarkBuild(b, 60) }

// BenchmarkBuildCoefficientMatrix_200 measures the O(N²) growth.
func BenchmarkBuildCoefficientMatrix_200(b *testing.B) { benchmarkBuild(b, 200) }

// BenchmarkHorner_Row60 evaluates the highest row of a 60-order table.
func BenchmarkHorner_Row60(b *testing.B) {
	cm, err := hermite.BuildCoefficientMatrix(60)
	if err != nil {
		b.Fatal(err)
	}
	coeffs, _ := cm.Coefficients(60)

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += hermite.Horner(coeffs, 0.75)
	}
	_ = sink
}
