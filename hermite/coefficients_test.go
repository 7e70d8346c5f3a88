package hermite_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastwave/hermite"
	"github.com/katalvlaran/fastwave/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildCoefficientMatrix_Negative ensures a negative order is rejected.
func TestBuildCoefficientMatrix_Negative(t *testing.T) {
	_, err := hermite.BuildCoefficientMatrix(-1)
	require.ErrorIs(t, err, hermite.ErrInvalidArgument)

	_, err = hermite.BuildNormalizedCoefficientMatrix(-3)
	require.ErrorIs(t, err, hermite.ErrInvalidArgument)
}

// TestBuildCoefficientMatrix_N2Literal checks every entry of the N=2 table.
func TestBuildCoefficientMatrix_N2Literal(t *testing.T) {
	cm, err := hermite.BuildCoefficientMatrix(2)
	require.NoError(t, err)

	want, err := matrix.FromRows([][]float64{
		{0, 0, 1},  // H0 = 1
		{0, 2, 0},  // H1 = 2x
		{4, 0, -2}, // H2 = 4x^2 - 2
	})
	require.NoError(t, err)

	ok, err := matrix.AllClose(cm.Dense(), want, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "N=2 table mismatch:\n%s", cm)
}

// TestBuildCoefficientMatrix_SeedRows verifies rows 0 and 1 for a range of N.
func TestBuildCoefficientMatrix_SeedRows(t *testing.T) {
	for n := 0; n <= 12; n++ {
		cm, err := hermite.BuildCoefficientMatrix(n)
		require.NoError(t, err)
		require.Equal(t, n+1, cm.Rows())
		require.Equal(t, n+1, cm.Cols())
		require.Equal(t, n, cm.MaxOrder())

		row0, err := cm.Row(0)
		require.NoError(t, err)
		for j, v := range row0 {
			if j == n {
				assert.Equal(t, 1.0, v, "N=%d row0[%d]", n, j)
			} else {
				assert.Zero(t, v, "N=%d row0[%d]", n, j)
			}
		}

		if n == 0 {
			continue
		}
		row1, err := cm.Row(1)
		require.NoError(t, err)
		for j, v := range row1 {
			if j == n-1 {
				assert.Equal(t, 2.0, v, "N=%d row1[%d]", n, j)
			} else {
				assert.Zero(t, v, "N=%d row1[%d]", n, j)
			}
		}
	}
}

// TestBuildCoefficientMatrix_MatchesReference compares every row against the
// exact big-integer oracle. Coefficients stay below 2^53 through N=20, so the
// comparison is exact.
func TestBuildCoefficientMatrix_MatchesReference(t *testing.T) {
	const maxOrder = 20
	cm, err := hermite.BuildCoefficientMatrix(maxOrder)
	require.NoError(t, err)

	for n := 0; n <= maxOrder; n++ {
		row, err := cm.Row(n)
		require.NoError(t, err)
		assert.Equal(t, referenceRow(n, maxOrder), row, "row %d", n)
	}
}

// TestReferenceStrings pins the oracle itself to the textbook forms.
func TestReferenceStrings(t *testing.T) {
	assert.Equal(t, "1", referenceString(0))
	assert.Equal(t, "2x", referenceString(1))
	assert.Equal(t, "4x^2 - 2", referenceString(2))
	assert.Equal(t, "8x^3 - 12x", referenceString(3))
	assert.Equal(t, "16x^4 - 48x^2 + 12", referenceString(4))
	assert.Equal(t, "32x^5 - 160x^3 + 120x", referenceString(5))
}

// TestBuildCoefficientMatrix_SmallOrdersLiteral cross-checks n ∈ {0..5}
// against the oracle for several table widths.
func TestBuildCoefficientMatrix_SmallOrdersLiteral(t *testing.T) {
	for _, maxOrder := range []int{5, 7, 11} {
		cm, err := hermite.BuildCoefficientMatrix(maxOrder)
		require.NoError(t, err)
		for n := 0; n <= 5; n++ {
			row, err := cm.Row(n)
			require.NoError(t, err)
			require.Equal(t, referenceRow(n, maxOrder), row, "N=%d n=%d", maxOrder, n)
		}
	}
}

// TestBuildCoefficientMatrix_RecurrenceIdentity evaluates rows as polynomials
// and checks H_n = 2x·H_{n-1} − 2(n−1)·H_{n-2}.
func TestBuildCoefficientMatrix_RecurrenceIdentity(t *testing.T) {
	const maxOrder = 30
	cm, err := hermite.BuildCoefficientMatrix(maxOrder)
	require.NoError(t, err)

	for _, x := range []float64{-3.5, -1, -0.25, 0, 0.5, 1.7, 4} {
		for n := 2; n <= maxOrder; n++ {
			hn, err := cm.Eval(n, x)
			require.NoError(t, err)
			h1, _ := cm.Eval(n-1, x)
			h2, _ := cm.Eval(n-2, x)
			want := 2*x*h1 - 2*float64(n-1)*h2
			assert.InDelta(t, want, hn, 1e-9*math.Max(1, math.Abs(want)), "n=%d x=%g", n, x)
		}
	}
}

// TestBuildCoefficientMatrix_Deterministic ensures two builds are identical.
func TestBuildCoefficientMatrix_Deterministic(t *testing.T) {
	a, err := hermite.BuildCoefficientMatrix(15)
	require.NoError(t, err)
	b, err := hermite.BuildCoefficientMatrix(15)
	require.NoError(t, err)
	assert.Equal(t, a.Dense().ToRows(), b.Dense().ToRows())
}

// TestCoefficientMatrix_Immutable verifies accessors hand out copies.
func TestCoefficientMatrix_Immutable(t *testing.T) {
	cm, err := hermite.BuildCoefficientMatrix(3)
	require.NoError(t, err)

	d := cm.Dense()
	require.NoError(t, d.Set(0, 3, 99)) // mutate the copy
	row, err := cm.Row(0)
	require.NoError(t, err)
	row[3] = -7 // mutate the returned row
	coeffs, err := cm.Coefficients(3)
	require.NoError(t, err)
	coeffs[0] = 0

	v, err := cm.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	again, _ := cm.Coefficients(3)
	assert.Equal(t, []float64{8, 0, -12, 0}, again)
}

// TestCoefficientMatrix_OutOfRange checks error paths of the accessors.
func TestCoefficientMatrix_OutOfRange(t *testing.T) {
	cm, err := hermite.BuildCoefficientMatrix(4)
	require.NoError(t, err)

	_, err = cm.Row(5)
	assert.ErrorIs(t, err, hermite.ErrInvalidArgument)
	_, err = cm.Coefficients(-1)
	assert.ErrorIs(t, err, hermite.ErrInvalidArgument)
	_, err = cm.Eval(7, 1)
	assert.ErrorIs(t, err, hermite.ErrInvalidArgument)
	_, err = cm.EvalComplex(-2, 1i)
	assert.ErrorIs(t, err, hermite.ErrInvalidArgument)
	_, err = cm.At(0, 5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestCoefficients_Trimmed checks the trimmed view carries exactly n+1 entries.
func TestCoefficients_Trimmed(t *testing.T) {
	cm, err := hermite.BuildCoefficientMatrix(6)
	require.NoError(t, err)

	c2, err := cm.Coefficients(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, -2}, c2)

	c0, err := cm.Coefficients(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, c0)
}

// TestBuildNormalizedCoefficientMatrix_MatchesScaledRaw compares the
// normalized table with raw rows scaled by Norm(n).
func TestBuildNormalizedCoefficientMatrix_MatchesScaledRaw(t *testing.T) {
	const maxOrder = 30
	raw, err := hermite.BuildCoefficientMatrix(maxOrder)
	require.NoError(t, err)
	norm, err := hermite.BuildNormalizedCoefficientMatrix(maxOrder)
	require.NoError(t, err)
	require.True(t, norm.IsNormalized())
	require.False(t, raw.IsNormalized())

	for n := 0; n <= maxOrder; n++ {
		rr, _ := raw.Row(n)
		nr, _ := norm.Row(n)
		scale := hermite.Norm(n)
		for j := range rr {
			want := rr[j] * scale
			assert.InDelta(t, want, nr[j], 1e-12*math.Max(1, math.Abs(want)), "n=%d j=%d", n, j)
		}
	}
}

// TestBuildNormalizedCoefficientMatrix_LargeOrderFinite ensures the
// normalized recurrence keeps every entry finite where the raw one overflows.
func TestBuildNormalizedCoefficientMatrix_LargeOrderFinite(t *testing.T) {
	cm, err := hermite.BuildNormalizedCoefficientMatrix(300)
	require.NoError(t, err)

	for n := 0; n <= cm.MaxOrder(); n++ {
		row, err := cm.Row(n)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateFinite(row), "row %d", n)
	}
}
