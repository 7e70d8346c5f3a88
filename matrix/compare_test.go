// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastwave/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the generic
// At-based path in AllClose.
type hide struct{ matrix.Matrix }

// TestAllClose covers tolerances, NaN handling and both comparison paths.
func TestAllClose(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{1, 2 + 1e-10}, {3, 4}})
	require.NoError(t, err)
	far, err := matrix.FromRows([][]float64{{1, 2}, {3, 4.1}})
	require.NoError(t, err)
	nan, err := matrix.FromRows([][]float64{{1, 2}, {3, math.NaN()}})
	require.NoError(t, err)

	paths := map[string]func(matrix.Matrix) matrix.Matrix{
		"dense":   func(m matrix.Matrix) matrix.Matrix { return m },
		"generic": func(m matrix.Matrix) matrix.Matrix { return hide{m} },
	}
	for name, wrap := range paths {
		wrap := wrap
		t.Run(name, func(t *testing.T) {
			ok, err := matrix.AllClose(wrap(a), wrap(b), 0, 1e-9)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = matrix.AllClose(wrap(a), wrap(b), 0, 1e-11)
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = matrix.AllClose(wrap(a), wrap(far), 0.05, 0)
			require.NoError(t, err)
			assert.True(t, ok, "relative tolerance scales with |b|")

			ok, err = matrix.AllClose(wrap(nan), wrap(nan), 1, 1)
			require.NoError(t, err)
			assert.False(t, ok, "NaN never compares close")
		})
	}
}

// TestAllClose_Errors covers rejected tolerances and shapes.
func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, b, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(nil, a, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	ok, err := matrix.AllClose(a, a.Clone(), -1e-3, -1e-3)
	require.NoError(t, err)
	assert.True(t, ok, "negative tolerances are taken as absolute values")
}
