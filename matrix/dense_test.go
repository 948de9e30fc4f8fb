// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/viterbi/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtRowOutOfBounds ensures At() and Row() return ErrOutOfRange on invalid access.
func TestAtRowOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestApplyNaNPolicy checks the default finite-only policy and its opt-out.
func TestApplyNaNPolicy(t *testing.T) {
	toInf := func(_, _ int, _ float64) float64 { return math.Inf(-1) }

	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Apply(toInf), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoNaNInfCheck())
	require.NoError(t, err)
	require.NoError(t, loose.Apply(toInf))
	v, err := loose.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, -1))
}

// TestNewFromRows covers the happy path, ragged input and the NaN policy.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewFromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoNaNInfCheck())
	require.NoError(t, err)
}

// TestNewFromRowsDoesNotAlias verifies the input rows are copied.
func TestNewFromRowsDoesNotAlias(t *testing.T) {
	src := [][]float64{{1, 2}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	src[0][0] = 42

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRowAliasesStorage checks Row returns a live, capacity-limited view.
func TestRowAliasesStorage(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	require.Equal(t, 2, cap(row), "row must not expose the next row's storage")

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return 7
		}
		return v
	}))
	require.Equal(t, 7.0, row[0])
}

// TestCloneAndTranspose verifies deep copies and the transposed layout.
func TestCloneAndTranspose(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Apply(func(_, _ int, _ float64) float64 { return 9 }))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "clone must be independent")

	tr, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a, _ := m.At(i, j)
			b, _ := tr.At(j, i)
			require.Equal(t, a, b)
		}
	}
}

// TestCloneOverridesPolicy checks that Clone options replace the inherited policy.
func TestCloneOverridesPolicy(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 1}})
	require.NoError(t, err)

	lg := m.Clone(matrix.WithNoNaNInfCheck())
	require.NoError(t, lg.Apply(func(_, _ int, v float64) float64 { return math.Log(v) }))
	v, _ := lg.At(0, 0)
	require.True(t, math.IsInf(v, -1))

	// The source matrix keeps the strict policy.
	err = m.Apply(func(_, _ int, v float64) float64 { return math.Log(v) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
