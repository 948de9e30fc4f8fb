// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/viterbi/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	sq, _ := matrix.NewDense(3, 3)
	rect, _ := matrix.NewDense(2, 3)
	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
}

// TestValidateVecLen covers nil, short and exact vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateVecFiniteNonNegative walks the table of bad entries.
func TestValidateVecFiniteNonNegative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    []float64
		want error
	}{
		{"ok", []float64{0, 0.5, 1}, nil},
		{"empty", []float64{}, nil},
		{"nan", []float64{0.1, math.NaN()}, matrix.ErrNaNInf},
		{"inf", []float64{math.Inf(1)}, matrix.ErrNaNInf},
		{"negative", []float64{0.5, -0.1}, matrix.ErrNegative},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecFiniteNonNegative(tc.x)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestValidateVecStochastic checks the sum tolerance and eps guards.
func TestValidateVecStochastic(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecStochastic([]float64{0.25, 0.75}, matrix.DefaultEpsilon))
	require.NoError(t, matrix.ValidateVecStochastic([]float64{0.5, 0.49}, 0.02))
	require.NoError(t, matrix.ValidateVecStochastic([]float64{0.5, 0.49}, -0.02), "negative eps is flipped")
	require.ErrorIs(t, matrix.ValidateVecStochastic([]float64{0.5, 0.49}, 1e-3), matrix.ErrNotStochastic)
	require.ErrorIs(t, matrix.ValidateVecStochastic([]float64{1}, math.NaN()), matrix.ErrNaNInf)
}
