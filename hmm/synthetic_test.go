package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/matrix"
)

// TestRandomParams_AreDistributions: every generated vector sums to 1.
func TestRandomParams_AreDistributions(t *testing.T) {
	start, trans, emit := hmm.RandomParams(5, 7, 0)
	require.NoError(t, matrix.ValidateVecFiniteNonNegative(start))
	require.NoError(t, matrix.ValidateVecStochastic(start, 1e-12))

	require.Len(t, trans, 5)
	for i := range trans {
		require.Len(t, trans[i], 5)
		require.NoError(t, matrix.ValidateVecFiniteNonNegative(trans[i]))
		require.NoError(t, matrix.ValidateVecStochastic(trans[i], 1e-12), "transition row %d", i)
	}
	require.Len(t, emit, 5)
	for i := range emit {
		require.Len(t, emit[i], 7)
		require.NoError(t, matrix.ValidateVecFiniteNonNegative(emit[i]))
		require.NoError(t, matrix.ValidateVecStochastic(emit[i], 1e-12), "emission row %d", i)
	}

	// Strict construction accepts what the generator produces.
	_, err := hmm.RandomModel(5, 7, 0, hmm.WithStochasticTolerance(1e-12))
	require.NoError(t, err)
}

// TestRandomParams_Deterministic: same seed, same tables; seed 0 is a fixed default.
func TestRandomParams_Deterministic(t *testing.T) {
	s1, t1, e1 := hmm.RandomParams(4, 3, 99)
	s2, t2, e2 := hmm.RandomParams(4, 3, 99)
	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, e1, e2)

	d1, _, _ := hmm.RandomParams(4, 3, 0)
	d2, _, _ := hmm.RandomParams(4, 3, 0)
	assert.Equal(t, d1, d2)

	o, _, _ := hmm.RandomParams(4, 3, 100)
	assert.NotEqual(t, s1, o)
}

// TestRandomModel_Errors rejects empty sizes.
func TestRandomModel_Errors(t *testing.T) {
	_, err := hmm.RandomModel(0, 3, 1)
	assert.ErrorIs(t, err, hmm.ErrEmptyInput)
	_, err = hmm.RandomModel(3, 0, 1)
	assert.ErrorIs(t, err, hmm.ErrEmptyInput)
}

// TestSample_ShapeAndSupport: samples stay in range and respect zero probabilities.
func TestSample_ShapeAndSupport(t *testing.T) {
	// State 1 is unreachable: zero start mass and no incoming transitions.
	m, err := hmm.NewModel(
		[]float64{1, 0, 0},
		[][]float64{{0.5, 0, 0.5}, {0.3, 0.3, 0.4}, {0.5, 0, 0.5}},
		[][]float64{{1, 0}, {0, 1}, {0.5, 0.5}},
	)
	require.NoError(t, err)

	states, obs, err := m.Sample(200, 5)
	require.NoError(t, err)
	require.Len(t, states, 200)
	require.Len(t, obs, 200)
	assert.Equal(t, 0, states[0])
	for i, st := range states {
		assert.NotEqual(t, 1, st, "state 1 is unreachable")
		if st == 0 {
			assert.Equal(t, 0, obs[i], "state 0 only emits symbol 0")
		}
	}

	again, obs2, err := m.Sample(200, 5)
	require.NoError(t, err)
	assert.Equal(t, states, again)
	assert.Equal(t, obs, obs2)

	_, _, err = m.Sample(0, 5)
	assert.ErrorIs(t, err, hmm.ErrEmptyInput)
}

// TestDecode_BoostingDecodedPathKeepsIt: doubling the emission probability of
// every (state, symbol) pair used by the decoded path can only make that path
// relatively more likely, so decoding again must return the same path.
// Doubling is exact in binary floating point.
func TestDecode_BoostingDecodedPathKeepsIt(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		start, trans, emit := hmm.RandomParams(5, 4, seed)
		m, err := hmm.NewModel(start, trans, emit)
		require.NoError(t, err)
		_, obs, err := m.Sample(25, seed+100)
		require.NoError(t, err)

		path, err := m.Decode(obs)
		require.NoError(t, err)

		boosted := make(map[[2]int]bool)
		for i, st := range path {
			boosted[[2]int{st, obs[i]}] = true
		}
		for k := range boosted {
			emit[k[0]][k[1]] *= 2
		}

		m2, err := hmm.NewModel(start, trans, emit)
		require.NoError(t, err)
		path2, err := m2.Decode(obs)
		require.NoError(t, err)
		assert.Equalf(t, path, path2, "seed=%d", seed)
	}
}
