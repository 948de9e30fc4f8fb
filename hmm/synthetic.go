// Package hmm - synthetic models for benchmarks, property tests and the CLI
// generator.
package hmm

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// minWeight keeps every generated probability strictly positive so random
// models never contain unreachable states or impossible symbols.
const minWeight = 0.05

// RandomModel builds an S-state, A-symbol model whose start vector and rows
// are random probability distributions drawn from a deterministic stream.
// seed==0 selects a fixed default seed.
//
// Errors:
//   - ErrEmptyInput if states < 1 or symbols < 1.
//
// Complexity: O(S² + S·A).
func RandomModel(states, symbols int, seed int64, opts ...Option) (*Model, error) {
	if states < 1 || symbols < 1 {
		return nil, fmt.Errorf("hmm: RandomModel(%d, %d): %w", states, symbols, ErrEmptyInput)
	}
	start, trans, emit := RandomParams(states, symbols, seed)

	return NewModel(start, trans, emit, opts...)
}

// RandomParams returns the raw start/transition/emission tables RandomModel
// would use for the same arguments. Sizes below 1 are clamped to 1.
func RandomParams(states, symbols int, seed int64) (start []float64, trans, emit [][]float64) {
	if states < 1 {
		states = 1
	}
	if symbols < 1 {
		symbols = 1
	}
	rng := rngFromSeed(seed)

	start = randomDistribution(rng, states)
	trans = make([][]float64, states)
	for i := range trans {
		trans[i] = randomDistribution(rng, states)
	}
	emit = make([][]float64, states)
	for i := range emit {
		emit[i] = randomDistribution(rng, symbols)
	}

	return start, trans, emit
}

// randomDistribution returns n positive weights normalized to sum to 1.
func randomDistribution(rng *rand.Rand, n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = minWeight + rng.Float64()
	}
	floats.Scale(1/floats.Sum(p), p)

	return p
}

// Sample draws a hidden path of the given length and the observations it
// emits. The same seed always yields the same pair.
//
// Errors:
//   - ErrEmptyInput if length < 1.
//
// Complexity: O(length·(S + A)).
func (m *Model) Sample(length int, seed int64) (states, obs []int, err error) {
	if length < 1 {
		return nil, nil, fmt.Errorf("hmm: Sample(%d): %w", length, ErrEmptyInput)
	}
	rng := rngFromSeed(seed)
	states = make([]int, length)
	obs = make([]int, length)

	var row []float64
	for t := 0; t < length; t++ {
		if t == 0 {
			states[t] = categorical(rng, m.start)
		} else {
			row, _ = m.trans.Row(states[t-1])
			states[t] = categorical(rng, row)
		}
		row, _ = m.emit.Row(states[t])
		obs[t] = categorical(rng, row)
	}

	return states, obs, nil
}
