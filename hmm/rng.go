// Package hmm - RNG utilities for synthetic models and sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical models and samples across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each call creates its own stream.
package hmm

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// categorical draws an index from the (not necessarily normalized) weights p.
// Zero-weight entries are never returned unless every weight is zero, in which
// case index 0 is returned.
func categorical(rng *rand.Rand, p []float64) int {
	total := floats.Sum(p)
	if total <= 0 {
		return 0
	}

	u := rng.Float64() * total
	last := 0
	for i, v := range p {
		if v <= 0 {
			continue
		}
		last = i
		if u < v {
			return i
		}
		u -= v
	}

	// Rounding left u ≥ 0 after the final subtraction.
	return last
}
