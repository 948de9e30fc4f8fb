// Package hmm decodes discrete Hidden Markov Models with the Viterbi
// algorithm: given initial, transition and emission probabilities and an
// observed symbol sequence, it recovers the single most probable sequence of
// hidden states.
//
// 🚀 What is Viterbi decoding?
//
//	An HMM walks through unobserved states, emitting one symbol per step.
//	Viterbi fills an S×T trellis of best partial-path scores, remembers the
//	predecessor of every cell, and backtraces from the best final state.
//	Typical uses:
//	  • part-of-speech tagging & speech recognition
//	  • gene finding and sequence annotation
//	  • map matching, activity recognition, fault diagnosis
//
// ✨ Key features:
//   - product-space fill that reproduces the classic reference output exactly
//   - log-space fill (WithLogSpace) for long sequences that would underflow
//   - deterministic tie-break: lowest state index wins among equal maxima
//   - optional per-step fan-out across goroutines (WithWorkers)
//   - fail-fast validation with sentinel errors; strict probability checks
//     aggregated into a single report (WithStrict, WithStochasticTolerance)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/viterbi/hmm"
//
//	path, err := hmm.Decode(states, start, obs, trans, emit)
//
//	// or validate once and decode many sequences:
//	m, err := hmm.NewModel(start, trans, emit, hmm.WithLogSpace())
//	res, err := m.DecodeResult(obs)
//
// Performance:
//
//   - Time:   O(S²·T)
//   - Memory: O(S·T) trellis per call, plus O(S² + S·A) per Model
//
// Not provided: parameter estimation (Baum-Welch), continuous emissions,
// streaming decoding, time-varying matrices.
package hmm
