// Package viterbi decodes the most probable hidden-state path of a discrete
// hidden Markov model.
//
// 🚀 What is in the module?
//
//   - hmm/: Viterbi decoder with product-space and log-space fills, an
//     optional parallel fill per time step, strict probability checks and
//     synthetic models.
//   - matrix/: row-major dense float64 tables backing the model.
//   - modelfile/: problem files in the six-line text format and YAML.
//   - cmd/viterbi: `viterbi decode <file>` and `viterbi gen`.
//
// Quick example (the textbook Healthy/Fever model):
//
//	path, err := hmm.Decode(
//		[]int{0, 1},
//		[]float64{0.6, 0.4},
//		[]int{0, 1, 2},
//		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
//		[][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}},
//	)
//	// path == [0 0 1]
//
//	go get github.com/katalvlaran/viterbi/hmm
package viterbi
