package hmm_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A doctor sees a patient on three days: normal, cold, dizzy.
//	Hidden states are Healthy / Fever.
//
// Complexity: O(S²·T) time, O(S·T) memory
func ExampleDecode() {
	names := []string{"Healthy", "Fever"}
	path, err := hmm.Decode(
		[]int{0, 1},
		[]float64{0.6, 0.4},
		[]int{0, 1, 2}, // normal, cold, dizzy
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		[][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, st := range path {
		fmt.Println(names[st])
	}
	// Output:
	// Healthy
	// Healthy
	// Fever
}

// ExampleModel_DecodeResult validates a model once and decodes in log space.
func ExampleModel_DecodeResult() {
	m, err := hmm.NewModel(
		[]float64{0.6, 0.4},
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		[][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}},
		hmm.WithLogSpace(),
		hmm.WithStochasticTolerance(1e-9),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := m.DecodeResult([]int{0, 1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("path=%v logspace=%v score=%.4f\n", res.Path, res.LogSpace, res.Score)
	// Output:
	// path=[0 0 1] logspace=true score=-4.1917
}

// ExampleDecode_invalidObservation shows fail-fast validation.
func ExampleDecode_invalidObservation() {
	_, err := hmm.Decode(
		[]int{0, 1},
		[]float64{0.6, 0.4},
		[]int{0, 5},
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		[][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}},
	)
	fmt.Println(errors.Is(err, hmm.ErrInvalidObservation))
	// Output:
	// true
}
