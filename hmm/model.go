// Package hmm - the validated, reusable model.
package hmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/viterbi/matrix"
)

// Model is a validated discrete HMM ready for repeated decoding.
//
// The raw parameters are kept for sampling; the kernel tables are what the
// trellis fill reads:
//   - kStart : start vector (log-transformed in log-space mode).
//   - kTransT: transitions transposed, so row j holds trans[·][j] contiguously.
//   - kEmit  : emissions (log-transformed in log-space mode).
//
// A Model is immutable after construction and safe for concurrent Decode calls;
// every call owns its trellis.
type Model struct {
	s, a int

	start []float64
	trans *matrix.Dense
	emit  *matrix.Dense

	kStart  []float64
	kTransT *matrix.Dense
	kEmit   *matrix.Dense

	opts Options
}

// NewModel validates the parameters and precomputes the kernel tables.
//
// Inputs:
//   - start: initial distribution, length S ≥ 1.
//   - trans: S×S transition matrix, trans[i][j] = P(i → j).
//   - emit : S×A emission matrix, emit[i][o] = P(o | i), A ≥ 1.
//
// Errors:
//   - ErrEmptyInput, ErrDimensionMismatch, and (strict mode) ErrInvalidProbability.
//
// Complexity: O(S² + S·A) time and space.
func NewModel(start []float64, trans, emit [][]float64, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	tb, err := checkShape(start, trans, emit)
	if err != nil {
		return nil, fmt.Errorf("hmm: NewModel: %w", err)
	}
	if err = checkProbabilities(start, trans, emit, o); err != nil {
		return nil, fmt.Errorf("hmm: NewModel: %w", err)
	}

	return build(start, tb, o)
}

// build derives the kernel tables from validated storage.
func build(start []float64, tb tables, o Options) (*Model, error) {
	tt, err := tb.trans.Transpose()
	if err != nil {
		return nil, fmt.Errorf("hmm: transition matrix: %w", err)
	}

	m := &Model{
		s:       tb.s,
		a:       tb.a,
		start:   append([]float64(nil), start...),
		trans:   tb.trans,
		emit:    tb.emit,
		kStart:  append([]float64(nil), start...),
		kTransT: tt,
		kEmit:   tb.emit,
		opts:    o,
	}
	if !o.logSpace {
		return m, nil
	}

	toLog := func(_, _ int, v float64) float64 { return math.Log(v) }
	for i, v := range m.kStart {
		m.kStart[i] = math.Log(v)
	}
	// Policy is inherited from tt (off); Apply cannot fail.
	_ = m.kTransT.Apply(toLog)
	m.kEmit = tb.emit.Clone()
	_ = m.kEmit.Apply(toLog)

	return m, nil
}

// States returns S, the number of hidden states.
func (m *Model) States() int { return m.s }

// Symbols returns A, the size of the emission alphabet.
func (m *Model) Symbols() int { return m.a }

// LogSpace reports whether the model decodes with log-probabilities.
func (m *Model) LogSpace() bool { return m.opts.logSpace }

// Start returns a copy of the initial distribution.
func (m *Model) Start() []float64 { return append([]float64(nil), m.start...) }

// Transition returns P(i → j).
func (m *Model) Transition(i, j int) (float64, error) { return m.trans.At(i, j) }

// Emission returns P(o | i).
func (m *Model) Emission(i, o int) (float64, error) { return m.emit.At(i, o) }
