package hmm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/viterbi/matrix"
)

// Decode returns the most probable hidden-state sequence for obs.
//
// states is used only for its length S; labels are ordinal. The returned
// slice has length len(obs) and every value lies in [0, S).
//
// Description:
//
//	Given a discrete HMM λ = (start, trans, emit) and observations o[0..T-1],
//	recover argmax_q P(q, o | λ) by dynamic programming over an S×T trellis.
//
// Algorithm Outline:
//  1. score[i][0] = start[i] · emit[i][o0]
//  2. For t = 1..T-1, for each destination j:
//     score[j][t] = max_k score[k][t-1] · trans[k][j] · emit[j][o_t]
//     back[j][t]  = the k attaining it
//  3. path[T-1] = argmax_i score[i][T-1]
//  4. path[t-1] = back[path[t]][t] for t = T-1..1
//
// Tie-break:
//
//	Every max scans k (and i) in increasing order and only a strictly greater
//	candidate replaces the incumbent, so the lowest index wins among equal
//	maxima. This holds in both product and log space. NaN candidates never
//	win unless every candidate is NaN, in which case index 0 is kept.
//
// Complexity:
//
//	Time   = O(S²·T)
//	Memory = O(S·T) for the trellis, allocated per call.
//
// Errors:
//   - ErrEmptyInput, ErrDimensionMismatch, ErrInvalidObservation,
//     ErrInvalidProbability (strict mode).
//
// Example:
//
//	path, err := hmm.Decode(
//		[]int{0, 1},
//		[]float64{0.6, 0.4},
//		[]int{0, 1, 2},
//		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
//		[][]float64{{0.5, 0.4, 0.1}, {0.1, 0.3, 0.6}},
//	)
//	// path == [0 0 1]
func Decode(states []int, start []float64, obs []int, trans, emit [][]float64, opts ...Option) ([]int, error) {
	res, err := DecodeResult(states, start, obs, trans, emit, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// DecodeResult is Decode plus the score of the returned path.
func DecodeResult(states []int, start []float64, obs []int, trans, emit [][]float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: empty input.
	if len(states) == 0 {
		return Result{}, fmt.Errorf("hmm: Decode: state space: %w", ErrEmptyInput)
	}
	if len(obs) == 0 {
		return Result{}, fmt.Errorf("hmm: Decode: observation sequence: %w", ErrEmptyInput)
	}

	// Stage 2: shapes.
	if err := matrix.ValidateVecLen(start, len(states)); err != nil {
		return Result{}, fmt.Errorf("hmm: Decode: %w", dimensionErrorf(
			fmt.Sprintf("start vector has %d entries, want %d", len(start), len(states)), err))
	}
	tb, err := checkShape(start, trans, emit)
	if err != nil {
		return Result{}, fmt.Errorf("hmm: Decode: %w", err)
	}

	// Stage 3: observations.
	if err = checkObservations(obs, tb.a); err != nil {
		return Result{}, fmt.Errorf("hmm: Decode: %w", err)
	}

	// Stage 4: probability values (strict only).
	if err = checkProbabilities(start, trans, emit, o); err != nil {
		return Result{}, fmt.Errorf("hmm: Decode: %w", err)
	}

	m, err := build(start, tb, o)
	if err != nil {
		return Result{}, err
	}

	return m.decode(obs), nil
}

// Decode returns the most probable hidden-state sequence for obs.
func (m *Model) Decode(obs []int) ([]int, error) {
	res, err := m.DecodeResult(obs)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// DecodeResult returns the best path together with its score.
//
// Errors:
//   - ErrEmptyInput for an empty sequence, ErrInvalidObservation for a symbol
//     outside [0, Symbols()).
func (m *Model) DecodeResult(obs []int) (Result, error) {
	if err := checkObservations(obs, m.a); err != nil {
		return Result{}, fmt.Errorf("hmm: Model.Decode: %w", err)
	}

	return m.decode(obs), nil
}

// trellis is the per-call DP table. Cells are stored time-major: the column
// for time t occupies [t*s, (t+1)*s), so one step reads a contiguous previous
// column and writes a contiguous current one.
type trellis struct {
	s     int
	score []float64
	back  []int
}

func newTrellis(s, t int) *trellis {
	return &trellis{
		s:     s,
		score: make([]float64, s*t),
		back:  make([]int, s*t),
	}
}

// column returns the score and backpointer slices for time t.
func (tr *trellis) column(t int) ([]float64, []int) {
	lo, hi := t*tr.s, (t+1)*tr.s
	return tr.score[lo:hi:hi], tr.back[lo:hi:hi]
}

// decode runs fill + backtrace. Assumes obs was validated against m.
func (m *Model) decode(obs []int) Result {
	T := len(obs)
	tr := newTrellis(m.s, T)

	m.initColumn(tr, obs[0])
	if m.opts.workers > 1 && m.s > 1 {
		m.fillParallel(tr, obs, m.opts.workers)
	} else {
		for t := 1; t < T; t++ {
			m.fillRange(tr, t, obs[t], 0, m.s)
		}
	}

	// Terminal argmax: floats.MaxIdx keeps the first maximum and skips NaN,
	// the same rule maxProduct and maxLog apply.
	last, _ := tr.column(T - 1)
	best := floats.MaxIdx(last)

	return Result{
		Path:     backtrace(tr, T, best),
		Score:    last[best],
		LogSpace: m.opts.logSpace,
	}
}

// initColumn fills t = 0: start[i] ⊗ emit[i][o0].
func (m *Model) initColumn(tr *trellis, o0 int) {
	cur, _ := tr.column(0)
	var e float64
	for i := 0; i < m.s; i++ {
		e, _ = m.kEmit.At(i, o0)
		if m.opts.logSpace {
			cur[i] = m.kStart[i] + e
		} else {
			cur[i] = m.kStart[i] * e
		}
	}
}

// fillRange computes column t for destination states j ∈ [lo, hi).
// Reads only column t-1, so disjoint ranges may run concurrently.
func (m *Model) fillRange(tr *trellis, t, o, lo, hi int) {
	prev, _ := tr.column(t - 1)
	cur, back := tr.column(t)

	var (
		col  []float64
		e    float64
		best float64
		arg  int
	)
	for j := lo; j < hi; j++ {
		col, _ = m.kTransT.Row(j) // trans[·][j], contiguous
		e, _ = m.kEmit.At(j, o)
		if m.opts.logSpace {
			best, arg = maxLog(prev, col, e)
		} else {
			best, arg = maxProduct(prev, col, e)
		}
		cur[j] = best
		back[j] = arg
	}
}

// maxProduct returns max_k prev[k]*col[k]*e and the first k attaining it.
// The candidate is evaluated as (prev[k]*col[k])*e for every k so results are
// reproducible bit for bit. A NaN incumbent yields to the first non-NaN
// candidate (c == c is false only for NaN).
func maxProduct(prev, col []float64, e float64) (float64, int) {
	best := prev[0] * col[0] * e
	arg := 0
	var c float64
	for k := 1; k < len(prev); k++ {
		c = prev[k] * col[k] * e
		if c > best || (best != best && c == c) {
			best, arg = c, k
		}
	}

	return best, arg
}

// maxLog is maxProduct over log-probabilities.
func maxLog(prev, col []float64, e float64) (float64, int) {
	best := prev[0] + col[0] + e
	arg := 0
	var c float64
	for k := 1; k < len(prev); k++ {
		c = prev[k] + col[k] + e
		if c > best || (best != best && c == c) {
			best, arg = c, k
		}
	}

	return best, arg
}

// backtrace walks backpointers from the terminal state.
func backtrace(tr *trellis, T, terminal int) []int {
	path := make([]int, T)
	path[T-1] = terminal
	for t := T - 1; t > 0; t-- {
		_, back := tr.column(t)
		path[t-1] = back[path[t]]
	}

	return path
}
