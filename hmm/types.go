// Package hmm defines options, errors and result types for Viterbi decoding.
package hmm

import (
	"errors"
	"math"
)

// Sentinel errors. Every failure returned by this package wraps exactly one of
// them; match with errors.Is. All are permanent, caller-correctable input
// errors and are reported before any decoding work starts.
var (
	// ErrEmptyInput indicates zero states or zero observations.
	ErrEmptyInput = errors.New("hmm: states and observations must be non-empty")

	// ErrDimensionMismatch indicates that the start vector, transition matrix
	// or emission matrix does not agree with the number of states, that the
	// transition matrix is not square, or that emission rows are ragged/empty.
	ErrDimensionMismatch = errors.New("hmm: dimension mismatch")

	// ErrInvalidObservation indicates an observation symbol outside [0, A).
	ErrInvalidObservation = errors.New("hmm: observation symbol out of range")

	// ErrInvalidProbability indicates a negative or non-finite probability, or
	// a distribution that does not sum to 1 within tolerance. Only reported
	// when strict validation is enabled (WithStrict, WithStochasticTolerance).
	ErrInvalidProbability = errors.New("hmm: invalid probability")
)

// Panic messages for nonsensical option values (programmer error).
const (
	panicWorkersNegative = "hmm: WithWorkers: n must be >= 0"
	panicToleranceBad    = "hmm: WithStochasticTolerance: eps must be finite, non-negative"
)

// Option configures decoding. Options are applied in order.
type Option func(*Options)

// Options stores the effective decoder configuration.
//
// Fields:
//   - logSpace : fill the trellis with sums of log-probabilities.
//   - workers  : goroutines per time step; 0 or 1 means sequential.
//   - strict   : reject negative and non-finite probabilities.
//   - checkSums: additionally require distributions to sum to 1 within tolerance.
type Options struct {
	logSpace  bool
	workers   int
	strict    bool
	checkSums bool
	tolerance float64
}

// gatherOptions resolves opts over the zero configuration: product space,
// sequential, no probability checks.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogSpace fills the trellis with natural-log probabilities instead of
// products. Long sequences no longer underflow to zero; argmax and tie-break
// rules are unchanged (strictly greater wins, lowest index on ties).
func WithLogSpace() Option {
	return func(o *Options) { o.logSpace = true }
}

// WithWorkers splits the destination states of every time step across n
// goroutines, with a barrier before the next step. The result is identical to
// the sequential fill. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithStrict rejects negative, NaN and ±Inf entries in the start vector,
// transition matrix and emission matrix. All offending rows are reported in a
// single aggregated error.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithStochasticTolerance implies WithStrict and additionally requires the
// start vector and every transition/emission row to sum to 1 within eps.
// Panics if eps is negative, NaN or Inf.
func WithStochasticTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceBad)
	}

	return func(o *Options) {
		o.strict = true
		o.checkSums = true
		o.tolerance = eps
	}
}

// Result is the outcome of one decode.
type Result struct {
	// Path holds one state index per observation; every value lies in [0, S).
	Path []int

	// Score is the value of the best terminal trellis cell: the joint
	// probability of Path and the observations, or its natural log when
	// LogSpace is true.
	Score float64

	// LogSpace reports whether Score is a log-probability.
	LogSpace bool
}
