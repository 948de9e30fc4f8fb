// Package hmm - input validation shared by NewModel and Decode.
//
// Validation runs in a fixed order and stops at the first failing stage:
//  1. empty input       (ErrEmptyInput)
//  2. shapes            (ErrDimensionMismatch)
//  3. observations      (ErrInvalidObservation)
//  4. probability values (ErrInvalidProbability, strict mode only)
//
// Stage 4 is exhaustive rather than fail-first: every offending vector/row is
// collected into one *multierror.Error so a caller can fix a model in one pass.
package hmm

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/viterbi/matrix"
)

// tables is the validated geometry plus the matrix storage built while
// checking it; build reuses the storage instead of copying the rows twice.
type tables struct {
	s, a  int
	trans *matrix.Dense
	emit  *matrix.Dense
}

// checkShape validates the dimensions of the model parameters.
//
// Contract:
//   - len(start) = S ≥ 1.
//   - trans is S×S.
//   - emit is S×A with A ≥ 1 and every row of width A.
//
// Matrix-level failures keep their matrix sentinel in the chain next to
// ErrDimensionMismatch. Values are not inspected here; storage accepts NaN
// and ±Inf so the strict stage can report them.
//
// Complexity: O(S² + S·A) for the copies.
func checkShape(start []float64, trans, emit [][]float64) (tables, error) {
	if len(start) == 0 {
		return tables{}, fmt.Errorf("start vector: %w", ErrEmptyInput)
	}

	tm, err := matrix.NewFromRows(trans, matrix.WithNoNaNInfCheck())
	if err != nil {
		return tables{}, dimensionErrorf("transition matrix", err)
	}
	if err = matrix.ValidateSquare(tm); err != nil {
		return tables{}, dimensionErrorf(fmt.Sprintf("transition matrix is %dx%d", tm.Rows(), tm.Cols()), err)
	}
	if err = matrix.ValidateVecLen(start, tm.Rows()); err != nil {
		return tables{}, dimensionErrorf(
			fmt.Sprintf("start vector has %d entries, transition matrix %d rows", len(start), tm.Rows()), err)
	}

	em, err := matrix.NewFromRows(emit, matrix.WithNoNaNInfCheck())
	if err != nil {
		return tables{}, dimensionErrorf("emission matrix", err)
	}
	if err = matrix.ValidateVecLen(start, em.Rows()); err != nil {
		return tables{}, dimensionErrorf(
			fmt.Sprintf("start vector has %d entries, emission matrix %d rows", len(start), em.Rows()), err)
	}

	return tables{s: len(start), a: em.Cols(), trans: tm, emit: em}, nil
}

// dimensionErrorf tags a matrix failure as ErrDimensionMismatch.
func dimensionErrorf(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, ErrDimensionMismatch, err)
}

// checkObservations verifies the sequence is non-empty and every symbol is a
// valid emission column. The first offending position is reported.
//
// Complexity: O(T).
func checkObservations(obs []int, a int) error {
	if len(obs) == 0 {
		return fmt.Errorf("observation sequence: %w", ErrEmptyInput)
	}
	for t, o := range obs {
		if o < 0 || o >= a {
			return fmt.Errorf("observation %d = %d not in [0, %d): %w", t, o, a, ErrInvalidObservation)
		}
	}

	return nil
}

// checkProbabilities applies the strict numeric policy from o. It is a no-op
// unless o.strict is set. Assumes checkShape succeeded.
//
// Complexity: O(S² + S·A).
func checkProbabilities(start []float64, trans, emit [][]float64, o Options) error {
	if !o.strict {
		return nil
	}

	var result *multierror.Error
	check := func(name string, x []float64) {
		if err := matrix.ValidateVecFiniteNonNegative(x); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w: %w", name, ErrInvalidProbability, err))
			return
		}
		if !o.checkSums {
			return
		}
		if err := matrix.ValidateVecStochastic(x, o.tolerance); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w: %w", name, ErrInvalidProbability, err))
		}
	}

	check("start", start)
	for i, row := range trans {
		check(fmt.Sprintf("transition row %d", i), row)
	}
	for i, row := range emit {
		check(fmt.Sprintf("emission row %d", i), row)
	}

	return result.ErrorOrNil()
}
