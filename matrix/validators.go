// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/probability checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Vector checks report the FIRST offending index in increasing order.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecFiniteNonNegative checks every x[i] is finite and ≥ 0.
//
// Errors:
//   - ErrNaNInf for NaN/±Inf, ErrNegative for negative values; the message
//     names the first offending index.
//
// Complexity: O(n).
func ValidateVecFiniteNonNegative(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateVecFiniteNonNegative: index %d", i), ErrNaNInf)
		}
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateVecFiniteNonNegative: index %d", i), ErrNegative)
		}
	}

	return nil
}

// ValidateVecStochastic checks that |Σx − 1| ≤ eps.
// Assumes entries were already checked by ValidateVecFiniteNonNegative.
//
// Errors:
//   - ErrNaNInf for a NaN/Inf eps, ErrNotStochastic on violation.
//
// Complexity: O(n).
func ValidateVecStochastic(x []float64, eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf("ValidateVecStochastic", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}
	if sum := floats.Sum(x); math.Abs(sum-1) > eps {
		return validatorErrorf(fmt.Sprintf("ValidateVecStochastic: sum %g", sum), ErrNotStochastic)
	}

	return nil
}
