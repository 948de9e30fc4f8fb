// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 tables that hold
// hidden Markov model parameters (initial, transition and emission
// probabilities), plus the validators that check them.
//
// What & Why:
//
//	Decoding walks transition columns and emission rows millions of times, so
//	storage is a single flat slice indexed i*cols + j. The public surface is
//	bounds-checked and never panics on user input; hot kernels borrow whole
//	rows through Row and index them directly.
//
// Numeric policy:
//
//	By default NaN and ±Inf are rejected on ingestion (NewFromRows) and by
//	Apply. Log-space tables legitimately contain -Inf, so the policy can
//	be disabled per matrix with WithNoNaNInfCheck.
//
// Validators:
//
//	ValidateSquare, ValidateVecLen, ValidateVecFiniteNonNegative,
//	ValidateVecStochastic.
//	All return package sentinels wrapped with a tag; match with errors.Is.
//
// Complexity:
//
//	At/Row run in O(1); Clone, Transpose and Apply run in O(rows*cols).
package matrix
