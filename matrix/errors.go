// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, accessors and validators return these sentinels (optionally
// wrapped with a call-site tag) and tests check them via errors.Is.
// No function panics on user-triggered conditions; panics are reserved for
// nonsensical option values (see options.go).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged input rows,
	// a vector whose length differs from the expected size, or a non-square matrix
	// where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNotStochastic signals a row (or vector) whose sum deviates from 1 by more than eps.
	ErrNotStochastic = errors.New("matrix: row does not sum to 1 within eps")

	// ErrNilMatrix indicates that a nil vector or matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")
)
