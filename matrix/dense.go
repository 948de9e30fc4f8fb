// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot loops (the Viterbi fill) take whole rows via Row and index the slice directly.
//   - Use Transpose once up front when a kernel walks columns repeatedly.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Row: O(1); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRow       = "Row"
	ctxApply     = "Apply"
	ctxFromRows  = "NewFromRows"
	ctxTranspose = "Transpose"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w" so the sentinel survives errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Apply/NewFromRows.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFromRows copies a slice-of-rows representation into a new Dense.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row (ErrInvalidDimensions).
//   - Stage 2: every row must have the width of row 0 (ErrDimensionMismatch).
//   - Stage 3: copy values, enforcing the numeric policy per cell (ErrNaNInf).
//
// Behavior highlights:
//   - The result never aliases the input rows.
//   - Errors carry the offending coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns row i as a slice that aliases the matrix storage.
// Writes through the slice bypass the numeric policy; callers that only read
// (the decoding kernels) get bounds-check-free access to a contiguous row.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(1), no allocation.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Clone returns a deep copy (new buffer). The numeric policy is inherited
// unless overridden by opts.
// Complexity: O(r*c).
func (m *Dense) Clone(opts ...Option) *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	o := Options{validateNaNInf: m.validateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: o.validateNaNInf,
	}
}

// Transpose returns mᵀ as a new Dense with the same numeric policy.
//
// Implementation:
//   - data[i*cols + j] → res.data[j*rows + i] in a fixed i→j order.
//
// Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxTranspose, err)
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics, transform a Clone and swap on success.
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
