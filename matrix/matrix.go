// SPDX-License-Identifier: MIT

// Package matrix - Matrix container: construction and row mutation.
//
// Purpose:
//   - Hold an ordered list of rows sharing one width (the column count).
//   - Establish the width from the first row and enforce it on every
//     AddRow/ReplaceRow; a Matrix with zero rows has width 0.
//   - Copy rows on the way in and on the way out, so no caller can break
//     the rectangular invariant through an aliased slice.
//
// Complexity quicksheet:
//   - New: O(r*c); AddRow/ReplaceRow: O(c); Rows/Cols: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	opNew        = "New"
	opAddRow     = "AddRow"
	opReplaceRow = "ReplaceRow"
	opAt         = "At"
	opColumn     = "Column"
)

// Matrix is a row-oriented dense matrix of float64 values.
//   - data holds the rows; every row has length c.
//   - c is meaningful only once at least one row exists.
//   - opts carries the numeric policy and logger inherited by results.
type Matrix struct {
	data [][]float64 // rows, each of length c
	c    int         // established row width
	opts Options     // numeric policy + logger
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from rows. Each row is copied.
// MAIN DESCRIPTION:
//   - Bulk constructor; validates that every row has the width of rows[0].
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: validate widths and (by default) finiteness of every value.
//   - Stage 3: deep-copy rows into fresh storage.
//
// Inputs:
//   - rows: possibly empty; nil and [][]float64{} both give a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch naming the offending row and the expected width.
//   - ErrNaNInf when the finite-value policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	m := &Matrix{opts: gatherOptions(opts...)}
	if len(rows) == 0 {
		return m, nil
	}

	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d: length %d, row length must be %d: %w",
				i, len(row), want, ErrDimensionMismatch))
		}
		if err := m.checkFinite(row); err != nil {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d: %w", i, err))
		}
	}

	m.c = want
	m.data = make([][]float64, len(rows))
	for i, row := range rows {
		m.data[i] = cloneRow(row)
	}

	return m, nil
}

// NewEmpty returns a Matrix with no rows and no established width.
// Rows are then appended with AddRow.
func NewEmpty(opts ...Option) *Matrix {
	return &Matrix{opts: gatherOptions(opts...)}
}

// newZero allocates an r×c zero matrix carrying opts. Internal; r,c >= 0.
func newZero(r, c int, opts Options) *Matrix {
	m := &Matrix{c: c, opts: opts, data: make([][]float64, r)}
	for i := range m.data {
		m.data[i] = make([]float64, c)
	}

	return m
}

// AddRow appends a copy of row.
// The first call on an empty Matrix establishes the width; later calls
// must match it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: amortized O(c).
func (m *Matrix) AddRow(row []float64) error {
	if m == nil {
		return matrixErrorf(opAddRow, ErrNilMatrix)
	}
	if len(m.data) > 0 && len(row) != m.c {
		return matrixErrorf(opAddRow, fmt.Errorf("length %d, row length must be %d: %w",
			len(row), m.c, ErrDimensionMismatch))
	}
	if err := m.checkFinite(row); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	if len(m.data) == 0 {
		m.c = len(row)
	}
	m.data = append(m.data, cloneRow(row))

	return nil
}

// ReplaceRow overwrites row i with a copy of row.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange if i is not in [0, Rows()).
//   - ErrDimensionMismatch if len(row) != Cols().
//   - ErrNaNInf under the finite-value policy.
func (m *Matrix) ReplaceRow(i int, row []float64) error {
	if m == nil {
		return matrixErrorf(opReplaceRow, ErrNilMatrix)
	}
	if i < 0 || i >= len(m.data) {
		return matrixErrorf(opReplaceRow, fmt.Errorf("row %d of %d: %w", i, len(m.data), ErrOutOfRange))
	}
	if len(row) != m.c {
		return matrixErrorf(opReplaceRow, fmt.Errorf("length %d, row length must be %d: %w",
			len(row), m.c, ErrDimensionMismatch))
	}
	if err := m.checkFinite(row); err != nil {
		return matrixErrorf(opReplaceRow, err)
	}
	m.data[i] = cloneRow(row)

	return nil
}

// checkFinite enforces the NaN/Inf policy on a single row.
func (m *Matrix) checkFinite(row []float64) error {
	if !m.opts.validateNaNInf {
		return nil
	}
	for j, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("column %d: %w", j, ErrNaNInf)
		}
	}

	return nil
}

// cloneRow returns an independent copy of row (never nil).
func cloneRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)

	return out
}
