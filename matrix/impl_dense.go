// SPDX-License-Identifier: MIT

// Package matrix - read accessors, cloning and formatting.
//
// Purpose:
//   - Expose rows and columns without handing out internal slices.
//   - Define one explicit out-of-range policy per accessor:
//     Row reports absence with ok=false; Column and At return ErrOutOfRange.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Rows returns the number of rows. O(1). A nil Matrix has 0 rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// Cols returns the column count, or 0 when no row has been added. O(1).
func (m *Matrix) Cols() int {
	if m == nil || len(m.data) == 0 {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Options returns the options carried by m.
func (m *Matrix) Options() Options {
	if m == nil {
		return defaultOptions()
	}

	return m.opts
}

// Row returns a copy of row i, or (nil, false) when i is out of range.
// It never fails.
func (m *Matrix) Row(i int) ([]float64, bool) {
	if m == nil || i < 0 || i >= len(m.data) {
		return nil, false
	}

	return cloneRow(m.data[i]), true
}

// Column materializes column j: one entry per row.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when j is not in [0, Cols()).
//
// Complexity: O(r).
func (m *Matrix) Column(j int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumn, ErrNilMatrix)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColumn, fmt.Errorf("column %d of %d: %w", j, m.Cols(), ErrOutOfRange))
	}

	return m.column(j), nil
}

// column is the unchecked projection used by kernels.
func (m *Matrix) column(j int) []float64 {
	out := make([]float64, len(m.data))
	for i, row := range m.data {
		out[i] = row[j]
	}

	return out
}

// At retrieves the element at (i, j).
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opAt, ErrNilMatrix)
	}
	if i < 0 || i >= len(m.data) || j < 0 || j >= m.c {
		return 0, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return m.data[i][j], nil
}

// RowData returns a deep copy of all rows.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Matrix) RowData() [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	out := make([][]float64, len(m.data))
	for i, row := range m.data {
		out[i] = cloneRow(row)
	}

	return out
}

// ColumnData returns every column materialized, in column order.
// Complexity: O(r*c).
func (m *Matrix) ColumnData() [][]float64 {
	c := m.Cols()
	out := make([][]float64, c)
	for j := 0; j < c; j++ {
		out[j] = m.column(j)
	}

	return out
}

// Clone returns a deep copy with the same shape and options.
// A nil receiver clones to nil.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{c: m.c, opts: m.opts, data: make([][]float64, len(m.data))}
	for i, row := range m.data {
		out.data[i] = cloneRow(row)
	}

	return out
}

// String implements fmt.Stringer; one "[a, b, c]" line per row.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for _, row := range m.data {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
