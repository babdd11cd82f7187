// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// FromGonum copies any mat.Matrix into a *Matrix; ToGonum copies back into
// a *mat.Dense. Both directions copy, so neither side aliases the other.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum builds a Matrix from a gonum matrix, row by row.
// The finite-value policy of opts applies as in New.
//
// Errors: ErrNilMatrix (nil src), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = src.At(i, j)
		}
		rows[i] = row
	}

	m, err := New(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense.
// gonum forbids zero-sized dense matrices, so a matrix without rows or
// columns is rejected with ErrBadShape.
//
// Errors: ErrNilMatrix, ErrBadShape.
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}
	flat := make([]float64, 0, r*c)
	for _, row := range m.data {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat), nil
}
