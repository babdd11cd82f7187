// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Comparison helpers used by callers and tests to check results of the
//     arithmetic engine: exact Equal and tolerance-based AllClose.

package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and identical entries.
// Two nil matrices are equal; nil and non-nil are not. +0 and -0 compare
// equal (engine results never carry -0 anyway).
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i, row := range a.data {
		for j, v := range row {
			if v != b.data[i][j] {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors: ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1).
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i, row := range a.data {
		for j, av := range row {
			bv := b.data[i][j]
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
