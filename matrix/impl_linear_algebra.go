// SPDX-License-Identifier: MIT
// Package matrix provides the straightforward kernels of the arithmetic
// engine: element-wise addition and subtraction, scalar scaling, matrix
// multiplication, transpose, horizontal augmentation and identity
// generation. All functions perform fail-fast validation and return a
// freshly allocated Matrix; operands are never mutated.
//
// Notes:
//   - Every written scalar passes through numtheory.NormalizeZero, so no
//     result ever carries a negative zero.
//   - Results inherit the options of the left operand.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/numtheory"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opAugment   = "Augment"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub; inputs must have identical shapes.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Shape()
	res := newZero(rows, cols, a.opts)
	var i, j int
	for i = 0; i < rows; i++ {
		ar, br, out := a.data[i], b.data[i], res.data[i]
		for j = 0; j < cols; j++ {
			out[j] = numtheory.NormalizeZero(ar[j] + sign*br[j])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch ("matrices must have the same dimensions").
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Same contract as Add.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Shape()
	res := newZero(rows, cols, m.opts)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res.data[i][j] = numtheory.NormalizeZero(alpha * m.data[i][j])
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A·B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: allocate C (a.Rows × b.Cols).
//   - Stage 3: i→k→j accumulation; each C[i,j] is summed in k order,
//     exactly as Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch
//     ("incompatible dimensions for multiplication").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero A[i,k] are skipped.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newZero(aRows, bCols, a.opts)
	var (
		i, j, k int
		av      float64
	)
	for i = 0; i < aRows; i++ {
		out := res.data[i]
		for k = 0; k < aCols; k++ {
			av = a.data[i][k]
			if av == 0 {
				continue // skip zero for performance
			}
			bk := b.data[k]
			for j = 0; j < bCols; j++ {
				out[j] += av * bk[j]
			}
		}
		for j = 0; j < bCols; j++ {
			out[j] = numtheory.NormalizeZero(out[j])
		}
	}

	return res, nil
}

// Transpose returns Mᵀ: result[j][i] = m[i][j].
// A matrix without rows transposes to an empty matrix.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Shape()
	res := &Matrix{c: rows, opts: m.opts, data: make([][]float64, cols)}
	for j := 0; j < cols; j++ {
		res.data[j] = m.column(j)
	}

	return res, nil
}

// Augment returns the horizontal concatenation [A | B].
// Row i of the result is A's row i followed by B's row i; the width is
// a.Cols() + b.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch ("same number of rows").
//
// Complexity: Time O(r*(ca+cb)).
func Augment(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameRowCount(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ac, bc := a.Rows(), a.Cols(), b.Cols()
	res := newZero(rows, ac+bc, a.opts)
	for i := 0; i < rows; i++ {
		copy(res.data[i][:ac], a.data[i])
		copy(res.data[i][ac:], b.data[i])
	}

	return res, nil
}

// Identity returns the n×n identity matrix. Identity(0) is the empty matrix.
//
// Errors: ErrBadShape when n < 0.
// Complexity: O(n²).
func Identity(n int, opts ...Option) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("size %d: %w", n, ErrBadShape))
	}
	res := newZero(n, n, gatherOptions(opts...))
	for i := 0; i < n; i++ {
		res.data[i][i] = 1
	}

	return res, nil
}
