// SPDX-License-Identifier: MIT
// Package matrix: inversion and linear systems by Gauss–Jordan reduction
// of an augmented matrix.
//
// Inverse(A) reduces [A | I] and reads the right block; Solve(A, B) reduces
// [A | B] the same way. Both share the zero-pivot policy of
// ReducedEchelonForm and decide what a zero pivot means through Options:
// ErrSingular by default, the raw right block under WithAllowSingular.

package matrix

import (
	"fmt"
)

const (
	opInverse = "Inverse"
	opSolve   = "Solve"

	logSingular        = "zero pivot during Gauss-Jordan reduction"
	logSingularAllowed = "zero pivot ignored, returning degenerate result"
)

// Inverse returns A⁻¹ for a square matrix A.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: build [A | I] (Augment + Identity).
//   - Stage 3: Gauss–Jordan reduce the augmented matrix.
//   - Stage 4: zero pivot ⇒ ErrSingular unless WithAllowSingular.
//   - Stage 5: return columns [n, 2n) as the inverse.
//
// Behavior highlights:
//   - No row exchanges: an invertible matrix whose leading pivot is zero
//     (e.g. [[0,1],[1,0]]) is reported as ErrSingular.
//   - opts are resolved on top of the options carried by m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare ("matrix must be square"), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	o := resolveOptions(m.opts, opts...)
	n := m.Rows()
	id := newZero(n, n, o)
	for i := 0; i < n; i++ {
		id.data[i][i] = 1
	}

	return reduceAugmented(opInverse, m, id, o)
}

// Solve returns X such that A·X = B for a square A.
// B may have any number of columns (one per right-hand side).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows != A.Rows),
//     ErrSingular.
//
// Complexity:
//   - Time O(n²·(n+k)), Space O(n·(n+k)) for k right-hand sides.
func Solve(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSameRowCount(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return reduceAugmented(opSolve, a, b, resolveOptions(a.opts, opts...))
}

// reduceAugmented reduces [a | b] and returns the right block.
// a must be square with a.Rows() == b.Rows().
func reduceAugmented(op string, a, b *Matrix, o Options) (*Matrix, error) {
	aug, err := Augment(a, b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	aug.opts = o

	lg := o.Logger()
	zeroPivots := gaussJordan(aug.data, lg)
	if len(zeroPivots) > 0 {
		if !o.allowSingular {
			lg.Debug(logSingular, "op", op, "pivots", zeroPivots)
			return nil, matrixErrorf(op, fmt.Errorf("zero pivot at %d: %w", zeroPivots[0], ErrSingular))
		}
		lg.Debug(logSingularAllowed, "op", op, "pivots", zeroPivots)
	}

	n, k := a.Rows(), b.Cols()
	res := newZero(n, k, o)
	for i := 0; i < n; i++ {
		copy(res.data[i], aug.data[i][n:n+k])
	}

	return res, nil
}
