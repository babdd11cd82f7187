// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; option constructors panic only on
// programmer error.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap with matrixErrorf(op, err) so the rendered message reads
// "<Op>: matrix: ...", and errors.Is still matches the sentinel.

var (
	// ErrDimensionMismatch indicates incompatible dimensions: a row whose
	// width differs from the established width, Add/Sub of different shapes,
	// Mul with a.Cols != b.Rows, Augment/Solve with different row counts,
	// or vectors of unequal length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row, column or pivot index is outside
	// valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUndefinedPivot is returned by ReducedEchelonForm when row i has no
	// entry at column i (the matrix has more rows than columns).
	ErrUndefinedPivot = errors.New("matrix: undefined pivot")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix must be square")

	// ErrSingular is returned by Inverse/Solve when a zero pivot is met during
	// Gauss–Jordan reduction (no row exchanges are attempted).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadShape is returned when a requested shape is invalid (negative size).
	ErrBadShape = errors.New("matrix: invalid shape")
)
