// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap
//    them uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Used by Add, Sub and AllClose.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for the product a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("columns of the first (%d) must equal rows of the second (%d): %w",
				a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameRowCount checks a.Rows == b.Rows (Augment, Solve).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameRowCount(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRowCount", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRowCount", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameRowCount",
			fmt.Errorf("matrices must have the same number of rows (%d vs %d): %w",
				a.Rows(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateRowPair checks that two rows have equal length and that
// pivotIndex addresses a column of both.
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func ValidateRowPair(pivot, target []float64, pivotIndex int) error {
	if len(pivot) != len(target) {
		return validatorErrorf("ValidateRowPair",
			fmt.Errorf("lengths %d and %d: %w", len(pivot), len(target), ErrDimensionMismatch))
	}
	if pivotIndex < 0 || pivotIndex >= len(pivot) {
		return validatorErrorf("ValidateRowPair",
			fmt.Errorf("pivot index %d of %d: %w", pivotIndex, len(pivot), ErrOutOfRange))
	}

	return nil
}
