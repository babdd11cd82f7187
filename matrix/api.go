// SPDX-License-Identifier: MIT
// Package matrix: short aliases for the engine, mirroring the names used in
// linear-algebra texts. Each alias forwards without extra logic.

package matrix

// Sum is an alias for Add.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// RREF is an alias for ReducedEchelonForm.
func RREF(m *Matrix) (*Matrix, error) { return ReducedEchelonForm(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m *Matrix, opts ...Option) (*Matrix, error) { return Inverse(m, opts...) }

// NewIdentity is an alias for Identity.
func NewIdentity(n int, opts ...Option) (*Matrix, error) { return Identity(n, opts...) }

// CloneMatrix returns m.Clone(); nil stays nil.
func CloneMatrix(m *Matrix) *Matrix { return m.Clone() }
