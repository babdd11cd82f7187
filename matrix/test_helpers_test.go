// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// MustNew builds a Matrix from rows or fails the test.
func MustNew(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, opts...)
	require.NoError(t, err, "New(%v)", rows)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts that got holds exactly want (shape and values).
// A negative zero in got is reported: engine results must be normalized.
func CompareExact(t testing.TB, want [][]float64, got *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	rows := got.RowData()
	for i := range want {
		require.Len(t, rows[i], len(want[i]), "row %d width", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], rows[i][j], "at [%d,%d]", i, j)
			require.False(t, math.Signbit(rows[i][j]) && rows[i][j] == 0, "negative zero at [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts that got matches want within tol.
func CompareClose(t testing.TB, want [][]float64, got *matrix.Matrix, tol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), tol, "at [%d,%d]", i, j)
		}
	}
}

// rampRows returns an r×c table with entries i*c+j+1 (deterministic, no RNG).
func rampRows(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = float64(i*c + j + 1)
		}
	}

	return out
}
