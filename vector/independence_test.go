package vector_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

func TestAreLinearlyIndependent(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]float64
		want    bool
	}{
		{"standard basis", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"scaled copies", [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}}, false},
		{"two proportional", [][]float64{{1, 2, 3}, {2, 4, 6}}, false},
		{"single vector", [][]float64{{1, 2, 3}}, false},
		{"empty set", nil, true},
		{"zero-length first vector", [][]float64{{}, {}}, true},
		{"independent plane", [][]float64{{1, 2}, {3, 4}}, true},
		{"more vectors than components", [][]float64{{1, 0}, {0, 1}, {1, 1}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.AreLinearlyIndependent(tc.vectors...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAreLinearlyIndependent_UnequalLengths(t *testing.T) {
	_, err := vector.AreLinearlyIndependent([]float64{1, 2}, []float64{3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "same length")
}

func TestAreLinearlyIndependent_NonFinite(t *testing.T) {
	_, err := vector.AreLinearlyIndependent([]float64{1, math.NaN()}, []float64{0, 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	c := vector.NewChecker(matrix.WithNoValidateNaNInf())
	_, err = c.AreLinearlyIndependent([]float64{1, math.Inf(1)}, []float64{0, 1})
	require.NoError(t, err)
}

func TestBuildMatrix(t *testing.T) {
	m, err := vector.BuildMatrix([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.RowData())

	empty, err := vector.BuildMatrix()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = vector.BuildMatrix([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBuildMatrix_DoesNotAlias(t *testing.T) {
	v := []float64{1, 2}
	m, err := vector.BuildMatrix(v)
	require.NoError(t, err)
	v[0] = 9
	got, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestAreAllColumnsPivotColumn(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"all zeros", [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, false},
		{"permuted rows", [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}, false},
		{"empty", [][]float64{}, true},
		{"single row", [][]float64{{1, 0, 0}}, true},
		{"single row without leading pivot", [][]float64{{0, 1, 0}}, false},
		{"upper triangular", [][]float64{{2, 7, 1}, {0, -3, 4}, {0, 0, 5}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vector.AreAllColumnsPivotColumn(mustMatrix(t, tc.rows)))
		})
	}

	assert.True(t, vector.AreAllColumnsPivotColumn(nil))
}

func TestChecker_ZeroValue(t *testing.T) {
	var c vector.Checker
	got, err := c.AreLinearlyIndependent([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.True(t, got)
	assert.True(t, c.AreAllColumnsPivotColumn(mustMatrix(t, [][]float64{{1}})))
}

func TestChecker_LogsEchelonForm(t *testing.T) {
	var buf bytes.Buffer
	lg := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := vector.NewChecker(matrix.WithLogger(lg))

	got, err := c.AreLinearlyIndependent([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, buf.String(), "echelon form of vector set")
}
