// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opBuild       = "BuildMatrix"
	opIndependent = "AreLinearlyIndependent"

	logEchelon = "echelon form of vector set"
)

// noPivot is the index reported for a row with no nonzero entry.
const noPivot = -1

// Checker runs independence checks with a fixed set of matrix options.
// The zero value behaves like NewChecker().
type Checker struct {
	opts []matrix.Option
}

// NewChecker returns a Checker whose intermediate matrices are built with opts.
func NewChecker(opts ...matrix.Option) *Checker {
	cp := make([]matrix.Option, len(opts))
	copy(cp, opts)

	return &Checker{opts: cp}
}

var defaultChecker = NewChecker()

// BuildMatrix returns the matrix whose column j is vectors[j].
// With no vectors, or vectors of length 0, the result is empty.
//
// Errors:
//   - matrix.ErrDimensionMismatch if lengths differ.
//   - matrix.ErrNaNInf if validation is on and a component is not finite.
func (c *Checker) BuildMatrix(vectors ...[]float64) (*matrix.Matrix, error) {
	if err := sameLength(vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	res := matrix.NewEmpty(c.opts...)
	if len(vectors) == 0 {
		return res, nil
	}
	n := len(vectors[0])
	for i := 0; i < n; i++ {
		row := make([]float64, len(vectors))
		for j, v := range vectors {
			row[j] = v[i]
		}
		if err := res.AddRow(row); err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
	}

	return res, nil
}

// AreLinearlyIndependent reports whether vectors are linearly independent.
// An empty set, or a set whose first vector has length 0, is independent.
//
// Errors:
//   - matrix.ErrDimensionMismatch if lengths differ.
//   - matrix.ErrNaNInf (see BuildMatrix).
func (c *Checker) AreLinearlyIndependent(vectors ...[]float64) (bool, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return true, nil
	}

	m, err := c.BuildMatrix(vectors...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIndependent, err)
	}
	e, err := matrix.EchelonForm(m)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIndependent, err)
	}
	m.Options().Logger().Debug(logEchelon, "vectors", len(vectors), "echelon", e.String())

	return AreAllColumnsPivotColumn(e), nil
}

// AreAllColumnsPivotColumn is the Checker form of the package function.
func (c *Checker) AreAllColumnsPivotColumn(m *matrix.Matrix) bool {
	return AreAllColumnsPivotColumn(m)
}

// BuildMatrix uses the default Checker.
func BuildMatrix(vectors ...[]float64) (*matrix.Matrix, error) {
	return defaultChecker.BuildMatrix(vectors...)
}

// AreLinearlyIndependent uses the default Checker.
func AreLinearlyIndependent(vectors ...[]float64) (bool, error) {
	return defaultChecker.AreLinearlyIndependent(vectors...)
}

// AreAllColumnsPivotColumn reports whether, for every row i of m, the
// first nonzero entry sits in column i. A nil or empty matrix passes;
// a zero row fails.
func AreAllColumnsPivotColumn(m *matrix.Matrix) bool {
	if m == nil {
		return true
	}
	for i := 0; i < m.Rows(); i++ {
		row, _ := m.Row(i)
		if firstNonZero(row) != i {
			return false
		}
	}

	return true
}

func firstNonZero(row []float64) int {
	for j, v := range row {
		if v != 0 {
			return j
		}
	}

	return noPivot
}

func sameLength(vectors [][]float64) error {
	if len(vectors) == 0 {
		return nil
	}
	n := len(vectors[0])
	for j, v := range vectors[1:] {
		if len(v) != n {
			return fmt.Errorf("vector %d: length %d, vectors must have the same length %d: %w",
				j+1, len(v), n, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}
