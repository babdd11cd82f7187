// SPDX-License-Identifier: MIT
// Package matrix: row reduction.
//
// Purpose:
//   - ReduceRowsComparedToPivot: the single elimination step shared by all
//     reductions. Both rows are scaled to lcm(p[i], t[i]) before subtraction:
//     out[k] = t[k]·L/t[i] − p[k]·L/p[i], which zeroes column i while
//     keeping integer rows integral.
//   - EchelonForm: forward elimination below each pivot.
//   - ReducedEchelonForm: Gauss–Jordan elimination above and below each pivot,
//     then normalization of every row by its diagonal entry.
//
// Zero-pivot policy:
//   - No row exchanges. If p[i] or t[i] is exactly zero the step returns t
//     unchanged, so inputs that need a swap stay partially reduced.
//
// Determinism:
//   - Fixed loop orders (pivot i ascending, target j ascending).

package matrix

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/linalg/numtheory"
)

const (
	opReduceRows        = "ReduceRowsComparedToPivot"
	opEchelon           = "EchelonForm"
	opReducedEchelon    = "ReducedEchelonForm"
	logEchelonDone      = "echelon form computed"
	logReducedDone      = "reduced echelon form computed"
	logZeroPivotSkipped = "zero pivot, column left uneliminated"
)

// ReduceRowsComparedToPivot eliminates column pivotIndex of target using
// pivot and returns the new row. Inputs are not modified.
// Implementation:
//   - Stage 1: validate equal lengths and pivotIndex range.
//   - Stage 2: if pivot[i] == 0 or target[i] == 0 return a copy of target.
//   - Stage 3: L = lcm(pivot[i], target[i]);
//     out[k] = target[k]·L/target[i] − pivot[k]·L/pivot[i].
//
// Behavior highlights:
//   - Integer rows stay integral; non-integer rows still reduce correctly
//     because L/value collapses to the right ratio.
//
// Errors:
//   - ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(c).
func ReduceRowsComparedToPivot(pivot, target []float64, pivotIndex int) ([]float64, error) {
	if err := ValidateRowPair(pivot, target, pivotIndex); err != nil {
		return nil, matrixErrorf(opReduceRows, err)
	}

	return reduceRows(pivot, target, pivotIndex), nil
}

// reduceRows is the unchecked elimination step. It always returns a fresh row.
func reduceRows(pivot, target []float64, i int) []float64 {
	p, t := pivot[i], target[i]
	if p == ZeroPivot || t == ZeroPivot {
		return cloneRow(target)
	}

	l := numtheory.LeastCommonMultiple(p, t)
	out := make([]float64, len(target))
	for k := range target {
		out[k] = numtheory.NormalizeZero(target[k]*l/t - pivot[k]*l/p)
	}

	return out
}

// EchelonForm returns the row-echelon form of m via forward elimination.
// Implementation:
//   - Stage 1: clone m.
//   - Stage 2: for each pivot i in [0, min(r,c)), replace every row j > i
//     with reduceRows(row i, row j, i).
//
// Behavior highlights:
//   - Zero pivots are skipped, not swapped (see package notes).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r*c).
func EchelonForm(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}

	res := m.Clone()
	rows, cols := res.Shape()
	lg := res.opts.Logger()
	steps := min(rows, cols)
	for i := 0; i < steps; i++ {
		if res.data[i][i] == ZeroPivot {
			lg.Debug(logZeroPivotSkipped, "op", opEchelon, "pivot", i)
		}
		for j := i + 1; j < rows; j++ {
			res.data[j] = reduceRows(res.data[i], res.data[j], i)
		}
	}
	lg.Debug(logEchelonDone, "rows", rows, "cols", cols)

	return res, nil
}

// ReducedEchelonForm returns the reduced row-echelon form of m.
// Implementation:
//   - Stage 1: require a diagonal entry m[i][i] for every row i of the
//     input (i < Cols()); otherwise ErrUndefinedPivot.
//   - Stage 2: clone and run Gauss–Jordan (gaussJordan).
//
// Behavior highlights:
//   - Rows whose diagonal stays zero are left unnormalized.
//   - Idempotent on its own output.
//
// Errors:
//   - ErrNilMatrix, ErrUndefinedPivot.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
func ReducedEchelonForm(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReducedEchelon, err)
	}
	if err := requireDiagonal(m); err != nil {
		return nil, matrixErrorf(opReducedEchelon, err)
	}

	res := m.Clone()
	zeroPivots := gaussJordan(res.data, res.opts.Logger())
	res.opts.Logger().Debug(logReducedDone, "rows", res.Rows(), "cols", res.Cols(), "zeroPivots", zeroPivots)

	return res, nil
}

// requireDiagonal checks that every row index also addresses a column.
func requireDiagonal(m *Matrix) error {
	if rows, cols := m.Shape(); rows > cols {
		return fmt.Errorf("row %d has no entry at column %d (%dx%d): %w", cols, cols, rows, cols, ErrUndefinedPivot)
	}

	return nil
}

// gaussJordan reduces data in place and returns the pivot indices whose
// entry was zero when their elimination step ran.
// Preconditions: len(data[i]) > i for every row i.
//
// Stage 1: for each i, eliminate column i from every row j != i.
// Stage 2: divide each row i by data[i][i] when non-zero.
//
// In exact arithmetic a pivot that is non-zero when its step runs stays
// non-zero afterwards: later steps only rescale row i by a non-zero factor
// or leave it unchanged. The returned list is therefore exactly the set of
// unusable pivots.
func gaussJordan(data [][]float64, lg *log.Logger) []int {
	var zeroPivots []int
	n := len(data)
	for i := 0; i < n; i++ {
		if data[i][i] == ZeroPivot {
			zeroPivots = append(zeroPivots, i)
			lg.Debug(logZeroPivotSkipped, "op", opReducedEchelon, "pivot", i)
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			data[j] = reduceRows(data[i], data[j], i)
		}
	}

	for i := 0; i < n; i++ {
		d := data[i][i]
		if d == ZeroPivot {
			continue
		}
		row := data[i]
		for k := range row {
			row[k] = numtheory.NormalizeZero(row[k] / d)
		}
	}

	return zeroPivots
}
