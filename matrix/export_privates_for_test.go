// SPDX-License-Identifier: MIT
// Package matrix: test-only bridges to unexported internals.
//
// Purpose:
//   - OptionsSnapshot + SnapshotOptions_TestOnly: observe resolved options.
//   - GaussJordan_TestOnly: run the in-place reduction on raw rows and
//     observe the zero-pivot list that Inverse/Solve act on.

package matrix

// PanicNilLogger_TestOnly exposes the panic message of WithLogger(nil).
const PanicNilLogger_TestOnly = panicNilLogger

// OptionsSnapshot is a read-only view of Options for assertions.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	AllowSingular  bool
	Logger         bool // true when a non-default logger is set
}

// SnapshotOptions_TestOnly flattens o into an OptionsSnapshot.
func SnapshotOptions_TestOnly(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		AllowSingular:  o.allowSingular,
		Logger:         o.logger != nil && o.logger != discardLogger,
	}
}

// GaussJordan_TestOnly reduces a copy of rows and returns it with the
// zero-pivot indices.
func GaussJordan_TestOnly(rows [][]float64) ([][]float64, []int) {
	data := make([][]float64, len(rows))
	for i, r := range rows {
		data[i] = cloneRow(r)
	}
	zp := gaussJordan(data, discardLogger)

	return data, zp
}
