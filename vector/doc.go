// Package vector answers linear-independence questions about sets of
// equal-length vectors.
//
// What & Why:
//
//	The vectors become the columns of a matrix, the matrix is brought to
//	echelon form by package matrix, and the set is independent exactly
//	when every row of that form has its first nonzero entry on the
//	diagonal.
//
// API:
//
//   - BuildMatrix: vectors → matrix whose columns are the vectors.
//   - AreLinearlyIndependent: the full check.
//   - AreAllColumnsPivotColumn: the row-wise pivot test on its own.
//
// Checker carries matrix options (logger, NaN/Inf validation); the
// package-level functions use a Checker with defaults.
//
// Caveat:
//
//	Elimination never swaps rows, so a set whose first component is zero
//	may be reported dependent even when it is not. The pivot test looks
//	at rows only: a single vector of length > 1 always fails it, while a
//	wide set (more vectors than components) passes whenever each row has
//	a diagonal leading entry.
package vector
