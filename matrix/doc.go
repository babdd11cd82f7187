// Package matrix implements a row-oriented dense matrix of float64 values
// and the arithmetic engine that operates on it.
//
// What & Why:
//
//	Matrix stores an ordered list of rows that all share one width. The
//	width is established by the first row and enforced on every append or
//	replacement, so the rectangular invariant holds for the whole lifetime
//	of a value. Columns are never stored; they are projected on demand.
//
// The engine provides:
//
//   - Add, Sub, Scale, Mul, Transpose: straightforward kernels.
//   - EchelonForm / ReducedEchelonForm: forward and Gauss–Jordan
//     elimination built on ReduceRowsComparedToPivot, which scales the
//     pivot and target rows to the least common multiple of their pivot
//     entries before subtracting (fraction-free for integer inputs).
//   - Augment, Identity, Inverse, Solve: inversion and linear systems via
//     reduction of an augmented matrix [A | I] or [A | B].
//   - Equal, AllClose: exact and tolerance-based comparison.
//   - FromGonum / ToGonum: interop with gonum.org/v1/gonum/mat.
//
// Zero-pivot policy:
//
//	Elimination never swaps rows. When a pivot entry is exactly zero, the
//	step leaves the target row unchanged, so echelon form may stay
//	incomplete for inputs that would need a row exchange. Inverse and
//	Solve report such steps as ErrSingular unless WithAllowSingular is set.
//
// Purity:
//
//	Every operation returns a freshly allocated Matrix; arguments are never
//	mutated. Results inherit the options of their left-most operand.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
