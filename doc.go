// Package linalg is a small dense linear-algebra toolkit for textbook-scale
// matrices: construction, arithmetic, row reduction and inversion.
//
// 🚀 What is linalg?
//
//	A focused library that brings together:
//		• Matrix: row-oriented dense container with uniform row width
//		• Arithmetic: Add, Sub, Mul, Scale, Transpose, Augment, Identity
//		• Row reduction: echelon and reduced echelon form (LCM scaling)
//		• Inversion & solving: Gauss–Jordan on augmented matrices
//		• Vectors: linear-independence check built on echelon form
//
// ✨ Why choose linalg?
//
//   - Fraction-free elimination: rows are scaled to a common multiple of the
//     pivot column before subtraction, so integer inputs stay integral
//   - Pure functions: operations never mutate their arguments
//   - Sentinel errors matched with errors.Is; no panics on user input
//
// Under the hood, everything is organized under three subpackages:
//
//	numtheory/ — GCD/LCM helpers and zero-sign normalization
//	matrix/    — Matrix container, arithmetic engine, options, gonum interop
//	vector/    — vector sets as matrix columns, independence check
//
// Quick example:
//
//	[1 2]⁻¹   [-2    1 ]
//	[3 4]   = [1.5 -0.5]
//
//	go get github.com/katalvlaran/linalg
package linalg
