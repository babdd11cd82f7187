// SPDX-License-Identifier: MIT

package numtheory

import (
	"math"

	"golang.org/x/exp/constraints"
)

// GreatestCommonDivisor returns gcd(a, b) using Euclid's algorithm on
// math.Mod. The remainder keeps the sign of the dividend, so the sign of
// the result follows the last non-zero remainder (gcd(-2, 2) == 2,
// gcd(2, -4) == 2, gcd(-4, -2) == -2).
//
// GreatestCommonDivisor(a, 0) == a for every finite a. A NaN or infinite
// argument yields NaN.
// Complexity: O(log min(|a|,|b|)) for integral inputs.
func GreatestCommonDivisor(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return math.NaN()
	}
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}

	return a
}

// LeastCommonMultiple returns a*b / gcd(a, b).
// LeastCommonMultiple(a, 0) == 0 for a != 0. Both arguments zero yields NaN;
// callers in package matrix never pass two zeros.
//
// For non-integers the value degrades to a common multiple in the sense
// of the float Euclid above (lcm(0.5, 1.5) == 1.5).
func LeastCommonMultiple(a, b float64) float64 {
	return a * b / GreatestCommonDivisor(a, b)
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// NormalizeZero maps negative zero to positive zero and returns every
// other value unchanged.
func NormalizeZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

// GCD is the integer form of GreatestCommonDivisor.
// Sign follows Go's truncated remainder, exactly like the float form.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM is the integer form of LeastCommonMultiple.
// LCM(x, 0) == LCM(0, x) == 0, including LCM(0, 0).
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	// divide first to keep the intermediate product small
	return a / GCD(a, b) * b
}
