// Package numtheory provides the scalar helpers used by row reduction:
// greatest common divisor, least common multiple and zero-sign
// normalization.
//
// What & Why:
//
//	Elimination in package matrix scales two rows to a common multiple of
//	their pivot entries before subtracting them. For integer inputs this
//	keeps every intermediate row integral; for non-integer inputs the
//	same formula still yields the correct ratio, because Euclid on
//	math.Mod terminates on binary fractions.
//
// Two families are offered:
//
//   - float64 forms (GreatestCommonDivisor, LeastCommonMultiple) used by
//     the arithmetic engine;
//   - generic integer forms (GCD, LCM) over constraints.Integer.
//
// Complexity:
//
//	GCD and LCM run in O(log min(|a|,|b|)) steps for integers.
package numtheory
