// Package fp provides the floating-point predicates the rest of the
// module uses in place of raw == and < comparisons on float64 values:
// direct comparison does not distinguish a legitimate ±Inf tail from a
// NaN produced by 0/0, and exact equality is almost never the right
// test once a value has passed through a hat, squeeze, or interpolation
// computation.
package fp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SqrtEpsilon is the default relative tolerance used by Approx: the
// square root of the machine epsilon for float64.
var SqrtEpsilon = math.Sqrt(epsilonMachine)

const epsilonMachine = 2.220446049250313e-16

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Equal reports whether a and b are exactly equal, treating two NaNs
// as unequal (matching math.NaN semantics) but two equal infinities of
// the same sign as equal.
func Equal(a, b float64) bool {
	return a == b
}

// Approx reports whether a and b are equal within a relative tolerance
// of SqrtEpsilon. Two infinities of the same sign compare equal; any
// comparison involving NaN is false.
func Approx(a, b float64) bool {
	return ApproxTol(a, b, SqrtEpsilon)
}

// ApproxTol reports whether a and b are equal within the relative
// tolerance tol. It special-cases ±Inf so that unbounded tails compare
// correctly instead of always failing; neither case is something
// floats.EqualWithinAbsOrRel documents, so they are handled here and
// the underlying finite comparison is delegated to it.
func ApproxTol(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return floats.EqualWithinAbsOrRel(a, b, 0, tol)
}

// StrictlyLess reports whether a < b, accounting for floating point
// noise near equality: values within SqrtEpsilon relative tolerance of
// each other are never considered strictly ordered.
func StrictlyLess(a, b float64) bool {
	if Approx(a, b) {
		return false
	}
	return a < b
}

// IsNaN0 reports whether x is the "true" NaN that arises from an
// indeterminate 0/0 form, as opposed to a legitimate infinite limit.
// It is provided so callers can distinguish the two cases the spec
// calls out explicitly rather than collapsing both into "not finite".
func IsNaN0(numerator, denominator float64) bool {
	return numerator == 0 && denominator == 0
}
