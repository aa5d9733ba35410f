// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// lobattoNodes and lobattoWeights are the 5-point Gauss-Lobatto rule on
// [-1,1] (exact for polynomials up to degree 7), the quadrature rule
// spec.md §4.3 step 2 names.
var lobattoNodes = [5]float64{-1, -math.Sqrt(3.0 / 7.0), 0, math.Sqrt(3.0 / 7.0), 1}
var lobattoWeights = [5]float64{1.0 / 10.0, 49.0 / 90.0, 32.0 / 45.0, 49.0 / 90.0, 1.0 / 10.0}

// lobatto5 applies the base 5-point rule over [a,b].
func lobatto5(f func(float64) float64, a, b float64) float64 {
	half := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	sum := 0.0
	for i, n := range lobattoNodes {
		sum += lobattoWeights[i] * f(mid+half*n)
	}
	return sum * half
}

// adaptiveQuad integrates f over [a,b] to within an absolute tolerance
// using recursive bisection of the 5-point Lobatto rule (spec.md §4.3:
// "5-point Lobatto rule on adaptive sub-intervals").
func adaptiveQuad(f func(float64) float64, a, b, tol float64) float64 {
	return adaptiveQuadDepth(f, a, b, tol, lobatto5(f, a, b), 0)
}

func adaptiveQuadDepth(f func(float64) float64, a, b, tol, whole float64, depth int) float64 {
	if depth > 40 {
		return whole
	}
	mid := 0.5 * (a + b)
	left := lobatto5(f, a, mid)
	right := lobatto5(f, mid, b)
	if math.Abs(left+right-whole) <= tol {
		return left + right
	}
	return adaptiveQuadDepth(f, a, mid, tol/2, left, depth+1) +
		adaptiveQuadDepth(f, mid, b, tol/2, right, depth+1)
}
