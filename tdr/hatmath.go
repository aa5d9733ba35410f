// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import "math"

// A tangent segment is the line y(s) = a0 + slope*s in transformed
// space, anchored at some base point x0, where s = x - x0. hatValue,
// hatArea, and hatInvertArea give the pointwise hat, the definite
// integral of invTransform(c, y(s)) from 0 to delta, and its inverse,
// in closed form for each member of the T_c family — the entire point
// of choosing a transform from that family (spec.md §4.2) is that this
// integral and its inverse stay elementary.

// hatValue returns the hat density at offset delta from the segment's
// base point.
func hatValue(c, a0, slope, delta float64) float64 {
	return invTransform(c, a0+slope*delta)
}

// hatArea returns ∫0^delta invTransform(c, a0+slope*s) ds.
func hatArea(c, a0, slope, delta float64) float64 {
	if c == 0 {
		if slope == 0 {
			return math.Exp(a0) * delta
		}
		return math.Exp(a0) * (math.Exp(slope*delta) - 1) / slope
	}
	k := -a0 // = f(x0)^c
	p := 1 / c
	if slope == 0 {
		return math.Pow(k, p) * delta
	}
	if p == -1 {
		return -(1 / slope) * math.Log((k-slope*delta)/k)
	}
	return -(1 / (slope * (p + 1))) * (math.Pow(k-slope*delta, p+1) - math.Pow(k, p+1))
}

// hatInvertArea solves hatArea(c, a0, slope, delta) == area for delta
// >= 0 (area must be within the segment's total area).
func hatInvertArea(c, a0, slope, area float64) float64 {
	if c == 0 {
		if slope == 0 {
			return area * math.Exp(-a0)
		}
		return math.Log(1+area*slope*math.Exp(-a0)) / slope
	}
	k := -a0
	p := 1 / c
	if slope == 0 {
		return area * math.Pow(k, -p)
	}
	if p == -1 {
		return k * (1 - math.Exp(-area*slope)) / slope
	}
	inner := math.Pow(k, p+1) - area*slope*(p+1)
	return (k - math.Pow(inner, 1/(p+1))) / slope
}
