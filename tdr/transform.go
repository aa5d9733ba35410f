// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import "math"

// transform evaluates T_c(t) for t > 0. c == 0 selects the log
// transform; c < 0 selects T_c(t) = -t^c, which (since t^c is then
// decreasing in t) is increasing in t just like the log transform, so
// the same tangent-hat construction applies uniformly.
func transform(c, t float64) float64 {
	if c == 0 {
		return math.Log(t)
	}
	return -math.Pow(t, c)
}

// invTransform is the inverse of transform.
func invTransform(c, y float64) float64 {
	if c == 0 {
		return math.Exp(y)
	}
	return math.Pow(-y, 1/c)
}

// dTransform evaluates dT_c/dt at t > 0.
func dTransform(c, t float64) float64 {
	if c == 0 {
		return 1 / t
	}
	return -c * math.Pow(t, c-1)
}

// arcmean returns the construction point the spec's adaptive
// refinement rule (spec.md §4.2 step 4) uses to split an interval: the
// arctangent-averaged midpoint of a and b, which degrades gracefully
// toward a harmonic-mean-like average as either endpoint grows large
// in magnitude (arctan saturates, so the average is dominated by the
// finite endpoint rather than by the far one). Infinite endpoints are
// treated as arctan's ±π/2 limit directly.
func arcmean(a, b float64) float64 {
	ata := math.Atan(a)
	if math.IsInf(a, 1) {
		ata = math.Pi / 2
	} else if math.IsInf(a, -1) {
		ata = -math.Pi / 2
	}
	atb := math.Atan(b)
	if math.IsInf(b, 1) {
		atb = math.Pi / 2
	} else if math.IsInf(b, -1) {
		atb = -math.Pi / 2
	}
	mid := 0.5 * (ata + atb)
	return math.Tan(mid)
}
