// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// interval holds one sub-interval's Newton interpolant of F⁻¹ plus the
// u-range it answers for (spec.md §4.3 "State maintained").
type interval struct {
	ul, ur float64 // u-range this interval answers for, globally in [0,1]
	z      []float64
	nodes  []float64
}

// eval returns P(u) for u in [ul,ur] via Horner evaluation.
func (iv *interval) eval(u float64) float64 {
	return hornerNewton(iv.z, iv.nodes, u)
}

// buildInterval tries to fit a degree-g Newton interpolant of F⁻¹ on
// [xl,xl+h] (whose CDF range is [ful, e.cdf(xl+h)]), shrinking h by half
// whenever the u-error test fails, per spec.md §4.3 step 3. It returns
// the accepted interval, the right endpoint it settled on, and ok=false
// if even the minimum width fails the error bound.
func buildInterval(e *engine, p Params, xl, ful, hInit float64) (iv *interval, xr float64, ok bool) {
	g := p.Degree
	h := hInit
	quadTol := p.UError * 1e-3

	for h >= p.MinIntervalWidth {
		xrCand := xl + h
		if xrCand > e.hi {
			xrCand = e.hi
		}
		furCand := e.cdf(xrCand, quadTol)
		if furCand-ful < 1e-14 {
			// Degenerate (zero-mass) interval: accept trivially so
			// setup can still advance past flat regions of the density.
			// A constant "interpolant" is exact here since the whole
			// interval maps to essentially one x value.
			return &interval{ul: ful, ur: furCand, z: []float64{xrCand}, nodes: []float64{ful}}, xrCand, true
		}

		uNodes := chebyshevNodes(ful, furCand, g)
		xNodes := make([]float64, g+1)
		for i, u := range uNodes {
			xNodes[i] = invertCDF(e, u, xl, xrCand, quadTol)
		}
		z := dividedDifferences(uNodes, xNodes)

		if uErrorOK(e, z, uNodes, p.UError, quadTol) {
			iv = &interval{ul: ful, ur: furCand, z: z, nodes: uNodes}
			if xrCand >= e.hi {
				return iv, e.hi, true
			}
			return iv, xrCand, true
		}

		h /= 2
	}
	return nil, 0, false
}

// uErrorOK evaluates the interpolant at g interior test abscissae
// (midpoints between consecutive nodes) and reports whether the
// u-error bound holds at all of them.
func uErrorOK(e *engine, z, nodes []float64, uError, quadTol float64) bool {
	for i := 0; i+1 < len(nodes); i++ {
		ut := 0.5 * (nodes[i] + nodes[i+1])
		x := hornerNewton(z, nodes, ut)
		f := e.cdf(x, quadTol)
		if math.Abs(f-ut) > uError {
			return false
		}
	}
	return true
}

// invertCDF solves e.cdf(x) == u for x in [lo,hi] by bisection
// safeguarded Newton iteration using the density as F's derivative.
func invertCDF(e *engine, u, lo, hi, quadTol float64) float64 {
	if u <= 0 {
		return lo
	}
	if u >= 1 {
		return hi
	}
	a, b := lo, hi
	x := 0.5 * (a + b)
	for i := 0; i < 60; i++ {
		fx := e.cdf(x, quadTol) - u
		if fx > 0 {
			b = x
		} else {
			a = x
		}
		df := e.density(x)
		var next float64
		if df > 0 {
			next = x - fx/df
		}
		if df <= 0 || next <= a || next >= b || math.IsNaN(next) {
			next = 0.5 * (a + b)
		}
		if math.Abs(next-x) < 1e-14*(1+math.Abs(x)) {
			x = next
			break
		}
		x = next
	}
	return x
}
