// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"math"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
)

// engine evaluates the (normalised) density and CDF over the effective
// domain [lo,hi] that setup settles on after boundary search. It
// prefers the distribution's own CDF when present (spec.md §4.3
// contract: "Required: either pdf ... or cdf"); otherwise it falls
// back to quadrature of the density.
type engine struct {
	dist   *distr.ContDist
	lo, hi float64
	z      float64 // normalisation constant; 1 when the distribution's own CDF is used
	useCDF bool
}

// newEngine runs boundary search (spec.md §4.3 step 1) and the
// normalisation quadrature (step 2), then returns an engine ready to
// answer density() and cdf() queries on the effective domain.
func newEngine(dist *distr.ContDist, p Params) (*engine, error) {
	lo, hi, hasDomain := dist.Domain()
	if !hasDomain {
		lo, hi = math.Inf(-1), math.Inf(1)
	}

	_, hasCDF := dist.CDF(0)
	_, hasPDF := dist.PDF(0)
	e := &engine{dist: dist, lo: lo, hi: hi, useCDF: hasCDF}

	pdf := func(x float64) float64 {
		v, _ := dist.PDF(x)
		return v
	}
	tail := p.UError * p.BoundaryTailMass
	switch {
	case hasPDF:
		if math.IsInf(lo, -1) {
			e.lo = searchLeftBoundary(pdf, p.Center, tail)
		}
		if math.IsInf(hi, 1) {
			e.hi = searchRightBoundary(pdf, p.Center, tail)
		}
	default:
		cdf := func(x float64) float64 {
			v, _ := dist.CDF(x)
			return v
		}
		if math.IsInf(lo, -1) {
			e.lo = searchLeftBoundaryCDF(cdf, p.Center, tail)
		}
		if math.IsInf(hi, 1) {
			e.hi = searchRightBoundaryCDF(cdf, p.Center, tail)
		}
	}
	if !(e.hi > e.lo) {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition, "pinv: setup found an empty or reversed effective domain")
	}

	if hasCDF {
		e.z = 1
		return e, nil
	}

	z := adaptiveQuad(pdf, e.lo, e.hi, p.UError*1e-3)
	if !(z > 0) || math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition, "pinv: normalisation integral is not positive and finite")
	}
	e.z = z
	return e, nil
}

// searchLeftBoundary walks outward from center in doubling steps and
// stops at the first step after the first whose own integral of pdf
// falls below tail. The mass further out than the returned point is
// not integrated.
func searchLeftBoundary(pdf func(float64) float64, center, tail float64) float64 {
	step := 1.0
	x := center
	for i := 0; i < 200; i++ {
		next := x - step
		mass := adaptiveQuad(pdf, next, x, tail)
		if mass < tail && i > 0 {
			return next
		}
		x = next
		step *= 2
	}
	return x
}

// searchRightBoundary is searchLeftBoundary's mirror image.
func searchRightBoundary(pdf func(float64) float64, center, tail float64) float64 {
	step := 1.0
	x := center
	for i := 0; i < 200; i++ {
		next := x + step
		mass := adaptiveQuad(pdf, x, next, tail)
		if mass < tail && i > 0 {
			return next
		}
		x = next
		step *= 2
	}
	return x
}

// searchLeftBoundaryCDF is searchLeftBoundary's CDF-only counterpart,
// used when the distribution supplies a CDF but no PDF.
func searchLeftBoundaryCDF(cdf func(float64) float64, center, tail float64) float64 {
	step := 1.0
	x := center
	for i := 0; i < 200; i++ {
		next := x - step
		if cdf(next) < tail && i > 0 {
			return next
		}
		x = next
		step *= 2
	}
	return x
}

// searchRightBoundaryCDF is searchRightBoundary's CDF-only counterpart.
func searchRightBoundaryCDF(cdf func(float64) float64, center, tail float64) float64 {
	step := 1.0
	x := center
	for i := 0; i < 200; i++ {
		next := x + step
		if 1-cdf(next) < tail && i > 0 {
			return next
		}
		x = next
		step *= 2
	}
	return x
}

// density returns the normalised density at x.
func (e *engine) density(x float64) float64 {
	v, _ := e.dist.PDF(x)
	return v / e.z
}

// cdf returns F(x) for x in [lo,hi], using the distribution's own CDF
// when available, otherwise quadrature from lo.
func (e *engine) cdf(x float64, tol float64) float64 {
	if e.useCDF {
		v, _ := e.dist.CDF(x)
		return v
	}
	pdf := func(t float64) float64 {
		v, _ := e.dist.PDF(t)
		return v / e.z
	}
	return adaptiveQuad(pdf, e.lo, x, tol)
}
