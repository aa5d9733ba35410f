// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"math"

	"github.com/unuran/unuran-sub011/internal/fp"
)

// interval is one piece of the piecewise-linear hat/squeeze
// construction (spec.md §4.2 "State maintained").
type interval struct {
	xl, xr   float64
	fl, fr   float64 // original (untransformed) density at xl, xr
	dfl, dfr float64 // original density derivative at xl, xr

	c              float64 // transform parameter the interval was built with
	al, ar         float64 // T_c(f(xl)), T_c(f(xr))
	slopeL, slopeR float64 // tangent slopes in transformed space, anchored at xl and xr respectively

	ip        float64 // intersection abscissa of the two tangents
	areaLeft  float64 // hat area on [xl, ip]
	areaRight float64 // hat area on [ip, xr]

	squeezeArea float64

	cumArea float64 // prefix sum of hat area through this interval, for the guide table
}

// leftPoint and rightPoint reconstruct the construction points an
// interval was built from, for use when splitting it during refinement.
func (iv *interval) leftPoint() point  { return point{x: iv.xl, f: iv.fl, df: iv.dfl} }
func (iv *interval) rightPoint() point { return point{x: iv.xr, f: iv.fr, df: iv.dfr} }

func (iv *interval) hatArea() float64 { return iv.areaLeft + iv.areaRight }

func (iv *interval) ratio() float64 {
	if iv.squeezeArea <= 0 {
		return math.Inf(1)
	}
	return iv.hatArea() / iv.squeezeArea
}

// point is a construction point together with the density data TDR
// needs at it.
type point struct {
	x, f, df float64
}

func evalPoint(tf transformedFunc, x float64) (point, error) {
	f, df, err := tf(x)
	if err != nil {
		return point{}, err
	}
	return point{x: x, f: f, df: df}, nil
}

// transformedFunc evaluates the density and its derivative at x,
// returning an error when either is non-finite (spec.md §4.2 Failure
// model: "If a tangent slope is non-finite... init fails").
type transformedFunc func(x float64) (f, df float64, err error)

// buildInterval forms the hat/squeeze for the pair (l, r). It fails
// (ok=false) if the two tangents do not intersect inside (l.x, r.x),
// which spec.md §4.2 treats as the density not being log-concave after
// the chosen transform.
func buildInterval(c float64, l, r point) (*interval, bool) {
	if l.f <= 0 || r.f <= 0 || !fp.Finite(l.f) || !fp.Finite(r.f) {
		return nil, false
	}
	al := transform(c, l.f)
	ar := transform(c, r.f)
	slopeL := dTransform(c, l.f) * l.df
	slopeR := dTransform(c, r.f) * r.df
	if !fp.Finite(al) || !fp.Finite(ar) || !fp.Finite(slopeL) || !fp.Finite(slopeR) {
		return nil, false
	}

	var ip float64
	switch {
	case fp.Approx(slopeL, slopeR):
		// Degenerate (near-)parallel tangents: fall back to the
		// midpoint, the secant case spec.md §4.2 step 2 allows.
		ip = 0.5 * (l.x + r.x)
	default:
		ip = (ar - al + slopeL*l.x - slopeR*r.x) / (slopeL - slopeR)
	}
	if !fp.Finite(ip) || ip < l.x || ip > r.x {
		return nil, false
	}

	areaLeft := hatArea(c, al, slopeL, ip-l.x)
	areaRight := -hatArea(c, ar, slopeR, ip-r.x)
	if !fp.Finite(areaLeft) || !fp.Finite(areaRight) || areaLeft < 0 || areaRight < 0 {
		return nil, false
	}

	squeezeSlope := (ar - al) / (r.x - l.x)
	squeezeArea := hatArea(c, al, squeezeSlope, r.x-l.x)

	return &interval{
		xl: l.x, xr: r.x,
		fl: l.f, fr: r.f,
		dfl: l.df, dfr: r.df,
		c:  c,
		al: al, ar: ar,
		slopeL: slopeL, slopeR: slopeR,
		ip:          ip,
		areaLeft:    areaLeft,
		areaRight:   areaRight,
		squeezeArea: squeezeArea,
	}, true
}

// hatAtC evaluates the hat function at x, which must lie in [xl, xr],
// using transform parameter c.
func (iv *interval) hatAtC(c, x float64) float64 {
	if x <= iv.ip {
		return hatValue(c, iv.al, iv.slopeL, x-iv.xl)
	}
	return hatValue(c, iv.ar, iv.slopeR, x-iv.xr)
}

// squeezeAt evaluates the secant squeeze at x, which must lie in
// [xl, xr]: the secant between al and ar in transformed space, mapped
// back through invTransform.
func (iv *interval) squeezeAt(x float64) float64 {
	if iv.xr == iv.xl {
		return iv.fl
	}
	t := (x - iv.xl) / (iv.xr - iv.xl)
	return invTransform(iv.c, iv.al+t*(iv.ar-iv.al))
}

// invertHat returns the x such that the hat-area integral from xl up
// to x equals the given target area drawn uniformly from
// [0, hatArea()), using transform parameter c.
func (iv *interval) invertHat(c, target float64) float64 {
	if target <= iv.areaLeft {
		delta := hatInvertArea(c, iv.al, iv.slopeL, target)
		return iv.xl + delta
	}
	remaining := target - iv.areaLeft
	// The right piece is parametrized from xr going backward to ip,
	// so invert with the area measured from xr and negate the offset.
	delta := hatInvertArea(c, iv.ar, iv.slopeR, -(iv.areaRight - remaining))
	return iv.xr + delta
}
