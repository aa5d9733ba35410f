// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
)

// box is the axis-aligned bounding box B = [0, vMax] x [uMin, uMax]
// enclosing the ratio-of-uniforms region A_r (spec.md §4.5).
type box struct {
	center []float64
	vMax   float64
	uMin   []float64
	uMax   []float64
}

// buildBox installs an explicit box from params if given, otherwise
// computes one by per-axis numerical maximisation over the declared
// domain (spec.md §4.5 "Setup"). The naive method's per-axis searches
// hold every coordinate but the one being extremised at the center, the
// same simplification the method's name documents (spec.md §4.5
// "Properties": "acceptance probability falls with d; this is the
// expected and documented cost").
func buildBox(dist *distr.CvecDist, r float64, p Params) (*box, error) {
	d := dist.Dim()
	center := p.Center
	if center == nil {
		center = dist.Center()
	}

	if p.UMin != nil && p.UMax != nil && p.VMax > 0 {
		return &box{center: center, vMax: p.VMax,
			uMin: append([]float64(nil), p.UMin...),
			uMax: append([]float64(nil), p.UMax...)}, nil
	}

	lo, hi, ok := dist.Domain()
	if !ok {
		if p.UMin != nil && p.UMax != nil {
			vMax := p.VMax
			if vMax <= 0 {
				vMax = 1
			}
			return &box{center: center, vMax: vMax,
				uMin: append([]float64(nil), p.UMin...),
				uMax: append([]float64(nil), p.UMax...)}, nil
		}
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired,
			"vnrou: New requires a declared domain to compute a bounding box, or an explicit box")
	}

	expU := r / (r*float64(d) + 1)
	expV := 1 / (r*float64(d) + 1)

	densityAt := func(x []float64) float64 { return density(dist, x) }

	// v_max: maximise f along each axis line through center, plus the
	// center itself; the overall maximum approximates the density's
	// global maximum for the unimodal, roughly-centered densities this
	// naive method targets.
	fBest := densityAt(center)
	for axis := 0; axis < d; axis++ {
		_, fv, err := maximizeOverLine(center, axis, lo[axis], hi[axis], densityAt)
		if err != nil {
			return nil, err
		}
		if fv > fBest {
			fBest = fv
		}
	}
	if !(fBest > 0) {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
			"vnrou: New: density is non-positive everywhere sampled during bounding-box search")
	}
	vMax := math.Pow(fBest, expV)

	uMin := make([]float64, d)
	uMax := make([]float64, d)
	for axis := 0; axis < d; axis++ {
		h := func(x []float64) float64 {
			fx := densityAt(x)
			if fx <= 0 {
				return 0
			}
			return (x[axis] - center[axis]) * math.Pow(fx, expU)
		}
		if hi[axis] > center[axis] {
			_, hv, err := maximizeOverLine(center, axis, center[axis], hi[axis], h)
			if err != nil {
				return nil, err
			}
			uMax[axis] = math.Max(hv, 0)
		}
		if lo[axis] < center[axis] {
			negH := func(x []float64) float64 { return -h(x) }
			_, hv, err := maximizeOverLine(center, axis, lo[axis], center[axis], negH)
			if err != nil {
				return nil, err
			}
			uMin[axis] = math.Min(-hv, 0)
		}
	}

	return &box{center: append([]float64(nil), center...), vMax: vMax, uMin: uMin, uMax: uMax}, nil
}

// maximizeOverLine maximises f along the line through center where
// coordinate axis ranges over [lo, hi] and every other coordinate is
// held fixed at center's value — a 1-D bracketed golden-section search
// (gonum.org/v1/gonum/optimize.Brent), matching spec.md §4.5's
// "monotone-search with bracketing + golden section".
func maximizeOverLine(center []float64, axis int, lo, hi float64, f func(x []float64) float64) (xStar, fStar float64, err error) {
	if !(hi > lo) {
		x := append([]float64(nil), center...)
		x[axis] = lo
		return lo, f(x), nil
	}
	x := append([]float64(nil), center...)
	problem := optimize.Problem{
		Func: func(t []float64) float64 {
			x[axis] = t[0]
			return -f(x)
		},
	}
	start := []float64{(lo + hi) / 2}
	settings := &optimize.Settings{}
	result, err := optimize.Minimize(problem, start, settings, &optimize.Brent{Min: lo, Max: hi})
	if err != nil {
		return 0, 0, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
			"vnrou: New: per-axis bounding-box maximisation failed on axis %d: %v", axis, err)
	}
	return result.X[0], -result.F, nil
}
