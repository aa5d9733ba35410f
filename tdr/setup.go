// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"math"
	"sort"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/internal/fp"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// New runs TDR setup against dist and returns a generator bound to
// stream (spec.md §4.2). dist must carry a PDF and a DPDF; setup fails
// with a CodeDistrRequired error otherwise. A density that cannot be
// made concave by the configured transform — in particular, one whose
// tangent lines fail to bound it from above — fails with
// CodeGenCondition, spec.md §7's "not log-concave" failure.
func New(dist *distr.ContDist, stream urng.Stream, p Params) (*unuran.Generator, error) {
	if dist == nil {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "tdr: New given a nil distribution")
	}
	if _, ok := dist.PDF(0); !ok {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "tdr: New requires a PDF")
	}
	if _, ok := dist.DPDF(0); !ok {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "tdr: New requires a DPDF")
	}
	params := p.withDefaults()
	if params.C != 0 && params.C != -0.5 && params.C != -1 {
		return nil, unuran.NewError(unuran.SubjectParams, unuran.CodeParamsInvalid, "tdr: New given unsupported C=%v (want 0, -0.5, or -1)", params.C)
	}

	id := unuran.NextID("tdr")
	g, err := build(id, dist, params)
	if err != nil {
		return nil, err
	}

	return unuran.NewGenerator(distr.Cont, "tdr", stream, g)
}

// build constructs the hat/squeeze interval chain and guide table for
// dist under params, without touching any unuran.Generator plumbing —
// it is the part Reinit also needs to re-run.
func build(id string, dist *distr.ContDist, params Params) (*generator, error) {
	lo, hi, hasDomain := dist.Domain()
	if !hasDomain {
		lo, hi = math.Inf(-1), math.Inf(1)
	}

	xs := seedPoints(lo, hi, dist.Center(), params)

	tf := func(x float64) (float64, float64, error) {
		f, ok := dist.PDF(x)
		if !ok || !fp.Finite(f) || f < 0 {
			return 0, 0, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrInvalid, "tdr: PDF(%v) is invalid", x)
		}
		df, ok := dist.DPDF(x)
		if !ok || !fp.Finite(df) {
			return 0, 0, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrInvalid, "tdr: DPDF(%v) is invalid", x)
		}
		return f, df, nil
	}

	if len(xs) < 2 {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenData, "tdr: New needs at least 2 distinct construction points")
	}

	pts := make([]point, len(xs))
	for i, x := range xs {
		pt, err := evalPoint(tf, x)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}

	intervals := make([]*interval, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		iv, ok := buildInterval(params.C, pts[i], pts[i+1])
		if !ok {
			return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
				"tdr: New: density is not log-concave after the chosen transform near x=%v", pts[i].x)
		}
		intervals = append(intervals, iv)
	}

	for len(intervals) < params.MaxIntervals {
		idx, worst := worstInterval(intervals)
		if worst <= params.MaxSqHatRatio {
			break
		}
		iv := intervals[idx]
		xm := arcmean(iv.xl, iv.xr)
		if !(xm > iv.xl && xm < iv.xr) {
			break
		}
		pm, err := evalPoint(tf, xm)
		if err != nil {
			return nil, err
		}
		left, ok := buildInterval(params.C, iv.leftPoint(), pm)
		if !ok {
			return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
				"tdr: New: density is not log-concave after the chosen transform near x=%v", xm)
		}
		right, ok := buildInterval(params.C, pm, iv.rightPoint())
		if !ok {
			return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
				"tdr: New: density is not log-concave after the chosen transform near x=%v", xm)
		}
		intervals[idx] = left
		intervals = append(intervals, nil)
		copy(intervals[idx+2:], intervals[idx+1:])
		intervals[idx+1] = right
	}

	totalArea := 0.0
	for _, iv := range intervals {
		totalArea += iv.hatArea()
		iv.cumArea = totalArea
	}
	if !fp.Finite(totalArea) || totalArea <= 0 {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition, "tdr: New: total hat area is not positive and finite")
	}

	guide := buildGuide(intervals, totalArea, params.GuideFactor)

	return &generator{
		id:        id,
		dist:      dist.Clone().(*distr.ContDist),
		p:         params,
		intervals: intervals,
		guide:     guide,
		totalArea: totalArea,
	}, nil
}

// worstInterval returns the index of, and ratio for, the interval with
// the largest hat-to-squeeze area ratio.
func worstInterval(intervals []*interval) (idx int, worst float64) {
	worst = -1
	for i, iv := range intervals {
		if r := iv.ratio(); r > worst {
			worst, idx = r, i
		}
	}
	return idx, worst
}

// seedPoints returns the initial construction points for build, sorted
// and free of duplicates. When params.ConstructionPoints is set it is
// used directly (still sorted/deduplicated); otherwise params.NumPoints
// points are placed across [lo,hi], using an arctangent spread around
// center when either bound is infinite (spec.md §4.2 step 1).
func seedPoints(lo, hi, center float64, params Params) []float64 {
	var xs []float64
	if len(params.ConstructionPoints) > 0 {
		xs = append([]float64(nil), params.ConstructionPoints...)
	} else {
		n := params.NumPoints
		if n < 2 {
			n = 2
		}
		xs = make([]float64, n)
		switch {
		case !math.IsInf(lo, -1) && !math.IsInf(hi, 1):
			step := (hi - lo) / float64(n+1)
			for i := 0; i < n; i++ {
				xs[i] = lo + step*float64(i+1)
			}
		default:
			for i := 0; i < n; i++ {
				theta := 0.0
				if n > 1 {
					theta = -1.4 + 2.8*float64(i)/float64(n-1)
				}
				x := center + math.Tan(theta)
				if !math.IsInf(lo, -1) && x < lo {
					x = lo
				}
				if !math.IsInf(hi, 1) && x > hi {
					x = hi
				}
				xs[i] = x
			}
		}
	}

	sort.Float64s(xs)
	out := xs[:0]
	for i, x := range xs {
		if i > 0 && x <= out[len(out)-1] {
			continue
		}
		out = append(out, x)
	}
	return out
}

