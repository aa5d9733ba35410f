// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// New runs PINV setup against dist and returns a generator bound to
// stream (spec.md §4.3). dist must carry a PDF or a CDF.
func New(dist *distr.ContDist, stream urng.Stream, p Params) (*unuran.Generator, error) {
	if dist == nil {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "pinv: New given a nil distribution")
	}
	_, hasPDF := dist.PDF(0)
	_, hasCDF := dist.CDF(0)
	if !hasPDF && !hasCDF {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "pinv: New requires a PDF or a CDF")
	}

	params := p.withDefaults()
	id := unuran.NextID("pinv")
	g, err := build(id, dist, params)
	if err != nil {
		return nil, err
	}
	return unuran.NewGenerator(distr.Cont, "pinv", stream, g)
}

// build runs the setup algorithm of spec.md §4.3 steps 1-4 and returns
// the resulting interval/guide-table state, without touching any
// unuran.Generator plumbing — the part Reinit also needs to re-run.
func build(id string, dist *distr.ContDist, params Params) (*generator, error) {
	e, err := newEngine(dist, params)
	if err != nil {
		return nil, err
	}

	var intervals []*interval
	xl, ful := e.lo, 0.0
	h := 1.0
	if width := e.hi - e.lo; width > 0 && width < 1e6 {
		h = width / 16
	}

	for len(intervals) < params.MaxIntervals && xl < e.hi {
		iv, xr, ok := buildInterval(e, params, xl, ful, h)
		if !ok {
			return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
				"pinv: New: could not meet the u-error bound above x=%v even at the minimum interval width", xl)
		}
		intervals = append(intervals, iv)
		xl, ful = xr, iv.ur
		h *= 2 // try a wider interval next, spec.md §4.3 step 3's "increasing candidate width"
	}
	if len(intervals) == 0 {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenData, "pinv: New produced zero intervals")
	}

	// Fold any negligible boundary-search tail mass into the extreme
	// intervals so the guide table covers the whole unit interval.
	intervals[0].ul = 0
	intervals[len(intervals)-1].ur = 1

	guide := buildGuide(intervals, params.GuideFactor)

	return &generator{
		id:        id,
		dist:      dist.Clone().(*distr.ContDist),
		p:         params,
		intervals: intervals,
		guide:     guide,
	}, nil
}
