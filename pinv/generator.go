// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// generator is the pinv-internal state unuran.Generator wraps.
type generator struct {
	id   string
	dist *distr.ContDist
	p    Params

	intervals []*interval
	guide     []int
}

// Reinit implements unuran.Method.
func (g *generator) Reinit() error {
	fresh, err := build(g.id, g.dist, g.p)
	if err != nil {
		return err
	}
	g.intervals = fresh.intervals
	g.guide = fresh.guide
	return nil
}

// CloneMethod implements unuran.Method.
func (g *generator) CloneMethod() unuran.Method {
	return &generator{
		id:        g.id + ".clone",
		dist:      g.dist.Clone().(*distr.ContDist),
		p:         g.p,
		intervals: append([]*interval(nil), g.intervals...),
		guide:     append([]int(nil), g.guide...),
	}
}

// Free implements unuran.Method.
func (g *generator) Free() {
	g.intervals = nil
	g.guide = nil
}

// SampleCont implements unuran.ContSampler: a single uniform draw, a
// guide-table lookup, and one Horner evaluation (spec.md §4.3 "Sample
// algorithm").
func (g *generator) SampleCont(stream urng.Stream) float64 {
	u := stream.Next()
	iv := g.intervals[locate(g.intervals, g.guide, u)]
	return iv.eval(u)
}
