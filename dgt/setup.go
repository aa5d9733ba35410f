// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgt

import (
	"math"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// New runs DGT setup against dist and returns a generator bound to
// stream (spec.md §4.4). dist must carry a finite probability vector.
func New(dist *distr.DiscrDist, stream urng.Stream, p Params) (*unuran.Generator, error) {
	if dist == nil {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "dgt: New given a nil distribution")
	}
	if _, _, _, ok := dist.ProbVector(); !ok {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "dgt: New requires a probability vector")
	}

	params := p.withDefaults()
	id := unuran.NextID("dgt")
	g, err := build(id, dist, params)
	if err != nil {
		return nil, err
	}
	return unuran.NewGenerator(distr.Discr, "dgt", stream, g)
}

// build forms the prefix sums and guide table (spec.md §4.4 "Setup"),
// the part Reinit also needs to re-run.
func build(id string, dist *distr.DiscrDist, params Params) (*generator, error) {
	pv, offset, _, ok := dist.ProbVector()
	if !ok {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "dgt: New requires a probability vector")
	}
	if len(pv) == 0 {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenData, "dgt: New given an empty probability vector")
	}

	cum := make([]float64, len(pv))
	running := 0.0
	for i, v := range pv {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrInvalid, "dgt: New: probability vector entry %d is invalid", i)
		}
		running += v
		cum[i] = running
	}
	if !(running > 0) || math.IsInf(running, 0) {
		return nil, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition, "dgt: New: probability vector sums to a non-positive or infinite total")
	}

	guide := buildGuide(cum, running, params.Alpha)

	return &generator{
		id:     id,
		dist:   dist.Clone().(*distr.DiscrDist),
		offset: offset,
		cum:    cum,
		total:  running,
		guide:  guide,
		p:      params,
	}, nil
}
