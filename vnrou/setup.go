// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// New runs VNROU setup against dist and returns a generator bound to
// stream (spec.md §4.5). dist must carry a PDF or log-PDF and a
// dimension of at least 2.
func New(dist *distr.CvecDist, stream urng.Stream, p Params) (*unuran.Generator, error) {
	if dist == nil {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "vnrou: New given a nil distribution")
	}
	if dist.Dim() < 2 {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrInvalid, "vnrou: New requires dimension >= 2")
	}
	probe := make([]float64, dist.Dim())
	if _, hasPDF := dist.PDF(probe); !hasPDF {
		return nil, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrRequired, "vnrou: New requires a PDF or a log-PDF")
	}

	params := p.withDefaults()
	id := unuran.NextID("vnrou")
	g, err := build(id, dist, params)
	if err != nil {
		return nil, err
	}
	return unuran.NewGenerator(distr.Cvec, "vnrou", stream, g)
}

// build computes (or installs) the bounding box of spec.md §4.5
// "Setup" — the part Reinit also needs to re-run.
func build(id string, dist *distr.CvecDist, params Params) (*generator, error) {
	b, err := buildBox(dist, params.R, params)
	if err != nil {
		return nil, err
	}
	return &generator{
		id:   id,
		dist: dist.Clone().(*distr.CvecDist),
		r:    params.R,
		b:    b,
		p:    params,
	}, nil
}
