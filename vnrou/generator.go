// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
)

// generator is the vnrou-internal state unuran.Generator wraps: the
// captured distribution snapshot and the bounding box computed (or
// supplied) at setup (spec.md §4.5).
type generator struct {
	id   string
	dist *distr.CvecDist
	r    float64
	b    *box
	p    Params
}

// Reinit recomputes the bounding box from the captured distribution's
// current attributes, the second half of the "unwrap-mutate-reinit"
// pathway.
func (g *generator) Reinit() error {
	fresh, err := build(g.id, g.dist, g.p)
	if err != nil {
		return err
	}
	g.r = fresh.r
	g.b = fresh.b
	return nil
}

// CloneMethod implements unuran.Method.
func (g *generator) CloneMethod() unuran.Method {
	bc := *g.b
	bc.center = append([]float64(nil), g.b.center...)
	bc.uMin = append([]float64(nil), g.b.uMin...)
	bc.uMax = append([]float64(nil), g.b.uMax...)
	return &generator{
		id:   g.id + ".clone",
		dist: g.dist.Clone().(*distr.CvecDist),
		r:    g.r,
		b:    &bc,
		p:    g.p,
	}
}

// Free implements unuran.Method.
func (g *generator) Free() {
	g.b = nil
}

// Distr returns the distribution snapshot g has captured, for in-place
// mutation through the "unwrap-mutate-reinit" pathway, and ok=false if
// g does not wrap a VNROU method.
func Distr(g *unuran.Generator) (dist *distr.CvecDist, ok bool) {
	impl, ok := g.Method().(*generator)
	if !ok {
		return nil, false
	}
	return impl.dist, true
}
