// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgt

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// generator is the dgt-internal state unuran.Generator wraps: the
// captured probability vector's prefix sums and guide table (spec.md
// §4.4).
type generator struct {
	id     string
	dist   *distr.DiscrDist
	offset int
	cum    []float64
	total  float64
	guide  []int
	p      Params
}

// Reinit rebuilds the prefix sums and guide table from the captured
// distribution's current probability vector. This is the second half
// of the "unwrap-mutate-reinit" pathway Distr supports: a caller zeroes
// out an already-drawn index's mass, then calls Reinit to sample
// without replacement (the scenario spec.md §8's property laws call
// out for DGT).
func (g *generator) Reinit() error {
	fresh, err := build(g.id, g.dist, g.p)
	if err != nil {
		return err
	}
	g.offset = fresh.offset
	g.cum = fresh.cum
	g.total = fresh.total
	g.guide = fresh.guide
	return nil
}

// CloneMethod implements unuran.Method.
func (g *generator) CloneMethod() unuran.Method {
	return &generator{
		id:     g.id + ".clone",
		dist:   g.dist.Clone().(*distr.DiscrDist),
		offset: g.offset,
		cum:    append([]float64(nil), g.cum...),
		total:  g.total,
		guide:  append([]int(nil), g.guide...),
		p:      g.p,
	}
}

// Free implements unuran.Method.
func (g *generator) Free() {
	g.cum = nil
	g.guide = nil
}

// SampleDiscr implements unuran.DiscrSampler (spec.md §4.4 "Sample").
func (g *generator) SampleDiscr(stream urng.Stream) int {
	u := stream.Next()
	size := len(g.guide)
	bucket := int(u * float64(size))
	if bucket >= size {
		bucket = size - 1
	}
	idx := g.guide[bucket]
	target := u * g.total
	for idx < len(g.cum)-1 && g.cum[idx] < target {
		idx++
	}
	return idx + g.offset
}

// Distr returns the distribution snapshot g has captured, for in-place
// mutation through the "unwrap-mutate-reinit" pathway, and ok=false if
// g does not wrap a DGT method.
func Distr(g *unuran.Generator) (dist *distr.DiscrDist, ok bool) {
	impl, ok := g.Method().(*generator)
	if !ok {
		return nil, false
	}
	return impl.dist, true
}
