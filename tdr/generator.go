// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
)

// generator is the tdr-internal state unuran.Generator wraps: the
// captured distribution snapshot, the tuning parameters, and the
// interval/guide-table hat representation built by setup.
type generator struct {
	id   string
	dist *distr.ContDist
	p    Params

	intervals []*interval
	guide     []int
	totalArea float64

	verifyWarned bool
}

// Reinit rebuilds the hat/squeeze tables from the captured distribution
// snapshot, for the "mutate distribution, then reinit" pattern
// (spec.md §4.1).
func (g *generator) Reinit() error {
	fresh, err := build(g.id, g.dist, g.p)
	if err != nil {
		return err
	}
	g.intervals = fresh.intervals
	g.guide = fresh.guide
	g.totalArea = fresh.totalArea
	return nil
}

// CloneMethod implements unuran.Method.
func (g *generator) CloneMethod() unuran.Method {
	c := &generator{
		id:        g.id + ".clone",
		dist:      g.dist.Clone().(*distr.ContDist),
		p:         g.p,
		intervals: append([]*interval(nil), g.intervals...),
		guide:     append([]int(nil), g.guide...),
		totalArea: g.totalArea,
	}
	return c
}

// Free implements unuran.Method.
func (g *generator) Free() {
	g.intervals = nil
	g.guide = nil
}
