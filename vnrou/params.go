// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vnrou implements the Vector Naive Ratio-of-Uniforms method
// (spec.md §4.5): rejection sampling of a multivariate density from an
// axis-aligned bounding box around the ratio-of-uniforms region A_r.
package vnrou

// Params holds the user-tunable knobs VNROU's setup consumes (spec.md
// §3.2). The zero value is a usable default: r=1, no explicit box (one
// is computed by per-axis maximisation), no iteration cap.
type Params struct {
	// R is the ratio-of-uniforms exponent; must be > 0. Zero selects
	// the default of 1 (spec.md §4.5: "optional r > 0, default 1").
	R float64

	// Center, if set (len(Center) == Dim), anchors the r-centered
	// transform x = u/v^r + c and the bounding-box search. Nil
	// defaults to the distribution's own Center().
	Center []float64

	// UMin, UMax and VMax, when all three are supplied (VMax > 0),
	// give an explicit bounding box and skip the maximisation setup
	// step entirely. UMin and UMax without VMax are used only when the
	// distribution declares no domain, and vMax is then 1; when a
	// domain is declared they are ignored and the whole box is
	// computed.
	UMin, UMax []float64
	VMax       float64

	// MaxIterations caps the rejection loop per variate; 0 means no
	// cap. Exceeding it ends the loop instead of looping forever
	// (spec.md §5 "Cancellation / timeouts"): a CodeGenCondition
	// failure is recorded through the error handler and
	// unuran.LastError, out holds the last rejected candidate, and
	// Generator.SampleVec still returns a nil error.
	MaxIterations int
}

func (p Params) withDefaults() Params {
	if p.R <= 0 {
		p.R = 1
	}
	return p
}
