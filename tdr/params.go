// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tdr implements Transformed Density Rejection (spec.md §4.2):
// an adaptive hat/squeeze method over a continuous univariate density
// that has been made concave by one of a small family of monotone
// transforms.
package tdr

// Variant selects how a TDR generator constructs its squeeze and
// decides acceptance (spec.md §4.2: "GW — Gilks-Wild tangent hat; PS —
// proportional squeeze; IA — immediate acceptance").
type Variant int

const (
	// GW is the classical Gilks-Wild tangent hat: squeeze is the
	// secant between neighbouring construction points, and every
	// candidate is checked against the true density.
	GW Variant = iota

	// PS scales the secant squeeze down by a safety factor so that
	// it remains a valid minorant even when the density is only
	// approximately concave after transform near an interval's
	// endpoints; the factor trades a slightly worse squeeze for
	// additional robustness.
	PS

	// IA (immediate acceptance) adds a pre-test against the squeeze
	// before falling back to evaluating the true density, the
	// "immediate acceptance" step of spec.md §4.2's sample algorithm.
	IA
)

func (v Variant) String() string {
	switch v {
	case GW:
		return "GW"
	case PS:
		return "PS"
	case IA:
		return "IA"
	default:
		return "UNKNOWN"
	}
}

// Params tunes a TDR setup (spec.md §3.2 / §4.2).
type Params struct {
	// C selects the transform family T_c(x) = sign·x^c. Must be one
	// of 0 (log), -0.5, or -1. Zero value (0) selects the log
	// transform.
	C float64

	Variant Variant

	// ConstructionPoints, if non-empty, seeds the initial hat instead
	// of NumPoints generated points (equally spaced on a bounded
	// domain, an arctangent spread around the center otherwise).
	ConstructionPoints []float64

	// NumPoints is the number of initial construction points to seed
	// when ConstructionPoints is empty. Default 10.
	NumPoints int

	// MaxSqHatRatio is the target upper bound on the ratio of total
	// hat area to total squeeze area. Default 1.1 (10% excess).
	MaxSqHatRatio float64

	// MaxIntervals bounds adaptive refinement. Default 200.
	MaxIntervals int

	// GuideFactor scales the guide table size relative to the
	// interval count (table size = GuideFactor * len(intervals)).
	// Default 1.
	GuideFactor float64

	// PSFactor is the squeeze safety factor used by the PS variant,
	// in (0,1]. Default 0.99.
	PSFactor float64

	// Verify enables per-sample verification of the hat/squeeze
	// domination inequalities (spec.md §7 "Verification mode").
	Verify bool
}

func (p Params) withDefaults() Params {
	if len(p.ConstructionPoints) == 0 && p.NumPoints <= 0 {
		p.NumPoints = 10
	}
	if p.MaxSqHatRatio <= 1 {
		p.MaxSqHatRatio = 1.1
	}
	if p.MaxIntervals <= 0 {
		p.MaxIntervals = 200
	}
	if p.GuideFactor <= 0 {
		p.GuideFactor = 1
	}
	if p.PSFactor <= 0 || p.PSFactor > 1 {
		p.PSFactor = 0.99
	}
	return p
}
