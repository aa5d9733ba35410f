// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinv implements Polynomial INVerse (spec.md §4.3): it
// approximates the inverse CDF by a piecewise Newton-interpolating
// polynomial of low degree, built so that a target u-error bound holds
// on every sub-interval, then samples with a single uniform draw, a
// guide-table lookup, and one Horner evaluation.
package pinv

// Params tunes a PINV setup (spec.md §4.3).
type Params struct {
	// Center is a point of high density used to seed boundary search
	// and interval construction. Default 0.
	Center float64

	// UError is the target bound on max_k |F(P(u_k)) - u_k| that every
	// interval's interpolant must satisfy. Default 1e-10.
	UError float64

	// Degree is the Newton interpolation degree g, in [3,12]. Default 5.
	Degree int

	// BoundaryTailMass sets the stopping threshold of boundary search
	// in an unbounded tail, as a fraction of UError. Default 1e-3. With
	// a CDF the search stops once the remaining tail mass is below
	// BoundaryTailMass*UError; with a PDF it stops once the mass of the
	// latest doubling step is below that value, and the mass beyond
	// that step is not measured.
	BoundaryTailMass float64

	// GuideFactor scales the guide table size relative to the interval
	// count. Default 1.
	GuideFactor float64

	// MaxIntervals bounds the number of sub-intervals setup may build.
	// Default 1000.
	MaxIntervals int

	// MinIntervalWidth floors the candidate-width halving in interval
	// construction; setup fails rather than shrinking further.
	// Default 1e-10.
	MinIntervalWidth float64
}

func (p Params) withDefaults() Params {
	if p.UError <= 0 {
		p.UError = 1e-10
	}
	if p.Degree < 3 || p.Degree > 12 {
		p.Degree = 5
	}
	if p.BoundaryTailMass <= 0 {
		p.BoundaryTailMass = 1e-3
	}
	if p.GuideFactor <= 0 {
		p.GuideFactor = 1
	}
	if p.MaxIntervals <= 0 {
		p.MaxIntervals = 1000
	}
	if p.MinIntervalWidth <= 0 {
		p.MinIntervalWidth = 1e-10
	}
	return p
}
