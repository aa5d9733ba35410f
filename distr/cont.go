// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "math"

// ContDist is a continuous univariate distribution object (spec.md
// §3.1 CONT). All fields except Name are optional; their presence is
// what a method's contract (§4) checks for. Build one with NewCont and
// populate it with the Set... setters; the fields are unexported.
type ContDist struct {
	name string

	pdf    func(x float64) float64
	dpdf   func(x float64) float64
	logpdf func(x float64) float64
	cdf    func(x float64) float64
	invcdf func(u float64) float64
	hr     func(x float64) float64

	domain    [2]float64
	hasDomain bool

	mode    float64
	hasMode bool

	center    float64
	hasCenter bool

	area    float64
	hasArea bool

	params []float64
}

// NewCont returns an empty continuous distribution object with the
// default domain (-∞, ∞).
func NewCont(name string) *ContDist {
	return &ContDist{
		name:   name,
		domain: [2]float64{math.Inf(-1), math.Inf(1)},
	}
}

// Family implements Distribution.
func (d *ContDist) Family() Family { return Cont }

// Name returns the distribution's informal name, used only for
// diagnostics and debug logging.
func (d *ContDist) Name() string { return d.name }

// SetPDF installs the probability density function. pdf must return 0
// outside any domain later set with SetDomain (spec.md §3.1 invariant).
func (d *ContDist) SetPDF(pdf func(float64) float64) *ContDist {
	if pdf == nil {
		panic("distr: SetPDF given a nil function")
	}
	d.pdf = pdf
	return d
}

// PDF evaluates the stored density, reporting ok=false if none was set.
func (d *ContDist) PDF(x float64) (v float64, ok bool) {
	if d.pdf == nil {
		return 0, false
	}
	if d.hasDomain && (x < d.domain[0] || x > d.domain[1]) {
		return 0, true
	}
	return d.pdf(x), true
}

// SetDPDF installs the derivative of the density.
func (d *ContDist) SetDPDF(dpdf func(float64) float64) *ContDist {
	if dpdf == nil {
		panic("distr: SetDPDF given a nil function")
	}
	d.dpdf = dpdf
	return d
}

// DPDF evaluates the stored derivative, reporting ok=false if unset.
func (d *ContDist) DPDF(x float64) (v float64, ok bool) {
	if d.dpdf == nil {
		return 0, false
	}
	return d.dpdf(x), true
}

// SetLogPDF installs the log-density, an alternative to SetPDF that
// TDR's c=0 variant prefers for numerical stability.
func (d *ContDist) SetLogPDF(logpdf func(float64) float64) *ContDist {
	if logpdf == nil {
		panic("distr: SetLogPDF given a nil function")
	}
	d.logpdf = logpdf
	return d
}

// LogPDF evaluates the stored log-density if set; otherwise it falls
// back to math.Log of the plain density when that is available.
func (d *ContDist) LogPDF(x float64) (v float64, ok bool) {
	if d.logpdf != nil {
		return d.logpdf(x), true
	}
	if d.pdf != nil {
		p, _ := d.PDF(x)
		return math.Log(p), true
	}
	return 0, false
}

// HasLogPDF reports whether an explicit log-density (not a fallback
// through PDF) is available.
func (d *ContDist) HasLogPDF() bool { return d.logpdf != nil }

// SetCDF installs the cumulative distribution function.
func (d *ContDist) SetCDF(cdf func(float64) float64) *ContDist {
	if cdf == nil {
		panic("distr: SetCDF given a nil function")
	}
	d.cdf = cdf
	return d
}

// CDF evaluates the stored CDF, reporting ok=false if unset.
func (d *ContDist) CDF(x float64) (v float64, ok bool) {
	if d.cdf == nil {
		return 0, false
	}
	return d.cdf(x), true
}

// SetInvCDF installs the inverse CDF (quantile function).
func (d *ContDist) SetInvCDF(invcdf func(float64) float64) *ContDist {
	if invcdf == nil {
		panic("distr: SetInvCDF given a nil function")
	}
	d.invcdf = invcdf
	return d
}

// InvCDF evaluates the stored inverse CDF, reporting ok=false if unset.
func (d *ContDist) InvCDF(u float64) (v float64, ok bool) {
	if d.invcdf == nil {
		return 0, false
	}
	return d.invcdf(u), true
}

// SetHazard installs the hazard rate function f(x)/(1-F(x)).
func (d *ContDist) SetHazard(hr func(float64) float64) *ContDist {
	if hr == nil {
		panic("distr: SetHazard given a nil function")
	}
	d.hr = hr
	return d
}

// Hazard evaluates the stored hazard rate, reporting ok=false if unset.
func (d *ContDist) Hazard(x float64) (v float64, ok bool) {
	if d.hr == nil {
		return 0, false
	}
	return d.hr(x), true
}

// SetDomain restricts the support to [a,b]; either bound may be
// infinite. Panics if a > b. Any mode already set must lie within the
// new domain or SetDomain panics, per the invariant in spec.md §3.1.
func (d *ContDist) SetDomain(a, b float64) *ContDist {
	if a > b {
		panic("distr: SetDomain given a > b")
	}
	if d.hasMode && (d.mode < a || d.mode > b) {
		panic("distr: SetDomain would exclude the already-set mode")
	}
	d.domain = [2]float64{a, b}
	d.hasDomain = true
	return d
}

// Domain returns the declared support, reporting ok=false if none was
// explicitly set (the implicit domain is then (-∞,∞)).
func (d *ContDist) Domain() (a, b float64, ok bool) {
	return d.domain[0], d.domain[1], d.hasDomain
}

// SetMode records the distribution's mode. Panics if a domain is set
// and mode lies outside it.
func (d *ContDist) SetMode(mode float64) *ContDist {
	if d.hasDomain && (mode < d.domain[0] || mode > d.domain[1]) {
		panic("distr: SetMode given a value outside the declared domain")
	}
	d.mode = mode
	d.hasMode = true
	return d
}

// Mode returns the stored mode, reporting ok=false if unset.
func (d *ContDist) Mode() (v float64, ok bool) { return d.mode, d.hasMode }

// SetCenter records a user-hinted abscissa used to anchor boundary
// search and interpolation (spec.md GLOSSARY "Center").
func (d *ContDist) SetCenter(center float64) *ContDist {
	d.center = center
	d.hasCenter = true
	return d
}

// Center returns the stored center, defaulting to the mode if set,
// else 0, when none was explicitly given.
func (d *ContDist) Center() float64 {
	if d.hasCenter {
		return d.center
	}
	if d.hasMode {
		return d.mode
	}
	return 0
}

// SetArea records the normalisation constant ∫pdf, when known in
// advance, sparing a method the need to compute it.
func (d *ContDist) SetArea(area float64) *ContDist {
	if area <= 0 {
		panic("distr: SetArea given a non-positive area")
	}
	d.area = area
	d.hasArea = true
	return d
}

// Area returns the stored normalisation constant, reporting ok=false
// if unset.
func (d *ContDist) Area() (v float64, ok bool) { return d.area, d.hasArea }

// SetParams records the distribution's parameter vector.
func (d *ContDist) SetParams(params []float64) *ContDist {
	d.params = append([]float64(nil), params...)
	return d
}

// Params returns a copy of the stored parameter vector.
func (d *ContDist) Params() []float64 {
	return append([]float64(nil), d.params...)
}

// Clone returns an independent snapshot; function-valued attributes
// are shared (they are treated as pure, immutable callbacks), while
// all scalar and slice attributes are copied.
func (d *ContDist) Clone() Distribution {
	c := *d
	c.params = append([]float64(nil), d.params...)
	return &c
}
