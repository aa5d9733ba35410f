// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "math"

// DiscrDist is a discrete univariate distribution object (spec.md
// §3.1 DISCR).
type DiscrDist struct {
	name string

	pmf func(k int) float64
	cdf func(k int) float64

	pv       []float64
	pvOffset int
	pvSum    float64
	hasPV    bool

	domain    [2]int
	hasDomain bool

	mode    int
	hasMode bool

	sum    float64
	hasSum bool

	params []float64
}

// NewDiscr returns an empty discrete distribution object.
func NewDiscr(name string) *DiscrDist {
	return &DiscrDist{
		name:   name,
		domain: [2]int{math.MinInt32, math.MaxInt32},
	}
}

// Family implements Distribution.
func (d *DiscrDist) Family() Family { return Discr }

// Name returns the distribution's informal name.
func (d *DiscrDist) Name() string { return d.name }

// SetPMF installs the probability mass function.
func (d *DiscrDist) SetPMF(pmf func(int) float64) *DiscrDist {
	if pmf == nil {
		panic("distr: SetPMF given a nil function")
	}
	d.pmf = pmf
	return d
}

// PMF evaluates the stored mass function, reporting ok=false if neither
// a probability vector nor a callback is set. When a probability vector
// is present it alone answers: k outside the vector's range gives 0,
// and the callback is not consulted.
func (d *DiscrDist) PMF(k int) (v float64, ok bool) {
	if d.hasDomain && (k < d.domain[0] || k > d.domain[1]) {
		return 0, d.pmf != nil || d.hasPV
	}
	if d.hasPV {
		i := k - d.pvOffset
		if i < 0 || i >= len(d.pv) {
			return 0, true
		}
		return d.pv[i], true
	}
	if d.pmf == nil {
		return 0, false
	}
	return d.pmf(k), true
}

// SetCDF installs the cumulative distribution function.
func (d *DiscrDist) SetCDF(cdf func(int) float64) *DiscrDist {
	if cdf == nil {
		panic("distr: SetCDF given a nil function")
	}
	d.cdf = cdf
	return d
}

// CDF evaluates the stored CDF, reporting ok=false if unset.
func (d *DiscrDist) CDF(k int) (v float64, ok bool) {
	if d.cdf == nil {
		return 0, false
	}
	return d.cdf(k), true
}

// SetProbVector installs a (possibly un-normalised) probability
// vector pv[0..n), observed starting at index offset, and caches its
// sum (spec.md §3.1: "setting a probability vector triggers caching of
// its sum"). Panics if any entry is negative.
func (d *DiscrDist) SetProbVector(pv []float64, offset int) *DiscrDist {
	sum := 0.0
	for _, p := range pv {
		if p < 0 {
			panic("distr: SetProbVector given a negative probability")
		}
		sum += p
	}
	d.pv = append([]float64(nil), pv...)
	d.pvOffset = offset
	d.pvSum = sum
	d.hasPV = true
	d.sum = sum
	d.hasSum = true
	return d
}

// ProbVector returns the stored probability vector, its start offset,
// and its cached sum, reporting ok=false if unset.
func (d *DiscrDist) ProbVector() (pv []float64, offset int, sum float64, ok bool) {
	if !d.hasPV {
		return nil, 0, 0, false
	}
	return append([]float64(nil), d.pv...), d.pvOffset, d.pvSum, true
}

// SetDomain restricts the support to [kmin,kmax].
func (d *DiscrDist) SetDomain(kmin, kmax int) *DiscrDist {
	if kmin > kmax {
		panic("distr: SetDomain given kmin > kmax")
	}
	d.domain = [2]int{kmin, kmax}
	d.hasDomain = true
	return d
}

// Domain returns the declared support, reporting ok=false if unset.
func (d *DiscrDist) Domain() (kmin, kmax int, ok bool) {
	return d.domain[0], d.domain[1], d.hasDomain
}

// SetMode records the distribution's mode.
func (d *DiscrDist) SetMode(mode int) *DiscrDist {
	d.mode = mode
	d.hasMode = true
	return d
}

// Mode returns the stored mode, reporting ok=false if unset.
func (d *DiscrDist) Mode() (v int, ok bool) { return d.mode, d.hasMode }

// SetSum records Σpmf explicitly, when known, sparing normalisation.
func (d *DiscrDist) SetSum(sum float64) *DiscrDist {
	if sum <= 0 {
		panic("distr: SetSum given a non-positive sum")
	}
	d.sum = sum
	d.hasSum = true
	return d
}

// Sum returns the cached or explicitly set Σpmf, reporting ok=false if
// neither a probability vector nor an explicit sum has been set.
func (d *DiscrDist) Sum() (v float64, ok bool) { return d.sum, d.hasSum }

// SetParams records the distribution's parameter vector.
func (d *DiscrDist) SetParams(params []float64) *DiscrDist {
	d.params = append([]float64(nil), params...)
	return d
}

// Params returns a copy of the stored parameter vector.
func (d *DiscrDist) Params() []float64 {
	return append([]float64(nil), d.params...)
}

// Clone returns an independent snapshot.
func (d *DiscrDist) Clone() Distribution {
	c := *d
	c.pv = append([]float64(nil), d.pv...)
	c.params = append([]float64(nil), d.params...)
	return &c
}
