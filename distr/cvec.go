// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CvecDist is a continuous multivariate distribution object (spec.md
// §3.1 CVEC). Its covariance handling follows
// gonum.org/v1/gonum/stat/distmv's Normal type directly: a SymDense is
// captured, its Cholesky factor is computed eagerly, and the inverse
// is derived from the factor rather than recomputed independently.
type CvecDist struct {
	dim int

	pdf      func(x []float64) float64
	logpdf   func(x []float64) float64
	gradLog  func(x, grad []float64)
	hasGrad  bool

	domainLo, domainHi []float64
	hasDomain          bool

	mode      []float64
	hasMode   bool
	center    []float64
	hasCenter bool

	mean    []float64
	hasMean bool

	sigma   *mat.SymDense
	chol    mat.Cholesky
	inv     *mat.Dense
	hasCov  bool

	marginals []Distribution

	params []float64
}

// NewCvec returns an empty d-dimensional distribution object. Panics
// if d < 2, matching spec.md §3.1's "dimension d (required, ≥2)".
func NewCvec(d int) *CvecDist {
	if d < 2 {
		panic("distr: NewCvec given a dimension below 2")
	}
	return &CvecDist{dim: d}
}

// Family implements Distribution.
func (d *CvecDist) Family() Family { return Cvec }

// Dim returns the declared dimension.
func (d *CvecDist) Dim() int { return d.dim }

// SetPDF installs the joint density function; x is never retained.
func (d *CvecDist) SetPDF(pdf func([]float64) float64) *CvecDist {
	if pdf == nil {
		panic("distr: SetPDF given a nil function")
	}
	d.pdf = pdf
	return d
}

// PDF evaluates the stored density, reporting ok=false if unset.
func (d *CvecDist) PDF(x []float64) (v float64, ok bool) {
	if len(x) != d.dim {
		panic("distr: PDF given a point of the wrong dimension")
	}
	if d.hasDomain {
		for i, xi := range x {
			if xi < d.domainLo[i] || xi > d.domainHi[i] {
				return 0, d.pdf != nil || d.logpdf != nil
			}
		}
	}
	if d.pdf != nil {
		return d.pdf(x), true
	}
	if d.logpdf != nil {
		return math.Exp(d.logpdf(x)), true
	}
	return 0, false
}

// SetLogPDF installs the log-density.
func (d *CvecDist) SetLogPDF(logpdf func([]float64) float64) *CvecDist {
	if logpdf == nil {
		panic("distr: SetLogPDF given a nil function")
	}
	d.logpdf = logpdf
	return d
}

// LogPDF evaluates the stored log-density, falling back to math.Log
// of the plain density, reporting ok=false if neither is set.
func (d *CvecDist) LogPDF(x []float64) (v float64, ok bool) {
	if len(x) != d.dim {
		panic("distr: LogPDF given a point of the wrong dimension")
	}
	if d.logpdf != nil {
		return d.logpdf(x), true
	}
	if d.pdf != nil {
		p, _ := d.PDF(x)
		return math.Log(p), true
	}
	return 0, false
}

// SetGradLogPDF installs the gradient of the log-density.
func (d *CvecDist) SetGradLogPDF(grad func(x, out []float64)) *CvecDist {
	if grad == nil {
		panic("distr: SetGradLogPDF given a nil function")
	}
	d.gradLog = grad
	d.hasGrad = true
	return d
}

// GradLogPDF writes ∇log f(x) into out, reporting ok=false if unset.
func (d *CvecDist) GradLogPDF(x, out []float64) (ok bool) {
	if !d.hasGrad {
		return false
	}
	d.gradLog(x, out)
	return true
}

// SetDomain restricts the support to the axis-aligned box [lo,hi].
// Panics if len(lo) or len(hi) != Dim, or if any lo[i] > hi[i].
func (d *CvecDist) SetDomain(lo, hi []float64) *CvecDist {
	if len(lo) != d.dim || len(hi) != d.dim {
		panic("distr: SetDomain given bounds of the wrong dimension")
	}
	for i := range lo {
		if lo[i] > hi[i] {
			panic("distr: SetDomain given lo[i] > hi[i]")
		}
	}
	d.domainLo = append([]float64(nil), lo...)
	d.domainHi = append([]float64(nil), hi...)
	d.hasDomain = true
	return d
}

// Domain returns the declared box bounds, reporting ok=false if unset.
func (d *CvecDist) Domain() (lo, hi []float64, ok bool) {
	if !d.hasDomain {
		return nil, nil, false
	}
	return append([]float64(nil), d.domainLo...), append([]float64(nil), d.domainHi...), true
}

// SetMode records the distribution's mode.
func (d *CvecDist) SetMode(mode []float64) *CvecDist {
	if len(mode) != d.dim {
		panic("distr: SetMode given a point of the wrong dimension")
	}
	d.mode = append([]float64(nil), mode...)
	d.hasMode = true
	return d
}

// Mode returns the stored mode, reporting ok=false if unset.
func (d *CvecDist) Mode() (v []float64, ok bool) {
	if !d.hasMode {
		return nil, false
	}
	return append([]float64(nil), d.mode...), true
}

// SetCenter records a user-hinted point anchoring boundary search.
func (d *CvecDist) SetCenter(center []float64) *CvecDist {
	if len(center) != d.dim {
		panic("distr: SetCenter given a point of the wrong dimension")
	}
	d.center = append([]float64(nil), center...)
	d.hasCenter = true
	return d
}

// Center returns the stored center, falling back to the mode, else
// the zero vector.
func (d *CvecDist) Center() []float64 {
	if d.hasCenter {
		return append([]float64(nil), d.center...)
	}
	if d.hasMode {
		return append([]float64(nil), d.mode...)
	}
	return make([]float64, d.dim)
}

// SetMean records the distribution's mean vector.
func (d *CvecDist) SetMean(mean []float64) *CvecDist {
	if len(mean) != d.dim {
		panic("distr: SetMean given a vector of the wrong dimension")
	}
	d.mean = append([]float64(nil), mean...)
	d.hasMean = true
	return d
}

// Mean returns the stored mean vector, reporting ok=false if unset.
func (d *CvecDist) Mean() (v []float64, ok bool) {
	if !d.hasMean {
		return nil, false
	}
	return append([]float64(nil), d.mean...), true
}

// SetCovar installs the covariance matrix, triggering recomputation
// of its Cholesky factor and inverse (spec.md §3.1: "derived state
// recomputation"). It reports ok=false, leaving the distribution's
// covariance unchanged, if sigma is not symmetric positive definite —
// the same contract as mat.Cholesky.Factorize / distmv.NewNormal.
func (d *CvecDist) SetCovar(sigma mat.Symmetric) (ok bool) {
	if sigma.Symmetric() != d.dim {
		panic("distr: SetCovar given a matrix of the wrong dimension")
	}
	var chol mat.Cholesky
	if !chol.Factorize(sigma) {
		return false
	}
	sym := mat.NewSymDense(d.dim, nil)
	sym.CopySym(sigma)

	var inv mat.Dense
	if err := chol.InverseTo(&inv); err != nil {
		return false
	}

	d.sigma = sym
	d.chol = chol
	d.inv = &inv
	d.hasCov = true
	return true
}

// Covar returns the stored covariance matrix, reporting ok=false if
// unset.
func (d *CvecDist) Covar() (sigma *mat.SymDense, ok bool) {
	if !d.hasCov {
		return nil, false
	}
	return d.sigma, true
}

// Cholesky returns the cached Cholesky factor of the covariance
// matrix, reporting ok=false if no covariance has been set.
func (d *CvecDist) Cholesky() (chol *mat.Cholesky, ok bool) {
	if !d.hasCov {
		return nil, false
	}
	return &d.chol, true
}

// CovarInverse returns the cached inverse of the covariance matrix,
// reporting ok=false if no covariance has been set.
func (d *CvecDist) CovarInverse() (inv *mat.Dense, ok bool) {
	if !d.hasCov {
		return nil, false
	}
	return d.inv, true
}

// AddMarginal appends a standard univariate marginal distribution,
// used by callers that want per-axis reference behaviour (e.g. for
// diagnostics) without fully specifying the joint density.
func (d *CvecDist) AddMarginal(m Distribution) *CvecDist {
	d.marginals = append(d.marginals, m)
	return d
}

// Marginals returns the stored list of standard marginals.
func (d *CvecDist) Marginals() []Distribution {
	return append([]Distribution(nil), d.marginals...)
}

// SetParams records the distribution's parameter vector.
func (d *CvecDist) SetParams(params []float64) *CvecDist {
	d.params = append([]float64(nil), params...)
	return d
}

// Params returns a copy of the stored parameter vector.
func (d *CvecDist) Params() []float64 {
	return append([]float64(nil), d.params...)
}

// Clone returns an independent snapshot.
func (d *CvecDist) Clone() Distribution {
	c := *d
	c.domainLo = append([]float64(nil), d.domainLo...)
	c.domainHi = append([]float64(nil), d.domainHi...)
	c.mode = append([]float64(nil), d.mode...)
	c.center = append([]float64(nil), d.center...)
	c.mean = append([]float64(nil), d.mean...)
	c.params = append([]float64(nil), d.params...)
	c.marginals = append([]Distribution(nil), d.marginals...)
	if d.hasCov {
		sym := mat.NewSymDense(d.dim, nil)
		sym.CopySym(d.sigma)
		c.sigma = sym
		var chol mat.Cholesky
		chol.Factorize(sym)
		c.chol = chol
		var inv mat.Dense
		inv.CloneFrom(d.inv)
		c.inv = &inv
	}
	return &c
}
