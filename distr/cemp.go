// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

// CempDist is an empirical univariate sample (spec.md §3.1 CEMP): a
// raw set of observed points with no assumed functional form.
type CempDist struct {
	name   string
	sample []float64
}

// NewCemp returns an empirical distribution object over sample. The
// slice is copied.
func NewCemp(name string, sample []float64) *CempDist {
	return &CempDist{name: name, sample: append([]float64(nil), sample...)}
}

// Family implements Distribution.
func (d *CempDist) Family() Family { return Cemp }

// Name returns the distribution's informal name.
func (d *CempDist) Name() string { return d.name }

// Sample returns a copy of the raw observed points.
func (d *CempDist) Sample() []float64 {
	return append([]float64(nil), d.sample...)
}

// Clone returns an independent snapshot.
func (d *CempDist) Clone() Distribution {
	return &CempDist{name: d.name, sample: append([]float64(nil), d.sample...)}
}

// CvempDist is an empirical multivariate sample (spec.md §3.1 CVEMP):
// a raw set of d-dimensional observed points.
type CvempDist struct {
	name   string
	dim    int
	sample [][]float64
}

// NewCvemp returns an empirical multivariate distribution object over
// sample, each row of which must have length dim.
func NewCvemp(name string, dim int, sample [][]float64) *CvempDist {
	if dim < 1 {
		panic("distr: NewCvemp given a non-positive dimension")
	}
	cp := make([][]float64, len(sample))
	for i, row := range sample {
		if len(row) != dim {
			panic("distr: NewCvemp given a sample row of the wrong dimension")
		}
		cp[i] = append([]float64(nil), row...)
	}
	return &CvempDist{name: name, dim: dim, sample: cp}
}

// Family implements Distribution.
func (d *CvempDist) Family() Family { return Cvemp }

// Name returns the distribution's informal name.
func (d *CvempDist) Name() string { return d.name }

// Dim returns the sample's dimension.
func (d *CvempDist) Dim() int { return d.dim }

// Sample returns a copy of the raw observed points.
func (d *CvempDist) Sample() [][]float64 {
	cp := make([][]float64, len(d.sample))
	for i, row := range d.sample {
		cp[i] = append([]float64(nil), row...)
	}
	return cp
}

// Clone returns an independent snapshot.
func (d *CvempDist) Clone() Distribution {
	return NewCvemp(d.name, d.dim, d.sample)
}
