// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

// MatrDist describes a random-matrix distribution (spec.md §3.1
// MATR), e.g. a random correlation matrix generator. The core does
// not itself ship a matrix-sampling method; this object exists so the
// family tag and dimension bookkeeping have a stable home for future
// methods to target, consistent with the closed, compile-time-
// enumerable catalogue of methods spec.md §9 describes.
type MatrDist struct {
	name          string
	rows, cols    int
	entryPDF      func(x [][]float64) float64
	hasEntryPDF   bool
}

// NewMatr returns an empty rows×cols random-matrix distribution
// object. Panics if rows or cols is non-positive.
func NewMatr(name string, rows, cols int) *MatrDist {
	if rows <= 0 || cols <= 0 {
		panic("distr: NewMatr given a non-positive row or column count")
	}
	return &MatrDist{name: name, rows: rows, cols: cols}
}

// Family implements Distribution.
func (d *MatrDist) Family() Family { return Matr }

// Name returns the distribution's informal name.
func (d *MatrDist) Name() string { return d.name }

// Dims returns the declared row and column counts.
func (d *MatrDist) Dims() (rows, cols int) { return d.rows, d.cols }

// SetEntryPDF installs a joint density over the matrix entries.
func (d *MatrDist) SetEntryPDF(pdf func(x [][]float64) float64) *MatrDist {
	if pdf == nil {
		panic("distr: SetEntryPDF given a nil function")
	}
	d.entryPDF = pdf
	d.hasEntryPDF = true
	return d
}

// EntryPDF evaluates the stored joint density, reporting ok=false if
// unset.
func (d *MatrDist) EntryPDF(x [][]float64) (v float64, ok bool) {
	if !d.hasEntryPDF {
		return 0, false
	}
	return d.entryPDF(x), true
}

// Clone returns an independent snapshot.
func (d *MatrDist) Clone() Distribution {
	c := *d
	return &c
}
