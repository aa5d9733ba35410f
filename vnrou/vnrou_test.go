// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/urng"
	"github.com/unuran/unuran-sub011/vnrou"
)

// standardBivariateNormal is an independent, unit-variance 2-D normal
// centered at the origin — log-concave, so the naive bounding box
// constructed around its center is tight.
func standardBivariateNormal() *distr.CvecDist {
	d := distr.NewCvec(2)
	d.SetLogPDF(func(x []float64) float64 {
		return -0.5 * (x[0]*x[0] + x[1]*x[1])
	})
	d.SetDomain([]float64{-8, -8}, []float64{8, 8})
	d.SetCenter([]float64{0, 0})
	return d
}

func TestNewRejectsNilDistribution(t *testing.T) {
	if _, err := vnrou.New(nil, urng.NewMT19937(1), vnrou.Params{}); err == nil {
		t.Fatal("New(nil, ...) succeeded, want error")
	}
}

func TestNewRequiresPDFOrLogPDF(t *testing.T) {
	d := distr.NewCvec(2)
	d.SetDomain([]float64{-1, -1}, []float64{1, 1})
	if _, err := vnrou.New(d, urng.NewMT19937(1), vnrou.Params{}); err == nil {
		t.Fatal("New with neither PDF nor log-PDF succeeded, want error")
	}
}

func TestNewRequiresDomainOrExplicitBox(t *testing.T) {
	d := distr.NewCvec(2)
	d.SetLogPDF(func(x []float64) float64 { return -0.5 * (x[0]*x[0] + x[1]*x[1]) })
	if _, err := vnrou.New(d, urng.NewMT19937(1), vnrou.Params{}); err == nil {
		t.Fatal("New with no domain and no explicit box succeeded, want error")
	}
}

func TestSamplesStayInDeclaredDomain(t *testing.T) {
	g, err := vnrou.New(standardBivariateNormal(), urng.NewMT19937(7), vnrou.Params{MaxIterations: 10000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	out := make([]float64, 2)
	for i := 0; i < 500; i++ {
		if err := g.SampleVec(out); err != nil {
			t.Fatalf("SampleVec: %v", err)
		}
		for _, v := range out {
			if !floats.EqualWithinAbs(v, 0, 8) || math.IsNaN(v) {
				t.Fatalf("sample %d: got %v, want within [-8,8]", i, out)
			}
		}
	}
}

// TestMomentsMatch is the VNROU instance of spec.md §8's moment
// matching property law: empirical mean and covariance of a large
// sample should approach the distribution's analytic mean (0) and
// covariance (identity).
func TestMomentsMatch(t *testing.T) {
	g, err := vnrou.New(standardBivariateNormal(), urng.NewMT19937(11), vnrou.Params{MaxIterations: 10000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	const n = 4000
	data := make([]float64, n*2)
	out := make([]float64, 2)
	for i := 0; i < n; i++ {
		if err := g.SampleVec(out); err != nil {
			t.Fatalf("SampleVec: %v", err)
		}
		data[2*i] = out[0]
		data[2*i+1] = out[1]
	}
	x := mat.NewDense(n, 2, data)

	for col := 0; col < 2; col++ {
		colData := mat.Col(nil, col, x)
		mean := stat.Mean(colData, nil)
		if !floats.EqualWithinAbs(mean, 0, 0.15) {
			t.Errorf("column %d mean = %v, want near 0", col, mean)
		}
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := cov.At(i, j); !floats.EqualWithinAbs(got, want, 0.2) {
				t.Errorf("cov[%d][%d] = %v, want near %v", i, j, got, want)
			}
		}
	}
}

func TestExplicitBoxSkipsDomainRequirement(t *testing.T) {
	d := distr.NewCvec(2)
	d.SetLogPDF(func(x []float64) float64 { return -0.5 * (x[0]*x[0] + x[1]*x[1]) })
	p := vnrou.Params{
		UMin: []float64{-1.1, -1.1},
		UMax: []float64{1.1, 1.1},
		VMax: 1.0,
	}
	g, err := vnrou.New(d, urng.NewMT19937(3), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	out := make([]float64, 2)
	if err := g.SampleVec(out); err != nil {
		t.Fatalf("SampleVec: %v", err)
	}
}

func TestReinitPreservesID(t *testing.T) {
	g, err := vnrou.New(standardBivariateNormal(), urng.NewMT19937(1), vnrou.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()
	id := g.ID()
	if err := g.Reinit(); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if g.ID() != id {
		t.Errorf("Reinit changed ID from %q to %q", id, g.ID())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := vnrou.New(standardBivariateNormal(), urng.NewMT19937(1), vnrou.Params{MaxIterations: 10000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()
	clone := g.Clone()
	defer clone.Free()
	if clone.ID() == g.ID() {
		t.Errorf("clone shares ID %q with original", g.ID())
	}
	g.Free()
	out := make([]float64, 2)
	if err := clone.SampleVec(out); err != nil {
		t.Errorf("clone.SampleVec after original freed: %v", err)
	}
}

func TestDistrUnwrapMutateReinit(t *testing.T) {
	g, err := vnrou.New(standardBivariateNormal(), urng.NewMT19937(1), vnrou.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	view, ok := vnrou.Distr(g)
	if !ok {
		t.Fatalf("Distr: not a vnrou generator")
	}
	view.SetCenter([]float64{0.5, -0.5})
	if err := g.Reinit(); err != nil {
		t.Fatalf("Reinit after moving center: %v", err)
	}
}
