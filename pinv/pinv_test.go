// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/pinv"
	"github.com/unuran/unuran-sub011/urng"
)

func exponentialPDF() *distr.ContDist {
	d := distr.NewCont("exponential")
	d.SetPDF(func(x float64) float64 { return math.Exp(-x) })
	d.SetDomain(0, math.Inf(1))
	return d
}

func exponentialCDF() *distr.ContDist {
	d := distr.NewCont("exponential-cdf-only")
	d.SetCDF(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return 1 - math.Exp(-x)
	})
	d.SetDomain(0, math.Inf(1))
	return d
}

func TestNewRejectsNilDistribution(t *testing.T) {
	if _, err := pinv.New(nil, urng.NewMT19937(1), pinv.Params{}); err == nil {
		t.Fatal("New(nil, ...) succeeded, want error")
	}
}

func TestNewRequiresPDFOrCDF(t *testing.T) {
	d := distr.NewCont("empty")
	if _, err := pinv.New(d, urng.NewMT19937(1), pinv.Params{}); err == nil {
		t.Fatal("New with neither PDF nor CDF succeeded, want error")
	}
}

// sampleAt builds a fresh generator over dist and draws exactly one
// variate for the given uniform value u, via a Fixed stream.
func sampleAt(t *testing.T, dist *distr.ContDist, u float64) float64 {
	t.Helper()
	g, err := pinv.New(dist, urng.NewFixed([]float64{u}), pinv.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()
	return g.SampleCont()
}

func TestInversionMatchesAnalyticQuantile(t *testing.T) {
	for _, u := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		want := -math.Log(1 - u)
		got := sampleAt(t, exponentialPDF(), u)
		if !floats.EqualWithinAbs(got, want, 0.05) {
			t.Errorf("u=%v: got x=%v, want close to %v", u, got, want)
		}
	}
}

func TestInversionWithCDFOnly(t *testing.T) {
	u := 0.5
	want := -math.Log(1 - u)
	got := sampleAt(t, exponentialCDF(), u)
	if !floats.EqualWithinAbs(got, want, 0.05) {
		t.Errorf("u=%v: got x=%v, want close to %v", u, got, want)
	}
}

func TestSamplesAreMonotoneInU(t *testing.T) {
	g, err := pinv.New(exponentialPDF(), urng.NewMT19937(1), pinv.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	prev := math.Inf(-1)
	for _, u := range []float64{0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		g.SetStream(urng.NewFixed([]float64{u}))
		x := g.SampleCont()
		if x < prev {
			t.Fatalf("F^-1 not monotone: u=%v gave x=%v < previous %v", u, x, prev)
		}
		prev = x
	}
}

func TestReinitPreservesID(t *testing.T) {
	g, err := pinv.New(exponentialPDF(), urng.NewMT19937(1), pinv.Params{})
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
	g, err := pinv.New(exponentialPDF(), urng.NewMT19937(1), pinv.Params{})
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
	clone.SetStream(urng.NewFixed([]float64{0.5}))
	if x := clone.SampleCont(); math.IsNaN(x) {
		t.Errorf("clone.SampleCont after original freed = NaN")
	}
}
