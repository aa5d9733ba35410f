// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/stat"

	"github.com/unuran/unuran-sub011/dgt"
	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/urng"
)

func fiveWay() *distr.DiscrDist {
	d := distr.NewDiscr("five-way")
	d.SetProbVector([]float64{1, 2, 3, 2, 1}, 0) // sum 9, offset 0
	return d
}

func TestNewRejectsNilDistribution(t *testing.T) {
	if _, err := dgt.New(nil, urng.NewMT19937(1), dgt.Params{}); err == nil {
		t.Fatal("New(nil, ...) succeeded, want error")
	}
}

func TestNewRequiresProbVector(t *testing.T) {
	d := distr.NewDiscr("no-pv")
	if _, err := dgt.New(d, urng.NewMT19937(1), dgt.Params{}); err == nil {
		t.Fatal("New with no probability vector succeeded, want error")
	}
}

func TestSampleDiscrStaysInRange(t *testing.T) {
	g, err := dgt.New(fiveWay(), urng.NewMT19937(1), dgt.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	for i := 0; i < 1000; i++ {
		k := g.SampleDiscr()
		if k < 0 || k > 4 {
			t.Fatalf("sample %d: got k=%d, want in [0,4]", i, k)
		}
	}
}

// TestChiSquareRoundTrip checks empirical frequencies against the
// probability vector via a chi-square goodness-of-fit statistic.
func TestChiSquareRoundTrip(t *testing.T) {
	pv := []float64{1, 2, 3, 2, 1}
	sum := 9.0
	g, err := dgt.New(fiveWay(), urng.NewMT19937(42), dgt.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	const n = 20000
	obs := make([]float64, len(pv))
	for i := 0; i < n; i++ {
		obs[g.SampleDiscr()]++
	}
	exp := make([]float64, len(pv))
	for i, p := range pv {
		exp[i] = float64(n) * p / sum
	}

	// 4 degrees of freedom; 99.9% critical value is about 18.47.
	if chi2 := stat.ChiSquare(obs, exp); chi2 > 25 {
		t.Errorf("chi-square statistic = %v, want < 25 (obs=%v, exp=%v)", chi2, obs, exp)
	}
}

func TestSampleWithoutReplacementViaReinit(t *testing.T) {
	g, err := dgt.New(fiveWay(), urng.NewFixed([]float64{0.5}), dgt.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		k := g.SampleDiscr()
		if seen[k] {
			t.Fatalf("draw %d repeated index %d after it was zeroed out", i, k)
		}
		seen[k] = true

		view, ok := dgt.Distr(g)
		if !ok {
			t.Fatalf("Distr: not a dgt generator")
		}
		pv, offset, _, _ := view.ProbVector()
		pv[k-offset] = 0
		view.SetProbVector(pv, offset)

		if i < 4 {
			if err := g.Reinit(); err != nil {
				t.Fatalf("Reinit after zeroing index %d: %v", k, err)
			}
		}
	}
	if len(seen) != 5 {
		t.Errorf("drew %d distinct indices, want 5", len(seen))
	}
}

func TestReinitPreservesID(t *testing.T) {
	g, err := dgt.New(fiveWay(), urng.NewMT19937(1), dgt.Params{})
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
	g, err := dgt.New(fiveWay(), urng.NewMT19937(1), dgt.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()
	clone := g.Clone()
	defer clone.Free()
	if clone.ID() == g.ID() {
		t.Errorf("clone shares ID %q with original", g.ID())
	}

	origDist, ok := dgt.Distr(g)
	if !ok {
		t.Fatalf("Distr: not a dgt generator")
	}
	cloneDist, ok := dgt.Distr(clone)
	if !ok {
		t.Fatalf("Distr: clone is not a dgt generator")
	}
	wantPV, _, _, _ := origDist.ProbVector()
	clonePV, _, _, _ := cloneDist.ProbVector()
	if diff := cmp.Diff(wantPV, clonePV); diff != "" {
		t.Errorf("clone's probability vector diverged at clone time (-want +got):\n%s", diff)
	}

	origDist.SetProbVector([]float64{9, 9, 9, 9, 9}, 0)
	gotPV, _, _, _ := cloneDist.ProbVector()
	if diff := cmp.Diff(clonePV, gotPV); diff != "" {
		t.Errorf("mutating the original's distribution changed the clone's snapshot (-before +after):\n%s", diff)
	}

	g.Free()
	if k := clone.SampleDiscr(); k < 0 || k > 4 {
		t.Errorf("clone.SampleDiscr after original freed = %d, want in [0,4]", k)
	}
}
