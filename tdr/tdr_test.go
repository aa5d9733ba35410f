// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/tdr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

func exponential() *distr.ContDist {
	d := distr.NewCont("exponential")
	d.SetPDF(func(x float64) float64 { return math.Exp(-x) })
	d.SetDPDF(func(x float64) float64 { return -math.Exp(-x) })
	d.SetDomain(0, math.Inf(1))
	d.SetMode(0)
	return d
}

func standardNormal() *distr.ContDist {
	d := distr.NewCont("normal")
	d.SetPDF(func(x float64) float64 { return math.Exp(-0.5 * x * x) })
	d.SetDPDF(func(x float64) float64 { return -x * math.Exp(-0.5*x*x) })
	d.SetMode(0)
	return d
}

func TestNewRejectsNilDistribution(t *testing.T) {
	if _, err := tdr.New(nil, urng.NewMT19937(1), tdr.Params{}); err == nil {
		t.Fatal("New(nil, ...) succeeded, want error")
	}
}

func TestNewRequiresPDFAndDPDF(t *testing.T) {
	d := distr.NewCont("incomplete")
	if _, err := tdr.New(d, urng.NewMT19937(1), tdr.Params{}); err == nil {
		t.Fatal("New with no PDF/DPDF succeeded, want error")
	}
	d.SetPDF(func(x float64) float64 { return math.Exp(-x) })
	if _, err := tdr.New(d, urng.NewMT19937(1), tdr.Params{}); err == nil {
		t.Fatal("New with no DPDF succeeded, want error")
	}
}

func TestNewRejectsUnsupportedC(t *testing.T) {
	d := exponential()
	if _, err := tdr.New(d, urng.NewMT19937(1), tdr.Params{C: -2}); err == nil {
		t.Fatal("New with C=-2 succeeded, want error")
	}
}

func TestExponentialSamplesStayInDomain(t *testing.T) {
	g, err := tdr.New(exponential(), urng.NewMT19937(7), tdr.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	for i := 0; i < 2000; i++ {
		x := g.SampleCont()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("sample %d: got non-finite value %v", i, x)
		}
		if x < 0 {
			t.Fatalf("sample %d: got %v, want >= 0", i, x)
		}
	}
}

func TestNormalSamplesAcrossVariants(t *testing.T) {
	for _, v := range []tdr.Variant{tdr.GW, tdr.PS, tdr.IA} {
		v := v
		t.Run(v.String(), func(t *testing.T) {
			g, err := tdr.New(standardNormal(), urng.NewMT19937(11), tdr.Params{Variant: v})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer g.Free()

			var sum float64
			const n = 4000
			for i := 0; i < n; i++ {
				x := g.SampleCont()
				if math.IsNaN(x) || math.IsInf(x, 0) {
					t.Fatalf("sample %d: got non-finite value %v", i, x)
				}
				sum += x
			}
			if mean := sum / n; !floats.EqualWithinAbs(mean, 0, 0.2) {
				t.Errorf("sample mean = %v, want close to 0", mean)
			}
		})
	}
}

func TestVerifyModeDoesNotFlagExponential(t *testing.T) {
	var warnings int
	unuran.SetErrorHandler(func(unuran.Info) { warnings++ })
	defer unuran.SetErrorHandler(nil)

	g, err := tdr.New(exponential(), urng.NewMT19937(3), tdr.Params{Verify: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	for i := 0; i < 500; i++ {
		g.SampleCont()
	}
	if warnings != 0 {
		t.Errorf("got %d verification warnings sampling a log-concave density, want 0", warnings)
	}
}

func TestReinitRebuildsWithoutChangingIdentity(t *testing.T) {
	g, err := tdr.New(exponential(), urng.NewMT19937(5), tdr.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	id := g.ID()
	if err := g.Reinit(); err != nil {
		t.Fatalf("Reinit: %v", err)
	}
	if g.ID() != id {
		t.Errorf("Reinit changed generator ID from %q to %q", id, g.ID())
	}
	x := g.SampleCont()
	if math.IsNaN(x) || x < 0 {
		t.Errorf("SampleCont after Reinit = %v, want finite and >= 0", x)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := tdr.New(exponential(), urng.NewMT19937(9), tdr.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Free()

	clone := g.Clone()
	defer clone.Free()

	if clone.ID() == g.ID() {
		t.Errorf("clone shares ID %q with original", g.ID())
	}
	// The clone must keep sampling after the original is freed.
	g.Free()
	x := clone.SampleCont()
	if math.IsNaN(x) || x < 0 {
		t.Errorf("clone.SampleCont() after original freed = %v, want finite and >= 0", x)
	}
}
