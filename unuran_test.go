// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran_test

import (
	"math"
	"testing"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// stubMethod satisfies unuran.Method and nothing else: no ContSampler,
// DiscrSampler, VecSampler, or the package-private matrSampler. It
// exercises the façade's arity-mismatch paths directly, without
// needing a real method package wired up the wrong way.
type stubMethod struct {
	reinitErr error
	freed     int
}

func (s *stubMethod) Reinit() error { return s.reinitErr }

func (s *stubMethod) CloneMethod() unuran.Method {
	return &stubMethod{reinitErr: s.reinitErr}
}

func (s *stubMethod) Free() { s.freed++ }

func newStubGenerator(t *testing.T) *unuran.Generator {
	t.Helper()
	g, err := unuran.NewGenerator(distr.Cont, "stub", urng.NewMT19937(1), &stubMethod{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestNewGeneratorRejectsNilStream(t *testing.T) {
	if _, err := unuran.NewGenerator(distr.Cont, "stub", nil, &stubMethod{}); err == nil {
		t.Fatal("NewGenerator with a nil stream succeeded, want error")
	}
}

func TestNewGeneratorRejectsNilImpl(t *testing.T) {
	if _, err := unuran.NewGenerator(distr.Cont, "stub", urng.NewMT19937(1), nil); err == nil {
		t.Fatal("NewGenerator with a nil method implementation succeeded, want error")
	}
}

func TestSetStreamPanicsOnNilStream(t *testing.T) {
	g := newStubGenerator(t)
	defer g.Free()

	defer func() {
		if recover() == nil {
			t.Error("SetStream(nil) did not panic")
		}
	}()
	g.SetStream(nil)
}

// withErrorCapture installs an error handler recording every Info
// passed to it and returns a function to read the count back,
// restoring the previous handler when the test ends.
func withErrorCapture(t *testing.T) func() int {
	t.Helper()
	var n int
	unuran.SetErrorHandler(func(unuran.Info) { n++ })
	t.Cleanup(func() { unuran.SetErrorHandler(nil) })
	return func() int { return n }
}

func TestSampleContArityMismatch(t *testing.T) {
	count := withErrorCapture(t)
	g := newStubGenerator(t)
	defer g.Free()

	x := g.SampleCont()
	if !math.IsNaN(x) {
		t.Errorf("SampleCont on a non-ContSampler method = %v, want NaN", x)
	}
	if count() == 0 {
		t.Error("SampleCont on a non-ContSampler method recorded no error")
	}
	if err := unuran.LastError(); err == nil || err.Code != unuran.CodeGenInvalid {
		t.Errorf("LastError = %v, want CodeGenInvalid", err)
	}
}

func TestSampleDiscrArityMismatch(t *testing.T) {
	count := withErrorCapture(t)
	g := newStubGenerator(t)
	defer g.Free()

	k := g.SampleDiscr()
	if k != math.MinInt32 {
		t.Errorf("SampleDiscr on a non-DiscrSampler method = %d, want math.MinInt32", k)
	}
	if count() == 0 {
		t.Error("SampleDiscr on a non-DiscrSampler method recorded no error")
	}
	if err := unuran.LastError(); err == nil || err.Code != unuran.CodeGenInvalid {
		t.Errorf("LastError = %v, want CodeGenInvalid", err)
	}
}

func TestSampleVecArityMismatch(t *testing.T) {
	count := withErrorCapture(t)
	g := newStubGenerator(t)
	defer g.Free()

	out := make([]float64, 2)
	if err := g.SampleVec(out); err == nil {
		t.Error("SampleVec on a non-VecSampler method succeeded, want error")
	}
	if count() == 0 {
		t.Error("SampleVec on a non-VecSampler method recorded no error")
	}
	if err := unuran.LastError(); err == nil || err.Code != unuran.CodeGenInvalid {
		t.Errorf("LastError = %v, want CodeGenInvalid", err)
	}
}

func TestSampleMatrArityMismatch(t *testing.T) {
	count := withErrorCapture(t)
	g := newStubGenerator(t)
	defer g.Free()

	out := [][]float64{{0, 0}, {0, 0}}
	if err := g.SampleMatr(out); err == nil {
		t.Error("SampleMatr on a non-matrix-sampling method succeeded, want error")
	}
	if count() == 0 {
		t.Error("SampleMatr on a non-matrix-sampling method recorded no error")
	}
	if err := unuran.LastError(); err == nil || err.Code != unuran.CodeGenInvalid {
		t.Errorf("LastError = %v, want CodeGenInvalid", err)
	}
}

func TestSampleOperationsOnFreedGeneratorFail(t *testing.T) {
	count := withErrorCapture(t)
	g := newStubGenerator(t)
	g.Free()

	if x := g.SampleCont(); !math.IsNaN(x) {
		t.Errorf("SampleCont on a freed generator = %v, want NaN", x)
	}
	if k := g.SampleDiscr(); k != math.MinInt32 {
		t.Errorf("SampleDiscr on a freed generator = %d, want math.MinInt32", k)
	}
	if err := g.SampleVec(make([]float64, 1)); err == nil {
		t.Error("SampleVec on a freed generator succeeded, want error")
	}
	if err := g.SampleMatr([][]float64{{0}}); err == nil {
		t.Error("SampleMatr on a freed generator succeeded, want error")
	}
	if err := g.Reinit(); err == nil {
		t.Error("Reinit on a freed generator succeeded, want error")
	}
	if count() == 0 {
		t.Error("operations on a freed generator recorded no error")
	}
}

func TestFreeIsIdempotentAndNilSafe(t *testing.T) {
	g := newStubGenerator(t)
	g.Free()
	g.Free() // must not panic a second time

	var nilGen *unuran.Generator
	nilGen.Free() // must not panic on a nil receiver
}

func TestCloneOfFreedGeneratorIsNil(t *testing.T) {
	g := newStubGenerator(t)
	g.Free()
	if clone := g.Clone(); clone != nil {
		t.Errorf("Clone of a freed generator = %v, want nil", clone)
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	g := newStubGenerator(t)
	defer g.Free()

	clone := g.Clone()
	defer clone.Free()

	if clone.ID() == g.ID() {
		t.Errorf("clone shares ID %q with original", g.ID())
	}
	if clone.Family() != g.Family() {
		t.Errorf("clone.Family() = %v, want %v", clone.Family(), g.Family())
	}

	g.Free()
	if err := clone.Reinit(); err != nil {
		t.Errorf("clone.Reinit() after original freed: %v", err)
	}
}
