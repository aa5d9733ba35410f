// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran

import (
	"math"
	"sync/atomic"

	"github.com/unuran/unuran-sub011/distr"
	"github.com/unuran/unuran-sub011/urng"
)

var methodSeq uint64

// NextID returns the next debug identifier for a method named name,
// in the "<method>.<seq>" form spec.md §6 specifies.
func NextID(name string) string {
	n := atomic.AddUint64(&methodSeq, 1)
	return name + "." + itoa(n)
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Generator is the product of a method's setup (spec.md §3.3 / §4.1,
// layer L5): an opaque handle uniform across every method, exposing
// only the family it serves, its uniform stream, its debug
// identifier, and the sampling operations appropriate to that family.
type Generator struct {
	id     string
	family distr.Family
	stream urng.Stream
	impl   Method
	freed  bool
}

// NewGenerator assembles a Generator around a freshly set-up method
// implementation. It is called by method packages (tdr, pinv, dgt,
// vnrou) once their own setup has succeeded; callers of this package
// never construct a Generator directly. stream must not be nil — "the
// spec explicitly forbids null streams at init" (spec.md §9 open
// questions).
func NewGenerator(family distr.Family, methodName string, stream urng.Stream, impl Method) (*Generator, error) {
	if stream == nil {
		return nil, newError(SubjectGenerator, CodeGenInvalid, "%s: Init given a nil uniform stream", methodName)
	}
	if impl == nil {
		return nil, newError(SubjectGenerator, CodeGenInvalid, "%s: Init given a nil method implementation", methodName)
	}
	id := NextID(methodName)
	logf("%s: generator created, family=%s", id, family)
	return &Generator{id: id, family: family, stream: stream, impl: impl}, nil
}

// Family returns the distribution family this generator samples from.
func (g *Generator) Family() distr.Family { return g.family }

// ID returns the generator's debug identifier.
func (g *Generator) ID() string { return g.id }

// Stream returns the uniform stream currently bound to the generator.
func (g *Generator) Stream() urng.Stream { return g.stream }

// Method returns the method-specific implementation backing this
// generator, for the "unwrap-mutate-reinit" pathway (spec.md §5): a
// method package's own accessor type-asserts this back to its concrete
// type to reach the captured distribution snapshot for in-place
// mutation, then the caller calls Reinit to propagate the change.
func (g *Generator) Method() Method { return g.impl }

// SetStream rebinds the generator to a different uniform stream in
// constant time; method state is untouched (spec.md §3: "changing the
// stream is a constant-time operation and does not touch method
// state").
func (g *Generator) SetStream(s urng.Stream) {
	if s == nil {
		panic("unuran: SetStream given a nil stream")
	}
	g.stream = s
}

// SampleCont draws a continuous variate. If the generator's method
// does not implement continuous sampling, it records a CodeGenInvalid
// error and returns NaN, matching spec.md §4.1: "Calling the wrong
// arity is an error reported by error code, never undefined
// behaviour."
func (g *Generator) SampleCont() float64 {
	if g.freed {
		g.fail(CodeGenInvalid, "SampleCont called on a freed generator")
		return math.NaN()
	}
	s, ok := g.impl.(ContSampler)
	if !ok {
		g.fail(CodeGenInvalid, "SampleCont called on a generator that does not sample CONT")
		return math.NaN()
	}
	return s.SampleCont(g.stream)
}

// SampleDiscr draws a discrete variate, returning math.MinInt32 and
// recording an error on an arity mismatch.
func (g *Generator) SampleDiscr() int {
	if g.freed {
		g.fail(CodeGenInvalid, "SampleDiscr called on a freed generator")
		return math.MinInt32
	}
	s, ok := g.impl.(DiscrSampler)
	if !ok {
		g.fail(CodeGenInvalid, "SampleDiscr called on a generator that does not sample DISCR")
		return math.MinInt32
	}
	return s.SampleDiscr(g.stream)
}

// SampleVec draws a multivariate variate into out, recording an error
// on an arity mismatch and leaving out unmodified.
func (g *Generator) SampleVec(out []float64) error {
	if g.freed {
		return g.failErr(CodeGenInvalid, "SampleVec called on a freed generator")
	}
	s, ok := g.impl.(VecSampler)
	if !ok {
		return g.failErr(CodeGenInvalid, "SampleVec called on a generator that does not sample CVEC")
	}
	s.SampleVec(g.stream, out)
	return nil
}

// SampleMatr draws a random matrix into out, recording an error on an
// arity mismatch. No method in this core implements matrix sampling
// yet (spec.md §3.1 MATR is data-model-only); this always fails with
// CodeGenInvalid until one does.
func (g *Generator) SampleMatr(out [][]float64) error {
	type matrSampler interface {
		SampleMatr(stream urng.Stream, out [][]float64)
	}
	if g.freed {
		return g.failErr(CodeGenInvalid, "SampleMatr called on a freed generator")
	}
	s, ok := g.impl.(matrSampler)
	if !ok {
		return g.failErr(CodeGenInvalid, "SampleMatr called on a generator that does not sample MATR")
	}
	s.SampleMatr(g.stream, out)
	return nil
}

// Reinit re-runs the method's setup against its current distribution
// snapshot, preserving the generator's identity and stream binding
// (spec.md §4.1).
func (g *Generator) Reinit() error {
	if g.freed {
		return g.failErr(CodeGenInvalid, "Reinit called on a freed generator")
	}
	if err := g.impl.Reinit(); err != nil {
		recordError(g.id, SeverityError, asError(err))
		return err
	}
	logf("%s: reinit complete", g.id)
	return nil
}

// Clone returns a deep copy of the generator, including all auxiliary
// tables; the uniform stream is shared by reference unless the caller
// substitutes one with SetStream afterwards (spec.md §4.1).
func (g *Generator) Clone() *Generator {
	if g.freed {
		return nil
	}
	return &Generator{
		id:     g.id + ".clone",
		family: g.family,
		stream: g.stream,
		impl:   g.impl.CloneMethod(),
	}
}

// Free releases all memory owned by the generator. Idempotent,
// including against a nil receiver.
func (g *Generator) Free() {
	if g == nil || g.freed {
		return
	}
	g.impl.Free()
	g.impl = nil
	g.freed = true
	logf("%s: freed", g.id)
}

func (g *Generator) fail(code Code, reason string) {
	recordError(g.id, SeverityError, newError(SubjectGenerator, code, reason))
}

func (g *Generator) failErr(code Code, reason string) error {
	err := newError(SubjectGenerator, code, reason)
	recordError(g.id, SeverityError, err)
	return err
}

func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return newError(SubjectInternal, CodeShouldNotHappen, err.Error())
}
