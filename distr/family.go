// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distr implements the distribution object layer (spec.md §3.1,
// layer L3): a tagged, extensible description of a target distribution
// that methods consume at setup time. Each family (Cont, Discr, Cvec,
// Cemp/Cvemp, Matr) carries a set of optional attributes; a method
// decides whether it can handle a given object by checking which
// attributes are present, never by inspecting the family tag alone.
//
// Setters panic on invariant violations that are always programmer
// error (mismatched dimensions, a nil required callback, a negative
// probability) the way gonum's distuv and distmv constructors do.
// Failures that depend on runtime values the caller cannot be expected
// to check in advance (an indefinite covariance matrix) are reported
// through a returned bool, mirroring mat.Cholesky.Factorize.
package distr

// Family selects which of the five distribution shapes a Distribution
// describes.
type Family int

const (
	Cont Family = iota
	Discr
	Cvec
	Cemp
	Cvemp
	Matr
)

func (f Family) String() string {
	switch f {
	case Cont:
		return "CONT"
	case Discr:
		return "DISCR"
	case Cvec:
		return "CVEC"
	case Cemp:
		return "CEMP"
	case Cvemp:
		return "CVEMP"
	case Matr:
		return "MATR"
	default:
		return "UNKNOWN"
	}
}

// Distribution is implemented by every family's object type. Methods
// type-switch or type-assert to the concrete family they support.
type Distribution interface {
	Family() Family
	// Clone returns an independent snapshot of the distribution, the
	// capture a generator takes at Init time (spec.md §3.1: "a
	// distribution object is reference-immutable from the method's
	// point of view").
	Clone() Distribution
}
