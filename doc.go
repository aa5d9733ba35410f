// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unuran generates non-uniform pseudo-random variates from an
// essentially arbitrary user-specified distribution.
//
// A caller builds a distribution object from package distr describing
// whatever is known about the target (a density, a CDF, a probability
// vector, a mode, a domain, ...), hands it to one of the universal
// method packages (tdr, pinv, dgt, vnrou) to run that method's setup,
// and receives a *Generator back. Sampling from the Generator is then
// a cheap, allocation-free operation driven by a package urng uniform
// stream.
//
//	g, err := tdr.New(dist, urng.NewMT19937(1), tdr.Params{})
//	if err != nil {
//		...
//	}
//	defer g.Free()
//	x := g.SampleCont()
//
// The package is organised the way spec.md §2 lays out the system:
// package distr is the distribution object layer (L3), package urng is
// the uniform stream abstraction (L2), this package is the generator
// façade (L5) plus the shared error taxonomy of §7 and the debug log
// of §6, and the method packages are layer L4. Package internal/fp
// holds the floating-point predicates layer L1 asks for.
package unuran
