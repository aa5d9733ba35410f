// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran

import "github.com/unuran/unuran-sub011/urng"

// Method is implemented by every per-algorithm generator (spec.md §4,
// layer L4) and is the capability the façade (layer L5, Generator)
// operates on without knowing which algorithm produced it. Packages
// tdr, pinv, dgt, and vnrou each provide a concrete type satisfying
// Method plus exactly one of ContSampler, DiscrSampler, or VecSampler,
// matching the family they serve.
type Method interface {
	// Reinit re-runs the method's setup against its captured
	// distribution snapshot, preserving all other generator state.
	Reinit() error

	// CloneMethod returns a deep copy of the method's auxiliary
	// tables and captured distribution snapshot.
	CloneMethod() Method

	// Free releases all memory owned by the method. Idempotent.
	Free()
}

// ContSampler is implemented by continuous-univariate methods (TDR,
// PINV).
type ContSampler interface {
	SampleCont(stream urng.Stream) float64
}

// DiscrSampler is implemented by discrete-univariate methods (DGT).
type DiscrSampler interface {
	SampleDiscr(stream urng.Stream) int
}

// VecSampler is implemented by multivariate methods (VNROU). out must
// have length equal to the distribution's dimension; SampleVec writes
// into it directly rather than allocating, matching
// gonum.org/v1/gonum/stat/distmv.Normal.Rand's in-place convention.
type VecSampler interface {
	SampleVec(stream urng.Stream, out []float64)
}
