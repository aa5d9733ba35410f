// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package urng provides the pluggable uniform random number stream
// (spec.md §3.4, layer L2) that every method consumes to turn its
// auxiliary tables into variates. Any type implementing Stream is an
// acceptable driving source: a Mersenne Twister, a combined
// multiple-recursive generator, an externally supplied callback, or a
// fixed deterministic sequence for tests.
package urng

// Stream produces uniform variates in the open interval (0,1) and
// supports the substream and antithetic operations spec.md §3.4
// requires. Implementations need not be safe for concurrent use; a
// single generator is documented as non-reentrant (spec.md §5) and
// callers needing parallelism Clone the stream along with the
// generator.
type Stream interface {
	// Next returns the next uniform variate in (0,1).
	Next() float64

	// Reset rewinds the stream to its initial state.
	Reset()

	// NextSubstream advances to the next independent substream, if
	// the underlying generator supports substreams; otherwise it is a
	// no-op that still changes the sequence (e.g. by reseeding).
	NextSubstream()

	// ResetSubstream rewinds to the start of the current substream.
	ResetSubstream()

	// SetAntithetic toggles antithetic variate generation: when on,
	// Next returns 1-u for the u the underlying generator would
	// otherwise have produced.
	SetAntithetic(on bool)

	// Clone returns an independent copy of the stream, positioned at
	// the same point in its sequence.
	Clone() Stream
}
