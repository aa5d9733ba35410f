// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urng

// Fixed is a deterministic Stream that replays a fixed sequence of
// uniform variates, wrapping around when exhausted. It exists for
// golden-file tests (spec.md §8 Property Law 1) where the exact draws
// consumed by a method must be known in advance.
type Fixed struct {
	values []float64
	pos    int
	start  int

	substream  int
	antithetic bool
}

// NewFixed returns a Fixed stream that replays values in order,
// wrapping around to the start once exhausted.
func NewFixed(values []float64) *Fixed {
	cp := make([]float64, len(values))
	copy(cp, values)
	return &Fixed{values: cp}
}

// Next returns the next value in the fixed sequence.
func (f *Fixed) Next() float64 {
	if len(f.values) == 0 {
		return 0.5
	}
	v := f.values[f.pos%len(f.values)]
	f.pos++
	if f.antithetic {
		return 1 - v
	}
	return v
}

// Reset rewinds to the start of the sequence.
func (f *Fixed) Reset() {
	f.substream = 0
	f.start = 0
	f.pos = 0
}

// NextSubstream advances the logical start position by one, so a
// subsequent ResetSubstream begins one value further along; this keeps
// substreams of a Fixed stream disjoint-by-convention for tests that
// need it.
func (f *Fixed) NextSubstream() {
	f.substream++
	if len(f.values) > 0 {
		f.start = f.substream % len(f.values)
	}
	f.pos = f.start
}

// ResetSubstream rewinds to the start of the current substream.
func (f *Fixed) ResetSubstream() {
	f.pos = f.start
}

// SetAntithetic toggles antithetic variate generation.
func (f *Fixed) SetAntithetic(on bool) {
	f.antithetic = on
}

// Clone returns an independent copy of the stream.
func (f *Fixed) Clone() Stream {
	c := *f
	c.values = make([]float64, len(f.values))
	copy(c.values, f.values)
	return &c
}
