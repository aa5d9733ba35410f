// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urng

// MT19937 is a Mersenne Twister uniform stream. It is implemented
// directly rather than wrapping math/rand.Rand because spec.md's
// golden-file scenarios (S1) name the MT19937 algorithm specifically;
// math/rand's default source is a different, Go-version-dependent
// generator and would not reproduce the same sequence across Go
// releases. No retrieved example repository vendors an MT19937
// implementation, so this one is hand-rolled from the standard
// Matsumoto–Nishimura recurrence; everything downstream of Next
// (the Stream interface, substreams, antithetic variates, Clone)
// follows the same contract gonum's distuv/distmv types expect from a
// *rand.Rand-shaped source.
type MT19937 struct {
	seed  uint64
	state [624]uint32
	index int

	substream  uint64
	antithetic bool
}

const (
	mtN          = 624
	mtM          = 397
	mtMatrixA    = 0x9908b0df
	mtUpperMask  = 0x80000000
	mtLowerMask  = 0x7fffffff
)

// NewMT19937 returns an MT19937 stream seeded with seed.
func NewMT19937(seed uint64) *MT19937 {
	m := &MT19937{seed: seed}
	m.reseed(seed)
	return m
}

func (m *MT19937) reseed(seed uint64) {
	m.state[0] = uint32(seed)
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = uint32(1812433253)*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

func (m *MT19937) generate() {
	for i := 0; i < mtN; i++ {
		y := (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtN] & mtLowerMask)
		next := m.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.state[i] = next
	}
	m.index = 0
}

func (m *MT19937) nextUint32() uint32 {
	if m.index >= mtN {
		m.generate()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Next returns the next uniform variate in (0,1).
func (m *MT19937) Next() float64 {
	// 53-bit resolution, endpoints excluded.
	hi := m.nextUint32() >> 5
	lo := m.nextUint32() >> 6
	u := (float64(hi)*67108864.0 + float64(lo)) / 9007199254740992.0
	if u <= 0 {
		u = clampEpsilon
	}
	if u >= 1 {
		u = 1 - clampEpsilon
	}
	if m.antithetic {
		return 1 - u
	}
	return u
}

// clampEpsilon keeps Next strictly inside (0,1) as the contract
// requires, without perturbing the bulk of the distribution.
const clampEpsilon = 1e-16

// Reset rewinds the stream to its initial seed.
func (m *MT19937) Reset() {
	m.substream = 0
	m.reseed(m.seed)
}

// NextSubstream deterministically advances to a fresh substream by
// reseeding from a counter mixed into the original seed, giving
// disjoint, reproducible sequences without requiring the jump-ahead
// polynomials a full RngStreams implementation would use.
func (m *MT19937) NextSubstream() {
	m.substream++
	mixed := m.seed ^ (m.substream * 0x9e3779b97f4a7c15)
	m.reseed(mixed)
}

// ResetSubstream rewinds to the start of the current substream.
func (m *MT19937) ResetSubstream() {
	mixed := m.seed ^ (m.substream * 0x9e3779b97f4a7c15)
	m.reseed(mixed)
}

// SetAntithetic toggles antithetic variate generation.
func (m *MT19937) SetAntithetic(on bool) {
	m.antithetic = on
}

// Clone returns an independent copy positioned at the same point in
// the sequence.
func (m *MT19937) Clone() Stream {
	c := *m
	return &c
}
