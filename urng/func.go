// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urng

// Func adapts an externally supplied callback into a Stream. It is
// the escape hatch spec.md §3.4 and §6 call for ("an externally
// injected callback"); Reset/substream/antithetic operations are
// delegated to optional hooks and are no-ops when the hook is nil.
type Func struct {
	NextFunc          func() float64
	ResetFunc         func()
	NextSubstreamFunc func()
	ResetSubstreamFunc func()

	antithetic bool
}

// NewFunc wraps next as a Stream with no-op Reset/substream support.
func NewFunc(next func() float64) *Func {
	return &Func{NextFunc: next}
}

// Next returns the next value from the callback, applying the
// antithetic transform if enabled.
func (f *Func) Next() float64 {
	v := f.NextFunc()
	if f.antithetic {
		return 1 - v
	}
	return v
}

// Reset invokes the optional reset hook.
func (f *Func) Reset() {
	if f.ResetFunc != nil {
		f.ResetFunc()
	}
}

// NextSubstream invokes the optional substream-advance hook.
func (f *Func) NextSubstream() {
	if f.NextSubstreamFunc != nil {
		f.NextSubstreamFunc()
	}
}

// ResetSubstream invokes the optional substream-reset hook.
func (f *Func) ResetSubstream() {
	if f.ResetSubstreamFunc != nil {
		f.ResetSubstreamFunc()
	}
}

// SetAntithetic toggles antithetic variate generation.
func (f *Func) SetAntithetic(on bool) {
	f.antithetic = on
}

// Clone returns a shallow copy sharing the same callbacks; callers
// supplying a Func stream are responsible for making their callbacks
// safe to share if they clone a generator that uses one.
func (f *Func) Clone() Stream {
	c := *f
	return &c
}
