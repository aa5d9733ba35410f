// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urng

import "sync"

var (
	defaultMu     sync.Mutex
	defaultStream Stream = NewMT19937(1)
)

// Default returns the process-wide default uniform stream. Method
// constructors do not fall back to it: a caller that wants it passes
// it explicitly. It is global state in the sense spec.md §5 describes:
// established once at startup and not safe to mutate concurrently with
// sampling.
func Default() Stream {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultStream
}

// SetDefault replaces the process-wide default uniform stream.
func SetDefault(s Stream) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if s == nil {
		panic("urng: SetDefault given a nil stream")
	}
	defaultStream = s
}
