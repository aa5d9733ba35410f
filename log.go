// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran

import (
	"io"
	"log"
	"sync"
)

// debugLog is the single caller-replaceable text stream of spec.md §6.
// It wraps the standard library's log.Logger, which already provides
// exactly the shape the spec asks for: a replaceable io.Writer
// destination and a per-entry prefix, with no third-party logging
// framework pulled in for what is, in this corpus, always handled with
// plain text written to an io.Writer (gonum itself never logs at all).
var debugLog = struct {
	mu     sync.Mutex
	logger *log.Logger
}{
	logger: log.New(io.Discard, "", 0),
}

// SetDebugStream installs w as the destination for generator debug
// output. Passing nil discards all debug output. Not safe to call
// concurrently with Init/Sample* on any generator.
func SetDebugStream(w io.Writer) {
	debugLog.mu.Lock()
	defer debugLog.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	debugLog.logger = log.New(w, "", 0)
}

func logf(format string, args ...interface{}) {
	debugLog.mu.Lock()
	defer debugLog.mu.Unlock()
	debugLog.logger.Printf(format, args...)
}

// Logf writes a formatted line to the debug stream, for use by method
// packages reporting their final auxiliary-table summary (spec.md §6:
// "interval count, hat area, acceptance probability, u-error
// achieved").
func Logf(format string, args ...interface{}) {
	logf(format, args...)
}
