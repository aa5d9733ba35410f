// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dgt implements the Discrete Guide Table method (spec.md
// §4.4): indexed search over a probability vector via cumulative sums
// and a size-C guide table, giving O(1)-expected sampling with one
// uniform draw.
package dgt

// Params tunes a DGT setup (spec.md §4.4).
type Params struct {
	// Alpha is the relative guide-table-length factor (table size =
	// Alpha * n). Default 1.
	Alpha float64
}

func (p Params) withDefaults() Params {
	if p.Alpha <= 0 {
		p.Alpha = 1
	}
	return p
}
