// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

// buildGuide returns a table of size max(1, ⌊guideFactor*len(intervals)⌋)
// mapping ⌊size*u⌋ to the index of an interval covering u (spec.md
// §4.3 "a guide table of size C indexes the interval list by ⌊C·u⌋").
func buildGuide(intervals []*interval, guideFactor float64) []int {
	size := int(guideFactor * float64(len(intervals)))
	if size < 1 {
		size = 1
	}
	guide := make([]int, size)
	j := 0
	for i := 0; i < size; i++ {
		u := (float64(i) + 0.5) / float64(size)
		for j < len(intervals)-1 && intervals[j].ur < u {
			j++
		}
		guide[i] = j
	}
	return guide
}

// locate returns the index of the interval covering u.
func locate(intervals []*interval, guide []int, u float64) int {
	i := int(u * float64(len(guide)))
	if i < 0 {
		i = 0
	}
	if i >= len(guide) {
		i = len(guide) - 1
	}
	idx := guide[i]
	for idx < len(intervals)-1 && intervals[idx].ur < u {
		idx++
	}
	for idx > 0 && intervals[idx-1].ur >= u {
		idx--
	}
	return idx
}
