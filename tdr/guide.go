// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

// buildGuide returns an O(1) lookup table of size
// max(1, ⌊guideFactor*len(intervals)⌋): entry i gives the index of
// an interval whose cumulative hat area range covers the point
// (i+0.5)/len(table) of the total area, so sampling walks linearly
// over a narrow neighbourhood (or, typically, reads the guide directly)
// instead of scanning every interval (spec.md GLOSSARY "Guide table").
func buildGuide(intervals []*interval, totalArea float64, guideFactor float64) []int {
	size := int(guideFactor * float64(len(intervals)))
	if size < 1 {
		size = 1
	}
	guide := make([]int, size)
	j := 0
	for i := 0; i < size; i++ {
		target := totalArea * (float64(i) + 0.5) / float64(size)
		for j < len(intervals)-1 && intervals[j].cumArea < target {
			j++
		}
		guide[i] = j
	}
	return guide
}

// locate returns the interval containing the point whose hat-area
// coordinate (measured from 0) is area, using the guide table to seed
// a linear search.
func locate(intervals []*interval, guide []int, totalArea, area float64) int {
	i := int(area / totalArea * float64(len(guide)))
	if i < 0 {
		i = 0
	}
	if i >= len(guide) {
		i = len(guide) - 1
	}
	idx := guide[i]
	for idx < len(intervals)-1 && intervals[idx].cumArea < area {
		idx++
	}
	for idx > 0 && intervals[idx-1].cumArea >= area {
		idx--
	}
	return idx
}
