// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgt

// buildGuide returns a size-C table (C = max(1, ⌊alpha*n⌋)) where entry i
// is the smallest prefix-sum index whose cumulative value has reached
// total*i/C — a safe (never-too-far-ahead) starting point for the
// forward scan SampleDiscr performs (spec.md §4.4).
func buildGuide(cum []float64, total float64, alpha float64) []int {
	n := len(cum)
	size := int(alpha * float64(n))
	if size < 1 {
		size = 1
	}
	guide := make([]int, size)
	j := 0
	for i := 0; i < size; i++ {
		target := total * float64(i) / float64(size)
		for j < n-1 && cum[j] < target {
			j++
		}
		guide[i] = j
	}
	return guide
}
