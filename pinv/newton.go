// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// chebyshevNodes returns g+1 Chebyshev-Lobatto abscissae on [lo,hi],
// including both endpoints, the "standard node set (Chebyshev-related)"
// spec.md §4.3 calls for.
func chebyshevNodes(lo, hi float64, g int) []float64 {
	nodes := make([]float64, g+1)
	for j := 0; j <= g; j++ {
		t := 0.5 * (1 - math.Cos(math.Pi*float64(j)/float64(g)))
		nodes[j] = lo + t*(hi-lo)
	}
	return nodes
}

// dividedDifferences returns the Newton divided-difference coefficients
// z_0,...,z_g for the interpolant through (u_i, x_i).
func dividedDifferences(u, x []float64) []float64 {
	n := len(u)
	z := append([]float64(nil), x...)
	col := append([]float64(nil), x...)
	for k := 1; k < n; k++ {
		next := make([]float64, n-k)
		for i := 0; i < n-k; i++ {
			next[i] = (col[i+1] - col[i]) / (u[i+k] - u[i])
		}
		z[k] = next[0]
		col = next
	}
	return z
}

// hornerNewton evaluates the Newton-form polynomial with coefficients z
// and nodes u at the point t.
func hornerNewton(z, u []float64, t float64) float64 {
	n := len(z)
	v := z[n-1]
	for k := n - 2; k >= 0; k-- {
		v = z[k] + (t-u[k])*v
	}
	return v
}
