// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou

import (
	"math"

	"github.com/unuran/unuran-sub011/distr"
)

// density evaluates dist's PDF at x, falling back to exp(logPDF) when
// only the log-density is available (spec.md §4.5 "Requires pdf (or
// logpdf)").
func density(dist *distr.CvecDist, x []float64) float64 {
	if v, ok := dist.PDF(x); ok {
		return v
	}
	if lp, ok := dist.LogPDF(x); ok {
		return math.Exp(lp)
	}
	return 0
}

// logDensity evaluates dist's log-density directly when available,
// falling back to math.Log of the plain density — used by the
// acceptance test so the comparison stays in log space for numerical
// stability (spec.md §4.5 "Sample": "accept iff ... or equivalent log
// form for numerical stability").
func logDensity(dist *distr.CvecDist, x []float64) float64 {
	if lp, ok := dist.LogPDF(x); ok {
		return lp
	}
	return math.Log(density(dist, x))
}
