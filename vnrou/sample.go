// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vnrou

import (
	"math"

	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// SampleVec implements unuran.VecSampler (spec.md §4.5 "Sample"): draw
// v ~ Uniform(0, vMax) and u_i ~ Uniform(uMin_i, uMax_i), map to
// x = u/v^r + c, and accept iff v^(rd+1) <= f(x), evaluated in log
// space. out must have length Dim(); SampleVec writes into it rather
// than allocating.
func (g *generator) SampleVec(stream urng.Stream, out []float64) {
	d := g.dist.Dim()
	b := g.b
	r := g.r
	logBound := r*float64(d) + 1

	x := out
	if len(x) != d {
		unuran.RecordFailure(g.id, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenInvalid,
			"vnrou: SampleVec given an output slice of length %d, want %d", len(x), d))
		return
	}

	attempts := 0
	for {
		attempts++
		v := stream.Next() * b.vMax
		for i := 0; i < d; i++ {
			u := b.uMin[i] + stream.Next()*(b.uMax[i]-b.uMin[i])
			x[i] = u/math.Pow(v, r) + b.center[i]
		}

		logF := logDensity(g.dist, x)
		if logBound*math.Log(v) <= logF {
			return
		}

		if g.p.MaxIterations > 0 && attempts >= g.p.MaxIterations {
			unuran.RecordFailure(g.id, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
				"vnrou: SampleVec exceeded its iteration cap of %d without an acceptance", g.p.MaxIterations))
			return
		}
	}
}
