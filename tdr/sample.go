// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdr

import (
	"github.com/unuran/unuran-sub011/internal/fp"
	"github.com/unuran/unuran-sub011/unuran"
	"github.com/unuran/unuran-sub011/urng"
)

// SampleCont draws one variate by rejection from the hat, implementing
// the three variants' differing use of the squeeze (spec.md §4.2):
//
//   - GW skips the squeeze test and accepts or rejects every candidate
//     directly against the true density.
//   - PS and IA test a candidate against the secant squeeze first and
//     only fall back to evaluating the true density when the squeeze
//     test is inconclusive; PS additionally shrinks the squeeze by
//     Params.PSFactor so it stays a valid minorant with a safety
//     margin, while IA uses the unscaled squeeze.
func (g *generator) SampleCont(stream urng.Stream) float64 {
	for {
		area := stream.Next() * g.totalArea
		idx := locate(g.intervals, g.guide, g.totalArea, area)
		iv := g.intervals[idx]
		areaStart := iv.cumArea - iv.hatArea()

		x := iv.invertHat(g.p.C, area-areaStart)
		hatVal := iv.hatAtC(g.p.C, x)
		if hatVal <= 0 || !fp.Finite(hatVal) {
			unuran.RecordFailure(g.id, unuran.NewError(unuran.SubjectNumeric, unuran.CodeNaN, "tdr: SampleCont: non-finite hat value at x=%v", x))
			continue
		}

		w := stream.Next() * hatVal

		if g.p.Variant != GW {
			sq := iv.squeezeAt(x)
			if g.p.Variant == PS {
				sq *= g.p.PSFactor
			}
			if w <= sq {
				if g.p.Verify {
					g.verifyAt(x, hatVal, sq)
				}
				return x
			}
		}

		f, ok := g.dist.PDF(x)
		if !ok || !fp.Finite(f) {
			unuran.RecordFailure(g.id, unuran.NewError(unuran.SubjectDistr, unuran.CodeDistrInvalid, "tdr: SampleCont: PDF(%v) is invalid", x))
			continue
		}
		if g.p.Verify && f > hatVal*(1+fp.SqrtEpsilon) {
			unuran.RecordWarning(g.id, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition, "tdr: SampleCont: density exceeds hat at x=%v", x))
		}
		if w <= f {
			return x
		}
	}
}

// verifyAt checks the hat/squeeze domination inequality squeeze <= pdf
// <= hat at x and records a warning if it is violated, for
// Params.Verify (spec.md §7 verification mode).
func (g *generator) verifyAt(x, hatVal, sq float64) {
	f, ok := g.dist.PDF(x)
	if !ok || !fp.Finite(f) {
		return
	}
	if f > hatVal*(1+fp.SqrtEpsilon) || f < sq*(1-fp.SqrtEpsilon) {
		unuran.RecordWarning(g.id, unuran.NewError(unuran.SubjectGenerator, unuran.CodeGenCondition,
			"tdr: SampleCont: hat/squeeze domination violated at x=%v (squeeze=%v pdf=%v hat=%v)", x, sq, f, hatVal))
	}
}
