// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PolarStresses rotates the in-plane part of the Cartesian stress tensor σ at point x
// to the polar frame centred at the origin
//  σr  =  c²σxx + s²σyy + 2cs σxy
//  σθ  =  s²σxx + c²σyy − 2cs σxy
//  σrθ = cs(σyy − σxx) + (c² − s²) σxy
//  where c = x/r and s = y/r
func PolarStresses(x []float64, σ [][]float64) (r, sr, st, srt float64) {
	if len(x) < 2 || len(σ) < 2 || len(σ[0]) < 2 || len(σ[1]) < 2 {
		chk.Panic("polar stresses need at least 2 coordinates and a 2×2 tensor")
	}
	r = math.Hypot(x[0], x[1])
	if r == 0 {
		chk.Panic("polar stresses are undefined at the origin")
	}
	c, s := x[0]/r, x[1]/r
	sxx, syy, sxy := σ[0][0], σ[1][1], σ[0][1]
	sr = c*c*sxx + s*s*syy + 2*c*s*sxy
	st = s*s*sxx + c*c*syy - 2*c*s*sxy
	srt = c*s*(syy-sxx) + (c*c-s*s)*sxy
	return
}
