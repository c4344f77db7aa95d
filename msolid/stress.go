// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/svkfem/ad"
)

// VoigtPairs returns the tensor indices (i,j) of each Voigt component
func VoigtPairs(ndim int) [][2]int {
	switch ndim {
	case 2:
		return [][2]int{{0, 0}, {1, 1}, {0, 1}}
	case 3:
		return [][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}
	}
	chk.Panic("ndim must be 2 or 3; %d is invalid", ndim)
	return nil
}

// VoigtStrain packs the symmetric strain tensor ε into Voigt form with engineering shear
// components; e.g. γxy = 2 εxy
func VoigtStrain[T ad.Scalar[T]](ε [][]T) (v []T) {
	pairs := VoigtPairs(len(ε))
	v = make([]T, len(pairs))
	for a, p := range pairs {
		checkRow(ε, p[0])
		if p[0] == p[1] {
			v[a] = ε[p[0]][p[1]]
		} else {
			v[a] = ε[p[0]][p[1]].Scale(2)
		}
	}
	return
}

// StressFromVoigt computes σ_a = Σ_b C(a,b) ε_b and returns σ as a symmetric tensor
func StressFromVoigt[T ad.Scalar[T]](C *ElastTensor, εv []T) (σ [][]T) {
	nv := C.Nvoigt()
	if len(εv) != nv {
		chk.Panic("Voigt strain has %d components; the elasticity tensor requires %d", len(εv), nv)
	}
	ndim := C.Ndim()
	σ = make([][]T, ndim)
	for i := 0; i < ndim; i++ {
		σ[i] = make([]T, ndim)
	}
	for a, p := range VoigtPairs(ndim) {
		var s T
		for b := 0; b < nv; b++ {
			c := C.Get(a, b)
			if c == 0 {
				continue
			}
			s = s.Add(εv[b].Scale(c))
		}
		σ[p[0]][p[1]] = s
		σ[p[1]][p[0]] = s
	}
	return
}

// StressFromStrain returns σ = C : ε
func StressFromStrain[T ad.Scalar[T]](C *ElastTensor, ε [][]T) [][]T {
	if len(ε) != C.Ndim() {
		chk.Panic("strain tensor is %d×%d; the elasticity tensor requires ndim=%d", len(ε), len(ε), C.Ndim())
	}
	return StressFromVoigt(C, VoigtStrain(ε))
}

// Contract returns σ:ε = tr(σ·ε) for symmetric σ and ε
func Contract[T ad.Scalar[T]](σ, ε [][]T) (res T) {
	for i := range σ {
		for j := range σ[i] {
			res = res.Add(σ[i][j].Mul(ε[j][i]))
		}
	}
	return
}

// VonMises returns the von Mises equivalent stress
//  2D: sqrt(½(σ11-σ22)² + 3σ12²)
//  3D: adds ½(σ33-σ22)² + 3σ23² + ½(σ33-σ11)² + 3σ13²
//  Note: the absolute value is taken before the square root to absorb round-off
func VonMises(σ [][]float64) float64 {
	ndim := len(σ)
	checkRow(σ, ndim-1)
	d01 := σ[0][0] - σ[1][1]
	v := 0.5*d01*d01 + 3*σ[0][1]*σ[0][1]
	if ndim == 3 {
		d21 := σ[2][2] - σ[1][1]
		d20 := σ[2][2] - σ[0][0]
		v += 0.5*d21*d21 + 3*σ[1][2]*σ[1][2]
		v += 0.5*d20*d20 + 3*σ[0][2]*σ[0][2]
	}
	return math.Sqrt(math.Abs(v))
}

func checkRow[T any](a [][]T, i int) {
	n := len(a)
	if n != 2 && n != 3 {
		chk.Panic("tensor must be 2×2 or 3×3; it has %d rows", n)
	}
	if len(a[i]) != n {
		chk.Panic("tensor is not square: row %d has %d columns; expected %d", i, len(a[i]), n)
	}
}
