// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/svkfem/ad"
)

// DispGrad computes the displacement gradient at integration point k
//  G_ab = ∂u_a/∂x_b = Σ_i ul[i*ndim+a] * g_i[b]   with   g_i = Grad_i[k] * Jinv[k]
func DispGrad[T ad.Scalar[T]](vals *ElemVals, k int, ul []T) (G [][]T) {
	ndim := vals.Ndim
	if len(ul) != vals.Ndof() {
		chk.Panic("element %d: local displacement has %d components; expected %d", vals.Eid, len(ul), vals.Ndof())
	}
	if k < 0 || k >= vals.Nip() {
		chk.Panic("element %d: ip %d is out of range [0,%d)", vals.Eid, k, vals.Nip())
	}
	G = newTensor[T](ndim)
	for i := range vals.Basis {
		g := vals.PhysGrad(i, k)
		for a := 0; a < ndim; a++ {
			u := ul[i*ndim+a]
			for b := 0; b < ndim; b++ {
				if g[b] == 0 {
					continue
				}
				G[a][b] = G[a][b].Add(u.Scale(g[b]))
			}
		}
	}
	return
}

// StrainTensor returns the symmetric strain corresponding to the displacement gradient G
//  linear:         ε = ½(G + Gᵀ)
//  Green-Lagrange: ε = ½(G + Gᵀ + Gᵀ G)
func StrainTensor[T ad.Scalar[T]](G [][]T, greenLagrange bool) (ε [][]T) {
	ndim := len(G)
	ε = newTensor[T](ndim)
	for a := 0; a < ndim; a++ {
		for b := a; b < ndim; b++ {
			e := G[a][b].Add(G[b][a])
			if greenLagrange {
				for c := 0; c < ndim; c++ {
					e = e.Add(G[c][a].Mul(G[c][b]))
				}
			}
			ε[a][b] = e.Scale(0.5)
			ε[b][a] = ε[a][b]
		}
	}
	return
}

// TestStrain returns the variation of the strain w.r.t the displacement of basis function j
// along direction d at integration point k. With δG = e_d ⊗ g_j:
//  linear:         δε = ½(δG + δGᵀ)
//  Green-Lagrange: δε = ½(δG + δGᵀ + δGᵀ G + Gᵀ δG)
func TestStrain[T ad.Scalar[T]](vals *ElemVals, j, k, d int, G [][]T, greenLagrange bool) (δε [][]T) {
	ndim := vals.Ndim
	if j < 0 || j >= vals.Nbasis() {
		chk.Panic("element %d: test function %d is out of range [0,%d)", vals.Eid, j, vals.Nbasis())
	}
	if d < 0 || d >= ndim {
		chk.Panic("element %d: direction %d is out of range [0,%d)", vals.Eid, d, ndim)
	}
	if len(G) != ndim {
		chk.Panic("element %d: displacement gradient is %d×%d; expected ndim=%d", vals.Eid, len(G), len(G), ndim)
	}
	g := vals.PhysGrad(j, k)
	δε = newTensor[T](ndim)
	var zero T
	for a := 0; a < ndim; a++ {
		for b := a; b < ndim; b++ {
			var lin float64
			if a == d {
				lin += g[b]
			}
			if b == d {
				lin += g[a]
			}
			e := zero.Const(lin)
			if greenLagrange {
				e = e.Add(G[d][b].Scale(g[a])).Add(G[d][a].Scale(g[b]))
			}
			δε[a][b] = e.Scale(0.5)
			δε[b][a] = δε[a][b]
		}
	}
	return
}

// newTensor allocates a ndim×ndim tensor filled with zero values
func newTensor[T any](ndim int) (t [][]T) {
	t = make([][]T, ndim)
	for i := 0; i < ndim; i++ {
		t[i] = make([]T, ndim)
	}
	return
}
