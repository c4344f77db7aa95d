// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/svkfem/ad"
	"github.com/cpmech/svkfem/msolid"
)

// UniformGrad implements the homogeneous deformation u = H x
type UniformGrad struct {
	H [][]float64 // [ndim][ndim] displacement gradient
}

// Disp returns the displacement at x
func (o UniformGrad) Disp(x []float64) (u []float64) {
	ndim := len(o.H)
	u = make([]float64, ndim)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			u[i] += o.H[i][j] * x[j]
		}
	}
	return
}

// Strain returns the (uniform) strain tensor
//  linear:         ε = ½(H + Hᵀ)
//  Green-Lagrange: ε = ½(H + Hᵀ + Hᵀ H)
func (o UniformGrad) Strain(greenLagrange bool) (ε [][]float64) {
	ndim := len(o.H)
	ε = make([][]float64, ndim)
	for i := 0; i < ndim; i++ {
		ε[i] = make([]float64, ndim)
		for j := 0; j < ndim; j++ {
			ε[i][j] = 0.5 * (o.H[i][j] + o.H[j][i])
			if greenLagrange {
				for k := 0; k < ndim; k++ {
					ε[i][j] += 0.5 * o.H[k][i] * o.H[k][j]
				}
			}
		}
	}
	return
}

// Stress returns the (uniform) stress tensor σ = C : ε
func (o UniformGrad) Stress(C *msolid.ElastTensor, greenLagrange bool) (σ [][]float64) {
	ε := o.Strain(greenLagrange)
	εr := make([][]ad.Real, len(ε))
	for i := range ε {
		εr[i] = ad.Reals(ε[i])
	}
	s := msolid.StressFromStrain(C, εr)
	σ = make([][]float64, len(s))
	for i := range s {
		σ[i] = ad.Values(s[i])
	}
	return
}

// CheckDispl checks displacements
func (o UniformGrad) CheckDispl(tst *testing.T, u, x []float64, tol float64) {
	chk.Array(tst, "u", tol, u, o.Disp(x))
}

// CheckStress checks stresses
func (o UniformGrad) CheckStress(tst *testing.T, σ [][]float64, C *msolid.ElastTensor, greenLagrange bool, tol float64) {
	chk.Deep2(tst, "σ", tol, σ, o.Stress(C, greenLagrange))
}

// CteStressPstrain implements the solution of a plane-strain domain subjected to constant
// normal stresses σx and σy (and zero shear)
type CteStressPstrain struct {
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	σx float64 // horizontal stress
	σy float64 // vertical stress
}

// Init initialises this structure
func (o *CteStressPstrain) Init(prms dbf.Params) (err error) {
	o.E, o.ν = 1000, 0.25
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "sx":
			o.σx = p.V
		case "sy":
			o.σy = p.V
		default:
			return chk.Err("CteStressPstrain: parameter %q is not available", p.N)
		}
	}
	return
}

// Strains returns εx and εy (εz = 0)
func (o CteStressPstrain) Strains() (εx, εy float64) {
	c := (1.0 + o.ν) / o.E
	εx = c * ((1.0-o.ν)*o.σx - o.ν*o.σy)
	εy = c * ((1.0-o.ν)*o.σy - o.ν*o.σx)
	return
}

// Stress returns the 2D stress tensor
func (o CteStressPstrain) Stress() [][]float64 {
	return [][]float64{{o.σx, 0}, {0, o.σy}}
}

// CheckDispl checks displacements assuming u = 0 at the origin and no rotation
func (o CteStressPstrain) CheckDispl(tst *testing.T, u, x []float64, tol float64) {
	εx, εy := o.Strains()
	chk.Array(tst, "u", tol, u, []float64{εx * x[0], εy * x[1]})
}

// CheckStress checks stresses
func (o CteStressPstrain) CheckStress(tst *testing.T, σ [][]float64, tol float64) {
	chk.Deep2(tst, "σ", tol, σ, o.Stress())
}

// PureShear returns a ndim×ndim stress tensor with σ01 = σ10 = s only
func PureShear(ndim int, s float64) (σ [][]float64) {
	σ = make([][]float64, ndim)
	for i := 0; i < ndim; i++ {
		σ[i] = make([]float64, ndim)
	}
	σ[0][1], σ[1][0] = s, s
	return
}
