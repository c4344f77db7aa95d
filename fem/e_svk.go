// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/svkfem/ad"
	"github.com/cpmech/svkfem/msolid"
)

// ElemSvk computes element quantities of Saint-Venant-Kirchhoff solids.
// It holds read-only data only; thus the same ElemSvk may be used by many goroutines
type ElemSvk struct {
	Mdl  *msolid.SaintVenant // material model
	Ndim int                 // space dimension
}

// NewElemSvk returns a new element assembler for an initialised model
func NewElemSvk(mdl *msolid.SaintVenant) *ElemSvk {
	if mdl == nil || mdl.C == nil {
		chk.Panic("ElemSvk requires an initialised model")
	}
	return &ElemSvk{Mdl: mdl, Ndim: mdl.C.Ndim()}
}

// Gather collects the local displacements from the global vector U
//  ul[i*ndim+d] = Σ_p pair_p.Val * U[pair_p.Index*ndim+d]   for all pairs p of basis i
func (o *ElemSvk) Gather(vals *ElemVals, U []float64) (ul []float64) {
	o.check(vals)
	ndim := o.Ndim
	ul = make([]float64, vals.Ndof())
	for i, b := range vals.Basis {
		for _, p := range b.Global {
			if p.Index < 0 || (p.Index+1)*ndim > len(U) {
				chk.Panic("element %d: basis %d refers to node %d which is not in U (len=%d)", vals.Eid, i, p.Index, len(U))
			}
			for d := 0; d < ndim; d++ {
				ul[i*ndim+d] += p.Val * U[p.Index*ndim+d]
			}
		}
	}
	return
}

// Energy returns the element energy Σ_k tr(σ·ε) da_k
func (o *ElemSvk) Energy(vals *ElemVals, U []float64) float64 {
	ul := o.Gather(vals, U)
	return svkEnergy(o.Mdl, vals, ad.Reals(ul)).Value()
}

// EnergyGrad returns the derivatives of the element energy w.r.t the local displacements
func (o *ElemSvk) EnergyGrad(vals *ElemVals, U []float64) (dEdu []float64) {
	ul := o.Gather(vals, U)
	res := svkEnergy(o.Mdl, vals, ad.Seed(ul))
	J := ad.Jacobian([]ad.Dual{res}, len(ul))
	dEdu = make([]float64, len(ul))
	for i := range J {
		dEdu[i] = J[i][0]
	}
	return
}

// Force returns the internal force corresponding to test function j
//  f_d = Σ_k tr(σ·δε(j,d)) da_k
func (o *ElemSvk) Force(vals *ElemVals, j int, U []float64) []float64 {
	ul := o.Gather(vals, U)
	f := svkForces(o.Mdl, vals, []int{j}, ad.Reals(ul))
	return ad.Values(f[0])
}

// Jacobian returns the derivatives of Force(j) w.r.t the local displacements
//  J[r][d] = ∂f_d/∂ul_r   with   r in [0, nbasis*ndim)
func (o *ElemSvk) Jacobian(vals *ElemVals, j int, U []float64) [][]float64 {
	ul := o.Gather(vals, U)
	f := svkForces(o.Mdl, vals, []int{j}, ad.Seed(ul))
	return ad.Jacobian(f[0], len(ul))
}

// ForceAll returns the internal forces of all test functions
//  F[j*ndim+d] = Force(j)[d]
func (o *ElemSvk) ForceAll(vals *ElemVals, U []float64) (F []float64) {
	ul := o.Gather(vals, U)
	f := svkForces(o.Mdl, vals, allBasis(vals), ad.Reals(ul))
	F = make([]float64, 0, len(ul))
	for _, fj := range f {
		F = append(F, ad.Values(fj)...)
	}
	return
}

// JacobianAll returns the element tangent matrix
//  K[j*ndim+d][r] = ∂F[j*ndim+d]/∂ul_r
func (o *ElemSvk) JacobianAll(vals *ElemVals, U []float64) (K [][]float64) {
	ul := o.Gather(vals, U)
	n := len(ul)
	f := svkForces(o.Mdl, vals, allBasis(vals), ad.Seed(ul))
	K = make([][]float64, 0, n)
	for _, fj := range f {
		J := ad.Jacobian(fj, n)
		for d := range fj {
			row := make([]float64, n)
			for r := 0; r < n; r++ {
				row[r] = J[r][d]
			}
			K = append(K, row)
		}
	}
	return
}

// StressAt returns the stress tensor at integration point (or sample point) k
func (o *ElemSvk) StressAt(vals *ElemVals, k int, U []float64) (σ [][]float64) {
	ul := ad.Reals(o.Gather(vals, U))
	G := DispGrad(vals, k, ul)
	s := msolid.StressFromStrain(o.Mdl.C, StrainTensor(G, o.Mdl.GreenLagrange))
	σ = make([][]float64, len(s))
	for i := range s {
		σ[i] = ad.Values(s[i])
	}
	return
}

// VonMisesField returns the von Mises stress at every point of vals; all basis functions
// contribute to the displacement gradient at each point
func (o *ElemSvk) VonMisesField(vals *ElemVals, U []float64) (vm []float64) {
	vm = make([]float64, vals.Nip())
	for k := range vm {
		vm[k] = msolid.VonMises(o.StressAt(vals, k, U))
	}
	return
}

// check checks the quadrature data against the model
func (o *ElemSvk) check(vals *ElemVals) {
	vals.Check()
	if vals.Ndim != o.Ndim {
		chk.Panic("element %d: ndim=%d of quadrature data does not match ndim=%d of elasticity tensor", vals.Eid, vals.Ndim, o.Ndim)
	}
}

// kernels /////////////////////////////////////////////////////////////////////////////////////////

// svkEnergy computes Σ_k tr(σ·ε) da_k
func svkEnergy[T ad.Scalar[T]](mdl *msolid.SaintVenant, vals *ElemVals, ul []T) (res T) {
	for k, da := range vals.Da {
		G := DispGrad(vals, k, ul)
		ε := StrainTensor(G, mdl.GreenLagrange)
		σ := msolid.StressFromStrain(mdl.C, ε)
		res = res.Add(msolid.Contract(σ, ε).Scale(da))
	}
	return
}

// svkForces computes f[jj][d] = Σ_k tr(σ·δε(js[jj],d)) da_k
func svkForces[T ad.Scalar[T]](mdl *msolid.SaintVenant, vals *ElemVals, js []int, ul []T) (f [][]T) {
	ndim := vals.Ndim
	f = make([][]T, len(js))
	for jj := range js {
		f[jj] = make([]T, ndim)
	}
	for k, da := range vals.Da {
		G := DispGrad(vals, k, ul)
		σ := msolid.StressFromStrain(mdl.C, StrainTensor(G, mdl.GreenLagrange))
		for jj, j := range js {
			for d := 0; d < ndim; d++ {
				δε := TestStrain(vals, j, k, d, G, mdl.GreenLagrange)
				f[jj][d] = f[jj][d].Add(msolid.Contract(σ, δε).Scale(da))
			}
		}
	}
	return
}

func allBasis(vals *ElemVals) (js []int) {
	js = make([]int, vals.Nbasis())
	for j := range js {
		js[j] = j
	}
	return
}
