// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/svkfem/shp"
)

// Gpair holds one global node contributing to a local basis function
type Gpair struct {
	Index int     // global node index
	Val   float64 // weight of contribution
}

// BasisVals holds the data of one local basis function at all integration points
type BasisVals struct {
	Grad   [][]float64 // [nip][ndim] gradient w.r.t natural coordinates
	Global []Gpair     // global nodes contributing to this basis function
}

// ElemVals holds the quadrature data of one element
type ElemVals struct {
	Eid   int           // element id
	Ndim  int           // space dimension
	Basis []*BasisVals  // [nbasis] basis functions
	Jinv  [][][]float64 // [nip][ndim][ndim] inverse Jacobian dR/dx
	Da    []float64     // [nip] integration weight times det(dx/dR)
}

// NewElemVals computes the quadrature data of a cell with vertices verts and coordinates x
//  x   -- [ndim][nverts] coordinates matrix
//  ips -- integration points
func NewElemVals(eid int, shape *shp.Shape, x [][]float64, ips []shp.Ipoint, verts []int) (o *ElemVals, err error) {
	return newElemVals(eid, shape, x, ips, verts, true)
}

// NewElemValsAt computes the quadrature data at arbitrary natural coordinates pts.
// Weights are set to zero; use it for sampling only
func NewElemValsAt(eid int, shape *shp.Shape, x [][]float64, pts [][]float64, verts []int) (o *ElemVals, err error) {
	ips := make([]shp.Ipoint, len(pts))
	for k, p := range pts {
		ips[k] = make(shp.Ipoint, 4)
		copy(ips[k], p)
	}
	return newElemVals(eid, shape, x, ips, verts, false)
}

// Nip returns the number of integration points
func (o ElemVals) Nip() int { return len(o.Da) }

// Nbasis returns the number of local basis functions
func (o ElemVals) Nbasis() int { return len(o.Basis) }

// Ndof returns the number of local degrees of freedom
func (o ElemVals) Ndof() int { return len(o.Basis) * o.Ndim }

// PhysGrad returns the gradient of basis function i w.r.t real coordinates at integration point k
//  g_b = Σ_c Grad[k][c] * Jinv[k][c][b]
func (o ElemVals) PhysGrad(i, k int) (g []float64) {
	g = make([]float64, o.Ndim)
	grad := o.Basis[i].Grad[k]
	for b := 0; b < o.Ndim; b++ {
		for c := 0; c < o.Ndim; c++ {
			g[b] += grad[c] * o.Jinv[k][c][b]
		}
	}
	return
}

// Check checks the consistency of dimensions; it panics on failure
func (o ElemVals) Check() {
	if o.Ndim != 2 && o.Ndim != 3 {
		chk.Panic("element %d: ndim must be 2 or 3; %d is invalid", o.Eid, o.Ndim)
	}
	nip := len(o.Da)
	if len(o.Jinv) != nip {
		chk.Panic("element %d: there are %d inverse Jacobians but %d weights", o.Eid, len(o.Jinv), nip)
	}
	for k, jinv := range o.Jinv {
		if len(jinv) != o.Ndim {
			chk.Panic("element %d: inverse Jacobian at ip %d has %d rows; expected %d", o.Eid, k, len(jinv), o.Ndim)
		}
		for _, row := range jinv {
			if len(row) != o.Ndim {
				chk.Panic("element %d: inverse Jacobian at ip %d has %d columns; expected %d", o.Eid, k, len(row), o.Ndim)
			}
		}
	}
	for i, b := range o.Basis {
		if len(b.Grad) != nip {
			chk.Panic("element %d: gradient of basis %d has %d rows but there are %d weights", o.Eid, i, len(b.Grad), nip)
		}
		for k, row := range b.Grad {
			if len(row) != o.Ndim {
				chk.Panic("element %d: gradient of basis %d at ip %d has %d columns; expected %d", o.Eid, i, k, len(row), o.Ndim)
			}
		}
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func newElemVals(eid int, shape *shp.Shape, x [][]float64, ips []shp.Ipoint, verts []int, weights bool) (o *ElemVals, err error) {

	// check
	if len(verts) != shape.Nverts {
		return nil, chk.Err("element %d: %s requires %d vertices; %d is invalid", eid, shape.Type, shape.Nverts, len(verts))
	}

	// allocate
	nip := len(ips)
	ndim := shape.Gndim
	o = &ElemVals{Eid: eid, Ndim: ndim}
	o.Basis = make([]*BasisVals, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		o.Basis[m] = &BasisVals{
			Grad:   utl.Alloc(nip, ndim),
			Global: []Gpair{{Index: verts[m], Val: 1}},
		}
	}
	o.Jinv = make([][][]float64, nip)
	o.Da = make([]float64, nip)

	// loop over integration points
	for k, ip := range ips {
		err = shape.CalcAtIp(x, ip, true)
		if err != nil {
			return nil, chk.Err("element %d: ip %d: %v", eid, k, err)
		}
		for m := 0; m < shape.Nverts; m++ {
			copy(o.Basis[m].Grad[k], shape.DSdR[m])
		}
		o.Jinv[k] = utl.Alloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			copy(o.Jinv[k][i], shape.DRdx[i])
		}
		if weights {
			o.Da[k] = shape.J * ip[3]
		}
	}
	return
}
