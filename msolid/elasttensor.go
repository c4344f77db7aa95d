// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ElastTensor holds a symmetric fourth-order elasticity tensor in Voigt form. Only the
// upper triangle of the nvoigt×nvoigt matrix is stored.
//
//  Voigt ordering:
//   2D: [xx, yy, xy]
//   3D: [xx, yy, zz, yz, xz, xy]
type ElastTensor struct {
	ndim   int       // space dimension
	nvoigt int       // number of Voigt components: 3 or 6
	data   []float64 // compressed upper triangle [nvoigt*(nvoigt+1)/2]
}

// NewElastTensor allocates a zero tensor for ndim = 2 or 3
func NewElastTensor(ndim int) (o *ElastTensor) {
	o = new(ElastTensor)
	o.SetSize(ndim)
	return
}

// NewElastTensorLame allocates the isotropic tensor with Lamé parameters λ and μ
func NewElastTensorLame(ndim int, λ, μ float64) (o *ElastTensor) {
	o = NewElastTensor(ndim)
	o.SetLame(λ, μ)
	return
}

// SetSize fixes the space dimension and (re)allocates the store with zeros
func (o *ElastTensor) SetSize(ndim int) {
	switch ndim {
	case 2:
		o.nvoigt = 3
	case 3:
		o.nvoigt = 6
	default:
		chk.Panic("elasticity tensor: ndim must be 2 or 3; %d is invalid", ndim)
	}
	o.ndim = ndim
	o.data = make([]float64, o.nvoigt*(o.nvoigt+1)/2)
}

// Ndim returns the space dimension
func (o *ElastTensor) Ndim() int { return o.ndim }

// Nvoigt returns the number of Voigt components
func (o *ElastTensor) Nvoigt() int { return o.nvoigt }

// Nstored returns the number of independent entries held
func (o *ElastTensor) Nstored() int { return len(o.data) }

// Set sets C(i,j) and C(j,i)
func (o *ElastTensor) Set(i, j int, v float64) {
	o.data[o.index(i, j)] = v
}

// Get returns C(i,j)
func (o *ElastTensor) Get(i, j int) float64 {
	return o.data[o.index(i, j)]
}

// SetLame sets the isotropic tensor
//  C(a,a) = 2μ+λ  for normal components
//  C(a,b) = λ     for normal/normal coupling
//  C(s,s) = μ     for shear components
func (o *ElastTensor) SetLame(λ, μ float64) {
	for i := range o.data {
		o.data[i] = 0
	}
	for a := 0; a < o.ndim; a++ {
		for b := a; b < o.ndim; b++ {
			if a == b {
				o.Set(a, b, 2*μ+λ)
			} else {
				o.Set(a, b, λ)
			}
		}
	}
	for s := o.ndim; s < o.nvoigt; s++ {
		o.Set(s, s, μ)
	}
}

// Dense returns the full nvoigt×nvoigt matrix
func (o *ElastTensor) Dense() *mat.Dense {
	D := mat.NewDense(o.nvoigt, o.nvoigt, nil)
	for i := 0; i < o.nvoigt; i++ {
		for j := 0; j < o.nvoigt; j++ {
			D.Set(i, j, o.Get(i, j))
		}
	}
	return D
}

// index returns the compressed index n·i + j − i(i+1)/2 with i ≤ j
func (o *ElastTensor) index(i, j int) int {
	if o.data == nil {
		chk.Panic("elasticity tensor: SetSize must be called first")
	}
	if i < 0 || j < 0 || i >= o.nvoigt || j >= o.nvoigt {
		chk.Panic("elasticity tensor: index (%d,%d) is out of range [0,%d)", i, j, o.nvoigt)
	}
	if i > j {
		i, j = j, i
	}
	return o.nvoigt*i + j - i*(i+1)/2
}
