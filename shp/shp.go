// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Ipoint holds the natural coordinates and the weight of an integration point: {r, s, t, w}
type Ipoint []float64

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "qua8" => gnd == 2
	Nverts    int         // number of vertices in cell; e.g. "qua8" => 8
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: gonum
	jmat *mat.Dense // dxdR
	jinv *mat.Dense // inverse(dxdR)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {

	// new structure
	var p Shape

	// geometry
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.NatCoords = matClone(o.NatCoords)

	// scratchpad
	p.init_scratchpad()
	copy(p.S, o.S)
	p.J = o.J
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}
	if len(x) != o.Gndim {
		return chk.Err("%s: coordinates matrix has %d rows; expected %d", o.Type, len(x), o.Gndim)
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
			o.jmat.Set(i, j, o.DxdR[i][j])
		}
	}

	// dRdx := inv(dxdR)
	o.J = mat.Det(o.jmat)
	if math.Abs(o.J) < MINDET {
		return chk.Err("%s: cannot invert dxdR because its determinant is too small: |det|=%g < %g", o.Type, math.Abs(o.J), MINDET)
	}
	err = o.jinv.Inverse(o.jmat)
	if err != nil {
		return chk.Err("%s: cannot invert dxdR: %v", o.Type, err)
	}
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DRdx[i][j] = o.jinv.At(i, j)
		}
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   R[3]            -- local/natural coordinates
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
	o.jmat = mat.NewDense(o.Gndim, o.Gndim, nil)
	o.jinv = mat.NewDense(o.Gndim, o.Gndim, nil)
}

// register adds a new shape to the factory
func register(geoType string, fcn ShpFunc, natCoords [][]float64) {
	o := &Shape{
		Type:      geoType,
		Func:      fcn,
		Gndim:     len(natCoords),
		Nverts:    len(natCoords[0]),
		NatCoords: natCoords,
	}
	o.init_scratchpad()
	factory[geoType] = o
}

func matClone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}
