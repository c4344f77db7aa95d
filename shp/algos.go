// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[ndim]         -- are the 2D/3D point coordinates
//   x[ndim][nverts] -- coordinates matrix of solid element
//  Output:
//   r[3] -- are the natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim == 1 {
		return chk.Err("inverse mapping is not implemented in 1D")
	}

	var δRnorm float64
	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	r[0], r[1], r[2] = 0, 0, 0     // first trial
	for it := 0; it < INVMAP_NIT; it++ {

		// shape functions, dxdR and dRdx
		err = o.CalcAtIp(x, r, true)
		if err != nil {
			return
		}

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// corrector: dR = dRdx * e
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx[i][j] * e[j]
			}
		}

		// converged?
		δRnorm = 0.0
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
			// fix r outside range
			if r[i] < -1.0 || r[i] > 1.0 {
				if math.Abs(r[i]-(-1.0)) < INVMAP_TOL {
					r[i] = -1.0
				}
				if math.Abs(r[i]-1.0) < INVMAP_TOL {
					r[i] = 1.0
				}
			}
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("%s: inverse mapping did not converge after %d iterations", o.Type, INVMAP_NIT)
}

// CellBryDist returns the shortest distance between R and the boundary of the cell in natural
// coordinates. Negative values indicate that R is outside the cell.
func (o *Shape) CellBryDist(R []float64) float64 {
	r, s, t := R[0], R[1], 0.0
	if len(R) > 2 {
		t = R[2]
	}
	switch o.Type {
	case "tri3", "tri6":
		return utl.Min(r, utl.Min(s, 1.0-r-s))
	case "qua4", "qua8", "qua9":
		return utl.Min(1.0-math.Abs(r), 1.0-math.Abs(s))
	case "hex8":
		return utl.Min(1.0-math.Abs(r), utl.Min(1.0-math.Abs(s), 1.0-math.Abs(t)))
	case "tet4":
		return utl.Min(r, utl.Min(s, utl.Min(t, 1.0-r-s-t)))
	}
	chk.Panic("cannot compute boundary distance of %q", o.Type)
	return 0 // must not reach this point
}
