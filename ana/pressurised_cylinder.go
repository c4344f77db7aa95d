// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// PressCylin implements Lamé's solution to a thick linear elastic cylinder in plane-strain
// subjected to an internal pressure P
//
//               , - - ,
//           , '         ' ,
//         ,                 ,
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,
//       ,     |  ← P →  |     ,
//       ,      \ ↙ ↓ ↘ /      ,
//        ,      `-...-'      ,
//         ,                 ,
//           ,            , '
//             ' - , ,  '
type PressCylin struct {

	// input
	a float64 // Inner radius
	b float64 // Outer radius
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	P float64 // internal pressure
}

// Init initialises this structure
func (o *PressCylin) Init(prms dbf.Params) (err error) {

	// default values
	o.a = 100    // [mm]
	o.b = 200    // [mm]
	o.E = 210000 // [MPa] Young modulus
	o.ν = 0.3    // [-] Poisson's ratio
	o.P = 100    // [MPa] internal pressure

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "P":
			o.P = p.V
		default:
			return chk.Err("PressCylin: parameter %q is not available", p.N)
		}
	}
	if o.a <= 0 || o.b <= o.a {
		return chk.Err("PressCylin: radii must satisfy 0 < a < b; a=%g and b=%g are invalid", o.a, o.b)
	}
	return
}

// SetInnerDisp sets the pressure such that the radial displacement at the inner surface is ua
func (o *PressCylin) SetInnerDisp(ua float64) {
	o.P = 1
	o.P = ua / o.RadialDisp(o.a)
}

// Pressure returns the internal pressure
func (o PressCylin) Pressure() float64 { return o.P }

// RadialDisp returns the radial displacement at radius r
func (o PressCylin) RadialDisp(r float64) (ur float64) {
	aa, bb := o.a*o.a, o.b*o.b
	coef := (1.0 + o.ν) * o.P * aa / (o.E * (bb - aa))
	return coef * ((1.0-2.0*o.ν)*r + bb/r)
}

// Stresses compute the radial and tangential stresses; tension is positive
func (o PressCylin) Stresses(r float64) (sr, st float64) {
	aa, bb, rr := o.a*o.a, o.b*o.b, r*r
	coef := o.P * aa / (bb - aa)
	sr = coef * (1.0 - bb/rr)
	st = coef * (1.0 + bb/rr)
	return
}

// CalcStresses returns the radial and tangential stresses at nr points along the radius
func (o PressCylin) CalcStresses(nr int) (R, Sr, St []float64) {
	R = utl.LinSpace(o.a, o.b, nr)
	Sr = make([]float64, nr)
	St = make([]float64, nr)
	for i, r := range R {
		Sr[i], St[i] = o.Stresses(r)
	}
	return
}
