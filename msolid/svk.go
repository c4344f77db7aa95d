// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SaintVenant implements the Saint-Venant-Kirchhoff hyperelastic model: σ = C : ε
// where ε is either the Green-Lagrange strain or its linearisation
//
//  Parameters:
//   E, nu       Young's modulus and Poisson's coefficient; or
//   l, G        Lamé λ and shear modulus; or
//   cIJ         explicit Voigt entries C(I,J), e.g. c00, c01, c22 (symmetric)
//   gl          1 => Green-Lagrange strain
//   rho         density
type SaintVenant struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	L   float64 // Lamé λ
	G   float64 // shear modulus (Lamé μ)
	Rho float64 // density

	// flags
	GreenLagrange bool // include the quadratic term ½GᵀG in the strain
	Aniso         bool // C was given entry by entry
	linOnly       bool // model registered as linear elastic; GreenLagrange is always false

	// derived
	C *ElastTensor // elasticity tensor
}

// add model to factory
func init() {
	allocators["svk"] = func() Model { return new(SaintVenant) }
	allocators["lin-elast"] = func() Model { return &SaintVenant{linOnly: true} }
}

// Init initialises model
func (o *SaintVenant) Init(ndim int, prms dbf.Params) (err error) {

	// parameters
	var hasE, hasNu, hasL, hasG bool
	var entries []*dbf.P
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "l":
			o.L, hasL = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "gl":
			o.GreenLagrange = p.V > 0
		case "rho":
			o.Rho = p.V
		default:
			if _, _, ok := voigtEntry(p.N); ok {
				entries = append(entries, p)
				continue
			}
			return chk.Err("svk: parameter %q is not available", p.N)
		}
	}
	if o.linOnly {
		o.GreenLagrange = false
	}
	if ndim != 2 && ndim != 3 {
		return chk.Err("svk: ndim must be 2 or 3; %d is invalid", ndim)
	}

	// explicit tensor
	if len(entries) > 0 {
		if hasE || hasNu || hasL || hasG {
			return chk.Err("svk: cIJ entries cannot be combined with {E, nu} or {l, G}")
		}
		return o.setTensor(ndim, entries)
	}

	// elastic constants
	switch {
	case hasE && hasNu:
		if o.Nu <= -1.0 || o.Nu >= 0.5 {
			return chk.Err("svk: Poisson's coefficient must be in (-1, 0.5); nu=%g is invalid", o.Nu)
		}
		o.L = Calc_l_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
	case hasL && hasG:
		if o.L+o.G == 0 {
			return chk.Err("svk: l + G must not be zero")
		}
		o.E = Calc_E_from_lG(o.L, o.G)
		o.Nu = Calc_nu_from_lG(o.L, o.G)
	default:
		return chk.Err("svk: either {E, nu}, {l, G} or cIJ entries must be given")
	}
	if o.G <= 0 {
		return chk.Err("svk: shear modulus must be positive; G=%g is invalid", o.G)
	}

	// elasticity tensor
	o.C = NewElastTensorLame(ndim, o.L, o.G)
	if io.Verbose {
		io.Pforan("svk: E=%g nu=%g l=%g G=%g gl=%v\n", o.E, o.Nu, o.L, o.G, o.GreenLagrange)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SaintVenant) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 1e4},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "gl", V: 1},
		&dbf.P{N: "rho", V: 2.7},
	}
}

// GetRho returns density
func (o SaintVenant) GetRho() float64 {
	return o.Rho
}

// setTensor fills C from cIJ entries. Entries not given are zero
func (o *SaintVenant) setTensor(ndim int, entries []*dbf.P) (err error) {
	o.Aniso = true
	o.C = NewElastTensor(ndim)
	for _, p := range entries {
		i, j, _ := voigtEntry(p.N)
		if i >= o.C.Nvoigt() || j >= o.C.Nvoigt() {
			return chk.Err("svk: entry %q is out of range for ndim=%d", p.N, ndim)
		}
		o.C.Set(i, j, p.V)
	}
	for i := 0; i < o.C.Nvoigt(); i++ {
		if o.C.Get(i, i) <= 0 {
			return chk.Err("svk: diagonal entry c%d%d must be positive; %g is invalid", i, i, o.C.Get(i, i))
		}
	}
	if io.Verbose {
		io.Pforan("svk: C=%v gl=%v\n", o.C.data, o.GreenLagrange)
	}
	return
}

// voigtEntry parses "cIJ" with I, J in 0..5
func voigtEntry(name string) (i, j int, ok bool) {
	if len(name) != 3 || name[0] != 'c' {
		return
	}
	i, j = int(name[1]-'0'), int(name[2]-'0')
	ok = i >= 0 && i < 6 && j >= 0 && j < 6
	return
}
