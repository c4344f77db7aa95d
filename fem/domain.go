// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/inp"
	"github.com/cpmech/svkfem/msolid"
	"github.com/cpmech/svkfem/shp"
)

// constants
const BRYTOL = 1e-8 // tolerance to decide whether a point is inside a cell or not

// EssenBc holds a prescribed value of one equation
type EssenBc struct {
	Eq  int     // equation number
	Val float64 // final value; the value at load factor λ is λ*Val
}

// Domain holds all elements and the solution at nodes
type Domain struct {

	// input
	Sim *inp.Simulation     // simulation data
	Msh *inp.Mesh           // mesh data
	Mdl *msolid.SaintVenant // material model

	// assembly
	Asm *Assembler // global assembler
	Ny  int        // total number of equations: nverts * ndim

	// conditions
	EssenBcs []*EssenBc // prescribed displacements
	Fext     []float64  // [ny] final external forces; the forces at load factor λ are λ*Fext

	// solution
	Y []float64 // [ny] displacements
}

// NewDomain allocates all elements of a simulation
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Sim = sim
	o.Msh = sim.Msh
	ndim := o.Msh.Ndim
	o.Ny = len(o.Msh.Verts) * ndim

	// material model
	mdl, err := msolid.New(sim.Material.Model)
	if err != nil {
		return nil, err
	}
	svk, ok := mdl.(*msolid.SaintVenant)
	if !ok {
		return nil, chk.Err("material %q: model %q cannot be used with svk elements", sim.Material.Name, sim.Material.Model)
	}
	err = svk.Init(ndim, sim.Material.Prms)
	if err != nil {
		return nil, chk.Err("material %q: cannot initialise model:\n%v", sim.Material.Name, err)
	}
	o.Mdl = svk

	// elements
	esvk := NewElemSvk(svk)
	o.Asm = &Assembler{Ndim: ndim, Ny: o.Ny, Nworkers: sim.Nworkers}
	o.Asm.Elems = make([]*Element, len(o.Msh.Cells))
	for i, c := range o.Msh.Cells {
		ips, err := shp.GetIps(c.Type, sim.Nip)
		if err != nil {
			return nil, chk.Err("cell %d: cannot get integration points:\n%v", c.Id, err)
		}
		x := o.Msh.ExtractCellCoords(c.Id)
		vals, err := NewElemVals(c.Id, c.Shp, x, ips, c.Verts)
		if err != nil {
			return nil, err
		}
		o.Asm.Elems[i] = &Element{Vals: vals, Svk: esvk}
	}

	// essential boundary conditions
	keys := inp.DofKeys(ndim)
	eq2bc := make(map[int]*EssenBc)
	for _, bc := range sim.NodeBcs {
		for _, v := range o.Msh.VertTag2verts[bc.Tag] {
			for i, key := range bc.Keys {
				eq := v.Id*ndim + keyIndex(keys, key)
				if b, found := eq2bc[eq]; found {
					b.Val = bc.Vals[i]
					continue
				}
				b := &EssenBc{Eq: eq, Val: bc.Vals[i]}
				eq2bc[eq] = b
				o.EssenBcs = append(o.EssenBcs, b)
			}
		}
	}

	// point loads
	o.Fext = make([]float64, o.Ny)
	for _, ld := range sim.Loads {
		for _, v := range o.Msh.VertTag2verts[ld.Tag] {
			for i, key := range ld.Keys {
				o.Fext[v.Id*ndim+keyIndex(keys, key)] += ld.Vals[i]
			}
		}
	}

	// solution
	o.Y = make([]float64, o.Ny)
	if io.Verbose {
		io.Pf("domain: ncells=%d nverts=%d ny=%d nessenbcs=%d\n", len(o.Asm.Elems), len(o.Msh.Verts), o.Ny, len(o.EssenBcs))
	}
	return
}

// Energy returns the total energy at the current solution
func (o *Domain) Energy() (float64, error) {
	return o.Asm.Energy(o.Y)
}

// VonMises returns the von Mises stress at the integration points of all elements
//  vm[cellId][ip]
func (o *Domain) VonMises() ([][]float64, error) {
	return o.Asm.VonMises(o.Y)
}

// VonMisesAt returns the von Mises stress at point x (real coordinates)
func (o *Domain) VonMisesAt(x []float64) (vm float64, err error) {
	σ, err := o.StressAt(x)
	if err != nil {
		return
	}
	return msolid.VonMises(σ), nil
}

// StressAt returns the stress tensor at point x (real coordinates) computed with the
// current displacements. The first cell containing x is used
func (o *Domain) StressAt(x []float64) (σ [][]float64, err error) {
	if len(x) != o.Msh.Ndim {
		return nil, chk.Err("point must have %d coordinates; %d is invalid", o.Msh.Ndim, len(x))
	}
	r := make([]float64, 3)
	for _, c := range o.Msh.Cells {
		shape := shp.Get(c.Type, 1)
		xc := o.Msh.ExtractCellCoords(c.Id)
		if e := shape.InvMap(r, x, xc); e != nil {
			continue
		}
		if shape.CellBryDist(r) < -BRYTOL {
			continue
		}
		vals, e := NewElemValsAt(c.Id, shape, xc, [][]float64{r}, c.Verts)
		if e != nil {
			return nil, e
		}
		defer func() {
			if rec := recover(); rec != nil {
				err = chk.Err("cannot compute stress in cell %d:\n%v", c.Id, rec)
			}
		}()
		return o.Asm.Elems[c.Id].Svk.StressAt(vals, 0, o.Y), nil
	}
	return nil, chk.Err("cannot find cell containing point %v", x)
}

// keyIndex returns the component corresponding to a dof key; e.g. "uy" => 1
func keyIndex(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	chk.Panic("cannot find dof key %q in %v", key, keys)
	return -1
}
