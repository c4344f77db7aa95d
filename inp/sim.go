// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.toml) simulation file
package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MatData holds material data
type MatData struct {
	Name  string     `toml:"name"`  // name of material
	Model string     `toml:"model"` // name of model; e.g. "svk", "lin-elast"
	Prms  dbf.Params `toml:"prms"`  // parameters
}

// SolverData holds FEM solver data
type SolverData struct {
	Nsteps int     `toml:"nsteps"` // number of load increments
	NmaxIt int     `toml:"nmaxit"` // number of max iterations
	FbTol  float64 `toml:"fbtol"`  // tolerance for convergence on fb
	FbMin  float64 `toml:"fbmin"`  // minimum value of fb
	ShowR  bool    `toml:"showr"`  // show residual
}

// NodeBc holds a condition applied to all vertices with a given tag
type NodeBc struct {
	Tag  int       `toml:"tag"`  // tag of vertices
	Keys []string  `toml:"keys"` // degrees of freedom; e.g. ux, uy, uz
	Vals []float64 `toml:"vals"` // final values; applied proportionally to the load factor
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Desc     string     `toml:"desc"`     // description of simulation
	Mshfile  string     `toml:"mshfile"`  // mesh file path, relative to the simulation file
	DirOut   string     `toml:"dirout"`   // directory for output; e.g. /tmp/svkfem
	EncType  string     `toml:"enctype"`  // encoding type of results: "json" or "gob"; "" => json
	Nworkers int        `toml:"nworkers"` // number of concurrent workers during assembly; 0 => 1
	Nip      int        `toml:"nip"`      // number of integration points; 0 => use default
	Material MatData    `toml:"material"` // material data
	Solver   SolverData `toml:"solver"`   // solver data
	NodeBcs  []*NodeBc  `toml:"nodebcs"`  // prescribed displacements
	Loads    []*NodeBc  `toml:"loads"`    // point loads

	// derived
	Key string `toml:"-"` // simulation key; e.g. mysim01.toml => mysim01
	Msh *Mesh  `toml:"-"` // the mesh
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Nsteps = 1
	o.NmaxIt = 20
	o.FbTol = 1e-8
	o.FbMin = 1e-14
}

// DofKeys returns the degrees of freedom keys for a given space dimension
func DofKeys(ndim int) []string {
	return []string{"ux", "uy", "uz"}[:ndim]
}

// ReadSim reads all simulation data from a .toml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)
	o.Solver.SetDefault()

	// decode
	md, err := toml.DecodeFile(simfilepath, o)
	if err != nil {
		return nil, chk.Err("cannot decode simulation file %q: %v", simfilepath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, chk.Err("simulation file %q has unknown keys: %v", simfilepath, undecoded)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fn := filepath.Base(simfilepath)
	o.Key = strings.TrimSuffix(fn, filepath.Ext(fn))

	// output directory
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "svkfem", o.Key)
	}

	// encoding type
	if o.EncType == "" {
		o.EncType = "json"
	}

	// workers
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}

	// mesh
	if o.Mshfile == "" {
		return nil, chk.Err("simulation file %q: mshfile must be given", simfilepath)
	}
	o.Msh, err = ReadMsh(dir, o.Mshfile)
	if err != nil {
		return
	}

	// check
	err = o.check()
	return
}

// check checks the consistency of the data just read
func (o *Simulation) check() (err error) {
	if o.Solver.Nsteps < 1 {
		return chk.Err("solver: nsteps must be positive; %d is invalid", o.Solver.Nsteps)
	}
	if o.Solver.NmaxIt < 1 {
		return chk.Err("solver: nmaxit must be positive; %d is invalid", o.Solver.NmaxIt)
	}
	if o.EncType != "json" && o.EncType != "gob" {
		return chk.Err("enctype must be \"json\" or \"gob\"; %q is invalid", o.EncType)
	}
	if o.Material.Model == "" {
		return chk.Err("material %q: model must be given", o.Material.Name)
	}
	valid := make(map[string]bool)
	for _, key := range DofKeys(o.Msh.Ndim) {
		valid[key] = true
	}
	for kind, bcs := range map[string][]*NodeBc{"nodebcs": o.NodeBcs, "loads": o.Loads} {
		for _, bc := range bcs {
			if len(bc.Keys) != len(bc.Vals) {
				return chk.Err("%s: tag=%d has %d keys but %d values", kind, bc.Tag, len(bc.Keys), len(bc.Vals))
			}
			if _, ok := o.Msh.VertTag2verts[bc.Tag]; !ok {
				return chk.Err("%s: cannot find vertices with tag=%d", kind, bc.Tag)
			}
			for _, key := range bc.Keys {
				if !valid[key] {
					return chk.Err("%s: key %q is invalid in %dD", kind, key, o.Msh.Ndim)
				}
			}
		}
	}
	return
}
