// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem contains elements and solvers for running simulations using the finite element method
package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/svkfem/inp"
)

// FEM holds all data for a simulation using the finite element method
type FEM struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Dom     *Domain         // domain
	Solver  *SolverImplicit // nonlinear solver
	Verbose bool            // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.toml) filename including full path
//   nworkers    -- number of workers; overrides the simulation file if > 0
//   saveResults -- save solution after each load step and summary at the end
//   verbose     -- show messages
func NewFEM(simfilepath string, nworkers int, saveResults, verbose bool) (o *FEM, err error) {

	// new FEM object
	o = new(FEM)
	o.Verbose = verbose

	// read input data
	o.Sim, err = ReadSimulation(simfilepath, nworkers)
	if err != nil {
		return nil, err
	}

	// domain
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}

	// summary and solver
	o.Summary = &Summary{Dirout: o.Sim.DirOut, Fnkey: o.Sim.Key, EncType: o.Sim.EncType}
	o.Solver = &SolverImplicit{Dom: o.Dom, Sum: o.Summary, Verbose: verbose, Save: saveResults}
	return
}

// ReadSimulation reads a simulation file and overrides the number of workers if nworkers > 0
func ReadSimulation(simfilepath string, nworkers int) (sim *inp.Simulation, err error) {
	sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return
	}
	if nworkers > 0 {
		sim.Nworkers = nworkers
	}
	return
}

// Run runs FE simulation
func (o *FEM) Run() (err error) {

	// message
	cputime := time.Now()
	if o.Verbose {
		io.Pf("\n%s (%s): ndim=%d ncells=%d ny=%d nworkers=%d\n", o.Sim.Key, o.Sim.Desc, o.Dom.Msh.Ndim, len(o.Dom.Msh.Cells), o.Dom.Ny, o.Sim.Nworkers)
		defer func() {
			io.Pfblue2("cpu time   = %v\n", time.Since(cputime))
		}()
	}

	// solve
	err = o.Solver.Run()
	if err != nil {
		return
	}

	// final results
	o.Summary.Energy, err = o.Dom.Energy()
	if err != nil {
		return
	}
	vm, err := o.Dom.VonMises()
	if err != nil {
		return
	}
	for _, v := range vm {
		for _, s := range v {
			o.Summary.MaxVonMises = utl.Max(o.Summary.MaxVonMises, s)
		}
	}
	if o.Verbose {
		io.PfGreen("energy     = %g\n", o.Summary.Energy)
		io.PfGreen("max(σvm)   = %g\n", o.Summary.MaxVonMises)
	}

	// save summary
	if o.Solver.Save {
		err = o.Summary.Save(o.Verbose)
	}
	return
}
