// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/svkfem/fem"
	"github.com/cpmech/svkfem/inp"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Global variables
var (

	// data set by Start
	Sim *inp.Simulation // simulation data
	Sum *fem.Summary    // summary read from output directory
	Dom *fem.Domain     // FE domain; its solution is replaced by LoadResults

	// defined entities and results loaded by LoadResults
	Results  ResultsMap // maps labels => points
	TimeInds []int      // selected output indices (load steps)
	Lambdas  []float64  // load factors of selected output indices
)

// Start starts handling of results given a simulation input file
//  dirout -- directory with results; use "" to take the one in the simulation file
func Start(simfnpath, dirout string) (err error) {

	// simulation data
	Sim, err = fem.ReadSimulation(simfnpath, 0)
	if err != nil {
		return
	}
	if dirout != "" {
		Sim.DirOut = dirout
	}

	// summary
	Sum, err = fem.ReadSum(Sim.DirOut, Sim.Key, Sim.EncType)
	if err != nil {
		return chk.Err("cannot read summary:\n%v", err)
	}

	// domain
	Dom, err = fem.NewDomain(Sim)
	if err != nil {
		return chk.Err("cannot allocate domain:\n%v", err)
	}

	// clear previous data
	Results = make(map[string]Points)
	TimeInds = make([]int, 0)
	Lambdas = make([]float64, 0)
	return
}
