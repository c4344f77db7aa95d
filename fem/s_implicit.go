// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolverImplicit solves the static problem with load increments and Newton-Raphson iterations
type SolverImplicit struct {
	Dom     *Domain  // domain
	Sum     *Summary // summary; may be nil
	Verbose bool     // show messages
	Save    bool     // save the solution after each load step
}

// Run runs all load steps
func (o *SolverImplicit) Run() (err error) {
	nsteps := o.Dom.Sim.Solver.Nsteps
	for step := 1; step <= nsteps; step++ {

		// load factor
		λ := float64(step) / float64(nsteps)
		if o.Verbose && !o.Dom.Sim.Solver.ShowR {
			io.Pf("step %3d: λ = %g\n", step, λ)
		}

		// iterations
		var it int
		it, err = run_iterations(λ, o.Dom, o.Sum)
		if err != nil {
			return chk.Err("load step %d failed:\n%v", step, err)
		}

		// summary
		if o.Sum != nil {
			o.Sum.Nsteps = step
			o.Sum.Lambdas = append(o.Sum.Lambdas, λ)
			o.Sum.Iters = append(o.Sum.Iters, it)
		}

		// output
		if o.Save {
			err = o.Dom.SaveSol(step, λ, o.Verbose)
			if err != nil {
				return
			}
		}
	}
	return
}

// run_iterations solves the nonlinear problem at load factor λ and returns the number of iterations
func run_iterations(λ float64, d *Domain, sum *Summary) (it int, err error) {

	// prescribed displacements
	constrained := make(map[int]bool)
	for _, bc := range d.EssenBcs {
		d.Y[bc.Eq] = λ * bc.Val
		constrained[bc.Eq] = true
	}

	// auxiliary variables
	var largFb, largFb0 float64
	fb := make([]float64, d.Ny)
	ctrl := d.Sim.Solver

	// message
	if ctrl.ShowR {
		io.Pf("\n%13s%4s%23s\n", "λ", "it", "largFb")
	}

	// iterations
	for it = 0; it < ctrl.NmaxIt; it++ {

		// right-hand side vector fb = λ fext - fint
		var fint []float64
		fint, err = d.Asm.Residual(d.Y)
		if err != nil {
			return
		}
		floats.ScaleTo(fb, λ, d.Fext)
		floats.Sub(fb, fint)
		for eq := range constrained {
			fb[eq] = 0
		}

		// find largest absolute component of fb
		largFb = floats.Norm(fb, math.Inf(1))
		if sum != nil {
			sum.AppendResid(it == 0, largFb)
		}
		if ctrl.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", λ, it, largFb)
		}

		// check largFb value
		if it == 0 {
			largFb0 = largFb
		} else if largFb < ctrl.FbTol*largFb0 { // converged on fb
			return
		}
		if largFb < ctrl.FbMin { // converged with smallest value of fb
			return
		}

		// assemble Jacobian matrix
		var K *mat.Dense
		K, err = d.Asm.Tangent(d.Y)
		if err != nil {
			return
		}

		// constraints: replace rows and columns of constrained equations by identity
		for eq := range constrained {
			for j := 0; j < d.Ny; j++ {
				K.Set(eq, j, 0)
				K.Set(j, eq, 0)
			}
			K.Set(eq, eq, 1)
		}

		// solve for wb := δy
		var wb mat.VecDense
		err = wb.SolveVec(K, mat.NewVecDense(d.Ny, fb))
		if err != nil {
			if cond, ok := err.(mat.Condition); !ok || math.IsInf(float64(cond), 1) {
				return it, chk.Err("cannot solve linear system at iteration %d:\n%v", it, err)
			}
			err = nil
		}

		// update primary variables (y)
		for i := 0; i < d.Ny; i++ {
			d.Y[i] += wb.AtVec(i) // y += δy
		}
	}

	// check if iterations diverged
	return it, chk.Err("max number of iterations reached: it = %d; largFb = %g", it, largFb)
}
