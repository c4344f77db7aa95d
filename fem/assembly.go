// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Element joins the quadrature data of one cell and its assembler
type Element struct {
	Vals *ElemVals // quadrature data
	Svk  *ElemSvk  // element assembler
}

// Assembler computes global quantities by scattering element contributions
//  Note: equations are numbered as node*ndim + component
type Assembler struct {
	Elems    []*Element // all elements
	Ndim     int        // space dimension
	Ny       int        // number of equations
	Nworkers int        // number of concurrent workers; 0 => 1
}

// Energy returns the total energy
func (o *Assembler) Energy(U []float64) (energy float64, err error) {
	bufs, err := o.run(1, func(_ int, e *Element, buf []float64) {
		buf[0] += e.Svk.Energy(e.Vals, U)
	})
	if err != nil {
		return
	}
	for _, b := range bufs {
		energy += b[0]
	}
	return
}

// Residual returns the global internal forces vector
func (o *Assembler) Residual(U []float64) (F []float64, err error) {
	bufs, err := o.run(o.Ny, func(_ int, e *Element, buf []float64) {
		o.scatterVec(buf, e, e.Svk.ForceAll(e.Vals, U))
	})
	if err != nil {
		return
	}
	F = make([]float64, o.Ny)
	for _, b := range bufs {
		floats.Add(F, b)
	}
	return
}

// Tangent returns the global tangent matrix K = ∂F/∂U
func (o *Assembler) Tangent(U []float64) (K *mat.Dense, err error) {
	bufs, err := o.run(o.Ny*o.Ny, func(_ int, e *Element, buf []float64) {
		o.scatterMat(buf, e, e.Svk.JacobianAll(e.Vals, U))
	})
	if err != nil {
		return
	}
	data := make([]float64, o.Ny*o.Ny)
	for _, b := range bufs {
		floats.Add(data, b)
	}
	K = mat.NewDense(o.Ny, o.Ny, data)
	return
}

// VonMises returns the von Mises stress at the integration points of all elements
//  vm[i][ip] where i is the position of the element in Elems
func (o *Assembler) VonMises(U []float64) (vm [][]float64, err error) {
	vm = make([][]float64, len(o.Elems))
	_, err = o.run(0, func(i int, e *Element, buf []float64) {
		vm[i] = e.Svk.VonMisesField(e.Vals, U)
	})
	if err != nil {
		return nil, err
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// run calls fcn for all elements using Nworkers goroutines. Each worker owns one buffer of
// length nbuf; a panic in an element stops the pass and is returned as an error
func (o *Assembler) run(nbuf int, fcn func(i int, e *Element, buf []float64)) (bufs [][]float64, err error) {
	nw := o.Nworkers
	if nw < 1 {
		nw = 1
	}
	if nw > len(o.Elems) {
		nw = len(o.Elems)
	}
	bufs = make([][]float64, nw)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(nw)
	for w := 0; w < nw; w++ {
		bufs[w] = make([]float64, nbuf)
		w := w
		g.Go(func() error {
			for i := w; i < len(o.Elems); i += nw {
				if ctx.Err() != nil {
					return nil
				}
				if err := o.call(i, bufs[w], fcn); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()
	return
}

// call runs fcn for one element and converts panics into errors
func (o *Assembler) call(i int, buf []float64, fcn func(i int, e *Element, buf []float64)) (err error) {
	e := o.Elems[i]
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("assembly failed at element %d:\n%v", e.Vals.Eid, r)
		}
	}()
	fcn(i, e, buf)
	return
}

// scatterVec adds the local vector fl to the global vector F
func (o *Assembler) scatterVec(F []float64, e *Element, fl []float64) {
	ndim := o.Ndim
	for i, b := range e.Vals.Basis {
		for _, p := range b.Global {
			for d := 0; d < ndim; d++ {
				F[p.Index*ndim+d] += p.Val * fl[i*ndim+d]
			}
		}
	}
}

// scatterMat adds the local matrix Kl to the global row-major matrix K
func (o *Assembler) scatterMat(K []float64, e *Element, Kl [][]float64) {
	ndim := o.Ndim
	for i, bi := range e.Vals.Basis {
		for _, pi := range bi.Global {
			for a := 0; a < ndim; a++ {
				I := pi.Index*ndim + a
				r := i*ndim + a
				for j, bj := range e.Vals.Basis {
					for _, pj := range bj.Global {
						for b := 0; b < ndim; b++ {
							J := pj.Index*ndim + b
							K[I*o.Ny+J] += pi.Val * pj.Val * Kl[r][j*ndim+b]
						}
					}
				}
			}
		}
	}
}
