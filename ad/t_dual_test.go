// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dual"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// poly evaluates f(x) = x0*x1 + 3*x2*x2 - x0 + 0.5*x1*x2*x0 with the generic arithmetic
func poly[T Scalar[T]](x []T) T {
	a := x[0].Mul(x[1])
	b := x[2].Mul(x[2]).Scale(3)
	c := x[1].Mul(x[2]).Mul(x[0]).Scale(0.5)
	return a.Add(b).Sub(x[0]).Add(c)
}

// polyGonum evaluates the same function using gonum's single-direction dual numbers
func polyGonum(x []dual.Number) dual.Number {
	a := dual.Mul(x[0], x[1])
	b := dual.Scale(3, dual.Mul(x[2], x[2]))
	c := dual.Scale(0.5, dual.Mul(dual.Mul(x[1], x[2]), x[0]))
	return dual.Add(dual.Sub(dual.Add(a, b), x[0]), c)
}

func Test_dual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual01. arithmetic")

	a := Dual{V: 2, D: []float64{1, 0}}
	b := Dual{V: 3, D: []float64{0, 1}}

	s := a.Add(b)
	chk.Float64(tst, "a+b", 1e-17, s.V, 5)
	chk.Array(tst, "(a+b)'", 1e-17, s.D, []float64{1, 1})

	d := a.Sub(b)
	chk.Float64(tst, "a-b", 1e-17, d.V, -1)
	chk.Array(tst, "(a-b)'", 1e-17, d.D, []float64{1, -1})

	m := a.Mul(b)
	chk.Float64(tst, "a*b", 1e-17, m.V, 6)
	chk.Array(tst, "(a*b)'", 1e-17, m.D, []float64{3, 2})

	k := m.Scale(-2)
	chk.Float64(tst, "-2*a*b", 1e-17, k.V, -12)
	chk.Array(tst, "(-2*a*b)'", 1e-17, k.D, []float64{-6, -4})

	// zero value acts as additive identity and as a constant
	var z Dual
	chk.Array(tst, "(0+a)'", 1e-17, z.Add(a).D, a.D)
	chk.Array(tst, "(0-a)'", 1e-17, z.Sub(a).D, []float64{-1, 0})
	c := Dual{V: 4}
	chk.Array(tst, "(4*b)'", 1e-17, c.Mul(b).D, []float64{0, 4})
	chk.Array(tst, "(b*4)'", 1e-17, b.Mul(c).D, []float64{0, 4})
	chk.Float64(tst, "0*a", 1e-17, z.Mul(a).V, 0)
	assert.Nil(tst, z.Add(Dual{V: 1}).D)
	chk.Array(tst, "(a*c)'", 1e-17, a.Mul(a.Const(4)).D, []float64{4, 0})
	chk.Float64(tst, "Real(3)", 1e-17, Real(1).Const(3).Value(), 3)

	// inputs are not modified
	chk.Array(tst, "a'", 1e-17, a.D, []float64{1, 0})
	chk.Array(tst, "b'", 1e-17, b.D, []float64{0, 1})
}

func Test_dual02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual02. seeding versus gonum/dual")

	vals := []float64{1.5, -0.3, 2.2}
	x := Seed(vals)
	f := poly(x)

	// real evaluation gives the same value
	fr := poly(Reals(vals))
	chk.Float64(tst, "f", 1e-15, f.V, fr.Value())

	// one gonum pass per direction
	for k := range vals {
		xg := make([]dual.Number, len(vals))
		for i, v := range vals {
			xg[i] = dual.Number{Real: v}
		}
		xg[k].Emag = 1
		fg := polyGonum(xg)
		chk.Float64(tst, "f(gonum)", 1e-15, f.V, fg.Real)
		chk.AnaNum(tst, io.Sf("df/dx%d", k), 1e-14, f.Deriv(k), fg.Emag, chk.Verbose)
	}
}

func Test_dual03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual03. jacobian stacking")

	x := Seed([]float64{1, 2})
	out := []Dual{
		x[0].Mul(x[1]),           // f0 = x0 x1
		x[0].Mul(x[0]).Add(x[1]), // f1 = x0² + x1
		{V: 7},                   // constant
	}
	J := Jacobian(out, 2)
	chk.Deep2(tst, "J", 1e-17, J, [][]float64{
		{2, 2, 0},
		{1, 1, 0},
	})
	chk.Array(tst, "values", 1e-17, Values(out), []float64{2, 3, 7})

	assert.Panics(tst, func() { x[0].Add(NewDual(1, 3)) })
	assert.Panics(tst, func() { Jacobian(out, 3) })
}
