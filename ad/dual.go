// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements forward-mode automatic differentiation with dual numbers
package ad

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Scalar defines the arithmetic needed by the assembly kernels. Both plain
// reals and dual numbers satisfy it, so a single kernel serves both passes.
type Scalar[T any] interface {
	Add(b T) T         // a + b
	Sub(b T) T         // a - b
	Mul(b T) T         // a * b
	Scale(s float64) T // s * a
	Const(v float64) T // constant v with zero derivatives
	Value() float64    // real part
}

// Real is a plain float64 satisfying Scalar
type Real float64

func (a Real) Add(b Real) Real      { return a + b }
func (a Real) Sub(b Real) Real      { return a - b }
func (a Real) Mul(b Real) Real      { return a * b }
func (a Real) Scale(s float64) Real { return Real(s) * a }
func (a Real) Const(v float64) Real { return Real(v) }
func (a Real) Value() float64       { return float64(a) }

// Dual holds a value and the partial derivatives of this value with respect to n variables
//  Note: D == nil means all derivatives are zero; thus Dual{} is the additive identity
type Dual struct {
	V float64   // value
	D []float64 // [n] derivatives
}

// NewDual returns a dual number with value v and n zero derivatives
func NewDual(v float64, n int) Dual {
	return Dual{V: v, D: make([]float64, n)}
}

// Add returns a + b
func (a Dual) Add(b Dual) Dual {
	res := Dual{V: a.V + b.V}
	switch {
	case a.D == nil && b.D == nil:
	case a.D == nil:
		res.D = clone(b.D)
	case b.D == nil:
		res.D = clone(a.D)
	default:
		checkLen(a.D, b.D)
		res.D = make([]float64, len(a.D))
		floats.AddTo(res.D, a.D, b.D)
	}
	return res
}

// Sub returns a - b
func (a Dual) Sub(b Dual) Dual {
	res := Dual{V: a.V - b.V}
	switch {
	case a.D == nil && b.D == nil:
	case a.D == nil:
		res.D = make([]float64, len(b.D))
		floats.AddScaled(res.D, -1, b.D)
	case b.D == nil:
		res.D = clone(a.D)
	default:
		checkLen(a.D, b.D)
		res.D = make([]float64, len(a.D))
		floats.SubTo(res.D, a.D, b.D)
	}
	return res
}

// Mul returns a * b with (a b)' = a' b + a b'
func (a Dual) Mul(b Dual) Dual {
	res := Dual{V: a.V * b.V}
	switch {
	case a.D == nil && b.D == nil:
	case a.D == nil:
		res.D = make([]float64, len(b.D))
		floats.AddScaled(res.D, a.V, b.D)
	case b.D == nil:
		res.D = make([]float64, len(a.D))
		floats.AddScaled(res.D, b.V, a.D)
	default:
		checkLen(a.D, b.D)
		res.D = make([]float64, len(a.D))
		floats.AddScaled(res.D, b.V, a.D)
		floats.AddScaled(res.D, a.V, b.D)
	}
	return res
}

// Scale returns s * a
func (a Dual) Scale(s float64) Dual {
	res := Dual{V: s * a.V}
	if a.D != nil {
		res.D = make([]float64, len(a.D))
		floats.AddScaled(res.D, s, a.D)
	}
	return res
}

// Const returns a constant with value v; i.e. all derivatives are zero
func (a Dual) Const(v float64) Dual { return Dual{V: v} }

// Value returns the real part
func (a Dual) Value() float64 { return a.V }

// Deriv returns ∂a/∂x_i
func (a Dual) Deriv(i int) float64 {
	if a.D == nil {
		return 0
	}
	return a.D[i]
}

// Seed converts values into dual numbers whose derivative vectors are the unit
// vectors of their own positions; i.e. ∂x_i/∂x_j = δ_ij
func Seed(values []float64) (x []Dual) {
	n := len(values)
	x = make([]Dual, n)
	for i, v := range values {
		x[i] = NewDual(v, n)
		x[i].D[i] = 1
	}
	return
}

// Reals converts values into Real numbers
func Reals(values []float64) (x []Real) {
	x = make([]Real, len(values))
	for i, v := range values {
		x[i] = Real(v)
	}
	return
}

// Values extracts the real parts of x
func Values[T Scalar[T]](x []T) (v []float64) {
	v = make([]float64, len(x))
	for i, a := range x {
		v[i] = a.Value()
	}
	return
}

// Jacobian stacks the derivative vectors of out into J[n][len(out)] such that
// J[k][c] = ∂out_c/∂x_k
func Jacobian(out []Dual, n int) (J [][]float64) {
	J = make([][]float64, n)
	for k := 0; k < n; k++ {
		J[k] = make([]float64, len(out))
	}
	for c, a := range out {
		if a.D == nil {
			continue
		}
		if len(a.D) != n {
			chk.Panic("ad: derivative vector of output %d has length %d; expected %d", c, len(a.D), n)
		}
		for k := 0; k < n; k++ {
			J[k][c] = a.D[k]
		}
	}
	return
}

func clone(a []float64) []float64 {
	b := make([]float64, len(a))
	copy(b, a)
	return b
}

func checkLen(a, b []float64) {
	if len(a) != len(b) {
		chk.Panic("ad: derivative vectors have different lengths: %d != %d", len(a), len(b))
	}
}
