// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/ana"
	"github.com/cpmech/svkfem/msolid"
	"github.com/cpmech/svkfem/shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testCells holds distorted cells used in the element tests
var testCells = []struct {
	geo string
	x   [][]float64
}{
	{"tri3", [][]float64{
		{0, 2, 0.2},
		{0, 0.1, 1.8},
	}},
	{"tri6", [][]float64{
		{0, 2, 0.2, 1.0, 1.15, 0.1},
		{0, 0.1, 1.8, 0.0, 0.95, 0.9},
	}},
	{"qua4", [][]float64{
		{0, 1, 1.2, -0.1},
		{0, 0.1, 1, 0.9},
	}},
	{"qua8", [][]float64{
		{0, 2, 2.2, -0.1, 1.0, 2.15, 1.05, 0.0},
		{0, 0.1, 1.9, 2.0, 0.0, 1.0, 2.05, 1.0},
	}},
	{"qua9", [][]float64{
		{0, 2, 2.2, -0.1, 1.0, 2.15, 1.05, 0.0, 1.1},
		{0, 0.1, 1.9, 2.0, 0.0, 1.0, 2.05, 1.0, 1.05},
	}},
	{"tet4", [][]float64{
		{0, 1.1, 0.1, 0},
		{0, 0, 0.9, 0.1},
		{0, 0.1, 0, 1.2},
	}},
	{"hex8", [][]float64{
		{0, 1, 1.1, 0, 0, 1, 1.2, 0.1},
		{0, 0, 1, 1, 0, 0.1, 1, 1},
		{0, 0, 0, 0.1, 1, 1, 1.1, 1},
	}},
}

// newSvk returns an element assembler with E=1000 and ν=0.25
func newSvk(tst *testing.T, ndim int, greenLagrange bool) *ElemSvk {
	mdl, err := msolid.New("svk")
	require.NoError(tst, err)
	gl := 0.0
	if greenLagrange {
		gl = 1
	}
	svk := mdl.(*msolid.SaintVenant)
	err = svk.Init(ndim, dbf.Params{{N: "E", V: 1000}, {N: "nu", V: 0.25}, {N: "gl", V: gl}})
	require.NoError(tst, err)
	return NewElemSvk(svk)
}

// newVals returns the quadrature data of a cell whose vertices are numbered 0, 1, ..., nverts-1
func newVals(tst *testing.T, geo string, x [][]float64, nip int) *ElemVals {
	shape := shp.Get(geo, 1)
	require.NotNil(tst, shape)
	ips, err := shp.GetIps(geo, nip)
	require.NoError(tst, err)
	verts := make([]int, shape.Nverts)
	for i := range verts {
		verts[i] = i
	}
	vals, err := NewElemVals(0, shape, x, ips, verts)
	require.NoError(tst, err)
	return vals
}

// uniformU returns the nodal displacements corresponding to u = H x
func uniformU(sol ana.UniformGrad, x [][]float64) (U []float64) {
	ndim, nverts := len(x), len(x[0])
	U = make([]float64, 0, ndim*nverts)
	xm := make([]float64, ndim)
	for m := 0; m < nverts; m++ {
		for i := 0; i < ndim; i++ {
			xm[i] = x[i][m]
		}
		U = append(U, sol.Disp(xm)...)
	}
	return
}

// randomU returns random displacements in [-a, a]
func randomU(rnd *rand.Rand, n int, a float64) (U []float64) {
	U = make([]float64, n)
	for i := range U {
		U[i] = a * (2*rnd.Float64() - 1)
	}
	return
}

func Test_svk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk01. zero displacements")

	for _, gl := range []bool{false, true} {
		for _, cell := range testCells {
			e := newSvk(tst, len(cell.x), gl)
			vals := newVals(tst, cell.geo, cell.x, 0)
			U := make([]float64, vals.Ndof())
			chk.Float64(tst, cell.geo+": energy", 1e-17, e.Energy(vals, U), 0)
			chk.Array(tst, cell.geo+": F", 1e-17, e.ForceAll(vals, U), nil)
			chk.Array(tst, cell.geo+": σvm", 1e-17, e.VonMisesField(vals, U), nil)
		}
	}
}

func Test_svk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk02. uniform displacement gradient")

	H2 := [][]float64{{0.02, -0.03}, {0.05, -0.01}}
	H3 := [][]float64{{0.02, -0.03, 0.01}, {0.05, -0.01, 0.02}, {-0.04, 0.03, 0.015}}
	for _, gl := range []bool{false, true} {
		for _, cell := range testCells {
			ndim := len(cell.x)
			sol := ana.UniformGrad{H: H2}
			if ndim == 3 {
				sol.H = H3
			}
			e := newSvk(tst, ndim, gl)
			vals := newVals(tst, cell.geo, cell.x, 0)
			U := uniformU(sol, cell.x)
			if chk.Verbose {
				io.Pforan("%s (gl=%v)\n", cell.geo, gl)
			}

			// stress at every integration point
			for k := 0; k < vals.Nip(); k++ {
				sol.CheckStress(tst, e.StressAt(vals, k, U), e.Mdl.C, gl, 1e-10)
			}

			// energy = tr(σ·ε) * volume
			σ := sol.Stress(e.Mdl.C, gl)
			ε := sol.Strain(gl)
			var σε float64
			for i := 0; i < ndim; i++ {
				for j := 0; j < ndim; j++ {
					σε += σ[i][j] * ε[j][i]
				}
			}
			vol := floats.Sum(vals.Da)
			chk.Float64(tst, cell.geo+": energy", 1e-12, e.Energy(vals, U), σε*vol)

			// von Mises
			vm := e.VonMisesField(vals, U)
			for k := range vm {
				chk.Float64(tst, cell.geo+": σvm", 1e-10, vm[k], msolid.VonMises(σ))
			}
		}
	}
}

func Test_svk03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk03. automatic differentiation versus finite differences")

	rnd := rand.New(rand.NewSource(1234))
	for _, gl := range []bool{false, true} {
		for _, cell := range testCells {
			e := newSvk(tst, len(cell.x), gl)
			vals := newVals(tst, cell.geo, cell.x, 0)
			n := vals.Ndof()
			U := randomU(rnd, n, 0.05)

			// full tangent
			K := e.JacobianAll(vals, U)
			num := mat.NewDense(n, n, nil)
			fd.Jacobian(num, func(F, Ut []float64) {
				copy(F, e.ForceAll(vals, Ut))
			}, U, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
			if chk.Verbose {
				io.Pforan("%s (gl=%v): n=%d\n", cell.geo, gl, n)
			}
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					chk.AnaNum(tst, io.Sf("%s: K[%d][%d]", cell.geo, r, c), 1e-6, K[r][c], num.At(r, c), false)
				}
			}

			// single test function
			ndim := vals.Ndim
			for j := 0; j < vals.Nbasis(); j++ {
				J := e.Jacobian(vals, j, U)
				chk.IntAssert(len(J), n)
				f := e.Force(vals, j, U)
				chk.Array(tst, io.Sf("%s: f%d", cell.geo, j), 1e-13, f, e.ForceAll(vals, U)[j*ndim:(j+1)*ndim])
				for r := 0; r < n; r++ {
					for d := 0; d < ndim; d++ {
						chk.Float64(tst, io.Sf("%s: J%d[%d][%d]", cell.geo, j, r, d), 1e-13, J[r][d], K[j*ndim+d][r])
					}
				}
			}
		}
	}
}

func Test_svk04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk04. energy gradient and symmetry of tangent")

	rnd := rand.New(rand.NewSource(4321))
	for _, gl := range []bool{false, true} {
		for _, cell := range testCells {
			e := newSvk(tst, len(cell.x), gl)
			vals := newVals(tst, cell.geo, cell.x, 0)
			n := vals.Ndof()
			U := randomU(rnd, n, 0.1)

			// the energy tr(σ·ε) is twice the strain energy; thus ∂E/∂u = 2 F
			F := e.ForceAll(vals, U)
			floats.Scale(2, F)
			chk.Array(tst, cell.geo+": dEdu", 1e-10, e.EnergyGrad(vals, U), F)

			// K is the Hessian of E/2
			K := e.JacobianAll(vals, U)
			for r := 0; r < n; r++ {
				for c := r + 1; c < n; c++ {
					chk.Float64(tst, io.Sf("%s: K[%d][%d]", cell.geo, r, c), 1e-9, K[r][c], K[c][r])
				}
			}
		}
	}
}

func Test_svk05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk05. Green-Lagrange versus linear strains")

	cell := testCells[3]
	lin := newSvk(tst, 2, false)
	gl := newSvk(tst, 2, true)
	vals := newVals(tst, cell.geo, cell.x, 0)

	// rigid rotation: no strain with Green-Lagrange; spurious strain with linear strains
	θ := 0.3
	c, s := math.Cos(θ), math.Sin(θ)
	rot := ana.UniformGrad{H: [][]float64{{c - 1, -s}, {s, c - 1}}}
	U := uniformU(rot, cell.x)
	chk.Float64(tst, "E(gl)", 1e-10, gl.Energy(vals, U), 0)
	chk.Array(tst, "F(gl)", 1e-10, gl.ForceAll(vals, U), nil)
	assert.True(tst, lin.Energy(vals, U) > 1)

	// small displacements: both agree up to O(|u|²)
	rnd := rand.New(rand.NewSource(99))
	U = randomU(rnd, vals.Ndof(), 1e-7)
	Flin := lin.ForceAll(vals, U)
	Fgl := gl.ForceAll(vals, U)
	chk.Array(tst, "F", 1e-9, Fgl, Flin)

	// the linear tangent does not depend on U
	K0 := lin.JacobianAll(vals, make([]float64, vals.Ndof()))
	K1 := lin.JacobianAll(vals, randomU(rnd, vals.Ndof(), 0.1))
	chk.Deep2(tst, "K", 1e-10, K1, K0)
}

func Test_svk06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk06. pure shear")

	// u = γ y e_x  =>  εxy = γ/2  =>  σxy = μ γ
	γ := 0.01
	cell := testCells[2]
	e := newSvk(tst, 2, false)
	vals := newVals(tst, cell.geo, cell.x, 0)
	U := uniformU(ana.UniformGrad{H: [][]float64{{0, γ}, {0, 0}}}, cell.x)
	μ := e.Mdl.G
	for k, vm := range e.VonMisesField(vals, U) {
		chk.Deep2(tst, "σ", 1e-12, e.StressAt(vals, k, U), ana.PureShear(2, μ*γ))
		chk.Float64(tst, "σvm", 1e-12, vm, math.Sqrt(3)*μ*γ)
	}

	// sampling at arbitrary natural coordinates
	shape := shp.Get(cell.geo, 1)
	at, err := NewElemValsAt(0, shape, cell.x, [][]float64{{0.3, -0.2}, {-0.9, 0.9}}, []int{0, 1, 2, 3})
	require.NoError(tst, err)
	chk.Array(tst, "Da", 1e-17, at.Da, []float64{0, 0})
	chk.Array(tst, "σvm(at)", 1e-12, e.VonMisesField(at, U), []float64{math.Sqrt(3) * μ * γ, math.Sqrt(3) * μ * γ})
}

func Test_svk07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk07. many-to-one gather")

	cell := testCells[2]
	e := newSvk(tst, 2, true)
	vals := newVals(tst, cell.geo, cell.x, 0)

	// basis 0 is the average of global nodes 0 and 4
	vals.Basis[0].Global = []Gpair{{Index: 0, Val: 0.5}, {Index: 4, Val: 0.5}}
	U := []float64{0.01, 0.02, 0.03, -0.01, 0.0, 0.015, -0.02, 0.01, 0.05, 0.04}
	ul := e.Gather(vals, U)
	chk.Array(tst, "ul", 1e-15, ul, []float64{0.03, 0.03, 0.03, -0.01, 0.0, 0.015, -0.02, 0.01})

	// same as a single node holding the averaged values
	plain := newVals(tst, cell.geo, cell.x, 0)
	chk.Float64(tst, "energy", 1e-12, e.Energy(vals, U), e.Energy(plain, ul))
	chk.Array(tst, "F", 1e-10, e.ForceAll(vals, U), e.ForceAll(plain, ul))
}

func Test_svk08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk08. precondition violations")

	cell := testCells[2]
	e := newSvk(tst, 2, false)
	U := make([]float64, 8)

	// gradient rows differ from number of weights
	vals := newVals(tst, cell.geo, cell.x, 0)
	vals.Basis[1].Grad = vals.Basis[1].Grad[:2]
	assert.Panics(tst, func() { e.Energy(vals, U) })
	assert.Panics(tst, func() { e.Force(vals, 0, U) })
	assert.Panics(tst, func() { e.Jacobian(vals, 0, U) })
	assert.Panics(tst, func() { e.VonMisesField(vals, U) })

	// inverse Jacobians differ from number of weights
	vals = newVals(tst, cell.geo, cell.x, 0)
	vals.Da = vals.Da[:3]
	assert.Panics(tst, func() { e.Energy(vals, U) })

	// gradient with wrong number of columns
	vals = newVals(tst, cell.geo, cell.x, 0)
	vals.Basis[0].Grad[1] = []float64{1, 2, 3}
	assert.Panics(tst, func() { e.Energy(vals, U) })

	// space dimension differs from elasticity tensor
	vals = newVals(tst, testCells[6].geo, testCells[6].x, 0)
	assert.Panics(tst, func() { e.Energy(vals, make([]float64, 24)) })

	// displacements vector too short and invalid test function
	vals = newVals(tst, cell.geo, cell.x, 0)
	assert.Panics(tst, func() { e.Energy(vals, U[:6]) })
	assert.Panics(tst, func() { e.Force(vals, 4, U) })
	assert.Panics(tst, func() { e.Force(vals, -1, U) })

	// uninitialised model
	assert.Panics(tst, func() { NewElemSvk(new(msolid.SaintVenant)) })

	// singular geometry is an error, not a panic
	shape := shp.Get("qua4", 1)
	ips, _ := shp.GetIps("qua4", 0)
	_, err := NewElemVals(3, shape, [][]float64{{0, 1, 2, 3}, {0, 0, 0, 0}}, ips, []int{0, 1, 2, 3})
	assert.Error(tst, err)
	_, err = NewElemVals(3, shape, cell.x, ips, []int{0, 1, 2})
	assert.Error(tst, err)
}
