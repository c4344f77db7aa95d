// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// newDomain reads a simulation file from the data directory and allocates its domain
func newDomain(tst *testing.T, simfn string, nworkers int) *Domain {
	sim, err := ReadSimulation("data/"+simfn, nworkers)
	require.NoError(tst, err)
	dom, err := NewDomain(sim)
	require.NoError(tst, err)
	return dom
}

func Test_asm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm01. serial versus concurrent assembly")

	rnd := rand.New(rand.NewSource(2015))
	for _, simfn := range []string{"bar2x1gl.toml", "cubegl.toml"} {
		serial := newDomain(tst, simfn, 1)
		U := randomU(rnd, serial.Ny, 0.05)

		E1, err := serial.Asm.Energy(U)
		require.NoError(tst, err)
		F1, err := serial.Asm.Residual(U)
		require.NoError(tst, err)
		K1, err := serial.Asm.Tangent(U)
		require.NoError(tst, err)
		V1, err := serial.Asm.VonMises(U)
		require.NoError(tst, err)

		for _, nw := range []int{2, 3, 8} {
			if chk.Verbose {
				io.Pforan("%s: nworkers = %d\n", simfn, nw)
			}
			conc := newDomain(tst, simfn, nw)
			chk.IntAssert(conc.Asm.Nworkers, nw)
			E2, err := conc.Asm.Energy(U)
			require.NoError(tst, err)
			F2, err := conc.Asm.Residual(U)
			require.NoError(tst, err)
			K2, err := conc.Asm.Tangent(U)
			require.NoError(tst, err)
			V2, err := conc.Asm.VonMises(U)
			require.NoError(tst, err)
			chk.Float64(tst, "energy", 1e-12, E2, E1)
			chk.Array(tst, "F", 1e-12, F2, F1)
			assert.True(tst, mat.EqualApprox(K1, K2, 1e-10))
			chk.Deep2(tst, "σvm", 1e-12, V2, V1)
		}
	}
}

func Test_asm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm02. global gradients")

	rnd := rand.New(rand.NewSource(1))
	for _, simfn := range []string{"bar2x1.toml", "bar2x1gl.toml", "cubegl.toml"} {
		dom := newDomain(tst, simfn, 2)
		U := randomU(rnd, dom.Ny, 0.05)

		// F = ½ ∂E/∂U
		F, err := dom.Asm.Residual(U)
		require.NoError(tst, err)
		dEdU := make([]float64, dom.Ny)
		fd.Gradient(dEdU, func(x []float64) float64 {
			e, err := dom.Asm.Energy(x)
			require.NoError(tst, err)
			return e / 2
		}, U, &fd.Settings{Formula: fd.Central, Step: 1e-6})
		chk.Array(tst, simfn+": F", 1e-5, F, dEdU)

		// K = ∂F/∂U
		K, err := dom.Asm.Tangent(U)
		require.NoError(tst, err)
		num := mat.NewDense(dom.Ny, dom.Ny, nil)
		fd.Jacobian(num, func(y, x []float64) {
			f, err := dom.Asm.Residual(x)
			require.NoError(tst, err)
			copy(y, f)
		}, U, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
		assert.True(tst, mat.EqualApprox(K, num, 1e-5))
		assert.True(tst, mat.EqualApprox(K, K.T(), 1e-9))
	}
}

func Test_asm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm03. weighted global nodes")

	// basis 1 of the right cell is shared by vertices 2 and 4; the residual
	// is the transpose of the gather operation applied to the element forces
	dom := newDomain(tst, "bar2x1gl.toml", 2)
	e := dom.Asm.Elems[1]
	e.Vals.Basis[1].Global = []Gpair{{Index: 2, Val: 0.5}, {Index: 4, Val: 0.5}}
	U := randomU(rand.New(rand.NewSource(3)), dom.Ny, 0.05)

	F, err := dom.Asm.Residual(U)
	require.NoError(tst, err)
	f0 := dom.Asm.Elems[0].Svk.ForceAll(dom.Asm.Elems[0].Vals, U)
	f1 := e.Svk.ForceAll(e.Vals, U)
	Fref := make([]float64, dom.Ny)
	for i, v := range []int{0, 1, 4, 3} {
		floats.Add(Fref[v*2:v*2+2], f0[i*2:i*2+2])
	}
	for i, v := range []int{1, 2, 5, 4} {
		if i == 1 {
			floats.AddScaled(Fref[2*2:2*2+2], 0.5, f1[i*2:i*2+2])
			floats.AddScaled(Fref[4*2:4*2+2], 0.5, f1[i*2:i*2+2])
			continue
		}
		floats.Add(Fref[v*2:v*2+2], f1[i*2:i*2+2])
	}
	chk.Array(tst, "F", 1e-12, F, Fref)

	// the tangent remains the derivative of the residual
	K, err := dom.Asm.Tangent(U)
	require.NoError(tst, err)
	num := mat.NewDense(dom.Ny, dom.Ny, nil)
	fd.Jacobian(num, func(y, x []float64) {
		f, err := dom.Asm.Residual(x)
		require.NoError(tst, err)
		copy(y, f)
	}, U, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
	assert.True(tst, mat.EqualApprox(K, num, 1e-5))
}

func Test_asm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm04. errors")

	dom := newDomain(tst, "bar2x1.toml", 2)
	U := make([]float64, dom.Ny)

	// corrupted element
	dom.Asm.Elems[1].Vals.Da = dom.Asm.Elems[1].Vals.Da[:1]
	_, err := dom.Asm.Energy(U)
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "element 1")
	_, err = dom.Asm.Residual(U)
	assert.Error(tst, err)
	_, err = dom.Asm.Tangent(U)
	assert.Error(tst, err)
	_, err = dom.Asm.VonMises(U)
	assert.Error(tst, err)

	// short displacements vector
	dom = newDomain(tst, "bar2x1.toml", 1)
	_, err = dom.Asm.Residual(U[:10])
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "element 1")

	// empty assembler
	var asm Assembler
	E, err := asm.Energy(nil)
	require.NoError(tst, err)
	chk.Float64(tst, "E", 1e-17, E, 0)
}
