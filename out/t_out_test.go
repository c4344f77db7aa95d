// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/fem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// runAndSave runs a simulation and saves its results in a temporary directory
func runAndSave(tst *testing.T, simfn string) (analysis *fem.FEM, dirout string) {
	analysis, err := fem.NewFEM(simfn, 0, true, chk.Verbose)
	require.NoError(tst, err)
	dirout = tst.TempDir()
	analysis.Sim.DirOut = dirout
	analysis.Summary.Dirout = dirout
	require.NoError(tst, analysis.Run())
	return
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. load results")

	simfn := "../fem/data/bar2x1gl.toml"
	analysis, dirout := runAndSave(tst, simfn)

	// start
	require.NoError(tst, Start(simfn, dirout))
	chk.IntAssert(Sum.Nsteps, 4)

	// define points
	require.NoError(tst, Define("corner", At{2, 1}))
	require.NoError(tst, Define("A B", Tag(-200)))
	require.NoError(tst, Define("right", Tag(-200)))
	assert.Error(tst, Define("none", At{5, 5}))
	assert.Error(tst, Define("", At{2, 1}))

	// load all steps
	require.NoError(tst, LoadResults(nil))
	assert.Equal(tst, []int{1, 2, 3, 4}, TimeInds)
	chk.Array(tst, "λ", 1e-17, Lambdas, analysis.Summary.Lambdas)

	// last step equals the final solution
	ux := GetRes("ux", "corner", -1)
	uy := GetRes("uy", "corner", -1)
	chk.IntAssert(len(ux), 4)
	chk.Float64(tst, "ux(corner)", 1e-17, ux[3], analysis.Dom.Y[5*2])
	chk.Float64(tst, "uy(corner)", 1e-17, uy[3], analysis.Dom.Y[5*2+1])
	for i := 1; i < 4; i++ {
		assert.True(tst, ux[i] > ux[i-1])
	}
	chk.Array(tst, "x(corner)", 1e-17, GetCoords("corner"), []float64{2, 1})
	assert.Equal(tst, []int{2}, GetIds("A"))
	assert.Equal(tst, []int{5}, GetIds("B"))

	// set of points: values at selected output index
	uxr := GetRes("ux", "right", 0)
	chk.IntAssert(len(uxr), 2)
	chk.Float64(tst, "ux(right)", 1e-12, uxr[0], uxr[1])
	assert.Panics(tst, func() { GetRes("uz", "corner", -1) })
	assert.Panics(tst, func() { GetCoords("right") })

	// von Mises stress is uniform
	vm := GetRes("vm", "right", -1)
	chk.Float64(tst, "vm", 1e-9, vm[0], vm[1])
	chk.Float64(tst, "vm", 1e-9, vm[0], analysis.Summary.MaxVonMises)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. plots and vtu")

	simfn := "../fem/data/cubegl.toml"
	analysis, dirout := runAndSave(tst, simfn)
	require.NoError(tst, Start(simfn, dirout))
	require.NoError(tst, Define("top", At{1, 1, 1}))
	require.NoError(tst, LoadResults(nil))

	// plots
	Splots, Csplot = nil, nil
	assert.Error(tst, Draw(dirout, "empty.png"))
	Splot("displacements")
	Plot("λ", "ux", "top", -1)
	Plot("λ", "uy", "top", -1)
	Splot("stress")
	Plot("λ", "vm", "top", -1)
	assert.Panics(tst, func() { Plot("λ", []float64{1}, "top", -1) })
	require.NoError(tst, Draw(dirout, "cubegl.png"))
	require.NoError(tst, PlotResid(Sum, dirout, Sim.Key))
	for _, fn := range []string{"cubegl.png", "cubegl_resid.png"} {
		info, err := os.Stat(filepath.Join(dirout, fn))
		require.NoError(tst, err)
		assert.True(tst, info.Size() > 0)
	}

	// vtu
	require.NoError(tst, WriteVtu(analysis.Dom, dirout, Sim.Key))
	b, err := os.ReadFile(filepath.Join(dirout, "cubegl.vtu"))
	require.NoError(tst, err)
	vtu := string(b)
	assert.True(tst, strings.HasPrefix(vtu, "<?xml"))
	assert.Contains(tst, vtu, "<Piece NumberOfPoints=\"8\" NumberOfCells=\"1\">")
	assert.Contains(tst, vtu, "Name=\"vm\"")
	assert.Contains(tst, vtu, "\n12 \n")
}
