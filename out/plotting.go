// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/fem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label; e.g. "λ"
	Ylbl  string    // vertical axis label; e.g. "ux"
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Data  []*PltEntity // data to be plotted
}

// subplots
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// Plot plots data
//  xHandle -- can be a string, e.g. "λ" or a slice, e.g. pc = []float64{0, 1, 2}
//  yHandle -- can be a string, e.g. "ux" or a slice, e.g. sl = []float64{0, 1, 2}
//  alias   -- alias such as "corner"
//  idxI    -- index of output step; use -1 for the last one
func Plot(xHandle, yHandle interface{}, alias string, idxI int) {
	var e PltEntity
	e.Alias = alias
	e.X, e.Xlbl = get_vals_and_labels(xHandle, alias, idxI)
	e.Y, e.Ylbl = get_vals_and_labels(yHandle, alias, idxI)
	if len(e.X) != len(e.Y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, x=%v, y=%v", len(e.X), len(e.Y), xHandle, yHandle)
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &e)
}

// Draw saves figure with all subplots stacked vertically
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.png
func Draw(dirout, fname string) (err error) {
	nplots := len(Splots)
	if nplots == 0 {
		return chk.Err("there are no subplots to draw")
	}
	plots := make([][]*plot.Plot, nplots)
	for k, s := range Splots {
		p := plot.New()
		p.Title.Text = s.Title
		for i, d := range s.Data {
			if i == 0 {
				p.X.Label.Text = d.Xlbl
				p.Y.Label.Text = d.Ylbl
			}
			err = addLine(p, i, d.Alias, d.X, d.Y)
			if err != nil {
				return
			}
		}
		plots[k] = []*plot.Plot{p}
	}
	return saveTiles(plots, dirout, fname)
}

// PlotResid plots the convergence curves log10(largFb) versus iteration index of all load steps
// and the number of iterations of each step
func PlotResid(sum *fem.Summary, dirout, fnkey string) (err error) {

	// convergence curves
	pc := plot.New()
	pc.Title.Text = "convergence"
	pc.X.Label.Text = "iteration index"
	pc.Y.Label.Text = "log10(R)"
	for i, r := range sum.Resids {
		x := make([]float64, len(r))
		y := make([]float64, len(r))
		for j, v := range r {
			x[j] = float64(j)
			y[j] = math.Log10(math.Max(v, math.SmallestNonzeroFloat64))
		}
		err = addLine(pc, i, io.Sf("step %d", i+1), x, y)
		if err != nil {
			return
		}
	}

	// iterations
	iters := sum.Iters
	vals := make(plotter.Values, len(iters))
	for i, n := range iters {
		vals[i] = float64(n)
	}
	pi := plot.New()
	pi.X.Label.Text = "load step index"
	pi.Y.Label.Text = "number of iterations"
	bars, err := plotter.NewBarChart(vals, vg.Points(10))
	if err != nil {
		return chk.Err("cannot create bar chart:\n%v", err)
	}
	bars.Color = plotutil.Color(0)
	pi.Add(bars)

	// save
	return saveTiles([][]*plot.Plot{{pc}, {pi}}, dirout, fnkey+"_resid.png")
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func get_vals_and_labels(handle interface{}, alias string, idxI int) ([]float64, string) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, io.Sf("%s-type", alias)
	case string:
		switch hnd {
		case "λ":
			return Lambdas, "λ"
		case "x", "y", "z":
			i := map[string]int{"x": 0, "y": 1, "z": 2}[hnd]
			var res []float64
			for _, p := range Results[alias] {
				res = append(res, p.X[i])
			}
			return res, hnd
		}
		return GetRes(hnd, alias, idxI), hnd
	}
	chk.Panic("cannot get values slice with handle = %v", handle)
	return nil, ""
}

func addLine(p *plot.Plot, i int, label string, x, y []float64) (err error) {
	xys := make(plotter.XYs, len(x))
	for j := range x {
		xys[j].X, xys[j].Y = x[j], y[j]
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return chk.Err("cannot create line %q:\n%v", label, err)
	}
	line.Color = plotutil.Color(i)
	points.Color = plotutil.Color(i)
	points.Shape = plotutil.Shape(i)
	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return
}

func saveTiles(plots [][]*plot.Plot, dirout, fname string) (err error) {
	nr := len(plots)
	img := vgimg.New(vg.Points(400), vg.Points(300*float64(nr)))
	dc := draw.New(img)
	t := draw.Tiles{Rows: nr, Cols: 1, PadTop: vg.Points(5), PadBottom: vg.Points(5), PadY: vg.Points(15)}
	canvases := plot.Align(plots, t, dc)
	for j := 0; j < nr; j++ {
		plots[j][0].Draw(canvases[j][0])
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(fil)
	if err == nil && io.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}
