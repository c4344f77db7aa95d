// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/svkfem/inp"
)

// Point holds the results at one vertex
type Point struct {
	Vid  int                  // vertex id
	X    []float64            // coordinates
	Vals map[string][]float64 // [nsel] values of each key at selected output indices
}

// Points is a set of points
type Points []*Point

// Locator defines interface for locators
type Locator interface {
	Locate() Points
}

// At implements locator at point
type At []float64

// Locate finds the vertex at given coordinates
func (o At) Locate() Points {
	for _, v := range Dom.Msh.Verts {
		if len(v.C) != len(o) {
			continue
		}
		var d float64
		for i, x := range o {
			d = math.Max(d, math.Abs(v.C[i]-x))
		}
		if d < TolC {
			return Points{newPoint(v)}
		}
	}
	return nil
}

// Tag implements locator of all vertices with given tag
type Tag int

// Locate finds all vertices with given tag
func (o Tag) Locate() (res Points) {
	for _, v := range Dom.Msh.VertTag2verts[int(o)] {
		res = append(res, newPoint(v))
	}
	return
}

// Define defines aliases
//  alias -- an alias to a group of points, an individual point, or to a set of points.
//           Example: "A", "right-face" or "a b c". If the number of points found is different
//           than the number of aliases, a group is created.
func Define(alias string, loc Locator) (err error) {

	// check
	if len(alias) < 1 {
		return chk.Err("alias must have at least one character. %q is invalid", alias)
	}

	// locate points
	pts := loc.Locate()
	if len(pts) < 1 {
		return chk.Err("cannot define entities with alias=%q and locator=%v", alias, loc)
	}

	// set results map
	lbls := strings.Fields(alias)
	if len(lbls) > 1 && len(lbls) == len(pts) {
		for i, l := range lbls {
			Results[l] = Points{pts[i]}
		}
		return
	}
	Results[alias] = pts
	return
}

// LoadResults loads all results after points are defined
//  tidxs -- selected output indices (load steps); use nil to select all steps
func LoadResults(tidxs []int) (err error) {

	// selected output indices
	if tidxs == nil {
		for tidx := 1; tidx <= Sum.Nsteps; tidx++ {
			tidxs = append(tidxs, tidx)
		}
	}

	// for each selected output index
	keys := inp.DofKeys(Dom.Msh.Ndim)
	for _, tidx := range tidxs {

		// input results into domain
		λ, err := Dom.ReadSol(Sim.DirOut, Sim.Key, Sim.EncType, tidx)
		if err != nil {
			return chk.Err("cannot load results of step %d into domain:\n%v", tidx, err)
		}
		TimeInds = append(TimeInds, tidx)
		Lambdas = append(Lambdas, λ)

		// for each point
		for _, pts := range Results {
			for _, p := range pts {
				for i, key := range keys {
					p.Vals[key] = append(p.Vals[key], Dom.Y[p.Vid*len(keys)+i])
				}
				vm, err := Dom.VonMisesAt(p.X)
				if err != nil {
					return err
				}
				p.Vals["vm"] = append(p.Vals["vm"], vm)
			}
		}
	}
	return
}

// GetRes gets results as a time or space series corresponding to a given alias
// for a single point or set of points.
//  idxI -- index in TimeInds slice corresponding to selected output index; use -1 for the last item.
//          If alias defines a single point, the whole series is returned and idxI is ignored.
func GetRes(key, alias string, idxI int) []float64 {
	if idxI < 0 {
		idxI = len(TimeInds) - 1
	}
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			if v, ok := pts[0].Vals[key]; ok {
				return v
			}
		} else {
			var res []float64
			for _, p := range pts {
				if v, ok := p.Vals[key]; ok {
					res = append(res, v[idxI])
				}
			}
			if len(res) > 0 {
				return res
			}
		}
	}
	chk.Panic("cannot get %q at %q", key, alias)
	return nil
}

// GetIds return the vertex ids corresponding to alias
func GetIds(alias string) (vids []int) {
	for _, p := range Results[alias] {
		vids = append(vids, p.Vid)
	}
	return
}

// GetCoords returns the coordinates of a single point
func GetCoords(alias string) []float64 {
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			return pts[0].X
		}
	}
	chk.Panic("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
	return nil
}

func newPoint(v *inp.Vert) *Point {
	return &Point{Vid: v.Id, X: v.C, Vals: make(map[string][]float64)}
}
