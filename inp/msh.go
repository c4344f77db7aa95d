// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/svkfem/shp"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type (string)
	Verts []int  `json:"verts"` // vertices

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert    // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell    // cell tag => set of cells
	Ctype2cells   map[string][]*Cell // cell type => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	fnamepath := filepath.Join(dir, fn)
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q: %v", fnamepath, err)
	}

	// decode
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q: %v", fnamepath, err)
	}
	o.FnamePath = fnamepath
	err = o.init()
	return
}

// init checks the data just read and computes derived quantities
func (o *Mesh) init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("%s: mesh must have at least 2 vertices; %d is invalid", o.FnamePath, len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("%s: mesh must have at least 1 cell", o.FnamePath)
	}

	// vertex related derived data
	o.Ndim = 2
	if len(o.Verts[0].C) < 2 {
		return chk.Err("%s: vertex 0 must have at least 2 coordinates", o.FnamePath)
	}
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	if len(o.Verts[0].C) > 2 {
		o.Zmin = o.Verts[0].C[2]
	}
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.Zmax = o.Zmin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("%s: vertex ids must be sequential: vertex %d has id=%d", o.FnamePath, i, v.Id)
		}

		// ndim
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return chk.Err("%s: vertex %d has %d coordinates; 2 or 3 are required", o.FnamePath, i, nd)
		}
		if nd == 3 {
			if math.Abs(v.C[2]) > Ztol {
				o.Ndim = 3
			}
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		if nd > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return chk.Err("%s: cell ids must be sequential: cell %d has id=%d", o.FnamePath, i, c.Id)
		}
		if c.Tag >= 0 {
			return chk.Err("%s: cell tags must be negative: cell %d has tag=%d", o.FnamePath, i, c.Tag)
		}

		// shape structure
		c.Shp = shp.Get(c.Type, 0)
		if c.Shp == nil {
			return chk.Err("%s: cannot find shape %q of cell %d", o.FnamePath, c.Type, i)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("%s: cell %d (%s) has %d vertices; %d are required", o.FnamePath, i, c.Type, len(c.Verts), c.Shp.Nverts)
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("%s: cell %d refers to unknown vertex %d", o.FnamePath, i, vid)
			}
		}
		if c.Shp.Gndim == 3 {
			o.Ndim = 3
		}

		// maps
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)
	}

	// all cells must span the space
	for _, c := range o.Cells {
		if c.Shp.Gndim != o.Ndim {
			return chk.Err("%s: cell %d (%s) has gndim=%d but the mesh has ndim=%d", o.FnamePath, c.Id, c.Type, c.Shp.Gndim, o.Ndim)
		}
	}
	for _, v := range o.Verts {
		if len(v.C) < o.Ndim {
			return chk.Err("%s: vertex %d has %d coordinates; %d are required", o.FnamePath, v.Id, len(v.C), o.Ndim)
		}
	}
	return
}

// ExtractCellCoords extracts cell coordinates
//  x -- [ndim][nverts] coordinates matrix
func (o *Mesh) ExtractCellCoords(cid int) (x [][]float64) {
	c := o.Cells[cid]
	x = utl.Alloc(o.Ndim, len(c.Verts))
	for m, v := range c.Verts {
		for i := 0; i < o.Ndim; i++ {
			x[i][m] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
