// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/fem"
	"gonum.org/v1/gonum/stat"
)

// vtkCodes maps geometry types to VTK cell types
var vtkCodes = map[string]int{
	"lin2": 3,
	"tri3": 5,
	"tri6": 22,
	"qua4": 9,
	"qua8": 23,
	"qua9": 28,
	"tet4": 10,
	"hex8": 12,
}

// WriteVtu writes the mesh with the current displacements and the von Mises stress averaged
// over the integration points of each cell to dirout/fnkey.vtu (ParaView format)
func WriteVtu(dom *fem.Domain, dirout, fnkey string) (err error) {

	// buffers
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	// generate topology
	err = topology(geo, dom)
	if err != nil {
		return
	}

	// points data
	pdata_write(dat, dom)

	// cells data
	vm, err := dom.VonMises()
	if err != nil {
		return
	}
	cdata_write(dat, dom, vm)

	// write vtu file
	return vtu_write(dirout, fnkey, len(dom.Msh.Verts), len(dom.Msh.Cells), geo, dat)
}

// headers and footers ///////////////////////////////////////////////////////////////////////////////

func vtu_write(dirout, fnkey string, nv, nc int, geo, dat *bytes.Buffer) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	buf.Write(geo.Bytes())
	buf.Write(dat.Bytes())
	io.Ff(&buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".vtu")
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err == nil && io.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func topology(buf *bytes.Buffer, dom *fem.Domain) (err error) {

	// coordinates
	ndim := dom.Msh.Ndim
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	var z float64
	for _, v := range dom.Msh.Verts {
		if ndim == 3 {
			z = v.C[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range dom.Msh.Cells {
		for _, v := range c.Verts {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets of elements
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range dom.Msh.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types of elements
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range dom.Msh.Cells {
		vtkcode, ok := vtkCodes[c.Type]
		if !ok {
			return chk.Err("cannot handle cell type %q", c.Type)
		}
		io.Ff(buf, "%d ", vtkcode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
	return
}

// points data /////////////////////////////////////////////////////////////////////////////////////

func pdata_write(buf *bytes.Buffer, dom *fem.Domain) {

	// open
	ndim := dom.Msh.Ndim
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range dom.Msh.Verts {
		io.Ff(buf, "%d ", v.Id)
	}

	// positive tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range dom.Msh.Verts {
		io.Ff(buf, "%d ", iabs(v.Tag))
	}

	// displacements
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range dom.Msh.Verts {
		var u [3]float64
		copy(u[:], dom.Y[v.Id*ndim:(v.Id+1)*ndim])
		io.Ff(buf, "%23.15e %23.15e %23.15e ", u[0], u[1], u[2])
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

func cdata_write(buf *bytes.Buffer, dom *fem.Domain, vm [][]float64) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range dom.Msh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}

	// cells positive tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range dom.Msh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}

	// von Mises stress
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"vm\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for i := range dom.Msh.Cells {
		io.Ff(buf, "%23.15e ", stat.Mean(vm[i], nil))
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}

func iabs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
