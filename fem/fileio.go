// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveSol saves the displacements to a file which name is set with tidx (load step index)
func (o Domain) SaveSol(tidx int, λ float64, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)

	// encode load factor and displacements
	err = enc.Encode(λ)
	if err != nil {
		return chk.Err("cannot encode load factor\n%v", err)
	}
	err = enc.Encode(o.Y)
	if err != nil {
		return chk.Err("cannot encode Domain.Y\n%v", err)
	}

	// save file
	fn := out_nod_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads the displacements from a file which name is set with tidx (load step index)
func (o *Domain) ReadSol(dir, fnkey, enctype string, tidx int) (λ float64, err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&λ)
	if err != nil {
		return 0, chk.Err("cannot decode load factor\n%v", err)
	}
	var Y []float64
	err = dec.Decode(&Y)
	if err != nil {
		return 0, chk.Err("cannot decode Domain.Y\n%v", err)
	}
	if len(Y) != o.Ny {
		return 0, chk.Err("file %q has %d displacements; expected %d", fn, len(Y), o.Ny)
	}
	copy(o.Y, Y)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func out_sum_path(dir, fnkey, enctype string) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	err = os.MkdirAll(filepath.Dir(filename), 0777)
	if err != nil {
		return chk.Err("cannot create directory for %q:\n%v", filename, err)
	}
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
