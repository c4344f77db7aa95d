// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	Nsteps      int         // number of load steps performed
	Lambdas     []float64   // [nsteps] load factors
	Iters       []int       // [nsteps] number of iterations of each step
	Resids      [][]float64 // [nsteps][nit] largest absolute component of the residual vector
	Energy      float64     // final total energy
	MaxVonMises float64     // final largest von Mises stress at integration points
	Dirout      string      // directory where results are stored
	Fnkey       string      // filename key of simulation
	EncType     string      // encoding type
}

// AppendResid records the residual of an iteration; first indicates the first iteration of a step
func (o *Summary) AppendResid(first bool, largFb float64) {
	if first {
		o.Resids = append(o.Resids, []float64{largFb})
		return
	}
	last := len(o.Resids) - 1
	o.Resids[last] = append(o.Resids[last], largFb)
}

// Save saves summary to disc
func (o Summary) Save(verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.EncType)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return
	}

	// save file
	fn := out_sum_path(o.Dirout, o.Fnkey, o.EncType)
	return save_file(fn, &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode summary
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, err
	}
	return
}
