// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate/quad"
)

// default number of integration points
var defaultNip = map[string]int{
	"lin2": 2,
	"tri3": 1,
	"tri6": 3,
	"qua4": 4,
	"qua8": 9,
	"qua9": 9,
	"tet4": 1,
	"hex8": 8,
}

// triangle rules {r, s, t, w}
var ipsTri = map[int][]Ipoint{
	1: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	},
	3: {
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	},
	6: {
		{0.091576213509771, 0.091576213509771, 0, 0.109951743655322 / 2.0},
		{0.816847572980459, 0.091576213509771, 0, 0.109951743655322 / 2.0},
		{0.091576213509771, 0.816847572980459, 0, 0.109951743655322 / 2.0},
		{0.445948490915965, 0.108103018168070, 0, 0.223381589678011 / 2.0},
		{0.445948490915965, 0.445948490915965, 0, 0.223381589678011 / 2.0},
		{0.108103018168070, 0.445948490915965, 0, 0.223381589678011 / 2.0},
	},
}

// tetrahedron rules {r, s, t, w}
var ipsTet = map[int][]Ipoint{
	1: {
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	},
	4: {
		{0.1381966011250105, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.5854101966249685, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.5854101966249685, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.1381966011250105, 0.5854101966249685, 1.0 / 24.0},
	},
}

// GetIps returns the integration points of a shape
//  nip -- number of integration points; use 0 to get the default for geoType
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		nip = defaultNip[geoType]
	}
	switch geoType {
	case "tri3", "tri6":
		return tableIps(geoType, ipsTri, nip)
	case "tet4":
		return tableIps(geoType, ipsTet, nip)
	}
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot find integration points for shape %q", geoType)
	}
	n := int(math.Round(math.Pow(float64(nip), 1.0/float64(s.Gndim))))
	if n < 1 || intPow(n, s.Gndim) != nip {
		return nil, chk.Err("%s: nip=%d is not a tensor-product number of points", geoType, nip)
	}
	return gaussLegendre(s.Gndim, n), nil
}

// gaussLegendre returns the n^gndim tensor-product Gauss-Legendre points over [-1,1]^gndim
func gaussLegendre(gndim, n int) (ips []Ipoint) {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	nt, ns := 1, 1
	if gndim > 1 {
		ns = n
	}
	if gndim > 2 {
		nt = n
	}
	for k := 0; k < nt; k++ {
		for j := 0; j < ns; j++ {
			for i := 0; i < n; i++ {
				ip := Ipoint{x[i], 0, 0, w[i]}
				if gndim > 1 {
					ip[1] = x[j]
					ip[3] *= w[j]
				}
				if gndim > 2 {
					ip[2] = x[k]
					ip[3] *= w[k]
				}
				ips = append(ips, ip)
			}
		}
	}
	return
}

func tableIps(geoType string, table map[int][]Ipoint, nip int) ([]Ipoint, error) {
	src, ok := table[nip]
	if !ok {
		return nil, chk.Err("%s: nip=%d is not available", geoType, nip)
	}
	ips := make([]Ipoint, len(src))
	for i, ip := range src {
		ips[i] = append(Ipoint{}, ip...)
	}
	return ips, nil
}

func intPow(a, b int) (res int) {
	res = 1
	for i := 0; i < b; i++ {
		res *= a
	}
	return
}
