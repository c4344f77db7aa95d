// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// add shapes to factory
func init() {
	register("lin2", FuncLin2, [][]float64{
		{-1, 1},
	})
	register("tri3", FuncTri3, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	})
	register("tri6", FuncTri6, [][]float64{
		{0, 1, 0, 0.5, 0.5, 0},
		{0, 0, 1, 0, 0.5, 0.5},
	})
	register("qua4", FuncQua4, [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	})
	register("qua8", FuncQua8, [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1},
		{-1, -1, 1, 1, -1, 0, 1, 0},
	})
	register("qua9", FuncQua9, [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1, 0},
		{-1, -1, 1, 1, -1, 0, 1, 0, 0},
	})
	register("tet4", FuncTet4, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	register("hex8", FuncHex8, [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	})
}

// FuncLin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//   -1     0    +1
//    0-----------1-->r
func FuncLin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// FuncTri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    s
//    |
//    2
//    |`.
//    |  `.
//    0-----1 --> r
func FuncTri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// FuncTri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    s
//    |
//    2
//    | `.
//    5   4
//    |     `.
//    0---3---1 --> r
func FuncTri6(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	l := 1.0 - r - s
	S[0] = l * (2.0*l - 1.0)
	S[1] = r * (2.0*r - 1.0)
	S[2] = s * (2.0*s - 1.0)
	S[3] = 4.0 * l * r
	S[4] = 4.0 * r * s
	S[5] = 4.0 * s * l
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = 1.0-4.0*l, 1.0-4.0*l
	dSdR[1][0], dSdR[1][1] = 4.0*r-1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 4.0*s-1.0
	dSdR[3][0], dSdR[3][1] = 4.0*(l-r), -4.0*r
	dSdR[4][0], dSdR[4][1] = 4.0*s, 4.0*r
	dSdR[5][0], dSdR[5][1] = -4.0*s, 4.0*(l-s)
}

// FuncQua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    0-----------1
func FuncQua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = (-1.0+s)/4.0, (-1.0+r)/4.0
	dSdR[1][0], dSdR[1][1] = (+1.0-s)/4.0, (-1.0-r)/4.0
	dSdR[2][0], dSdR[2][1] = (+1.0+s)/4.0, (+1.0+r)/4.0
	dSdR[3][0], dSdR[3][1] = (-1.0-s)/4.0, (+1.0-r)/4.0
}

// FuncQua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua8
// (serendipity) elements at {r,s,t} natural coordinates. The derivatives are calculated only if
// derivs==true.
//
//    3-----6-----2
//    |     s     |
//    |     |     |
//    7     +--r  5
//    |           |
//    0-----4-----1
func FuncQua8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	for m := 0; m < 4; m++ {
		rm, sm := qua8nat[0][m], qua8nat[1][m]
		S[m] = (1.0 + r*rm) * (1.0 + s*sm) * (r*rm + s*sm - 1.0) / 4.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + s*sm) * (2.0*r*rm + s*sm) / 4.0
			dSdR[m][1] = sm * (1.0 + r*rm) * (r*rm + 2.0*s*sm) / 4.0
		}
	}
	for m := 4; m < 8; m++ {
		rm, sm := qua8nat[0][m], qua8nat[1][m]
		if rm == 0 {
			S[m] = (1.0 - r*r) * (1.0 + s*sm) / 2.0
			if derivs {
				dSdR[m][0] = -r * (1.0 + s*sm)
				dSdR[m][1] = sm * (1.0 - r*r) / 2.0
			}
			continue
		}
		S[m] = (1.0 + r*rm) * (1.0 - s*s) / 2.0
		if derivs {
			dSdR[m][0] = rm * (1.0 - s*s) / 2.0
			dSdR[m][1] = -s * (1.0 + r*rm)
		}
	}
}

var qua8nat = [][]float64{
	{-1, 1, 1, -1, 0, 1, 0, -1},
	{-1, -1, 1, 1, -1, 0, 1, 0},
}

// FuncQua9 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua9
// (Lagrange) elements at {r,s,t} natural coordinates. The derivatives are calculated only if
// derivs==true.
//
//    3-----6-----2
//    |     s     |
//    |     |     |
//    7     8--r  5
//    |           |
//    0-----4-----1
func FuncQua9(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	for m := 0; m < 9; m++ {
		rm, sm := qua9nat[0][m], qua9nat[1][m]
		lr, dlr := lagrange3(r, rm)
		ls, dls := lagrange3(s, sm)
		S[m] = lr * ls
		if derivs {
			dSdR[m][0] = dlr * ls
			dSdR[m][1] = lr * dls
		}
	}
}

var qua9nat = [][]float64{
	{-1, 1, 1, -1, 0, 1, 0, -1, 0},
	{-1, -1, 1, 1, -1, 0, 1, 0, 0},
}

// lagrange3 returns the 1D quadratic Lagrange polynomial associated with node xm ∈ {-1,0,1}
// and its derivative, both evaluated at x
func lagrange3(x, xm float64) (l, dl float64) {
	switch {
	case xm < 0:
		return x * (x - 1.0) / 2.0, x - 0.5
	case xm > 0:
		return x * (x + 1.0) / 2.0, x + 0.5
	}
	return 1.0 - x*x, -2.0 * x
}

// FuncTet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//  Nodes: 0:(0,0,0)  1:(1,0,0)  2:(0,1,0)  3:(0,0,1)
func FuncTet4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	S[0] = 1.0 - r - s - t
	S[1] = r
	S[2] = s
	S[3] = t
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
}

// FuncHex8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex8
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//              4________________7
//            ,'|              ,'|
//          ,'  |            ,'  |
//        ,'    |          ,'    |
//      ,'      |        ,'      |
//    5'===============6'        |
//    |         |      |         |
//    |         |      |         |
//    |         0_____ | ________3
//    |       ,'       |       ,'
//    |     ,'         |     ,'
//    |   ,'           |   ,'
//    | ,'             | ,'
//    1________________2'
func FuncHex8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	for m := 0; m < 8; m++ {
		rm, sm, tm := hex8nat[0][m], hex8nat[1][m], hex8nat[2][m]
		S[m] = (1.0 + r*rm) * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
			dSdR[m][1] = sm * (1.0 + r*rm) * (1.0 + t*tm) / 8.0
			dSdR[m][2] = tm * (1.0 + r*rm) * (1.0 + s*sm) / 8.0
		}
	}
}

var hex8nat = [][]float64{
	{-1, 1, 1, -1, -1, 1, 1, -1},
	{-1, -1, 1, 1, -1, -1, 1, 1},
	{-1, -1, -1, -1, 1, 1, 1, 1},
}
