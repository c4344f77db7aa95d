// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// Calc_l_from_Enu computes the Lamé parameter λ from Young's modulus and Poisson's coefficient
func Calc_l_from_Enu(E, ν float64) float64 {
	return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu computes the shear modulus (Lamé μ) from Young's modulus and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_K_from_Enu computes the bulk modulus from Young's modulus and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_E_from_lG computes Young's modulus from the Lamé parameters
func Calc_E_from_lG(l, G float64) float64 {
	return G * (3.0*l + 2.0*G) / (l + G)
}

// Calc_nu_from_lG computes Poisson's coefficient from the Lamé parameters
func Calc_nu_from_lG(l, G float64) float64 {
	return l / (2.0 * (l + G))
}
