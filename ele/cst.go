// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements the 3-node constant-strain triangle (CST) for
// plane-stress analysis of the end plate
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Poisson is the Poisson coefficient of plate steel. It is a fixed property
// of the formulation, not a per-element input.
const Poisson = 0.3

// atol is the smallest acceptable magnitude of twice the signed area
const atol = 1e-12

// CST implements a linear triangle with 2 in-plane displacement DOFs per
// node. Strain and stress are constant over the element, hence the stiffness
// needs no numerical integration.
type CST struct {

	// basic data
	X     [][]float64 // [2][3] matrix of nodal coordinates [ndim][nnode]
	E     float64     // Young's modulus
	Thick float64     // plate thickness

	// derived
	A float64     // signed area
	B [][]float64 // [3][6] strain-displacement matrix
	D [][]float64 // [3][3] plane-stress constitutive matrix
	K [][]float64 // [6][6] stiffness matrix

	// scratchpad
	eps []float64 // [3] strains @ centroid
	sig []float64 // [3] stresses @ centroid
}

// NewCST returns a new element for the given nodal coordinates x ([2][3]),
// Young's modulus and thickness. A degenerate (zero or near-zero area)
// triangle is an error: the mesh provider must guarantee sound geometry and
// this element does not repair it.
func NewCST(x [][]float64, e, thick float64) (o *CST, err error) {

	// check
	if len(x) != 2 || len(x[0]) != 3 || len(x[1]) != 3 {
		chk.Panic("CST requires a [2][3] coordinates matrix")
	}

	// basic data
	o = new(CST)
	o.X = x
	o.E = e
	o.Thick = thick

	// signed area from the nodal coordinates
	a2 := x[0][0]*(x[1][1]-x[1][2]) + x[0][1]*(x[1][2]-x[1][0]) + x[0][2]*(x[1][0]-x[1][1])
	if math.Abs(a2) < atol {
		return nil, chk.Err("degenerate triangle: area=%g is too small", a2/2.0)
	}
	o.A = a2 / 2.0

	// B: shape-function derivatives over the signed area
	b1, b2, b3 := x[1][1]-x[1][2], x[1][2]-x[1][0], x[1][0]-x[1][1]
	c1, c2, c3 := x[0][2]-x[0][1], x[0][0]-x[0][2], x[0][1]-x[0][0]
	o.B = [][]float64{
		{b1, 0, b2, 0, b3, 0},
		{0, c1, 0, c2, 0, c3},
		{c1, b1, c2, b2, c3, b3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			o.B[i][j] /= a2
		}
	}

	// D: plane-stress constitutive matrix
	ν := Poisson
	f := o.E / (1.0 - ν*ν)
	o.D = [][]float64{
		{f, f * ν, 0},
		{f * ν, f, 0},
		{0, 0, f * (1.0 - ν) / 2.0},
	}

	// K = t·|A|·Bᵀ·D·B
	o.K = utl.Alloc(6, 6)
	coef := o.Thick * math.Abs(o.A)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					o.K[i][j] += coef * o.B[k][i] * o.D[k][l] * o.B[l][j]
				}
			}
		}
	}

	// scratchpad
	o.eps = make([]float64, 3)
	o.sig = make([]float64, 3)
	return
}

// Stress computes the centroid stresses (sx, sy, txy) for the given element
// displacement vector u = [u0z, u0y, u1z, u1y, u2z, u2y]
func (o *CST) Stress(u []float64) (sx, sy, txy float64) {
	for i := 0; i < 3; i++ {
		o.eps[i] = 0
		for j := 0; j < 6; j++ {
			o.eps[i] += o.B[i][j] * u[j]
		}
	}
	for i := 0; i < 3; i++ {
		o.sig[i] = 0
		for j := 0; j < 3; j++ {
			o.sig[i] += o.D[i][j] * o.eps[j]
		}
	}
	return o.sig[0], o.sig[1], o.sig[2]
}

// CombinedStress computes the scalar in-plane stress measure used for nodal
// averaging: the plane-stress equivalent stress at the element centroid
func (o *CST) CombinedStress(u []float64) float64 {
	sx, sy, txy := o.Stress(u)
	return math.Sqrt(sx*sx + sy*sy - sx*sy + 3.0*txy*txy)
}
