// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// mulKu returns K·u
func mulKu(K [][]float64, u []float64) (v []float64) {
	v = make([]float64, len(K))
	for i := range K {
		for j := range u {
			v[i] += K[i][j] * u[j]
		}
	}
	return
}

func Test_cst01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cst01. stiffness symmetry and zero-energy modes")

	// unit right triangle
	x := [][]float64{{0, 1, 0}, {0, 0, 1}}
	o, err := NewCST(x, 200000, 10)
	if err != nil {
		tst.Errorf("NewCST failed: %v\n", err)
		return
	}
	chk.Float64(tst, "area", 1e-15, o.A, 0.5)

	// symmetry
	KT := utl.Alloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			KT[i][j] = o.K[j][i]
		}
	}
	chk.Deep2(tst, "K == Kᵀ", 1e-6, o.K, KT)

	// rigid-body modes produce no force
	zero := make([]float64, 6)
	tx := []float64{1, 0, 1, 0, 1, 0}
	ty := []float64{0, 1, 0, 1, 0, 1}
	rot := []float64{0, 0, 0, 1, -1, 0} // u=(-y, x) at the three nodes
	chk.Array(tst, "K·tx", 1e-6, mulKu(o.K, tx), zero)
	chk.Array(tst, "K·ty", 1e-6, mulKu(o.K, ty), zero)
	chk.Array(tst, "K·rot", 1e-6, mulKu(o.K, rot), zero)

	// no negative energy for arbitrary displacement patterns
	for _, u := range [][]float64{
		{1, 0, 0, 0, 0, 0},
		{0.3, -0.1, 0.7, 0.2, -0.5, 0.9},
		{-1, 2, 0.5, -0.25, 3, 1},
	} {
		f := mulKu(o.K, u)
		energy := 0.0
		for i := range u {
			energy += u[i] * f[i]
		}
		if energy < -1e-9 {
			tst.Errorf("negative strain energy: %g\n", energy)
			return
		}
	}
}

func Test_cst02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cst02. degenerate triangle is an error")

	// colinear nodes
	x := [][]float64{{0, 1, 2}, {0, 1, 2}}
	_, err := NewCST(x, 200000, 10)
	if err == nil {
		tst.Errorf("expected an error for a zero-area triangle\n")
		return
	}
	io.Pf("err = %v\n", err)
}

func Test_cst03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cst03. uniform strain patch and stress recovery")

	// unit right triangle with pure εx = 0.001
	E := 200000.0
	x := [][]float64{{0, 1, 0}, {0, 0, 1}}
	o, err := NewCST(x, E, 10)
	if err != nil {
		tst.Errorf("NewCST failed: %v\n", err)
		return
	}
	u := []float64{0, 0, 0.001, 0, 0, 0}
	sx, sy, txy := o.Stress(u)
	f := E / (1.0 - Poisson*Poisson)
	chk.Float64(tst, "sx", 1e-9, sx, f*0.001)
	chk.Float64(tst, "sy", 1e-9, sy, f*Poisson*0.001)
	chk.Float64(tst, "txy", 1e-12, txy, 0)

	// combined measure
	correct := math.Sqrt(sx*sx + sy*sy - sx*sy)
	chk.Float64(tst, "combined", 1e-9, o.CombinedStress(u), correct)

	// pure shear γ = 0.002
	u = []float64{0, 0, 0, 0, 0.002, 0}
	sx, sy, txy = o.Stress(u)
	chk.Float64(tst, "sx shear", 1e-12, sx, 0)
	chk.Float64(tst, "sy shear", 1e-12, sy, 0)
	chk.Float64(tst, "txy shear", 1e-9, txy, f*(1.0-Poisson)/2.0*0.002)
	chk.Float64(tst, "combined shear", 1e-9, o.CombinedStress(u), math.Sqrt(3.0)*math.Abs(txy))
}
