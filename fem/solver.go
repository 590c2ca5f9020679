// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/seismostudio/desysbackend-sub001/ele"
)

// Solve runs the dense LU factorization with forward/back substitution on
// the full system K·U = F. A singular or ill-conditioned K (e.g. an
// unconstrained mesh) is not detected here beyond what the factorization
// itself produces; callers should check the result for finiteness.
func (o *Domain) Solve() {
	la.DenSolve(o.U, o.K, o.F, false)
}

// RecoverStress computes one combined plane-stress value per triangle at its
// centroid, averages over the triangles sharing each node (plain arithmetic
// mean) and normalizes by the plate yield stress. The returned slice is
// aligned with Pm.Verts; a node referenced by no triangle keeps stress 0.
func (o *Domain) RecoverStress() (stress []float64, err error) {
	n := len(o.Pm.Verts)
	sum := make([]float64, n)
	cnt := make([]int, n)
	x := [][]float64{{0, 0, 0}, {0, 0, 0}}
	u := make([]float64, 6)
	emat := o.Cfg.Materials.Plate
	for _, t := range o.Tris {

		// element coordinates and displacements
		for m := 0; m < 3; m++ {
			v := o.Pm.Verts[o.Vid2idx[t.V[m]]]
			x[0][m] = v.C[0]
			x[1][m] = v.C[1]
			u[2*m] = o.U[o.Eq(t.V[m], 0)]
			u[2*m+1] = o.U[o.Eq(t.V[m], 1)]
		}

		// combined stress @ centroid
		cst, err := ele.NewCST(x, emat.E, o.Cfg.Plate.Thickness)
		if err != nil {
			return nil, chk.Err("cannot recover stress of triangle %d:\n%v", t.Id, err)
		}
		s := cst.CombinedStress(u)

		// accumulate at the three nodes
		for m := 0; m < 3; m++ {
			idx := o.Vid2idx[t.V[m]]
			sum[idx] += s
			cnt[idx]++
		}
	}

	// nodal mean, normalized by the yield stress
	stress = make([]float64, n)
	for i := 0; i < n; i++ {
		if cnt[i] > 0 {
			stress[i] = sum[i] / float64(cnt[i]) / emat.Fy
		}
	}
	return
}
