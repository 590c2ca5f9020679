// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the plane-stress finite-element solve of the end
// plate and the approximation of stress fields in the non-solved members
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/seismostudio/desysbackend-sub001/ele"
	"github.com/seismostudio/desysbackend-sub001/inp"
	"github.com/seismostudio/desysbackend-sub001/msh"
)

// Penalty is the factor applied to the diagonal stiffness terms of
// constrained DOFs. The penalty method keeps the system dimension unchanged
// and leaves a small residual displacement at "fixed" nodes; downstream
// calibration relies on this behavior, so it must not be replaced by
// row/column elimination.
const Penalty = 1e16

// Domain holds the transient global system of one plate solve. Each solve
// owns a private Domain; nothing here is shared.
type Domain struct {

	// input
	Cfg *inp.ConnectionConfig // connection configuration
	Pm  *msh.Mesh             // plate mesh

	// derived
	Tris    []*msh.Tri  // triangles from the fixed-diagonal quad split
	Vid2idx map[int]int // vertex id → position in Pm.Verts
	Ny      int         // total number of equations == 2 * nverts

	// global system
	K *la.Matrix // [Ny][Ny] global stiffness
	F la.Vector  // [Ny] force vector
	U la.Vector  // [Ny] solved displacements

	// constraints
	FixedVids []int // ids of constrained vertices (one per bolt, deduplicated)
}

// NewDomain builds the domain for one plate solve: triangulates the quads,
// numbers the equations and allocates the global system
func NewDomain(pm *msh.Mesh, cfg *inp.ConnectionConfig) (o *Domain, err error) {
	if len(pm.Verts) == 0 {
		return nil, chk.Err("plate mesh has no vertices")
	}
	o = new(Domain)
	o.Cfg = cfg
	o.Pm = pm
	o.Tris = pm.Triangulate()
	o.Vid2idx = make(map[int]int, len(pm.Verts))
	for i, v := range pm.Verts {
		if _, ok := o.Vid2idx[v.Id]; ok {
			return nil, chk.Err("duplicate vertex id %d in plate mesh", v.Id)
		}
		o.Vid2idx[v.Id] = i
	}
	o.Ny = 2 * len(pm.Verts)
	o.K = la.NewMatrix(o.Ny, o.Ny)
	o.F = la.NewVector(o.Ny)
	o.U = la.NewVector(o.Ny)
	return
}

// Eq returns the global equation number of one vertex DOF
// (dof: 0 == in-plane z, 1 == in-plane y)
func (o *Domain) Eq(vid, dof int) int {
	idx, ok := o.Vid2idx[vid]
	if !ok {
		chk.Panic("vertex id %d is not in the plate mesh", vid)
	}
	return 2*idx + dof
}

// Assemble computes the CST stiffness of every triangle and scatter-adds it
// into the global matrix. Contributions accumulate; they are never
// overwritten. A degenerate triangle aborts the assembly.
func (o *Domain) Assemble() (err error) {
	x := [][]float64{{0, 0, 0}, {0, 0, 0}}
	emat := o.Cfg.Materials.Plate
	for _, t := range o.Tris {

		// nodal coordinates [2][3]
		for m := 0; m < 3; m++ {
			v := o.Pm.Verts[o.Vid2idx[t.V[m]]]
			x[0][m] = v.C[0]
			x[1][m] = v.C[1]
		}

		// element stiffness
		cst, err := ele.NewCST(x, emat.E, o.Cfg.Plate.Thickness)
		if err != nil {
			return chk.Err("cannot form stiffness of triangle %d:\n%v", t.Id, err)
		}

		// scatter-add into K
		for i := 0; i < 6; i++ {
			r := o.Eq(t.V[i/2], i%2)
			for j := 0; j < 6; j++ {
				c := o.Eq(t.V[j/2], j%2)
				o.K.Set(r, c, o.K.Get(r, c)+cst.K[i][j])
			}
		}
	}
	return
}
