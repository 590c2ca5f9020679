// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/seismostudio/desysbackend-sub001/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. plate mesh generation and winding")

	m := PlateMesh(100, 200, 2, 2)
	chk.Int(tst, "nverts", len(m.Verts), 9)
	chk.Int(tst, "ncells", len(m.Cells), 4)

	// centered on the centroid
	chk.Array(tst, "vert0", 1e-15, m.Verts[0].C, []float64{-50, -100})
	chk.Array(tst, "vert8", 1e-15, m.Verts[8].C, []float64{50, 100})
	chk.Array(tst, "vert4", 1e-15, m.Verts[4].C, []float64{0, 0})

	// winding order n0,n1,n3,n2: third slot holds the diagonal corner
	chk.Ints(tst, "cell0", m.Cells[0].V, []int{0, 1, 4, 3})
	chk.Ints(tst, "cell3", m.Cells[3].V, []int{4, 5, 8, 7})
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. fixed-diagonal triangulation")

	m := PlateMesh(100, 100, 1, 1)
	tris := m.Triangulate()
	chk.Int(tst, "ntris", len(tris), 2)
	chk.Ints(tst, "tri a", []int{tris[0].V[0], tris[0].V[1], tris[0].V[2]}, []int{0, 1, 3})
	chk.Ints(tst, "tri b", []int{tris[1].V[0], tris[1].V[1], tris[1].V[2]}, []int{0, 3, 2})
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. nearest vertex is exact")

	m := PlateMesh(100, 100, 4, 4)
	chk.Int(tst, "corner", m.NearestVert(-49, -51), 0)
	chk.Int(tst, "center", m.NearestVert(1, 1), 12)
	chk.Int(tst, "snap to node", m.NearestVert(-25, 0), 11)
}

func Test_mesh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh04. member and haunch meshes")

	b := MemberMesh("beam", 300, 1500, 10, 4)
	chk.Int(tst, "beam nverts", len(b.Verts), 11*5)
	chk.Float64(tst, "beam axial length", 1e-13, b.AxialLength(), 1500)
	chk.Float64(tst, "beam starts at face", 1e-15, b.Verts[0].C[0], 0)

	h := HaunchMesh(1000, 150, 10, 2)
	chk.Float64(tst, "haunch axial length", 1e-13, h.AxialLength(), 1000)
	// depth tapers from full at the face to zero at the tip
	chk.Float64(tst, "haunch root depth", 1e-13, h.Verts[2*11].C[1], -150)
	chk.Float64(tst, "haunch tip depth", 1e-13, h.Verts[3*11-1].C[1], 0)
}

func Test_mesh05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh05. haunch-extended plate height")

	cfg := &inp.ConnectionConfig{}
	cfg.Plate = inp.PlateData{Width: 150, Height: 400, Thickness: 15}
	cfg.Beam = inp.SectionData{Depth: 300, Width: 150, Length: 1500}
	cfg.Column = inp.SectionData{Depth: 200, Width: 200, Length: 3000}
	cfg.Haunch = inp.HaunchData{Enabled: true, Length: 1000, Depth: 150}
	cfg.SetDefault()

	plate, beam, column, haunch := ForConnection(cfg)
	lo, hi := plate.Verts[0].C[1], plate.Verts[0].C[1]
	for _, v := range plate.Verts {
		if v.C[1] < lo {
			lo = v.C[1]
		}
		if v.C[1] > hi {
			hi = v.C[1]
		}
	}
	chk.Float64(tst, "plate height extended", 1e-12, hi-lo, 550)
	chk.Float64(tst, "beam length", 1e-12, beam.AxialLength(), 1500)
	chk.Float64(tst, "column length", 1e-12, column.AxialLength(), 3000)
	if haunch == nil {
		tst.Errorf("haunch mesh must be generated when the haunch is enabled\n")
		return
	}

	// haunch disabled → no haunch mesh
	cfg.Haunch.Enabled = false
	_, _, _, haunch = ForConnection(cfg)
	if haunch != nil {
		tst.Errorf("haunch mesh must be nil when the haunch is disabled\n")
	}
}
