// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msh implements the node-and-quad-element mesh shared by all
// connection parts and the splitting of quads into constant-strain triangles
package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data. C has two in-plane coordinates for the end plate
// and three coordinates for members, where C[0] is the distance along the
// member axis measured from the connection face (beam, haunch) or from the
// base (column).
type Vert struct {
	Id int       `json:"id"` // identifier; unique and stable within one mesh
	C  []float64 `json:"c"`  // coordinates [mm]
}

// Cell holds one quadrilateral element. The four vertex ids are stored in the
// winding order n0, n1, n3, n2: the third and fourth slots are swapped so
// that the splitting diagonal always connects V[0] and V[2] (n0–n3).
type Cell struct {
	Id int   `json:"id"` // identifier
	V  []int `json:"v"`  // [4] vertex ids in n0,n1,n3,n2 order
}

// Tri holds one constant-strain triangle derived from a quad split. It only
// lives during assembly and stress recovery; it is never serialized.
type Tri struct {
	Id int    // identifier
	V  [3]int // vertex ids
}

// Mesh holds the mesh of one connection part
type Mesh struct {
	Part  string  `json:"part"`  // part name: "plate", "beam", "column" or "haunch"
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // quadrilateral cells
}

// Triangulate splits the quad into its two triangles (n0,n1,n3) and
// (n0,n3,n2). The diagonal choice is fixed; it determines which triangles
// share an edge and therefore the nodal stress averaging.
func (o *Cell) Triangulate(firstId int) (a, b *Tri) {
	a = &Tri{Id: firstId, V: [3]int{o.V[0], o.V[1], o.V[2]}}
	b = &Tri{Id: firstId + 1, V: [3]int{o.V[0], o.V[2], o.V[3]}}
	return
}

// Triangulate splits every quad of the mesh, preserving cell order
func (o *Mesh) Triangulate() (tris []*Tri) {
	tris = make([]*Tri, 0, 2*len(o.Cells))
	for _, c := range o.Cells {
		a, b := c.Triangulate(2 * c.Id)
		tris = append(tris, a, b)
	}
	return
}

// NearestVert returns the id of the vertex nearest to the given in-plane
// position (exact linear scan; ties resolved to the lowest index)
func (o *Mesh) NearestVert(z, y float64) (vid int) {
	if len(o.Verts) == 0 {
		chk.Panic("NearestVert requires a non-empty mesh")
	}
	vid = o.Verts[0].Id
	dmin := math.Inf(1)
	for _, v := range o.Verts {
		dz := v.C[0] - z
		dy := v.C[1] - y
		d := dz*dz + dy*dy
		if d < dmin {
			dmin = d
			vid = v.Id
		}
	}
	return
}

// AxialLength returns the extent of the mesh along the member axis (C[0])
func (o *Mesh) AxialLength() (L float64) {
	if len(o.Verts) == 0 {
		return 0
	}
	lo, hi := o.Verts[0].C[0], o.Verts[0].C[0]
	for _, v := range o.Verts {
		if v.C[0] < lo {
			lo = v.C[0]
		}
		if v.C[0] > hi {
			hi = v.C[0]
		}
	}
	return hi - lo
}
