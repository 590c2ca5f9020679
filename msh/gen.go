// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/chk"

// grid appends the cells of a structured (n1+1)×(n2+1) vertex grid to the
// mesh. Vertices must be numbered row-major: id = j*(n1+1) + i. Each cell
// stores its corners in the n0,n1,n3,n2 winding required by Triangulate.
func grid(m *Mesh, n1, n2 int) {
	for j := 0; j < n2; j++ {
		for i := 0; i < n1; i++ {
			a := j*(n1+1) + i // lower-left
			b := a + 1        // lower-right
			c := a + n1 + 1   // upper-left
			d := c + 1        // upper-right
			m.Cells = append(m.Cells, &Cell{Id: j*n1 + i, V: []int{a, b, d, c}})
		}
	}
}

// PlateMesh generates the end-plate mesh: a structured quad grid centered on
// the plate centroid, with C[0]=z spanning the width and C[1]=y spanning the
// height
func PlateMesh(width, height float64, nz, ny int) *Mesh {
	if nz < 1 || ny < 1 {
		chk.Panic("PlateMesh requires nz ≥ 1 and ny ≥ 1 (nz=%d, ny=%d)", nz, ny)
	}
	m := &Mesh{Part: "plate"}
	dz, dy := width/float64(nz), height/float64(ny)
	z0, y0 := -width/2.0, -height/2.0
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nz; i++ {
			m.Verts = append(m.Verts, &Vert{
				Id: j*(nz+1) + i,
				C:  []float64{z0 + float64(i)*dz, y0 + float64(j)*dy},
			})
		}
	}
	grid(m, nz, ny)
	return m
}

// MemberMesh generates a longitudinal strip mesh for a beam or column
// member: C[0] runs along the member axis from the connection face (beam) or
// the base (column), C[1] spans the section depth, C[2] is zero (web plane)
func MemberMesh(part string, depth, length float64, nl, nd int) *Mesh {
	if nl < 1 || nd < 1 {
		chk.Panic("MemberMesh requires nl ≥ 1 and nd ≥ 1 (nl=%d, nd=%d)", nl, nd)
	}
	m := &Mesh{Part: part}
	dx, dy := length/float64(nl), depth/float64(nd)
	for j := 0; j <= nd; j++ {
		for i := 0; i <= nl; i++ {
			m.Verts = append(m.Verts, &Vert{
				Id: j*(nl+1) + i,
				C:  []float64{float64(i) * dx, -depth/2.0 + float64(j)*dy, 0},
			})
		}
	}
	grid(m, nl, nd)
	return m
}

// HaunchMesh generates the haunch strip mesh: C[0] runs along the haunch from
// the connection face, C[1] tapers linearly from the full haunch depth (below
// the beam soffit) to zero at the haunch tip. The tip column collapses to a
// line; haunch meshes are never solved, only painted by the estimator.
func HaunchMesh(length, depth float64, nl, nd int) *Mesh {
	if nl < 1 || nd < 1 {
		chk.Panic("HaunchMesh requires nl ≥ 1 and nd ≥ 1 (nl=%d, nd=%d)", nl, nd)
	}
	m := &Mesh{Part: "haunch"}
	dx := length / float64(nl)
	for j := 0; j <= nd; j++ {
		for i := 0; i <= nl; i++ {
			x := float64(i) * dx
			h := depth * (1.0 - x/length)
			m.Verts = append(m.Verts, &Vert{
				Id: j*(nl+1) + i,
				C:  []float64{x, -h * float64(j) / float64(nd), 0},
			})
		}
	}
	grid(m, nl, nd)
	return m
}
