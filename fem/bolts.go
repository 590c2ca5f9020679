// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sort"

// BoltPositions returns the physical bolt positions (z, y) of the grid,
// centered on the plate centroid: start offsets are −(count−1)·spacing/2
// per axis
func BoltPositions(rows, cols int, rowSpacing, colSpacing float64) (pos [][]float64) {
	z0 := -float64(cols-1) * colSpacing / 2.0
	y0 := -float64(rows-1) * rowSpacing / 2.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos = append(pos, []float64{z0 + float64(c)*colSpacing, y0 + float64(r)*rowSpacing})
		}
	}
	return
}

// ApplyBoltConstraints maps each bolt to its nearest plate node and
// penalizes both diagonal stiffness terms of that node. Two bolts hitting
// the same node is allowed and idempotent: the node is constrained once.
// Force entries are left untouched; the penalty drives the displacement
// toward zero within matrix conditioning.
func (o *Domain) ApplyBoltConstraints() {
	b := o.Cfg.Bolts
	fixed := make(map[int]bool)
	for _, p := range BoltPositions(b.Rows, b.Cols, b.RowSpacing, b.ColSpacing) {
		fixed[o.Pm.NearestVert(p[0], p[1])] = true
	}
	o.FixedVids = o.FixedVids[:0]
	for vid := range fixed {
		o.FixedVids = append(o.FixedVids, vid)
	}
	sort.Ints(o.FixedVids)
	for _, vid := range o.FixedVids {
		for dof := 0; dof < 2; dof++ {
			r := o.Eq(vid, dof)
			o.K.Set(r, r, o.K.Get(r, r)*Penalty)
		}
	}
}
