// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ApplyLoads converts the applied moment and shear into equivalent nodal
// forces over the plate nodes lying strictly inside the beam footprint.
// The moment (input kN·m) acts in N·mm and the shear (kN) in N. The moment
// is distributed in proportion to the nodal distance from the plate centroid
// (Fy = M·y/Σy²) and the shear uniformly over the selected nodes. An empty
// footprint leaves the system unloaded; a zero Σy² falls back to one.
func (o *Domain) ApplyLoads() {

	// select nodes strictly inside the beam footprint
	bw, bd := o.Cfg.Beam.Width, o.Cfg.Beam.Depth
	var sel []int // vertex ids
	sumYY := 0.0
	for _, v := range o.Pm.Verts {
		z, y := v.C[0], v.C[1]
		if z > -bw/2.0 && z < bw/2.0 && y > -bd/2.0 && y < bd/2.0 {
			sel = append(sel, v.Id)
			sumYY += y * y
		}
	}
	if len(sel) == 0 {
		return
	}
	if sumYY == 0 {
		sumYY = 1
	}

	// distribute moment and shear over the vertical DOF
	m := o.Cfg.Loads.Moment * 1e6 // [N·mm]
	s := o.Cfg.Loads.Shear * 1e3  // [N]
	for _, vid := range sel {
		y := o.Pm.Verts[o.Vid2idx[vid]].C[1]
		o.F[o.Eq(vid, 1)] += m*y/sumYY + s/float64(len(sel))
	}
}
