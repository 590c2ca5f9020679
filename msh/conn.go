// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/seismostudio/desysbackend-sub001/inp"

// ForConnection generates the meshes of all parts of one connection. The
// plate height is extended by the haunch depth when the haunch is enabled;
// the haunch mesh is nil otherwise.
func ForConnection(cfg *inp.ConnectionConfig) (plate, beam, column, haunch *Mesh) {
	ph := cfg.Plate.Height
	if cfg.Haunch.Enabled {
		ph += cfg.Haunch.Depth
	}
	plate = PlateMesh(cfg.Plate.Width, ph, cfg.Mesh.PlateNz, cfg.Mesh.PlateNy)
	beam = MemberMesh("beam", cfg.Beam.Depth, cfg.Beam.Length, cfg.Mesh.MemberNl, cfg.Mesh.MemberNd)
	column = MemberMesh("column", cfg.Column.Depth, cfg.Column.Length, cfg.Mesh.MemberNl, cfg.Mesh.MemberNd)
	if cfg.Haunch.Enabled {
		haunch = HaunchMesh(cfg.Haunch.Length, cfg.Haunch.Depth, cfg.Mesh.MemberNl, cfg.Mesh.MemberNd)
	}
	return
}
