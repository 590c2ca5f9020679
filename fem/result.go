// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/seismostudio/desysbackend-sub001/inp"
	"github.com/seismostudio/desysbackend-sub001/mdl"
	"github.com/seismostudio/desysbackend-sub001/msh"
)

// PartResult holds the mesh of one connection part together with its
// normalized nodal stress. The stress slice is aligned with Mesh.Verts; the
// mesh itself is never mutated.
type PartResult struct {
	Part   string    `json:"part"`   // part name
	Mesh   *msh.Mesh `json:"mesh"`   // part mesh (as provided)
	Stress []float64 `json:"stress"` // [nverts] stress normalized by fy
}

// Result holds the full outcome of one connection analysis. An invalid
// result still carries the timestamp, the config snapshot and the capacity
// summary, but no meshes.
type Result struct {
	Time     time.Time             `json:"time"`     // completion instant
	Meshes   []*PartResult         `json:"meshes"`   // all parts with stress
	IsValid  bool                  `json:"isValid"`  // solver ran to completion
	Config   *inp.ConnectionConfig `json:"config"`   // snapshot of the input
	Capacity *mdl.Summary          `json:"capacity"` // capacity-solver passthrough
}
