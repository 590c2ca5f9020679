// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/seismostudio/desysbackend-sub001/msh"
)

// The beam, column and haunch meshes are not solved; their stress fields are
// approximated from the global utilization ratio with spatial decay. All
// coefficients below (0.7, 300, 0.4, 200, 0.6/0.4) are calibration constants
// matched to existing visual calibration; they are not derived quantities
// and must not be changed independently of the front end.

// BeamField approximates the beam stress: exponential decay with the axial
// distance z from the connection face, stress = 0.7·umax·exp(−z/300)
func BeamField(m *msh.Mesh, umax float64) (stress []float64) {
	stress = make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		stress[i] = 0.7 * umax * math.Exp(-v.C[0]/300.0)
	}
	return
}

// ColumnField approximates the column stress: peak at connection mid-height,
// stress = 0.4·umax·exp(−|z − L/2|/200) with L the column mesh length
func ColumnField(m *msh.Mesh, umax float64) (stress []float64) {
	L := m.AxialLength()
	stress = make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		stress[i] = 0.4 * umax * math.Exp(-math.Abs(v.C[0]-L/2.0)/200.0)
	}
	return
}

// HaunchField approximates the haunch stress: a linear benefit taper along
// the haunch length, stress = umax·(0.6 + 0.4·max(0, 1 − z/length)).
// Beyond the haunch tip the floor gives exactly 0.6·umax.
func HaunchField(m *msh.Mesh, umax, length float64) (stress []float64) {
	stress = make([]float64, len(m.Verts))
	for i, v := range m.Verts {
		taper := math.Max(0, 1.0-v.C[0]/length)
		stress[i] = umax * (0.6 + 0.4*taper)
	}
	return
}
