// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the empirical connection-capacity model. It yields
// the global utilization ratio consumed by the stress estimator of the
// non-solved members; it does not perform any finite-element work.
package mdl

import (
	"math"

	"github.com/seismostudio/desysbackend-sub001/inp"
)

// Check holds the outcome of one component check
type Check struct {
	Name     string  `json:"name"`     // component name
	Demand   float64 `json:"demand"`   // acting force [kN] or moment [kN·m]
	Capacity float64 `json:"capacity"` // resistance in the same unit
	Util     float64 `json:"util"`     // demand/capacity ratio
}

// Global holds the governing utilization of the whole connection
type Global struct {
	MaxUtil float64 `json:"maxUtil"` // governing (maximum) utilization ratio
}

// Summary holds the full output of the capacity evaluation
type Summary struct {
	Global Global  `json:"global"` // governing result
	Checks []Check `json:"checks"` // per-component results
}

// CapacitySolver evaluates the closed-form capacity of one connection.
// The interface lets an external evaluator replace the built-in model.
type CapacitySolver interface {
	Evaluate(cfg *inp.ConnectionConfig) *Summary
}

// ConnectionCapacity implements the built-in capacity model with partial
// factors following the European convention
type ConnectionCapacity struct {
	GamM0 float64 // partial factor for member resistance
	GamM2 float64 // partial factor for bolts and welds
}

// NewConnectionCapacity returns the built-in model with default factors
func NewConnectionCapacity() *ConnectionCapacity {
	return &ConnectionCapacity{GamM0: 1.0, GamM2: 1.25}
}

// Evaluate runs all component checks and returns the summary. The governing
// utilization is the maximum over all checks.
func (o *ConnectionCapacity) Evaluate(cfg *inp.ConnectionConfig) *Summary {

	// lever arm of the tension bolt group; the haunch deepens the
	// compression side and thus stretches the lever arm
	lever := cfg.Beam.Depth - cfg.Beam.Tf // [mm]
	if cfg.Haunch.Enabled {
		lever += cfg.Haunch.Depth
	}

	// bolt-row tension: the top row carries the moment couple
	m := cfg.Loads.Moment * 1e6                          // [N·mm]
	v := cfg.Loads.Shear * 1e3                           // [N]
	trow := m / lever                                    // tension in top row [N]
	tbolt := trow / float64(cfg.Bolts.Cols)              // per bolt [N]
	as := 0.78 * math.Pi * cfg.Bolts.Diameter * cfg.Bolts.Diameter / 4.0 // tensile stress area [mm²]
	ftrd := 0.9 * cfg.Bolts.Fub * as / o.GamM2           // bolt tension resistance [N]
	boltCheck := newCheck("bolt-row tension", tbolt/1e3, ftrd/1e3)

	// end-plate bending: plastic resistance of a plate strip spanning the
	// bolt gauge, loaded by the bolt-row tension
	gauge := cfg.Bolts.ColSpacing
	if cfg.Bolts.Cols < 2 {
		gauge = cfg.Plate.Width / 2.0
	}
	mpl := cfg.Plate.Width * cfg.Plate.Thickness * cfg.Plate.Thickness / 4.0 * cfg.Materials.Plate.Fy / o.GamM0 // [N·mm]
	mact := trow * gauge / 4.0                                                                                 // [N·mm]
	plateCheck := newCheck("end-plate bending", mact/1e6, mpl/1e6)

	// beam-web shear: shear area of the web only
	avBeam := (cfg.Beam.Depth - 2.0*cfg.Beam.Tf) * cfg.Beam.Tw
	vrdBeam := avBeam * cfg.Materials.Beam.Fy / (math.Sqrt(3.0) * o.GamM0)
	beamShear := newCheck("beam-web shear", v/1e3, vrdBeam/1e3)

	// column-web panel shear: the moment couple shears the column web panel
	avCol := (cfg.Column.Depth - 2.0*cfg.Column.Tf) * cfg.Column.Tw
	vrdCol := 0.9 * avCol * cfg.Materials.Column.Fy / (math.Sqrt(3.0) * o.GamM0)
	panelShear := newCheck("column-web panel shear", (m/lever)/1e3, vrdCol/1e3)

	// flange-weld shear (throat a = 0.7·s with s = plate thickness/2,
	// simplified correlation fvw = fu/√3/βw·γ)
	s := cfg.Plate.Thickness / 2.0
	a := 0.7 * s
	lw := 2.0 * cfg.Beam.Width
	fvw := cfg.Materials.Beam.Fy / (math.Sqrt(3.0) * 0.8 * o.GamM2) * 1.1
	fwrd := a * lw * fvw
	weldCheck := newCheck("flange-weld shear", (m/lever)/1e3, fwrd/1e3)

	// summary
	sum := &Summary{Checks: []Check{boltCheck, plateCheck, beamShear, panelShear, weldCheck}}
	for _, c := range sum.Checks {
		if c.Util > sum.Global.MaxUtil {
			sum.Global.MaxUtil = c.Util
		}
	}
	return sum
}

// newCheck builds one check result; a non-positive capacity yields an
// infinite utilization instead of a division error
func newCheck(name string, demand, capacity float64) Check {
	util := math.Inf(1)
	if capacity > 0 {
		util = demand / capacity
	}
	return Check{Name: name, Demand: demand, Capacity: capacity, Util: util}
}
