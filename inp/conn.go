// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the connection input data read from a JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// PlateData holds end-plate dimensions [mm]
type PlateData struct {
	Width     float64 `json:"width"`     // plate width (z direction)
	Height    float64 `json:"height"`    // plate height (y direction)
	Thickness float64 `json:"thickness"` // plate thickness
}

// SectionData holds beam/column cross-section dimensions and member length [mm]
type SectionData struct {
	Depth  float64 `json:"depth"`  // section depth
	Width  float64 `json:"width"`  // flange width
	Tf     float64 `json:"tf"`     // flange thickness
	Tw     float64 `json:"tw"`     // web thickness
	Length float64 `json:"length"` // modeled member length
}

// HaunchData holds haunch geometry [mm]
type HaunchData struct {
	Enabled   bool    `json:"enabled"`   // haunch present
	Length    float64 `json:"length"`    // length along the beam axis
	Depth     float64 `json:"depth"`     // depth at the connection face
	Thickness float64 `json:"thickness"` // haunch plate thickness
}

// BoltData holds the bolt grid definition
type BoltData struct {
	Rows       int     `json:"rows"`       // number of bolt rows (y direction)
	Cols       int     `json:"cols"`       // number of bolt columns (z direction)
	RowSpacing float64 `json:"rowSpacing"` // spacing between rows [mm]
	ColSpacing float64 `json:"colSpacing"` // spacing between columns [mm]
	Diameter   float64 `json:"diameter"`   // nominal bolt diameter [mm]
	Fub        float64 `json:"fub"`        // bolt ultimate strength [MPa]
}

// MaterialData holds elastic and strength properties of one component
type MaterialData struct {
	E  float64 `json:"E"`  // Young's modulus [MPa]
	Fy float64 `json:"fy"` // yield stress [MPa]
}

// MatsData holds the materials of all components
type MatsData struct {
	Plate  MaterialData `json:"plate"`  // end-plate material
	Beam   MaterialData `json:"beam"`   // beam material
	Column MaterialData `json:"column"` // column material
}

// LoadData holds the applied connection loads
type LoadData struct {
	Moment float64 `json:"moment"` // applied bending moment [kN·m]
	Shear  float64 `json:"shear"`  // applied shear force [kN]
}

// MeshData holds mesh refinement parameters for the mesh provider
type MeshData struct {
	PlateNz  int `json:"plateNz"`  // plate divisions along width
	PlateNy  int `json:"plateNy"`  // plate divisions along height
	MemberNl int `json:"memberNl"` // member divisions along axis
	MemberNd int `json:"memberNd"` // member divisions along depth
}

// ConnectionConfig holds the complete input of one connection analysis.
// All fields are plain values; a struct copy is therefore a deep copy.
type ConnectionConfig struct {
	Desc      string      `json:"desc"`      // description of the connection
	Plate     PlateData   `json:"plate"`     // end-plate geometry
	Beam      SectionData `json:"beam"`      // beam section
	Column    SectionData `json:"column"`    // column section
	Haunch    HaunchData  `json:"haunch"`    // haunch geometry and flag
	Bolts     BoltData    `json:"bolts"`     // bolt grid
	Materials MatsData    `json:"materials"` // component materials
	Loads     LoadData    `json:"loads"`     // applied loads
	Mesh      MeshData    `json:"mesh"`      // refinement parameters
}

// SetDefault sets default values for unset mesh refinement parameters
func (o *ConnectionConfig) SetDefault() {
	if o.Mesh.PlateNz < 1 {
		o.Mesh.PlateNz = 8
	}
	if o.Mesh.PlateNy < 1 {
		o.Mesh.PlateNy = 12
	}
	if o.Mesh.MemberNl < 1 {
		o.Mesh.MemberNl = 10
	}
	if o.Mesh.MemberNd < 1 {
		o.Mesh.MemberNd = 4
	}
}

// Validate checks the input data. It returns an error describing the first
// offending field.
func (o *ConnectionConfig) Validate() (err error) {
	if o.Plate.Width <= 0 || o.Plate.Height <= 0 || o.Plate.Thickness <= 0 {
		return chk.Err("plate dimensions must be positive: width=%g height=%g thickness=%g", o.Plate.Width, o.Plate.Height, o.Plate.Thickness)
	}
	if o.Beam.Depth <= 0 || o.Beam.Width <= 0 {
		return chk.Err("beam section must be positive: depth=%g width=%g", o.Beam.Depth, o.Beam.Width)
	}
	if o.Column.Depth <= 0 || o.Column.Width <= 0 {
		return chk.Err("column section must be positive: depth=%g width=%g", o.Column.Depth, o.Column.Width)
	}
	if o.Bolts.Rows < 1 || o.Bolts.Cols < 1 {
		return chk.Err("bolt grid must have at least one row and one column: rows=%d cols=%d", o.Bolts.Rows, o.Bolts.Cols)
	}
	if o.Bolts.Rows > 1 && o.Bolts.RowSpacing <= 0 {
		return chk.Err("bolt row spacing must be positive: rowSpacing=%g", o.Bolts.RowSpacing)
	}
	if o.Bolts.Cols > 1 && o.Bolts.ColSpacing <= 0 {
		return chk.Err("bolt column spacing must be positive: colSpacing=%g", o.Bolts.ColSpacing)
	}
	if o.Materials.Plate.E <= 0 || o.Materials.Plate.Fy <= 0 {
		return chk.Err("plate material must be positive: E=%g fy=%g", o.Materials.Plate.E, o.Materials.Plate.Fy)
	}
	if o.Materials.Beam.Fy <= 0 || o.Materials.Column.Fy <= 0 {
		return chk.Err("beam/column yield stress must be positive: beam.fy=%g column.fy=%g", o.Materials.Beam.Fy, o.Materials.Column.Fy)
	}
	if o.Haunch.Enabled && o.Haunch.Length <= 0 {
		return chk.Err("haunch length must be positive when the haunch is enabled: length=%g", o.Haunch.Length)
	}
	if o.Mesh.PlateNz < 1 || o.Mesh.PlateNy < 1 || o.Mesh.MemberNl < 1 || o.Mesh.MemberNd < 1 {
		return chk.Err("mesh refinement must be at least 1 in every direction")
	}
	return
}

// Clone returns a snapshot copy of the configuration
func (o *ConnectionConfig) Clone() *ConnectionConfig {
	cfg := *o
	return &cfg
}

// ReadConfig reads a connection configuration from a JSON file, sets defaults
// and validates the data
func ReadConfig(fn string) (cfg *ConnectionConfig, err error) {

	// read file
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read connection file %q:\n%v", fn, err)
	}

	// decode
	cfg = new(ConnectionConfig)
	err = json.Unmarshal(b, cfg)
	if err != nil {
		return nil, chk.Err("cannot parse connection file %q:\n%v", fn, err)
	}

	// defaults and validation
	cfg.SetDefault()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return
}
