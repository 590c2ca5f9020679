// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_conn01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conn01. read connection configuration")

	cfg, err := ReadConfig("data/conn-ep1.json")
	if err != nil {
		tst.Errorf("ReadConfig failed: %v\n", err)
		return
	}
	io.Pf("desc = %q\n", cfg.Desc)
	chk.Float64(tst, "plate width", 1e-15, cfg.Plate.Width, 150)
	chk.Float64(tst, "plate thickness", 1e-15, cfg.Plate.Thickness, 15)
	chk.Int(tst, "bolt rows", cfg.Bolts.Rows, 2)
	chk.Int(tst, "bolt cols", cfg.Bolts.Cols, 2)
	chk.Float64(tst, "row spacing", 1e-15, cfg.Bolts.RowSpacing, 100)
	chk.Float64(tst, "E plate", 1e-15, cfg.Materials.Plate.E, 200000)
	chk.Float64(tst, "fy plate", 1e-15, cfg.Materials.Plate.Fy, 355)
	chk.Float64(tst, "moment", 1e-15, cfg.Loads.Moment, 50)
	chk.Float64(tst, "shear", 1e-15, cfg.Loads.Shear, 20)
	if !cfg.Haunch.Enabled {
		tst.Errorf("haunch must be enabled in conn-ep1\n")
		return
	}
	chk.Int(tst, "plate nz", cfg.Mesh.PlateNz, 8)
}

func Test_conn02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conn02. defaults and validation")

	var cfg ConnectionConfig
	cfg.SetDefault()
	chk.Int(tst, "plateNz", cfg.Mesh.PlateNz, 8)
	chk.Int(tst, "plateNy", cfg.Mesh.PlateNy, 12)
	chk.Int(tst, "memberNl", cfg.Mesh.MemberNl, 10)
	chk.Int(tst, "memberNd", cfg.Mesh.MemberNd, 4)

	// empty config is invalid
	if err := cfg.Validate(); err == nil {
		tst.Errorf("empty configuration must be invalid\n")
		return
	}

	// a complete config passes
	cfg.Plate = PlateData{Width: 150, Height: 400, Thickness: 15}
	cfg.Beam = SectionData{Depth: 300, Width: 150, Tf: 10.7, Tw: 7.1, Length: 1500}
	cfg.Column = SectionData{Depth: 200, Width: 200, Tf: 15, Tw: 9, Length: 3000}
	cfg.Bolts = BoltData{Rows: 2, Cols: 2, RowSpacing: 100, ColSpacing: 100, Diameter: 20, Fub: 800}
	cfg.Materials = MatsData{
		Plate:  MaterialData{E: 200000, Fy: 355},
		Beam:   MaterialData{E: 200000, Fy: 355},
		Column: MaterialData{E: 200000, Fy: 355},
	}
	cfg.Loads = LoadData{Moment: 50, Shear: 20}
	if err := cfg.Validate(); err != nil {
		tst.Errorf("complete configuration must be valid: %v\n", err)
		return
	}

	// enabled haunch requires a length
	cfg.Haunch = HaunchData{Enabled: true}
	if err := cfg.Validate(); err == nil {
		tst.Errorf("haunch without length must be invalid\n")
	}
}

func Test_conn03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conn03. clone is a deep snapshot")

	cfg, err := ReadConfig("data/conn-ep1.json")
	if err != nil {
		tst.Errorf("ReadConfig failed: %v\n", err)
		return
	}
	snap := cfg.Clone()
	snap.Plate.Width = 999
	snap.Bolts.Rows = 7
	snap.Loads.Moment = -1
	chk.Float64(tst, "original width", 1e-15, cfg.Plate.Width, 150)
	chk.Int(tst, "original rows", cfg.Bolts.Rows, 2)
	chk.Float64(tst, "original moment", 1e-15, cfg.Loads.Moment, 50)
}
