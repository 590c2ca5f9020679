// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/seismostudio/desysbackend-sub001/fem"
	"github.com/seismostudio/desysbackend-sub001/inp"
	"github.com/seismostudio/desysbackend-sub001/mdl"
	"github.com/seismostudio/desysbackend-sub001/msh"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "conn", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nDesys Connection Solver -- end-plate stress analysis\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"connection file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// configuration and meshes
	cfg, err := inp.ReadConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot read connection configuration:\n%v", err)
	}
	plate, beam, column, haunch := msh.ForConnection(cfg)

	// run analysis
	analysis := fem.NewAnalysis(cfg, mdl.NewConnectionCapacity(), plate, beam, column, haunch)
	res := analysis.Run()
	if !res.IsValid {
		chk.Panic("analysis failed; see messages above")
	}

	// report
	if verbose {
		io.Pf("connection: %s\n", cfg.Desc)
		for _, c := range res.Capacity.Checks {
			io.Pf("%-26s demand=%10.3f capacity=%10.3f util=%6.3f\n", c.Name, c.Demand, c.Capacity, c.Util)
		}
		io.Pforan("governing utilization = %.3f\n", res.Capacity.Global.MaxUtil)
	}

	// write result file
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		chk.Panic("cannot encode analysis result:\n%v", err)
	}
	fnres := strings.TrimSuffix(fnamepath, ".json") + "-res.json"
	err = os.WriteFile(fnres, b, 0644)
	if err != nil {
		chk.Panic("cannot write result file:\n%v", err)
	}
	if verbose {
		io.Pf("results written to %s\n", fnres)
	}
}
