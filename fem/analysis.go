// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/seismostudio/desysbackend-sub001/inp"
	"github.com/seismostudio/desysbackend-sub001/mdl"
	"github.com/seismostudio/desysbackend-sub001/msh"
)

// Analysis binds one connection configuration to its part meshes and to the
// capacity evaluator. The haunch mesh may be nil when the haunch is
// disabled. One Analysis performs one solve; it holds no shared state.
type Analysis struct {
	Cfg    *inp.ConnectionConfig // immutable input
	Cap    mdl.CapacitySolver    // capacity evaluator (narrow contract)
	Plate  *msh.Mesh             // end-plate mesh (FEA-solved)
	Beam   *msh.Mesh             // beam mesh (estimated)
	Column *msh.Mesh             // column mesh (estimated)
	Haunch *msh.Mesh             // haunch mesh (estimated; may be nil)
}

// NewAnalysis returns a new analysis unit
func NewAnalysis(cfg *inp.ConnectionConfig, cs mdl.CapacitySolver, plate, beam, column, haunch *msh.Mesh) *Analysis {
	return &Analysis{Cfg: cfg, Cap: cs, Plate: plate, Beam: beam, Column: column, Haunch: haunch}
}

// Run performs the complete analysis synchronously. Any failure during
// assembly or solve yields a result with IsValid == false rather than a
// partially populated one; retrying without changing the input would only
// reproduce the failure, hence no retry is attempted.
func (o *Analysis) Run() (res *Result) {

	// capacity evaluation and result skeleton
	sum := o.Cap.Evaluate(o.Cfg)
	res = &Result{Config: o.Cfg.Clone(), Capacity: sum}
	defer func() { res.Time = time.Now() }()

	// plate solve
	stress, err := o.solvePlate()
	if err != nil {
		io.Pf("plate solve failed: %v\n", err)
		return
	}
	res.Meshes = append(res.Meshes, &PartResult{Part: "plate", Mesh: o.Plate, Stress: stress})

	// estimated fields of the non-solved members
	umax := sum.Global.MaxUtil
	res.Meshes = append(res.Meshes, &PartResult{Part: "beam", Mesh: o.Beam, Stress: BeamField(o.Beam, umax)})
	res.Meshes = append(res.Meshes, &PartResult{Part: "column", Mesh: o.Column, Stress: ColumnField(o.Column, umax)})
	if o.Cfg.Haunch.Enabled && o.Haunch != nil {
		res.Meshes = append(res.Meshes, &PartResult{Part: "haunch", Mesh: o.Haunch, Stress: HaunchField(o.Haunch, umax, o.Cfg.Haunch.Length)})
	}
	res.IsValid = true
	return
}

// RunAsync starts the analysis as a background unit of work and returns the
// channel delivering the single full result. The computation is
// side-effect-free; abandoning the channel is a sufficient "cancellation".
func (o *Analysis) RunAsync() <-chan *Result {
	done := make(chan *Result, 1)
	go func() {
		done <- o.Run()
		close(done)
	}()
	return done
}

// solvePlate runs the finite-element pipeline on the end plate:
// triangulation, assembly, loads, bolt constraints, linear solve and stress
// recovery
func (o *Analysis) solvePlate() (stress []float64, err error) {
	dom, err := NewDomain(o.Plate, o.Cfg)
	if err != nil {
		return
	}
	err = dom.Assemble()
	if err != nil {
		return
	}
	dom.ApplyLoads()
	dom.ApplyBoltConstraints()
	dom.Solve()
	return dom.RecoverStress()
}
