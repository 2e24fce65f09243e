// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite-element structural solver
package fem

import (
	"time"

	"github.com/tkrisnguyen/onsas/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Analysis holds a complete static analysis: domain, solver and the history
// of converged states, one per load factor.
type Analysis struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // domain
	Solver  FEsolver        // solver
	History []*Solution     // converged states
}

// NewAnalysis prepares a new analysis from simulation data. The input must
// have been initialised already (see inp.ReadSim / Simulation.Init).
func NewAnalysis(sim *inp.Simulation) (o *Analysis, err error) {
	o = &Analysis{Sim: sim}
	o.Dom = NewDomain(sim)
	err = o.Dom.SetStage()
	if err != nil {
		return nil, chk.Err("cannot set stage:\n%v", err)
	}
	o.Solver, err = NewSolver(sim.Solver.Type, o.Dom)
	if err != nil {
		return nil, err
	}
	return
}

// Run solves all load factors, recording one converged state per factor
func (o *Analysis) Run() (err error) {
	cputime := time.Now()
	verbose := o.Sim.Data.Verbose
	err = o.Solver.Run(o.Sim.Control.LoadFactors, func() error {
		o.History = append(o.History, o.Dom.Sol.GetCopy())
		if verbose {
			io.Pf("load factor %13.8f equilibrated with %2d iterations\n", o.Dom.Sol.T, o.Dom.Sol.It)
		}
		return nil
	})
	if err != nil {
		if verbose {
			io.PfRed("analysis failed:\n%v\n", err)
		}
		return
	}
	if verbose {
		io.PfGreen("analysis finished. cpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}

// U returns the current displacement of one dof; e.g. U(3, "uy")
func (o *Analysis) U(vid int, key string) float64 {
	eq := o.Dom.Nodes[vid].GetEq(key)
	if eq < 0 {
		chk.Panic("vertex %d has no dof %q", vid, key)
	}
	return o.Dom.Sol.Y[eq]
}

// Reaction returns the current reaction force of one fixed dof
func (o *Analysis) Reaction(vid int, key string) float64 {
	dof := o.Dom.Nodes[vid].GetDof(key)
	if dof == nil || !dof.Fixed {
		chk.Panic("vertex %d has no fixed dof %q", vid, key)
	}
	return o.Dom.Sol.Fint[dof.Eq]
}
