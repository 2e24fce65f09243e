// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// NewtonRaphson equilibrates each load factor by full Newton-Raphson
// iterations with the consistent tangent. A step converges when BOTH the
// relative residual-force norm and the relative displacement-increment norm
// are below their tolerances; hitting the iteration cap is an error.
type NewtonRaphson struct {
	dom *Domain
	δ   []float64
}

// register solver
func init() {
	solverallocators["nr"] = func(dom *Domain) FEsolver {
		return &NewtonRaphson{dom, make([]float64, dom.Ny)}
	}
}

// Run solves the sequence of load factors
func (o *NewtonRaphson) Run(λs []float64, converged func() error) (err error) {
	dom := o.dom
	sol := dom.Sol
	tolF := dom.Sim.Solver.StopTolForce
	tolD := dom.Sim.Solver.StopTolDisps
	maxit := dom.Sim.Solver.StopTolIters
	for _, λ := range λs {

		// new step
		la.VecFill(sol.ΔY, 0)
		sol.Resids = nil
		δnorm, ok := 0.0, false
		var it int
		for it = 0; it < maxit; it++ {

			// out-of-balance forces
			err = dom.AssembleRhs(λ)
			if err != nil {
				return
			}
			R := dom.NormFree(dom.Fb)
			sol.Resids = append(sol.Resids, R)
			if dom.Sim.Solver.ShowR {
				io.Pf("λ=%13.8f it=%2d R=%13.8e\n", λ, it, R)
			}

			// check convergence; the first iteration has no increment yet
			if it > 0 {
				denomF := dom.NormFree(sol.Fext)
				if denomF <= 0 {
					denomF = 1
				}
				denomU := dom.NormFree(sol.Y)
				if denomU <= 0 {
					denomU = 1
				}
				if R <= tolF*denomF && δnorm <= tolD*denomU {
					ok = true
					break
				}
			}

			// solve linearised system and correct displacements
			err = dom.AssembleKb(it == 0)
			if err != nil {
				return
			}
			err = dom.SolveIncrement(o.δ)
			if err != nil {
				return
			}
			la.VecAdd(sol.Y, 1, o.δ)
			la.VecAdd(sol.ΔY, 1, o.δ)
			δnorm = dom.NormFree(o.δ)
		}
		if !ok {
			return chk.Err("Newton-Raphson did not converge after %d iterations @ load factor %g (residual=%g)", maxit, λ, sol.Resids[len(sol.Resids)-1])
		}

		// converged step
		sol.T = λ
		sol.It = it
		err = dom.UpdateElems()
		if err != nil {
			return
		}
		if converged != nil {
			err = converged()
			if err != nil {
				return
			}
		}
	}
	return
}
