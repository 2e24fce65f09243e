// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// LinearStatic solves one increment per load factor without iterating. It is
// exact when both the material and the kinematics are linear, since then the
// tangent matrix does not depend on the displacements.
type LinearStatic struct {
	dom *Domain
	δ   []float64
}

// register solver
func init() {
	solverallocators["lin"] = func(dom *Domain) FEsolver {
		return &LinearStatic{dom, make([]float64, dom.Ny)}
	}
}

// Run solves the sequence of load factors
func (o *LinearStatic) Run(λs []float64, converged func() error) (err error) {
	dom := o.dom
	sol := dom.Sol
	for _, λ := range λs {

		// assemble at the current state and solve for the increment
		err = dom.AssembleRhs(λ)
		if err != nil {
			return
		}
		err = dom.AssembleKb(true)
		if err != nil {
			return
		}
		err = dom.SolveIncrement(o.δ)
		if err != nil {
			return
		}
		la.VecAdd(sol.Y, 1, o.δ)
		la.VecCopy(sol.ΔY, 1, o.δ)
		sol.T = λ
		sol.It = 0
		sol.Resids = nil

		// refresh stress/strain and internal forces for reporting
		err = dom.UpdateElems()
		if err != nil {
			return
		}
		err = dom.AssembleRhs(λ)
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
