// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
)

// FEsolver solves the equilibrium problem for a sequence of strictly
// increasing load factors. After every equilibrated step, converged is called
// (if given) so the caller can record the state.
type FEsolver interface {
	Run(λs []float64, converged func() error) (err error)
}

// solverallocators holds all available solvers; type => allocator
var solverallocators = make(map[string]func(dom *Domain) FEsolver)

// NewSolver returns a new solver from its type; e.g. "lin" or "nr"
func NewSolver(stype string, dom *Domain) (FEsolver, error) {
	allocator, ok := solverallocators[stype]
	if !ok {
		return nil, chk.Err("cannot find solver of type %q", stype)
	}
	return allocator(dom), nil
}
