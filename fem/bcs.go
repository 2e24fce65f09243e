// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// EssenBcs holds the equations constrained by essential (displacement)
// boundary conditions. All constraints are homogeneous: fixed degrees of
// freedom keep zero displacement.
type EssenBcs struct {
	Eqs []int // fixed equations
}

// Add adds a fixed equation
func (o *EssenBcs) Add(eq int) {
	o.Eqs = append(o.Eqs, eq)
}

// SetMask marks the fixed equations in the global mask
func (o *EssenBcs) SetMask(fixed []bool) {
	for _, eq := range o.Eqs {
		fixed[eq] = true
	}
}

// PtNatBc holds one point-load (natural) boundary condition applied directly
// to an equation. The load at factor λ is Value*λ, or Value*Fcn(λ) when a
// function was named in the input file.
type PtNatBc struct {
	Eq    int      // equation
	Value float64  // reference load value
	Fcn   dbf.T // scaling function of the load factor; may be nil
}

// PtNatBcs holds a collection of point-load boundary conditions
type PtNatBcs struct {
	Bcs []*PtNatBc
}

// Add adds a new point-load boundary condition
func (o *PtNatBcs) Add(eq int, value float64, fcn dbf.T) {
	o.Bcs = append(o.Bcs, &PtNatBc{eq, value, fcn})
}

// AddToRhs adds the loads at load factor λ to the global vector fb
func (o *PtNatBcs) AddToRhs(fb []float64, λ float64) {
	for _, bc := range o.Bcs {
		sc := λ
		if bc.Fcn != nil {
			sc = bc.Fcn.F(λ, nil)
		}
		fb[bc.Eq] += bc.Value * sc
	}
}
