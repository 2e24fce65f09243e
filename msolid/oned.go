// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedElast implements a linear elastic model for 1D (axial-only) elements
type OnedElast struct {
	E   float64 // Young's modulus
	Rho float64 // density
}

// add model to factory
func init() {
	onedallocators["oned-elast"] = func() OneD { return new(OnedElast) }
}

// Init initialises model
func (o *OnedElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("oned-elast: Young's modulus must be positive. E=%g is invalid", o.E)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
	}
}

// GetRho returns density
func (o OnedElast) GetRho() float64 { return o.Rho }

// Stress1d computes the axial stress for given axial strain
func (o OnedElast) Stress1d(ε float64) float64 { return o.E * ε }

// CalcD1d returns dσ/dε
func (o OnedElast) CalcD1d() float64 { return o.E }
