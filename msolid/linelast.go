// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements the isotropic linear elastic model for small strains:
//  σ = D : ε  with the constant elastic tensor D built from two parameters.
// Parameters may be given as {E, nu} or {lam, G} (Lamé); the missing pair is
// derived.
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Lam float64 // λ: Lamé's first parameter
	G   float64 // G: shear modulus (Lamé's second parameter)
	Rho float64 // density

	// derived
	nsig int // number of stress/strain components
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, prms dbf.Params) (err error) {

	// parameters
	var hasEnu, hasLamG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
			hasEnu = true
		case "nu":
			o.Nu = p.V
			hasEnu = true
		case "lam":
			o.Lam = p.V
			hasLamG = true
		case "G":
			o.G = p.V
			hasLamG = true
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is invalid", p.N)
		}
	}

	// derived
	switch {
	case hasEnu && !hasLamG:
		if o.E <= 0 {
			return chk.Err("lin-elast: Young's modulus must be positive. E=%g is invalid", o.E)
		}
		if o.Nu < 0 || o.Nu >= 0.5 {
			return chk.Err("lin-elast: Poisson's coefficient must be in [0, 0.5). nu=%g is invalid", o.Nu)
		}
		o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	case hasLamG && !hasEnu:
		if o.G <= 0 {
			return chk.Err("lin-elast: shear modulus must be positive. G=%g is invalid", o.G)
		}
		o.E = o.G * (3.0*o.Lam + 2.0*o.G) / (o.Lam + o.G)
		o.Nu = o.Lam / (2.0 * (o.Lam + o.G))
	default:
		return chk.Err("lin-elast: either {E, nu} or {lam, G} must be given as parameters")
	}
	o.nsig = 2 * ndim
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "nu", V: 2.5000e-01},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 { return o.Rho }

// Large returns false since this model works with small strains
func (o LinElast) Large() bool { return false }

// Stress computes σ for given ε
func (o LinElast) Stress(σ, ε []float64) (err error) {
	εv := ε[0] + ε[1] + ε[2]
	for i := 0; i < 3; i++ {
		σ[i] = o.Lam*εv + 2.0*o.G*ε[i]
		σ[3+i] = o.G * ε[3+i]
	}
	return
}

// CalcD computes the constant elastic tensor D = dσ/dε
func (o LinElast) CalcD(D [][]float64) (err error) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = o.Lam
			D[i][3+j] = 0
			D[3+i][j] = 0
			D[3+i][3+j] = 0
		}
		D[i][i] = o.Lam + 2.0*o.G
		D[3+i][3+i] = o.G
	}
	return
}
