// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid constitutive models. Models are
// stateless: stress and tangent follow from the given strain alone.
//  Stress and strain use Voigt notation with engineering shear components:
//    {11, 22, 33, 23, 13, 12}
// Models with Large()==true expect the Green-Lagrange strain and return the
// second Piola-Kirchhoff stress; otherwise small strain and Cauchy stress.
type Model interface {
	Init(ndim int, prms dbf.Params) error // initialises model from parameters
	GetPrms() dbf.Params                  // gets (an example) of parameters
	GetRho() float64                    // returns density
	Large() bool                        // model works with large-deformation measures
	Stress(σ, ε []float64) error        // computes σ for given ε
	CalcD(D [][]float64) error          // computes D = dσ/dε (constant elastic tensor)
}

// OneD defines the interface for 1D (axial) constitutive models
type OneD interface {
	Init(prms dbf.Params) error // initialises model from parameters
	GetPrms() dbf.Params        // gets (an example) of parameters
	GetRho() float64          // returns density
	Stress1d(ε float64) float64
	CalcD1d() float64
}

// New returns a new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in msolid database", name)
	}
	return allocator(), nil
}

// NewOneD returns a new 1D model
func NewOneD(name string) (model OneD, err error) {
	allocator, ok := onedallocators[name]
	if !ok {
		return nil, chk.Err("1D model %q is not available in msolid database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = make(map[string]func() Model)

// onedallocators holds all available 1D models; modelname => allocator
var onedallocators = make(map[string]func() OneD)
