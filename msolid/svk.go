// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// SVK implements the Saint-Venant-Kirchhoff hyperelastic model: the linear
// elastic tensor applied to the Green-Lagrange strain, yielding the second
// Piola-Kirchhoff stress. The material response is linear; all nonlinearity
// is geometric and handled by the element kinematics.
type SVK struct {
	LinElast
}

// add model to factory
func init() {
	allocators["svk"] = func() Model { return new(SVK) }
}

// Large returns true since this model works with the Green-Lagrange strain
func (o SVK) Large() bool { return true }
