// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// Solution holds the structural state at one load step: primary variables,
// force vectors and per-element stress/strain. One instance is mutated in
// place by the assembler and the solvers; converged copies are appended to
// the analysis history.
type Solution struct {

	// state
	T    float64   // current load factor
	Y    []float64 // [ny] displacements
	ΔY   []float64 // [ny] displacement increment accumulated within the current step
	Fext []float64 // [ny] external force
	Fint []float64 // [ny] internal force

	// per-element secondary variables; allocated lazily by the elements
	Sig [][]float64 // [ncells][nsig] stress components
	Eps [][]float64 // [ncells][nsig] strain components

	// iteration record for the current step
	It     int       // number of iterations spent
	Resids []float64 // residual norm at each iteration
}

// NewSolution returns a new solution structure with ny equations and ncells cells
func NewSolution(ny, ncells int) *Solution {
	return &Solution{
		Y:    make([]float64, ny),
		ΔY:   make([]float64, ny),
		Fext: make([]float64, ny),
		Fint: make([]float64, ny),
		Sig:  make([][]float64, ncells),
		Eps:  make([][]float64, ncells),
	}
}

// Reset zeroes the state
func (o *Solution) Reset() {
	o.T = 0
	la.VecFill(o.Y, 0)
	la.VecFill(o.ΔY, 0)
	la.VecFill(o.Fext, 0)
	la.VecFill(o.Fint, 0)
	for i := range o.Sig {
		if o.Sig[i] != nil {
			la.VecFill(o.Sig[i], 0)
			la.VecFill(o.Eps[i], 0)
		}
	}
	o.It = 0
	o.Resids = nil
}

// GetCopy returns a deep copy of this solution
func (o *Solution) GetCopy() *Solution {
	s := NewSolution(len(o.Y), len(o.Sig))
	s.T = o.T
	copy(s.Y, o.Y)
	copy(s.ΔY, o.ΔY)
	copy(s.Fext, o.Fext)
	copy(s.Fint, o.Fint)
	for i := range o.Sig {
		if o.Sig[i] != nil {
			s.Sig[i] = la.VecClone(o.Sig[i])
			s.Eps[i] = la.VecClone(o.Eps[i])
		}
	}
	s.It = o.It
	s.Resids = la.VecClone(o.Resids)
	return s
}
