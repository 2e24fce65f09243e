// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/tkrisnguyen/onsas/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Elem defines what elements must compute: their contribution to the global
// residual and tangent, and the post-processing of stress/strain
type Elem interface {

	// information and initialisation
	Id() int                    // returns the cell Id
	SetEqs(eqs [][]int) error   // sets equations and computes reference-configuration data

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) error                // adds -fint to the global vector fb
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) error // adds element K to the global tangent

	// called after the solution is updated
	Update(sol *Solution) error // stores stress/strain into sol for output
}

// Info holds all information required to set a simulation stage
type Info struct {
	Field string     // field symbol under which dofs are attached; e.g. "u"
	Dofs  [][]string // dof keys PER NODE; e.g. for 2 nodes: [["ux","uy","uz"], ["ux","uy","uz"]]
	Y2F   map[string]string // maps "y" keys to "f" keys; e.g. "ux" => "fx"
}

// GetElemInfo returns information about elements/formulations
func GetElemInfo(cell *inp.Cell, sim *inp.Simulation) (info *Info, err error) {
	edat := sim.Etag2data(cell.Tag)
	if edat == nil {
		return nil, chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
	}
	infogetter, ok := infogetters[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get info for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
	}
	info = infogetter(cell, sim)
	if info == nil {
		return nil, chk.Err("info for element {type=%q, tag=%d, id=%d} is not available", edat.Type, cell.Tag, cell.Id)
	}
	return
}

// NewElem returns a new element from its type; e.g. "solid" or "truss"
func NewElem(cell *inp.Cell, sim *inp.Simulation) (ele Elem, err error) {
	edat := sim.Etag2data(cell.Tag)
	if edat == nil {
		return nil, chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
	}
	allocator, ok := eallocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
	}
	x := BuildCoordsMatrix(cell, sim.Msh)
	return allocator(cell, edat, x, sim)
}

// BuildCoordsMatrix returns the coordinate matrix of a particular cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = la.MatAlloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// infogetters holds all available formulations/info; elemType => infogetter
var infogetters = make(map[string]func(cell *inp.Cell, sim *inp.Simulation) *Info)

// eallocators holds all available elements; elemType => eallocator
var eallocators = make(map[string]func(cell *inp.Cell, edat *inp.ElemData, x [][]float64, sim *inp.Simulation) (Elem, error))
