// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/tkrisnguyen/onsas/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// Domain holds all structures needed to solve one simulation: nodes with
// their degrees of freedom, elements, boundary conditions and the assembly
// workspace for the global system.
type Domain struct {

	// init data
	Sim *inp.Simulation // simulation data
	Msh *inp.Mesh       // mesh

	// nodes and elements
	Nodes []*Node // all nodes; indexed by vertex id
	Elems []Elem  // all elements; indexed by cell id

	// degrees of freedom
	Ny       int    // total number of equations
	FixedEqs []bool // [ny] mask of prescribed equations

	// boundary conditions
	EssenBcs EssenBcs // essential (fixity) conditions
	PtNatBcs PtNatBcs // point-load conditions

	// solution and assembly workspace
	Sol   *Solution   // current solution
	Kb    *la.Triplet // global tangent matrix (triplet format)
	Fb    []float64   // [ny] out-of-balance force vector: Fext - Fint
	NnzKb int         // number of nonzeros in Kb

	// attached fields
	fields map[string]bool
}

// NewDomain returns a new domain
func NewDomain(sim *inp.Simulation) *Domain {
	return &Domain{
		Sim:    sim,
		Msh:    sim.Msh,
		fields: make(map[string]bool),
	}
}

// SetStage creates nodes, numbers equations, allocates elements and sets the
// boundary conditions. All input problems are caught here, before any load
// step begins.
func (o *Domain) SetStage() (err error) {

	// nodes
	o.Nodes = make([]*Node, len(o.Msh.Verts))
	for i, v := range o.Msh.Verts {
		o.Nodes[i] = NewNode(v)
	}

	// element information; grouped per field to keep equation blocks together
	infos := make([]*Info, len(o.Msh.Cells))
	var fieldorder []string
	field2cells := make(map[string][]*inp.Cell)
	for i, cell := range o.Msh.Cells {
		infos[i], err = GetElemInfo(cell, o.Sim)
		if err != nil {
			return
		}
		if len(field2cells[infos[i].Field]) == 0 {
			fieldorder = append(fieldorder, infos[i].Field)
		}
		field2cells[infos[i].Field] = append(field2cells[infos[i].Field], cell)
	}
	for _, field := range fieldorder {
		err = o.AddDofs(field, field2cells[field], infos)
		if err != nil {
			return
		}
	}

	// allocate elements and set equations
	o.Elems = make([]Elem, len(o.Msh.Cells))
	o.NnzKb = 0
	for i, cell := range o.Msh.Cells {
		o.Elems[i], err = NewElem(cell, o.Sim)
		if err != nil {
			return
		}
		eqs, ndof := o.eqsOfCell(cell, infos[i])
		err = o.Elems[i].SetEqs(eqs)
		if err != nil {
			return
		}
		o.NnzKb += ndof * ndof
	}

	// essential boundary conditions
	o.FixedEqs = make([]bool, o.Ny)
	for _, fbc := range o.Sim.FixBcs {
		verts, ok := o.Msh.VertTag2verts[fbc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag=%d to apply fixity condition", fbc.Tag)
		}
		for _, v := range verts {
			for _, key := range fbc.Keys {
				dof := o.Nodes[v.Id].GetDof(key)
				if dof == nil {
					return chk.Err("cannot fix %q @ vertex %d: dof is not available", key, v.Id)
				}
				dof.Fixed = true
				o.EssenBcs.Add(dof.Eq)
			}
		}
	}
	o.EssenBcs.SetMask(o.FixedEqs)

	// natural boundary conditions: values are spread cyclically over the
	// targeted dofs and their count must divide the target count evenly
	f2y := o.f2ymap(infos)
	for _, lbc := range o.Sim.LoadBcs {
		verts, ok := o.Msh.VertTag2verts[lbc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag=%d to apply load condition", lbc.Tag)
		}
		ntrg := len(verts) * len(lbc.Keys)
		if len(lbc.Values) == 0 || ntrg%len(lbc.Values) != 0 {
			return chk.Err("load condition with tag=%d: %d values cannot be distributed evenly over %d targeted dofs", lbc.Tag, len(lbc.Values), ntrg)
		}
		var fcn dbf.T
		if lbc.Func != "" {
			fcn, err = o.Sim.Funcs.Get(lbc.Func)
			if err != nil {
				return
			}
		}
		for s := 0; s < ntrg; s++ {
			v := verts[s/len(lbc.Keys)]
			fkey := lbc.Keys[s%len(lbc.Keys)]
			ukey, ok := f2y[fkey]
			if !ok {
				return chk.Err("load condition with tag=%d: force key %q is unknown", lbc.Tag, fkey)
			}
			eq := o.Nodes[v.Id].GetEq(ukey)
			if eq < 0 {
				return chk.Err("cannot apply load %q @ vertex %d: dof %q is not available", fkey, v.Id, ukey)
			}
			o.PtNatBcs.Add(eq, lbc.Values[s%len(lbc.Values)], fcn)
		}
	}

	// solution and workspace
	o.Sol = NewSolution(o.Ny, len(o.Msh.Cells))
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, o.NnzKb)
	o.Fb = make([]float64, o.Ny)
	return
}

// AddDofs attaches, under a field symbol, the per-node dof keys required by
// each cell. New equations continue from the current maximum, so several
// fields on the same mesh get unique contiguous numbers. Attaching the same
// field twice is a symbol collision and an error.
func (o *Domain) AddDofs(field string, cells []*inp.Cell, infos []*Info) (err error) {
	if o.fields[field] {
		return chk.Err("dofs are already attached under field %q", field)
	}
	o.fields[field] = true
	for _, cell := range cells {
		for m, v := range cell.Verts {
			for _, key := range infos[cell.Id].Dofs[m] {
				o.Ny = o.Nodes[v].AddDofAndEq(key, o.Ny)
			}
		}
	}
	return
}

// AssembleRhs assembles the out-of-balance vector Fb = Fext - Fint at load
// factor λ and refreshes Sol.Fint and Sol.Fext. Calling it again with the
// same state produces the same result.
func (o *Domain) AssembleRhs(λ float64) (err error) {
	la.VecFill(o.Fb, 0)
	for _, e := range o.Elems {
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return
		}
	}
	la.VecCopy(o.Sol.Fint, -1, o.Fb)
	la.VecFill(o.Sol.Fext, 0)
	o.PtNatBcs.AddToRhs(o.Sol.Fext, λ)
	la.VecAdd(o.Fb, 1, o.Sol.Fext)
	return
}

// AssembleKb assembles the global tangent matrix
func (o *Domain) AssembleKb(firstIt bool) (err error) {
	o.Kb.Start()
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol, firstIt)
		if err != nil {
			return
		}
	}
	return
}

// SolveIncrement solves Kb*δ = Fb on the free equations and stores the
// result in δ; entries at fixed equations stay zero
func (o *Domain) SolveIncrement(δ []float64) (err error) {
	K := o.Kb.ToMatrix(nil)
	maxit := o.Sim.Solver.CgMaxIt
	if maxit < 1 {
		maxit = 2 * o.Ny
	}
	return SpCgSolve(δ, K, o.Fb, o.FixedEqs, o.Sim.Solver.CgTol, maxit)
}

// UpdateElems asks all elements to update their secondary variables
func (o *Domain) UpdateElems() (err error) {
	for _, e := range o.Elems {
		err = e.Update(o.Sol)
		if err != nil {
			return
		}
	}
	return
}

// Reactions returns the reaction forces: the internal forces at the fixed
// equations, zero elsewhere. AssembleRhs must have run at the current state.
func (o *Domain) Reactions() []float64 {
	r := make([]float64, o.Ny)
	for eq, fixed := range o.FixedEqs {
		if fixed {
			r[eq] = o.Sol.Fint[eq]
		}
	}
	return r
}

// NormFree returns the Euclidean norm of v restricted to the free equations
func (o *Domain) NormFree(v []float64) (res float64) {
	for eq, fixed := range o.FixedEqs {
		if !fixed {
			res += v[eq] * v[eq]
		}
	}
	return math.Sqrt(res)
}

// eqsOfCell returns the equation numbers of one cell organised per local
// vertex, and the total number of element equations
func (o *Domain) eqsOfCell(cell *inp.Cell, info *Info) (eqs [][]int, ndof int) {
	eqs = make([][]int, len(cell.Verts))
	for m, v := range cell.Verts {
		eqs[m] = make([]int, len(info.Dofs[m]))
		for i, key := range info.Dofs[m] {
			eqs[m][i] = o.Nodes[v].GetEq(key)
		}
		ndof += len(info.Dofs[m])
	}
	return
}

// f2ymap inverts the Y2F maps of all element formulations in this domain;
// e.g. "fx" => "ux"
func (o *Domain) f2ymap(infos []*Info) map[string]string {
	f2y := make(map[string]string)
	for _, info := range infos {
		for ykey, fkey := range info.Y2F {
			f2y[fkey] = ykey
		}
	}
	return f2y
}
