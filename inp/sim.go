// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Ndim    int    `json:"ndim"`    // space dimension
	Verbose bool   `json:"verbose"` // show messages
}

// SolverData holds FE solver settings
type SolverData struct {

	// nonlinear solver
	Type         string  `json:"type"`           // solver type: {lin, nr} => linear static, Newton-Raphson
	StopTolDisps float64 `json:"stop_tol_disps"` // relative tolerance on displacement increment
	StopTolForce float64 `json:"stop_tol_force"` // relative tolerance on residual force
	StopTolIters int     `json:"stop_tol_iters"` // maximum number of Newton-Raphson iterations
	ShowR        bool    `json:"showr"`          // show residuals during iterations

	// linear-system (conjugate gradients) solver
	CgTol   float64 `json:"cgtol"`   // relative tolerance of the CG solver
	CgMaxIt int     `json:"cgmaxit"` // maximum number of CG iterations; 0 => derived from system size
}

// ControlData holds the load-factor stepping control
type ControlData struct {
	NSteps      int       `json:"nsteps"`      // number of load steps
	LoadFactor  float64   `json:"loadfactor"`  // final load factor
	LoadFactors []float64 `json:"loadfactors"` // explicit load-factor sequence; overrides NSteps/LoadFactor
}

// ElemData holds element data to be assigned to cells via tags
type ElemData struct {
	Tag    int    `json:"tag"`    // cell tag selecting this data block
	Type   string `json:"type"`   // element type: {solid, truss}
	Mat    string `json:"mat"`    // material name
	Nlgeom bool   `json:"nlgeom"` // truss only: add geometric stiffness term
}

// FixBc holds an essential boundary condition: dofs fixed at tagged vertices
type FixBc struct {
	Tag  int      `json:"tag"`  // vertex tag
	Keys []string `json:"keys"` // dof keys; e.g. ["ux", "uy", "uz"]
}

// LoadBc holds a natural boundary condition: point loads at tagged vertices.
// The targeted dofs are the Keys at every tagged vertex; Values are
// distributed cyclically over them and must divide the target count evenly.
// Without a named function, a value v contributes v*λ at load factor λ;
// otherwise the function is evaluated at λ and scales the value.
type LoadBc struct {
	Tag    int       `json:"tag"`    // vertex tag
	Keys   []string  `json:"keys"`   // force keys; e.g. ["fx", "fy", "fz"]
	Values []float64 `json:"values"` // values distributed over the targeted dofs
	Func   string    `json:"func"`   // optional name of load-factor function in Funcs
}

// FuncData holds a named function definition
type FuncData struct {
	Name string   `json:"name"` // name of function
	Type string   `json:"type"` // type of function; e.g. "cte"
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns a function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn, err = dbf.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot allocate function named %q:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// Simulation holds all input data for one simulation
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global data
	Solver    SolverData  `json:"solver"`    // solver settings
	Control   ControlData `json:"control"`   // load stepping
	Funcs     FuncsData   `json:"functions"` // load-factor functions
	Msh       *Mesh       `json:"mesh"`      // mesh
	MatParams *MatDb      `json:"materials"` // materials database
	ElemsData []*ElemData `json:"elements"`  // element data blocks
	FixBcs    []*FixBc    `json:"fixbcs"`    // essential boundary conditions
	LoadBcs   []*LoadBc   `json:"loadbcs"`   // natural boundary conditions
}

// ReadSim reads a simulation from a JSON file
func ReadSim(fnamepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", fnamepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", fnamepath, err)
	}
	err = o.Init()
	return
}

// Init sets defaults, computes derived data and validates the input.
// It must be called once before the simulation is used.
func (o *Simulation) Init() (err error) {

	// defaults
	if o.Solver.Type == "" {
		o.Solver.Type = "nr"
	}
	if o.Solver.StopTolDisps <= 0 {
		o.Solver.StopTolDisps = 1e-8
	}
	if o.Solver.StopTolForce <= 0 {
		o.Solver.StopTolForce = 1e-8
	}
	if o.Solver.StopTolIters < 1 {
		o.Solver.StopTolIters = 20
	}
	if o.Solver.CgTol <= 0 {
		o.Solver.CgTol = 1e-12
	}
	if o.Control.NSteps < 1 {
		o.Control.NSteps = 1
	}
	if o.Control.LoadFactor == 0 {
		o.Control.LoadFactor = 1.0
	}

	// mesh
	if o.Msh == nil {
		return chk.Err("simulation requires a mesh")
	}
	if o.Data.Ndim == 0 {
		o.Data.Ndim = o.Msh.Ndim
	}
	err = o.Msh.CalcDerived()
	if err != nil {
		return
	}

	// materials
	if o.MatParams == nil {
		return chk.Err("simulation requires a materials database")
	}
	err = o.MatParams.Init(o.Data.Ndim)
	if err != nil {
		return
	}

	// element data
	for _, ed := range o.ElemsData {
		if _, ok := o.Msh.CellTag2cells[ed.Tag]; !ok {
			return chk.Err("element data with tag=%d does not correspond to any cell", ed.Tag)
		}
		if o.MatParams.Get(ed.Mat) == nil {
			return chk.Err("cannot find material %q for element data with tag=%d", ed.Mat, ed.Tag)
		}
	}

	// load factors
	if len(o.Control.LoadFactors) == 0 {
		o.Control.LoadFactors = utl.LinSpace(0, o.Control.LoadFactor, o.Control.NSteps+1)[1:]
	}
	prev := 0.0
	for _, λ := range o.Control.LoadFactors {
		if λ <= prev {
			return chk.Err("load factors must be strictly increasing and positive. %v is invalid", o.Control.LoadFactors)
		}
		prev = λ
	}
	return
}

// Etag2data returns the element data corresponding to a cell tag
func (o *Simulation) Etag2data(tag int) *ElemData {
	for _, ed := range o.ElemsData {
		if ed.Tag == tag {
			return ed
		}
	}
	return nil
}
