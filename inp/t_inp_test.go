// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. derived maps and validation")

	msh := NewMesh(3)
	msh.AddVert(-1, 0, 0, 0)
	msh.AddVert(0, 1, 0, 0)
	msh.AddVert(0, 0, 1, 0)
	msh.AddVert(-2, 0, 0, 1)
	msh.AddCell(-1, "tet4", 0, 1, 2, 3)
	err := msh.CalcDerived()
	if err != nil {
		tst.Errorf("CalcDerived failed:\n%v", err)
		return
	}
	chk.IntAssert(len(msh.VertTag2verts[-1]), 1)
	chk.IntAssert(len(msh.VertTag2verts[-2]), 1)
	chk.IntAssert(len(msh.CellTag2cells[-1]), 1)

	// positive cell tags must be rejected
	bad := NewMesh(3)
	bad.AddVert(0, 0, 0, 0)
	bad.AddVert(0, 1, 0, 0)
	bad.AddCell(1, "lin2", 0, 1)
	if bad.CalcDerived() == nil {
		tst.Errorf("CalcDerived should have failed with a positive cell tag\n")
		return
	}

	// references to inexistent vertices must be rejected
	bad = NewMesh(3)
	bad.AddVert(0, 0, 0, 0)
	bad.AddVert(0, 1, 0, 0)
	bad.AddCell(-1, "lin2", 0, 7)
	if bad.CalcDerived() == nil {
		tst.Errorf("CalcDerived should have failed with an inexistent vertex\n")
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb := &MatDb{Materials: MatsData{
		&Material{Name: "steel", Model: "lin-elast", Prms: dbf.Params{
			&dbf.P{N: "E", V: 200e9},
			&dbf.P{N: "nu", V: 0.3},
		}},
		&Material{Name: "bar", Model: "oned-elast", Prms: dbf.Params{
			&dbf.P{N: "E", V: 200e9},
			&dbf.P{N: "A", V: 0.01},
		}},
	}}
	err := mdb.Init(3)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	steel := mdb.Get("steel")
	if steel == nil || steel.Solid == nil {
		tst.Errorf("cannot get solid material\n")
		return
	}
	bar := mdb.Get("bar")
	if bar == nil || bar.Oned == nil {
		tst.Errorf("cannot get 1D material\n")
		return
	}
	if mdb.Get("wood") != nil {
		tst.Errorf("inexistent material should return nil\n")
		return
	}

	// unknown model name
	bad := &MatDb{Materials: MatsData{
		&Material{Name: "x", Model: "plastic-fantastic"},
	}}
	if bad.Init(3) == nil {
		tst.Errorf("Init should have failed with an unknown model\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. defaults and load factors")

	newsim := func() *Simulation {
		msh := NewMesh(3)
		msh.AddVert(-1, 0, 0, 0)
		msh.AddVert(0, 1, 0, 0)
		msh.AddVert(0, 0, 1, 0)
		msh.AddVert(-2, 0, 0, 1)
		msh.AddCell(-1, "tet4", 0, 1, 2, 3)
		return &Simulation{
			Msh: msh,
			MatParams: &MatDb{Materials: MatsData{
				&Material{Name: "steel", Model: "lin-elast", Prms: dbf.Params{
					&dbf.P{N: "E", V: 200e9},
					&dbf.P{N: "nu", V: 0.3},
				}},
			}},
			ElemsData: []*ElemData{
				{Tag: -1, Type: "solid", Mat: "steel"},
			},
		}
	}

	// defaults
	sim := newsim()
	err := sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.IntAssert(sim.Data.Ndim, 3)
	if sim.Solver.Type != "nr" {
		tst.Errorf("default solver must be %q. %q is wrong\n", "nr", sim.Solver.Type)
		return
	}
	chk.Scalar(tst, "stop_tol_disps", 1e-17, sim.Solver.StopTolDisps, 1e-8)
	chk.Scalar(tst, "stop_tol_force", 1e-17, sim.Solver.StopTolForce, 1e-8)
	chk.IntAssert(sim.Solver.StopTolIters, 20)
	chk.Vector(tst, "load factors", 1e-15, sim.Control.LoadFactors, []float64{1})
	if sim.Etag2data(-1) == nil {
		tst.Errorf("cannot get element data\n")
		return
	}

	// NSteps subdivides the final load factor evenly
	sim = newsim()
	sim.Control.NSteps = 4
	sim.Control.LoadFactor = 2.0
	err = sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Vector(tst, "load factors", 1e-15, sim.Control.LoadFactors, []float64{0.5, 1.0, 1.5, 2.0})

	// non-increasing explicit sequences must be rejected
	sim = newsim()
	sim.Control.LoadFactors = []float64{0.5, 0.5, 1.0}
	if sim.Init() == nil {
		tst.Errorf("Init should have failed with repeated load factors\n")
		return
	}

	// element data referring to no cell must be rejected
	sim = newsim()
	sim.ElemsData[0].Tag = -7
	if sim.Init() == nil {
		tst.Errorf("Init should have failed with an unmatched element data tag\n")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. JSON input")

	data := `{
		"data" : { "desc" : "one tetrahedron", "verbose" : false },
		"solver" : { "type" : "nr", "stop_tol_disps" : 1e-10, "stop_tol_force" : 1e-10, "stop_tol_iters" : 15 },
		"control" : { "nsteps" : 2, "loadfactor" : 1.0 },
		"mesh" : {
			"ndim" : 3,
			"verts" : [
				{ "id" : 0, "tag" : -1, "c" : [0, 0, 0] },
				{ "id" : 1, "tag" :  0, "c" : [1, 0, 0] },
				{ "id" : 2, "tag" :  0, "c" : [0, 1, 0] },
				{ "id" : 3, "tag" : -2, "c" : [0, 0, 1] }
			],
			"cells" : [
				{ "id" : 0, "tag" : -1, "type" : "tet4", "verts" : [0, 1, 2, 3] }
			]
		},
		"materials" : { "materials" : [
			{ "name" : "steel", "model" : "lin-elast", "prms" : [
				{ "n" : "E",  "v" : 2e8 },
				{ "n" : "nu", "v" : 0.25 }
			]}
		]},
		"elements" : [
			{ "tag" : -1, "type" : "solid", "mat" : "steel" }
		],
		"fixbcs" : [
			{ "tag" : -1, "keys" : ["ux", "uy", "uz"] }
		],
		"loadbcs" : [
			{ "tag" : -2, "keys" : ["fz"], "values" : [-10] }
		]
	}`
	sim := new(Simulation)
	err := json.Unmarshal([]byte(data), sim)
	if err != nil {
		tst.Errorf("Unmarshal failed:\n%v", err)
		return
	}
	err = sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "stop_tol_disps", 1e-17, sim.Solver.StopTolDisps, 1e-10)
	chk.IntAssert(sim.Solver.StopTolIters, 15)
	chk.Vector(tst, "load factors", 1e-15, sim.Control.LoadFactors, []float64{0.5, 1.0})
	chk.IntAssert(len(sim.FixBcs), 1)
	chk.IntAssert(len(sim.LoadBcs), 1)
	mat := sim.MatParams.Get("steel")
	if mat == nil || mat.Solid == nil {
		tst.Errorf("material was not initialised\n")
	}
}

func Test_fun01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fun01. load-factor functions")

	funcs := FuncsData{
		&FuncData{Name: "hold", Type: "cte", Prms: dbf.Params{
			&dbf.P{N: "c", V: 2.5},
		}},
	}
	fcn, err := funcs.Get("hold")
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "F(0.3)", 1e-15, fcn.F(0.3, nil), 2.5)

	_, err = funcs.Get("ramp")
	if err == nil {
		tst.Errorf("Get should have failed with an inexistent function\n")
	}
}
