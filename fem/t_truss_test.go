// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/tkrisnguyen/onsas/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// twobarSim builds the symmetric two-bar truss: supports at (0,0) and (2,0),
// apex at (1,1) loaded downwards by P
func twobarSim(tst *testing.T, stype string, nlgeom bool, P float64) *inp.Simulation {
	msh := inp.NewMesh(2)
	msh.AddVert(-1, 0, 0)
	msh.AddVert(-2, 2, 0)
	msh.AddVert(-3, 1, 1)
	msh.AddCell(-1, "lin2", 0, 2)
	msh.AddCell(-1, "lin2", 1, 2)
	sim := &inp.Simulation{
		Solver: inp.SolverData{Type: stype},
		Msh:    msh,
		MatParams: &inp.MatDb{Materials: inp.MatsData{
			&inp.Material{Name: "bar", Model: "oned-elast", Prms: dbf.Params{
				&dbf.P{N: "E", V: 1e7},
				&dbf.P{N: "A", V: 0.01},
			}},
		}},
		ElemsData: []*inp.ElemData{
			{Tag: -1, Type: "truss", Mat: "bar", Nlgeom: nlgeom},
		},
		FixBcs: []*inp.FixBc{
			{Tag: -1, Keys: []string{"ux", "uy"}},
			{Tag: -2, Keys: []string{"ux", "uy"}},
		},
		LoadBcs: []*inp.LoadBc{
			{Tag: -3, Keys: []string{"fy"}, Values: []float64{-P}},
		},
	}
	err := sim.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return nil
	}
	return sim
}

func Test_truss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("truss01. two-bar truss: closed-form deflection")

	// uy = -P*L³/(2*E*A*h²) with L=√2 and h=1
	P := 1000.0
	sim := twobarSim(tst, "lin", false, P)
	if sim == nil {
		return
	}
	a, err := NewAnalysis(sim)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}

	// reference length computed by the elements
	L := math.Sqrt2
	for _, e := range a.Dom.Elems {
		chk.Scalar(tst, "L", 1e-14, e.(*ElemTruss).Length(), L)
	}

	// solve and compare
	err = a.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	EA := 1e7 * 0.01
	uy := -P * L * L * L / (2.0 * EA)
	chk.Scalar(tst, "uy @ apex", 1e-10, a.U(2, "uy"), uy)
	chk.Scalar(tst, "ux @ apex", 1e-10, a.U(2, "ux"), 0)

	// both bars are in compression: ε = uy*h/L² = uy/2
	σ := 1e7 * uy / 2.0
	chk.Scalar(tst, "σ bar 0", 1e-4, a.History[0].Sig[0][0], σ)
	chk.Scalar(tst, "σ bar 1", 1e-4, a.History[0].Sig[1][0], σ)

	// support reactions balance the load
	chk.Scalar(tst, "reaction ux @ 0", 1e-7, a.Reaction(0, "ux"), P/2)
	chk.Scalar(tst, "reaction uy @ 0", 1e-7, a.Reaction(0, "uy"), P/2)
	chk.Scalar(tst, "reaction ux @ 1", 1e-7, a.Reaction(1, "ux"), -P/2)
	chk.Scalar(tst, "reaction uy @ 1", 1e-7, a.Reaction(1, "uy"), P/2)
}

func Test_truss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("truss02. small load: geometric nonlinearity is negligible")

	P := 1.0
	sim := twobarSim(tst, "nr", true, P)
	if sim == nil {
		return
	}
	a, err := NewAnalysis(sim)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	err = a.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	L := math.Sqrt2
	uy := -P * L * L * L / (2.0 * 1e5)
	chk.Scalar(tst, "uy @ apex", 1e-8, a.U(2, "uy"), uy)
	if a.History[0].It >= sim.Solver.StopTolIters {
		tst.Errorf("should have converged within the iteration cap\n")
	}
}

func Test_truss03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("truss03. missing cross-sectional area")

	sim := twobarSim(tst, "lin", false, 1.0)
	if sim == nil {
		return
	}
	sim.MatParams.Get("bar").Prms = dbf.Params{
		&dbf.P{N: "E", V: 1e7},
	}
	dom := NewDomain(sim)
	if dom.SetStage() == nil {
		tst.Errorf("SetStage should have failed without parameter A\n")
	}
}
