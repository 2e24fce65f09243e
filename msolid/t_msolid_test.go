// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. parameters and elastic tensor")

	// from {E, nu}
	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(3, dbf.Params{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	o := mdl.(*LinElast)
	chk.Scalar(tst, "lam", 1e-15, o.Lam, 0.4)
	chk.Scalar(tst, "G", 1e-15, o.G, 0.4)
	if o.Large() {
		tst.Errorf("lin-elast must be a small-strain model\n")
		return
	}

	// from {lam, G}
	mdl2, _ := New("lin-elast")
	err = mdl2.Init(3, dbf.Params{
		&dbf.P{N: "lam", V: 0.4},
		&dbf.P{N: "G", V: 0.4},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	o2 := mdl2.(*LinElast)
	chk.Scalar(tst, "E", 1e-15, o2.E, 1.0)
	chk.Scalar(tst, "nu", 1e-15, o2.Nu, 0.25)

	// D must map ε to the same σ given by Stress
	ε := []float64{0.001, -0.002, 0.0005, 0.003, -0.001, 0.002}
	σ := make([]float64, 6)
	err = o.Stress(σ, ε)
	if err != nil {
		tst.Errorf("Stress failed:\n%v", err)
		return
	}
	D := la.MatAlloc(6, 6)
	err = o.CalcD(D)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	σD := make([]float64, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			σD[i] += D[i][j] * ε[j]
		}
	}
	chk.Vector(tst, "σ = D·ε", 1e-15, σ, σD)

	// hand-computed values
	εv := ε[0] + ε[1] + ε[2]
	chk.Scalar(tst, "σ11", 1e-15, σ[0], 0.4*εv+0.8*ε[0])
	chk.Scalar(tst, "σ23", 1e-15, σ[3], 0.4*ε[3])

	// D must be symmetric
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			chk.Scalar(tst, io.Sf("D%d%d", i, j), 1e-17, D[i][j], D[j][i])
		}
	}
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. invalid parameters")

	mdl, _ := New("lin-elast")

	// unknown parameter
	err := mdl.Init(3, dbf.Params{&dbf.P{N: "kappa", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with an unknown parameter\n")
		return
	}

	// non-positive Young's modulus
	err = mdl.Init(3, dbf.Params{
		&dbf.P{N: "E", V: -1.0},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err == nil {
		tst.Errorf("Init should have failed with E < 0\n")
		return
	}

	// incompressible limit
	err = mdl.Init(3, dbf.Params{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "nu", V: 0.5},
	})
	if err == nil {
		tst.Errorf("Init should have failed with nu == 0.5\n")
		return
	}

	// no parameters at all
	err = mdl.Init(3, nil)
	if err == nil {
		tst.Errorf("Init should have failed without parameters\n")
	}
}

func Test_svk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("svk01. Saint-Venant-Kirchhoff model")

	mdl, err := New("svk")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(3, dbf.Params{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	if !mdl.Large() {
		tst.Errorf("svk must be a large-deformation model\n")
		return
	}

	// uniaxial Green-Lagrange strain: S11 = (λ+2G)·E11, S22 = S33 = λ·E11
	E11 := 0.105
	σ := make([]float64, 6)
	err = mdl.Stress(σ, []float64{E11, 0, 0, 0, 0, 0})
	if err != nil {
		tst.Errorf("Stress failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "S11", 1e-15, σ[0], 1.2*E11)
	chk.Scalar(tst, "S22", 1e-15, σ[1], 0.4*E11)
	chk.Scalar(tst, "S33", 1e-15, σ[2], 0.4*E11)
	chk.Vector(tst, "S shear", 1e-17, σ[3:], []float64{0, 0, 0})
}

func Test_oned01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned01. 1D elastic model")

	mdl, err := NewOneD("oned-elast")
	if err != nil {
		tst.Errorf("NewOneD failed:\n%v", err)
		return
	}

	// extra parameters (e.g. the cross-sectional area) are not the model's
	// business and must be ignored
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "E", V: 200.0},
		&dbf.P{N: "A", V: 0.01},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "σ", 1e-15, mdl.Stress1d(0.002), 0.4)
	chk.Scalar(tst, "D", 1e-15, mdl.CalcD1d(), 200.0)

	// E is required
	mdl2, _ := NewOneD("oned-elast")
	err = mdl2.Init(nil)
	if err == nil {
		tst.Errorf("Init should have failed without E\n")
	}
}
