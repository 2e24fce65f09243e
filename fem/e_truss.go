// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/tkrisnguyen/onsas/inp"
	"github.com/tkrisnguyen/onsas/msolid"
	"github.com/tkrisnguyen/onsas/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ElemTruss represents a 2-node bar that carries axial force only. The
// one-dimensional material law maps axial strain to axial stress; the
// cross-sectional area A comes from the material parameters. With the
// "nlgeom" flag on, the axial strain is the Green-Lagrange measure in the
// reference configuration and the tangent carries the geometric term.
type ElemTruss struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Shp  *shp.Shape  // shape structure
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// material
	Model  msolid.OneD // material model
	A      float64     // cross-sectional area
	nlgeom bool        // follow the large-deformation path

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// reference configuration
	L float64   // reference length
	b []float64 // [ndim] reference unit direction, node 0 to node 1

	// scratchpad. computed @ each evaluation
	Δu []float64   // [ndim] relative displacement
	q  []float64   // [ndim] force-direction vector
	ε  float64     // axial strain
	σ  float64     // axial stress
	K  [][]float64 // [nu][nu] tangent (stiffness) matrix
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	infogetters["truss"] = func(cell *inp.Cell, sim *inp.Simulation) *Info {
		ykeys := []string{"ux", "uy", "uz"}[:sim.Msh.Ndim]
		var info Info
		info.Field = "u"
		info.Dofs = make([][]string, 2)
		for m := 0; m < 2; m++ {
			info.Dofs[m] = ykeys
		}
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
		return &info
	}

	// element allocator
	eallocators["truss"] = func(cell *inp.Cell, edat *inp.ElemData, x [][]float64, sim *inp.Simulation) (Elem, error) {

		// basic data
		var o ElemTruss
		o.Cell = cell
		o.X = x
		o.Shp = shp.Get(cell.Type)
		if o.Shp == nil || cell.Type != "lin2" {
			return nil, chk.Err("truss element works with lin2 cells only. cell {id=%d type=%q} is invalid", cell.Id, cell.Type)
		}
		if len(cell.Verts) != o.Shp.Nverts {
			return nil, chk.Err("cell %d must have %d vertices. %d is invalid", cell.Id, o.Shp.Nverts, len(cell.Verts))
		}
		o.Ndim = len(x)
		o.Nu = 2 * o.Ndim

		// material model
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil || mat.Oned == nil {
			return nil, chk.Err("cannot get 1D material %q for cell {tag=%d id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Model = mat.Oned
		prm := mat.Prms.Find("A")
		if prm == nil {
			return nil, chk.Err("truss element requires parameter \"A\" (cross-sectional area) in material %q", edat.Mat)
		}
		o.A = prm.V
		if o.A <= 0 {
			return nil, chk.Err("truss element: cross-sectional area A=%g must be positive", o.A)
		}
		o.nlgeom = edat.Nlgeom

		// scratchpad
		o.b = make([]float64, o.Ndim)
		o.Δu = make([]float64, o.Ndim)
		o.q = make([]float64, o.Ndim)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		return &o, nil
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElemTruss) Id() int { return o.Cell.Id }

// SetEqs sets equations and computes the reference length and direction
func (o *ElemTruss) SetEqs(eqs [][]int) (err error) {

	// assembly map
	o.Umap = make([]int, o.Nu)
	for m := 0; m < 2; m++ {
		chk.IntAssert(len(eqs[m]), o.Ndim)
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}

	// reference length and direction
	ip := o.Shp.Ips[0]
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return chk.Err("ElemTruss: eid=%d: cannot compute reference length:\n%v", o.Id(), err)
	}
	o.L = o.Shp.J * ip.W
	for i := 0; i < o.Ndim; i++ {
		o.b[i] = o.Shp.Jvec3d[i] / o.Shp.J
	}
	return
}

// AddToRhs adds -fint to the global vector fb
func (o *ElemTruss) AddToRhs(fb []float64, sol *Solution) (err error) {
	o.ipvars(sol)
	N := o.A * o.σ
	for i := 0; i < o.Ndim; i++ {
		fb[o.Umap[i]] += N * o.q[i]
		fb[o.Umap[i+o.Ndim]] -= N * o.q[i]
	}
	return
}

// AddToKb adds the element tangent matrix to the global tangent Kb
func (o *ElemTruss) AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) {

	// strain, stress and force direction @ current displacements
	o.ipvars(sol)

	// material + geometric stiffness in the ± block pattern
	c := o.A * o.Model.CalcD1d() / o.L
	g := 0.0
	if o.nlgeom {
		g = o.A * o.σ / o.L
	}
	nd := o.Ndim
	for i := 0; i < nd; i++ {
		for j := 0; j < nd; j++ {
			v := c * o.q[i] * o.q[j]
			if i == j {
				v += g
			}
			o.K[i][j] = v
			o.K[i][j+nd] = -v
			o.K[i+nd][j] = -v
			o.K[i+nd][j+nd] = v
		}
	}

	// add K to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update stores the axial stress/strain into sol
func (o *ElemTruss) Update(sol *Solution) (err error) {
	o.ipvars(sol)
	cid := o.Id()
	if sol.Sig[cid] == nil {
		sol.Sig[cid] = make([]float64, 1)
		sol.Eps[cid] = make([]float64, 1)
	}
	sol.Sig[cid][0] = o.σ
	sol.Eps[cid][0] = o.ε
	return
}

// Length returns the reference length
func (o *ElemTruss) Length() float64 { return o.L }

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipvars computes strain, stress and the force direction for the current
// displacements. On the large-deformation path, q = (d + Δu)/L points along
// the deformed bar scaled by the stretch; otherwise q == b.
func (o *ElemTruss) ipvars(sol *Solution) {
	bΔu, ΔuΔu := 0.0, 0.0
	for i := 0; i < o.Ndim; i++ {
		o.Δu[i] = sol.Y[o.Umap[i+o.Ndim]] - sol.Y[o.Umap[i]]
		bΔu += o.b[i] * o.Δu[i]
		ΔuΔu += o.Δu[i] * o.Δu[i]
	}
	if o.nlgeom {
		o.ε = bΔu/o.L + ΔuΔu/(2.0*o.L*o.L)
		for i := 0; i < o.Ndim; i++ {
			o.q[i] = o.b[i] + o.Δu[i]/o.L
		}
	} else {
		o.ε = bΔu / o.L
		copy(o.q, o.b)
	}
	o.σ = o.Model.Stress1d(o.ε)
}
