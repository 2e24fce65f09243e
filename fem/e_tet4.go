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

// ElemTet4 represents a 4-node (constant-strain) tetrahedron with
// displacements u as primary variables. Depending on the material model the
// element follows either the small-strain path (ε, Cauchy stress) or the
// large-deformation path (Green-Lagrange strain, second Piola-Kirchhoff
// stress, plus geometric stiffness).
type ElemTet4 struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Shp  *shp.Shape  // shape structure
	Nu   int         // total number of unknowns == 12
	Ndim int         // space dimension == 3

	// material model
	Model msolid.Model // material model
	large bool         // large-deformation path

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// reference configuration; constant for the constant-strain tetrahedron
	G   [][]float64 // [4][3] physical shape-function gradients
	vol float64     // reference volume

	// scratchpad. computed @ each evaluation
	ue []float64   // [nu] local displacements
	H  [][]float64 // [3][3] displacement gradient
	F  [][]float64 // [3][3] deformation gradient
	ε  []float64   // [6] strain components
	σ  []float64   // [6] stress components
	St [][]float64 // [3][3] stress tensor corresponding to σ
	P  [][]float64 // [3][3] first Piola-Kirchhoff stress (post-processing)
	B  [][]float64 // [6][nu] strain-displacement matrix
	D  [][]float64 // [6][6] constitutive tangent matrix
	K  [][]float64 // [nu][nu] tangent (stiffness) matrix
	fi []float64   // [nu] internal forces
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	infogetters["solid"] = func(cell *inp.Cell, sim *inp.Simulation) *Info {
		nverts := shp.GetNverts(cell.Type)
		if nverts < 0 {
			return nil
		}
		ykeys := []string{"ux", "uy", "uz"}
		var info Info
		info.Field = "u"
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
		return &info
	}

	// element allocator
	eallocators["solid"] = func(cell *inp.Cell, edat *inp.ElemData, x [][]float64, sim *inp.Simulation) (Elem, error) {

		// basic data
		var o ElemTet4
		o.Cell = cell
		o.X = x
		o.Shp = shp.Get(cell.Type)
		if o.Shp == nil || cell.Type != "tet4" {
			return nil, chk.Err("solid element works with tet4 cells only. cell {id=%d type=%q} is invalid", cell.Id, cell.Type)
		}
		if len(cell.Verts) != o.Shp.Nverts {
			return nil, chk.Err("cell %d must have %d vertices. %d is invalid", cell.Id, o.Shp.Nverts, len(cell.Verts))
		}
		o.Ndim = len(x)
		if o.Ndim != 3 {
			return nil, chk.Err("solid element requires a 3D mesh. ndim=%d is invalid", o.Ndim)
		}
		o.Nu = o.Ndim * o.Shp.Nverts

		// material model
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil || mat.Solid == nil {
			return nil, chk.Err("cannot get solid material %q for cell {tag=%d id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Model = mat.Solid
		o.large = o.Model.Large()

		// scratchpad
		nsig := 6
		o.ue = make([]float64, o.Nu)
		o.H = la.MatAlloc(3, 3)
		o.F = la.MatAlloc(3, 3)
		o.ε = make([]float64, nsig)
		o.σ = make([]float64, nsig)
		o.St = la.MatAlloc(3, 3)
		o.P = la.MatAlloc(3, 3)
		o.B = la.MatAlloc(nsig, o.Nu)
		o.D = la.MatAlloc(nsig, nsig)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		o.fi = make([]float64, o.Nu)
		return &o, nil
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElemTet4) Id() int { return o.Cell.Id }

// SetEqs sets equations and computes the reference-configuration gradients
// and volume. A non-positive volume indicates inverted/misordered
// connectivity and is a fatal modeling error.
func (o *ElemTet4) SetEqs(eqs [][]int) (err error) {

	// assembly map
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		chk.IntAssert(len(eqs[m]), o.Ndim)
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}

	// reference-configuration gradients; constant over the element
	ip := o.Shp.Ips[0]
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return chk.Err("ElemTet4: eid=%d: cannot compute shape gradients:\n%v", o.Id(), err)
	}
	o.vol = o.Shp.J * ip.W
	if o.vol <= 0 {
		return chk.Err("ElemTet4: eid=%d: reference volume=%g is not positive; check the orientation of the connectivity", o.Id(), o.vol)
	}
	o.G = la.MatClone(o.Shp.G)
	return
}

// AddToRhs adds -fint to the global vector fb
func (o *ElemTet4) AddToRhs(fb []float64, sol *Solution) (err error) {

	// strain, stress and B matrix @ current displacements
	err = o.ipvars(sol)
	if err != nil {
		return
	}

	// fi = vol * tr(B) * σ
	la.VecFill(o.fi, 0)
	la.MatTrVecMulAdd(o.fi, o.vol, o.B, o.σ)

	// add to fb
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds the element tangent matrix to the global tangent Kb
func (o *ElemTet4) AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) {

	// strain, stress and B matrix @ current displacements
	err = o.ipvars(sol)
	if err != nil {
		return
	}

	// consistent tangent model matrix
	err = o.Model.CalcD(o.D)
	if err != nil {
		return
	}

	// material stiffness: K = vol * tr(B) * D * B
	la.MatFill(o.K, 0)
	la.MatTrMulAdd3(o.K, o.vol, o.B, o.D, o.B)

	// geometric stiffness: expand G*S*G' into the block-diagonal pattern
	if o.large {
		o.sigTensor()
		for m := 0; m < 4; m++ {
			for n := 0; n < 4; n++ {
				var val float64
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						val += o.G[m][i] * o.St[i][j] * o.G[n][j]
					}
				}
				val *= o.vol
				for k := 0; k < 3; k++ {
					o.K[k+m*3][k+n*3] += val
				}
			}
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

// Update stores stress/strain into sol and refreshes the Piola stress
func (o *ElemTet4) Update(sol *Solution) (err error) {

	// strain and stress @ current displacements
	err = o.ipvars(sol)
	if err != nil {
		return
	}

	// store into solution
	cid := o.Id()
	if sol.Sig[cid] == nil {
		sol.Sig[cid] = make([]float64, len(o.σ))
		sol.Eps[cid] = make([]float64, len(o.ε))
	}
	copy(sol.Sig[cid], o.σ)
	copy(sol.Eps[cid], o.ε)

	// first Piola-Kirchhoff stress; P = F*S for the large-deformation path
	o.sigTensor()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o.large {
				o.P[i][j] = 0
				for k := 0; k < 3; k++ {
					o.P[i][j] += o.F[i][k] * o.St[k][j]
				}
			} else {
				o.P[i][j] = o.St[i][j]
			}
		}
	}
	return
}

// Volume returns the reference-configuration volume
func (o *ElemTet4) Volume() float64 { return o.vol }

// StressPiola returns the first Piola-Kirchhoff stress tensor computed by the
// last call to Update. For output only; not used in the solve.
func (o *ElemTet4) StressPiola() [][]float64 { return o.P }

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipvars computes strain, stress and the B matrix for the current displacements
func (o *ElemTet4) ipvars(sol *Solution) (err error) {

	// local displacements; node-major, component-minor
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}

	// displacement gradient H = u * tr(G)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.H[i][j] = 0
			for m := 0; m < 4; m++ {
				o.H[i][j] += o.ue[i+m*3] * o.G[m][j]
			}
		}
	}

	// strain and deformation gradient
	if o.large {

		// F = H + I
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.F[i][j] = o.H[i][j]
			}
			o.F[i][i] += 1.0
		}

		// Green-Lagrange strain E = (H + tr(H) + tr(H)*H) / 2
		e := func(i, j int) (res float64) {
			res = o.H[i][j] + o.H[j][i]
			for k := 0; k < 3; k++ {
				res += o.H[k][i] * o.H[k][j]
			}
			return res / 2.0
		}
		o.ε[0] = e(0, 0)
		o.ε[1] = e(1, 1)
		o.ε[2] = e(2, 2)
		o.ε[3] = 2.0 * e(1, 2)
		o.ε[4] = 2.0 * e(0, 2)
		o.ε[5] = 2.0 * e(0, 1)

	} else {

		// F = I; geometric nonlinearity ignored
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.F[i][j] = 0
			}
			o.F[i][i] = 1.0
		}

		// small strain ε = (H + tr(H)) / 2
		o.ε[0] = o.H[0][0]
		o.ε[1] = o.H[1][1]
		o.ε[2] = o.H[2][2]
		o.ε[3] = o.H[1][2] + o.H[2][1]
		o.ε[4] = o.H[0][2] + o.H[2][0]
		o.ε[5] = o.H[0][1] + o.H[1][0]
	}

	// stress
	err = o.Model.Stress(o.σ, o.ε)
	if err != nil {
		return
	}

	// B matrix; F couples rotation into B on the large-deformation path
	for m := 0; m < 4; m++ {
		for k := 0; k < 3; k++ {
			c := k + m*3
			o.B[0][c] = o.G[m][0] * o.F[k][0]
			o.B[1][c] = o.G[m][1] * o.F[k][1]
			o.B[2][c] = o.G[m][2] * o.F[k][2]
			o.B[3][c] = o.G[m][1]*o.F[k][2] + o.G[m][2]*o.F[k][1]
			o.B[4][c] = o.G[m][0]*o.F[k][2] + o.G[m][2]*o.F[k][0]
			o.B[5][c] = o.G[m][0]*o.F[k][1] + o.G[m][1]*o.F[k][0]
		}
	}
	return
}

// sigTensor builds the stress tensor St from the components in σ
func (o *ElemTet4) sigTensor() {
	o.St[0][0] = o.σ[0]
	o.St[1][1] = o.σ[1]
	o.St[2][2] = o.σ[2]
	o.St[1][2], o.St[2][1] = o.σ[3], o.σ[3]
	o.St[0][2], o.St[2][0] = o.σ[4], o.σ[4]
	o.St[0][1], o.St[1][0] = o.σ[5], o.σ[5]
}
