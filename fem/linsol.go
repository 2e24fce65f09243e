// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SpCgSolve solves K*x = b on the free equations with the conjugate-gradient
// method. Fixed equations are handled by projection: their entries in x stay
// zero and their rows/columns in K never enter the iteration, so K only needs
// to be symmetric positive definite on the free subspace.
//  Input:
//   K     -- sparse (full) stiffness matrix
//   b     -- right-hand side vector
//   fixed -- mask of fixed equations
//   tol   -- relative tolerance on the residual norm
//   maxit -- maximum number of iterations
//  Output:
//   x -- solution vector; zero at fixed equations
func SpCgSolve(x []float64, K *la.CCMatrix, b []float64, fixed []bool, tol float64, maxit int) (err error) {

	// residual projected onto the free subspace; x starts at zero
	n := len(b)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = 0
		if !fixed[i] {
			r[i] = b[i]
		}
	}
	bnorm := math.Sqrt(la.VecDot(r, r))
	if bnorm == 0 {
		return
	}

	// iterations
	p := la.VecClone(r)
	w := make([]float64, n)
	rr := la.VecDot(r, r)
	for it := 0; it < maxit; it++ {

		// w := K*p restricted to the free equations
		la.SpMatVecMul(w, 1, K, p)
		for i := 0; i < n; i++ {
			if fixed[i] {
				w[i] = 0
			}
		}

		// step length
		pw := la.VecDot(p, w)
		if pw <= 0 {
			return chk.Err("CG breakdown: tangent matrix is not positive definite on the free equations (p·K·p=%g @ iteration %d)", pw, it)
		}
		α := rr / pw

		// update solution and residual
		la.VecAdd(x, α, p)
		la.VecAdd(r, -α, w)
		rrnew := la.VecDot(r, r)
		if math.Sqrt(rrnew) <= tol*bnorm {
			return
		}

		// new search direction
		β := rrnew / rr
		rr = rrnew
		for i := 0; i < n; i++ {
			p[i] = r[i] + β*p[i]
		}
	}
	return chk.Err("CG did not converge after %d iterations (residual=%g, target=%g)", maxit, math.Sqrt(rr), tol*bnorm)
}
