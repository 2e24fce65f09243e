// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	lin2 := &Shape{
		Type:   "lin2",
		Func:   Lin2,
		Gndim:  1,
		Nverts: 2,
		NatCoords: [][]float64{
			{-1, 1},
		},
		Ips: []*Ipoint{
			{R: []float64{0}, W: 2.0},
		},
	}
	lin2.init_scratchpad()
	factory["lin2"] = lin2
}

// Lin2 calculates the shape functions and derivatives of the 2-node line
//  -1     0     +1
//   0-----------1 --- r
func Lin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])

	if !derivs {
		return
	}

	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}
