// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	tet4 := &Shape{
		Type:   "tet4",
		Func:   Tet4,
		Gndim:  3,
		Nverts: 4,
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		// single point; the reference tetrahedron has volume 1/6
		Ips: []*Ipoint{
			{R: []float64{0.25, 0.25, 0.25}, W: 1.0 / 6.0},
		},
	}
	tet4.init_scratchpad()
	factory["tet4"] = tet4
}

// Tet4 calculates the shape functions and derivatives of the 4-node
// (constant-strain) tetrahedron
//        t
//        |
//        3
//       /|`.
//       ||  `,
//      / |    ',
//      | |      \
//     /  |       `.
//     |  |         `,
//    /   0 - - - - - 2 --- s
//    |  /          ,'
//    | /        ,'
//    |/      ,'
//    1 -- ,'
//   /
//  r
func Tet4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 1.0 - r[0] - r[1] - r[2]
	S[1] = r[0]
	S[2] = r[1]
	S[3] = r[2]

	if !derivs {
		return
	}

	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[0][2] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[1][2] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
	dSdR[2][2] = 0.0
	dSdR[3][0] = 0.0
	dSdR[3][1] = 0.0
	dSdR[3][2] = 1.0
}
