// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/tkrisnguyen/onsas/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "lin-elast", "svk", "oned-elast"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid msolid.Model // pointer to allocated solid model
	Oned  msolid.OneD  // pointer to allocated 1D model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// Init allocates and initialises all material models
func (o *MatDb) Init(ndim int) (err error) {
	for _, mat := range o.Materials {
		if _, is1d := onedmodels[mat.Model]; is1d {
			mat.Oned, err = msolid.NewOneD(mat.Model)
			if err != nil {
				return
			}
			err = mat.Oned.Init(mat.Prms)
			if err != nil {
				return chk.Err("cannot initialise 1D model of material %q:\n%v", mat.Name, err)
			}
			continue
		}
		mat.Solid, err = msolid.New(mat.Model)
		if err != nil {
			return
		}
		err = mat.Solid.Init(ndim, mat.Prms)
		if err != nil {
			return chk.Err("cannot initialise solid model of material %q:\n%v", mat.Name, err)
		}
	}
	return
}

// Get returns a material by name
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// onedmodels lists the model names handled by the 1D database
var onedmodels = map[string]bool{"oned-elast": true}
