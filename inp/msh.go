// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: mesh, materials and simulation settings
package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag; negative tags group vertices for boundary conditions
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag; negative tags select the element data block
	Type  string `json:"type"`  // geometry type; e.g. "tet4", "lin2"
	Verts []int  `json:"verts"` // vertices
}

// Mesh holds a mesh for FE analyses. Meshes are built programmatically by
// upstream mesh-generation tools; no geometry files are parsed here.
type Mesh struct {

	// input
	Ndim  int     `json:"ndim"`  // space dimension
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived: maps
	VertTag2verts map[int][]*Vert `json:"-"` // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell `json:"-"` // cell tag => set of cells
}

// NewMesh returns a new mesh object
func NewMesh(ndim int) *Mesh {
	return &Mesh{Ndim: ndim}
}

// AddVert adds a new vertex and returns its id
func (o *Mesh) AddVert(tag int, coords ...float64) int {
	id := len(o.Verts)
	c := make([]float64, len(coords))
	copy(c, coords)
	o.Verts = append(o.Verts, &Vert{Id: id, Tag: tag, C: c})
	return id
}

// AddCell adds a new cell and returns its id
func (o *Mesh) AddCell(tag int, ctype string, verts ...int) int {
	id := len(o.Cells)
	v := make([]int, len(verts))
	copy(v, verts)
	o.Cells = append(o.Cells, &Cell{Id: id, Tag: tag, Type: ctype, Verts: v})
	return id
}

// CalcDerived checks the mesh and builds the derived maps
func (o *Mesh) CalcDerived() (err error) {

	// check sizes
	if o.Ndim < 2 || o.Ndim > 3 {
		return chk.Err("space dimension must be 2 or 3. Ndim=%d is invalid", o.Ndim)
	}
	if len(o.Verts) < 2 {
		return chk.Err("mesh must have at least 2 vertices. %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 1 cell. %d is invalid", len(o.Cells))
	}

	// vertex related derived data
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must coincide with order in vertices list. %d != %d", v.Id, i)
		}
		if len(v.C) != o.Ndim {
			return chk.Err("vertex %d must have %d coordinates. %d is invalid", v.Id, o.Ndim, len(v.C))
		}
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must coincide with order in cells list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("cell tags must be negative. cell %d has tag %d", c.Id, c.Tag)
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, vid)
			}
		}
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)
	}
	return
}
