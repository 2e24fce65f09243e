// Copyright 2026 The Onsas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/tkrisnguyen/onsas/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == one scalar unknown
type Dof struct {
	Key   string // primary variable key; e.g. "ux"
	Eq    int    // equation number in the global system
	Fixed bool   // prescribed (fixed) dof
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{%q eq=%d fixed=%v}", o.Key, o.Eq, o.Fixed)
}

// Node holds the vertex data and all dofs located at the vertex
type Node struct {
	Vert *inp.Vert // pointer to vertex
	Dofs []*Dof    // ordered list of dofs
}

// NewNode returns a new node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof under key, numbering it with eq, and returns the
// next equation number. The call is a no-op if key is already present; shared
// nodes therefore keep one dof per key regardless of how many elements (or
// fields) touch them.
func (o *Node) AddDofAndEq(key string, eq int) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{Key: key, Eq: eq})
	return eq + 1
}

// GetDof returns the dof corresponding to key; nil if not present
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number corresponding to key; -1 if not present
func (o *Node) GetEq(key string) int {
	if dof := o.GetDof(key); dof != nil {
		return dof.Eq
	}
	return -1
}
