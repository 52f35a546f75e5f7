// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// faceKey returns a canonical hash of a face's vertex set, order-independent,
// used to detect shared faces (adapted from the frozenset(...) hashing in
// original_source/generate_fractures_2.py).
func faceKey(verts []int) string {
	s := make([]int, len(verts))
	copy(s, verts)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Build finalizes the mesh: fills in derived Faces for non-polyhedral cells
// and computes the whole-mesh point-to-cell and face-to-cell indices that
// every later stage in package frac relies on. Build must be called once,
// after Points and Cells are fully populated, before the mesh is passed to
// frac.Split.
func (o *Mesh) Build() {
	o.vertCells = make(map[int][]int)
	o.faceCells = make(map[string][]int)

	for i := range o.Cells {
		c := &o.Cells[i]
		if c.Faces == nil {
			lf := localFaces(c.Type)
			if lf == nil {
				chk.Panic("mesh: cell %d has type %v but no explicit Faces and no known face table", c.ID, c.Type)
			}
			c.Faces = make([][]int, len(lf))
			for fi, locals := range lf {
				face := make([]int, len(locals))
				for k, lv := range locals {
					face[k] = c.Verts[lv]
				}
				c.Faces[fi] = face
			}
		}

		for _, v := range c.Verts {
			utl.IntIntsMapAppend(&o.vertCells, v, c.ID)
		}
		for _, f := range c.Faces {
			key := faceKey(f)
			o.faceCells[key] = append(o.faceCells[key], c.ID)
		}
	}

	for k, v := range o.vertCells {
		o.vertCells[k] = utl.IntUnique(v)
	}

	o.built = true
}

// CellsAtPoint returns every cell (in the whole mesh) incident to point p.
func (o *Mesh) CellsAtPoint(p int) []int {
	o.assertBuilt()
	return o.vertCells[p]
}

// assertBuilt panics with InternalInvariant-class message if Build was never
// called; this would be a programmer error in the caller, not bad input.
func (o *Mesh) assertBuilt() {
	if !o.built {
		chk.Panic("mesh: Build must be called before querying the mesh")
	}
}
