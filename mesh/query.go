// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// FindFaceNeighbor returns the single other cell (if any) that shares the
// face described by faceVerts with cellID. ok is false if the face is a
// boundary face (no neighbor). Panics with an InternalInvariant-class
// message if more than one neighbor is found, i.e. the face is shared by
// more than two cells — a malformed mesh (spec.md §7, scenario S5).
func (o *Mesh) FindFaceNeighbor(cellID int, faceVerts []int) (neighborID int, ok bool) {
	o.assertBuilt()
	bucket := o.faceCells[faceKey(faceVerts)]
	others := make([]int, 0, 1)
	for _, c := range bucket {
		if c != cellID {
			others = append(others, c)
		}
	}
	if len(others) > 1 {
		chk.Panic("mesh: face %v is shared by more than two cells (found %v plus %d); mesh is malformed", faceVerts, cellID, len(others))
	}
	if len(others) == 0 {
		return 0, false
	}
	return others[0], true
}

// Cell returns a pointer to the cell with the given id. Panics if out of
// range; cell ids are always dense 0..NumCells()-1 in this model.
func (o *Mesh) Cell(id int) *Cell {
	if id < 0 || id >= len(o.Cells) {
		chk.Panic("mesh: cell id %d out of range [0,%d)", id, len(o.Cells))
	}
	return &o.Cells[id]
}
