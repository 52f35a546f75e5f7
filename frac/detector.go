// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"github.com/gofracture/fracsplit/mesh"
)

// detectFractures implements FractureDetector (spec.md §4.1): it scans
// cells whose field value is admitted, and for each of their faces, queries
// the mesh for the (at most one) neighbor sharing that face. A face becomes
// a fracture face iff both adjacent cells have admitted, distinct field
// values. Boundary faces are never fracture faces; cells whose field value
// is outside the admitted set contribute no fracture faces even when
// adjacent to an admitted cell.
func detectFractures(m *mesh.Mesh, opts Options) ([]FractureFace, error) {
	field, ok := m.CellData[opts.Field]
	if !ok {
		return nil, invalidInput("FractureDetector", "field %q does not exist on mesh", opts.Field)
	}

	type recorded struct {
		verts []int
		key   string
	}
	var candidates []recorded
	seen := make(map[string]bool)

	ncells := m.NumCells()
	for _, c := range m.Cells {
		opts.report("FractureDetector", c.ID, ncells)
		if !opts.FieldValues[field.IntAt(c.ID)] {
			continue
		}
		for _, face := range c.Faces {
			neighbor, ok := m.FindFaceNeighbor(c.ID, face)
			if !ok {
				continue
			}
			nval := field.IntAt(neighbor)
			if !opts.FieldValues[nval] {
				continue
			}
			if nval == field.IntAt(c.ID) {
				continue
			}
			key := faceVertsKey(face)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, recorded{verts: append([]int(nil), face...), key: key})
		}
	}

	faces := make([]FractureFace, len(candidates))
	for i, r := range candidates {
		faces[i] = FractureFace{Verts: r.verts}
	}
	return faces, nil
}
