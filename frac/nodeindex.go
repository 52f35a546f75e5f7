// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import "github.com/gofracture/fracsplit/mesh"

// buildNodeCellIndex implements NodeCellIndex (spec.md §4.2): for every
// fracture node, the set of every cell in the whole mesh touching it,
// regardless of that cell's field value. Mesh.Build already performed the
// single full-mesh scan this stage's contract describes (spec.md: "Single
// pass, O(total cell-point incidences)"); this stage only restricts that
// precomputed index to the fracture node set.
func buildNodeCellIndex(m *mesh.Mesh, faces []FractureFace) map[int][]int {
	fractureNodes := make(map[int]bool)
	for _, f := range faces {
		for _, n := range f.Verts {
			fractureNodes[n] = true
		}
	}
	out := make(map[int][]int, len(fractureNodes))
	for n := range fractureNodes {
		out[n] = append([]int(nil), m.CellsAtPoint(n)...)
	}
	return out
}
