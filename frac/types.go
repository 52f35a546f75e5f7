// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

// FractureFace is one face of the fracture surface: an ordered vertex tuple
// (preserved for polygon emission) that is unique by its underlying vertex
// set (spec.md §3 uniqueness invariant).
type FractureFace struct {
	Verts []int
}

// FractureInfo is the output of FractureDetector + NodeCellIndex: the full
// mesh's incidence for every fracture node, plus the ordered, deduplicated
// fracture faces (spec.md §3).
type FractureInfo struct {
	NodeToCells map[int][]int
	Faces       []FractureFace
}

// fractureNodesInOrder returns fracture nodes in first-appearance order, the
// order MeshAssembler's 2-D compact indexing relies on (spec.md §4.5.1).
func (fi FractureInfo) fractureNodesInOrder() []int {
	seen := make(map[int]bool, len(fi.NodeToCells))
	order := make([]int, 0, len(fi.NodeToCells))
	for _, f := range fi.Faces {
		for _, n := range f.Verts {
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}
	return order
}

// SplitPlan is a cell-indexed mapping from original node id to replacement
// node id (spec.md §3). A cell absent from the map, or a node absent from a
// present cell's sub-map, requires no replacement (identity).
type SplitPlan map[int]map[int]int

// Get returns the replacement id for node n in cell c, defaulting to n
// itself when no replacement was planned.
func (p SplitPlan) Get(cell, node int) int {
	if sub, ok := p[cell]; ok {
		if v, ok := sub[node]; ok {
			return v
		}
	}
	return node
}

// Collocation is the volumetric output's collocation table (spec.md §3):
// index i names the original point that output point i duplicates.
type Collocation []int
