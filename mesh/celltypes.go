// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// cellFaceTable holds the local-vertex-index layout of each face for the
// non-polyhedral cell types, adapted from shp.Shape.FaceLocalVerts. Indices
// are local to Cell.Verts; Faces for these types is Verts[...] looked up
// through this table, preserving the cyclic order of each face.
var cellFaceTable = map[CellType][][]int{
	Tet4: {
		{0, 2, 1},
		{0, 1, 3},
		{1, 2, 3},
		{0, 3, 2},
	},
	Pyramid5: {
		{0, 3, 2, 1},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	},
	Wedge6: {
		{0, 2, 1},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	},
	Hex8: {
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	},
}

// localFaces returns the local-vertex-index face layout for t, or nil if t
// is Polyhedron (whose faces must be supplied explicitly) or unrecognized.
func localFaces(t CellType) [][]int {
	return cellFaceTable[t]
}
