// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the in-memory unstructured polyhedral mesh model
// consumed and produced by package frac. Persistence is left to an
// I/O collaborator outside this module; mesh only models the structure.
package mesh

import "github.com/cpmech/gosl/chk"

// CellType identifies the geometry of a cell.
//
// Polyhedron cells carry an explicit, ordered face description (Cell.Faces)
// since their topology cannot be derived from a fixed local-vertex table.
// The other types are the ones whose face layout is known in advance and
// kept in cellFaceTable (adapted from shp.Shape.FaceLocalVerts).
type CellType int

// recognized cell types
const (
	Polyhedron CellType = iota
	Hex8
	Tet4
	Wedge6
	Pyramid5
)

func (t CellType) String() string {
	switch t {
	case Polyhedron:
		return "poly"
	case Hex8:
		return "hex8"
	case Tet4:
		return "tet4"
	case Wedge6:
		return "wedge6"
	case Pyramid5:
		return "pyramid5"
	}
	return "unknown"
}

// Point holds one vertex of the mesh.
type Point struct {
	ID     int
	Coords [3]float64
}

// Cell holds one polyhedral or standard-shape cell.
//
// Verts is the cell's compact, ordered point list (used directly for
// non-polyhedral relabeling, and as the source for Faces when Faces is not
// supplied explicitly). Faces is the ordered-per-face point-id description;
// for non-polyhedral types it is derived from Verts + cellFaceTable by
// Mesh.Build if not already populated.
type Cell struct {
	ID    int
	Type  CellType
	Verts []int
	Faces [][]int
}

// Mesh is an immutable (after Build) unstructured polyhedral grid.
type Mesh struct {
	Points []Point
	Cells  []Cell

	// per-cell, per-point and per-mesh attribute arrays, keyed by name.
	CellData  map[string]AttributeArray
	PointData map[string]AttributeArray
	FieldData map[string]AttributeArray

	// derived, built by Build
	vertCells map[int][]int       // point id -> incident cell ids (whole mesh)
	faceCells map[string][]int    // face-vertex-set hash -> incident cell ids
	built     bool
}

// New creates an empty mesh ready to be populated and Built.
func New() *Mesh {
	return &Mesh{
		CellData:  make(map[string]AttributeArray),
		PointData: make(map[string]AttributeArray),
		FieldData: make(map[string]AttributeArray),
	}
}

// NumPoints returns the number of points currently in the mesh.
func (o *Mesh) NumPoints() int { return len(o.Points) }

// NumCells returns the number of cells currently in the mesh.
func (o *Mesh) NumCells() int { return len(o.Cells) }

// PointCoords returns the coordinates of point id p.
func (o *Mesh) PointCoords(p int) [3]float64 {
	if p < 0 || p >= len(o.Points) {
		chk.Panic("mesh: point id %d out of range [0,%d)", p, len(o.Points))
	}
	return o.Points[p].Coords
}
