// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/gofracture/fracsplit/mesh"
)

// assembleVolumetric implements the volumetric half of MeshAssembler
// (spec.md §4.5). Polyhedral cells relabel their explicit Faces
// description, preserving cyclic order (P1); non-polyhedral cells relabel
// the compact Verts list and have Faces recomputed from the cell-type face
// table, per the §9 dispatch redesign.
func assembleVolumetric(m *mesh.Mesh, plan SplitPlan) (*mesh.Mesh, Collocation) {
	added := make(map[int]bool)
	for _, sub := range plan {
		for orig, repl := range sub {
			if repl != orig {
				added[repl] = true
			}
		}
	}
	n := m.NumPoints()
	newN := n + len(added)

	out := mesh.New()
	out.Points = make([]mesh.Point, newN)
	collocation := make(Collocation, newN)
	for i := 0; i < newN; i++ {
		collocation[i] = -1
	}
	for i := 0; i < n; i++ {
		out.Points[i] = m.Points[i]
		collocation[i] = i
	}
	for _, sub := range plan {
		for orig, repl := range sub {
			if repl >= n {
				p := m.Points[orig]
				out.Points[repl] = mesh.Point{ID: repl, Coords: p.Coords}
				collocation[repl] = orig
			}
		}
	}
	for i, c := range collocation {
		if c < 0 {
			chk.Panic("frac: MeshAssembler: collocation table entry %d was never populated", i)
		}
	}

	out.Cells = make([]mesh.Cell, m.NumCells())
	for i, c := range m.Cells {
		mapping := plan[c.ID]
		nc := mesh.Cell{ID: c.ID, Type: c.Type}
		if c.Type == mesh.Polyhedron {
			nc.Faces = make([][]int, len(c.Faces))
			for fi, face := range c.Faces {
				nf := make([]int, len(face))
				for k, p := range face {
					nf[k] = relabel(mapping, p)
				}
				nc.Faces[fi] = nf
			}
			nc.Verts = relabelAll(mapping, c.Verts)
		} else {
			nc.Verts = relabelAll(mapping, c.Verts)
		}
		out.Cells[i] = nc
	}

	propagateAttributes(m, out, collocation)
	out.Build()
	return out, collocation
}

func relabel(mapping map[int]int, p int) int {
	if mapping == nil {
		return p
	}
	if v, ok := mapping[p]; ok {
		return v
	}
	return p
}

func relabelAll(mapping map[int]int, pts []int) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = relabel(mapping, p)
	}
	return out
}

// propagateAttributes implements spec.md §4.5 step 5: per-cell and per-mesh
// arrays are shared (shallow) since cells are in 1:1 correspondence and
// mesh-level data is not geometry-dependent; per-point arrays are
// reallocated at the new size and filled by looking the collocated original
// point up through the collocation table.
func propagateAttributes(in, out *mesh.Mesh, collocation Collocation) {
	for name, arr := range in.CellData {
		out.CellData[name] = arr
	}
	for name, arr := range in.FieldData {
		out.FieldData[name] = arr
	}
	for name, arr := range in.PointData {
		nc := arr.NumComponents
		data := make([]float64, len(collocation)*nc)
		for i, orig := range collocation {
			copy(data[i*nc:(i+1)*nc], arr.TupleAt(orig))
		}
		out.PointData[name] = mesh.AttributeArray{NumComponents: nc, Data: data}
	}
}

// assembleFracture implements the fracture-surface half of MeshAssembler
// (spec.md §4.5.2): a compact 2-D mesh whose points are the (deduplicated)
// fracture nodes in first-appearance order, whose polygons mirror the
// ordered fracture faces remapped into that compact space, and whose
// "collocated_nodes" point-data array records every volumetric copy of each
// 2-D point.
func assembleFracture(m *mesh.Mesh, fi FractureInfo, plan SplitPlan) *mesh.Mesh {
	nodes := fi.fractureNodesInOrder()
	p := len(nodes)
	node3Dto2D := make(map[int]int, p)
	for i, n := range nodes {
		node3Dto2D[n] = i
	}

	out := mesh.New()
	out.Points = make([]mesh.Point, p)
	for i, n := range nodes {
		out.Points[i] = mesh.Point{ID: i, Coords: m.PointCoords(n)}
	}

	out.Cells = make([]mesh.Cell, len(fi.Faces))
	for i, f := range fi.Faces {
		verts2D := make([]int, len(f.Verts))
		for k, n := range f.Verts {
			verts2D[k] = node3Dto2D[n]
		}
		out.Cells[i] = mesh.Cell{ID: i, Type: mesh.Polyhedron, Verts: verts2D, Faces: [][]int{verts2D}}
	}

	buckets := make(map[int]map[int]bool, p)
	for n := range node3Dto2D {
		buckets[node3Dto2D[n]] = map[int]bool{n: true}
	}
	for _, sub := range plan {
		for orig, repl := range sub {
			k, ok := node3Dto2D[orig]
			if !ok {
				continue
			}
			buckets[k][orig] = true
			buckets[k][repl] = true
		}
	}

	if len(buckets) != p {
		chk.Panic("frac: MeshAssembler: surface collocation map has %d keys, want exactly %d (0..%d)", len(buckets), p, p-1)
	}
	maxW := 0
	for _, b := range buckets {
		if len(b) > maxW {
			maxW = len(b)
		}
	}
	table := make([]int, p*maxW)
	for i := range table {
		table[i] = -1
	}
	for k, b := range buckets {
		ids := make([]int, 0, len(b))
		for id := range b {
			ids = append(ids, id)
		}
		// stable order: ascending, so output is deterministic across runs (P8).
		sort.Ints(ids)
		for j, id := range ids {
			table[k*maxW+j] = id
		}
	}
	out.PointData["collocated_nodes"] = mesh.AttributeArray{NumComponents: maxW, Data: toFloats(table)}

	out.Build()
	return out
}

func toFloats(a []int) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}
