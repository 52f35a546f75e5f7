// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/gofracture/fracsplit/mesh"
)

// adjacencyGraph wraps the cell-to-cell graph of spec.md §4.3: vertex set
// U = every cell touching the fracture at any node, with an edge between
// two cells iff they share a face whose vertex-set is not a fracture face.
// Cell ids (ints) are represented as lvlath's string vertex ids.
type adjacencyGraph struct {
	g *core.Graph
}

// buildAdjacencyGraph implements AdjacencyGraph (spec.md §4.3).
func buildAdjacencyGraph(m *mesh.Mesh, faces []FractureFace, nodeToCells map[int][]int) *adjacencyGraph {
	fractureFaceKeys := make(map[string]bool, len(faces))
	for _, f := range faces {
		fractureFaceKeys[faceVertsKey(f.Verts)] = true
	}

	cellSet := make(map[int]bool)
	for _, cells := range nodeToCells {
		for _, c := range cells {
			cellSet[c] = true
		}
	}

	g := core.NewGraph()
	for c := range cellSet {
		if err := g.AddVertex(strconv.Itoa(c)); err != nil {
			chk.Panic("frac: AdjacencyGraph: AddVertex: %v", err)
		}
	}

	buckets := make(map[string][]int)
	for c := range cellSet {
		cell := m.Cell(c)
		for _, face := range cell.Faces {
			key := faceVertsKey(face)
			if fractureFaceKeys[key] {
				continue
			}
			buckets[key] = append(buckets[key], c)
		}
	}

	for _, cells := range buckets {
		if len(cells) != 2 {
			continue
		}
		a, b := strconv.Itoa(cells[0]), strconv.Itoa(cells[1])
		if g.HasEdge(a, b) {
			continue
		}
		if _, err := g.AddEdge(a, b, 0); err != nil {
			chk.Panic("frac: AdjacencyGraph: AddEdge(%s,%s): %v", a, b, err)
		}
	}

	return &adjacencyGraph{g: g}
}

// components restricts the adjacency graph to the induced subgraph on
// cellIDs and returns its connected components as slices of cell ids,
// ordered with the component containing the smallest cell id first (spec.md
// §4.4 step 2's deterministic component ordering).
func (ag *adjacencyGraph) components(cellIDs []int) [][]int {
	sub := core.NewGraph()
	for _, c := range cellIDs {
		if err := sub.AddVertex(strconv.Itoa(c)); err != nil {
			chk.Panic("frac: SplitPlanner: AddVertex: %v", err)
		}
	}
	for _, c := range cellIDs {
		id := strconv.Itoa(c)
		neighbors, err := ag.g.NeighborIDs(id)
		if err != nil {
			// c never touched the fracture-face-free adjacency graph at all
			// (it only appears here via a different node); treat as isolated.
			continue
		}
		for _, nid := range neighbors {
			n, convErr := strconv.Atoi(nid)
			if convErr != nil {
				chk.Panic("frac: SplitPlanner: non-integer cell id %q in adjacency graph", nid)
			}
			// cellIDs is always a small component candidate set, so a linear
			// membership check (as inp/facecond.go does for face vertex
			// lists) is preferable to maintaining a separate set.
			if utl.IntIndexSmall(cellIDs, n) < 0 || n <= c || sub.HasEdge(id, nid) {
				continue
			}
			if _, err := sub.AddEdge(id, nid, 0); err != nil {
				chk.Panic("frac: SplitPlanner: AddEdge(%s,%s): %v", id, nid, err)
			}
		}
	}

	res, err := dfs.DFS(sub, "", dfs.WithFullTraversal())
	if err != nil {
		chk.Panic("frac: SplitPlanner: DFS: %v", err)
	}

	root := make(map[string]string, len(cellIDs))
	var rootOf func(id string) string
	rootOf = func(id string) string {
		cur := id
		for {
			p, ok := res.Parent[cur]
			if !ok {
				return cur
			}
			cur = p
		}
	}
	groups := make(map[string][]int)
	var order []string
	for _, c := range cellIDs {
		id := strconv.Itoa(c)
		r, cached := root[id]
		if !cached {
			r = rootOf(id)
			root[id] = r
		}
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], c)
	}

	components := make([][]int, len(order))
	for i, r := range order {
		components[i] = groups[r]
	}
	// order components by their smallest cell id, per spec.md §4.4 step 2.
	sortComponentsBySmallestCell(components)
	return components
}
