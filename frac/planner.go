// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import "sort"

// sortComponentsBySmallestCell orders components deterministically: the
// component whose smallest cell id is smallest comes first (spec.md §4.4
// step 2).
func sortComponentsBySmallestCell(components [][]int) {
	for _, c := range components {
		sort.Ints(c)
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
}

// buildSplitPlan implements SplitPlanner (spec.md §4.4): for each fracture
// node, in ascending node-id order, partitions its incident cells into
// connected components of the adjacency subgraph, keeps the original node
// id for the first (smallest-cell-id) component, and assigns a fresh id
// (drawn from a counter starting at numPoints) to every subsequent
// component.
func buildSplitPlan(numPoints int, ag *adjacencyGraph, nodeToCells map[int][]int, opts Options) SplitPlan {
	plan := make(SplitPlan)
	nextID := numPoints

	nodes := make([]int, 0, len(nodeToCells))
	for n := range nodeToCells {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)

	for i, n := range nodes {
		opts.report("SplitPlanner", i, len(nodes))
		comps := ag.components(nodeToCells[n])
		for i, comp := range comps {
			newID := n
			if i > 0 {
				newID = nextID
				nextID++
			}
			if newID == n {
				continue
			}
			for _, cell := range comp {
				if plan[cell] == nil {
					plan[cell] = make(map[int]int)
				}
				plan[cell][n] = newID
			}
		}
	}
	return plan
}
