// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frac splits an unstructured polyhedral mesh along an internal
// fracture surface implicitly defined by a per-cell integer field, producing
// a volumetric mesh with duplicated nodes and a companion 2-D fracture
// surface mesh (spec.md).
package frac

import "github.com/gofracture/fracsplit/mesh"

// Split is the package's sole external entry point (spec.md §6). It runs the
// full pipeline — FractureDetector, NodeCellIndex, AdjacencyGraph,
// SplitPlanner, MeshAssembler — in that order, reporting progress through
// opts.Progress if set.
//
// m must already be built (mesh.Mesh.Build called) before Split is invoked;
// Split itself never mutates m.
func Split(m *mesh.Mesh, opts Options) (volumetric, fracture *mesh.Mesh, err error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	faces, err := detectFractures(m, opts)
	if err != nil {
		return nil, nil, err
	}

	nodeToCells := buildNodeCellIndex(m, faces)
	fi := FractureInfo{NodeToCells: nodeToCells, Faces: faces}

	ag := buildAdjacencyGraph(m, faces, nodeToCells)
	plan := buildSplitPlan(m.NumPoints(), ag, nodeToCells, opts)

	opts.report("MeshAssembler", 0, 2)
	volumetric, _ = assembleVolumetric(m, plan)
	opts.report("MeshAssembler", 1, 2)
	fracture = assembleFracture(m, fi, plan)
	opts.report("MeshAssembler", 2, 2)

	return volumetric, fracture, nil
}
