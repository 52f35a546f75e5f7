// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/gofracture/fracsplit/mesh"
)

// twoHexes builds two unit hexahedra sharing the quad face {1,2,6,5}, with
// per-cell field "attribute" set to attrA and attrB respectively — the
// minimal two-cell fixture behind scenarios S1/S2.
func twoHexes(attrA, attrB int) *mesh.Mesh {
	m := mesh.New()
	m.Points = []mesh.Point{
		{ID: 0, Coords: [3]float64{0, 0, 0}},
		{ID: 1, Coords: [3]float64{1, 0, 0}},
		{ID: 2, Coords: [3]float64{1, 1, 0}},
		{ID: 3, Coords: [3]float64{0, 1, 0}},
		{ID: 4, Coords: [3]float64{0, 0, 1}},
		{ID: 5, Coords: [3]float64{1, 0, 1}},
		{ID: 6, Coords: [3]float64{1, 1, 1}},
		{ID: 7, Coords: [3]float64{0, 1, 1}},
		{ID: 8, Coords: [3]float64{2, 0, 0}},
		{ID: 9, Coords: [3]float64{2, 1, 0}},
		{ID: 10, Coords: [3]float64{2, 0, 1}},
		{ID: 11, Coords: [3]float64{2, 1, 1}},
	}
	m.Cells = []mesh.Cell{
		{ID: 0, Type: mesh.Hex8, Verts: []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{ID: 1, Type: mesh.Hex8, Verts: []int{1, 8, 9, 2, 5, 10, 11, 6}},
	}
	m.CellData["attribute"] = mesh.NewIntCellField([]int{attrA, attrB})
	m.Build()
	return m
}

// threeHexesRow chains a third hexahedron onto twoHexes, with field values
// {1,2,2}; only the 0|1 face is ever a fracture candidate.
func threeHexesRow() *mesh.Mesh {
	m := mesh.New()
	m.Points = []mesh.Point{
		{ID: 0, Coords: [3]float64{0, 0, 0}},
		{ID: 1, Coords: [3]float64{1, 0, 0}},
		{ID: 2, Coords: [3]float64{1, 1, 0}},
		{ID: 3, Coords: [3]float64{0, 1, 0}},
		{ID: 4, Coords: [3]float64{0, 0, 1}},
		{ID: 5, Coords: [3]float64{1, 0, 1}},
		{ID: 6, Coords: [3]float64{1, 1, 1}},
		{ID: 7, Coords: [3]float64{0, 1, 1}},
		{ID: 8, Coords: [3]float64{2, 0, 0}},
		{ID: 9, Coords: [3]float64{2, 1, 0}},
		{ID: 10, Coords: [3]float64{2, 0, 1}},
		{ID: 11, Coords: [3]float64{2, 1, 1}},
		{ID: 12, Coords: [3]float64{3, 0, 0}},
		{ID: 13, Coords: [3]float64{3, 1, 0}},
		{ID: 14, Coords: [3]float64{3, 0, 1}},
		{ID: 15, Coords: [3]float64{3, 1, 1}},
	}
	m.Cells = []mesh.Cell{
		{ID: 0, Type: mesh.Hex8, Verts: []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{ID: 1, Type: mesh.Hex8, Verts: []int{1, 8, 9, 2, 5, 10, 11, 6}},
		{ID: 2, Type: mesh.Hex8, Verts: []int{8, 12, 13, 9, 10, 14, 15, 11}},
	}
	m.CellData["attribute"] = mesh.NewIntCellField([]int{1, 2, 2})
	m.Build()
	return m
}

// fourHexBlock builds a 2x2x1 block of four hexahedra (cells 0,1 in row
// j=0 at attribute 1; cells 2,3 in row j=1 at attribute 2), the S3 fixture:
// the vertical edge shared by all four cells carries two fracture nodes
// whose incident-cell set {0,1,2,3} splits into two genuine multi-cell
// components {0,1} and {2,3}, not the trivial singleton-only case that
// twoHexes and threeHexesRow exercise.
func fourHexBlock() *mesh.Mesh {
	m := mesh.New()
	pid := func(x, y, z int) int { return z*9 + y*3 + x }
	m.Points = make([]mesh.Point, 18)
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				id := pid(x, y, z)
				m.Points[id] = mesh.Point{ID: id, Coords: [3]float64{float64(x), float64(y), float64(z)}}
			}
		}
	}
	hex := func(i, j int) []int {
		return []int{
			pid(i, j, 0), pid(i+1, j, 0), pid(i+1, j+1, 0), pid(i, j+1, 0),
			pid(i, j, 1), pid(i+1, j, 1), pid(i+1, j+1, 1), pid(i, j+1, 1),
		}
	}
	m.Cells = []mesh.Cell{
		{ID: 0, Type: mesh.Hex8, Verts: hex(0, 0)},
		{ID: 1, Type: mesh.Hex8, Verts: hex(1, 0)},
		{ID: 2, Type: mesh.Hex8, Verts: hex(0, 1)},
		{ID: 3, Type: mesh.Hex8, Verts: hex(1, 1)},
	}
	m.CellData["attribute"] = mesh.NewIntCellField([]int{1, 1, 2, 2})
	m.Build()
	return m
}

// threeWedgeHub builds three abstract polyhedral cells A, B, C meeting at a
// shared hub node (point 0): A is the only cell at attribute 1, B and C
// share attribute 2 and remain connected through a face that is never a
// fracture face. This is the S4 fixture: the hub node's incident-cell set
// {A,B,C} splits into a singleton {A} and a genuine two-cell component
// {B,C}, exercising the "at least one component has more than one cell but
// fewer than all of them" path that S3's symmetric 2-vs-2 split does not.
func threeWedgeHub() *mesh.Mesh {
	m := mesh.New()
	m.Points = make([]mesh.Point, 7)
	for i := range m.Points {
		m.Points[i] = mesh.Point{ID: i, Coords: [3]float64{float64(i), 0, 0}}
	}
	m.Cells = []mesh.Cell{
		{ID: 0, Type: mesh.Polyhedron, Verts: []int{0, 1, 2, 3, 4}, Faces: [][]int{{0, 1, 2}, {0, 3, 4}}},
		{ID: 1, Type: mesh.Polyhedron, Verts: []int{0, 1, 2, 5, 6}, Faces: [][]int{{0, 1, 2}, {0, 5, 6}}},
		{ID: 2, Type: mesh.Polyhedron, Verts: []int{0, 3, 4, 5, 6}, Faces: [][]int{{0, 3, 4}, {0, 5, 6}}},
	}
	m.CellData["attribute"] = mesh.NewIntCellField([]int{1, 2, 2})
	m.Build()
	return m
}

func Test_split01(tst *testing.T) {

	chk.PrintTitle("Test split01: two hexahedra split across a shared fracture face")

	m := twoHexes(1, 2)
	vol, surf, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(vol.NumPoints(), 16) // 12 original + 4 duplicated fracture nodes
	chk.IntAssert(vol.NumCells(), 2)
	chk.IntAssert(surf.NumPoints(), 4)
	chk.IntAssert(surf.NumCells(), 1)

	if _, has := vol.PointData["collocated_nodes"]; has {
		tst.Fatalf("collocated_nodes is a fracture-mesh-only field")
	}
	if _, has := surf.PointData["collocated_nodes"]; !has {
		tst.Fatalf("fracture mesh missing collocated_nodes")
	}
}

func Test_split02(tst *testing.T) {

	chk.PrintTitle("Test split02: excluded neighbor value yields no fracture")

	// V = {1} excludes cell 1's value 2, so cell 1 is never a candidate and
	// contributes no fracture face even though it is adjacent to cell 0.
	m := twoHexes(1, 2)
	vol, surf, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(vol.NumPoints(), 12)
	chk.IntAssert(surf.NumPoints(), 0)
	chk.IntAssert(surf.NumCells(), 0)
}

func Test_split03(tst *testing.T) {

	chk.PrintTitle("Test split03: three hexahedra in a row, fracture isolated to one face")

	m := threeHexesRow()
	vol, surf, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	// fracture is the single shared face between cell 0 and cell 1:
	// {1,2,6,5}, four nodes, each duplicated once.
	chk.IntAssert(vol.NumPoints(), 20)
	chk.IntAssert(surf.NumPoints(), 4)
	chk.IntAssert(surf.NumCells(), 1)
}

func Test_split04(tst *testing.T) {

	chk.PrintTitle("Test split04: malformed mesh (face shared by 3 cells) panics")

	m := mesh.New()
	m.Points = []mesh.Point{{ID: 0}, {ID: 1}, {ID: 2}}
	m.Cells = []mesh.Cell{
		{ID: 0, Type: mesh.Polyhedron, Verts: []int{0, 1, 2}, Faces: [][]int{{0, 1, 2}}},
		{ID: 1, Type: mesh.Polyhedron, Verts: []int{0, 1, 2}, Faces: [][]int{{0, 1, 2}}},
		{ID: 2, Type: mesh.Polyhedron, Verts: []int{0, 1, 2}, Faces: [][]int{{0, 1, 2}}},
	}
	m.CellData["attribute"] = mesh.NewIntCellField([]int{1, 2, 1})
	m.Build()

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected panic for malformed mesh")
		}
	}()
	Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
}

func Test_split05(tst *testing.T) {

	chk.PrintTitle("Test split05: missing field name is InvalidInput, not a panic")

	m := twoHexes(1, 2)
	_, _, err := Split(m, Options{Field: "does_not_exist", FieldValues: map[int]bool{1: true, 2: true}})
	if err == nil {
		tst.Fatalf("expected an error")
	}
	fe, ok := err.(*Error)
	if !ok {
		tst.Fatalf("expected *frac.Error, got %T", err)
	}
	chk.IntAssert(int(fe.Kind), int(InvalidInput))
}

func Test_split06(tst *testing.T) {

	chk.PrintTitle("Test split06: a cell untouched by the fracture keeps its original point ids")

	m := threeHexesRow()
	vol, _, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	// cell 2 never touches the fracture face between cells 0 and 1, and is not
	// in cell 0's connected component at any fracture node, so its verts are
	// untouched.
	want := []int{8, 12, 13, 9, 10, 14, 15, 11}
	got := vol.Cells[2].Verts
	if len(got) != len(want) {
		tst.Fatalf("cell 2 verts length changed: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			tst.Fatalf("cell 2 verts changed: got %v want %v", got, want)
		}
	}
}

func Test_split07(tst *testing.T) {

	chk.PrintTitle("Test split07: empty admitted-value set degenerates to a pass-through")

	m := twoHexes(1, 2)
	vol, surf, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(vol.NumPoints(), 12)
	chk.IntAssert(surf.NumPoints(), 0)
}

func Test_split08(tst *testing.T) {

	chk.PrintTitle("Test split08: reserved Options values are rejected")

	m := twoHexes(1, 2)
	cases := []Options{
		{Field: "attribute", FieldValues: map[int]bool{1: true}, Policy: "greedy"},
		{Field: "attribute", FieldValues: map[int]bool{1: true}, FieldType: "point"},
		{Field: "attribute", FieldValues: map[int]bool{1: true}, SplitOnDomainBoundary: true},
		{Field: "", FieldValues: map[int]bool{1: true}},
	}
	for i, opts := range cases {
		_, _, err := Split(m, opts)
		if err == nil {
			tst.Fatalf("case %d: expected rejection", i)
		}
	}
}

func Test_split09(tst *testing.T) {

	chk.PrintTitle("Test split09: progress reporting is observational only")

	m := twoHexes(1, 2)
	var stages []string
	vol, _, err := Split(m, Options{
		Field:       "attribute",
		FieldValues: map[int]bool{1: true, 2: true},
		Progress: func(stage string, done, total int) {
			stages = append(stages, stage)
			if chk.Verbose {
				io.Pforan("%s: %d/%d\n", stage, done, total)
			}
		},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(stages) == 0 {
		tst.Fatalf("expected at least one progress report")
	}
	chk.IntAssert(vol.NumPoints(), 16)
}

func Test_split10(tst *testing.T) {

	chk.PrintTitle("Test split10: 2x2x1 hex block splits the shared edge into two multi-cell components")

	m := fourHexBlock()
	vol, surf, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	// the fracture plane y=1 carries 6 fracture nodes (3,4,5,12,13,14); the
	// vertical edge shared by all four cells holds nodes 4 and 13, and there
	// the incident-cell set {0,1,2,3} splits into
	// components {0,1} and {2,3} rather than 4 singletons, so cells 2 and 3
	// each pick up a fresh id for node 4/13 while cells 0 and 1 do not.
	chk.IntAssert(vol.NumPoints(), 24)

	ids := make([]int, vol.NumPoints())
	for i, p := range vol.Points {
		ids[i] = p.ID
	}
	chk.Ints(tst, "volumetric point ids", ids, utl.IntRange(vol.NumPoints()))

	cell0 := []int{0, 1, 4, 3, 9, 10, 13, 12}
	cell1 := []int{1, 2, 5, 4, 10, 11, 14, 13}
	cell2 := []int{18, 19, 7, 6, 21, 22, 16, 15}
	cell3 := []int{19, 20, 8, 7, 22, 23, 17, 16}
	for i, want := range [][]int{cell0, cell1, cell2, cell3} {
		got := vol.Cells[i].Verts
		for j := range want {
			if got[j] != want[j] {
				tst.Fatalf("cell %d verts: got %v want %v", i, got, want)
			}
		}
	}
	// cells 2 and 3 must agree on the new id given to the shared nodes,
	// proving {2,3} was relabeled as one consistent component.
	chk.IntAssert(vol.Cells[2].Verts[1], vol.Cells[3].Verts[0])

	chk.IntAssert(surf.NumPoints(), 6)
	chk.IntAssert(surf.NumCells(), 2)
}

func Test_split11(tst *testing.T) {

	chk.PrintTitle("Test split11: three cells around a hub node split {A} vs {B,C}")

	m := threeWedgeHub()
	vol, _, err := Split(m, Options{Field: "attribute", FieldValues: map[int]bool{1: true, 2: true}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	// face {0,1,2} (A-B) and {0,3,4} (A-C) differ in attribute and are
	// fracture faces; face {0,5,6} (B-C) shares attribute 2 on both sides
	// and is not, so at the hub node B and C stay in one component while A
	// is isolated: {A} vs {B,C}, not three singletons.
	chk.IntAssert(vol.NumPoints(), 12)

	wantA := []int{0, 1, 2, 3, 4}
	wantB := []int{7, 8, 9, 5, 6}
	wantC := []int{7, 10, 11, 5, 6}
	for i, want := range [][]int{wantA, wantB, wantC} {
		got := vol.Cells[i].Verts
		for j := range want {
			if got[j] != want[j] {
				tst.Fatalf("cell %d verts: got %v want %v", i, got, want)
			}
		}
	}
	// B and C must agree on the hub's new id: the {B,C} group was relabeled
	// as a single unit, not as two independent singletons.
	chk.IntAssert(vol.Cells[1].Verts[0], vol.Cells[2].Verts[0])
}
