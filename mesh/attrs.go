// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// AttributeArray is a named per-cell, per-point, or per-mesh data array.
//
// This is a deliberately minimal stand-in for the generic attribute-array
// container that is an external collaborator in the real system (spec.md
// §1 Non-goals); it exists only so MeshAssembler's propagation rules have
// something concrete to copy, slice-by-reference, and reallocate.
type AttributeArray struct {
	NumComponents int
	Data          []float64
}

// IntAt returns component 0 of tuple i, truncated to int. Used to read
// AttributeField values, which are integer-valued by contract.
func (a AttributeArray) IntAt(i int) int {
	return int(a.Data[i*a.NumComponents])
}

// TupleAt returns the full tuple for index i.
func (a AttributeArray) TupleAt(i int) []float64 {
	start := i * a.NumComponents
	return a.Data[start : start+a.NumComponents]
}

// Len returns the number of tuples stored.
func (a AttributeArray) Len() int {
	if a.NumComponents == 0 {
		return 0
	}
	return len(a.Data) / a.NumComponents
}

// Clone returns a deep copy of a.
func (a AttributeArray) Clone() AttributeArray {
	d := make([]float64, len(a.Data))
	copy(d, a.Data)
	return AttributeArray{NumComponents: a.NumComponents, Data: d}
}

// NewIntCellField builds a single-component per-cell AttributeArray from
// ints, as used by FractureDetector's field lookups in tests.
func NewIntCellField(values []int) AttributeArray {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return AttributeArray{NumComponents: 1, Data: data}
}
