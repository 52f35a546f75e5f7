// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/io"

// String returns a compact JSON-ish representation of p, in the style of
// inp.Vert.String.
func (p Point) String() string {
	return io.Sf("{\"id\":%d, \"c\":[%23.15e, %23.15e, %23.15e]}", p.ID, p.Coords[0], p.Coords[1], p.Coords[2])
}

// String returns a compact JSON-ish representation of c, in the style of
// inp.Cell.String.
func (c Cell) String() string {
	l := io.Sf("{\"id\":%d, \"type\":%q, \"verts\":%v, \"faces\":[", c.ID, c.Type, c.Verts)
	for i, f := range c.Faces {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%v", f)
	}
	l += "]}"
	return l
}

// String returns a compact JSON-ish representation of the mesh, in the
// style of inp.Mesh.String.
func (o *Mesh) String() string {
	l := io.Sf("{\"npoints\":%d, \"ncells\":%d}", len(o.Points), len(o.Cells))
	return l
}
