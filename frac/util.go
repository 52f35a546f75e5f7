// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"sort"
	"strconv"
	"strings"
)

// faceVertsKey returns a canonical, order-independent hash of a face's
// vertex set, mirroring mesh's internal faceKey (duplicated here rather than
// exported from mesh, since it is purely a local bookkeeping detail of how
// frac deduplicates faces, not part of the mesh data model's public API).
func faceVertsKey(verts []int) string {
	s := make([]int, len(verts))
	copy(s, verts)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
