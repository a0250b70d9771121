// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distsort

import "golang.org/x/exp/constraints"

// Pigeonhole sorts x in ascending order by appending each element to a
// hole dedicated to its exact value and reading the holes back in
// value order. Stable, since every hole preserves insertion order.
// O(n+k) time, but the hole table is sized by the value range k rather
// than the element count, so memory cost is high for sparse data over
// a large range.
func Pigeonhole[E constraints.Signed](x []E) {
	if len(x) == 0 {
		return
	}
	min, max := minMax(x)

	holes := make([][]E, int(max-min)+1)
	for _, v := range x {
		holes[int(v-min)] = append(holes[int(v-min)], v)
	}

	i := 0
	for _, hole := range holes {
		i += copy(x[i:], hole)
	}
}
