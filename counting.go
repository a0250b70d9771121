// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distsort

import "golang.org/x/exp/constraints"

// CountingStable sorts x in ascending order in O(n+k) time and O(n+k)
// space, where k is the range of values present. Equal elements keep
// their original relative order.
func CountingStable[E constraints.Signed](x []E) {
	if len(x) == 0 {
		return
	}
	min, max := minMax(x)

	counts := make([]int, int(max-min)+1)
	for _, v := range x {
		counts[int(v-min)]++
	}

	// Accumulate so counts[i] is one past the output position of the
	// last element with value i+min.
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	// Place right to left: the last occurrence of each value claims
	// the highest remaining slot, so equal elements end up in input
	// order.
	out := make([]E, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]
		counts[int(v-min)]--
		out[counts[int(v-min)]] = v
	}
	copy(x, out)
}

// Counting sorts x in ascending order in O(n+k) time and O(k) space.
// It rebuilds the slice directly from the histogram, emitting each
// value as many times as it was counted, so no guarantee is made about
// the relative order of equal elements. For plain integer elements the
// distinction from CountingStable is not observable, since every copy
// of a value is identical; it would matter only if the element type
// carried a payload beyond the key.
func Counting[E constraints.Signed](x []E) {
	if len(x) == 0 {
		return
	}
	min, max := minMax(x)

	counts := make([]int, int(max-min)+1)
	for _, v := range x {
		counts[int(v-min)]++
	}

	i := 0
	for hole, count := range counts {
		for ; count > 0; count-- {
			x[i] = min + E(hole)
			i++
		}
	}
}
