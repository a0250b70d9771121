// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distsort

import "golang.org/x/exp/constraints"

// Radix sorts x in ascending order by least-significant-digit radix
// sort over decimal digits, running one stable counting pass per digit
// of the largest value. Stable. O(d*(n+10)) time for d digits.
//
// All elements must be non-negative. Digit extraction divides with
// truncation toward zero, so a negative element yields a negative
// digit index and the result is silently incorrect; the precondition
// is not checked.
func Radix[E constraints.Signed](x []E) {
	if len(x) == 0 {
		return
	}
	_, max := minMax(x)

	// pos walks 1, 10, 100, ... past the most significant digit of
	// max. For max == 0 the loop body never runs; a single zero (or
	// any all-zero input) is already sorted.
	for pos := int64(1); int64(max)/pos > 0; pos *= 10 {
		countingByDigit(x, pos)
	}
}

// countingByDigit stably sorts x by the decimal digit selected by pos
// (1 for ones, 10 for tens, ...). One counting-sort pass with a fixed
// ten-slot table, same prefix-sum and right-to-left placement as
// CountingStable.
func countingByDigit[E constraints.Signed](x []E, pos int64) {
	var counts [10]int
	for _, v := range x {
		counts[int64(v)/pos%10]++
	}
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	out := make([]E, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]
		d := int64(v) / pos % 10
		counts[d]--
		out[counts[d]] = v
	}
	copy(x, out)
}
