// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distsort

import "golang.org/x/exp/constraints"

// Bucket sorts x in ascending order by spreading elements across
// len(x) buckets proportionally to their position within the observed
// value range, insertion-sorting each bucket, and concatenating the
// buckets in index order. O(n) on average for uniformly distributed
// input; degrades toward O(n²) when values cluster into few buckets.
//
// Equal values always map to the same bucket and the per-bucket sort
// is stable, so in practice the output preserves input order of equal
// elements, but stability is not part of the contract.
func Bucket[E constraints.Signed](x []E) {
	if len(x) == 0 {
		return
	}
	min, max := minMax(x)
	if min == max {
		// Every element is the same value; already sorted.
		return
	}

	bucketCount := len(x)
	rng := int64(max) - int64(min) + 1
	buckets := make([][]E, bucketCount)
	for _, v := range x {
		// Widen before multiplying; (v-min)*(bucketCount-1) can
		// exceed the element type.
		idx := (int64(v) - int64(min)) * int64(bucketCount-1) / rng
		if idx > int64(bucketCount-1) {
			idx = int64(bucketCount - 1)
		}
		buckets[idx] = append(buckets[idx], v)
	}

	i := 0
	for _, bucket := range buckets {
		insertionSort(bucket)
		i += copy(x[i:], bucket)
	}
}
