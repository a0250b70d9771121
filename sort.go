// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distsort implements non-comparison sorting algorithms for
// integer slices: counting sort (stable and non-stable), LSD radix
// sort, pigeonhole sort, and bucket sort.
//
// Each function sorts a slice in ascending order in place. All working
// buffers (count tables, output buffers, hole and bucket collections)
// are scoped to a single call, and no function keeps state between
// calls, so concurrent calls on disjoint slices are safe. Concurrent
// calls mutating the same slice are not.
//
// The counting-style algorithms allocate memory proportional to the
// value range max-min+1, so they are a poor fit for sparse data spread
// over a large range; see the individual function comments.
package distsort

import "golang.org/x/exp/constraints"

// IsSorted reports whether x is non-decreasing.
func IsSorted[E constraints.Ordered](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// minMax returns the smallest and largest elements of x in a single
// scan. x must be non-empty.
func minMax[E constraints.Ordered](x []E) (min, max E) {
	min, max = x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// insertionSort sorts x in place. Stable. Used to finish individual
// buckets in Bucket, where runs are expected to be short.
func insertionSort[E constraints.Ordered](x []E) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		j := i - 1
		for j >= 0 && x[j] > key {
			x[j+1] = x[j]
			j--
		}
		x[j+1] = key
	}
}
