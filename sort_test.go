// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var ints = [...]int{74, 59, 238, -784, 9845, 959, 905, 0, 0, 42, 7586, -5467, 7586}
var nonNegatives = [...]int{170, 45, 75, 90, 802, 24, 2, 66}

// algorithms lists the five sorts under their presentation names.
// Radix requires non-negative input; tests that feed negative values
// skip it.
var algorithms = []struct {
	name        string
	sort        func([]int)
	nonNegative bool
}{
	{"CountingStable", CountingStable[int], false},
	{"Counting", Counting[int], false},
	{"Radix", Radix[int], true},
	{"Pigeonhole", Pigeonhole[int], false},
	{"Bucket", Bucket[int], false},
}

// checkSorts verifies that sorting data yields the same result as the
// standard library sort.
func checkSorts(t *testing.T, sortFn func([]int), data []int) {
	t.Helper()
	want := append([]int(nil), data...)
	sort.Ints(want)

	got := append([]int(nil), data...)
	sortFn(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch vs sort.Ints (-want +got):\n%s", diff)
	}
}

func TestSortSample(t *testing.T) {
	want := []int{2, 24, 45, 66, 75, 90, 170, 802}
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := append([]int(nil), nonNegatives[:]...)
			alg.sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("sorted sample mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortNegatives(t *testing.T) {
	for _, alg := range algorithms {
		if alg.nonNegative {
			continue
		}
		t.Run(alg.name, func(t *testing.T) {
			checkSorts(t, alg.sort, ints[:])
		})
	}
}

func TestSortEmpty(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := []int{}
			alg.sort(data)
			if len(data) != 0 {
				t.Errorf("empty input: got %v", data)
			}
			alg.sort(nil)
		})
	}
}

func TestSortSingleElement(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := []int{7}
			alg.sort(data)
			if diff := cmp.Diff([]int{7}, data); diff != "" {
				t.Errorf("single element (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortAllEqual(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := []int{5, 5, 5, 5, 5}
			alg.sort(data)
			if diff := cmp.Diff([]int{5, 5, 5, 5, 5}, data); diff != "" {
				t.Errorf("all-equal input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := append([]int(nil), nonNegatives[:]...)
			alg.sort(data)
			once := append([]int(nil), data...)
			alg.sort(data)
			if diff := cmp.Diff(once, data); diff != "" {
				t.Errorf("second sort changed the slice (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortLarge_Random(t *testing.T) {
	n := 100000
	if testing.Short() {
		n /= 100
	}
	rng := rand.New(rand.NewSource(42))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(1000)
	}
	if IsSorted(data) {
		t.Fatalf("terrible rand.rand")
	}
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			checkSorts(t, alg.sort, data)
		})
	}
}

func TestSortAlreadySorted(t *testing.T) {
	n := 1000
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			got := append([]int(nil), data...)
			alg.sort(got)
			if diff := cmp.Diff(data, got); diff != "" {
				t.Errorf("sorted input changed (-want +got):\n%s", diff)
			}
		})
	}
}

// Radix runs zero digit passes when the maximum value is 0, since
// 0/1 > 0 is false. The input must come back unchanged.
func TestRadixZero(t *testing.T) {
	data := []int{0}
	Radix(data)
	if diff := cmp.Diff([]int{0}, data); diff != "" {
		t.Errorf("Radix([0]) (-want +got):\n%s", diff)
	}

	data = []int{0, 0, 0}
	Radix(data)
	if diff := cmp.Diff([]int{0, 0, 0}, data); diff != "" {
		t.Errorf("Radix all zeros (-want +got):\n%s", diff)
	}
}

func TestRadixDigitBoundaries(t *testing.T) {
	data := []int{1000, 999, 100, 99, 10, 9, 1, 0, 10000, 9999}
	checkSorts(t, Radix[int], data)
}

// Bucket returns through the min == max early path without touching
// the slice.
func TestBucketUniformInput(t *testing.T) {
	data := []int{5, 5, 5, 5, 5}
	Bucket(data)
	if diff := cmp.Diff([]int{5, 5, 5, 5, 5}, data); diff != "" {
		t.Errorf("Bucket uniform input (-want +got):\n%s", diff)
	}
}

// Two distinct values exercise the index clamp: the maximum value maps
// exactly to the last bucket.
func TestBucketTwoValues(t *testing.T) {
	data := []int{9, 1, 9, 1, 9}
	checkSorts(t, Bucket[int], data)
}

// Clustered values force nearly everything into one bucket, the
// quadratic worst case; the result must still be correct.
func TestBucketClustered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]int, 2000)
	for i := range data {
		data[i] = rng.Intn(11)
	}
	data[0] = 1000000 // one outlier stretches the range
	checkSorts(t, Bucket[int], data)
}

func TestSortOtherWidths(t *testing.T) {
	data16 := []int16{300, -7, 0, 300, 12, -300, 5}
	CountingStable(data16)
	if !IsSorted(data16) {
		t.Errorf("CountingStable int16: got %v", data16)
	}

	data32 := []int32{1 << 20, 3, 1 << 10, 3, 0}
	Radix(data32)
	if !IsSorted(data32) {
		t.Errorf("Radix int32: got %v", data32)
	}

	data64 := []int64{-1 << 20, 1 << 20, 0, 42, -42}
	Bucket(data64)
	if !IsSorted(data64) {
		t.Errorf("Bucket int64: got %v", data64)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("IsSorted false negative")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("IsSorted false positive")
	}
}
