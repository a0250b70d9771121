// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import "golang.org/x/exp/rand"

// Distribution selects the shape of generated values.
type Distribution int

const (
	Uniform Distribution = iota
	Normal
	Skewed
	Exponential
)

func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	case Skewed:
		return "skewed"
	case Exponential:
		return "exponential"
	}
	return "unknown"
}

// Generator produces the synthetic datasets of the experiment suite.
// All values are non-negative so every dataset is valid input for
// radix sort. The generator is deterministic for a given seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns n values drawn uniformly from [0, max].
func (g *Generator) Uniform(n, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = g.rng.Intn(max + 1)
	}
	return out
}

// Distributed returns n values drawn from d. Normal is mean 500,
// stddev 150; the exponential shapes have rate 0.003 (skewed) and
// 0.005 (exponential). All shapes are clamped to [0, 1000].
func (g *Generator) Distributed(n int, d Distribution) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = g.draw(d)
	}
	return out
}

func (g *Generator) draw(d Distribution) int {
	switch d {
	case Normal:
		v := int(500 + 150*g.rng.NormFloat64())
		if v < 0 {
			return 0
		}
		if v > 1000 {
			return 1000
		}
		return v
	case Skewed:
		v := int(g.rng.ExpFloat64() / 0.003)
		if v > 1000 {
			return 1000
		}
		return v
	case Exponential:
		v := int(g.rng.ExpFloat64() / 0.005)
		if v > 1000 {
			return 1000
		}
		return v
	}
	return g.rng.Intn(1001)
}

// ManyDuplicates returns n values over only ten distinct keys, the
// favourable case for the counting-style sorts.
func (g *Generator) ManyDuplicates(n int) []int {
	return g.Uniform(n, 9)
}

// BucketWorstCase returns n values in a range so narrow that the
// proportional mapping lands nearly everything in a few buckets,
// driving bucket sort toward its quadratic path.
func (g *Generator) BucketWorstCase(n int) []int {
	return g.Uniform(n, 10)
}

// SparseRange returns n values spread over [0, 1e6], where the
// counting and pigeonhole tables dwarf the input.
func (g *Generator) SparseRange(n int) []int {
	return g.Uniform(n, 1_000_000)
}

// Scalability returns n values over [0, 1e4] for the size-sweep
// experiment.
func (g *Generator) Scalability(n int) []int {
	return g.Uniform(n, 10_000)
}

// Sample returns the fixed demonstration dataset.
func Sample() []int {
	return []int{170, 45, 75, 90, 802, 24, 2, 66}
}
