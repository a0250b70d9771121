// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import "fmt"

// Dataset is one labelled input of an experiment.
type Dataset struct {
	Label string
	Data  []int
}

// Experiment is a named group of datasets probing one variable:
// value range, distribution shape, input size, or a known pathology.
type Experiment struct {
	Name     string
	Purpose  string
	Datasets []Dataset
}

// BuildSuite generates the six standard experiments. With short set,
// dataset sizes are cut to a tenth so the suite finishes quickly.
func BuildSuite(g *Generator, short bool) []Experiment {
	n := func(v int) int {
		if short {
			return v / 10
		}
		return v
	}

	rangeSweep := Experiment{
		Name:    "varying value range",
		Purpose: "counting and pigeonhole sort allocate per distinct value, so cost grows with the range; radix and bucket should be mostly unaffected",
	}
	for _, max := range []int{100, 1000, 10_000, 100_000} {
		size := n(1000)
		rangeSweep.Datasets = append(rangeSweep.Datasets, Dataset{
			Label: fmt.Sprintf("range [0,%d] n=%d", max, size),
			Data:  g.Uniform(size, max),
		})
	}

	distSweep := Experiment{
		Name:    "value distributions",
		Purpose: "bucket sort favours uniform input; the others are largely distribution-independent",
	}
	for _, d := range []Distribution{Uniform, Normal, Skewed, Exponential} {
		size := n(5000)
		distSweep.Datasets = append(distSweep.Datasets, Dataset{
			Label: fmt.Sprintf("%s n=%d", d, size),
			Data:  g.Distributed(size, d),
		})
	}

	sizeSweep := Experiment{
		Name:    "scalability",
		Purpose: "all five should grow linearly with input size on well-spread data",
	}
	for _, size := range []int{1000, 5000, 10_000, 20_000} {
		size = n(size)
		sizeSweep.Datasets = append(sizeSweep.Datasets, Dataset{
			Label: fmt.Sprintf("n=%d", size),
			Data:  g.Scalability(size),
		})
	}

	worst := n(5000)
	sparse := n(5000)
	dup := n(5000)

	return []Experiment{
		rangeSweep,
		distSweep,
		sizeSweep,
		{
			Name:    "bucket sort worst case",
			Purpose: "a tiny value range crowds all elements into few buckets, exposing the quadratic insertion-sort path",
			Datasets: []Dataset{{
				Label: fmt.Sprintf("range [0,10] n=%d", worst),
				Data:  g.BucketWorstCase(worst),
			}},
		},
		{
			Name:    "sparse large range",
			Purpose: "few repeats over a large range: heavy memory cost for counting and pigeonhole sort",
			Datasets: []Dataset{{
				Label: fmt.Sprintf("range [0,1e6] n=%d", sparse),
				Data:  g.SparseRange(sparse),
			}},
		},
		{
			Name:    "many duplicates",
			Purpose: "ten distinct keys: the favourable case for counting and pigeonhole sort",
			Datasets: []Dataset{{
				Label: fmt.Sprintf("10 distinct values n=%d", dup),
				Data:  g.ManyDuplicates(dup),
			}},
		},
	}
}
