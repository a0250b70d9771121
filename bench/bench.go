// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench measures the distsort algorithms against synthetic
// datasets of varying range, distribution, and size.
//
// Every measurement runs an algorithm on its own copy of the dataset,
// so timings are taken against an unmodified baseline and the caller's
// data is never touched. After each run the output is checked for the
// non-decreasing postcondition; a violation is logged and the run
// continues, since an incorrect result is a finding to report, not a
// reason to abort the suite.
package bench

import (
	"time"

	"go.uber.org/zap"

	"github.com/distsort/distsort"
)

// Algorithm pairs a sort function with its presentation name. The
// function type is the single dispatch surface the harness knows about.
type Algorithm struct {
	Name string
	Sort func([]int)
}

// Algorithms returns the five distribution sorts in presentation
// order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{"counting (stable)", distsort.CountingStable[int]},
		{"counting (non-stable)", distsort.Counting[int]},
		{"radix (LSD)", distsort.Radix[int]},
		{"pigeonhole", distsort.Pigeonhole[int]},
		{"bucket", distsort.Bucket[int]},
	}
}

// Measurement is the outcome of one algorithm run on one dataset.
type Measurement struct {
	Dataset   string
	Algorithm string
	N         int
	Elapsed   time.Duration
	Sorted    bool
}

// Runner executes measurements and reports postcondition failures
// through its logger.
type Runner struct {
	algs []Algorithm
	log  *zap.Logger
}

// NewRunner returns a Runner over the standard five algorithms. A nil
// logger disables diagnostics.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{algs: Algorithms(), log: log}
}

// Measure times one run of alg over a copy of data and verifies the
// result is non-decreasing. An unsorted result is logged and recorded
// in the Measurement, never returned as an error.
func (r *Runner) Measure(alg Algorithm, label string, data []int) Measurement {
	work := make([]int, len(data))
	copy(work, data)

	start := time.Now()
	alg.Sort(work)
	elapsed := time.Since(start)

	sorted := distsort.IsSorted(work)
	if !sorted {
		r.log.Error("algorithm produced an unsorted result",
			zap.String("algorithm", alg.Name),
			zap.String("dataset", label),
			zap.Int("n", len(data)))
	}
	return Measurement{
		Dataset:   label,
		Algorithm: alg.Name,
		N:         len(data),
		Elapsed:   elapsed,
		Sorted:    sorted,
	}
}

// Run measures every algorithm against every dataset of the
// experiment. If onMeasure is non-nil it is called once per completed
// measurement, which callers use to drive progress reporting.
func (r *Runner) Run(e Experiment, onMeasure func()) []Measurement {
	ms := make([]Measurement, 0, len(e.Datasets)*len(r.algs))
	for _, d := range e.Datasets {
		for _, alg := range r.algs {
			ms = append(ms, r.Measure(alg, d.Label, d.Data))
			if onMeasure != nil {
				onMeasure()
			}
		}
	}
	return ms
}

// Measurements reports how many measurements running all the
// experiments will take.
func (r *Runner) Measurements(exps []Experiment) int {
	n := 0
	for _, e := range exps {
		n += len(e.Datasets) * len(r.algs)
	}
	return n
}
