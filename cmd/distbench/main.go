// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The distbench command demonstrates the distsort algorithms on a
// small sample and then runs the experiment suite: value-range sweep,
// distribution sweep, size sweep, bucket-sort worst case, sparse large
// range, and many duplicates. Each experiment is rendered as a timing
// table on stdout.
//
// Correctness failures (an algorithm returning a non-sorted slice) are
// logged to stderr and flagged in the table; they do not stop the run.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"

	"github.com/distsort/distsort/bench"
)

var (
	seed     = flag.Uint64("seed", 1, "seed for dataset generation")
	short    = flag.Bool("short", false, "cut dataset sizes to a tenth")
	progress = flag.Bool("progress", false, "show a progress bar on stderr while measuring")
)

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	runDemo(os.Stdout)

	gen := bench.NewGenerator(*seed)
	runner := bench.NewRunner(logger)
	exps := bench.BuildSuite(gen, *short)

	var tick func()
	var bar *pb.ProgressBar
	if *progress {
		bar = pb.New(runner.Measurements(exps)).SetWriter(os.Stderr).Start()
		tick = func() { bar.Increment() }
	}

	results := make([][]bench.Measurement, len(exps))
	for i, e := range exps {
		results[i] = runner.Run(e, tick)
	}
	if bar != nil {
		bar.Finish()
	}

	for i, e := range exps {
		fmt.Printf("\n== %s ==\n%s\n\n", e.Name, e.Purpose)
		if err := bench.WriteTable(os.Stdout, results[i]); err != nil {
			log.Fatal(err)
		}
	}
}

// runDemo sorts the fixed sample with each algorithm, printing the
// input and the result.
func runDemo(w io.Writer) {
	for _, alg := range bench.Algorithms() {
		fmt.Fprintf(w, "\n== %s ==\n", alg.Name)
		data := bench.Sample()
		bench.WriteSample(w, "Original", data)
		alg.Sort(data)
		bench.WriteSample(w, "Sorted  ", data)
	}
}
