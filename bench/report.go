// Copyright 2026 The Distsort Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// maxSampleElements caps how many values WriteSample prints.
const maxSampleElements = 20

// WriteTable renders measurements as an aligned table, one row per
// algorithm run. Unsorted results are flagged in the last column.
func WriteTable(w io.Writer, ms []Measurement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATASET\tALGORITHM\tN\tTIME\t")
	for _, m := range ms {
		status := ""
		if !m.Sorted {
			status = "UNSORTED"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3fms\t%s\n",
			m.Dataset, m.Algorithm, m.N,
			float64(m.Elapsed.Nanoseconds())/1e6, status)
	}
	return tw.Flush()
}

// WriteSample prints a labelled view of data, truncated after
// maxSampleElements values.
func WriteSample(w io.Writer, label string, data []int) {
	fmt.Fprintf(w, "%s:", label)
	n := len(data)
	if n > maxSampleElements {
		n = maxSampleElements
	}
	for _, v := range data[:n] {
		fmt.Fprintf(w, " %d", v)
	}
	if len(data) > maxSampleElements {
		fmt.Fprintf(w, " ... (%d total elements)", len(data))
	}
	fmt.Fprintln(w)
}
