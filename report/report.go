// SPDX-License-Identifier: MIT

// Package report renders rank tables as labeled, human-readable blocks:
//
//	PageRank Results from Iteration
//	  1.html: 0.3032
//	  2.html: 0.3936
//
// Pages are listed in ascending order of their ids and ranks are printed
// with four decimals.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvrank/rank"
)

// IterationTitle labels the block produced by the iterative estimator.
const IterationTitle = "PageRank Results from Iteration"

// ReferenceTitle labels the block produced by the gonum estimator.
const ReferenceTitle = "PageRank Results from Reference (gonum)"

// SamplingTitle labels the block produced by an n-sample walk.
func SamplingTitle(n int) string {
	return fmt.Sprintf("PageRank Results from Sampling (n = %d)", n)
}

// Write prints title followed by one "  page: rank" line per page of t.
func Write(w io.Writer, title string, t rank.Table) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, title); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(bw, "  %s: %.4f\n", e.Page, e.Rank); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
