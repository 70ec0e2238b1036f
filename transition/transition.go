// SPDX-License-Identifier: MIT

package transition

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/rank"
)

// Model returns the distribution over the next page when the surfer is on
// page, following a link with probability damping and jumping uniformly
// otherwise. Dangling pages jump uniformly regardless of damping.
func Model(c *corpus.Corpus, page string, damping float64) (rank.Distribution, error) {
	if c == nil {
		return nil, corpus.ErrNilCorpus
	}
	i, ok := c.Index(page)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPage, page)
	}
	row, err := Row(c, i, damping)
	if err != nil {
		return nil, err
	}

	dist := make(rank.Distribution, len(row))
	for j, w := range row {
		dist[c.Page(j)] = w
	}

	return dist, nil
}

// Row is Model over page indices: row[j] is the probability of moving from
// page i to page j. It is the form the sampling estimator draws from.
func Row(c *corpus.Corpus, i int, damping float64) ([]float64, error) {
	if c == nil {
		return nil, corpus.ErrNilCorpus
	}
	if err := ValidateDamping(damping); err != nil {
		return nil, err
	}
	n := c.Len()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrInvalidPage, i, n)
	}

	row := make([]float64, n)
	out := c.OutIndices(i)
	if len(out) == 0 {
		uniform := 1 / float64(n)
		for j := range row {
			row[j] = uniform
		}
		return row, nil
	}

	jump := (1 - damping) / float64(n)
	for j := range row {
		row[j] = jump
	}
	follow := damping / float64(len(out))
	for _, j := range out {
		row[j] += follow
	}

	return row, nil
}
