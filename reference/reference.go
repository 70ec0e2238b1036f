// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/transition"
)

// PageRank ranks c with gonum and returns a table that sums to 1.
func PageRank(c *corpus.Corpus, damping float64, opts ...Option) (rank.Table, error) {
	if c == nil {
		return nil, corpus.ErrNilCorpus
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := transition.ValidateDamping(damping); err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	if damping >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrUnsupportedDamping, damping)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("reference: %w", corpus.ErrEmptyCorpus)
	}

	scores := network.PageRank(toGraph(c), damping, o.Tolerance)
	if len(scores) != c.Len() {
		return nil, fmt.Errorf("reference: gonum returned %d scores for %d pages", len(scores), c.Len())
	}

	// Sum in index order so the result does not depend on map iteration.
	ordered := make([]float64, c.Len())
	for id, s := range scores {
		ordered[id] = s
	}
	floats.Scale(1/floats.Sum(ordered), ordered)

	t := make(rank.Table, c.Len())
	for i, s := range ordered {
		t[c.Page(i)] = s
	}

	return t, nil
}

// toGraph maps page i to node i and every link to a directed edge.
func toGraph(c *corpus.Corpus) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < c.Len(); i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < c.Len(); i++ {
		for _, j := range c.OutIndices(i) {
			g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
		}
	}

	return g
}
