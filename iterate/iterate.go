// SPDX-License-Identifier: MIT

package iterate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/transition"
)

// solver holds the precomputed link structure and the two rank buffers.
type solver struct {
	n        int
	damping  float64
	inbound  [][]int   // inbound[p] = pages q with q→p, ascending
	weight   []float64 // weight[q] = 1/out(q), 0 for dangling q
	dangling []int     // dangling page indices, ascending

	cur, next []float64
}

// Iterate runs the PageRank recurrence on c until no page's rank changes by
// more than the threshold, and returns the renormalized ranks.
func Iterate(c *corpus.Corpus, damping float64, opts ...Option) (*Result, error) {
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
		return nil, fmt.Errorf("iterate: %w", err)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("iterate: %w", corpus.ErrEmptyCorpus)
	}

	s := newSolver(c, damping)
	for iter := 1; iter <= o.MaxIterations; iter++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		delta := s.step()
		o.OnIteration(iter, delta)
		if delta <= o.Threshold {
			return &Result{Ranks: s.table(c), Iterations: iter, Delta: delta}, nil
		}
	}

	return nil, fmt.Errorf("%w: threshold %v not reached in %d iterations",
		ErrNotConverged, o.Threshold, o.MaxIterations)
}

func newSolver(c *corpus.Corpus, damping float64) *solver {
	n := c.Len()
	s := &solver{
		n:       n,
		damping: damping,
		inbound: make([][]int, n),
		weight:  make([]float64, n),
		cur:     make([]float64, n),
		next:    make([]float64, n),
	}
	for q := 0; q < n; q++ {
		out := c.OutIndices(q)
		if len(out) == 0 {
			s.dangling = append(s.dangling, q)
			continue
		}
		s.weight[q] = 1 / float64(len(out))
		for _, p := range out {
			s.inbound[p] = append(s.inbound[p], q) // q ascends, so inbound stays sorted
		}
	}
	start := 1 / float64(n)
	for i := range s.cur {
		s.cur[i] = start
	}

	return s
}

// step performs one full update plus renormalization, swaps the buffers and
// returns the max per-page change.
func (s *solver) step() float64 {
	nf := float64(s.n)
	jump := (1 - s.damping) / nf

	// Dangling pages spread their rank over every page, themselves included.
	var danglingMass float64
	for _, q := range s.dangling {
		danglingMass += s.cur[q] / nf
	}

	for p := 0; p < s.n; p++ {
		surf := danglingMass
		for _, q := range s.inbound[p] {
			surf += s.cur[q] * s.weight[q]
		}
		s.next[p] = jump + s.damping*surf
	}

	floats.Scale(1/floats.Sum(s.next), s.next)
	delta := floats.Distance(s.cur, s.next, math.Inf(1))
	s.cur, s.next = s.next, s.cur

	return delta
}

func (s *solver) table(c *corpus.Corpus) rank.Table {
	t := make(rank.Table, s.n)
	for i, r := range s.cur {
		t[c.Page(i)] = r
	}

	return t
}
