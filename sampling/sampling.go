// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/transition"
)

// surfer holds the mutable state of one walk.
type surfer struct {
	c       *corpus.Corpus
	damping float64
	src     rand.Source

	rows  []distuv.Categorical // rows[i] valid iff built[i]
	built []bool
}

// Sample runs an n-step random surfer over c and returns each page's share
// of visits. Every corpus page is present in the table, with rank 0 if the
// surfer never landed on it.
func Sample(c *corpus.Corpus, damping float64, n int, opts ...Option) (rank.Table, error) {
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
		return nil, fmt.Errorf("sampling: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, n)
	}
	size := c.Len()
	if size == 0 {
		return nil, fmt.Errorf("sampling: %w", corpus.ErrEmptyCorpus)
	}

	src := o.Source
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	s := &surfer{
		c:       c,
		damping: damping,
		src:     src,
		rows:    make([]distuv.Categorical, size),
		built:   make([]bool, size),
	}

	visits := make([]int, size)
	current := rand.New(src).IntN(size)
	for step := 0; step < n; step++ {
		if step%ctxCheckEvery == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}

		visits[current]++
		o.OnVisit(c.Page(current), step)

		next, err := s.next(current)
		if err != nil {
			return nil, err
		}
		current = next
	}

	table := make(rank.Table, size)
	for i, v := range visits {
		table[c.Page(i)] = float64(v) / float64(n)
	}

	return table, nil
}

// next draws the page that follows page i.
func (s *surfer) next(i int) (int, error) {
	if !s.built[i] {
		row, err := transition.Row(s.c, i, s.damping)
		if err != nil {
			return 0, fmt.Errorf("sampling: transition row for %q: %w", s.c.Page(i), err)
		}
		s.rows[i] = distuv.NewCategorical(row, s.src)
		s.built[i] = true
	}

	return int(s.rows[i].Rand()), nil
}
