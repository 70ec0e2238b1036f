// SPDX-License-Identifier: MIT

package reference_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/iterate"
	"github.com/katalvlaran/lvrank/reference"
	"github.com/katalvlaran/lvrank/transition"
)

func TestPageRank_DanglingFixedPoint(t *testing.T) {
	c, err := corpus.FromMap(map[string][]string{"A": {"B"}, "B": nil, "C": {"A"}})
	require.NoError(t, err)
	wantC := 1 / 5.4225

	tbl, err := reference.PageRank(c, 0.85)
	require.NoError(t, err)
	assert.InDelta(t, 1.85*wantC, tbl["A"], 1e-6)
	assert.InDelta(t, 2.5725*wantC, tbl["B"], 1e-6)
	assert.InDelta(t, wantC, tbl["C"], 1e-6)
	assert.InDelta(t, 1.0, tbl.Sum(), 1e-12)
}

func TestPageRank_AgreesWithIterate(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		c, err := builder.Build(
			[]builder.Option{builder.WithSeed(seed), builder.WithIDScheme(builder.HTMLPages)},
			builder.RandomSparse(25, 0.12),
		)
		require.NoError(t, err)

		want, err := iterate.Iterate(c, transition.DefaultDamping, iterate.WithThreshold(1e-10))
		require.NoError(t, err)
		got, err := reference.PageRank(c, transition.DefaultDamping, reference.WithTolerance(1e-10))
		require.NoError(t, err)

		require.Len(t, got, c.Len())
		assert.Less(t, want.Ranks.MaxAbsDiff(got), 1e-6, "seed %d", seed)
	}
}

func TestPageRank_Errors(t *testing.T) {
	c, err := corpus.FromMap(map[string][]string{"A": nil})
	require.NoError(t, err)

	_, err = reference.PageRank(nil, 0.85)
	assert.ErrorIs(t, err, corpus.ErrNilCorpus)

	_, err = reference.PageRank(c, 1.5)
	assert.ErrorIs(t, err, transition.ErrInvalidDamping)

	_, err = reference.PageRank(c, 0.85, reference.WithTolerance(0))
	assert.ErrorIs(t, err, reference.ErrOptionViolation)
}

// With d = 1 a cycle only rotates gonum's start vector, so the call must be
// refused up front instead of running forever.
func TestPageRank_FullDampingRefused(t *testing.T) {
	c, err := builder.Build(nil, builder.Cycle(3))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := reference.PageRank(c, 1)
		done <- err
	}()
	select {
	case err := <-done:
		require.ErrorIs(t, err, reference.ErrUnsupportedDamping)
	case <-time.After(5 * time.Second):
		t.Fatal("PageRank(3-cycle, d=1) did not return")
	}

	tbl, err := reference.PageRank(c, 0.99)
	require.NoError(t, err)
	for _, p := range c.Pages() {
		assert.InDelta(t, 1.0/3, tbl[p], 1e-6, p)
	}
}

func TestPageRank_ZeroDamping(t *testing.T) {
	c, err := builder.Build(nil, builder.Star(4))
	require.NoError(t, err)

	tbl, err := reference.PageRank(c, 0)
	require.NoError(t, err)
	for _, p := range c.Pages() {
		assert.InDelta(t, 0.25, tbl[p], 1e-9, p)
	}
}
