// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Option constructors panic on meaningless input (nil functions); the
// constructors themselves never panic and report sentinel errors instead.

package builder

import (
	"math/rand/v2"
	"strconv"
)

// Option customizes corpus construction.
type Option func(*config)

// config is resolved once per Build and passed by value to constructors.
type config struct {
	// idFn maps a page index to its ID.
	idFn func(int) string

	// rng drives stochastic constructors; nil means none configured.
	rng *rand.Rand
}

// newConfig applies opts over deterministic defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{idFn: strconv.Itoa}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the page ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed installs a PCG-backed RNG seeded with seed.
// Use it in tests and examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// HTMLPages is an ID scheme producing "0.html", "1.html", ...; handy when a
// synthetic corpus stands in for a crawled directory.
func HTMLPages(i int) string { return strconv.Itoa(i) + ".html" }
