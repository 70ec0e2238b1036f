// SPDX-License-Identifier: MIT

// Package sampling provides tunable options and error definitions for the
// random-surfer estimator.
package sampling

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultSamples is the conventional walk length. Larger values reduce the
// variance of every rank without changing its expectation.
const DefaultSamples = 10000

// ctxCheckEvery is how many steps pass between cancellation checks.
const ctxCheckEvery = 1024

var (
	// ErrBadSampleCount is returned when the sample count is below 1.
	ErrBadSampleCount = errors.New("sampling: sample count must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sampling: invalid option supplied")
)

// Option configures Sample. Invalid options are recorded and surface as
// ErrOptionViolation when Sample runs.
type Option func(*Options)

// Options holds the knobs of a sampling run.
type Options struct {
	// Ctx allows cancellation of long walks.
	Ctx context.Context

	// Source is the random source owned by this run. Nil means "seed a
	// fresh PCG source for the call".
	Source rand.Source

	// OnVisit is called for every recorded visit with the page and the
	// zero-based step number.
	OnVisit func(page string, step int)

	err error
}

// DefaultOptions returns Options with a background context, no explicit
// source and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Source:  nil,
		OnVisit: func(string, int) {},
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed makes the walk reproducible: the same corpus, damping factor,
// sample count and seed always produce the same table.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource installs src as the run's random source. src must not be
// shared with a concurrent run. Nil is an ErrOptionViolation.
func WithSource(src rand.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil rand.Source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithOnVisit registers a per-visit hook. Nil is ignored.
func WithOnVisit(fn func(page string, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
