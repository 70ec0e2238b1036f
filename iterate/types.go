// SPDX-License-Identifier: MIT

// Package iterate defines options, errors and the result type of the
// fixed-point estimator.
package iterate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvrank/rank"
)

const (
	// DefaultThreshold is the largest per-page rank change still counted as
	// converged. Smaller values cost more iterations and give more digits.
	DefaultThreshold = 0.001

	// DefaultMaxIterations caps the loop. Any damping factor below 1
	// converges far sooner; the cap only guards against d = 1 on corpora
	// whose chain never settles (e.g. a periodic cycle with no jumps).
	DefaultMaxIterations = 10000
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iterate: invalid option supplied")

	// ErrNotConverged is returned when the iteration cap is reached before
	// the threshold is met.
	ErrNotConverged = errors.New("iterate: did not converge")
)

// Option configures Iterate.
type Option func(*Options)

// Options holds the knobs of a fixed-point run.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Threshold is the convergence bound on max |old(p) − new(p)|.
	Threshold float64

	// MaxIterations caps the number of full updates.
	MaxIterations int

	// OnIteration is called after each full update with its 1-based number
	// and the max per-page change it produced.
	OnIteration func(iter int, delta float64)

	err error
}

// DefaultOptions returns Options with DefaultThreshold, DefaultMaxIterations,
// a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
		OnIteration:   func(int, float64) {},
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

// WithThreshold sets the convergence bound. It must be positive and finite.
func WithThreshold(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.err = fmt.Errorf("%w: threshold must be positive, got %v", ErrOptionViolation, eps)
			return
		}
		o.Threshold = eps
	}
}

// WithMaxIterations sets the iteration cap. It must be at least 1.
func WithMaxIterations(limit int) Option {
	return func(o *Options) {
		if limit < 1 {
			o.err = fmt.Errorf("%w: max iterations must be ≥ 1, got %d", ErrOptionViolation, limit)
			return
		}
		o.MaxIterations = limit
	}
}

// WithOnIteration registers a per-iteration hook. Nil is ignored.
func WithOnIteration(fn func(iter int, delta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Result is the outcome of a converged run.
type Result struct {
	// Ranks holds the final, renormalized rank of every page.
	Ranks rank.Table

	// Iterations is the number of full updates performed.
	Iterations int

	// Delta is the max per-page change of the last update (≤ threshold).
	Delta float64
}
