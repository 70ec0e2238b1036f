// SPDX-License-Identifier: MIT

package reference

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the 2-norm convergence bound handed to gonum.
const DefaultTolerance = 1e-8

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reference: invalid option supplied")

	// ErrUnsupportedDamping is returned for d = 1. gonum's solver has no
	// iteration cap and never settles on a periodic corpus without jumps.
	ErrUnsupportedDamping = errors.New("reference: damping factor must be below 1")
)

// Option configures PageRank.
type Option func(*Options)

// Options holds the knobs of a reference run.
type Options struct {
	Tolerance float64

	err error
}

// DefaultOptions returns Options with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance sets gonum's convergence tolerance. It must be positive and
// finite.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance %v", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}
