// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewPages indicates a size parameter below the constructor minimum.
var ErrTooFewPages = errors.New("builder: too few pages")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied
// (nil constructor, empty explicit ID, ...).
var ErrConstructFailed = errors.New("builder: construction failed")
