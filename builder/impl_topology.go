// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_topology.go - deterministic topologies: Cycle, Path, Star, Complete.
//
// Contract shared by all four:
//   - Pages are added via cfg.idFn in ascending index order.
//   - Links are emitted in ascending (i, j) order.
//   - Size below the minimum returns ErrTooFewPages before any mutation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"

	minCycle    = 2
	minPath     = 2
	minStar     = 2
	minComplete = 1
)

// Cycle links page i to page (i+1) mod n. n ≥ 2.
func Cycle(n int) Constructor {
	return func(b *corpus.Builder, cfg config) error {
		if n < minCycle {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycle, ErrTooFewPages)
		}
		if err := addPages(methodCycle, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addLink(methodCycle, b, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path links page i to page i+1; the last page is dangling. n ≥ 2.
func Path(n int) Constructor {
	return func(b *corpus.Builder, cfg config) error {
		if n < minPath {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPath, ErrTooFewPages)
		}
		if err := addPages(methodPath, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addLink(methodPath, b, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star makes page 0 a hub linking to pages 1..n-1, which are dangling. n ≥ 2.
func Star(n int) Constructor {
	return func(b *corpus.Builder, cfg config) error {
		if n < minStar {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStar, ErrTooFewPages)
		}
		if err := addPages(methodStar, b, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addLink(methodStar, b, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every page to every other page. n ≥ 1.
func Complete(n int) Constructor {
	return func(b *corpus.Builder, cfg config) error {
		if n < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minComplete, ErrTooFewPages)
		}
		if err := addPages(methodComplete, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addLink(methodComplete, b, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
