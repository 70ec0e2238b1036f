// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like directed corpus.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPages); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Ordered pairs (i, j), i ≠ j, tried in (i asc, j asc) order.
//
// Complexity: O(n) pages + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparse    = 1
)

// RandomSparse links each ordered pair of distinct pages with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *corpus.Builder, cfg config) error {
		if n < minRandomSparse {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparse, ErrTooFewPages)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		stochastic := p > 0 && p < 1
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addPages(methodRandomSparse, b, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == 1
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addLink(methodRandomSparse, b, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
