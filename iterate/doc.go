// SPDX-License-Identifier: MIT

// Package iterate computes PageRank by fixed-point iteration of the PageRank
// recurrence. It is the deterministic, randomness-free counterpart of package
// sampling and converges to the same stationary distribution.
//
// What:
//
//	Every page starts at 1/N. One full update computes, for each page p,
//
//	    surf(p) = Σ rank(q)/N        over dangling pages q (p included)
//	            + Σ rank(q)/out(q)   over pages q linking to p
//	    new(p)  = (1-d)/N + d·surf(p)
//
//	then divides every new(p) by Σ new so the table sums to 1. If no page
//	moved by more than the threshold (max-norm of old − new), the
//	renormalized table is returned; otherwise it becomes the next input.
//
// Why deterministic:
//
//	Pages are processed in corpus index order and every sum is taken in
//	that order, so the same corpus and damping factor always produce the
//	same bits.
//
// Key knobs:
//
//   - DefaultThreshold (0.001): convergence bound on the per-page change.
//   - DefaultMaxIterations: iteration cap; exceeding it is ErrNotConverged.
//   - WithOnIteration: per-iteration hook (iteration number, max change).
//   - WithContext: cancellation between iterations.
//
// Complexity:
//
//	Per iteration: Time O(N + L), Memory O(N). The number of iterations is
//	governed by d and the threshold (power-iteration convergence ~ d^k).
//
// Errors:
//
//   - corpus.ErrNilCorpus, corpus.ErrEmptyCorpus
//   - transition.ErrInvalidDamping
//   - ErrOptionViolation  threshold ≤ 0 or max iterations < 1
//   - ErrNotConverged     iteration cap reached
//   - context errors when cancelled via WithContext
package iterate
