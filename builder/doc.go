// SPDX-License-Identifier: MIT

// Package builder constructs deterministic synthetic corpora for tests,
// examples and benchmarks of the lvrank estimators.
//
// What:
//
//   - Cycle(n):            p0→p1→…→p(n-1)→p0
//   - Path(n):             p0→p1→…→p(n-1); the last page is dangling
//   - Star(n):             p0 links to every other page; leaves are dangling
//   - Complete(n):         every page links to every other page
//   - RandomSparse(n, p):  each ordered pair (i≠j) linked with probability p
//   - Pages(ids...):       explicit (possibly dangling) pages
//   - Links(pairs...):     explicit links between named pages
//
// Constructors are composed in order by Build, which feeds a single
// corpus.Builder; the corpus invariants (no self-links, no out-of-corpus
// targets) are applied once at the end. Page IDs come from the configured
// ID scheme (decimal "0","1",… by default, see WithIDScheme).
//
// Determinism:
//
//   - Same constructors, options and seed ⇒ identical corpus.
//   - RandomSparse draws its Bernoulli trials in (i asc, j asc) order from
//     the RNG set by WithSeed or WithRand.
//
// Errors:
//
//   - ErrTooFewPages         size parameter below the constructor minimum
//   - ErrInvalidProbability  p outside [0,1]
//   - ErrNeedRandSource      stochastic constructor without an RNG
//   - ErrConstructFailed     nil constructor or malformed explicit input
package builder
