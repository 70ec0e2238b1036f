// SPDX-License-Identifier: MIT

// Package reference ranks a corpus with gonum's network.PageRank and serves
// as an independent cross-check for packages sampling and iterate.
//
// The corpus is mapped onto a gonum simple.DirectedGraph (node ID = corpus
// index, one edge per link). gonum treats dangling nodes exactly like the
// surfer model: their column is the uniform 1/N distribution. The returned
// scores are renormalized to sum to 1 and keyed back by page name.
//
// gonum stops when the 2-norm of the change between iterations drops below
// the tolerance, which differs from the max-norm threshold of package
// iterate, so agreement is expected to within the looser of the two bounds.
//
// Errors:
//
//   - corpus.ErrNilCorpus, corpus.ErrEmptyCorpus
//   - transition.ErrInvalidDamping
//   - ErrUnsupportedDamping  d = 1; use package iterate, which caps its loop
//   - ErrOptionViolation  tolerance ≤ 0 or not finite
package reference
