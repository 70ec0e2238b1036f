// SPDX-License-Identifier: MIT

// Package transition implements the random-surfer transition model: given a
// corpus, a current page and a damping factor d, the probability of each page
// being visited next.
//
// What:
//
//   - Current page with k ≥ 1 outbound links: every linked page receives
//     d/k + (1-d)/N, every other page (1-d)/N.
//   - Dangling current page: every page, itself included, receives 1/N.
//     The damping factor has no effect here; the surfer always jumps.
//
// The returned weights sum to 1. Model and Row are pure functions of their
// arguments: they allocate a fresh result on every call and share no state,
// so they may be called concurrently and repeatedly.
//
// Complexity:
//
//   - Model: Time O(N), Memory O(N)
//   - Row:   Time O(N), Memory O(N)
//
// Errors:
//
//   - ErrInvalidPage     current page is not a corpus member
//   - ErrInvalidDamping  d outside [0,1] or NaN
//   - corpus.ErrNilCorpus
package transition
