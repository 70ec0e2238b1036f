// SPDX-License-Identifier: MIT

// Package sampling estimates PageRank by simulating one long random surfer.
//
// What:
//
//	The surfer starts on a page chosen uniformly at random, then n times:
//	records a visit to the current page, draws the next page from the
//	transition model of the current page, and moves there. The rank of a
//	page is its visit count divided by n.
//
//	This is a single unbroken Markov chain of length n, not n restarts.
//	No convergence check is made: larger n lowers variance but never
//	changes the expected value. Because ranks are integer counts over n,
//	they sum to 1 up to float rounding, for any n ≥ 1.
//
// Randomness:
//
//	Every call owns its random source. WithSeed gives reproducible runs,
//	WithSource injects any math/rand/v2 Source; with neither, a fresh PCG
//	source is seeded for the call. There is no shared process-wide
//	generator, so concurrent calls are independent.
//
//	Next-page draws use gonum's distuv.Categorical built from
//	transition.Row; rows depend only on the page, so each is built once
//	per call and reused.
//
// Complexity:
//
//	Time O(n·log N + V·N) where V ≤ N is the number of distinct pages
//	visited; Memory O(V·N).
//
// Errors:
//
//   - corpus.ErrNilCorpus, corpus.ErrEmptyCorpus
//   - transition.ErrInvalidDamping
//   - ErrBadSampleCount   n < 1
//   - ErrOptionViolation  invalid option (e.g. nil source)
//   - context errors when cancelled via WithContext
package sampling
