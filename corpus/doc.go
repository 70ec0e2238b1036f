// SPDX-License-Identifier: MIT

// Package corpus provides the immutable link graph that every lvrank
// estimator consumes, plus a thread-safe Builder used to assemble it.
//
// A Corpus C = (P, L) maps each page ID in P to the set of page IDs it links
// to. Build enforces the corpus invariants once, so estimators never have to
// re-check them:
//
//   - Page IDs are unique and non-empty.
//   - No page links to itself (self-links are dropped).
//   - Every link target is itself a page (out-of-corpus targets are dropped).
//   - A page with no remaining outbound links is "dangling".
//   - At least one page exists (otherwise ErrEmptyCorpus).
//
// Pages are stored in ascending lexical order and each one receives a stable
// index in 0..N-1. Index-based accessors (Page, OutIndices, IsDanglingIndex)
// let estimators run over dense slices instead of maps while keeping the
// iteration order deterministic.
//
// Builder methods:
//
//	AddPage(id string) error        // O(1), idempotent
//	AddLink(from, to string) error  // O(1), registers from as a page
//	Build() (*Corpus, error)        // O(P log P + L log L)
//
// Corpus methods:
//
//	Len() int                        // O(1)
//	Pages() []string                 // O(P) copy, sorted
//	Has(id string) bool              // O(1)
//	Index(id string) (int, bool)     // O(1)
//	Links(id string) ([]string, error)
//	OutDegree(id string) (int, error)
//	IsDangling(id string) (bool, error)
//	Map() map[string][]string        // O(P+L) deep copy
//	Stats() Stats                    // O(1)
//
// Errors:
//
//	ErrEmptyPageID  - zero-length page ID
//	ErrPageNotFound - query for a page that is not in the corpus
//	ErrEmptyCorpus  - Build on a builder with no pages
//	ErrNilCorpus    - nil *Corpus passed where one is required
package corpus
