// SPDX-License-Identifier: MIT

// Package corpus declares the Corpus and Builder types and the sentinel
// errors shared by every estimator.
//
// Builder guards its pages map with muPages and its link map with muLinks,
// mirroring the split-lock model of a mutable graph: crawl workers add links
// for different pages concurrently while page registration stays cheap.
package corpus

import (
	"errors"
	"sync"
)

// Sentinel errors for corpus construction and queries.
var (
	// ErrEmptyPageID indicates that a page ID is the empty string.
	ErrEmptyPageID = errors.New("corpus: page ID is empty")

	// ErrPageNotFound indicates a query referenced a page outside the corpus.
	ErrPageNotFound = errors.New("corpus: page not found")

	// ErrEmptyCorpus indicates that a corpus would have zero pages. Every
	// estimator is undefined on it, so construction fails fast.
	ErrEmptyCorpus = errors.New("corpus: corpus has no pages")

	// ErrNilCorpus indicates a nil *Corpus was supplied.
	ErrNilCorpus = errors.New("corpus: corpus is nil")
)

// Stats summarizes a built corpus and what Build discarded to reach it.
type Stats struct {
	// Pages is the number of pages (N).
	Pages int

	// Links is the number of retained page→page links.
	Links int

	// Dangling is the number of pages with no retained outbound link.
	Dangling int

	// DroppedSelfLinks counts links whose target was their own source.
	DroppedSelfLinks int

	// DroppedExternalLinks counts links whose target is not a corpus page.
	DroppedExternalLinks int
}

// Corpus is an immutable directed link graph over page IDs.
//
// All fields are written once by Build and only read afterwards, so a
// *Corpus may be shared freely between goroutines without locking.
type Corpus struct {
	pages []string       // ascending page IDs; index = position
	index map[string]int // page ID → index
	out   [][]int        // out[i] = ascending target indices of page i
	stats Stats
}

// Builder accumulates pages and links before freezing them into a Corpus.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	muPages sync.RWMutex // guards pages
	muLinks sync.RWMutex // guards links

	pages map[string]struct{}

	// links[from][to] = struct{}{}; targets are kept verbatim until Build.
	links map[string]map[string]struct{}
}

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder() *Builder {
	return &Builder{
		pages: make(map[string]struct{}),
		links: make(map[string]map[string]struct{}),
	}
}
