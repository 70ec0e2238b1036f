// SPDX-License-Identifier: MIT

// Package corpus: Builder methods.
//
// AddPage and AddLink are safe for concurrent use. Links are recorded as
// written (including self-links and unknown targets); Build is the single
// place that applies the corpus invariants, so the outcome never depends on
// the order in which pages and links arrived.

package corpus

import (
	"fmt"
	"sort"
)

// AddPage registers a page. Adding an existing page is a no-op.
// Returns ErrEmptyPageID if id is empty.
// Complexity: O(1) amortized.
func (b *Builder) AddPage(id string) error {
	if id == "" {
		return ErrEmptyPageID
	}
	b.muPages.Lock()
	defer b.muPages.Unlock()

	b.pages[id] = struct{}{}

	return nil
}

// AddLink records a link from → to and registers from as a page.
// The target is not registered: a target that never becomes a page is
// discarded by Build. Duplicate links collapse into one.
// Returns ErrEmptyPageID if either endpoint is empty.
// Complexity: O(1) amortized.
func (b *Builder) AddLink(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyPageID
	}
	if err := b.AddPage(from); err != nil {
		return err
	}

	b.muLinks.Lock()
	defer b.muLinks.Unlock()

	targets, ok := b.links[from]
	if !ok {
		targets = make(map[string]struct{})
		b.links[from] = targets
	}
	targets[to] = struct{}{}

	return nil
}

// HasPage reports whether id has been registered.
func (b *Builder) HasPage(id string) bool {
	b.muPages.RLock()
	defer b.muPages.RUnlock()
	_, ok := b.pages[id]

	return ok
}

// PageCount returns the number of registered pages.
func (b *Builder) PageCount() int {
	b.muPages.RLock()
	defer b.muPages.RUnlock()

	return len(b.pages)
}

// Build freezes the builder into a Corpus, applying the corpus invariants:
// self-links and links to unregistered pages are dropped and counted in
// Stats. The builder stays usable; later changes do not affect the result.
//
// Returns ErrEmptyCorpus if no page was registered.
// Complexity: O(P log P + L log L).
func (b *Builder) Build() (*Corpus, error) {
	b.muPages.RLock()
	defer b.muPages.RUnlock()
	b.muLinks.RLock()
	defer b.muLinks.RUnlock()

	if len(b.pages) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyCorpus)
	}

	c := &Corpus{
		pages: make([]string, 0, len(b.pages)),
		index: make(map[string]int, len(b.pages)),
	}
	for id := range b.pages {
		c.pages = append(c.pages, id)
	}
	sort.Strings(c.pages)
	for i, id := range c.pages {
		c.index[id] = i
	}

	c.out = make([][]int, len(c.pages))
	for i, from := range c.pages {
		targets := b.links[from]
		row := make([]int, 0, len(targets))
		for to := range targets {
			switch j, ok := c.index[to]; {
			case to == from:
				c.stats.DroppedSelfLinks++
			case !ok:
				c.stats.DroppedExternalLinks++
			default:
				row = append(row, j)
			}
		}
		sort.Ints(row)
		c.out[i] = row
		c.stats.Links += len(row)
		if len(row) == 0 {
			c.stats.Dangling++
		}
	}
	c.stats.Pages = len(c.pages)

	return c, nil
}

// FromMap builds a Corpus from a page → links mapping. Every key becomes a
// page; link targets are filtered exactly as Build does.
func FromMap(m map[string][]string) (*Corpus, error) {
	b := NewBuilder()
	for page, links := range m {
		if err := b.AddPage(page); err != nil {
			return nil, fmt.Errorf("FromMap: page %q: %w", page, err)
		}
		for _, to := range links {
			if err := b.AddLink(page, to); err != nil {
				return nil, fmt.Errorf("FromMap: link %q→%q: %w", page, to, err)
			}
		}
	}

	return b.Build()
}
