// SPDX-License-Identifier: MIT

// Package corpus: read-only Corpus queries.
//
// ID-based methods validate their argument and return ErrPageNotFound for
// unknown pages. Index-based methods are the fast path for estimators and
// panic on an out-of-range index, like a slice access would.

package corpus

import "fmt"

// Len returns the number of pages N.
// Complexity: O(1).
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns all page IDs in ascending order. The slice is a copy.
// Complexity: O(N).
func (c *Corpus) Pages() []string {
	out := make([]string, len(c.pages))
	copy(out, c.pages)

	return out
}

// Has reports whether id is a page of the corpus.
// Complexity: O(1).
func (c *Corpus) Has(id string) bool {
	_, ok := c.index[id]

	return ok
}

// Index returns the stable index of page id.
// Complexity: O(1).
func (c *Corpus) Index(id string) (int, bool) {
	i, ok := c.index[id]

	return i, ok
}

// Page returns the page ID at index i.
func (c *Corpus) Page(i int) string { return c.pages[i] }

// OutIndices returns the ascending target indices of page i.
// The returned slice is shared with the corpus and must not be modified.
func (c *Corpus) OutIndices(i int) []int { return c.out[i] }

// IsDanglingIndex reports whether page i has no outbound links.
func (c *Corpus) IsDanglingIndex(i int) bool { return len(c.out[i]) == 0 }

// Links returns the pages linked from id, in ascending order.
// Returns ErrPageNotFound if id is not a page.
// Complexity: O(k) for out-degree k.
func (c *Corpus) Links(id string) ([]string, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("Links(%q): %w", id, ErrPageNotFound)
	}
	out := make([]string, len(c.out[i]))
	for k, j := range c.out[i] {
		out[k] = c.pages[j]
	}

	return out, nil
}

// OutDegree returns the number of pages linked from id.
func (c *Corpus) OutDegree(id string) (int, error) {
	i, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("OutDegree(%q): %w", id, ErrPageNotFound)
	}

	return len(c.out[i]), nil
}

// IsDangling reports whether id has no outbound links.
func (c *Corpus) IsDangling(id string) (bool, error) {
	i, ok := c.index[id]
	if !ok {
		return false, fmt.Errorf("IsDangling(%q): %w", id, ErrPageNotFound)
	}

	return len(c.out[i]) == 0, nil
}

// Map returns a deep copy of the corpus as page → sorted links.
// Complexity: O(N + L).
func (c *Corpus) Map() map[string][]string {
	m := make(map[string][]string, len(c.pages))
	for i, id := range c.pages {
		links := make([]string, len(c.out[i]))
		for k, j := range c.out[i] {
			links[k] = c.pages[j]
		}
		m[id] = links
	}

	return m
}

// Stats returns the counts recorded when the corpus was built.
func (c *Corpus) Stats() Stats { return c.stats }
