// SPDX-License-Identifier: MIT

package rank

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps a page ID to the probability of moving to that page next.
// Weights are non-negative and sum to 1 within floating-point tolerance.
type Distribution map[string]float64

// Table maps a page ID to its estimated rank.
type Table map[string]float64

// Entry pairs a page ID with its rank (or weight).
type Entry struct {
	Page string
	Rank float64
}

// Pages returns the page IDs of d in ascending order.
func (d Distribution) Pages() []string { return sortedKeys(d) }

// Sum returns the total weight of d, summed in page order.
func (d Distribution) Sum() float64 { return orderedSum(d) }

// Pages returns the page IDs of t in ascending order.
func (t Table) Pages() []string { return sortedKeys(t) }

// Sum returns the total rank of t, summed in page order.
func (t Table) Sum() float64 { return orderedSum(t) }

// Entries returns t as a slice sorted by page ID.
func (t Table) Entries() []Entry {
	pages := sortedKeys(t)
	out := make([]Entry, len(pages))
	for i, p := range pages {
		out[i] = Entry{Page: p, Rank: t[p]}
	}

	return out
}

// Top returns the k highest-ranked entries, highest first. Ties are broken
// by ascending page ID. k <= 0 or k > len(t) returns every entry.
func (t Table) Top(k int) []Entry {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank > out[j].Rank // stable: equal ranks keep page order
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}

// MaxAbsDiff returns the largest absolute per-page difference between t and
// other. A page present in only one table is compared against 0.
func (t Table) MaxAbsDiff(other Table) float64 {
	union := make(map[string]float64, len(t)+len(other))
	for p := range t {
		union[p] = 0
	}
	for p := range other {
		union[p] = 0
	}
	var worst float64
	for _, p := range sortedKeys(union) {
		worst = math.Max(worst, math.Abs(t[p]-other[p]))
	}

	return worst
}

func sortedKeys[M ~map[string]float64](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func orderedSum[M ~map[string]float64](m M) float64 {
	pages := sortedKeys(m)
	vals := make([]float64, len(pages))
	for i, p := range pages {
		vals[i] = m[p]
	}

	return floats.Sum(vals)
}
