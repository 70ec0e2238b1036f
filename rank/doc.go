// SPDX-License-Identifier: MIT

// Package rank defines the value types exchanged between the lvrank estimators
// and their consumers.
//
// What:
//
//   - Distribution: a probability distribution over pages (weights sum to 1).
//     Produced by the transition model for a single "current page".
//   - Table: the finished rank of every page, one per estimator run.
//     Consumed by reporting; never mutated after an estimator returns it.
//
// Both types are plain maps keyed by page ID so they print and compare
// naturally. Every ordered view (Pages, Entries, Top) is deterministic, and
// every reduction (Sum, MaxAbsDiff) walks pages in ascending ID order so the
// floating-point result does not depend on map iteration order.
//
// Complexity:
//
//   - Pages, Entries, Sum: O(N log N) (sorting dominates)
//   - Top(k):              O(N log N)
//   - MaxAbsDiff:          O(N + M log M)
package rank
