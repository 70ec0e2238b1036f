// SPDX-License-Identifier: MIT

// Package lvrank ranks the pages of a small, in-memory web corpus by
// PageRank, the stationary distribution of a random surfer.
//
// 🚀 What is lvrank?
//
//	A compact library and command that estimate the same ranking twice:
//		• Sampling: one long random-surfer walk, rank = share of visits
//		• Iteration: the PageRank recurrence repeated to a fixed point
//		• Reference: gonum's network.PageRank as an independent check
//
// ✨ Why two estimators?
//
//   - The walk is simple and obviously correct but noisy.
//   - The iteration is exact up to its threshold and fully deterministic.
//   - Agreement between them is the cheapest test that both are right.
//
// Packages:
//
//	corpus/      immutable page → links graph + concurrency-safe Builder
//	builder/     synthetic corpora (cycle, path, star, complete, random)
//	crawl/       directory of .html documents → corpus
//	transition/  the surfer's next-page distribution
//	sampling/    random-surfer estimator
//	iterate/     fixed-point estimator
//	reference/   gonum cross-check
//	rank/        rank tables and helpers
//	report/      "page: rank" text blocks
//	tictactoe/   exhaustive minimax for noughts and crosses
//
// Quick example:
//
//	c, _ := corpus.FromMap(map[string][]string{
//		"1.html": {"2.html"},
//		"2.html": {"1.html", "3.html"},
//		"3.html": nil,
//	})
//	res, _ := iterate.Iterate(c, transition.DefaultDamping)
//	_ = report.Write(os.Stdout, report.IterationTitle, res.Ranks)
//
// The lvrank command (cmd/lvrank) crawls a directory and prints the
// sampling and iteration blocks; see its -h output for flags.
package lvrank
