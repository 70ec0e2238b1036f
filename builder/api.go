// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// api.go - the Build orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
)

// Constructor adds pages and links to b using the resolved config.
// Constructors validate their parameters first and return sentinel errors;
// they never panic.
type Constructor func(b *corpus.Builder, cfg config) error

// Build resolves opts, applies every constructor in order to one
// corpus.Builder and freezes the result.
//
// Errors from constructors are wrapped as "Build: %w"; an empty composition
// surfaces corpus.ErrEmptyCorpus.
//
// Complexity: Σ cost of constructors + O(P log P + L log L) for the freeze.
func Build(opts []Option, cons ...Constructor) (*corpus.Corpus, error) {
	cfg := newConfig(opts...)
	b := corpus.NewBuilder()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return b.Build()
}

// addPages registers pages 0..n-1 via cfg.idFn.
func addPages(method string, b *corpus.Builder, cfg config, n int) error {
	for i := 0; i < n; i++ {
		if err := b.AddPage(cfg.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddPage(%d): %w", method, i, err)
		}
	}

	return nil
}

// addLink wraps Builder.AddLink with method context.
func addLink(method string, b *corpus.Builder, from, to string) error {
	if err := b.AddLink(from, to); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s): %w", method, from, to, err)
	}

	return nil
}
