// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_explicit.go - Pages and Links: named pages and links, for fixtures
// that need a specific shape on top of (or instead of) a topology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/corpus"
)

const (
	methodPages = "Pages"
	methodLinks = "Links"
)

// Pages registers the given page IDs verbatim (cfg.idFn is not applied).
func Pages(ids ...string) Constructor {
	return func(b *corpus.Builder, _ config) error {
		for _, id := range ids {
			if err := b.AddPage(id); err != nil {
				return fmt.Errorf("%s: AddPage(%q): %w: %w", methodPages, id, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

// Links records each {from, to} pair verbatim. Sources become pages;
// targets must be registered by some constructor or Build drops them.
func Links(pairs ...[2]string) Constructor {
	return func(b *corpus.Builder, _ config) error {
		for _, pr := range pairs {
			if err := b.AddLink(pr[0], pr[1]); err != nil {
				return fmt.Errorf("%s: AddLink(%q→%q): %w: %w", methodLinks, pr[0], pr[1], ErrConstructFailed, err)
			}
		}

		return nil
	}
}
