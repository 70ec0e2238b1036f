// SPDX-License-Identifier: MIT

package crawl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractLinks returns the href targets of every <a> element in r, in
// document order and without duplicates. Anchors without an href, or with
// an empty one, are ignored.
func ExtractLinks(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	seen := make(map[string]struct{})
	var links []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("crawl: tokenize: %w", err)
			}

			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if atom.Lookup(name) != atom.A {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) != "href" {
					continue
				}
				href := strings.TrimSpace(string(val))
				if href == "" {
					continue
				}
				if _, dup := seen[href]; !dup {
					seen[href] = struct{}{}
					links = append(links, href)
				}
			}
		}
	}
}
