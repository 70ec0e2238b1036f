// SPDX-License-Identifier: MIT

package crawl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/katalvlaran/lvrank/corpus"
)

// document is one parsed file.
type document struct {
	page  string
	links []string
}

// Crawl reads every matching document in dir and builds the corpus.
func Crawl(dir string, opts ...Option) (*corpus.Corpus, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	names, err := listDocuments(dir, o.Extension)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug().Str("dir", dir).Int("documents", len(names)).Msg("crawl: documents found")

	b := corpus.NewBuilder()
	var (
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, o.Workers)
	)
	for _, name := range names {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(name string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			doc, err := parseDocument(o.open, filepath.Join(dir, name), name)
			if err != nil {
				o.Logger.Warn().Err(err).Str("page", name).Msg("crawl: document skipped")
				return
			}
			if err := addDocument(b, doc); err != nil {
				o.Logger.Warn().Err(err).Str("page", name).Msg("crawl: document skipped")
			}
		}(name)
	}
	wg.Wait()

	c, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("crawl %s: %w", dir, err)
	}
	st := c.Stats()
	o.Logger.Debug().
		Int("pages", st.Pages).
		Int("links", st.Links).
		Int("dangling", st.Dangling).
		Int("dropped_self", st.DroppedSelfLinks).
		Int("dropped_external", st.DroppedExternalLinks).
		Msg("crawl: corpus built")

	return c, nil
}

// listDocuments returns the names of regular files in dir ending in ext.
func listDocuments(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}

	return names, nil
}

func parseDocument(open func(string) (io.ReadCloser, error), path, page string) (document, error) {
	f, err := open(path)
	if err != nil {
		return document{}, err
	}
	defer f.Close()

	links, err := ExtractLinks(f)
	if err != nil {
		return document{}, err
	}

	return document{page: page, links: links}, nil
}

func addDocument(b *corpus.Builder, doc document) error {
	if err := b.AddPage(doc.page); err != nil {
		return err
	}
	for _, to := range doc.links {
		if err := b.AddLink(doc.page, to); err != nil {
			return err
		}
	}

	return nil
}
