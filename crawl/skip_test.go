// SPDX-License-Identifier: MIT

package crawl

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/corpus"
)

var errBrokenDocument = errors.New("broken document")

// withOpen replaces the document opener.
func withOpen(fn func(string) (io.ReadCloser, error)) Option {
	return func(o *Options) { o.open = fn }
}

// TestCrawl_SkipsFailingDocuments feeds one document that cannot be opened
// and one that fails mid-read; both are left out, their inbound links are
// dropped, and each skip is logged at warn level.
func TestCrawl_SkipsFailingDocuments(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"1.html": `<a href="2.html">2</a><a href="3.html">3</a><a href="4.html">4</a>`,
		"2.html": `<a href="1.html">1</a>`,
		"3.html": `<a href="1.html">1</a>`,
		"4.html": `<a href="1.html">1</a>`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	open := func(path string) (io.ReadCloser, error) {
		switch filepath.Base(path) {
		case "3.html":
			return nil, errBrokenDocument
		case "4.html":
			r := io.MultiReader(strings.NewReader(`<a href="1.html">`), iotest.ErrReader(errBrokenDocument))
			return io.NopCloser(r), nil
		default:
			return openFile(path)
		}
	}

	var buf bytes.Buffer
	log := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.WarnLevel)

	c, err := Crawl(dir, withOpen(open), WithLogger(log), WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html"},
	}, c.Map())
	assert.Equal(t, 2, c.Stats().DroppedExternalLinks)

	logged := buf.String()
	assert.Equal(t, 2, strings.Count(logged, `"message":"crawl: document skipped"`))
	assert.Contains(t, logged, `"page":"3.html"`)
	assert.Contains(t, logged, `"page":"4.html"`)
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, errBrokenDocument.Error())
}

// TestCrawl_AllDocumentsFailing leaves nothing to build.
func TestCrawl_AllDocumentsFailing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.html"), nil, 0o600))

	_, err := Crawl(dir, withOpen(func(string) (io.ReadCloser, error) { return nil, errBrokenDocument }))
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}
