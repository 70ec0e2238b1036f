// SPDX-License-Identifier: MIT

package crawl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/crawl"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

func TestExtractLinks(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><body>
  <a href="2.html">two</a>
  <A HREF="3.html" class="x">three</A>
  <a class="y" href=" 2.html ">again</a>
  <a name="anchor">no href</a>
  <a href="">empty</a>
  <link href="style.css">
  <a href='4.html'/>
</body></html>`

	links, err := crawl.ExtractLinks(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"2.html", "3.html", "4.html"}, links)
}

func TestExtractLinks_NoAnchors(t *testing.T) {
	links, err := crawl.ExtractLinks(strings.NewReader("<p>plain</p>"))
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestExtractLinks_ReadError(t *testing.T) {
	_, err := crawl.ExtractLinks(iotest.ErrReader(iotest.ErrTimeout))
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestCrawl_BuildsCorpus(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1.html":    `<a href="2.html">2</a>`,
		"2.html":    `<a href="3.html">3</a><a href="1.html">1</a><a href="2.html">self</a>`,
		"3.html":    `<a href="missing.html">gone</a><a href="https://example.com/">out</a>`,
		"notes.txt": `<a href="1.html">ignored</a>`,
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), 0o700))

	c, err := crawl.Crawl(dir, crawl.WithWorkers(2))
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {},
	}, c.Map())

	st := c.Stats()
	assert.Equal(t, 3, st.Pages)
	assert.Equal(t, 1, st.DroppedSelfLinks)
	assert.Equal(t, 2, st.DroppedExternalLinks)
	assert.Equal(t, 1, st.Dangling)
}

func TestCrawl_WorkerCountDoesNotChangeResult(t *testing.T) {
	files := make(map[string]string)
	for i := 0; i < 30; i++ {
		var sb strings.Builder
		for j := 1; j <= 3; j++ {
			sb.WriteString(`<a href="` + pageName((i+j*7)%30) + `">x</a>`)
		}
		files[pageName(i)] = sb.String()
	}
	dir := writeFiles(t, files)

	serial, err := crawl.Crawl(dir, crawl.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 8, 64} {
		parallel, err := crawl.Crawl(dir, crawl.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, serial.Map(), parallel.Map(), "workers=%d", w)
	}
}

func TestCrawl_CustomExtension(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.htm":  `<a href="b.htm">b</a>`,
		"b.htm":  ``,
		"c.html": `<a href="a.htm">a</a>`,
	})

	c, err := crawl.Crawl(dir, crawl.WithExtension("htm"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.htm", "b.htm"}, c.Pages())
}

func TestCrawl_LogsSummary(t *testing.T) {
	dir := writeFiles(t, map[string]string{"1.html": `<a href="1.html">self</a>`})
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := crawl.Crawl(dir, crawl.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"dropped_self":1`)
	assert.Contains(t, buf.String(), "crawl: corpus built")
}

func TestCrawl_Errors(t *testing.T) {
	_, err := crawl.Crawl(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = crawl.Crawl(file)
	assert.ErrorIs(t, err, crawl.ErrNotDirectory)

	_, err = crawl.Crawl(writeFiles(t, map[string]string{"readme.md": "x"}))
	assert.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}

func pageName(i int) string {
	return string(rune('a'+i%26)) + strings.Repeat("x", i/26) + ".html"
}
