// SPDX-License-Identifier: MIT

package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/internal/app"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	// An .env file in the working directory must not leak into tests.
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...)
	code = app.Run(context.Background(), args, &out, &errb)

	return code, out.String(), errb.String()
}

func TestRun_CycleWithFullDamping(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<a href="2.html">next</a>`,
		"2.html": `<a href="3.html">next</a>`,
		"3.html": `<a href="1.html">next</a>`,
	})

	code, stdout, stderr := run(t, "--damping=1", "--samples=3000", "--seed=7", "--reference", dir)
	require.Equal(t, app.ExitOK, code, stderr)

	want := "PageRank Results from Sampling (n = 3000)\n" +
		"  1.html: 0.3333\n  2.html: 0.3333\n  3.html: 0.3333\n" +
		"PageRank Results from Iteration\n" +
		"  1.html: 0.3333\n  2.html: 0.3333\n  3.html: 0.3333\n"
	assert.Equal(t, want, stdout, "gonum cannot rank at d = 1, so its block is left out")
	assert.Contains(t, stderr, "corpus loaded")
	assert.Contains(t, stderr, "reference estimator skipped")
}

func TestRun_ReferenceBlock(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<a href="2.html">next</a>`,
		"2.html": `<a href="3.html">next</a>`,
		"3.html": `<a href="1.html">next</a>`,
	})

	code, stdout, stderr := run(t, "--seed=7", "--reference", dir)
	require.Equal(t, app.ExitOK, code, stderr)

	require.Contains(t, stdout, "PageRank Results from Reference (gonum)")
	ref := stdout[strings.Index(stdout, "PageRank Results from Reference (gonum)"):]
	assert.Equal(t, "PageRank Results from Reference (gonum)\n"+
		"  1.html: 0.3333\n  2.html: 0.3333\n  3.html: 0.3333\n", ref)
}

func TestRun_IterationBlock(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<a href="2.html">2</a>`,
		"2.html": `<a href="1.html">1</a> <a href="3.html">3</a>`,
		"3.html": `<p>no links</p>`,
	})

	code, stdout, stderr := run(t, "--seed=1", "--log-format=json", dir)
	require.Equal(t, app.ExitOK, code, stderr)

	iter := stdout[strings.Index(stdout, "PageRank Results from Iteration"):]
	assert.Equal(t, "PageRank Results from Iteration\n"+
		"  1.html: 0.3033\n  2.html: 0.3934\n  3.html: 0.3033\n", iter)
	assert.True(t, strings.HasPrefix(stdout, "PageRank Results from Sampling (n = 10000)\n"))
	assert.NotContains(t, stdout, "Reference")
	assert.Contains(t, stderr, `"run_id":`)
}

func TestRun_SeedIsReproducible(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.html": `<a href="b.html">b</a><a href="c.html">c</a>`,
		"b.html": `<a href="c.html">c</a>`,
		"c.html": `<a href="a.html">a</a>`,
		"d.html": `<a href="c.html">c</a>`,
	})

	_, first, _ := run(t, "--seed=99", dir)
	_, second, _ := run(t, "--seed=99", dir)
	assert.Equal(t, first, second)
}

func TestRun_Usage(t *testing.T) {
	code, stdout, stderr := run(t)
	assert.Equal(t, app.ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: lvrank [flags] <corpus-dir>")

	code, _, stderr = run(t, "one", "two")
	assert.Equal(t, app.ExitError, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, _ = run(t, "--no-such-flag", "dir")
	assert.Equal(t, app.ExitError, code)
}

func TestRun_Failures(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"1.html": ""})

	code, stdout, stderr := run(t, "--damping=2", dir)
	assert.Equal(t, app.ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "rank.damping")

	code, _, stderr = run(t, filepath.Join(dir, "missing"))
	assert.Equal(t, app.ExitError, code)
	assert.Contains(t, stderr, "ranking failed")

	code, _, _ = run(t, writeCorpus(t, map[string]string{"readme.txt": "x"}))
	assert.Equal(t, app.ExitError, code)

	code, _, _ = run(t, "--config", filepath.Join(dir, "absent.yaml"), dir)
	assert.Equal(t, app.ExitError, code)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"x.html": `<a href="y.html">y</a>`,
		"y.html": `<a href="x.html">x</a>`,
	})
	cfgFile := filepath.Join(t.TempDir(), "lvrank.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("rank:\n  samples: 50\n  seed: 3\n"), 0o600))

	code, stdout, stderr := run(t, "--config", cfgFile, dir)
	require.Equal(t, app.ExitOK, code, stderr)
	assert.Contains(t, stdout, "PageRank Results from Sampling (n = 50)")
}
