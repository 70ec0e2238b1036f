// SPDX-License-Identifier: MIT

package crawl

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultExtension selects the documents that make up a corpus.
const DefaultExtension = ".html"

// ErrNotDirectory is returned when the crawl root is not a directory.
var ErrNotDirectory = errors.New("crawl: path is not a directory")

// Option configures Crawl.
type Option func(*Options)

// Options holds the knobs of a crawl.
type Options struct {
	Extension string
	Workers   int
	Logger    zerolog.Logger

	// open reads one document; tests replace it to inject failures.
	open func(path string) (io.ReadCloser, error)
}

// DefaultOptions returns the ".html" extension, one worker per CPU and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Extension: DefaultExtension,
		Workers:   runtime.NumCPU(),
		Logger:    zerolog.Nop(),
		open:      openFile,
	}
}

// WithExtension selects documents by file suffix. A missing leading dot is
// added; an empty value is ignored.
func WithExtension(ext string) Option {
	return func(o *Options) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		o.Extension = ext
	}
}

// WithWorkers bounds the number of documents parsed at once. Values below 1
// are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithLogger routes skip warnings and progress to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func openFile(path string) (io.ReadCloser, error) { return os.Open(path) }
