// SPDX-License-Identifier: MIT

// Package logger builds the zerolog logger used by the lvrank command.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Service is attached to every record.
const Service = "lvrank"

// New returns a logger writing to w at the given level. format is "console"
// for human-readable output or "json" for one JSON object per line.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: %w", err)
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "console", "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("logger: unknown format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", Service).Logger(), nil
}
