// SPDX-License-Identifier: MIT

// Command lvrank ranks the documents of a directory by PageRank, once by
// random-surfer sampling and once by iteration.
//
//	lvrank [flags] <corpus-dir>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvrank/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
