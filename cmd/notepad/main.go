// Package main is a command line host for the notepad find/replace engine.
//
// It loads a file into a document, runs find or replace against it and
// prints the result with the matches highlighted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/search"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode is 1 when the search found nothing and 2 for any other failure,
// following grep.
func exitCode(err error) int {
	if errors.Is(err, search.ErrNoMatches) || errors.Is(err, search.ErrNotFound) {
		return 1
	}
	return 2
}
