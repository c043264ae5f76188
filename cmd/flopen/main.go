// Package main provides the entry point for the flopen CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/go-flopen/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev" //nolint:gochecknoglobals // Set by ldflags
	commit  = ""    //nolint:gochecknoglobals // Set by ldflags
	date    = ""    //nolint:gochecknoglobals // Set by ldflags
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	os.Exit(cli.ExitCodeForError(err))
}
