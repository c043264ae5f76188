// Package cli provides the command-line interface for flopen.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/go-flopen/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by command handlers.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by command handlers.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the flopen CLI.
// This function-based approach avoids package-level globals, making the
// code more testable and avoiding gochecknoglobals linter warnings.
func newRootCmd(flags *GlobalFlags, opts *RunOptions, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "flopen [flags] <lockfile> <command> [args...]",
		Short: "Run a command while holding an exclusive lock on a file",
		Long: `flopen opens a lock file, acquires an exclusive advisory lock on it, and
runs the given command while holding the lock. The lock is released when
the command exits, and the command's exit status is passed through.

The open and the lock are raced against other processes that may delete
and recreate the lock file; flopen retries until the locked descriptor and
the path agree on the same file, so the lock it reports is always on the
file the path currently names.

By default flopen blocks until the lock is free. Use --nonblock to fail
immediately on contention, or --wait to give up after a deadline.`,
		Version: formatVersion(info),
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Bind flags to Viper for FLOPEN_* environment overrides
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Initialize logger based on flags (protected by mutex for thread safety)
			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet, flags.LogFile)
			globalLoggerMu.Unlock()

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocked(cmd.Context(), GetLogger(), opts, args)
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)
	AddRunFlags(cmd, opts)

	// Stop flag parsing at the lock file so the supervised command keeps
	// its own flags without needing a "--" separator.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// Execute runs the flopen CLI with the given context and build info.
// Errors are reported to stderr with a user-facing message and, where one
// exists, a suggested next step; the error itself is returned so main can
// map it to an exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	opts := &RunOptions{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, opts, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
		if action := errors.Actionable(err); action != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", action)
		}
	}
	CloseLogFile()
	return err
}

// formatVersion renders the --version output from build-time info.
func formatVersion(info BuildInfo) string {
	version := info.Version
	if version == "" {
		version = "dev"
	}
	if info.Commit == "" && info.Date == "" {
		return version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, info.Commit, info.Date)
}
