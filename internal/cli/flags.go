// Package cli provides the command-line interface for flopen.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/go-flopen/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// DefaultConflictExitCode is the exit code used when the lock is held and
// --nonblock or --wait was given, unless overridden with --conflict-exit-code.
const DefaultConflictExitCode = 1

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
	// LogFile enables the rotating file log under ~/.flopen/logs.
	LogFile bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&flags.LogFile, "log-file", false, "also log to ~/.flopen/logs with rotation")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for environment variable
// support. The FLOPEN_ prefix is used for environment variables
// (e.g., FLOPEN_VERBOSE, FLOPEN_LOG_FILE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}
	if err := v.BindPFlag("log_file", rootFlags.Lookup("log-file")); err != nil {
		return err
	}

	// Enable environment variable support with FLOPEN_ prefix
	v.SetEnvPrefix("FLOPEN")
	v.AutomaticEnv()

	// Read effective values back so environment overrides take effect even
	// when the flag was not set on the command line.
	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet")
	flags.LogFile = v.GetBool("log_file")

	return nil
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, the carried code for
// CommandExitError chains (supervised command status or conflict code),
// ExitInvalidInput (2) for user input errors, and ExitError (1) otherwise.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Exit code carried through the chain takes precedence: it is either
	// the supervised command's own status or the configured conflict code.
	if code, ok := errors.ExitCode(err); ok {
		return code
	}

	if stderrors.Is(err, errors.ErrMissingCommand) {
		return ExitInvalidInput
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"requires at least",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
