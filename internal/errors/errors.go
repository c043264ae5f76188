// Package errors provides centralized error handling for go-flopen's CLI.
//
// This package defines sentinel errors used for programmatic error
// categorization. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrLockHeld indicates that the lock file is exclusively held by
	// another process and non-blocking acquisition was requested.
	ErrLockHeld = errors.New("lock is held by another process")

	// ErrWaitTimeout indicates that the lock could not be acquired before
	// the --wait deadline expired.
	ErrWaitTimeout = errors.New("timed out waiting for lock")

	// ErrMissingCommand indicates that no command to run under the lock
	// was given on the command line.
	ErrMissingCommand = errors.New("no command specified")
)

// CommandExitError carries a specific process exit code through the error
// chain: the exit status of the supervised command, or the configured
// conflict code when the lock is contended. It wraps the underlying cause
// so errors.Is() checks keep working.
type CommandExitError struct {
	// Code is the exit code the CLI should terminate with.
	Code int
	// Err is the underlying cause, may be nil for a plain exit status.
	Err error
}

// Error implements the error interface.
func (e *CommandExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying cause for errors.Is/As traversal.
func (e *CommandExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code carried by err, if any. The second
// return value reports whether a CommandExitError was found in the chain.
func ExitCode(err error) (int, bool) {
	var exitErr *CommandExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
