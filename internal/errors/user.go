package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrLockHeld,
		info: ErrorInfo{
			Message: "The lock is currently held by another process.",
			Action:  "Retry later, or use --wait to poll until the holder releases it.",
		},
	},
	{
		err: ErrWaitTimeout,
		info: ErrorInfo{
			Message: "Gave up waiting for the lock before the deadline.",
			Action:  "Increase --wait, or drop it to block until the lock is free.",
		},
	},
	{
		err: ErrMissingCommand,
		info: ErrorInfo{
			Message: "No command was given to run under the lock.",
			Action:  "Pass the command after the lock file: flopen <lockfile> <command> [args...].",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Unrecognized errors fall back to their own Error() text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested next step for the given error, or the
// empty string when there is nothing useful to suggest.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
