// Package constants provides centralized constant values used throughout
// go-flopen's CLI. This package is the single source of truth for shared
// defaults and MUST NOT import any other internal packages.
package constants

import (
	"io/fs"
	"time"
)

// Directory and file names used for organizing CLI data.
const (
	// FlopenHome is the hidden directory name where the CLI stores its data.
	// This directory is created in the user's home directory.
	FlopenHome = ".flopen"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the file name of the rotating CLI log.
	CLILogFileName = "flopen.log"
)

// Lock file defaults.
const (
	// DefaultLockPerm is the permission mode for lock files created by the
	// CLI when the caller does not override it with --mode.
	DefaultLockPerm fs.FileMode = 0o600

	// WaitPollInterval is the delay between non-blocking acquisition
	// attempts while honoring a --wait deadline.
	WaitPollInterval = 50 * time.Millisecond
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
