// Package cli provides the command-line interface for flopen.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-flopen"
	"github.com/mrz1836/go-flopen/internal/constants"
	"github.com/mrz1836/go-flopen/internal/errors"
)

// RunOptions holds the flags controlling lock acquisition and the
// supervised command.
type RunOptions struct {
	// NonBlock fails immediately with the conflict exit code when the lock
	// is held, instead of waiting.
	NonBlock bool
	// Wait bounds how long to keep polling for the lock; zero means block
	// indefinitely.
	Wait time.Duration
	// NoCreate opens the lock file without O_CREATE, so a missing file is
	// an error rather than being created.
	NoCreate bool
	// Mode holds the octal permission bits for a created lock file.
	Mode string
	// WritePID replaces the locked file's content with this process id.
	WritePID bool
	// ConflictExitCode is the exit code used when the lock is held.
	ConflictExitCode int
}

// AddRunFlags adds lock acquisition flags to the root command.
func AddRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().BoolVarP(&opts.NonBlock, "nonblock", "n", false, "fail instead of waiting when the lock is held")
	cmd.Flags().DurationVarP(&opts.Wait, "wait", "w", 0, "give up after this long waiting for the lock")
	cmd.Flags().BoolVar(&opts.NoCreate, "no-create", false, "do not create the lock file if it is missing")
	cmd.Flags().StringVar(&opts.Mode, "mode", "0600", "permission bits (octal) for a created lock file")
	cmd.Flags().BoolVar(&opts.WritePID, "pid", false, "write this process id into the locked file")
	cmd.Flags().IntVar(&opts.ConflictExitCode, "conflict-exit-code", DefaultConflictExitCode, "exit code when the lock is held")
	cmd.MarkFlagsMutuallyExclusive("nonblock", "wait")
}

// runLocked acquires the lock per opts, runs the command while holding it,
// and releases the lock by closing the file when the command exits.
func runLocked(ctx context.Context, logger zerolog.Logger, opts *RunOptions, args []string) error {
	path := args[0]
	command := args[1:]
	if len(command) == 0 {
		return errors.ErrMissingCommand
	}

	perm, err := parseMode(opts.Mode)
	if err != nil {
		return err
	}

	flag := os.O_RDWR
	if !opts.NoCreate {
		flag |= os.O_CREATE
	}

	start := time.Now()
	f, err := acquireLock(ctx, path, flag, perm, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Str("path", path).Msg("failed to close lock file")
		}
	}()
	logger.Debug().Str("path", path).Dur("took", time.Since(start)).Msg("lock acquired")

	if opts.WritePID {
		if err := writePID(f); err != nil {
			return errors.Wrapf(err, "failed to write pid to %s", path)
		}
	}

	return runCommand(ctx, logger, command)
}

// acquireLock picks the acquisition strategy for the configured flags:
// immediate failure on contention, a bounded polling wait, or an unbounded
// blocking acquire. The library has no cancellation on the blocking path,
// so the bounded wait is built from non-blocking attempts.
func acquireLock(ctx context.Context, path string, flag int, perm fs.FileMode, opts *RunOptions) (*os.File, error) {
	switch {
	case opts.NonBlock:
		f, err := flopen.TryOpenAndLock(path, flag, perm)
		if flopen.IsContended(err) {
			return nil, &errors.CommandExitError{Code: opts.ConflictExitCode, Err: errors.ErrLockHeld}
		}
		return f, err

	case opts.Wait > 0:
		deadline := time.Now().Add(opts.Wait)
		for {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			f, err := flopen.TryOpenAndLock(path, flag, perm)
			if err == nil {
				return f, nil
			}
			if !flopen.IsContended(err) {
				return nil, err
			}

			if time.Now().After(deadline) {
				return nil, &errors.CommandExitError{Code: opts.ConflictExitCode, Err: errors.ErrWaitTimeout}
			}

			time.Sleep(constants.WaitPollInterval)
		}

	default:
		return flopen.OpenAndLock(path, flag, perm)
	}
}

// parseMode converts the --mode flag's octal string into permission bits.
func parseMode(mode string) (fs.FileMode, error) {
	parsed, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		// Phrased like cobra's own flag errors so it maps to the
		// invalid-input exit code.
		return 0, errors.Wrapf(err, "invalid argument %q for \"--mode\" flag", mode)
	}
	return fs.FileMode(parsed), nil
}

// writePID truncates the locked file and writes the current process id,
// turning the lock file into a conventional PID file.
func writePID(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.Itoa(os.Getpid()) + "\n"); err != nil {
		return err
	}
	return f.Sync()
}

// runCommand runs argv with the caller's stdio while the lock is held and
// converts a non-zero exit into a CommandExitError so the status passes
// through to our own exit code.
func runCommand(ctx context.Context, logger zerolog.Logger, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) // #nosec G204 -- running the user's command is the point of the tool
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug().Strs("argv", argv).Msg("running command under lock")

	err := cmd.Run()
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return &errors.CommandExitError{Code: exitErr.ExitCode(), Err: err}
	}
	return errors.Wrap(err, "failed to run command")
}
