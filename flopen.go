// Package flopen provides a reliable way to open and exclusively lock a
// file, equivalent to the BSD flopen(3) function.
//
// Opening a file and calling flock on the descriptor are two independent
// system calls. Between them another process can unlink and recreate the
// path, for example while cleaning up a stale lock file. An advisory lock
// protects the inode that was opened, not the name, so a descriptor can be
// successfully locked while the path already refers to a different file.
// This package closes that window by re-checking the (device, inode)
// identity of the path against the locked descriptor and retrying the whole
// open/lock sequence until the two agree. That makes it well suited for
// lock files, PID files, spool files, mailboxes and other files used as
// synchronization points between processes.
//
// Usage:
//
//	f, err := flopen.OpenAndLock("/var/run/app.lock", os.O_RDWR|os.O_CREATE, 0o600)
//	if err != nil {
//	    return err
//	}
//	defer f.Close() // releases the lock
package flopen

import (
	"os"

	"github.com/mrz1836/go-flopen/internal/fileid"
	"github.com/mrz1836/go-flopen/internal/flock"
)

// OpenAndLock opens the file at path with the given os.OpenFile flag and
// permission bits and acquires an exclusive advisory lock on it, blocking
// until the lock can be taken. If the file disappears or is replaced
// between opening and locking, the attempt is transparently retried with a
// fresh descriptor.
//
// Unless an unrelated I/O error occurs, OpenAndLock eventually succeeds
// once any current holder releases the lock. The returned file owns the
// lock; closing it releases the lock.
func OpenAndLock(path string, flag int, perm os.FileMode) (*os.File, error) {
	return openAndLock(path, flag, perm, flock.Exclusive)
}

// TryOpenAndLock is the non-blocking variant of OpenAndLock. If the lock is
// currently held elsewhere it fails immediately with the platform's
// would-block error; use IsContended to detect that case. Contention is
// never retried internally, only the open/lock race is.
func TryOpenAndLock(path string, flag int, perm os.FileMode) (*os.File, error) {
	return openAndLock(path, flag, perm, flock.TryExclusive)
}

// IsContended reports whether err, returned from TryOpenAndLock, indicates
// that the lock is held by another process rather than a real I/O failure.
func IsContended(err error) bool {
	return flock.IsWouldBlock(err)
}

// openAndLock runs the open, lock, verify loop shared by both variants.
// Each iteration either returns (success, or a non-racy error) or discards
// its descriptor and starts over. Only two conditions restart the loop: the
// path vanished before the post-lock stat, or the path now names a
// different inode than the one locked.
func openAndLock(path string, flag int, perm os.FileMode, lock func(fd uintptr) error) (*os.File, error) {
	for {
		f, err := os.OpenFile(path, flag, perm) // #nosec G304 -- caller-supplied path is the contract
		if err != nil {
			return nil, err
		}

		if err := lock(f.Fd()); err != nil {
			_ = f.Close()
			return nil, &os.PathError{Op: "flock", Path: path, Err: err}
		}

		pathID, err := fileid.FromPath(path)
		if err != nil {
			// Unlinked between open and lock. Whatever recreates it is
			// the file the next attempt should lock.
			_ = f.Close()
			continue
		}

		fdID, err := fileid.FromFile(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		if pathID != fdID {
			// The name moved on to a different inode; the held lock is
			// stale.
			_ = f.Close()
			continue
		}

		return f, nil
	}
}
