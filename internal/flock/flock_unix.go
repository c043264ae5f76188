//go:build unix

// Package flock provides cross-platform exclusive file locking.
package flock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Exclusive acquires an exclusive lock on the file descriptor, blocking
// until the lock becomes available. A signal arriving while blocked
// interrupts the syscall with EINTR; the acquisition is restarted so the
// only errors callers see are genuine I/O failures.
func Exclusive(fd uintptr) error {
	for {
		err := unix.Flock(int(fd), unix.LOCK_EX)
		if err != unix.EINTR { //nolint:errorlint // raw errno comparison, never wrapped here
			return err
		}
	}
}

// TryExclusive acquires an exclusive non-blocking lock on the file
// descriptor. If the lock is held elsewhere it returns EWOULDBLOCK
// immediately; use IsWouldBlock to distinguish that from real failures.
func TryExclusive(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_EX|unix.LOCK_NB)
}

// Unlock releases the lock on the file descriptor.
func Unlock(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}

// IsWouldBlock reports whether err is the contention error from TryExclusive.
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EWOULDBLOCK)
}
