// Package flock provides cross-platform exclusive file locking.
//
// It exposes the two acquisition modes of the underlying OS primitive:
// blocking (Exclusive) and non-blocking (TryExclusive). Locks are advisory
// and attach to the open file description, not the path; callers that need
// path identity guarantees should use the parent flopen package instead of
// locking descriptors directly.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.TryExclusive(file.Fd()); err != nil {
//	    if flock.IsWouldBlock(err) {
//	        // Lock not acquired - file is in use
//	    }
//	}
//	defer flock.Unlock(file.Fd())
package flock
