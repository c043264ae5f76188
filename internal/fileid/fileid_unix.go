//go:build unix

package fileid

import (
	"os"

	"golang.org/x/sys/unix"
)

// FromPath returns the identity of the file currently named by path. The
// stat is fresh; nothing is cached.
func FromPath(path string) (ID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return ID{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return ID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil //nolint:unconvert // Dev/Ino widths vary across unix platforms
}

// FromFile returns the identity of the open descriptor itself, independent
// of whatever its original path now refers to.
func FromFile(f *os.File) (ID, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return ID{}, &os.PathError{Op: "fstat", Path: f.Name(), Err: err}
	}
	return ID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil //nolint:unconvert // Dev/Ino widths vary across unix platforms
}
