// Package fileid resolves the on-disk identity of a file, either from a
// path or from an open descriptor.
//
// Two IDs compare equal exactly when they name the same file on the same
// filesystem. Comparing the ID of a path with the ID of a descriptor is how
// the flopen package proves that the file it locked is still the file the
// path refers to: advisory locks follow the inode, not the name.
package fileid

import "fmt"

// ID identifies a file by its filesystem and file number. On unix systems
// these are the stat device and inode; on Windows the volume serial number
// and the 64-bit file index.
type ID struct {
	Dev uint64
	Ino uint64
}

// String returns the identity in dev:ino form for log and error output.
func (id ID) String() string {
	return fmt.Sprintf("%d:%d", id.Dev, id.Ino)
}
