//go:build windows

package fileid

import (
	"os"

	"golang.org/x/sys/windows"
)

// FromPath returns the identity of the file currently named by path. It
// opens a metadata-only handle; FILE_FLAG_BACKUP_SEMANTICS is required for
// GetFileInformationByHandle to accept directories as well as files.
func FromPath(path string) (ID, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return ID{}, &os.PathError{Op: "open", Path: path, Err: err}
	}
	h, err := windows.CreateFile(
		p,
		0, // metadata only, no read/write access
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return ID{}, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = windows.CloseHandle(h) }()

	return fromHandle(h, path)
}

// FromFile returns the identity of the open descriptor itself, independent
// of whatever its original path now refers to.
func FromFile(f *os.File) (ID, error) {
	return fromHandle(windows.Handle(f.Fd()), f.Name())
}

func fromHandle(h windows.Handle, name string) (ID, error) {
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return ID{}, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return ID{
		Dev: uint64(info.VolumeSerialNumber),
		Ino: uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, nil
}
