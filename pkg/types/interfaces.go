package types

import (
	"io/fs"
)

// FS is the filesystem interface the loader and the linker work against.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Lstat(name string) (fs.FileInfo, error)

	// Remove deletes a file, a symlink or an empty directory.
	Remove(name string) error
}
