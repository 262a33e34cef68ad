package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the filesystem surface used by the walker and renamer.
//
// Errors must satisfy errors.Is(err, fs.ErrNotExist) when the path is missing,
// since the walker treats that case as a soft no-op.
type FileSystemProvider interface {
	// Lstat returns file information for the given path without following
	// a trailing symbolic link.
	Lstat(path string) (FileInfo, error)

	// ReadDir returns the names of the immediate children of the directory.
	// The listing is captured in full before returning.
	ReadDir(path string) ([]string, error)

	// Rename atomically moves oldPath to newPath.
	Rename(oldPath, newPath string) error
}
