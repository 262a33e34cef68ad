// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of operations the walker and renamer need,
// enabling testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Lstat, ReadDir and Rename
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Neither implementation follows symbolic links: Lstat describes the link
// itself and Rename moves the link, not its target.
package filesystem
