// Package files groups the file-related sub-packages:
//   - filesystem: the Lstat/ReadDir/Rename abstraction with OS and in-memory implementations
//   - walker: recursive traversal that hands every non-directory entry to a FileHandler
package files
