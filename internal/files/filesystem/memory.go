package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	errIsDir    = errors.New("is a directory")
	errNotDir   = errors.New("not a directory")
	errNotEmpty = fmt.Errorf("directory not empty: %w", fs.ErrExist)
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It is not safe for concurrent use.
type MemoryFileSystem struct {
	entries     map[string]*memoryEntry // absolute path -> entry
	root        string
	readDirErrs map[string]error
	renameErrs  map[string]error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries:     make(map[string]*memoryEntry),
		root:        root,
		readDirErrs: make(map[string]error),
		renameErrs:  make(map[string]error),
	}
	mfs.entries[root] = newDirEntry(root)

	return mfs
}

func newDirEntry(absPath string) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// resolve maps a caller path onto the virtual tree. Relative paths are
// interpreted against the root.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an (empty) directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSymlink adds a symbolic link entry. The target is recorded as content
// and never resolved.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	absPath := mfs.resolve(linkPath)
	mfs.entries[absPath] = &memoryEntry{
		content: []byte(target),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(target)),
			mode:    0777 | fs.ModeSymlink,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailReadDir makes every later ReadDir of dirPath return err.
func (mfs *MemoryFileSystem) FailReadDir(dirPath string, err error) {
	mfs.readDirErrs[mfs.resolve(dirPath)] = err
}

// FailRename makes every later Rename of oldPath return err.
func (mfs *MemoryFileSystem) FailRename(oldPath string, err error) {
	mfs.renameErrs[mfs.resolve(oldPath)] = err
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = newDirEntry(dir)

	mfs.ensureDirectoriesExist(dir)
}

// children returns the names of the immediate children of dir, sorted.
func (mfs *MemoryFileSystem) children(dir string) []string {
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}

	var names []string
	for p := range mfs.entries {
		if p == dir || !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}

	sort.Strings(names)
	return names
}

// Lstat implements FileSystemProvider.Lstat
func (mfs *MemoryFileSystem) Lstat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "lstat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]string, error) {
	absPath := mfs.resolve(dirPath)

	if err, injected := mfs.readDirErrs[absPath]; injected {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: err}
	}

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !entry.info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: errNotDir}
	}

	return mfs.children(absPath), nil
}

// Rename implements FileSystemProvider.Rename with POSIX-like semantics:
// a file replaces an existing file, a directory replaces only an empty
// directory, and the destination's parent must already exist.
func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	linkErr := func(err error) error {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
	}

	from := mfs.resolve(oldPath)
	to := mfs.resolve(newPath)

	if err, injected := mfs.renameErrs[from]; injected {
		return linkErr(err)
	}

	src, exists := mfs.entries[from]
	if !exists {
		return linkErr(fs.ErrNotExist)
	}
	if from == to {
		return nil
	}

	parent, exists := mfs.entries[path.Dir(to)]
	if !exists {
		return linkErr(fs.ErrNotExist)
	}
	if !parent.info.IsDir() {
		return linkErr(errNotDir)
	}

	if dst, exists := mfs.entries[to]; exists {
		switch {
		case dst.info.IsDir() && !src.info.IsDir():
			return linkErr(errIsDir)
		case !dst.info.IsDir() && src.info.IsDir():
			return linkErr(errNotDir)
		case dst.info.IsDir() && len(mfs.children(to)) > 0:
			return linkErr(errNotEmpty)
		}
	}

	if src.info.IsDir() && strings.HasPrefix(to, from+"/") {
		return linkErr(fs.ErrInvalid)
	}

	moved := map[string]*memoryEntry{to: src}
	if src.info.IsDir() {
		for p, entry := range mfs.entries {
			if strings.HasPrefix(p, from+"/") {
				moved[to+strings.TrimPrefix(p, from)] = entry
				delete(mfs.entries, p)
			}
		}
	}
	delete(mfs.entries, from)

	src.info.name = path.Base(to)
	for p, entry := range moved {
		mfs.entries[p] = entry
	}

	return nil
}

// ReadFile returns the content of a file or the target of a symlink.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
	}
	return entry.content, nil
}

// Exists reports whether any entry lives at p.
func (mfs *MemoryFileSystem) Exists(p string) bool {
	_, exists := mfs.entries[mfs.resolve(p)]
	return exists
}

// Files returns the absolute paths of all non-directory entries, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	var files []string
	for p, entry := range mfs.entries {
		if !entry.info.IsDir() {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
