package walker

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/vvka-141/uuidify/internal/files/filesystem"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// Walker performs the recursive descent. It holds no state between calls and
// is safe for concurrent use as long as the provider and logger are.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	logger     uuidify.Logger
}

// NewWalker creates a walker over the OS filesystem.
// Panics if logger is nil.
func NewWalker(logger uuidify.Logger) *Walker {
	return NewWalkerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewWalkerWithFS creates a walker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewWalkerWithFS(fsProvider filesystem.FileSystemProvider, logger uuidify.Logger) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Enumerate calls handler once for every non-directory entry under root.
// If root itself is not a directory, handler is called for root alone.
func (w *Walker) Enumerate(ctx context.Context, root string, handler uuidify.FileHandler) error {
	if handler == nil {
		panic("handler cannot be nil")
	}
	return w.visit(ctx, root, handler)
}

func (w *Walker) visit(ctx context.Context, path string, handler uuidify.FileHandler) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := w.fsProvider.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Trace("invalid path %s", path)
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return handler.HandleFile(ctx, path)
	}

	names, err := w.fsProvider.ReadDir(path)
	if err != nil {
		return err
	}
	w.logger.Verbose("Entering %s (%d entries)", path, len(names))

	for _, name := range names {
		if err := w.visit(ctx, joinChild(path, name), handler); err != nil {
			return err
		}
	}

	return nil
}

// joinChild appends name to dir without cleaning dir, so a ".." following a
// symlink keeps referring to the link target's parent.
func joinChild(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
