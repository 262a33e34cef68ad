package uuidify

import "context"

// FileHandler is invoked by the traversal once for every non-directory entry.
// The path is only borrowed for the duration of the call.
type FileHandler interface {
	HandleFile(ctx context.Context, path string) error
}

// FileHandlerFunc adapts an ordinary function to the FileHandler interface.
type FileHandlerFunc func(ctx context.Context, path string) error

// HandleFile calls f(ctx, path).
func (f FileHandlerFunc) HandleFile(ctx context.Context, path string) error {
	return f(ctx, path)
}

// NameGenerator produces replacement base names.
// Two calls must never be assumed to return the same value.
type NameGenerator interface {
	NewName() string
}
