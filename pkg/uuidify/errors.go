package uuidify

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Filesystem failures are deliberately not wrapped in a sentinel: the walker
// and renamer return the *fs.PathError / *os.LinkError produced by the OS so
// callers can inspect it directly.
var (
	// ErrInvalidConfig indicates the provided options are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, fs.ErrPermission):
		return ExitPermissionDenied
	}

	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) ||
		errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrExist) {
		return ExitFilesystemError
	}

	// cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
