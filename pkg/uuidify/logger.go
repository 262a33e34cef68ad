package uuidify

// Logger provides a pluggable logging interface for uuidify operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Trace logs low-level diagnostics such as a path that no longer exists.
	// Always logged regardless of verbose mode.
	Trace(format string, args ...interface{})

	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
