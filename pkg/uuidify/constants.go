package uuidify

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All roots traversed without a hard failure
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid option combination
	ExitFilesystemError  = 11 // Directory read or rename failed
	ExitPermissionDenied = 12 // Filesystem refused access
	ExitInterrupted      = 13 // Run cancelled by signal
)

const (
	// DefaultCountdown is the pause shown once before unattended renaming starts
	// when stdout is a terminal.
	DefaultCountdown = 3 * time.Second

	// MaxCountdown bounds --countdown so a typo cannot stall a run for hours.
	MaxCountdown = 1 * time.Minute

	// UsageHint is printed when no path arguments are given.
	UsageHint = "path?"
)
