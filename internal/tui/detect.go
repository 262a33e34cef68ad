// Package tui holds terminal detection and the colour palette used for
// console output.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for uuidify.
type Mode int

const (
	// ModeNonInteractive is used for scripts and piped input or output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// DetectMode determines whether uuidify talks to a human.
//
// Returns ModeInteractive only when both stdin and stdout are terminals.
// Piped answers (`yes | uuidify ...`) still work in non-interactive mode;
// the mode only controls decoration and the unattended countdown.
func DetectMode() Mode {
	return detectMode(os.Stdin, os.Stdout)
}

func detectMode(stdin, stdout *os.File) Mode {
	if !IsTerminal(stdin) {
		return ModeNonInteractive
	}
	if !IsTerminal(stdout) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
