package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// ConsoleLogger writes log messages to stdout, next to the per-file progress
// lines, so a transcript of a run reads top to bottom.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	styled  bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stdout.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are coloured when stdout is a terminal.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stdout, verbose, tui.IsTerminal(os.Stdout))
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
func NewConsoleLoggerWithWriter(out io.Writer, verbose, styled bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		styled:  styled,
		out:     out,
	}
}

// Trace logs low-level diagnostics.
func (l *ConsoleLogger) Trace(format string, args ...interface{}) {
	l.write(tui.TraceStyle, "[TRACE] ", format, args)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(tui.VerboseStyle, "[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(lipgloss.NewStyle(), "", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(tui.ErrorStyle, "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(style lipgloss.Style, prefix, format string, args []interface{}) {
	if prefix != "" {
		prefix = tui.Render(style, l.styled, prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}

var _ uuidify.Logger = (*ConsoleLogger)(nil)
