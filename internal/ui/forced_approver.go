package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// ForcedApprover implements the Approver interface when confirmation is
// disabled. It approves every rename. Before the first one it can display a
// warning and a countdown so the operator still has a chance to press Ctrl+C.
type ForcedApprover struct {
	verbose   bool
	styled    bool
	countdown time.Duration
	output    io.Writer
	sleepFn   func(time.Duration)
	warned    bool
}

// NewForcedApprover creates a new ForcedApprover writing to stdout.
// A zero countdown disables the warning entirely.
func NewForcedApprover(verbose bool, countdown time.Duration) uuidify.Approver {
	return NewForcedApproverWithOutput(os.Stdout, verbose, tui.IsTerminal(os.Stdout), countdown)
}

// NewForcedApproverWithOutput creates a ForcedApprover writing its warning
// to output.
func NewForcedApproverWithOutput(output io.Writer, verbose, styled bool, countdown time.Duration) *ForcedApprover {
	return &ForcedApprover{
		verbose:   verbose,
		styled:    styled,
		countdown: countdown,
		output:    output,
		sleepFn:   time.Sleep,
	}
}

// RequestApproval approves immediately, except for the first call of a run
// with a countdown configured.
func (a *ForcedApprover) RequestApproval(ctx context.Context, source, destination string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.warned || a.countdown <= 0 {
		return true, nil
	}

	fmt.Fprintf(a.output, "\n%s Renaming without confirmation, starting with %q.\n",
		tui.Render(tui.WarningStyle, a.styled, "WARNING:"), source)
	fmt.Fprintln(a.output, "Every file under the given paths gets a new random name. There is no undo.")

	seconds := int((a.countdown + time.Second - 1) / time.Second)
	for i := seconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rRenaming in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r%s Proceeding with renames...                          \n",
		tui.Render(tui.SuccessStyle, a.styled, tui.SymbolCheck))
	a.warned = true
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ uuidify.Approver = (*ForcedApprover)(nil)
