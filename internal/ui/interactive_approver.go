package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It shows the planned rename and waits for the
// user to answer Y or YES (case-insensitive).
type InteractiveApprover struct {
	verbose bool
	styled  bool
	input   io.Reader
	output  io.Writer

	// one reader for the whole run, so answers piped in ahead of time are
	// not lost in a discarded buffer between prompts
	reader *bufio.Reader

	// a read abandoned by a cancelled prompt; the next prompt takes its
	// result instead of starting a second read on reader
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewInteractiveApprover creates an InteractiveApprover on stdin/stdout.
func NewInteractiveApprover(verbose bool) uuidify.Approver {
	return NewInteractiveApproverWithIO(os.Stdin, os.Stdout, verbose, tui.IsTerminal(os.Stdout))
}

// NewInteractiveApproverWithIO creates an InteractiveApprover with explicit
// input and output streams.
func NewInteractiveApproverWithIO(input io.Reader, output io.Writer, verbose, styled bool) *InteractiveApprover {
	return &InteractiveApprover{
		verbose: verbose,
		styled:  styled,
		input:   input,
		output:  output,
	}
}

// RequestApproval prints the planned rename and reads one line of input.
// Only "Y" and "YES" approve. Empty input, any other text and a failed
// read all count as a decline and are not reported as errors.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, source, destination string) (bool, error) {
	fmt.Fprintf(a.output, "%s %q >> %q\n", tui.Render(tui.PromptStyle, a.styled, "CONTINUE?"), source, destination)

	if a.reader == nil {
		a.reader = bufio.NewReader(a.input)
	}

	if a.pending == nil {
		a.pending = make(chan readResult, 1)
		go func(reader *bufio.Reader, result chan<- readResult) {
			line, err := reader.ReadString('\n')
			result <- readResult{line: line, err: err}
		}(a.reader, a.pending)
	}

	var res readResult
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res = <-a.pending:
		a.pending = nil
	}

	// a final line without newline still counts as an answer
	if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
		if !errors.Is(res.err, io.EOF) {
			fmt.Fprintf(a.output, "%s failed to read input: %v\n", tui.Render(tui.ErrorStyle, a.styled, "[ERROR]"), res.err)
		}
		return false, nil
	}

	input := res.line
	if isAffirmative(input) {
		if a.verbose {
			fmt.Fprintf(a.output, "%s Confirmed\n", tui.Render(tui.SuccessStyle, a.styled, tui.SymbolCheck))
		}
		return true, nil
	}
	if a.verbose {
		fmt.Fprintf(a.output, "%s Left %s unchanged\n", tui.Render(tui.WarningStyle, a.styled, tui.SymbolCross), source)
	}
	return false, nil
}

func isAffirmative(input string) bool {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y", "YES":
		return true
	default:
		return false
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ uuidify.Approver = (*InteractiveApprover)(nil)
