package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/uuidify/internal/files/filesystem"
	"github.com/vvka-141/uuidify/internal/files/walker"
	"github.com/vvka-141/uuidify/internal/logging"
	"github.com/vvka-141/uuidify/internal/renamer"
	"github.com/vvka-141/uuidify/internal/report"
	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/internal/ui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// session holds everything a run writes to and reads from.
type session struct {
	fsProvider filesystem.FileSystemProvider
	generator  uuidify.NameGenerator
	in         io.Reader
	out        io.Writer
	styled     bool
}

func runRename(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, uuidify.UsageHint)
		return nil
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) so a pending prompt or
	// countdown returns instead of leaving the terminal blocked
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	s := session{
		fsProvider: filesystem.NewOSFileSystem(),
		in:         cmd.InOrStdin(),
		out:        out,
		styled:     isTerminalWriter(out),
	}
	return s.run(ctx, opts, args)
}

// run traverses every root in order. The first root that fails is reported
// as "[ERROR] <root>: <error>" and the remaining roots are not touched.
func (s session) run(ctx context.Context, opts uuidify.Options, roots []string) error {
	logger := logging.NewConsoleLoggerWithWriter(s.out, opts.Verbose, s.styled)

	var approver uuidify.Approver
	if opts.Confirm {
		approver = ui.NewInteractiveApproverWithIO(s.in, s.out, opts.Verbose, s.styled)
	} else {
		approver = ui.NewForcedApproverWithOutput(s.out, opts.Verbose, s.styled, opts.Countdown)
	}

	handler := renamer.New(renamer.Config{
		FS:            s.fsProvider,
		Generator:     s.generator,
		Approver:      approver,
		Logger:        logger,
		SkipGenerated: opts.SkipGenerated,
	})
	w := walker.NewWalkerWithFS(s.fsProvider, logger)

	var runErr error
	for _, root := range roots {
		logger.Verbose("Processing %s", root)
		if err := w.Enumerate(ctx, root, handler); err != nil {
			logger.Error("%s: %v", root, err)
			runErr = &reportedError{err: err}
			break
		}
	}

	if opts.Summary {
		if err := report.Write(s.out, handler.Records(), runErr); err != nil && runErr == nil {
			return err
		}
	}

	return runErr
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
