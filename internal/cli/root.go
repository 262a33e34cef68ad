package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/uuidify/internal/tui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

var rootCmd = &cobra.Command{
	Use:   "uuidify <path> [<path> ...]",
	Short: "Rename every file under the given paths to a random UUID",
	Long: `uuidify walks each path recursively and renames every file it finds to a
freshly generated version-4 UUID, keeping the file in its directory and keeping
its extension. Directories themselves are never renamed and symbolic links are
renamed, not followed.

By default every rename is shown and must be confirmed with Y or YES.
Anything else leaves the file unchanged.

Paths that do not exist are reported and skipped. The first rename or
directory read that fails stops the run, including all remaining paths.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid flag combination
  11 - Filesystem error (directory read or rename failed)
  12 - Permission denied
  13 - Interrupted`,
	Example: `  # Confirm every rename
  uuidify ./photos

  # Rename without asking, several trees in order
  uuidify --yes ./photos ./scans

  # Leave files that already carry a UUID name alone and print a report
  uuidify --yes --skip-generated --summary ./photos`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRename,
}

type renameFlagValues struct {
	yes           bool
	skipGenerated bool
	summary       bool
	countdown     time.Duration
}

var renameFlags renameFlagValues

// reportedError marks a failure that has already been printed as an
// [ERROR] line, so Execute does not print it twice.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if uuidify.ExitCodeForError(err) == uuidify.ExitUsageError {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
		}
	}
	return err
}

func init() {
	// root has no subcommands, so cobra adds no help command either;
	// "help", "version" and "completion" reach runRename as paths
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().BoolVarP(&renameFlags.yes, "yes", "y", false,
		"Rename without asking for confirmation")
	rootCmd.Flags().BoolVar(&renameFlags.skipGenerated, "skip-generated", false,
		"Leave files alone whose name already is a UUID")
	rootCmd.Flags().BoolVar(&renameFlags.summary, "summary", false,
		"Print a YAML summary of all outcomes when the run ends")
	rootCmd.Flags().DurationVar(&renameFlags.countdown, "countdown", defaultCountdown(),
		"Pause shown once before renaming with --yes (0 disables)\n"+
			"Default: 3s when stdout is a terminal, otherwise 0")
}

func defaultCountdown() time.Duration {
	if tui.IsTerminal(os.Stdout) {
		return uuidify.DefaultCountdown
	}
	return 0
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// buildOptions collects the flag values into validated options.
// The countdown only applies to unattended runs, so with confirmation on
// its default is dropped unless the user set it explicitly.
func buildOptions(cmd *cobra.Command) (uuidify.Options, error) {
	opts := uuidify.Options{
		Confirm:       !renameFlags.yes,
		Verbose:       getVerboseFlag(cmd),
		SkipGenerated: renameFlags.skipGenerated,
		Summary:       renameFlags.summary,
		Countdown:     renameFlags.countdown,
	}
	if opts.Confirm && !cmd.Flags().Changed("countdown") {
		opts.Countdown = 0
	}

	if err := opts.Validate(); err != nil {
		return uuidify.Options{}, err
	}
	return opts, nil
}
