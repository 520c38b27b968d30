package cmd

import (
	"fmt"
	"os"

	"github.com/crytic/forgekit/cmd/exitcodes"
	"github.com/crytic/forgekit/gasdiff"
	"github.com/crytic/forgekit/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// compareGasCmd represents the command provider for compare-gas
var compareGasCmd = &cobra.Command{
	Use:   "compare-gas",
	Short: "Filters gas snapshot diffs down to changes outside of a tolerance",
	Long: `Reads a line-oriented diff of gas snapshots from standard input, pairs removed and added rows by function name
and collapses every pair whose gas values are within tolerance into a single context line. Everything else is kept.
The command exits with a non-zero status if any difference exceeds the tolerance.

With --old and --new, the diff is computed from the two snapshot files instead of read from standard input.`,
	Args:              cmdValidateCompareGasArgs,
	ValidArgsFunction: cmdValidUnusedFlags,
	RunE:              cmdRunCompareGas,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to compare-gas command
	err := addCompareGasFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the compare-gas command", err)
	}

	// Add the compare-gas command and its associated flags to the root command
	rootCmd.AddCommand(compareGasCmd)
}

// cmdValidateCompareGasArgs makes sure that there are no positional arguments provided to the compare-gas command.
// Arguments are validated before logging is set up, so errors are returned for main to print.
func cmdValidateCompareGasArgs(cmd *cobra.Command, args []string) error {
	// Make sure we have no positional args
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("compare-gas does not accept any positional arguments, only flags and their associated values")
	}
	return nil
}

// cmdRunCompareGas executes the compare-gas CLI command
func cmdRunCompareGas(cmd *cobra.Command, args []string) error {
	// Start from the configured tolerance and apply any flags on top of it
	tolerance := projectConfig.CompareGas
	err := updateToleranceWithCompareGasFlags(cmd, &tolerance)
	if err != nil {
		cmdLogger.Error("Failed to run the compare-gas command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Invalid tolerances abort before any input is read
	err = tolerance.Validate()
	if err != nil {
		cmdLogger.Error("Failed to run the compare-gas command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Obtain the diff lines
	lines, err := readCompareGasInput(cmd)
	if err != nil {
		cmdLogger.Error("Failed to run the compare-gas command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// The per-line trace of --debug goes to standard output
	var traceLogger *logging.Logger
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		cmdLogger.Error("Failed to run the compare-gas command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	if debug {
		traceLogger = logging.NewLogger(zerolog.DebugLevel)
		traceLogger.AddWriter(cmd.OutOrStdout(), logging.UNSTRUCTURED, false)
	}

	// Filter the diff and write the result
	result := gasdiff.NewFilter(tolerance, traceLogger).Apply(lines)
	out := cmd.OutOrStdout()
	for _, line := range result.Lines {
		fmt.Fprintln(out, line)
	}

	if result.Exceeded {
		return exitcodes.NewErrorWithExitCode(nil, exitcodes.ExitCodeToleranceExceeded)
	}
	return nil
}

// readCompareGasInput returns the diff lines to filter: a diff of the --old and --new snapshots if they were
// provided, or standard input otherwise.
func readCompareGasInput(cmd *cobra.Command) ([]string, error) {
	oldUsed, newUsed := cmd.Flags().Changed("old"), cmd.Flags().Changed("new")
	if oldUsed != newUsed {
		return nil, errors.Errorf("--old and --new must be provided together")
	}
	if !oldUsed {
		return gasdiff.ReadLines(cmd.InOrStdin())
	}

	// Read both snapshots
	snapshots := make([]string, 0, 2)
	for _, name := range []string{"old", "new"} {
		path, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read the --%s snapshot", name)
		}
		snapshots = append(snapshots, string(b))
	}

	colorize, err := cmd.Flags().GetBool("color")
	if err != nil {
		return nil, err
	}
	return gasdiff.DiffSnapshots(snapshots[0], snapshots[1], colorize), nil
}
