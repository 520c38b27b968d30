package cmd

import (
	"fmt"

	"github.com/crytic/forgekit/gasdiff"
	"github.com/spf13/cobra"
)

// addCompareGasFlags adds the various flags for the compare-gas command
func addCompareGasFlags() error {
	defaultTolerance := gasdiff.DefaultTolerance()

	// Prevent alphabetical sorting of usage message
	compareGasCmd.Flags().SortFlags = false

	// Tolerances
	compareGasCmd.Flags().Float64("rel-tolerance", defaultTolerance.Relative,
		"relative tolerance as a fraction of the larger reading (unless a config file overrides it)")
	compareGasCmd.Flags().Float64("abs-tolerance", defaultTolerance.Absolute,
		"absolute tolerance in gas units (unless a config file overrides it)")

	// Tracing
	compareGasCmd.Flags().Bool("debug", false, "trace every input and output line to standard output")

	// Snapshots
	compareGasCmd.Flags().String("old", "", "path to the baseline gas snapshot, diffed against --new instead of reading standard input")
	compareGasCmd.Flags().String("new", "", "path to the current gas snapshot, diffed against --old instead of reading standard input")
	compareGasCmd.Flags().Bool("color", false, fmt.Sprintf("color the --old/--new diff the way %q does", "git diff --color"))

	return nil
}

// updateToleranceWithCompareGasFlags will update the given tolerance with any CLI arguments that were provided to the
// compare-gas command
func updateToleranceWithCompareGasFlags(cmd *cobra.Command, tolerance *gasdiff.Tolerance) error {
	var err error

	// Update relative tolerance
	if cmd.Flags().Changed("rel-tolerance") {
		tolerance.Relative, err = cmd.Flags().GetFloat64("rel-tolerance")
		if err != nil {
			return err
		}
	}

	// Update absolute tolerance
	if cmd.Flags().Changed("abs-tolerance") {
		tolerance.Absolute, err = cmd.Flags().GetFloat64("abs-tolerance")
		if err != nil {
			return err
		}
	}

	return nil
}
