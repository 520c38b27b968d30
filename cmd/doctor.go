package cmd

import (
	"fmt"
	"os"

	"github.com/crytic/forgekit/cmd/exitcodes"
	"github.com/crytic/forgekit/doctor"
	"github.com/spf13/cobra"
)

// doctorCmd represents the command provider for doctor
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Checks that the Foundry and Wake remappings agree",
	Long: `Checks that profile.default.remappings in foundry.toml and compiler.solc.remappings in wake.toml hold the same
entries in the same order. Differences are reported and the command exits with a non-zero status.`,
	Args:              cobra.NoArgs,
	ValidArgsFunction: cmdValidUnusedFlags,
	RunE:              cmdRunDoctor,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to doctor command
	err := addDoctorFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the doctor command", err)
	}

	// Add the doctor command and its associated flags to the root command
	rootCmd.AddCommand(doctorCmd)
}

// cmdRunDoctor executes the doctor CLI command
func cmdRunDoctor(cmd *cobra.Command, args []string) error {
	// Resolve the project root, defaulting to the working directory
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		cmdLogger.Error("Failed to run the doctor command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			cmdLogger.Error("Failed to run the doctor command", err)
			return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
		}
	}

	// Read and compare the remappings
	remappings, err := doctor.LoadRemappings(root, projectConfig.Doctor.FoundryConfig, projectConfig.Doctor.WakeConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the doctor command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	report := remappings.Compare()
	fmt.Fprintln(cmd.OutOrStdout(), report.String())

	if !report.Identical() {
		return exitcodes.NewErrorWithExitCode(nil, exitcodes.ExitCodeCheckFailed)
	}
	return nil
}
