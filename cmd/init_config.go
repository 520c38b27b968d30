package cmd

import (
	"os"
	"path/filepath"

	"github.com/crytic/forgekit/cmd/exitcodes"
	"github.com/crytic/forgekit/config"
	"github.com/crytic/forgekit/logging/colors"
	"github.com/crytic/forgekit/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// initConfigCmd represents the command provider for init-config
var initConfigCmd = &cobra.Command{
	Use:               "init-config",
	Short:             "Initializes a project configuration",
	Long:              `Writes the default project configuration, as JSON or as YAML depending on the output file extension`,
	Args:              cobra.NoArgs,
	ValidArgsFunction: cmdValidUnusedFlags,
	RunE:              cmdRunInitConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to init-config command
	err := addInitConfigFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the init-config command", err)
	}

	// Add the init-config command and its associated flags to the root command
	rootCmd.AddCommand(initConfigCmd)
}

// cmdRunInitConfig executes the init-config CLI command
func cmdRunInitConfig(cmd *cobra.Command, args []string) error {
	// Check to see if --out flag was used and store the value of --out flag
	outputFlagUsed := cmd.Flags().Changed("out")
	outputPath, err := cmd.Flags().GetString("out")
	if err != nil {
		cmdLogger.Error("Failed to run the init-config command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// If we weren't provided an output path (flag was not used), we use our working directory
	if !outputFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			cmdLogger.Error("Failed to run the init-config command", err)
			return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
		}
		outputPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	// Never overwrite an existing configuration
	if _, err = os.Stat(outputPath); err == nil {
		err = errors.Errorf("a project configuration already exists at %s", outputPath)
		cmdLogger.Error("Failed to run the init-config command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Create the parent directory and write the default configuration
	err = utils.MakeDirectory(filepath.Dir(outputPath))
	if err != nil {
		cmdLogger.Error("Failed to run the init-config command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	err = config.GetDefaultProjectConfig().WriteToFile(outputPath)
	if err != nil {
		cmdLogger.Error("Failed to run the init-config command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Print a success message
	if absoluteOutputPath, err := filepath.Abs(outputPath); err == nil {
		outputPath = absoluteOutputPath
	}
	cmdLogger.Info("Project configuration successfully output to: ", colors.Bold, outputPath, colors.Reset)
	return nil
}
