package cmd

import (
	"fmt"

	"github.com/crytic/forgekit/config"
	"github.com/spf13/cobra"
)

// addRootFlags adds the flags shared by every command
func addRootFlags() error {
	// Get the default project config
	defaultConfig := config.GetDefaultProjectConfig()

	// Config file
	rootCmd.PersistentFlags().String("config", "",
		fmt.Sprintf("path to config file (default is %s in the working directory)", DefaultProjectConfigFilename))

	// Log level
	rootCmd.PersistentFlags().String("log-level", "",
		fmt.Sprintf("minimum level of console log messages (unless a config file is provided, default is %q)", defaultConfig.Logging.Level))

	// Colors
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored console output")

	return nil
}

// updateProjectConfigWithRootFlags will update the given projectConfig with any global CLI arguments that were provided
func updateProjectConfigWithRootFlags(cmd *cobra.Command, projectConfig *config.ProjectConfig) error {
	var err error

	// Update log level
	if cmd.Flags().Changed("log-level") {
		projectConfig.Logging.Level, err = cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
	}

	// Disable colors if --no-color is used
	if cmd.Flags().Changed("no-color") {
		projectConfig.Logging.NoColor, err = cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}
	}

	return nil
}
