package cmd

import (
	"fmt"

	"github.com/crytic/forgekit/config"
	"github.com/spf13/cobra"
)

// addMatchPythonFlags adds the various flags for the match-python command
func addMatchPythonFlags() error {
	// Get the default project config
	defaultConfig := config.GetDefaultProjectConfig()

	// Prevent alphabetical sorting of usage message
	matchPythonCmd.Flags().SortFlags = false

	// Project directory
	matchPythonCmd.Flags().String("directory", "",
		fmt.Sprintf("directory containing pyproject.toml (unless a config file is provided, default is %q)", defaultConfig.Python.PyprojectDirectory))

	// Search directories
	matchPythonCmd.Flags().StringSlice("search-dir", []string{},
		fmt.Sprintf("directories to scan for python interpreters (unless a config file is provided, default is %v)", defaultConfig.Python.SearchDirectories))

	return nil
}

// updatePythonConfigWithMatchPythonFlags will update the given pythonConfig with any CLI arguments that were provided
// to the match-python command
func updatePythonConfigWithMatchPythonFlags(cmd *cobra.Command, pythonConfig *config.PythonConfig) error {
	var err error

	// Update the project directory
	if cmd.Flags().Changed("directory") {
		pythonConfig.PyprojectDirectory, err = cmd.Flags().GetString("directory")
		if err != nil {
			return err
		}
	}

	// Update the search directories
	if cmd.Flags().Changed("search-dir") {
		pythonConfig.SearchDirectories, err = cmd.Flags().GetStringSlice("search-dir")
		if err != nil {
			return err
		}
	}

	return nil
}
