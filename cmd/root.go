package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/crytic/forgekit/config"
	"github.com/crytic/forgekit/logging"
	"github.com/crytic/forgekit/logging/colors"
	"github.com/crytic/forgekit/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the forgekit command, which every other command is attached to
var rootCmd = &cobra.Command{
	Use:   "forgekit",
	Short: "Developer tooling for Foundry-based smart contract projects",
	Long: `forgekit bundles the developer tooling of a Foundry-based smart contract project: a gas-regression diff
filter for CI, a remapping consistency check between Foundry and Wake, interpreter matching for Python tooling and
file hashing.`,
	Version:           version.GetInfo().Short(),
	PersistentPreRunE: cmdPersistentPreRunRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// cmdLogger is the logger used by every command. It is replaced by a sub-logger of logging.GlobalLogger once the
// project configuration has been loaded.
var cmdLogger = logging.NewLogger(zerolog.Disabled)

// projectConfig is the project configuration resolved for the running command.
var projectConfig = config.GetDefaultProjectConfig()

// consoleWriter is the writer currently attached to logging.GlobalLogger for console output.
var consoleWriter io.Writer

func init() {
	// Add the global flags to the root command
	err := addRootFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the root command", err)
	}
}

// Execute runs the root command, dispatching to whichever command was invoked.
func Execute() error {
	return rootCmd.Execute()
}

// cmdPersistentPreRunRoot resolves the project configuration and sets up console logging before any command runs.
func cmdPersistentPreRunRoot(cmd *cobra.Command, args []string) error {
	// Resolve the project configuration before anything can be logged, since it decides the log level
	configPath, configFound, err := resolveProjectConfig(cmd)
	if err != nil {
		return err
	}

	// Update the project configuration given whatever flags were set using the CLI
	err = updateProjectConfigWithRootFlags(cmd, projectConfig)
	if err != nil {
		return err
	}
	err = projectConfig.Validate()
	if err != nil {
		return err
	}
	level, err := projectConfig.LogLevel()
	if err != nil {
		return err
	}

	// Console colors are only used on terminals
	if projectConfig.Logging.NoColor || !isTerminal(cmd.ErrOrStderr()) {
		colors.DisableColor()
	}

	// Route console logging to the command's error stream
	if consoleWriter != nil {
		logging.GlobalLogger.RemoveWriter(consoleWriter, logging.UNSTRUCTURED, true)
	}
	consoleWriter = cmd.ErrOrStderr()
	logging.GlobalLogger.SetLevel(level)
	logging.GlobalLogger.AddWriter(consoleWriter, logging.UNSTRUCTURED, true)
	cmdLogger = logging.GlobalLogger.NewSubLogger("module", logging.CLI_SERVICE)

	if configFound {
		cmdLogger.Debug("Read the configuration file at: ", colors.Bold, configPath, colors.Reset)
	} else {
		cmdLogger.Debug(fmt.Sprintf("Unable to find the config file at %v, using the default project configuration", configPath))
	}
	return nil
}

// resolveProjectConfig loads the project configuration into projectConfig. The --config flag takes precedence over
// the default file in the working directory, and a missing default file falls back to the default configuration.
// Returns the path considered and whether a file was read from it.
func resolveProjectConfig(cmd *cobra.Command) (string, bool, error) {
	configFlagUsed := cmd.Flags().Changed("config")
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", false, err
	}

	// If we weren't provided a path, look for the default config in the working directory
	if !configFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return "", false, err
		}
		configPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	// Check to see if the file exists at configPath
	_, existenceError := os.Stat(configPath)

	// Possibility #1: If the --config flag was used, and we couldn't find the file, we'll throw an error
	if configFlagUsed && existenceError != nil {
		return configPath, false, fmt.Errorf("unable to find the config file at %v", configPath)
	}

	// Possibility #2: --config flag was not used and forgekit.json was not found, so use the default project config
	if existenceError != nil {
		projectConfig = config.GetDefaultProjectConfig()
		return configPath, false, nil
	}

	// Possibility #3: File was found
	projectConfig, err = config.ReadProjectConfigFromFile(configPath)
	if err != nil {
		return configPath, false, err
	}
	return configPath, true, nil
}

// isTerminal returns true if the provided writer is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
