package cmd

import (
	"fmt"

	"github.com/crytic/forgekit/cmd/exitcodes"
	"github.com/crytic/forgekit/interpreter"
	"github.com/spf13/cobra"
)

// matchPythonCmd represents the command provider for match-python
var matchPythonCmd = &cobra.Command{
	Use:   "match-python",
	Short: "Finds an installed Python interpreter satisfying the project's constraint",
	Long: `Reads the python requirement from tool.poetry.dependencies in pyproject.toml and prints the path of the highest
versioned python<version> interpreter in the search directories that satisfies it. Nothing is printed if the project
does not constrain python.`,
	Args:              cobra.NoArgs,
	ValidArgsFunction: cmdValidUnusedFlags,
	RunE:              cmdRunMatchPython,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to match-python command
	err := addMatchPythonFlags()
	if err != nil {
		cmdLogger.Panic("Failed to initialize the match-python command", err)
	}

	// Add the match-python command and its associated flags to the root command
	rootCmd.AddCommand(matchPythonCmd)
}

// cmdRunMatchPython executes the match-python CLI command
func cmdRunMatchPython(cmd *cobra.Command, args []string) error {
	// Update the python configuration given whatever flags were set using the CLI
	pythonConfig := projectConfig.Python
	err := updatePythonConfigWithMatchPythonFlags(cmd, &pythonConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the match-python command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Read the constraint. A project without one needs no particular interpreter.
	constraint, ok, err := interpreter.ReadPythonConstraint(pythonConfig.PyprojectDirectory)
	if err != nil {
		cmdLogger.Error("Failed to run the match-python command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	if !ok {
		return nil
	}

	// Find the best interpreter
	expanded := interpreter.ExpandCaret(constraint)
	cmdLogger.Debug("Matching python interpreters against ", expanded)
	candidate, err := interpreter.FindMatching(expanded, pythonConfig.SearchDirectories)
	if err != nil {
		cmdLogger.Error("Failed to run the match-python command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	if candidate == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No matching Python version found for: %s, interpreted as %s\n", constraint, expanded)
		return exitcodes.NewErrorWithExitCode(nil, exitcodes.ExitCodeCheckFailed)
	}

	fmt.Fprintln(cmd.OutOrStdout(), candidate.Path)
	return nil
}
