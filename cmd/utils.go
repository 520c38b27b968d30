package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cmdValidUnusedFlags returns the flags of the command that have not been used yet for dynamic completion. Commands
// using it take no positional arguments.
func cmdValidUnusedFlags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string

	// Examine all the flags, and add any flags that have not been set in the current command line
	// to a list of unused flags
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			// When adding a flag to a command, include the "--" prefix to indicate that it is a flag
			// and not a positional argument.
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		}
	})

	// Provide a list of flags that can be used in the current command (but have not been used yet)
	// for autocompletion suggestions
	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}
