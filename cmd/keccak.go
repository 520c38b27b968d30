package cmd

import (
	"fmt"

	"github.com/crytic/forgekit/cmd/exitcodes"
	"github.com/crytic/forgekit/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// keccakCmd represents the command provider for keccak
var keccakCmd = &cobra.Command{
	Use:   "keccak <file>",
	Short: "Prints the keccak-256 digest of a file",
	Long:  `Prints the keccak-256 digest of the contents of a file as lowercase hex without a 0x prefix`,
	Args:  cmdValidateKeccakArgs,
	RunE:  cmdRunKeccak,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add the keccak command to the root command
	rootCmd.AddCommand(keccakCmd)
}

// cmdValidateKeccakArgs makes sure that exactly one file is provided to the keccak command
func cmdValidateKeccakArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("keccak requires exactly one file argument, got %d", len(args))
	}
	return nil
}

// cmdRunKeccak executes the keccak CLI command
func cmdRunKeccak(cmd *cobra.Command, args []string) error {
	hash, err := utils.KeccakFile(args[0])
	if err != nil {
		cmdLogger.Error("Failed to run the keccak command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	fmt.Fprintln(cmd.OutOrStdout(), common.Bytes2Hex(hash.Bytes()))
	return nil
}
