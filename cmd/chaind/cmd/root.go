package cmd

import (
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"

	"github.com/babylonchain/chainkit/app"
)

// NewRootCmd creates a new root command for chaind. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chaind",
		Short: "Run a chainkit application node",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			return InterceptConfigsPreRunHandler(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(FlagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "the logging level (debug|info|error|none)")

	rootCmd.AddCommand(
		InitCmd(app.ModuleBasics),
		AddGenesisAccountCmd(),
		ValidateGenesisCmd(app.ModuleBasics),
		StartCmd(),
		ExportCmd(),
		PruneCmd(),
		version.NewVersionCommand(),
	)

	return rootCmd
}
