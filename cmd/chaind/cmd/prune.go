package cmd

import (
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/app"
)

// PruneCmd deletes all but the latest versions of the application state
// of a stopped node and compacts the database.
func PruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune historic versions from the application store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sctx := GetContextFromCmd(cmd)

			db, err := openDB(sctx.Logger, sctx.Home)
			if err != nil {
				return err
			}
			defer db.Close()

			chainApp, err := app.NewChainApp(log.NewNopLogger(), db, sctx.Viper)
			if err != nil {
				return err
			}

			keep := sctx.Viper.GetInt64(FlagKeepVersions)
			pruned, err := chainApp.CommitMultiStore().PruneVersions(keep)
			if err != nil {
				return err
			}
			sctx.Logger.Info("pruned application state", "versions", len(pruned), "kept", keep)

			sctx.Logger.Info("compacting application state")
			return db.DB().CompactRange(util.Range{})
		},
	}

	cmd.Flags().Int64(FlagKeepVersions, 10, "number of latest versions to keep")

	return cmd
}
