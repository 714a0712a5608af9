package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	abci "github.com/tendermint/tendermint/abci/types"
	tmjson "github.com/tendermint/tendermint/libs/json"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/babylonchain/chainkit/app"
)

// ExportCmd dumps the state committed at a height as a genesis file that a
// new chain can start from.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sctx := GetContextFromCmd(cmd)

			genDoc, err := tmtypes.GenesisDocFromFile(genesisFile(sctx.Home))
			if err != nil {
				return err
			}
			sctx.Viper.Set(app.FlagChainID, genDoc.ChainID)

			db, err := openDB(sctx.Logger, sctx.Home)
			if err != nil {
				return err
			}
			defer db.Close()

			chainApp, err := app.NewChainApp(log.NewNopLogger(), db, sctx.Viper)
			if err != nil {
				return err
			}
			if chainApp.LastBlockHeight() == 0 {
				return fmt.Errorf("no committed state to export in %s", sctx.Home)
			}

			exported, err := chainApp.ExportAppStateAndValidators(sctx.Viper.GetInt64(FlagHeight))
			if err != nil {
				return fmt.Errorf("error exporting state: %w", err)
			}

			// the new chain replays nothing, so it starts from the first height
			genDoc.AppState = exported.AppState
			genDoc.InitialHeight = 1
			genDoc.ConsensusParams = consensusParamsToTM(exported.ConsensusParams)

			if outputDocument := sctx.Viper.GetString(FlagOutputDocument); outputDocument != "" {
				return writeGenesis(outputDocument, genDoc)
			}
			out, err := tmjson.MarshalIndent(genDoc, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().Int64(FlagHeight, 0, "export state from a particular height (0 means latest height)")
	cmd.Flags().String(FlagOutputDocument, "", "exported genesis file, stdout if empty")

	return cmd
}

// consensusParamsToTM converts the params kept by the app into the genesis
// file form, keeping the Tendermint defaults for unset fields.
func consensusParamsToTM(cp *abci.ConsensusParams) *tmproto.ConsensusParams {
	params := tmtypes.DefaultConsensusParams()
	if cp == nil {
		return params
	}
	if cp.Block != nil {
		params.Block.MaxBytes = cp.Block.MaxBytes
		params.Block.MaxGas = cp.Block.MaxGas
	}
	if cp.Evidence != nil {
		params.Evidence = *cp.Evidence
	}
	if cp.Validator != nil {
		params.Validator = *cp.Validator
	}
	if cp.Version != nil {
		params.Version = *cp.Version
	}
	return params
}
