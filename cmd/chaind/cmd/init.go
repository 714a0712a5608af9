package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"
	tmrand "github.com/tendermint/tendermint/libs/rand"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/babylonchain/chainkit/app"
	"github.com/babylonchain/chainkit/types/module"
)

// InitCmd writes the default app.toml and a genesis file holding the
// default state of every module in mbm.
func InitCmd(mbm module.BasicManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node configuration and genesis file",
		Long: `Write <home>/config/app.toml and <home>/config/genesis.json.
The genesis file holds the default state of every module and no accounts;
use add-genesis-account to fund the chain before it starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sctx := GetContextFromCmd(cmd)
			cdc := app.MakeEncodingConfig().Codec

			chainID := sctx.Viper.GetString(app.FlagChainID)
			if chainID == "" {
				chainID = fmt.Sprintf("test-chain-%v", tmrand.Str(6))
			}

			genFile := genesisFile(sctx.Home)
			if !sctx.Viper.GetBool(FlagOverwrite) && tmos.FileExists(genFile) {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			if err := app.WriteConfigFile(sctx.Home, app.ParseConfig(sctx.Viper)); err != nil {
				return err
			}

			appState, err := json.MarshalIndent(mbm.DefaultGenesis(cdc), "", " ")
			if err != nil {
				return fmt.Errorf("failed to marshal default genesis state: %w", err)
			}

			genDoc := &tmtypes.GenesisDoc{
				ChainID:         chainID,
				InitialHeight:   1,
				ConsensusParams: tmtypes.DefaultConsensusParams(),
				AppState:        appState,
			}
			if err := writeGenesis(genFile, genDoc); err != nil {
				return err
			}

			cmd.Printf("Initialized chain %s in %s\n", chainID, sctx.Home)
			return nil
		},
	}

	cmd.Flags().String(app.FlagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().String(app.FlagAuthority, app.DefaultConfig().Authority, "address allowed to update module params")
	cmd.Flags().Uint64(app.FlagMinGasPriceMilli, 0, "minimum fee per thousand gas units accepted in CheckTx")
	cmd.Flags().Bool(FlagOverwrite, false, "overwrite the genesis.json file")

	return cmd
}

// writeGenesis validates genDoc, filling in its defaults, and saves it.
func writeGenesis(genFile string, genDoc *tmtypes.GenesisDoc) error {
	if err := genDoc.ValidateAndComplete(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(genFile), os.ModePerm); err != nil {
		return err
	}
	return genDoc.SaveAs(genFile)
}
