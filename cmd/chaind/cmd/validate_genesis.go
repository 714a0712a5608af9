package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/babylonchain/chainkit/app"
	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/types/module"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
)

// ValidateGenesisCmd takes a genesis file, and makes sure that it is valid.
// 1. genesis state of each module should be valid according to each module's
// validation rule
// 2. the authority configured in app.toml should be one of the genesis
// accounts or a module address, otherwise it can never sign
func ValidateGenesisCmd(mbm module.BasicManager) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Args:  cobra.RangeArgs(0, 1),
		Short: "validates the genesis file at the default location or at the location passed as an arg",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sctx := GetContextFromCmd(cmd)
			cdc := app.MakeEncodingConfig().Codec

			// Load default if passed no args, otherwise load passed file
			var genesis string
			if len(args) == 0 {
				genesis = genesisFile(sctx.Home)
			} else {
				genesis = args[0]
			}

			genDoc, err := tmtypes.GenesisDocFromFile(genesis)
			if err != nil {
				return err
			}

			var genState map[string]json.RawMessage
			if err = json.Unmarshal(genDoc.AppState, &genState); err != nil {
				return fmt.Errorf("error unmarshalling genesis doc %s: %s", genesis, err.Error())
			}

			if err = mbm.ValidateGenesis(cdc, genState); err != nil {
				return fmt.Errorf("error validating genesis file %s: %s", genesis, err.Error())
			}

			cfg := app.ParseConfig(sctx.Viper)
			if err = CheckAuthority(cdc, genState, cfg.Authority); err != nil {
				return fmt.Errorf("error validating genesis file authority %s: %s", genesis, err.Error())
			}

			cmd.Printf("File at %s is a valid genesis file\n", genesis)
			return nil
		},
	}
}

// CheckAuthority checks that authority is either the default module
// authority or a genesis account.
func CheckAuthority(cdc codec.JSONCodec, genesis map[string]json.RawMessage, authority string) error {
	if authority == app.DefaultConfig().Authority {
		return nil
	}

	authGenesis := authtypes.DefaultGenesis()
	if bz, ok := genesis[authtypes.ModuleName]; ok {
		if err := cdc.UnmarshalJSON(bz, authGenesis); err != nil {
			return err
		}
	}
	for _, acc := range authGenesis.Accounts {
		if acc.Address == authority {
			return nil
		}
	}
	return fmt.Errorf("authority %s is not a genesis account", authority)
}
