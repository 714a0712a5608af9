package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/babylonchain/chainkit/app"
	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
)

// AddGenesisAccountCmd appends an account to the auth genesis state. The
// account number is the next free one.
func AddGenesisAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-account [address]",
		Short: "Add a genesis account to genesis.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sctx := GetContextFromCmd(cmd)
			cdc := app.MakeEncodingConfig().Codec

			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			genFile := genesisFile(sctx.Home)
			genDoc, err := tmtypes.GenesisDocFromFile(genFile)
			if err != nil {
				return err
			}
			var appState app.GenesisState
			if err := json.Unmarshal(genDoc.AppState, &appState); err != nil {
				return fmt.Errorf("failed to unmarshal genesis state: %w", err)
			}

			authGenesis, err := addGenesisAccount(cdc, appState, addr, sctx.Viper.GetUint64(FlagSequence))
			if err != nil {
				return err
			}
			if appState[authtypes.ModuleName], err = cdc.MarshalJSON(authGenesis); err != nil {
				return fmt.Errorf("failed to marshal auth genesis state: %w", err)
			}

			if genDoc.AppState, err = json.MarshalIndent(appState, "", " "); err != nil {
				return err
			}
			return writeGenesis(genFile, genDoc)
		},
	}

	cmd.Flags().Uint64(FlagSequence, 0, "initial sequence of the account")

	return cmd
}

func addGenesisAccount(
	cdc codec.JSONCodec, appState app.GenesisState, addr sdk.AccAddress, sequence uint64,
) (*authtypes.GenesisState, error) {
	authGenesis := authtypes.DefaultGenesis()
	if bz, ok := appState[authtypes.ModuleName]; ok {
		if err := cdc.UnmarshalJSON(bz, authGenesis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal auth genesis state: %w", err)
		}
	}

	var nextNumber uint64
	for _, acc := range authGenesis.Accounts {
		if acc.Address == addr.String() {
			return nil, fmt.Errorf("cannot add account at existing address %s", addr)
		}
		if acc.AccountNumber >= nextNumber {
			nextNumber = acc.AccountNumber + 1
		}
	}

	acc := authtypes.NewBaseAccount(addr, nextNumber)
	acc.Sequence = sequence
	authGenesis.Accounts = append(authGenesis.Accounts, acc)

	return authGenesis, authGenesis.Validate()
}
