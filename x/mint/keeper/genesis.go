package keeper

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/types"
)

// InitGenesis initializes the mint module's state from a given genesis state.
func (k Keeper) InitGenesis(ctx *sdk.InitContext, gs types.GenesisState) error {
	if err := k.SetParams(ctx, *gs.Params); err != nil {
		return err
	}
	return k.SetMinter(ctx, *gs.Minter)
}

// ExportGenesis returns the mint module's exported genesis.
func (k Keeper) ExportGenesis(ctx *sdk.QueryContext) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	minter, err := k.GetMinter(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewGenesisState(params, minter), nil
}
