package keeper

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// InitGenesis initializes the auth module's state from a given genesis state.
// The next account number follows the largest genesis account number.
func (k AccountKeeper) InitGenesis(ctx *sdk.InitContext, gs types.GenesisState) error {
	if err := k.SetParams(ctx, *gs.Params); err != nil {
		return err
	}

	var next uint64
	for _, acc := range gs.Accounts {
		if err := k.SetAccount(ctx, acc); err != nil {
			return err
		}
		if acc.AccountNumber >= next {
			next = acc.AccountNumber + 1
		}
	}
	return k.setNextAccountNumber(ctx, next)
}

// ExportGenesis returns the auth module's exported genesis.
func (k AccountKeeper) ExportGenesis(ctx *sdk.QueryContext) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	var accounts []*types.BaseAccount
	err = k.IterateAccounts(ctx, func(acc *types.BaseAccount) bool {
		accounts = append(accounts, acc)
		return false
	})
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{Params: &params, Accounts: accounts}, nil
}
