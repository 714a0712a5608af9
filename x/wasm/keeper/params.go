package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// GetParams returns the total set of wasm parameters.
func (k Keeper) GetParams(ctx sdk.QueryableContext) (types.Params, error) {
	var params types.Params
	if err := k.paramSpace.GetParamSet(ctx, &params); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// SetParams validates and stores params. The engine sees them at the end of
// the block.
func (k Keeper) SetParams(ctx sdk.MutableContext, params types.Params) error {
	if err := params.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidRequest, err.Error())
	}
	return k.paramSpace.SetParamSet(ctx, &params)
}

// EndBlocker passes the params of the block to the engine. Writes reverted
// by a failed or simulated tx never reach it.
func (k Keeper) EndBlocker(ctx sdk.QueryableContext) error {
	return k.syncEngineParams(ctx)
}

func (k Keeper) syncEngineParams(ctx sdk.QueryableContext) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	k.engine.OnParamsChange(params)
	return nil
}
