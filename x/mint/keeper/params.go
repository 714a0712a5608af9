package keeper

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/types"
)

// SetParams sets the x/mint module parameters.
func (k Keeper) SetParams(ctx sdk.MutableContext, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.paramSpace.SetParamSet(ctx, &p)
}

// GetParams returns the current x/mint module parameters.
func (k Keeper) GetParams(ctx sdk.QueryableContext) (p types.Params, err error) {
	err = k.paramSpace.GetParamSet(ctx, &p)
	return p, err
}
