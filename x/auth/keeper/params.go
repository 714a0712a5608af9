package keeper

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// SetParams sets the x/auth module parameters.
func (k AccountKeeper) SetParams(ctx sdk.MutableContext, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.paramSpace.SetParamSet(ctx, &p)
}

// GetParams returns the current x/auth module parameters.
func (k AccountKeeper) GetParams(ctx sdk.QueryableContext) (p types.Params, err error) {
	err = k.paramSpace.GetParamSet(ctx, &p)
	return p, err
}
