package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/types"
)

// UpdateParams updates the params
func (k Keeper) UpdateParams(ctx *sdk.TxContext, req *types.MsgUpdateParams) error {
	if k.authority != req.Authority {
		return sdkerrors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", k.authority, req.Authority)
	}
	if req.Params == nil {
		return sdkerrors.Wrap(types.ErrInvalidParams, "params cannot be empty")
	}
	if err := req.Params.Validate(); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidParams, "invalid parameter: %v", err)
	}

	if err := k.SetParams(ctx, *req.Params); err != nil {
		return err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeUpdateParams,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyAuthority, req.Authority),
	))
	return nil
}
