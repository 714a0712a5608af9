package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/types"
)

// Params returns the mint params.
func (k Keeper) Params(ctx *sdk.QueryContext, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: &params}, nil
}

// Inflation returns the yearly inflation rate.
func (k Keeper) Inflation(ctx *sdk.QueryContext, req *types.QueryInflationRequest) (*types.QueryInflationResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryInflationResponse{Inflation: types.Inflation(params).String()}, nil
}

// AnnualProvisions returns the yearly provisions of the last minted block.
func (k Keeper) AnnualProvisions(ctx *sdk.QueryContext, req *types.QueryAnnualProvisionsRequest) (*types.QueryAnnualProvisionsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	minter, err := k.GetMinter(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryAnnualProvisionsResponse{AnnualProvisions: minter.AnnualProvisions}, nil
}
