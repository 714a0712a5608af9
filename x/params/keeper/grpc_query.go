package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/params/types"
)

// Params returns the raw JSON value of one parameter.
func (k Keeper) Params(ctx *sdk.QueryContext, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	if req.Subspace == "" || req.Key == "" {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "subspace and key must be set")
	}

	ss, ok := k.GetSubspace(req.Subspace)
	if !ok {
		return nil, sdkerrors.Wrap(types.ErrUnknownSubspace, req.Subspace)
	}

	bz, err := ss.GetRaw(ctx, []byte(req.Key))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, sdkerrors.Wrapf(types.ErrParamNotFound, "%s/%s", req.Subspace, req.Key)
	}

	return &types.QueryParamsResponse{
		Param: &types.ParamChange{Subspace: req.Subspace, Key: req.Key, Value: string(bz)},
	}, nil
}

// Subspaces lists every subspace and its registered keys.
func (k Keeper) Subspaces(ctx *sdk.QueryContext, req *types.QuerySubspacesRequest) (*types.QuerySubspacesResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	spaces := k.GetSubspaces()
	res := &types.QuerySubspacesResponse{Subspaces: make([]*types.SubspaceKeys, 0, len(spaces))}
	for _, ss := range spaces {
		res.Subspaces = append(res.Subspaces, &types.SubspaceKeys{Subspace: ss.Name(), Keys: ss.Keys()})
	}
	return res, nil
}
