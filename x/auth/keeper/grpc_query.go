package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/query"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// Account returns the account at an address.
func (k AccountKeeper) Account(ctx *sdk.QueryContext, req *types.QueryAccountRequest) (*types.QueryAccountResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	acc, err := k.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, sdkerrors.Wrap(types.ErrAccountNotFound, req.Address)
	}
	return &types.QueryAccountResponse{Account: acc}, nil
}

// Accounts returns a page of accounts in address order.
func (k AccountKeeper) Accounts(ctx *sdk.QueryContext, req *types.QueryAccountsRequest) (*types.QueryAccountsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	var accounts []*types.BaseAccount
	pageRes, err := query.Paginate(k.accountStore(ctx), req.Pagination, func(_, value []byte) error {
		var acc types.BaseAccount
		if err := k.cdc.Unmarshal(value, &acc); err != nil {
			return err
		}
		accounts = append(accounts, &acc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryAccountsResponse{Accounts: accounts, Pagination: pageRes}, nil
}

// Params returns the auth params.
func (k AccountKeeper) Params(ctx *sdk.QueryContext, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: &params}, nil
}
