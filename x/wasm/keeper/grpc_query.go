package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonchain/chainkit/store/prefix"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/query"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// ContractInfo returns the metadata of a contract.
func (k Keeper) ContractInfo(ctx *sdk.QueryContext, req *types.QueryContractInfoRequest) (*types.QueryContractInfoResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	contractAddr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	info, err := k.mustContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	return &types.QueryContractInfoResponse{Address: req.Address, ContractInfo: info}, nil
}

// ContractsByCode returns a page of the contracts of a code, in address
// order.
func (k Keeper) ContractsByCode(ctx *sdk.QueryContext, req *types.QueryContractsByCodeRequest) (*types.QueryContractsByCodeResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	if req.CodeID == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "code id")
	}

	var contracts []string
	pageRes, err := query.Paginate(k.contractsByCodeStore(ctx, req.CodeID), req.Pagination, func(key, _ []byte) error {
		contracts = append(contracts, sdk.AccAddress(key).String())
		return nil
	})
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return &types.QueryContractsByCodeResponse{Contracts: contracts, Pagination: pageRes}, nil
}

// RawContractState returns the raw value a contract stores at a key.
func (k Keeper) RawContractState(ctx *sdk.QueryContext, req *types.QueryRawContractStateRequest) (*types.QueryRawContractStateResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	contractAddr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	has, err := k.HasContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, sdkerrors.Wrapf(types.ErrNotFound, "contract %s", req.Address)
	}
	data, err := k.QueryRaw(ctx, contractAddr, req.QueryData)
	if err != nil {
		return nil, err
	}
	return &types.QueryRawContractStateResponse{Data: data}, nil
}

// SmartContractState runs a query of a contract.
func (k Keeper) SmartContractState(ctx *sdk.QueryContext, req *types.QuerySmartContractStateRequest) (*types.QuerySmartContractStateResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	contractAddr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	if len(req.QueryData) == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "query data: empty")
	}

	data, err := k.QuerySmart(ctx, contractAddr, req.QueryData)
	if err != nil {
		return nil, err
	}
	return &types.QuerySmartContractStateResponse{Data: data}, nil
}

// Code returns the metadata and the blob of a code.
func (k Keeper) Code(ctx *sdk.QueryContext, req *types.QueryCodeRequest) (*types.QueryCodeResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	if req.CodeID == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "code id")
	}

	info, err := k.mustCodeInfo(ctx, req.CodeID)
	if err != nil {
		return nil, err
	}
	code, err := ctx.KVStore(k.storeKey).Get(types.GetCodeBytesKey(info.Checksum))
	if err != nil {
		return nil, err
	}
	return &types.QueryCodeResponse{CodeInfo: codeInfoResponse(req.CodeID, *info), Data: code}, nil
}

// Codes returns a page of code metadata in code id order.
func (k Keeper) Codes(ctx *sdk.QueryContext, req *types.QueryCodesRequest) (*types.QueryCodesResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	var infos []*types.CodeInfoResponse
	store := prefix.NewReadStore(ctx.KVStore(k.storeKey), types.CodeKeyPrefix)
	pageRes, err := query.Paginate(store, req.Pagination, func(key, value []byte) error {
		var info types.CodeInfo
		if err := k.cdc.Unmarshal(value, &info); err != nil {
			return err
		}
		infos = append(infos, codeInfoResponse(sdk.BigEndianToUint64(key), info))
		return nil
	})
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return &types.QueryCodesResponse{CodeInfos: infos, Pagination: pageRes}, nil
}

// Params returns the wasm params.
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

func codeInfoResponse(codeID uint64, info types.CodeInfo) *types.CodeInfoResponse {
	cfg := info.InstantiateConfig
	return &types.CodeInfoResponse{
		CodeID:                codeID,
		Creator:               info.Creator,
		Checksum:              info.Checksum,
		InstantiatePermission: &cfg,
	}
}
