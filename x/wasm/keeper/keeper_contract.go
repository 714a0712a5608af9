package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonchain/chainkit/store/gaskv"
	"github.com/babylonchain/chainkit/store/prefix"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// Instantiate creates a contract from codeID and runs its instantiate entry
// point. It returns the new contract address and the data of the call.
func (k Keeper) Instantiate(
	ctx *sdk.TxContext,
	codeID uint64,
	creator, admin sdk.AccAddress,
	initMsg []byte,
	label string,
) (sdk.AccAddress, []byte, error) {
	codeInfo, err := k.mustCodeInfo(ctx, codeID)
	if err != nil {
		return nil, nil, err
	}
	if !codeInfo.InstantiateConfig.Allowed(creator) {
		return nil, nil, sdkerrors.Wrap(types.ErrUnauthorized, "can not instantiate")
	}

	instanceID, err := k.autoIncrementID(ctx, types.KeyLastInstanceID)
	if err != nil {
		return nil, nil, err
	}
	contractAddr := types.BuildContractAddress(codeID, instanceID)
	has, err := k.HasContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, nil, err
	}
	if has {
		return nil, nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "contract %s exists", contractAddr)
	}

	if err := k.loadCode(ctx, codeInfo.Checksum); err != nil {
		return nil, nil, err
	}
	info := types.MessageInfo{Sender: creator.String()}
	res, err := k.engine.Instantiate(codeInfo.Checksum, k.env(ctx, contractAddr), info, initMsg, k.contractStore(ctx, contractAddr), ctx.GasMeter())
	if err != nil {
		return nil, nil, engineError(err)
	}
	if res == nil {
		res = &types.Response{}
	}

	contractInfo := types.NewContractInfo(codeID, creator, admin, label, ctx.Height())
	if err := k.storeContractInfo(ctx, contractAddr, &contractInfo); err != nil {
		return nil, nil, err
	}
	if err := ctx.KVStoreMut(k.storeKey).Set(types.GetContractByCodeIDSecondaryIndex(codeID, contractAddr), []byte{}); err != nil {
		return nil, nil, err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeInstantiate,
		sdk.NewAttribute(types.AttributeKeyContractAddr, contractAddr.String()),
		codeIDAttribute(codeID),
	))
	k.emitContractEvent(ctx, contractAddr, res)
	return contractAddr, res.Data, nil
}

// Execute runs the execute entry point of a contract.
func (k Keeper) Execute(ctx *sdk.TxContext, contractAddr, caller sdk.AccAddress, msg []byte) ([]byte, error) {
	contractInfo, err := k.mustContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	codeInfo, err := k.mustCodeInfo(ctx, contractInfo.CodeID)
	if err != nil {
		return nil, err
	}

	if err := k.loadCode(ctx, codeInfo.Checksum); err != nil {
		return nil, err
	}
	info := types.MessageInfo{Sender: caller.String()}
	res, err := k.engine.Execute(codeInfo.Checksum, k.env(ctx, contractAddr), info, msg, k.contractStore(ctx, contractAddr), ctx.GasMeter())
	if err != nil {
		return nil, engineError(err)
	}
	if res == nil {
		res = &types.Response{}
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeExecute,
		sdk.NewAttribute(types.AttributeKeyContractAddr, contractAddr.String()),
	))
	k.emitContractEvent(ctx, contractAddr, res)
	return res.Data, nil
}

// Migrate moves a contract to newCodeID and runs the migrate entry point of
// the new code. Only the admin may migrate, and the new code must allow the
// admin to instantiate it.
func (k Keeper) Migrate(ctx *sdk.TxContext, contractAddr, caller sdk.AccAddress, newCodeID uint64, msg []byte) ([]byte, error) {
	contractInfo, err := k.mustContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	if contractInfo.Admin == "" || !contractInfo.AdminAddr().Equals(caller) {
		return nil, sdkerrors.Wrap(types.ErrUnauthorized, "can not migrate")
	}
	newCodeInfo, err := k.mustCodeInfo(ctx, newCodeID)
	if err != nil {
		return nil, err
	}
	if !newCodeInfo.InstantiateConfig.Allowed(caller) {
		return nil, sdkerrors.Wrap(types.ErrUnauthorized, "to create new contract from code")
	}

	if err := k.loadCode(ctx, newCodeInfo.Checksum); err != nil {
		return nil, err
	}
	res, err := k.engine.Migrate(newCodeInfo.Checksum, k.env(ctx, contractAddr), msg, k.contractStore(ctx, contractAddr), ctx.GasMeter())
	if err != nil {
		return nil, engineError(err)
	}
	if res == nil {
		res = &types.Response{}
	}

	store := ctx.KVStoreMut(k.storeKey)
	if err := store.Delete(types.GetContractByCodeIDSecondaryIndex(contractInfo.CodeID, contractAddr)); err != nil {
		return nil, err
	}
	if err := store.Set(types.GetContractByCodeIDSecondaryIndex(newCodeID, contractAddr), []byte{}); err != nil {
		return nil, err
	}
	contractInfo.CodeID = newCodeID
	if err := k.storeContractInfo(ctx, contractAddr, contractInfo); err != nil {
		return nil, err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeMigrate,
		sdk.NewAttribute(types.AttributeKeyContractAddr, contractAddr.String()),
		codeIDAttribute(newCodeID),
	))
	k.emitContractEvent(ctx, contractAddr, res)
	return res.Data, nil
}

// UpdateContractAdmin hands the admin role to newAdmin. An empty newAdmin
// clears the admin and makes the contract immutable.
func (k Keeper) UpdateContractAdmin(ctx sdk.TransactionalContext, contractAddr, caller, newAdmin sdk.AccAddress) error {
	contractInfo, err := k.mustContractInfo(ctx, contractAddr)
	if err != nil {
		return err
	}
	if contractInfo.Admin == "" || !contractInfo.AdminAddr().Equals(caller) {
		return sdkerrors.Wrap(types.ErrUnauthorized, "can not modify contract")
	}
	contractInfo.Admin = newAdmin.String()
	if err := k.storeContractInfo(ctx, contractAddr, contractInfo); err != nil {
		return err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeUpdateAdmin,
		sdk.NewAttribute(types.AttributeKeyContractAddr, contractAddr.String()),
		sdk.NewAttribute(types.AttributeKeyNewAdmin, contractInfo.Admin),
	))
	return nil
}

// QuerySmart runs the query entry point of a contract. The query is bounded
// by the query gas limit of the params, and its reads are charged to it.
func (k Keeper) QuerySmart(ctx *sdk.QueryContext, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	contractInfo, err := k.mustContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	codeInfo, err := k.mustCodeInfo(ctx, contractInfo.CodeID)
	if err != nil {
		return nil, err
	}

	gasMeter := storetypes.NewGasMeter(params.QueryGasLimit)
	store := gaskv.NewReadStore(
		prefix.NewReadStore(ctx.KVStore(k.storeKey), types.GetContractStorePrefix(contractAddr)),
		gasMeter,
		storetypes.KVGasConfig(),
	)
	env := types.Env{
		BlockHeight:     ctx.Height(),
		BlockTime:       ctx.BlockTime(),
		ChainID:         ctx.ChainID(),
		ContractAddress: contractAddr.String(),
	}
	if err := k.loadCode(ctx, codeInfo.Checksum); err != nil {
		return nil, err
	}
	res, err := k.engine.Query(codeInfo.Checksum, env, req, store, gasMeter)
	if err != nil {
		return nil, engineError(err)
	}
	return res, nil
}

// QueryRaw returns the value stored by a contract at key, or nil.
func (k Keeper) QueryRaw(ctx sdk.QueryableContext, contractAddr sdk.AccAddress, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	return prefix.NewReadStore(ctx.KVStore(k.storeKey), types.GetContractStorePrefix(contractAddr)).Get(key)
}

// GetContractInfo returns the metadata of a contract, or nil if there is
// none.
func (k Keeper) GetContractInfo(ctx sdk.QueryableContext, contractAddr sdk.AccAddress) (*types.ContractInfo, error) {
	bz, err := ctx.KVStore(k.storeKey).Get(types.GetContractAddressKey(contractAddr))
	if err != nil || bz == nil {
		return nil, err
	}
	var contract types.ContractInfo
	if err := k.cdc.Unmarshal(bz, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (k Keeper) mustContractInfo(ctx sdk.QueryableContext, contractAddr sdk.AccAddress) (*types.ContractInfo, error) {
	info, err := k.GetContractInfo(ctx, contractAddr)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, sdkerrors.Wrapf(types.ErrNotFound, "contract %s", contractAddr)
	}
	return info, nil
}

// HasContractInfo reports whether a contract exists at contractAddr.
func (k Keeper) HasContractInfo(ctx sdk.QueryableContext, contractAddr sdk.AccAddress) (bool, error) {
	return ctx.KVStore(k.storeKey).Has(types.GetContractAddressKey(contractAddr))
}

func (k Keeper) storeContractInfo(ctx sdk.MutableContext, contractAddr sdk.AccAddress, info *types.ContractInfo) error {
	bz, err := k.cdc.Marshal(info)
	if err != nil {
		return err
	}
	return ctx.KVStoreMut(k.storeKey).Set(types.GetContractAddressKey(contractAddr), bz)
}

// IterateContractInfo calls cb on every contract in address order until it
// returns true.
func (k Keeper) IterateContractInfo(ctx sdk.QueryableContext, cb func(sdk.AccAddress, types.ContractInfo) (stop bool)) error {
	iter, err := prefix.NewReadStore(ctx.KVStore(k.storeKey), types.ContractKeyPrefix).Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var contract types.ContractInfo
		if err := k.cdc.Unmarshal(iter.Value(), &contract); err != nil {
			return err
		}
		if cb(sdk.AccAddress(iter.Key()), contract) {
			break
		}
	}
	return iter.Error()
}

// IterateContractsByCode calls cb on every contract of codeID in address
// order until it returns true.
func (k Keeper) IterateContractsByCode(ctx sdk.QueryableContext, codeID uint64, cb func(sdk.AccAddress) (stop bool)) error {
	iter, err := k.contractsByCodeStore(ctx, codeID).Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		if cb(sdk.AccAddress(iter.Key())) {
			break
		}
	}
	return iter.Error()
}

// IterateContractState calls cb on every raw key-value pair of a contract
// in key order until it returns true.
func (k Keeper) IterateContractState(ctx sdk.QueryableContext, contractAddr sdk.AccAddress, cb func(key, value []byte) (stop bool)) error {
	iter, err := prefix.NewReadStore(ctx.KVStore(k.storeKey), types.GetContractStorePrefix(contractAddr)).Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		if cb(iter.Key(), iter.Value()) {
			break
		}
	}
	return iter.Error()
}

func (k Keeper) contractsByCodeStore(ctx sdk.QueryableContext, codeID uint64) prefix.ReadStore {
	return prefix.NewReadStore(ctx.KVStore(k.storeKey), types.GetContractByCodeIDSecondaryIndexPrefix(codeID))
}

func (k Keeper) contractStore(ctx sdk.MutableContext, contractAddr sdk.AccAddress) prefix.Store {
	return prefix.NewStore(ctx.KVStoreMut(k.storeKey), types.GetContractStorePrefix(contractAddr))
}

// importContract stores a genesis contract with its full storage.
func (k Keeper) importContract(ctx sdk.MutableContext, contractAddr sdk.AccAddress, info *types.ContractInfo, state []*types.Model) error {
	has, err := k.HasContractInfo(ctx, contractAddr)
	if err != nil {
		return err
	}
	if has {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "duplicate contract: %s", contractAddr)
	}
	codeInfo, err := k.GetCodeInfo(ctx, info.CodeID)
	if err != nil {
		return err
	}
	if codeInfo == nil {
		return sdkerrors.Wrapf(types.ErrNotFound, "code %d of contract %s", info.CodeID, contractAddr)
	}

	if err := k.storeContractInfo(ctx, contractAddr, info); err != nil {
		return err
	}
	if err := ctx.KVStoreMut(k.storeKey).Set(types.GetContractByCodeIDSecondaryIndex(info.CodeID, contractAddr), []byte{}); err != nil {
		return err
	}
	store := k.contractStore(ctx, contractAddr)
	for _, model := range state {
		if model.Value == nil {
			model.Value = []byte{}
		}
		if err := store.Set(model.Key, model.Value); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) env(ctx sdk.MutableContext, contractAddr sdk.AccAddress) types.Env {
	return types.Env{
		BlockHeight:     ctx.Height(),
		BlockTime:       ctx.GetTime(),
		ChainID:         ctx.ChainID(),
		ContractAddress: contractAddr.String(),
	}
}

// emitContractEvent turns the attributes returned by a contract into a wasm
// event tagged with the contract address.
func (k Keeper) emitContractEvent(ctx sdk.TransactionalContext, contractAddr sdk.AccAddress, res *types.Response) {
	if len(res.Attributes) == 0 {
		return
	}
	attrs := make([]sdk.Attribute, 0, len(res.Attributes)+1)
	attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyContractAddr, contractAddr.String()))
	for _, attr := range res.Attributes {
		attrs = append(attrs, sdk.NewAttribute(attr.Key, attr.Value))
	}
	ctx.PushEvent(sdk.NewEvent(types.EventTypeWasm, attrs...))
}
