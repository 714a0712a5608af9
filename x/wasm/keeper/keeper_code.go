package keeper

import (
	"bytes"
	"encoding/hex"
	"strconv"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonchain/chainkit/store/prefix"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// StoreCode uploads code and assigns it the next code id. The upload access
// and the size limit are checked before anything is written.
//
// A nil instantiatePermission falls back to the default permission of the
// params, granted to the creator.
func (k Keeper) StoreCode(
	ctx sdk.MutableContext,
	creator sdk.AccAddress,
	code []byte,
	instantiatePermission *types.AccessConfig,
) (uint64, []byte, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, nil, err
	}
	if !params.CodeUploadAccess.Allowed(creator) {
		return 0, nil, sdkerrors.Wrap(types.ErrUnauthorized, "can not create code")
	}
	if uint64(len(code)) > params.MaxContractSize {
		return 0, nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "code size %d exceeds limit %d", len(code), params.MaxContractSize)
	}

	var cfg types.AccessConfig
	if instantiatePermission != nil {
		if err := instantiatePermission.ValidateBasic(); err != nil {
			return 0, nil, err
		}
		cfg = *instantiatePermission
	} else {
		cfg = params.InstantiateDefaultPermission.With(creator)
	}

	checksum, err := k.engine.AnalyzeCode(code)
	if err != nil {
		return 0, nil, engineError(err)
	}

	codeID, err := k.autoIncrementID(ctx, types.KeyLastCodeID)
	if err != nil {
		return 0, nil, err
	}
	codeInfo := types.NewCodeInfo(checksum, creator, cfg)
	if err := k.storeCodeInfo(ctx, codeID, codeInfo); err != nil {
		return 0, nil, err
	}
	if err := k.storeCodeBytes(ctx, checksum, code); err != nil {
		return 0, nil, err
	}

	k.Logger(ctx).Debug("stored code", "code_id", codeID, "checksum", hex.EncodeToString(checksum))
	return codeID, checksum, nil
}

func (k Keeper) storeCodeInfo(ctx sdk.MutableContext, codeID uint64, codeInfo types.CodeInfo) error {
	bz, err := k.cdc.Marshal(&codeInfo)
	if err != nil {
		return err
	}
	return ctx.KVStoreMut(k.storeKey).Set(types.GetCodeKey(codeID), bz)
}

// storeCodeBytes keeps one copy of every distinct blob.
func (k Keeper) storeCodeBytes(ctx sdk.MutableContext, checksum, code []byte) error {
	store := ctx.KVStoreMut(k.storeKey)
	has, err := store.Has(types.GetCodeBytesKey(checksum))
	if err != nil || has {
		return err
	}
	return store.Set(types.GetCodeBytesKey(checksum), code)
}

// importCode stores a genesis code under its given id. The blob must compile
// to the recorded checksum.
func (k Keeper) importCode(ctx sdk.MutableContext, codeID uint64, codeInfo types.CodeInfo, code []byte) error {
	checksum, err := k.engine.AnalyzeCode(code)
	if err != nil {
		return engineError(err)
	}
	if !bytes.Equal(checksum, codeInfo.Checksum) {
		return sdkerrors.Wrapf(types.ErrInvalidCode, "code %d: checksum mismatch", codeID)
	}
	has, err := ctx.KVStore(k.storeKey).Has(types.GetCodeKey(codeID))
	if err != nil {
		return err
	}
	if has {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "duplicate code: %d", codeID)
	}
	if err := k.storeCodeInfo(ctx, codeID, codeInfo); err != nil {
		return err
	}
	return k.storeCodeBytes(ctx, checksum, code)
}

// loadCode compiles the stored blob of checksum into the engine unless the
// engine has it cached. The blob is read without charging gas, so the cost of
// a call does not depend on the cache of the node.
func (k Keeper) loadCode(ctx sdk.QueryableContext, checksum []byte) error {
	if k.engine.HasCode(checksum) {
		return nil
	}
	if txCtx, ok := ctx.(*sdk.TxContext); ok {
		cfg := txCtx.KVGasConfig()
		txCtx.WithGasConfig(storetypes.GasConfig{})
		defer txCtx.WithGasConfig(cfg)
	}
	code, err := ctx.KVStore(k.storeKey).Get(types.GetCodeBytesKey(checksum))
	if err != nil {
		return err
	}
	if code == nil {
		return sdkerrors.Wrapf(types.ErrNotFound, "code bytes %X", checksum)
	}
	if _, err := k.engine.LoadCode(code); err != nil {
		return engineError(err)
	}
	return nil
}

// GetCodeInfo returns the metadata of codeID, or nil if there is none.
func (k Keeper) GetCodeInfo(ctx sdk.QueryableContext, codeID uint64) (*types.CodeInfo, error) {
	bz, err := ctx.KVStore(k.storeKey).Get(types.GetCodeKey(codeID))
	if err != nil || bz == nil {
		return nil, err
	}
	var codeInfo types.CodeInfo
	if err := k.cdc.Unmarshal(bz, &codeInfo); err != nil {
		return nil, err
	}
	return &codeInfo, nil
}

func (k Keeper) mustCodeInfo(ctx sdk.QueryableContext, codeID uint64) (*types.CodeInfo, error) {
	codeInfo, err := k.GetCodeInfo(ctx, codeID)
	if err != nil {
		return nil, err
	}
	if codeInfo == nil {
		return nil, sdkerrors.Wrapf(types.ErrNotFound, "code %d", codeID)
	}
	return codeInfo, nil
}

// GetByteCode returns the blob of codeID, or nil if there is none.
func (k Keeper) GetByteCode(ctx sdk.QueryableContext, codeID uint64) ([]byte, error) {
	codeInfo, err := k.GetCodeInfo(ctx, codeID)
	if err != nil || codeInfo == nil {
		return nil, err
	}
	return ctx.KVStore(k.storeKey).Get(types.GetCodeBytesKey(codeInfo.Checksum))
}

// IterateCodeInfos calls cb on every code in code id order until it returns
// true.
func (k Keeper) IterateCodeInfos(ctx sdk.QueryableContext, cb func(codeID uint64, info types.CodeInfo) (stop bool)) error {
	iter, err := prefix.NewReadStore(ctx.KVStore(k.storeKey), types.CodeKeyPrefix).Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var info types.CodeInfo
		if err := k.cdc.Unmarshal(iter.Value(), &info); err != nil {
			return err
		}
		if cb(sdk.BigEndianToUint64(iter.Key()), info) {
			break
		}
	}
	return iter.Error()
}

func codeIDAttribute(codeID uint64) sdk.Attribute {
	return sdk.NewAttribute(types.AttributeKeyCodeID, strconv.FormatUint(codeID, 10))
}
