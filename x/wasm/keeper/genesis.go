package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// InitGenesis initializes the wasm module's state from a given genesis state.
// Codes and contracts keep their ids and addresses, and the sequences must
// lie beyond every imported id.
func (k Keeper) InitGenesis(ctx *sdk.InitContext, gs types.GenesisState) error {
	if err := k.SetParams(ctx, *gs.Params); err != nil {
		return err
	}

	var maxCodeID uint64
	for _, code := range gs.Codes {
		if err := k.importCode(ctx, code.CodeID, *code.CodeInfo, code.CodeBytes); err != nil {
			return sdkerrors.Wrapf(err, "code %d", code.CodeID)
		}
		if code.CodeID > maxCodeID {
			maxCodeID = code.CodeID
		}
	}

	for _, contract := range gs.Contracts {
		addr, err := sdk.AccAddressFromBech32(contract.ContractAddress)
		if err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "contract %s: %v", contract.ContractAddress, err)
		}
		if err := k.importContract(ctx, addr, contract.ContractInfo, contract.ContractState); err != nil {
			return sdkerrors.Wrapf(err, "contract %s", contract.ContractAddress)
		}
	}

	for _, seq := range gs.Sequences {
		if err := k.importAutoIncrementID(ctx, seq.IDKey, seq.Value); err != nil {
			return err
		}
	}
	if err := k.defaultAutoIncrementID(ctx, types.KeyLastCodeID, maxCodeID+1); err != nil {
		return err
	}
	if err := k.defaultAutoIncrementID(ctx, types.KeyLastInstanceID, uint64(len(gs.Contracts))+1); err != nil {
		return err
	}

	nextCodeID, err := k.PeekAutoIncrementID(ctx, types.KeyLastCodeID)
	if err != nil {
		return err
	}
	if nextCodeID <= maxCodeID {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "next code id %d must exceed the largest code id %d", nextCodeID, maxCodeID)
	}
	return nil
}

// defaultAutoIncrementID sets the counter at key to val unless genesis set it.
func (k Keeper) defaultAutoIncrementID(ctx sdk.MutableContext, key []byte, val uint64) error {
	has, err := ctx.KVStore(k.storeKey).Has(key)
	if err != nil || has {
		return err
	}
	return ctx.KVStoreMut(k.storeKey).Set(key, sdk.Uint64ToBigEndian(val))
}

// ExportGenesis returns the wasm module's exported genesis.
func (k Keeper) ExportGenesis(ctx *sdk.QueryContext) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	gs := &types.GenesisState{Params: &params}

	var iterErr error
	err = k.IterateCodeInfos(ctx, func(codeID uint64, info types.CodeInfo) bool {
		bz, err := ctx.KVStore(k.storeKey).Get(types.GetCodeBytesKey(info.Checksum))
		if err != nil {
			iterErr = err
			return true
		}
		gs.Codes = append(gs.Codes, &types.Code{
			CodeID:    codeID,
			CodeInfo:  &info,
			CodeBytes: bz,
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}

	err = k.IterateContractInfo(ctx, func(addr sdk.AccAddress, info types.ContractInfo) bool {
		var state []*types.Model
		iterErr = k.IterateContractState(ctx, addr, func(key, value []byte) bool {
			state = append(state, &types.Model{Key: key, Value: value})
			return false
		})
		if iterErr != nil {
			return true
		}
		gs.Contracts = append(gs.Contracts, &types.Contract{
			ContractAddress: addr.String(),
			ContractInfo:    &info,
			ContractState:   state,
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}

	for _, key := range [][]byte{types.KeyLastCodeID, types.KeyLastInstanceID} {
		val, err := k.PeekAutoIncrementID(ctx, key)
		if err != nil {
			return nil, err
		}
		gs.Sequences = append(gs.Sequences, &types.Sequence{IDKey: key, Value: val})
	}
	return gs, nil
}
