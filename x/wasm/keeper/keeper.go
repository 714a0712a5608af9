package keeper

import (
	"errors"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// Keeper stores contract code, contract metadata and contract storage, and
// runs contracts through an Engine.
type Keeper struct {
	cdc        codec.BinaryCodec
	storeKey   storetypes.StoreKey
	paramSpace paramstypes.Subspace
	engine     types.Engine

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string
}

func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	paramSpace paramstypes.Subspace,
	engine types.Engine,
	authority string,
) Keeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		paramSpace: paramSpace,
		engine:     engine,
		authority:  authority,
	}
}

func (k Keeper) Logger(ctx sdk.QueryableContext) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the x/wasm module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// InitializeEngine hands the engine the committed params. Code is compiled
// on first use. It runs once the state of a node is loaded.
func (k Keeper) InitializeEngine(ctx sdk.QueryableContext) error {
	if err := k.syncEngineParams(ctx); err != nil {
		return err
	}
	k.Logger(ctx).Info("wasm engine initialized")
	return nil
}

// autoIncrementID returns the next value of the counter at key and advances
// it. Counters start at 1.
func (k Keeper) autoIncrementID(ctx sdk.MutableContext, key []byte) (uint64, error) {
	id, err := k.PeekAutoIncrementID(ctx, key)
	if err != nil {
		return 0, err
	}
	if err := ctx.KVStoreMut(k.storeKey).Set(key, sdk.Uint64ToBigEndian(id+1)); err != nil {
		return 0, err
	}
	return id, nil
}

// PeekAutoIncrementID reads the current value of the counter at key without
// advancing it.
func (k Keeper) PeekAutoIncrementID(ctx sdk.QueryableContext, key []byte) (uint64, error) {
	bz, err := ctx.KVStore(k.storeKey).Get(key)
	if err != nil {
		return 0, err
	}
	if bz == nil {
		return 1, nil
	}
	return sdk.BigEndianToUint64(bz), nil
}

func (k Keeper) importAutoIncrementID(ctx sdk.MutableContext, key []byte, val uint64) error {
	has, err := ctx.KVStore(k.storeKey).Has(key)
	if err != nil {
		return err
	}
	if has {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "sequence %X already set", key)
	}
	return ctx.KVStoreMut(k.storeKey).Set(key, sdk.Uint64ToBigEndian(val))
}

// engineError keeps coded errors of the engine and wraps the rest.
func engineError(err error) error {
	for _, target := range []error{
		sdkerrors.ErrOutOfGas,
		types.ErrInvalidCode,
		types.ErrInvalidRequest,
		types.ErrEngine,
	} {
		if errors.Is(err, target) {
			return err
		}
	}
	return sdkerrors.Wrap(types.ErrEngine, err.Error())
}
