package keeper

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/types"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// Keeper of the mint store
type Keeper struct {
	cdc        codec.BinaryCodec
	storeKey   storetypes.StoreKey
	paramSpace paramstypes.Subspace

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string
}

// NewKeeper creates a new mint Keeper instance.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	paramSpace paramstypes.Subspace,
	authority string,
) Keeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		paramSpace: paramSpace,
		authority:  authority,
	}
}

func (k Keeper) Logger(ctx sdk.QueryableContext) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the x/mint module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetMinter returns the minter.
func (k Keeper) GetMinter(ctx sdk.QueryableContext) (minter types.Minter, err error) {
	bz, err := ctx.KVStore(k.storeKey).Get(types.MinterKey)
	if err != nil {
		return minter, err
	}
	if bz == nil {
		return minter, types.ErrMinterNotFound
	}
	err = k.cdc.Unmarshal(bz, &minter)
	return minter, err
}

// SetMinter sets the minter.
func (k Keeper) SetMinter(ctx sdk.MutableContext, minter types.Minter) error {
	if err := minter.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidMinter, err.Error())
	}
	bz, err := k.cdc.Marshal(&minter)
	if err != nil {
		return err
	}
	return ctx.KVStoreMut(k.storeKey).Set(types.MinterKey, bz)
}

// MintBlockProvision mints the provision of one block at the current supply
// and returns it.
func (k Keeper) MintBlockProvision(ctx sdk.TransactionalContext) (types.Minter, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Minter{}, err
	}
	minter, err := k.GetMinter(ctx)
	if err != nil {
		return types.Minter{}, err
	}

	next, provision, err := minter.Mint(params)
	if err != nil {
		return types.Minter{}, sdkerrors.Wrap(types.ErrInvalidMinter, err.Error())
	}
	if err := k.SetMinter(ctx, next); err != nil {
		return types.Minter{}, err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeMint,
		sdk.NewAttribute(types.AttributeKeyAmount, provision.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, params.MintDenom),
		sdk.NewAttribute(types.AttributeKeyInflation, types.Inflation(params).String()),
		sdk.NewAttribute(types.AttributeKeyAnnualProvisions, next.AnnualProvisions),
		sdk.NewAttribute(types.AttributeKeyTotalMinted, next.TotalMinted),
	))
	return next, nil
}
