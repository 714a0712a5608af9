package keeper

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/store/prefix"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// AccountKeeper stores accounts and their sequence numbers.
type AccountKeeper struct {
	cdc        codec.BinaryCodec
	storeKey   storetypes.StoreKey
	paramSpace paramstypes.Subspace

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string
}

func NewAccountKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	paramSpace paramstypes.Subspace,
	authority string,
) AccountKeeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return AccountKeeper{
		cdc:        cdc,
		storeKey:   storeKey,
		paramSpace: paramSpace,
		authority:  authority,
	}
}

func (k AccountKeeper) Logger(ctx sdk.QueryableContext) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the x/auth module's authority.
func (k AccountKeeper) GetAuthority() string {
	return k.authority
}

// GetAccount returns the account at addr, or nil if there is none.
func (k AccountKeeper) GetAccount(ctx sdk.QueryableContext, addr sdk.AccAddress) (*types.BaseAccount, error) {
	bz, err := ctx.KVStore(k.storeKey).Get(types.AccountKey(addr))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}

	var acc types.BaseAccount
	if err := k.cdc.Unmarshal(bz, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// HasAccount reports whether an account exists at addr.
func (k AccountKeeper) HasAccount(ctx sdk.QueryableContext, addr sdk.AccAddress) (bool, error) {
	return ctx.KVStore(k.storeKey).Has(types.AccountKey(addr))
}

// SetAccount stores acc.
func (k AccountKeeper) SetAccount(ctx sdk.MutableContext, acc *types.BaseAccount) error {
	addr, err := sdk.AccAddressFromBech32(acc.Address)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	bz, err := k.cdc.Marshal(acc)
	if err != nil {
		return err
	}
	return ctx.KVStoreMut(k.storeKey).Set(types.AccountKey(addr), bz)
}

// NewAccountWithAddress creates and stores an account with the next account
// number.
func (k AccountKeeper) NewAccountWithAddress(ctx sdk.MutableContext, addr sdk.AccAddress) (*types.BaseAccount, error) {
	accNum, err := k.NextAccountNumber(ctx)
	if err != nil {
		return nil, err
	}
	acc := types.NewBaseAccount(addr, accNum)
	if err := k.SetAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// NextAccountNumber returns and increments the global account number.
func (k AccountKeeper) NextAccountNumber(ctx sdk.MutableContext) (uint64, error) {
	store := ctx.KVStoreMut(k.storeKey)
	bz, err := store.Get(types.GlobalAccountNumberKey)
	if err != nil {
		return 0, err
	}
	accNum := sdk.BigEndianToUint64(bz)
	if err := store.Set(types.GlobalAccountNumberKey, sdk.Uint64ToBigEndian(accNum+1)); err != nil {
		return 0, err
	}
	return accNum, nil
}

func (k AccountKeeper) setNextAccountNumber(ctx sdk.MutableContext, accNum uint64) error {
	return ctx.KVStoreMut(k.storeKey).Set(types.GlobalAccountNumberKey, sdk.Uint64ToBigEndian(accNum))
}

func (k AccountKeeper) accountStore(ctx sdk.QueryableContext) prefix.ReadStore {
	return prefix.NewReadStore(ctx.KVStore(k.storeKey), types.AccountKeyPrefix)
}

// IterateAccounts calls cb on every account in address order until it
// returns true.
func (k AccountKeeper) IterateAccounts(ctx sdk.QueryableContext, cb func(acc *types.BaseAccount) (stop bool)) error {
	iter, err := k.accountStore(ctx).Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var acc types.BaseAccount
		if err := k.cdc.Unmarshal(iter.Value(), &acc); err != nil {
			return err
		}
		if cb(&acc) {
			break
		}
	}
	return iter.Error()
}
