package keeper

import (
	"testing"

	"github.com/babylonchain/chainkit/codec"
	paramskeeper "github.com/babylonchain/chainkit/x/params/keeper"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// ParamsKeeper returns a params keeper over its own test store.
func ParamsKeeper(t testing.TB) (paramskeeper.Keeper, *TestStore) {
	s := NewTestStore(t, paramstypes.StoreKey)
	k := paramskeeper.NewKeeper(codec.NewProtoCodec(), s.Key(paramstypes.StoreKey))
	return k, s
}
