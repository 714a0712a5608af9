package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	mintkeeper "github.com/babylonchain/chainkit/x/mint/keeper"
	minttypes "github.com/babylonchain/chainkit/x/mint/types"
	paramskeeper "github.com/babylonchain/chainkit/x/params/keeper"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// MintKeeper returns a mint keeper with gs committed at height 1.
func MintKeeper(t testing.TB, cdc *codec.ProtoCodec, gs minttypes.GenesisState) (mintkeeper.Keeper, *TestStore) {
	s := NewTestStore(t, paramstypes.StoreKey, minttypes.StoreKey)
	pk := paramskeeper.NewKeeper(cdc, s.Key(paramstypes.StoreKey))

	k := mintkeeper.NewKeeper(
		cdc,
		s.Key(minttypes.StoreKey),
		pk.Subspace(minttypes.ModuleName),
		GovAuthority,
	)

	require.NoError(t, k.InitGenesis(s.InitContext(), gs))
	s.Commit()

	return k, s
}
