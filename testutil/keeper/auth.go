package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	authkeeper "github.com/babylonchain/chainkit/x/auth/keeper"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
	paramskeeper "github.com/babylonchain/chainkit/x/params/keeper"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// GovAuthority is the authority of the test keepers.
var GovAuthority = sdk.NewModuleAddress("gov").String()

// AccountKeeper returns an auth keeper with default params committed at
// height 1.
func AccountKeeper(t testing.TB, cdc *codec.ProtoCodec) (authkeeper.AccountKeeper, *TestStore) {
	s := NewTestStore(t, paramstypes.StoreKey, authtypes.StoreKey)
	pk := paramskeeper.NewKeeper(cdc, s.Key(paramstypes.StoreKey))

	k := authkeeper.NewAccountKeeper(
		cdc,
		s.Key(authtypes.StoreKey),
		pk.Subspace(authtypes.ModuleName),
		GovAuthority,
	)

	require.NoError(t, k.InitGenesis(s.InitContext(), *authtypes.DefaultGenesis()))
	s.Commit()

	return k, s
}
