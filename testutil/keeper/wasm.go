package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	paramskeeper "github.com/babylonchain/chainkit/x/params/keeper"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
	wasmkeeper "github.com/babylonchain/chainkit/x/wasm/keeper"
	wasmtypes "github.com/babylonchain/chainkit/x/wasm/types"
)

// WasmKeeper returns a wasm keeper running contracts on engine, with params
// committed at height 1.
func WasmKeeper(t testing.TB, cdc *codec.ProtoCodec, engine wasmtypes.Engine, params wasmtypes.Params) (wasmkeeper.Keeper, *TestStore) {
	return WasmKeeperWithGenesis(t, cdc, engine, wasmtypes.GenesisState{Params: &params})
}

// WasmKeeperWithGenesis is like WasmKeeper but imports gs at height 1.
func WasmKeeperWithGenesis(t testing.TB, cdc *codec.ProtoCodec, engine wasmtypes.Engine, gs wasmtypes.GenesisState) (wasmkeeper.Keeper, *TestStore) {
	s := NewTestStore(t, paramstypes.StoreKey, wasmtypes.StoreKey)
	pk := paramskeeper.NewKeeper(cdc, s.Key(paramstypes.StoreKey))

	k := wasmkeeper.NewKeeper(
		cdc,
		s.Key(wasmtypes.StoreKey),
		pk.Subspace(wasmtypes.ModuleName),
		engine,
		GovAuthority,
	)

	require.NoError(t, k.InitGenesis(s.InitContext(), gs))
	s.Commit()

	return k, s
}
