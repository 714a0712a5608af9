package keeper_test

import (
	"fmt"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/babylonchain/chainkit/testutil/keeper"
	"github.com/babylonchain/chainkit/x/params/types"
)

var keyLimit = []byte("Limit")

func validateLimit(i interface{}) error {
	if _, ok := i.(uint32); !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}

func limitTable() types.KeyTable {
	var limit uint32
	return types.NewKeyTable(types.NewParamSetPair(keyLimit, &limit, validateLimit))
}

func TestSubspaceAllocation(t *testing.T) {
	k, _ := testkeeper.ParamsKeeper(t)

	k.Subspace("mint")
	require.Panics(t, func() { k.Subspace("mint") })
	require.Panics(t, func() { k.Subspace("") })

	_, ok := k.GetSubspace("auth")
	require.False(t, ok)
	k.Subspace("auth")

	spaces := k.GetSubspaces()
	require.Len(t, spaces, 2)
	require.Equal(t, "auth", spaces[0].Name())
	require.Equal(t, "mint", spaces[1].Name())
}

func TestKeyTableVisibleThroughKeeper(t *testing.T) {
	k, _ := testkeeper.ParamsKeeper(t)

	ss := k.Subspace("mint")
	require.False(t, ss.HasKeyTable())
	ss.WithKeyTable(limitTable())

	stored, ok := k.GetSubspace("mint")
	require.True(t, ok)
	require.True(t, stored.HasKeyTable())
	require.Equal(t, []string{"Limit"}, stored.Keys())
}

func TestQueryParams(t *testing.T) {
	k, s := testkeeper.ParamsKeeper(t)
	ss := k.Subspace("mint").WithKeyTable(limitTable())
	require.NoError(t, ss.Set(s.InitContext(), keyLimit, uint32(40)))
	s.Commit()

	res, err := k.Params(s.QueryContext(), &types.QueryParamsRequest{Subspace: "mint", Key: "Limit"})
	require.NoError(t, err)
	require.Equal(t, &types.ParamChange{Subspace: "mint", Key: "Limit", Value: "40"}, res.Param)

	_, err = k.Params(s.QueryContext(), &types.QueryParamsRequest{Subspace: "bank", Key: "Limit"})
	require.ErrorIs(t, err, types.ErrUnknownSubspace)

	_, err = k.Params(s.QueryContext(), &types.QueryParamsRequest{Subspace: "mint", Key: "Other"})
	require.ErrorIs(t, err, types.ErrParamNotFound)

	_, err = k.Params(s.QueryContext(), &types.QueryParamsRequest{Subspace: "mint"})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)

	_, err = k.Params(s.QueryContext(), nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
}

func TestQuerySubspaces(t *testing.T) {
	k, s := testkeeper.ParamsKeeper(t)
	k.Subspace("mint").WithKeyTable(limitTable())
	k.Subspace("auth")

	res, err := k.Subspaces(s.QueryContext(), &types.QuerySubspacesRequest{})
	require.NoError(t, err)
	require.Equal(t, []*types.SubspaceKeys{
		{Subspace: "auth", Keys: []string{}},
		{Subspace: "mint", Keys: []string{"Limit"}},
	}, res.Subspaces)
}
