package types_test

import (
	"math/rand"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/testutil/datagen"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

func TestAccessConfig(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	alice := datagen.GenRandomAccAddress(r)
	bob := datagen.GenRandomAccAddress(r)

	require.True(t, types.AllowEverybody.Allowed(alice))
	require.False(t, types.AllowNobody.Allowed(alice))

	cfg := types.AccessTypeAnyOfAddresses.With(alice)
	require.NoError(t, cfg.ValidateBasic())
	require.True(t, cfg.Allowed(alice))
	require.False(t, cfg.Allowed(bob))

	require.Equal(t, types.AllowNobody, types.AccessTypeNobody.With(alice))
	require.Panics(t, func() { types.AccessTypeUnspecified.With() })

	require.ErrorIs(t, types.AccessConfig{}.ValidateBasic(), types.ErrInvalidRequest)
	require.ErrorIs(t, types.AccessTypeAnyOfAddresses.With().ValidateBasic(), types.ErrInvalidRequest)
	require.ErrorIs(t, types.AccessTypeAnyOfAddresses.With(alice, alice).ValidateBasic(), types.ErrInvalidRequest)
	require.ErrorIs(t, types.AccessConfig{Permission: types.AccessTypeEverybody, Addresses: []string{alice.String()}}.ValidateBasic(), types.ErrInvalidRequest)
	require.ErrorIs(t, types.AccessConfig{Permission: types.AccessTypeAnyOfAddresses, Addresses: []string{"bad"}}.ValidateBasic(), sdkerrors.ErrInvalidAddress)
	require.ErrorIs(t, types.AccessConfig{Permission: 2}.ValidateBasic(), types.ErrInvalidRequest)
}

func TestAccessTypeJSON(t *testing.T) {
	cdc := codec.NewProtoCodec()
	params := types.DefaultParams()
	params.InstantiateDefaultPermission = types.AccessTypeNobody

	bz, err := cdc.MarshalJSON(&params)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"ACCESS_TYPE_NOBODY"`)

	var decoded types.Params
	require.NoError(t, cdc.UnmarshalJSON(bz, &decoded))
	require.Equal(t, params.InstantiateDefaultPermission, decoded.InstantiateDefaultPermission)
	require.Equal(t, params.CodeUploadAccess.Permission, decoded.CodeUploadAccess.Permission)
	require.Equal(t, bz, cdc.MustMarshalJSON(&decoded))
}
