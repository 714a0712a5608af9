package keeper_test

import (
	"math/rand"
	"testing"

	sdkmath "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/testutil/datagen"
	testkeeper "github.com/babylonchain/chainkit/testutil/keeper"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint"
	"github.com/babylonchain/chainkit/x/mint/types"
)

func testGenesis() types.GenesisState {
	return *types.NewGenesisState(
		types.NewParams("ustake", 500, 100),
		types.InitialMinter(sdkmath.NewInt(1_000_000_000_000)),
	)
}

func TestBeginBlockMints(t *testing.T) {
	k, s := testkeeper.MintKeeper(t, codec.NewProtoCodec(), testGenesis())

	ctx := s.BlockContext()
	require.NoError(t, mint.BeginBlocker(ctx, k))
	events := ctx.EventsDrain()
	require.Len(t, events, 1)
	require.Equal(t, types.EventTypeMint, events[0].Type)
	amount, ok := sdk.EventAttribute(events[0], types.AttributeKeyAmount)
	require.True(t, ok)
	require.Equal(t, "500000000", amount)
	denom, _ := sdk.EventAttribute(events[0], types.AttributeKeyDenom)
	require.Equal(t, "ustake", denom)
	s.Commit()

	ctx = s.BlockContext()
	require.NoError(t, mint.BeginBlocker(ctx, k))
	s.Commit()

	minter, err := k.GetMinter(s.QueryContext())
	require.NoError(t, err)
	require.Equal(t, "1001000250000", minter.Supply)
	require.Equal(t, "1000250000", minter.TotalMinted)

	res, err := k.AnnualProvisions(s.QueryContext(), &types.QueryAnnualProvisionsRequest{})
	require.NoError(t, err)
	require.Equal(t, "50025000000", res.AnnualProvisions)

	infl, err := k.Inflation(s.QueryContext(), &types.QueryInflationRequest{})
	require.NoError(t, err)
	require.Equal(t, "0.050000000000000000", infl.Inflation)

	// an older snapshot still sees the first block
	old, err := k.GetMinter(s.QueryContextAt(2))
	require.NoError(t, err)
	require.Equal(t, "500000000", old.TotalMinted)
}

func TestUpdateParams(t *testing.T) {
	k, s := testkeeper.MintKeeper(t, codec.NewProtoCodec(), testGenesis())
	params := types.NewParams("ustake", 0, 100)

	ctx := s.TxContext(1_000_000)
	err := k.UpdateParams(ctx, &types.MsgUpdateParams{Authority: sdk.NewModuleAddress("bank").String(), Params: &params})
	require.ErrorIs(t, err, types.ErrInvalidAuthority)

	invalid := types.NewParams("ustake", 500, 0)
	err = k.UpdateParams(ctx, &types.MsgUpdateParams{Authority: k.GetAuthority(), Params: &invalid})
	require.ErrorIs(t, err, types.ErrInvalidParams)

	require.NoError(t, k.UpdateParams(ctx, &types.MsgUpdateParams{Authority: k.GetAuthority(), Params: &params}))
	require.Len(t, ctx.EventsDrain(), 1)
	s.Commit()

	bctx := s.BlockContext()
	require.NoError(t, mint.BeginBlocker(bctx, k))
	amount, _ := sdk.EventAttribute(bctx.EventsDrain()[0], types.AttributeKeyAmount)
	require.Equal(t, "0", amount)

	res, err := k.Params(s.QueryContext(), &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, params, *res.Params)
}

func FuzzGenesisRoundTrip(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		gs := *types.NewGenesisState(
			types.NewParams("u"+datagen.GenRandomLabel(r, 5), datagen.RandomInt(r, types.BpsPerUnit+1), datagen.RandomInt(r, 10_000)+1),
			types.InitialMinter(sdkmath.NewIntFromUint64(r.Uint64())),
		)
		k, s := testkeeper.MintKeeper(t, codec.NewProtoCodec(), gs)

		blocks := int(datagen.RandomInt(r, 5))
		for i := 0; i < blocks; i++ {
			require.NoError(t, mint.BeginBlocker(s.BlockContext(), k))
			s.Commit()
		}

		exported, err := k.ExportGenesis(s.QueryContext())
		require.NoError(t, err)
		require.NoError(t, exported.Validate())
		require.Equal(t, gs.Params, exported.Params)
		if blocks == 0 {
			require.Equal(t, gs.Minter, exported.Minter)
		}

		k2, s2 := testkeeper.MintKeeper(t, codec.NewProtoCodec(), *exported)
		reexported, err := k2.ExportGenesis(s2.QueryContext())
		require.NoError(t, err)
		require.Equal(t, exported, reexported)
	})
}
