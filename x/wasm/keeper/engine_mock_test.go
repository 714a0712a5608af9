package keeper_test

import (
	"errors"
	"math/rand"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/testutil/datagen"
	testkeeper "github.com/babylonchain/chainkit/testutil/keeper"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

func TestKeeperWithMockEngine(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := types.NewMockEngine(ctrl)
	k, s := testkeeper.WasmKeeper(t, codec.NewProtoCodec(), engine, types.DefaultParams())

	creator := datagen.GenRandomAccAddress(r)
	code := datagen.GenRandomByteArray(r, 32)
	checksum := datagen.GenRandomByteArray(r, types.ChecksumLen)
	ctx := s.TxContext(testGasLimit)

	engine.EXPECT().AnalyzeCode(code).Return(nil, errors.New("boom"))
	_, _, err := k.StoreCode(ctx, creator, code, nil)
	require.ErrorIs(t, err, types.ErrEngine)
	require.Empty(t, ctx.PendingWrites(s.Key(types.StoreKey)))

	engine.EXPECT().AnalyzeCode(code).Return(checksum, nil)
	codeID, got, err := k.StoreCode(ctx, creator, code, nil)
	require.NoError(t, err)
	require.Equal(t, checksum, got)

	// the first call loads the stored blob, later calls hit the cache
	gomock.InOrder(
		engine.EXPECT().HasCode(checksum).Return(false),
		engine.EXPECT().LoadCode(code).Return(checksum, nil),
	)
	engine.EXPECT().HasCode(checksum).Return(true).AnyTimes()

	contractAddr := types.BuildContractAddress(codeID, 1)
	engine.EXPECT().
		Instantiate(checksum, gomock.Any(), types.MessageInfo{Sender: creator.String()}, []byte(`{}`), gomock.Any(), ctx.GasMeter()).
		DoAndReturn(func(_ types.Checksum, env types.Env, _ types.MessageInfo, _ []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (*types.Response, error) {
			require.Equal(t, contractAddr.String(), env.ContractAddress)
			require.Equal(t, ctx.Height(), env.BlockHeight)
			require.NoError(t, gasMeter.ConsumeGas(1234, "mock"))
			return &types.Response{Data: []byte("ok")}, store.Set([]byte("k"), []byte("v"))
		})
	before := ctx.GasMeter().GasConsumed()
	addr, data, err := k.Instantiate(ctx, codeID, creator, nil, []byte(`{}`), "mocked")
	require.NoError(t, err)
	require.Equal(t, contractAddr, addr)
	require.Equal(t, []byte("ok"), data)
	require.Greater(t, ctx.GasMeter().GasConsumed()-before, uint64(1234))

	raw, err := k.QueryRaw(ctx, addr, []byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), raw)

	engine.EXPECT().
		Execute(checksum, gomock.Any(), gomock.Any(), []byte(`{"x":1}`), gomock.Any(), gomock.Any()).
		Return(nil, sdkerrors.Wrap(sdkerrors.ErrOutOfGas, "engine"))
	_, err = k.Execute(ctx, addr, creator, []byte(`{"x":1}`))
	require.ErrorIs(t, err, sdkerrors.ErrOutOfGas)

	engine.EXPECT().
		Execute(checksum, gomock.Any(), gomock.Any(), []byte(`{}`), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	data, err = k.Execute(ctx, addr, creator, []byte(`{}`))
	require.NoError(t, err)
	require.Nil(t, data)

	params := types.DefaultParams()
	params.MemoryCacheSize = 7
	require.NoError(t, k.SetParams(ctx, params))
	engine.EXPECT().OnParamsChange(params).Times(1)
	require.NoError(t, k.EndBlocker(s.BlockContext()))
}

func TestInitializeEngineAppliesParams(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := types.NewMockEngine(ctrl)
	params := types.DefaultParams()
	params.MemoryCacheSize = 3
	k, s := testkeeper.WasmKeeper(t, codec.NewProtoCodec(), engine, params)

	code := datagen.GenRandomByteArray(r, 16)
	engine.EXPECT().AnalyzeCode(code).Return(datagen.GenRandomByteArray(r, types.ChecksumLen), nil)
	_, _, err := k.StoreCode(s.TxContext(testGasLimit), datagen.GenRandomAccAddress(r), code, nil)
	require.NoError(t, err)
	s.Commit()

	// stored code is not compiled until a call needs it
	engine.EXPECT().OnParamsChange(params).Times(1)
	require.NoError(t, k.InitializeEngine(s.QueryContext()))
}

func TestMissingCodeBytes(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := types.NewMockEngine(ctrl)
	k, s := testkeeper.WasmKeeper(t, codec.NewProtoCodec(), engine, types.DefaultParams())

	creator := datagen.GenRandomAccAddress(r)
	code := datagen.GenRandomByteArray(r, 16)
	checksum := datagen.GenRandomByteArray(r, types.ChecksumLen)
	ctx := s.TxContext(testGasLimit)
	engine.EXPECT().AnalyzeCode(code).Return(checksum, nil)
	codeID, _, err := k.StoreCode(ctx, creator, code, nil)
	require.NoError(t, err)
	require.NoError(t, ctx.KVStoreMut(s.Key(types.StoreKey)).Delete(types.GetCodeBytesKey(checksum)))

	engine.EXPECT().HasCode(checksum).Return(false)
	_, _, err = k.Instantiate(ctx, codeID, creator, nil, []byte(`{}`), "gone")
	require.ErrorIs(t, err, types.ErrNotFound)
}
