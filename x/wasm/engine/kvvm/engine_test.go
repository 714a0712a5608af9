package kvvm_test

import (
	"encoding/binary"
	"encoding/json"
	"math/rand"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/testutil/datagen"
	"github.com/babylonchain/chainkit/x/wasm/engine/kvvm"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

func newEngine(t *testing.T, cacheSize int) *kvvm.Engine {
	e, err := kvvm.New(cacheSize)
	require.NoError(t, err)
	return e
}

func TestAnalyzeCodeHeader(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	e := newEngine(t, 4)

	code := datagen.GenRandomWasmCode(r, 64)
	checksum, err := e.AnalyzeCode(code)
	require.NoError(t, err)
	require.Len(t, checksum, types.ChecksumLen)
	require.False(t, e.HasCode(checksum))
	require.Zero(t, e.CacheLen())

	loaded, err := e.LoadCode(append([]byte(nil), code...))
	require.NoError(t, err)
	require.Equal(t, checksum, loaded)
	require.True(t, e.HasCode(checksum))

	_, err = e.AnalyzeCode([]byte("\x00as"))
	require.ErrorIs(t, err, types.ErrInvalidCode)
	_, err = e.LoadCode(append([]byte("\x7fELF"), code[4:]...))
	require.ErrorIs(t, err, types.ErrInvalidCode)

	v2 := append([]byte(nil), code...)
	binary.LittleEndian.PutUint32(v2[len(kvvm.Magic):], 2)
	_, err = e.AnalyzeCode(v2)
	require.ErrorIs(t, err, types.ErrInvalidCode)

	require.False(t, e.HasCode(make([]byte, types.ChecksumLen)))
}

func TestCompiledCacheEviction(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	e := newEngine(t, 1)
	meter := storetypes.NewInfiniteGasMeter()
	list := []byte(`{"list":{}}`)

	firstCode := datagen.GenRandomWasmCode(r, 32)
	first, err := e.LoadCode(firstCode)
	require.NoError(t, err)
	second, err := e.LoadCode(datagen.GenRandomWasmCode(r, 32))
	require.NoError(t, err)
	require.Equal(t, uint64(2), e.Compiles())
	require.Equal(t, 1, e.CacheLen())

	// the engine holds no blobs, so an evicted module must be loaded again
	require.True(t, e.HasCode(second))
	require.False(t, e.HasCode(first))
	_, err = e.Query(first, types.Env{}, list, dbm.NewMemDB(), meter)
	require.ErrorIs(t, err, types.ErrNotFound)

	_, err = e.LoadCode(firstCode)
	require.NoError(t, err)
	_, err = e.Query(first, types.Env{}, list, dbm.NewMemDB(), meter)
	require.NoError(t, err)
	require.Equal(t, uint64(3), e.Compiles())
	require.False(t, e.HasCode(second))

	e.OnParamsChange(types.Params{MemoryCacheSize: 2})
	_, err = e.LoadCode(datagen.GenRandomWasmCode(r, 32))
	require.NoError(t, err)
	require.Equal(t, 2, e.CacheLen())
	require.True(t, e.HasCode(first))

	// zero keeps the current size
	e.OnParamsChange(types.Params{})
	require.Equal(t, 2, e.CacheLen())
}

func TestContractCalls(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	e := newEngine(t, 4)
	checksum, err := e.LoadCode(datagen.GenRandomWasmCode(r, 32))
	require.NoError(t, err)
	store := dbm.NewMemDB()
	meter := storetypes.NewInfiniteGasMeter()
	info := types.MessageInfo{Sender: datagen.GenRandomAccAddress(r).String()}

	res, err := e.Instantiate(checksum, types.Env{}, info, []byte(`{"b":"2","a":"1"}`), store, meter)
	require.NoError(t, err)
	require.Equal(t, []types.EventAttribute{{Key: "action", Value: "instantiate"}, {Key: "entries", Value: "2"}}, res.Attributes)

	res, err = e.Execute(checksum, types.Env{}, info, []byte(`{"set":{"key":"c","value":"3"}}`), store, meter)
	require.NoError(t, err)
	require.Equal(t, []byte("3"), res.Data)

	_, err = e.Execute(checksum, types.Env{}, info, []byte(`{"delete":{"key":"a"}}`), store, meter)
	require.NoError(t, err)

	_, err = e.Execute(checksum, types.Env{}, info, []byte(`{"fail":{"reason":"nope"}}`), store, meter)
	require.ErrorIs(t, err, kvvm.ErrContract)

	for _, bad := range []string{`{}`, `{"set":{"key":"","value":"x"}}`, `{"set":{"key":"k","value":"v"},"delete":{"key":"k"}}`, `{"unknown":1}`, `{"set":{"key":"k","value":"v"}} {}`} {
		_, err = e.Execute(checksum, types.Env{}, info, []byte(bad), store, meter)
		require.ErrorIs(t, err, types.ErrInvalidRequest, bad)
	}

	bz, err := e.Query(checksum, types.Env{}, []byte(`{"get":{"key":"b"}}`), store, meter)
	require.NoError(t, err)
	var got kvvm.GetResponse
	require.NoError(t, json.Unmarshal(bz, &got))
	require.NotNil(t, got.Value)
	require.Equal(t, "2", *got.Value)

	bz, err = e.Query(checksum, types.Env{}, []byte(`{"get":{"key":"a"}}`), store, meter)
	require.NoError(t, err)
	require.JSONEq(t, `{"value":null}`, string(bz))

	bz, err = e.Query(checksum, types.Env{}, []byte(`{"list":{}}`), store, meter)
	require.NoError(t, err)
	var list kvvm.ListResponse
	require.NoError(t, json.Unmarshal(bz, &list))
	require.Equal(t, []kvvm.Entry{{Key: "b", Value: "2"}, {Key: "c", Value: "3"}}, list.Entries)

	res, err = e.Migrate(checksum, types.Env{}, []byte(`{"b":"20"}`), store, meter)
	require.NoError(t, err)
	require.Equal(t, "migrate", res.Attributes[0].Value)
	value, err := store.Get([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, []byte("20"), value)
}

func TestCallGas(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	e := newEngine(t, 4)
	checksum, err := e.LoadCode(datagen.GenRandomWasmCode(r, 32))
	require.NoError(t, err)
	store := dbm.NewMemDB()

	msg := []byte(`{"a":"1","b":"2","c":"3"}`)
	meter := storetypes.NewInfiniteGasMeter()
	_, err = e.Instantiate(checksum, types.Env{}, types.MessageInfo{}, msg, store, meter)
	require.NoError(t, err)
	require.Equal(t, kvvm.GasCostCall+kvvm.GasCostPerMsgByte*storetypes.Gas(len(msg)), meter.GasConsumed())

	list := []byte(`{"list":{}}`)
	meter = storetypes.NewInfiniteGasMeter()
	_, err = e.Query(checksum, types.Env{}, list, store, meter)
	require.NoError(t, err)
	require.Equal(t, kvvm.GasCostCall+kvvm.GasCostPerMsgByte*storetypes.Gas(len(list))+3*kvvm.GasCostPerEntry, meter.GasConsumed())

	// the call is charged before it runs
	meter = storetypes.NewGasMeter(kvvm.GasCostCall)
	_, err = e.Execute(checksum, types.Env{}, types.MessageInfo{}, []byte(`{"delete":{"key":"a"}}`), store, meter)
	require.ErrorIs(t, err, sdkerrors.ErrOutOfGas)
	has, err := store.Has([]byte("a"))
	require.NoError(t, err)
	require.True(t, has)
}
