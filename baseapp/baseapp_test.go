package baseapp_test

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/baseapp"
	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
	sdk "github.com/babylonchain/chainkit/types"
)

var seqKey = []byte("seq")

type msgSet struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *msgSet) Reset()                       { *m = msgSet{} }
func (m *msgSet) String() string               { return proto.CompactTextString(m) }
func (*msgSet) ProtoMessage()                  {}
func (*msgSet) XXX_MessageName() string        { return "chainkit.test.v1.MsgSet" }
func (m *msgSet) ValidateBasic() error         { return nil }
func (m *msgSet) GetSigners() []sdk.AccAddress { return nil }

// msgFail writes a key and then fails.
type msgFail struct{}

func (m *msgFail) Reset()                       { *m = msgFail{} }
func (m *msgFail) String() string               { return proto.CompactTextString(m) }
func (*msgFail) ProtoMessage()                  {}
func (*msgFail) XXX_MessageName() string        { return "chainkit.test.v1.MsgFail" }
func (m *msgFail) ValidateBasic() error         { return nil }
func (m *msgFail) GetSigners() []sdk.AccAddress { return nil }

type testTx struct {
	msgs     []sdk.Msg
	gas      uint64
	failAnte bool
}

func (tx *testTx) GetMsgs() []sdk.Msg   { return tx.msgs }
func (tx *testTx) ValidateBasic() error { return nil }
func (tx *testTx) GetGas() uint64       { return tx.gas }
func (tx *testTx) GetFee() uint64       { return 0 }

// txRegistry stands in for a wire format: transactions are looked up by
// their name.
type txRegistry map[string]*testTx

func (r txRegistry) decode(txBytes []byte) (sdk.Tx, error) {
	tx, ok := r[string(txBytes)]
	if !ok {
		return nil, sdkerrors.ErrTxDecode
	}
	return tx, nil
}

type testHandler struct {
	key storetypes.StoreKey
}

func (h testHandler) InitGenesis(ctx *sdk.InitContext, genesis map[string]json.RawMessage) ([]abci.ValidatorUpdate, error) {
	var value string
	if err := json.Unmarshal(genesis["test"], &value); err != nil {
		return nil, err
	}
	return nil, ctx.KVStoreMut(h.key).Set([]byte("genesis"), []byte(value))
}

func (h testHandler) RunAnteChecks(ctx *sdk.TxContext, tx sdk.Tx) error {
	store := ctx.KVStoreMut(h.key)
	bz, err := store.Get(seqKey)
	if err != nil {
		return err
	}
	seq := sdk.BigEndianToUint64(bz)
	ctx.PushEvent(sdk.NewEvent("ante", sdk.NewAttribute("seq", strconv.FormatUint(seq, 10))))
	if err := store.Set(seqKey, sdk.Uint64ToBigEndian(seq+1)); err != nil {
		return err
	}
	if tx.(*testTx).failAnte {
		return sdkerrors.ErrUnauthorized
	}
	return nil
}

func (h testHandler) Msg(ctx *sdk.TxContext, msg sdk.Msg) error {
	store := ctx.KVStoreMut(h.key)
	switch msg := msg.(type) {
	case *msgSet:
		ctx.PushEvent(sdk.NewEvent("set", sdk.NewAttribute("key", msg.Key)))
		return store.Set([]byte(msg.Key), []byte(msg.Value))
	case *msgFail:
		if err := store.Set([]byte("fail"), []byte("wrote")); err != nil {
			return err
		}
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "always fails")
	default:
		return sdkerrors.ErrUnknownRequest
	}
}

func (h testHandler) Query(ctx *sdk.QueryContext, req abci.RequestQuery) ([]byte, error) {
	if req.Path != "/chainkit.test.v1.Query/Get" {
		return nil, sdkerrors.ErrUnknownRequest
	}
	return ctx.KVStore(h.key).Get(req.Data)
}

func (h testHandler) BeginBlock(ctx *sdk.BlockContext, req abci.RequestBeginBlock) error {
	ctx.PushEvent(sdk.NewEvent("begin"))
	return ctx.KVStoreMut(h.key).Set([]byte("height"), sdk.Uint64ToBigEndian(uint64(req.Header.Height)))
}

func (h testHandler) EndBlock(ctx *sdk.BlockContext, _ abci.RequestEndBlock) ([]abci.ValidatorUpdate, error) {
	ctx.PushEvent(sdk.NewEvent("end"))
	return nil, nil
}

// jsonParamStore keeps consensus params as JSON in one namespace.
type jsonParamStore struct {
	key storetypes.StoreKey
}

func (ps jsonParamStore) Get(ctx sdk.QueryableContext, key []byte, ptr interface{}) error {
	bz, err := ctx.KVStore(ps.key).Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(bz, ptr)
}

func (ps jsonParamStore) Has(ctx sdk.QueryableContext, key []byte) (bool, error) {
	return ctx.KVStore(ps.key).Has(key)
}

func (ps jsonParamStore) Set(ctx sdk.MutableContext, key []byte, value interface{}) error {
	bz, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return ctx.KVStoreMut(ps.key).Set(key, bz)
}

type testApp struct {
	*baseapp.BaseApp
	txs txRegistry
	key storetypes.StoreKey
}

func newTestApp(t *testing.T, db dbm.DB, txs txRegistry) *testApp {
	keys := storetypes.MustNewKeyTable("main", "params")
	app, err := baseapp.NewBaseApp("test", log.NewNopLogger(), db, keys, txs.decode,
		testHandler{key: keys.MustKey("main")},
		baseapp.SetParamStore(jsonParamStore{key: keys.MustKey("params")}),
		baseapp.SetVersion("v1.0.0"),
		baseapp.SetMetrics(telemetry.NewMetrics()),
	)
	require.NoError(t, err)
	return &testApp{BaseApp: app, txs: txs, key: keys.MustKey("main")}
}

func (app *testApp) initChain(maxGas int64) {
	app.InitChain(abci.RequestInitChain{
		ChainId:         "test-chain",
		Time:            time.Unix(100, 0),
		AppStateBytes:   []byte(`{"test":"hello"}`),
		ConsensusParams: &abci.ConsensusParams{Block: &abci.BlockParams{MaxBytes: 200000, MaxGas: maxGas}},
	})
}

// block runs one block delivering txs by name.
func (app *testApp) block(txNames ...string) []abci.ResponseDeliverTx {
	height := app.LastBlockHeight() + 1
	app.BeginBlock(abci.RequestBeginBlock{Header: tmproto.Header{
		ChainID: "test-chain",
		Height:  height,
		Time:    time.Unix(100+height, 0),
	}})
	var results []abci.ResponseDeliverTx
	for _, name := range txNames {
		results = append(results, app.DeliverTx(abci.RequestDeliverTx{Tx: []byte(name)}))
	}
	app.EndBlock(abci.RequestEndBlock{Height: height})
	app.Commit()
	return results
}

func (app *testApp) get(t *testing.T, height int64, key string) []byte {
	res := app.Query(abci.RequestQuery{Path: "/store/main/key", Data: []byte(key), Height: height})
	require.Zero(t, res.Code, res.Log)
	return res.Value
}

func (app *testApp) seq(t *testing.T) uint64 {
	return sdk.BigEndianToUint64(app.get(t, 0, string(seqKey)))
}

func eventTypes(events []abci.Event) []string {
	var types []string
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}

func TestGenesisIsCommittedWithFirstBlock(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	app.initChain(0)

	require.EqualValues(t, 0, app.Info(abci.RequestInfo{}).LastBlockHeight)
	require.Nil(t, app.get(t, 0, "genesis"))

	app.block()
	require.Equal(t, []byte("hello"), app.get(t, 0, "genesis"))
	require.Equal(t, sdk.Uint64ToBigEndian(1), app.get(t, 1, "height"))

	info := app.Info(abci.RequestInfo{})
	require.EqualValues(t, 1, info.LastBlockHeight)
	require.NotEmpty(t, info.LastBlockAppHash)
}

func TestInitChainRejectsInitialHeight(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	require.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "test-chain", InitialHeight: 5})
	})
}

func TestBeginBlockRejectsWrongHeight(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	app.initChain(0)
	require.Panics(t, func() {
		app.BeginBlock(abci.RequestBeginBlock{Header: tmproto.Header{Height: 2}})
	})
}

func TestFailedMessageRevertsAllMessages(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"set-then-fail": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}, &msgFail{}}},
	})
	app.initChain(0)

	results := app.block("set-then-fail")
	res := results[0]
	require.Equal(t, sdkerrors.ErrInvalidRequest.ABCICode(), res.Code)
	require.Equal(t, sdkerrors.RootCodespace, res.Codespace)
	require.Contains(t, res.Log, "message index: 1")
	require.Positive(t, res.GasUsed)
	// only the ante event survives
	require.Equal(t, []string{"ante"}, eventTypes(res.Events))

	require.Nil(t, app.get(t, 0, "x"))
	require.Nil(t, app.get(t, 0, "fail"))
	// ante writes persist
	require.EqualValues(t, 1, app.seq(t))
}

func TestSuccessfulTxEmitsMessageEvents(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"two-sets": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "a", Value: "1"}, &msgSet{Key: "b", Value: "2"}}},
	})
	app.initChain(0)

	res := app.block("two-sets")[0]
	require.Zero(t, res.Code, res.Log)
	require.Equal(t, []string{"ante", "message", "set", "message", "set"}, eventTypes(res.Events))
	action, ok := sdk.EventAttribute(res.Events[1], sdk.AttributeKeyAction)
	require.True(t, ok)
	require.Equal(t, "/chainkit.test.v1.MsgSet", action)

	require.Equal(t, []byte("1"), app.get(t, 0, "a"))
	require.Equal(t, []byte("2"), app.get(t, 0, "b"))
}

func TestAnteFailureWritesNothing(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"bad-ante": {gas: 100000, failAnte: true, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
	})
	app.initChain(0)

	res := app.block("bad-ante")[0]
	require.Equal(t, sdkerrors.ErrUnauthorized.ABCICode(), res.Code)
	// the gas spent by the ante checks is reported
	require.Positive(t, res.GasUsed)
	require.EqualValues(t, 100000, res.GasWanted)
	require.Empty(t, res.Events)

	require.Nil(t, app.get(t, 0, string(seqKey)))
	require.Nil(t, app.get(t, 0, "x"))
}

func TestOutOfGas(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"starved": {gas: 1000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
	})
	app.initChain(0)

	res := app.block("starved")[0]
	require.Equal(t, sdkerrors.ErrOutOfGas.ABCICode(), res.Code)
	require.Nil(t, app.get(t, 0, "x"))
}

func TestUndecodableTx(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	app.initChain(0)

	res := app.block("garbage")[0]
	require.Equal(t, sdkerrors.ErrTxDecode.ABCICode(), res.Code)
}

func TestBlockGasLimit(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"first":  {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x1", Value: "1"}}},
		"second": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x2", Value: "2"}}},
	})
	app.initChain(8000)

	results := app.block("first", "second")
	require.Zero(t, results[0].Code, results[0].Log)
	require.Equal(t, sdkerrors.ErrOutOfGas.ABCICode(), results[1].Code)

	require.Equal(t, []byte("1"), app.get(t, 0, "x1"))
	require.Nil(t, app.get(t, 0, "x2"))
	// the rejected tx did not even keep its ante writes
	require.EqualValues(t, 1, app.seq(t))
}

func TestCheckTxRunsAnteOnly(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"set": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
	})
	app.initChain(0)
	app.block()

	for i, want := range []string{"0", "1"} {
		res := app.CheckTx(abci.RequestCheckTx{Tx: []byte("set"), Type: abci.CheckTxType_New})
		require.Zero(t, res.Code, res.Log)
		require.Equal(t, []string{"ante"}, eventTypes(res.Events), "check %d", i)
		seq, _ := sdk.EventAttribute(res.Events[0], "seq")
		require.Equal(t, want, seq)
	}

	// the check state is reset on commit and never reaches the chain
	app.block()
	require.Nil(t, app.get(t, 0, "x"))
	require.Nil(t, app.get(t, 0, string(seqKey)))
	res := app.CheckTx(abci.RequestCheckTx{Tx: []byte("set"), Type: abci.CheckTxType_Recheck})
	seq, _ := sdk.EventAttribute(res.Events[0], "seq")
	require.Equal(t, "0", seq)
}

func TestSimulateWritesNothing(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		// simulation ignores the gas limit of the tx
		"unlimited": {gas: 0, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
		"set":       {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
	})
	app.initChain(0)
	app.block()

	for _, name := range []string{"unlimited", "set", "set"} {
		res := app.Query(abci.RequestQuery{Path: "/app/simulate", Data: []byte(name)})
		require.Zero(t, res.Code, res.Log)
		var sim baseapp.SimulationResponse
		require.NoError(t, proto.Unmarshal(res.Value, &sim))
		require.Positive(t, sim.GasUsed, name)
	}
	require.Nil(t, app.get(t, 0, "x"))
	require.Nil(t, app.get(t, 0, string(seqKey)))

	// the check state did not see the simulated ante writes either
	check := app.CheckTx(abci.RequestCheckTx{Tx: []byte("set"), Type: abci.CheckTxType_New})
	require.Zero(t, check.Code, check.Log)
	require.Equal(t, []string{"ante"}, eventTypes(check.Events))
	seq, _ := sdk.EventAttribute(check.Events[0], "seq")
	require.Equal(t, "0", seq)
}

func TestQueryHistoricalHeights(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"x1": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
		"x2": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "2"}}},
	})
	app.initChain(0)
	app.block("x1")
	app.block("x2")

	require.Equal(t, []byte("1"), app.get(t, 1, "x"))
	require.Equal(t, []byte("2"), app.get(t, 2, "x"))
	require.Equal(t, []byte("2"), app.get(t, 0, "x"))

	res := app.Query(abci.RequestQuery{Path: "/chainkit.test.v1.Query/Get", Data: []byte("x"), Height: 1})
	require.Zero(t, res.Code, res.Log)
	require.Equal(t, []byte("1"), res.Value)
	require.EqualValues(t, 1, res.Height)

	res = app.Query(abci.RequestQuery{Path: "/store/main/key", Data: []byte("x"), Height: 3})
	require.Equal(t, storetypes.ErrVersionNotCommitted.ABCICode(), res.Code)
	require.Equal(t, storetypes.StoreCodespace, res.Codespace)
}

func TestQueryErrors(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	app.initChain(0)
	app.block()

	for _, req := range []abci.RequestQuery{
		{Path: ""},
		{Path: "/app/unknown"},
		{Path: "/store/missing/key", Data: []byte("x")},
		{Path: "/store/main/key"},
		{Path: "/chainkit.test.v1.Query/Missing"},
		{Path: "/store/main/key", Data: []byte("x"), Prove: true},
		{Path: "/store/main/key", Data: []byte("x"), Height: -1},
	} {
		res := app.Query(req)
		require.NotZero(t, res.Code, req.Path)
	}

	res := app.Query(abci.RequestQuery{Path: "/app/version"})
	require.Equal(t, []byte("v1.0.0"), res.Value)
}

func TestQueriesDoNotChangeAppHash(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{
		"x1": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}},
	})
	app.initChain(0)
	app.block("x1")
	before := app.Info(abci.RequestInfo{})

	app.get(t, 0, "x")
	app.Query(abci.RequestQuery{Path: "/app/simulate", Data: []byte("x1")})
	app.Query(abci.RequestQuery{Path: "/chainkit.test.v1.Query/Get", Data: []byte("x")})

	require.Equal(t, before, app.Info(abci.RequestInfo{}))
}

func TestConsensusParamsAreStored(t *testing.T) {
	app := newTestApp(t, dbm.NewMemDB(), txRegistry{})
	app.initChain(8000)

	app.BeginBlock(abci.RequestBeginBlock{Header: tmproto.Header{ChainID: "test-chain", Height: 1}})
	res := app.EndBlock(abci.RequestEndBlock{Height: 1})
	require.NotNil(t, res.ConsensusParamUpdates)
	require.EqualValues(t, 8000, res.ConsensusParamUpdates.Block.MaxGas)
	require.Equal(t, []string{"end"}, eventTypes(res.Events))
	app.Commit()
}

func TestRestartLoadsLatestState(t *testing.T) {
	db := dbm.NewMemDB()
	txs := txRegistry{"x1": {gas: 100000, msgs: []sdk.Msg{&msgSet{Key: "x", Value: "1"}}}}
	app := newTestApp(t, db, txs)
	app.initChain(0)
	app.block("x1")
	hash := app.LastCommitID().Hash

	restarted := newTestApp(t, db, txs)
	require.EqualValues(t, 1, restarted.LastBlockHeight())
	require.Equal(t, hash, restarted.LastCommitID().Hash)
	require.Equal(t, []byte("1"), restarted.get(t, 0, "x"))
}
