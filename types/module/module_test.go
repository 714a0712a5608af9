package module_test

import (
	"encoding/json"
	"testing"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/store/rootmulti"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
)

var countKey = []byte{0x01}

type counterGenesis struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *counterGenesis) Reset()         { *m = counterGenesis{} }
func (m *counterGenesis) String() string { return proto.CompactTextString(m) }
func (*counterGenesis) ProtoMessage()    {}

type msgIncrement struct {
	By uint64 `protobuf:"varint,1,opt,name=by,proto3" json:"by,omitempty"`
}

func (m *msgIncrement) Reset()                       { *m = msgIncrement{} }
func (m *msgIncrement) String() string               { return proto.CompactTextString(m) }
func (*msgIncrement) ProtoMessage()                  {}
func (*msgIncrement) XXX_MessageName() string        { return "chainkit.counter.v1.MsgIncrement" }
func (m *msgIncrement) ValidateBasic() error         { return nil }
func (m *msgIncrement) GetSigners() []sdk.AccAddress { return nil }

type unknownMsg struct{}

func (m *unknownMsg) Reset()                       { *m = unknownMsg{} }
func (m *unknownMsg) String() string               { return proto.CompactTextString(m) }
func (*unknownMsg) ProtoMessage()                  {}
func (*unknownMsg) XXX_MessageName() string        { return "chainkit.counter.v1.MsgUnknown" }
func (m *unknownMsg) ValidateBasic() error         { return nil }
func (m *unknownMsg) GetSigners() []sdk.AccAddress { return nil }

type queryCountRequest struct{}

func (m *queryCountRequest) Reset()                { *m = queryCountRequest{} }
func (m *queryCountRequest) String() string        { return proto.CompactTextString(m) }
func (*queryCountRequest) ProtoMessage()           {}
func (*queryCountRequest) XXX_MessageName() string { return "chainkit.counter.v1.QueryCountRequest" }

type queryCountResponse struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *queryCountResponse) Reset()                { *m = queryCountResponse{} }
func (m *queryCountResponse) String() string        { return proto.CompactTextString(m) }
func (*queryCountResponse) ProtoMessage()           {}
func (*queryCountResponse) XXX_MessageName() string { return "chainkit.counter.v1.QueryCountResponse" }

// genesisModule only has genesis state.
type genesisModule struct {
	name string
	key  storetypes.StoreKey
}

func (am genesisModule) Name() string { return am.name }

func (am genesisModule) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(&counterGenesis{Count: 10})
}

func (am genesisModule) ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error {
	var gs counterGenesis
	return cdc.UnmarshalJSON(bz, &gs)
}

func (am genesisModule) InitGenesis(ctx *sdk.InitContext, cdc codec.JSONCodec, bz json.RawMessage) ([]abci.ValidatorUpdate, error) {
	var gs counterGenesis
	if err := cdc.UnmarshalJSON(bz, &gs); err != nil {
		return nil, err
	}
	return nil, setCount(ctx, am.key, gs.Count)
}

func (am genesisModule) ExportGenesis(ctx *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error) {
	count, err := getCount(ctx, am.key)
	if err != nil {
		return nil, err
	}
	return cdc.MarshalJSON(&counterGenesis{Count: count})
}

// counterModule adds messages, queries and a begin block hook.
type counterModule struct {
	genesisModule
	calls *[]string
}

func (am counterModule) Msgs() []sdk.Msg { return []sdk.Msg{&msgIncrement{}} }

func (am counterModule) HandleMsg(ctx *sdk.TxContext, msg sdk.Msg) error {
	count, err := getCount(ctx, am.key)
	if err != nil {
		return err
	}
	return setCount(ctx, am.key, count+msg.(*msgIncrement).By)
}

func (am counterModule) QueryRoutes() map[string]module.QueryRoute {
	return map[string]module.QueryRoute{
		"/chainkit.counter.v1.Query/Count": {
			NewRequest: func() proto.Message { return &queryCountRequest{} },
			Handler: func(ctx *sdk.QueryContext, _ proto.Message) (proto.Message, error) {
				count, err := getCount(ctx, am.key)
				if err != nil {
					return nil, err
				}
				return &queryCountResponse{Count: count}, nil
			},
		},
	}
}

func (am counterModule) BeginBlock(_ *sdk.BlockContext, _ abci.RequestBeginBlock) error {
	*am.calls = append(*am.calls, am.name)
	return nil
}

func getCount(ctx sdk.QueryableContext, key storetypes.StoreKey) (uint64, error) {
	bz, err := ctx.KVStore(key).Get(countKey)
	if err != nil || bz == nil {
		return 0, err
	}
	return sdk.BigEndianToUint64(bz), nil
}

func setCount(ctx sdk.MutableContext, key storetypes.StoreKey, count uint64) error {
	return ctx.KVStoreMut(key).Set(countKey, sdk.Uint64ToBigEndian(count))
}

type testEnv struct {
	keys    *storetypes.KeyTable
	rs      *rootmulti.Store
	manager *module.Manager
	calls   []string
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{keys: storetypes.MustNewKeyTable("alpha", "beta")}
	rs, err := rootmulti.NewStore(dbm.NewMemDB(), env.keys)
	require.NoError(t, err)
	env.rs = rs

	alpha := counterModule{genesisModule: genesisModule{name: "alpha", key: env.keys.MustKey("alpha")}, calls: &env.calls}
	beta := genesisModule{name: "beta", key: env.keys.MustKey("beta")}
	env.manager = module.NewManager(codec.NewProtoCodec(), alpha, beta)
	return env
}

func (env *testEnv) queryContext(t *testing.T) *sdk.QueryContext {
	snapshot, err := env.rs.SnapshotAt(env.rs.LatestVersion())
	require.NoError(t, err)
	return sdk.NewQueryContext(snapshot, snapshot.Height(), snapshot.Time(), "test", log.NewNopLogger())
}

func TestManagerGenesisRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	cdc := codec.NewProtoCodec()

	ms := env.rs.CacheMultiStore()
	initCtx := sdk.NewInitContext(ms, "test", time.Unix(0, 0), log.NewNopLogger())
	_, err := env.manager.InitGenesis(initCtx, map[string]json.RawMessage{
		"alpha": cdc.MustMarshalJSON(&counterGenesis{Count: 3}),
	})
	require.NoError(t, err)
	require.NoError(t, ms.Write())
	_, err = env.rs.Commit(time.Unix(1, 0))
	require.NoError(t, err)

	exported, err := env.manager.ExportGenesis(env.queryContext(t))
	require.NoError(t, err)
	require.JSONEq(t, `{"count":"3"}`, string(exported["alpha"]))
	// beta was absent from genesis and got its default
	require.JSONEq(t, `{"count":"10"}`, string(exported["beta"]))
}

func TestManagerRoutesMsgsAndQueries(t *testing.T) {
	env := newTestEnv(t)

	ms := env.rs.CacheMultiStore()
	ctx := sdk.NewTxContext(ms, tmproto.Header{Height: 1}, storetypes.NewInfiniteGasMeter(), 0, [32]byte{}, sdk.ExecModeDeliver, log.NewNopLogger())
	require.NoError(t, env.manager.Msg(ctx, &msgIncrement{By: 4}))
	require.NoError(t, ms.Write())
	_, err := env.rs.Commit(time.Unix(1, 0))
	require.NoError(t, err)

	err = env.manager.Msg(ctx, &unknownMsg{})
	require.ErrorIs(t, err, sdkerrors.ErrUnknownRequest)

	qctx := env.queryContext(t)
	reqBz, err := proto.Marshal(&queryCountRequest{})
	require.NoError(t, err)
	resBz, err := env.manager.Query(qctx, abci.RequestQuery{Path: "/chainkit.counter.v1.Query/Count", Data: reqBz})
	require.NoError(t, err)
	var res queryCountResponse
	require.NoError(t, proto.Unmarshal(resBz, &res))
	require.EqualValues(t, 4, res.Count)

	typed, err := env.manager.TypedQuery(qctx, &queryCountRequest{})
	require.NoError(t, err)
	require.Equal(t, &queryCountResponse{Count: 4}, typed)

	_, err = env.manager.Query(qctx, abci.RequestQuery{Path: "/chainkit.counter.v1.Query/Missing"})
	require.ErrorIs(t, err, sdkerrors.ErrUnknownRequest)
}

func TestManagerBlockOrder(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, []string{"alpha"}, env.manager.OrderBeginBlockers)
	require.Empty(t, env.manager.OrderEndBlockers)

	ctx := sdk.NewBlockContext(env.rs.CacheMultiStore(), tmproto.Header{Height: 1}, log.NewNopLogger())
	require.NoError(t, env.manager.BeginBlock(ctx, abci.RequestBeginBlock{}))
	require.Equal(t, []string{"alpha"}, env.calls)

	updates, err := env.manager.EndBlock(ctx, abci.RequestEndBlock{})
	require.NoError(t, err)
	require.Empty(t, updates)
}

func TestManagerOrderMustBeComplete(t *testing.T) {
	env := newTestEnv(t)

	require.Panics(t, func() { env.manager.SetOrderInitGenesis("alpha") })
	require.Panics(t, func() { env.manager.SetOrderInitGenesis("alpha", "beta", "gamma") })
	require.Panics(t, func() { env.manager.SetOrderBeginBlockers() })
	require.Panics(t, func() { env.manager.SetOrderInitGenesis("alpha", "beta", "alpha") })
	env.manager.SetOrderInitGenesis("beta", "alpha")
	require.Equal(t, []string{"beta", "alpha"}, env.manager.OrderInitGenesis)
}

func TestNewManagerRejectsDuplicates(t *testing.T) {
	keys := storetypes.MustNewKeyTable("alpha")
	m := genesisModule{name: "alpha", key: keys.MustKey("alpha")}
	require.Panics(t, func() { module.NewManager(codec.NewProtoCodec(), m, m) })

	var calls []string
	c1 := counterModule{genesisModule: genesisModule{name: "one", key: keys.MustKey("alpha")}, calls: &calls}
	c2 := counterModule{genesisModule: genesisModule{name: "two", key: keys.MustKey("alpha")}, calls: &calls}
	require.Panics(t, func() { module.NewManager(codec.NewProtoCodec(), c1, c2) })
}

func TestBasicManagerGenesis(t *testing.T) {
	keys := storetypes.MustNewKeyTable("alpha")
	bm := module.NewBasicManager(genesisModule{name: "alpha", key: keys.MustKey("alpha")})
	cdc := codec.NewProtoCodec()

	genesis := bm.DefaultGenesis(cdc)
	require.NoError(t, bm.ValidateGenesis(cdc, genesis))

	genesis["alpha"] = json.RawMessage(`{"count":"x"}`)
	require.Error(t, bm.ValidateGenesis(cdc, genesis))

	require.Error(t, bm.ValidateGenesis(cdc, map[string]json.RawMessage{"zeta": json.RawMessage(`{}`)}))
}
