package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/cachemulti"
	"github.com/babylonchain/chainkit/store/rootmulti"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
)

// TestChainID is the chain id of every test store.
const TestChainID = "chainkit-test"

// TestStore is an in-memory multi store that hands out phase contexts over
// one pending write set, flushed by Commit.
type TestStore struct {
	t       testing.TB
	Keys    *storetypes.KeyTable
	Store   *rootmulti.Store
	pending *cachemulti.Store
}

// NewTestStore registers a namespace for every name.
func NewTestStore(t testing.TB, names ...string) *TestStore {
	keys, err := storetypes.NewKeyTable(names...)
	require.NoError(t, err)

	rs, err := rootmulti.NewStore(dbm.NewMemDB(), keys)
	require.NoError(t, err)

	return &TestStore{
		t:       t,
		Keys:    keys,
		Store:   rs,
		pending: rs.CacheMultiStore(),
	}
}

// Key returns the StoreKey of name.
func (s *TestStore) Key(name string) storetypes.StoreKey {
	return s.Keys.MustKey(name)
}

// Header is the header of the block being built.
func (s *TestStore) Header() tmproto.Header {
	height := s.Store.LatestVersion() + 1
	return tmproto.Header{
		ChainID: TestChainID,
		Height:  height,
		Time:    time.Unix(1_600_000_000+height*5, 0).UTC(),
	}
}

func (s *TestStore) InitContext() *sdk.InitContext {
	return sdk.NewInitContext(s.pending, TestChainID, time.Unix(1_600_000_000, 0).UTC(), log.NewNopLogger())
}

func (s *TestStore) BlockContext() *sdk.BlockContext {
	return sdk.NewBlockContext(s.pending, s.Header(), log.NewNopLogger())
}

// TxContext returns a deliver mode context metered by gasLimit.
func (s *TestStore) TxContext(gasLimit storetypes.Gas) *sdk.TxContext {
	return sdk.NewTxContext(s.pending, s.Header(), storetypes.NewGasMeter(gasLimit), 0, [32]byte{}, sdk.ExecModeDeliver, log.NewNopLogger())
}

// CheckTxContext returns a check mode context metered by gasLimit.
func (s *TestStore) CheckTxContext(gasLimit storetypes.Gas) *sdk.TxContext {
	return sdk.NewTxContext(s.pending, s.Header(), storetypes.NewGasMeter(gasLimit), 0, [32]byte{}, sdk.ExecModeCheck, log.NewNopLogger())
}

// Pending returns the pending write set.
func (s *TestStore) Pending() *cachemulti.Store {
	return s.pending
}

// Commit flushes the pending writes into a new height.
func (s *TestStore) Commit() int64 {
	header := s.Header()
	require.NoError(s.t, s.pending.Write())
	cid, err := s.Store.Commit(header.Time)
	require.NoError(s.t, err)
	s.pending = s.Store.CacheMultiStore()
	return cid.Version
}

// QueryContext reads the latest committed height.
func (s *TestStore) QueryContext() *sdk.QueryContext {
	return s.QueryContextAt(s.Store.LatestVersion())
}

func (s *TestStore) QueryContextAt(height int64) *sdk.QueryContext {
	snapshot, err := s.Store.SnapshotAt(height)
	require.NoError(s.t, err)
	return sdk.NewQueryContext(snapshot, height, snapshot.Time(), TestChainID, log.NewNopLogger())
}
