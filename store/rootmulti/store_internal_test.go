package rootmulti

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/types"
)

// crashAfterTreeCommit saves the working tree without advancing the latest
// height pointer, as a node dying inside Commit would.
func crashAfterTreeCommit(t *testing.T, rs *Store) {
	_, err := rs.tree.Commit()
	require.NoError(t, err)
}

func TestCrashBeforeFirstPointerLeavesNoWrites(t *testing.T) {
	db := dbm.NewMemDB()
	keys := types.MustNewKeyTable("wasm")
	wasm := keys.MustKey("wasm")

	rs, err := NewStore(db, keys)
	require.NoError(t, err)
	require.NoError(t, rs.GetKVStore(wasm).Set([]byte("k"), []byte("crashed")))
	crashAfterTreeCommit(t, rs)

	rs, err = NewStore(db, keys)
	require.NoError(t, err)
	require.Zero(t, rs.LatestVersion())
	value, err := rs.GetKVStore(wasm).Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, value)

	require.NoError(t, rs.GetKVStore(wasm).Set([]byte("k"), []byte("replayed")))
	cid, err := rs.Commit(time.Unix(1_600_000_000, 0).UTC())
	require.NoError(t, err)
	require.Equal(t, int64(1), cid.Version)
}

func TestCrashAfterHeightDiscardsSavedVersion(t *testing.T) {
	db := dbm.NewMemDB()
	keys := types.MustNewKeyTable("wasm")
	wasm := keys.MustKey("wasm")
	blockTime := time.Unix(1_600_000_000, 0).UTC()

	rs, err := NewStore(db, keys)
	require.NoError(t, err)
	require.NoError(t, rs.GetKVStore(wasm).Set([]byte("k"), []byte("v1")))
	cid1, err := rs.Commit(blockTime)
	require.NoError(t, err)

	require.NoError(t, rs.GetKVStore(wasm).Set([]byte("k"), []byte("crashed")))
	crashAfterTreeCommit(t, rs)

	rs, err = NewStore(db, keys)
	require.NoError(t, err)
	require.Equal(t, cid1, rs.LastCommitID())
	value, err := rs.GetKVStore(wasm).Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), value)

	// a different block at the same height commits
	require.NoError(t, rs.GetKVStore(wasm).Set([]byte("k"), []byte("other")))
	cid2, err := rs.Commit(blockTime.Add(time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(2), cid2.Version)
	require.Equal(t, []int64{1, 2}, rs.AvailableVersions())
}
