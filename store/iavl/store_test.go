package iavl_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/iavl"
	"github.com/babylonchain/chainkit/store/types"
)

func bz(s string) []byte { return []byte(s) }

func get(t *testing.T, st types.KVReader, key string) []byte {
	value, err := st.Get(bz(key))
	require.NoError(t, err)
	return value
}

func TestStoreVersions(t *testing.T) {
	db := dbm.NewMemDB()
	st, err := iavl.LoadStore(db, iavl.DefaultCacheSize, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), st.LastCommitID().Version)

	require.NoError(t, st.Set(bz("hello"), bz("goodbye")))
	cid1, err := st.Commit()
	require.NoError(t, err)
	require.Equal(t, int64(1), cid1.Version)
	require.NotEmpty(t, cid1.Hash)

	require.NoError(t, st.Set(bz("hello"), bz("world")))
	require.NoError(t, st.Set(bz("extra"), bz("x")))

	// uncommitted writes are visible in the working version only
	require.Equal(t, bz("world"), get(t, st, "hello"))
	v1, err := st.GetImmutable(1)
	require.NoError(t, err)
	require.Equal(t, bz("goodbye"), get(t, v1, "hello"))
	require.Nil(t, get(t, v1, "extra"))

	cid2, err := st.Commit()
	require.NoError(t, err)
	require.Equal(t, int64(2), cid2.Version)
	require.NotEqual(t, cid1.Hash, cid2.Hash)

	// a later commit does not change an older snapshot
	require.Equal(t, bz("goodbye"), get(t, v1, "hello"))

	_, err = st.GetImmutable(3)
	require.Error(t, err)

	empty, err := st.GetImmutable(0)
	require.NoError(t, err)
	require.Nil(t, get(t, empty, "hello"))

	// reload from disk
	reloaded, err := iavl.LoadStore(db, iavl.DefaultCacheSize, 2)
	require.NoError(t, err)
	require.Equal(t, cid2, reloaded.LastCommitID())
	require.Equal(t, bz("world"), get(t, reloaded, "hello"))
	require.Equal(t, []int64{1, 2}, reloaded.AvailableVersions())
}

func TestLoadStoreDiscardsLaterVersions(t *testing.T) {
	db := dbm.NewMemDB()
	st, err := iavl.LoadStore(db, iavl.DefaultCacheSize, 0)
	require.NoError(t, err)
	require.NoError(t, st.Set(bz("hello"), bz("v1")))
	cid1, err := st.Commit()
	require.NoError(t, err)
	require.NoError(t, st.Set(bz("hello"), bz("v2")))
	_, err = st.Commit()
	require.NoError(t, err)

	st, err = iavl.LoadStore(db, iavl.DefaultCacheSize, 1)
	require.NoError(t, err)
	require.Equal(t, cid1, st.LastCommitID())
	require.Equal(t, bz("v1"), get(t, st, "hello"))
	require.Equal(t, []int64{1}, st.AvailableVersions())

	// a different version 2 can be saved over the discarded one
	require.NoError(t, st.Set(bz("hello"), bz("other")))
	cid2, err := st.Commit()
	require.NoError(t, err)
	require.Equal(t, int64(2), cid2.Version)

	st, err = iavl.LoadStore(db, iavl.DefaultCacheSize, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), st.LastCommitID().Version)
	require.Nil(t, get(t, st, "hello"))
	require.Empty(t, st.AvailableVersions())
	cid1, err = st.Commit()
	require.NoError(t, err)
	require.Equal(t, int64(1), cid1.Version)
}

func TestStoreIterators(t *testing.T) {
	st, err := iavl.LoadStore(dbm.NewMemDB(), iavl.DefaultCacheSize, 0)
	require.NoError(t, err)
	for _, k := range []string{"c", "a", "b", "d"} {
		require.NoError(t, st.Set(bz(k), bz(k+k)))
	}

	it, err := st.Iterator(bz("b"), bz("d"))
	require.NoError(t, err)
	pairs, err := types.CollectKVPairs(it)
	require.NoError(t, err)
	require.Equal(t, []types.KVPair{{Key: bz("b"), Value: bz("bb")}, {Key: bz("c"), Value: bz("cc")}}, pairs)

	it, err = st.ReverseIterator(nil, nil)
	require.NoError(t, err)
	pairs, err = types.CollectKVPairs(it)
	require.NoError(t, err)
	require.Len(t, pairs, 4)
	require.Equal(t, bz("d"), pairs[0].Key)
	require.Equal(t, bz("a"), pairs[3].Key)
}

func TestStoreDeleteVersion(t *testing.T) {
	st, err := iavl.LoadStore(dbm.NewMemDB(), iavl.DefaultCacheSize, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, st.Set(bz("k"), []byte{byte(i)}))
		_, err := st.Commit()
		require.NoError(t, err)
	}

	require.Error(t, st.DeleteVersion(3), "latest version cannot be deleted")
	require.NoError(t, st.DeleteVersion(1))
	require.False(t, st.VersionExists(1))
	require.True(t, st.VersionExists(2))
	require.Equal(t, []int64{2, 3}, st.AvailableVersions())
}
