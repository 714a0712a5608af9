package iavl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cosmos/iavl"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/types"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

var _ types.KVStore = (*Store)(nil)

// Store is the versioned store: an iavl tree whose working version receives
// writes and whose saved versions stay readable until pruned.
type Store struct {
	mtx  sync.RWMutex
	tree *iavl.MutableTree
}

// LoadStore opens the tree in db at version and deletes every saved version
// above it. Version 0 is the empty tree.
func LoadStore(db dbm.DB, cacheSize int, version int64) (*Store, error) {
	tree, err := iavl.NewMutableTree(db, cacheSize)
	if err != nil {
		return nil, err
	}
	if _, err = tree.LoadVersionForOverwriting(version); err != nil {
		return nil, fmt.Errorf("load iavl version %d: %w", version, err)
	}
	// iavl loads the newest saved version for 0
	if version == 0 && tree.Version() != 0 {
		if tree, err = iavl.NewMutableTree(db, cacheSize); err != nil {
			return nil, err
		}
	}
	return &Store{tree: tree}, nil
}

// Get reads from the working version.
func (st *Store) Get(key []byte) ([]byte, error) {
	types.AssertValidKey(key)
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	_, value := st.tree.Get(key)
	return value, nil
}

func (st *Store) Has(key []byte) (bool, error) {
	types.AssertValidKey(key)
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	return st.tree.Has(key), nil
}

func (st *Store) Set(key, value []byte) error {
	types.AssertValidKey(key)
	types.AssertValidValue(value)
	st.mtx.Lock()
	defer st.mtx.Unlock()

	st.tree.Set(key, value)
	return nil
}

func (st *Store) Delete(key []byte) error {
	types.AssertValidKey(key)
	st.mtx.Lock()
	defer st.mtx.Unlock()

	st.tree.Remove(key)
	return nil
}

func (st *Store) Iterator(start, end []byte) (types.Iterator, error) {
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	return iterateTree(st.tree.ImmutableTree, start, end, true), nil
}

func (st *Store) ReverseIterator(start, end []byte) (types.Iterator, error) {
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	return iterateTree(st.tree.ImmutableTree, start, end, false), nil
}

// Commit saves the working version as a new version.
func (st *Store) Commit() (types.CommitID, error) {
	st.mtx.Lock()
	defer st.mtx.Unlock()

	hash, version, err := st.tree.SaveVersion()
	if err != nil {
		return types.CommitID{}, err
	}
	return types.CommitID{Version: version, Hash: hash}, nil
}

// LastCommitID returns the id of the latest saved version.
func (st *Store) LastCommitID() types.CommitID {
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	return types.CommitID{Version: st.tree.Version(), Hash: st.tree.Hash()}
}

// VersionExists reports whether version is saved and not pruned.
func (st *Store) VersionExists(version int64) bool {
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	return st.tree.VersionExists(version)
}

// AvailableVersions lists the saved versions in ascending order.
func (st *Store) AvailableVersions() []int64 {
	st.mtx.RLock()
	defer st.mtx.RUnlock()

	versions := st.tree.AvailableVersions()
	out := make([]int64, len(versions))
	for i, v := range versions {
		out[i] = int64(v)
	}
	return out
}

// DeleteVersion prunes a saved version. The latest version cannot be pruned.
func (st *Store) DeleteVersion(version int64) error {
	st.mtx.Lock()
	defer st.mtx.Unlock()

	if version == st.tree.Version() {
		return errors.New("cannot delete latest saved version")
	}
	return st.tree.DeleteVersion(version)
}

// GetImmutable returns a read-only view of a saved version. Version 0 is the
// empty pre-genesis state.
func (st *Store) GetImmutable(version int64) (*ReadOnlyTree, error) {
	if version == 0 {
		return &ReadOnlyTree{}, nil
	}

	st.mtx.RLock()
	defer st.mtx.RUnlock()

	tree, err := st.tree.GetImmutable(version)
	if err != nil {
		return nil, err
	}
	return &ReadOnlyTree{tree: tree, version: version}, nil
}

// ReadOnlyTree is an immutable saved version of the tree.
type ReadOnlyTree struct {
	tree    *iavl.ImmutableTree
	version int64
}

var _ types.KVReader = (*ReadOnlyTree)(nil)

func (t *ReadOnlyTree) Version() int64 { return t.version }

func (t *ReadOnlyTree) Get(key []byte) ([]byte, error) {
	types.AssertValidKey(key)
	if t.tree == nil {
		return nil, nil
	}
	_, value := t.tree.Get(key)
	return value, nil
}

func (t *ReadOnlyTree) Has(key []byte) (bool, error) {
	types.AssertValidKey(key)
	if t.tree == nil {
		return false, nil
	}
	return t.tree.Has(key), nil
}

func (t *ReadOnlyTree) Iterator(start, end []byte) (types.Iterator, error) {
	return iterateTree(t.tree, start, end, true), nil
}

func (t *ReadOnlyTree) ReverseIterator(start, end []byte) (types.Iterator, error) {
	return iterateTree(t.tree, start, end, false), nil
}

// iterateTree materializes [start, end) so the returned iterator holds no
// reference into the tree.
func iterateTree(tree *iavl.ImmutableTree, start, end []byte, ascending bool) types.Iterator {
	var pairs []types.KVPair
	if tree != nil {
		tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
			pairs = append(pairs, types.KVPair{
				Key:   append([]byte(nil), key...),
				Value: append([]byte(nil), value...),
			})
			return false
		})
	}
	return types.NewSliceIterator(start, end, pairs)
}
