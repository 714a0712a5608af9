package cachemulti

import (
	"sync"

	"github.com/babylonchain/chainkit/store/cachekv"
	"github.com/babylonchain/chainkit/store/types"
)

var _ types.MultiStore = (*Store)(nil)

// Store is a write buffer over every namespace of a parent multi store.
// Namespaces are buffered lazily on first access.
type Store struct {
	mtx    sync.Mutex
	keys   *types.KeyTable
	parent types.MultiStore
	stores []*cachekv.Store
}

// NewStore branches parent.
func NewStore(parent types.MultiStore) *Store {
	keys := parent.KeyTable()
	return &Store{
		keys:   keys,
		parent: parent,
		stores: make([]*cachekv.Store, keys.Len()),
	}
}

func (cms *Store) KeyTable() *types.KeyTable {
	return cms.keys
}

// GetKVStore returns the buffered namespace of key.
func (cms *Store) GetKVStore(key types.StoreKey) types.KVStore {
	return cms.store(key)
}

func (cms *Store) store(key types.StoreKey) *cachekv.Store {
	idx := cms.keys.Index(key)

	cms.mtx.Lock()
	defer cms.mtx.Unlock()
	if cms.stores[idx] == nil {
		cms.stores[idx] = cachekv.NewStore(cms.parent.GetKVStore(key))
	}
	return cms.stores[idx]
}

// CacheMultiStore branches this store.
func (cms *Store) CacheMultiStore() *Store {
	return NewStore(cms)
}

// Write flushes every buffered namespace into the parent in key table order.
func (cms *Store) Write() error {
	cms.mtx.Lock()
	defer cms.mtx.Unlock()

	for _, store := range cms.stores {
		if store == nil {
			continue
		}
		if err := store.Write(); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops every pending write of every namespace.
func (cms *Store) Discard() {
	cms.mtx.Lock()
	defer cms.mtx.Unlock()

	for _, store := range cms.stores {
		if store != nil {
			store.Discard()
		}
	}
}

// WriteSet returns the pending writes of one namespace in key order.
func (cms *Store) WriteSet(key types.StoreKey) []types.KVPair {
	return cms.store(key).WriteSet()
}

// IsEmpty reports whether nothing is pending in any namespace.
func (cms *Store) IsEmpty() bool {
	for _, key := range cms.keys.Keys() {
		if len(cms.WriteSet(key)) > 0 {
			return false
		}
	}
	return true
}
