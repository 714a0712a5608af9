package cachekv

import (
	"bytes"
	"sort"
	"sync"

	"github.com/babylonchain/chainkit/store/types"
)

type cValue struct {
	value   []byte
	deleted bool
}

// Store buffers writes over a parent KVStore. Nothing reaches the parent
// until Write; dropping the Store discards the buffer.
type Store struct {
	mtx    sync.Mutex
	cache  map[string]cValue
	parent types.KVStore
}

var _ types.KVStore = (*Store)(nil)

// NewStore returns an empty write buffer over parent.
func NewStore(parent types.KVStore) *Store {
	return &Store{
		cache:  make(map[string]cValue),
		parent: parent,
	}
}

func (store *Store) Get(key []byte) ([]byte, error) {
	types.AssertValidKey(key)
	store.mtx.Lock()
	cv, ok := store.cache[string(key)]
	store.mtx.Unlock()

	if ok {
		if cv.deleted {
			return nil, nil
		}
		return cv.value, nil
	}
	return store.parent.Get(key)
}

func (store *Store) Has(key []byte) (bool, error) {
	value, err := store.Get(key)
	if err != nil {
		return false, err
	}
	return value != nil, nil
}

func (store *Store) Set(key []byte, value []byte) error {
	types.AssertValidKey(key)
	types.AssertValidValue(value)

	store.mtx.Lock()
	defer store.mtx.Unlock()
	store.cache[string(key)] = cValue{value: append([]byte(nil), value...)}
	return nil
}

func (store *Store) Delete(key []byte) error {
	types.AssertValidKey(key)

	store.mtx.Lock()
	defer store.mtx.Unlock()
	store.cache[string(key)] = cValue{deleted: true}
	return nil
}

// Write flushes the buffer into the parent in ascending key order and empties
// it.
func (store *Store) Write() error {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	for _, key := range store.sortedKeys(nil, nil) {
		cv := store.cache[key]
		var err error
		if cv.deleted {
			err = store.parent.Delete([]byte(key))
		} else {
			err = store.parent.Set([]byte(key), cv.value)
		}
		if err != nil {
			return err
		}
	}
	store.cache = make(map[string]cValue)
	return nil
}

// Discard drops every pending write.
func (store *Store) Discard() {
	store.mtx.Lock()
	defer store.mtx.Unlock()
	store.cache = make(map[string]cValue)
}

// WriteSet returns the pending writes in ascending key order. Deletions have
// a nil Value.
func (store *Store) WriteSet() []types.KVPair {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	keys := store.sortedKeys(nil, nil)
	pairs := make([]types.KVPair, 0, len(keys))
	for _, key := range keys {
		cv := store.cache[key]
		pair := types.KVPair{Key: []byte(key)}
		if !cv.deleted {
			pair.Value = cv.value
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func (store *Store) Iterator(start, end []byte) (types.Iterator, error) {
	return store.iterator(start, end, true)
}

func (store *Store) ReverseIterator(start, end []byte) (types.Iterator, error) {
	return store.iterator(start, end, false)
}

func (store *Store) iterator(start, end []byte, ascending bool) (types.Iterator, error) {
	var (
		parent types.Iterator
		err    error
	)
	if ascending {
		parent, err = store.parent.Iterator(start, end)
	} else {
		parent, err = store.parent.ReverseIterator(start, end)
	}
	if err != nil {
		return nil, err
	}

	store.mtx.Lock()
	keys := store.sortedKeys(start, end)
	pairs := make([]types.KVPair, 0, len(keys))
	for _, key := range keys {
		cv := store.cache[key]
		pairs = append(pairs, types.KVPair{Key: []byte(key), Value: cv.value})
	}
	store.mtx.Unlock()

	if !ascending {
		for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
	}
	cache := types.NewSliceIterator(start, end, pairs)
	return newMergeIterator(parent, cache, ascending), nil
}

// sortedKeys returns the buffered keys in [start, end). Callers hold mtx.
func (store *Store) sortedKeys(start, end []byte) []string {
	keys := make([]string, 0, len(store.cache))
	for key := range store.cache {
		if isKeyInDomain([]byte(key), start, end) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func isKeyInDomain(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(end, key) <= 0 {
		return false
	}
	return true
}
