package prefix

import (
	"bytes"

	"github.com/babylonchain/chainkit/store/types"
)

var (
	_ types.KVReader = ReadStore{}
	_ types.KVStore  = Store{}
)

// ReadStore is a read-only view of the keys of parent under prefix. It has no
// mutation methods, so it cannot be converted into a writer.
type ReadStore struct {
	parent types.KVReader
	prefix []byte
}

// NewReadStore returns a view of parent restricted to prefix.
func NewReadStore(parent types.KVReader, prefix []byte) ReadStore {
	return ReadStore{parent: parent, prefix: prefix}
}

func cloneAppend(bz []byte, tail []byte) (res []byte) {
	res = make([]byte, len(bz)+len(tail))
	copy(res, bz)
	copy(res[len(bz):], tail)
	return
}

func (s ReadStore) key(key []byte) []byte {
	types.AssertValidKey(key)
	return cloneAppend(s.prefix, key)
}

// Prefix returns the full namespace prefix of the view.
func (s ReadStore) Prefix() []byte {
	return s.prefix
}

func (s ReadStore) Get(key []byte) ([]byte, error) {
	return s.parent.Get(s.key(key))
}

func (s ReadStore) Has(key []byte) (bool, error) {
	return s.parent.Has(s.key(key))
}

func (s ReadStore) bounds(start, end []byte) ([]byte, []byte) {
	newstart := cloneAppend(s.prefix, start)

	var newend []byte
	if end == nil {
		newend = types.PrefixEndBytes(s.prefix)
	} else {
		newend = cloneAppend(s.prefix, end)
	}
	return newstart, newend
}

func (s ReadStore) Iterator(start, end []byte) (types.Iterator, error) {
	newstart, newend := s.bounds(start, end)
	iter, err := s.parent.Iterator(newstart, newend)
	if err != nil {
		return nil, err
	}
	return newPrefixIterator(s.prefix, start, end, iter), nil
}

func (s ReadStore) ReverseIterator(start, end []byte) (types.Iterator, error) {
	newstart, newend := s.bounds(start, end)
	iter, err := s.parent.ReverseIterator(newstart, newend)
	if err != nil {
		return nil, err
	}
	return newPrefixIterator(s.prefix, start, end, iter), nil
}

// Store is a read-write view of the keys of parent under prefix.
type Store struct {
	ReadStore
	parent types.KVStore
}

// NewStore returns a writable view of parent restricted to prefix.
func NewStore(parent types.KVStore, prefix []byte) Store {
	return Store{
		ReadStore: NewReadStore(parent, prefix),
		parent:    parent,
	}
}

func (s Store) Set(key, value []byte) error {
	types.AssertValidValue(value)
	return s.parent.Set(s.key(key), value)
}

func (s Store) Delete(key []byte) error {
	return s.parent.Delete(s.key(key))
}

type prefixIterator struct {
	prefix     []byte
	start, end []byte
	iter       types.Iterator
	valid      bool
}

var _ types.Iterator = (*prefixIterator)(nil)

func newPrefixIterator(prefix, start, end []byte, parent types.Iterator) *prefixIterator {
	return &prefixIterator{
		prefix: prefix,
		start:  start,
		end:    end,
		iter:   parent,
		valid:  parent.Valid() && bytes.HasPrefix(parent.Key(), prefix),
	}
}

func (pi *prefixIterator) Domain() ([]byte, []byte) {
	return pi.start, pi.end
}

func (pi *prefixIterator) Valid() bool {
	return pi.valid && pi.iter.Valid()
}

func (pi *prefixIterator) Next() {
	if !pi.valid {
		panic("prefixIterator invalid, cannot call Next()")
	}
	if pi.iter.Next(); !pi.iter.Valid() || !bytes.HasPrefix(pi.iter.Key(), pi.prefix) {
		pi.valid = false
	}
}

func (pi *prefixIterator) Key() []byte {
	if !pi.valid {
		panic("prefixIterator invalid, cannot call Key()")
	}
	return stripPrefix(pi.iter.Key(), pi.prefix)
}

func (pi *prefixIterator) Value() []byte {
	if !pi.valid {
		panic("prefixIterator invalid, cannot call Value()")
	}
	return pi.iter.Value()
}

func (pi *prefixIterator) Close() error {
	return pi.iter.Close()
}

func (pi *prefixIterator) Error() error {
	return pi.iter.Error()
}

func stripPrefix(key []byte, prefix []byte) []byte {
	if len(key) < len(prefix) || !bytes.Equal(key[:len(prefix)], prefix) {
		panic("should not happen")
	}
	return key[len(prefix):]
}
