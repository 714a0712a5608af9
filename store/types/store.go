package types

import (
	"fmt"

	dbm "github.com/tendermint/tm-db"
)

// Iterator walks a key range in a fixed order. Callers must Close it.
type Iterator = dbm.Iterator

// KVReader is the read side of a key-value namespace.
type KVReader interface {
	// Get returns nil if the key is absent.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks [start, end) in ascending key order. A nil bound is open.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks [start, end) in descending key order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// KVWriter is the write side of a key-value namespace.
type KVWriter interface {
	// Set panics on a nil value.
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is a readable and writable namespace.
type KVStore interface {
	KVReader
	KVWriter
}

// KVPair is a single pending or committed entry. A nil Value marks a deletion
// when the pair comes from a write set.
type KVPair struct {
	Key   []byte
	Value []byte
}

// CommitID identifies a committed version of the state.
type CommitID struct {
	Version int64
	Hash    []byte
}

func (cid CommitID) IsZero() bool {
	return cid.Version == 0 && len(cid.Hash) == 0
}

func (cid CommitID) String() string {
	return fmt.Sprintf("CommitID{%X:%d}", cid.Hash, cid.Version)
}

// AssertValidKey panics on an empty key.
func AssertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is nil or empty")
	}
}

// AssertValidValue panics on a nil value.
func AssertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}

// PrefixEndBytes returns the smallest key greater than every key with the
// given prefix, or nil if there is none.
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)

	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		}
		end = end[:len(end)-1]
		if len(end) == 0 {
			return nil
		}
	}
	return end
}

// InclusiveEndBytes returns the end bound that makes inclusiveBytes part of
// an iteration range.
func InclusiveEndBytes(inclusiveBytes []byte) []byte {
	end := make([]byte, len(inclusiveBytes)+1)
	copy(end, inclusiveBytes)
	return end
}
