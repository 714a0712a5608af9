package types

import (
	"fmt"
	"sync/atomic"
)

var keyTableSeq uint64

// StoreKey is a handle to one namespace of the multi store. Handles are only
// issued by a KeyTable; the zero value is never registered.
type StoreKey struct {
	name  string
	index int
	table uint64
}

func (key StoreKey) Name() string { return key.name }

func (key StoreKey) String() string {
	return fmt.Sprintf("StoreKey{%s}", key.name)
}

// Prefix is the namespace prefix: a length byte followed by the name. Length
// prefixing keeps the namespaces of two distinct keys byte-range disjoint.
func (key StoreKey) Prefix() []byte {
	bz := make([]byte, 0, len(key.name)+1)
	bz = append(bz, byte(len(key.name)))
	return append(bz, key.name...)
}

// KeyTable is the closed set of store keys of an application. It is fixed at
// construction; no key can be added later.
type KeyTable struct {
	id     uint64
	keys   []StoreKey
	byName map[string]StoreKey
}

// NewKeyTable issues one StoreKey per name, in the given order.
func NewKeyTable(names ...string) (*KeyTable, error) {
	table := &KeyTable{
		id:     atomic.AddUint64(&keyTableSeq, 1),
		byName: make(map[string]StoreKey, len(names)),
	}
	for i, name := range names {
		if err := ValidateStoreName(name); err != nil {
			return nil, err
		}
		if _, ok := table.byName[name]; ok {
			return nil, fmt.Errorf("duplicate store key %q", name)
		}
		key := StoreKey{name: name, index: i, table: table.id}
		table.keys = append(table.keys, key)
		table.byName[name] = key
	}
	return table, nil
}

// MustNewKeyTable is NewKeyTable that panics on error.
func MustNewKeyTable(names ...string) *KeyTable {
	table, err := NewKeyTable(names...)
	if err != nil {
		panic(err)
	}
	return table
}

// ValidateStoreName rejects names that cannot be used as namespace ids.
func ValidateStoreName(name string) error {
	if name == "" {
		return fmt.Errorf("store key name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("store key name %q is too long", name)
	}
	for _, c := range name {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return fmt.Errorf("store key name %q contains invalid character %q", name, c)
		}
	}
	return nil
}

// Key returns the StoreKey with the given name.
func (t *KeyTable) Key(name string) (StoreKey, bool) {
	key, ok := t.byName[name]
	return key, ok
}

// MustKey is Key that panics if the name is not registered.
func (t *KeyTable) MustKey(name string) StoreKey {
	key, ok := t.Key(name)
	if !ok {
		panic(fmt.Sprintf("store key %q is not registered", name))
	}
	return key
}

// Keys returns all keys in registration order.
func (t *KeyTable) Keys() []StoreKey {
	keys := make([]StoreKey, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *KeyTable) Len() int { return len(t.keys) }

// Contains reports whether key was issued by this table.
func (t *KeyTable) Contains(key StoreKey) bool {
	return key.table == t.id && key.index >= 0 && key.index < len(t.keys) && t.keys[key.index] == key
}

// Index returns the position of key in the table. It panics on a foreign
// key: a namespace that was never registered is a programming error.
func (t *KeyTable) Index(key StoreKey) int {
	if !t.Contains(key) {
		panic(fmt.Sprintf("%s is not registered with this multi store", key))
	}
	return key.index
}
