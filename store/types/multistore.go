package types

// MultiStore hands out one namespace per registered StoreKey.
type MultiStore interface {
	KeyTable() *KeyTable
	// GetKVStore panics if key was not issued by KeyTable().
	GetKVStore(key StoreKey) KVStore
}

// MultiStoreReader hands out read-only namespaces.
type MultiStoreReader interface {
	KeyTable() *KeyTable
	GetKVReader(key StoreKey) KVReader
}
