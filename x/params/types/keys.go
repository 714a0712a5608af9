package types

const (
	// ModuleName defines the module name
	ModuleName = "params"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// SubspaceKeyPrefix returns the prefix of the keys of subspace name. The
// separator keeps a subspace from reading the keys of another subspace whose
// name extends it.
func SubspaceKeyPrefix(name string) []byte {
	return append([]byte(name), '/')
}
