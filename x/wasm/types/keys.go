package types

import (
	"github.com/tendermint/tendermint/crypto/tmhash"

	sdk "github.com/babylonchain/chainkit/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "wasm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	CodeKeyPrefix                  = []byte{0x01}
	ContractKeyPrefix              = []byte{0x02}
	ContractStorePrefix            = []byte{0x03}
	SequenceKeyPrefix              = []byte{0x04}
	ContractCodeHistoryIndexPrefix = []byte{0x05}
	CodeBytesPrefix                = []byte{0x06}

	KeyLastCodeID     = append(SequenceKeyPrefix, []byte("lastCodeId")...)
	KeyLastInstanceID = append(SequenceKeyPrefix, []byte("lastContractId")...)
)

// GetCodeKey constructs the key for retrieving the CodeInfo of a code id.
func GetCodeKey(codeID uint64) []byte {
	return append(CodeKeyPrefix, sdk.Uint64ToBigEndian(codeID)...)
}

// GetContractAddressKey returns the key for the ContractInfo of a contract.
func GetContractAddressKey(addr sdk.AccAddress) []byte {
	return append(ContractKeyPrefix, addr...)
}

// GetContractStorePrefix returns the namespace of the storage of a contract.
func GetContractStorePrefix(addr sdk.AccAddress) []byte {
	return append(ContractStorePrefix, addr...)
}

// GetContractByCodeIDSecondaryIndexPrefix returns the prefix of the index of
// the contracts instantiated from codeID.
func GetContractByCodeIDSecondaryIndexPrefix(codeID uint64) []byte {
	return append(ContractCodeHistoryIndexPrefix, sdk.Uint64ToBigEndian(codeID)...)
}

// GetContractByCodeIDSecondaryIndex returns the index key of contract addr
// under codeID.
func GetContractByCodeIDSecondaryIndex(codeID uint64, addr sdk.AccAddress) []byte {
	return append(GetContractByCodeIDSecondaryIndexPrefix(codeID), addr...)
}

// GetCodeBytesKey returns the key of the code blob with the given checksum.
func GetCodeBytesKey(checksum []byte) []byte {
	return append(CodeBytesPrefix, checksum...)
}

// BuildContractAddress derives the address of the instanceID-th contract,
// instantiated from codeID.
func BuildContractAddress(codeID, instanceID uint64) sdk.AccAddress {
	bz := append([]byte(ModuleName), sdk.Uint64ToBigEndian(codeID)...)
	bz = append(bz, sdk.Uint64ToBigEndian(instanceID)...)
	return sdk.AccAddress(tmhash.Sum(bz))
}
