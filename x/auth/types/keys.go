package types

import (
	sdk "github.com/babylonchain/chainkit/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "auth"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	AccountKeyPrefix       = []byte{0x01} // prefix for account records
	GlobalAccountNumberKey = []byte{0x02} // key of the next account number
)

// AccountKey returns the store key of the account at addr.
func AccountKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, AccountKeyPrefix...), addr.Bytes()...)
}

// auth module event types
const (
	EventTypeUpdateParams = "update_params"
	EventTypeNewAccount   = "new_account"

	AttributeKeyAuthority     = "authority"
	AttributeKeyAddress       = "address"
	AttributeKeyAccountNumber = "account_number"
)
