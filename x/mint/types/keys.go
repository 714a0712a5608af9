package types

const (
	// ModuleName defines the module name
	ModuleName = "mint"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// MinterKey is the key of the minter
var MinterKey = []byte{0x00}

// mint module event types
const (
	EventTypeMint         = "mint"
	EventTypeUpdateParams = "update_params"

	AttributeKeyAmount           = "amount"
	AttributeKeyDenom            = "denom"
	AttributeKeyInflation        = "inflation"
	AttributeKeyAnnualProvisions = "annual_provisions"
	AttributeKeyTotalMinted      = "total_minted"
	AttributeKeyAuthority        = "authority"
)
