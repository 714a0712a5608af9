package types

const (
	EventTypeStoreCode    = "store_code"
	EventTypeInstantiate  = "instantiate"
	EventTypeExecute      = "execute"
	EventTypeMigrate      = "migrate"
	EventTypeUpdateAdmin  = "update_contract_admin"
	EventTypeWasm         = "wasm"
	EventTypeUpdateParams = "update_params"

	AttributeKeyContractAddr = "_contract_address"
	AttributeKeyCodeID       = "code_id"
	AttributeKeyChecksum     = "code_checksum"
	AttributeKeyNewAdmin     = "new_admin_address"
	AttributeKeyAuthority    = "authority"
)
