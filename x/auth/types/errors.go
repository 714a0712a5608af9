package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/auth module sentinel errors
var (
	ErrAccountNotFound  = sdkerrors.Register(ModuleName, 2, "account not found")
	ErrInvalidAuthority = sdkerrors.Register(ModuleName, 3, "invalid authority")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 4, "invalid auth params")
	ErrTooManySigners   = sdkerrors.Register(ModuleName, 5, "transaction messages require more than one signer")
)
