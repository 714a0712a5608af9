package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/wasm module sentinel errors
var (
	ErrInternal       = sdkerrors.Register(ModuleName, 1, "internal error")
	ErrEngine         = sdkerrors.Register(ModuleName, 2, "wasm engine error")
	ErrInvalidRequest = sdkerrors.Register(ModuleName, 3, "invalid request")
	ErrUnauthorized   = sdkerrors.Register(ModuleName, 4, "unauthorized")
	ErrNotFound       = sdkerrors.Register(ModuleName, 5, "not found")
	ErrInvalidCode    = sdkerrors.Register(ModuleName, 6, "invalid wasm code")
)
