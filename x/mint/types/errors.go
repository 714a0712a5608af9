package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/mint module sentinel errors
var (
	ErrInvalidAuthority = sdkerrors.Register(ModuleName, 2, "invalid authority")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 3, "invalid mint params")
	ErrMinterNotFound   = sdkerrors.Register(ModuleName, 4, "minter not found")
	ErrInvalidMinter    = sdkerrors.Register(ModuleName, 5, "invalid minter")
)
