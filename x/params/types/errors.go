package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// x/params module sentinel errors
var (
	ErrUnknownSubspace  = sdkerrors.Register(ModuleName, 2, "unknown subspace")
	ErrSettingParameter = sdkerrors.Register(ModuleName, 3, "failed to set parameter")
	ErrEmptyKey         = sdkerrors.Register(ModuleName, 4, "empty parameter key")
	ErrParamNotFound    = sdkerrors.Register(ModuleName, 5, "parameter not found")
	ErrUnregisteredKey  = sdkerrors.Register(ModuleName, 6, "parameter key not registered in key table")
	ErrInvalidParam     = sdkerrors.Register(ModuleName, 7, "invalid parameter value")
)
