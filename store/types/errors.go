package types

// DONTCOVER

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// StoreCodespace is the codespace of store errors. It differs from the
// cosmos-sdk store codespace, whose errors are registered whenever
// cosmos-sdk/types is linked.
const StoreCodespace = "chainkit/store"

// x/store sentinel errors
var (
	ErrGasOverflow         = sdkerrors.Register(StoreCodespace, 2, "gas overflow")
	ErrVersionNotCommitted = sdkerrors.Register(StoreCodespace, 3, "version not yet committed")
	ErrVersionPruned       = sdkerrors.Register(StoreCodespace, 4, "version has been pruned")
	ErrCheckpoint          = sdkerrors.Register(StoreCodespace, 5, "invalid checkpoint")
)
