package types_test

import (
	"testing"

	sdkstoretypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/store/types"
)

// Both registries are linked into this binary; a clash panics at init.
func TestErrorsRegisterBesideSDKStore(t *testing.T) {
	require.NotEqual(t, sdkstoretypes.StoreCodespace, types.StoreCodespace)

	for _, err := range []*sdkerrors.Error{
		types.ErrGasOverflow,
		types.ErrVersionNotCommitted,
		types.ErrVersionPruned,
		types.ErrCheckpoint,
	} {
		require.Equal(t, types.StoreCodespace, err.Codespace())
	}
}
