package types_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/babylonchain/chainkit/types"
)

type recordDecorator struct {
	name  string
	calls *[]string
	err   error
}

func (d recordDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	*d.calls = append(*d.calls, d.name)
	if d.err != nil {
		return d.err
	}
	return next(ctx, tx)
}

func TestChainAnteDecorators(t *testing.T) {
	require.Nil(t, sdk.ChainAnteDecorators())

	var calls []string
	handler := sdk.ChainAnteDecorators(
		recordDecorator{name: "a", calls: &calls},
		recordDecorator{name: "b", calls: &calls},
		recordDecorator{name: "c", calls: &calls},
	)
	require.NoError(t, handler(nil, nil))
	require.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	boom := errors.New("boom")
	handler = sdk.ChainAnteDecorators(
		recordDecorator{name: "a", calls: &calls},
		recordDecorator{name: "b", calls: &calls, err: boom},
		recordDecorator{name: "c", calls: &calls},
	)
	require.ErrorIs(t, handler(nil, nil), boom)
	require.Equal(t, []string{"a", "b"}, calls)
}
