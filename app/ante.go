package app

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/ante"
	authkeeper "github.com/babylonchain/chainkit/x/auth/keeper"
)

// NewAnteHandler returns the checks run before the messages of every
// transaction: the auth chain with the node local minimum gas price.
func NewAnteHandler(cfg Config, ak authkeeper.AccountKeeper) (sdk.AnteHandler, error) {
	return ante.NewAnteHandler(ante.HandlerOptions{
		AccountKeeper:    ak,
		MinGasPriceMilli: cfg.MinGasPriceMilli,
	})
}
