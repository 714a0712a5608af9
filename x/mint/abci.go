package mint

import (
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/mint/keeper"
)

// BeginBlocker mints the block provision at the current supply.
func BeginBlocker(ctx *sdk.BlockContext, k keeper.Keeper) error {
	minter, err := k.MintBlockProvision(ctx)
	if err != nil {
		return err
	}
	k.Logger(ctx).Debug("minted block provision", "height", ctx.Height(), "total_minted", minter.TotalMinted)
	return nil
}
