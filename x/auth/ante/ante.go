package ante

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// AccountKeeper is the account state the ante chain needs.
type AccountKeeper interface {
	GetParams(ctx sdk.QueryableContext) (types.Params, error)
	GetAccount(ctx sdk.QueryableContext, addr sdk.AccAddress) (*types.BaseAccount, error)
	SetAccount(ctx sdk.MutableContext, acc *types.BaseAccount) error
	NewAccountWithAddress(ctx sdk.MutableContext, addr sdk.AccAddress) (*types.BaseAccount, error)
}

// HandlerOptions are the options required for constructing a default SDK AnteHandler.
type HandlerOptions struct {
	AccountKeeper AccountKeeper
	// MinGasPriceMilli is the node local minimum fee per thousand gas units,
	// only enforced in check mode.
	MinGasPriceMilli uint64
}

// NewAnteHandler returns an AnteHandler that checks and increments sequence
// numbers, checks signatures and charges the transaction size.
func NewAnteHandler(options HandlerOptions) (sdk.AnteHandler, error) {
	if options.AccountKeeper == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrLogic, "account keeper is required for ante builder")
	}

	return sdk.ChainAnteDecorators(
		NewMempoolFeeDecorator(options.MinGasPriceMilli),
		NewValidateBasicDecorator(),
		NewTxTimeoutHeightDecorator(),
		NewValidateMemoDecorator(options.AccountKeeper),
		NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
		NewFeeSufficiencyDecorator(options.AccountKeeper),
		NewSetPubKeyDecorator(options.AccountKeeper),
		NewSigVerificationDecorator(options.AccountKeeper),
		NewIncrementSequenceDecorator(options.AccountKeeper),
	), nil
}
