package ante

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
)

// TxWithMemo is a transaction carrying a memo.
type TxWithMemo interface {
	sdk.Tx
	GetMemo() string
}

// TxWithTimeoutHeight is a transaction that expires at a block height.
type TxWithTimeoutHeight interface {
	sdk.Tx
	GetTimeoutHeight() uint64
}

// TxWithSize is a transaction that knows its encoded length.
type TxWithSize interface {
	sdk.Tx
	Size() int
}

// ValidateBasicDecorator runs the stateless checks of the transaction. It is
// skipped on recheck, the transaction already passed it.
type ValidateBasicDecorator struct{}

func NewValidateBasicDecorator() ValidateBasicDecorator {
	return ValidateBasicDecorator{}
}

func (vbd ValidateBasicDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	if ctx.IsReCheckTx() {
		return next(ctx, tx)
	}
	if err := tx.ValidateBasic(); err != nil {
		return err
	}
	return next(ctx, tx)
}

// TxTimeoutHeightDecorator rejects a transaction included after its timeout
// height. A zero timeout never expires.
type TxTimeoutHeightDecorator struct{}

func NewTxTimeoutHeightDecorator() TxTimeoutHeightDecorator {
	return TxTimeoutHeightDecorator{}
}

func (txh TxTimeoutHeightDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	timeoutTx, ok := tx.(TxWithTimeoutHeight)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "expected tx to implement TxWithTimeoutHeight")
	}

	timeoutHeight := timeoutTx.GetTimeoutHeight()
	if timeoutHeight > 0 && uint64(ctx.Height()) > timeoutHeight {
		return sdkerrors.Wrapf(
			sdkerrors.ErrTxTimeoutHeight, "block height: %d, timeout height: %d", ctx.Height(), timeoutHeight,
		)
	}
	return next(ctx, tx)
}

// ValidateMemoDecorator bounds the memo length by the max_memo_characters
// param.
type ValidateMemoDecorator struct {
	ak AccountKeeper
}

func NewValidateMemoDecorator(ak AccountKeeper) ValidateMemoDecorator {
	return ValidateMemoDecorator{ak: ak}
}

func (vmd ValidateMemoDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	memoTx, ok := tx.(TxWithMemo)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "invalid transaction type")
	}

	params, err := vmd.ak.GetParams(ctx)
	if err != nil {
		return err
	}

	memoLength := len(memoTx.GetMemo())
	if uint64(memoLength) > params.MaxMemoCharacters {
		return sdkerrors.Wrapf(sdkerrors.ErrMemoTooLarge,
			"maximum number of characters is %d but received %d characters",
			params.MaxMemoCharacters, memoLength,
		)
	}
	return next(ctx, tx)
}

// ConsumeTxSizeGasDecorator charges tx_size_cost_per_byte for every byte of
// the encoded transaction.
type ConsumeTxSizeGasDecorator struct {
	ak AccountKeeper
}

func NewConsumeGasForTxSizeDecorator(ak AccountKeeper) ConsumeTxSizeGasDecorator {
	return ConsumeTxSizeGasDecorator{ak: ak}
}

func (cgts ConsumeTxSizeGasDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	sizeTx, ok := tx.(TxWithSize)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "invalid transaction type")
	}

	params, err := cgts.ak.GetParams(ctx)
	if err != nil {
		return err
	}

	if err := ctx.GasMeter().ConsumeGas(params.TxSizeCostPerByte*uint64(sizeTx.Size()), "txSize"); err != nil {
		return err
	}
	return next(ctx, tx)
}
