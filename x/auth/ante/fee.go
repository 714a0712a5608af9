package ante

import (
	"math/bits"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
)

// RequiredFee returns ceil(gas * priceMilli / 1000). ok is false if the fee
// does not fit in a uint64.
func RequiredFee(gas, priceMilli uint64) (fee uint64, ok bool) {
	hi, lo := bits.Mul64(gas, priceMilli)
	if hi >= 1000 {
		return 0, false
	}
	q, r := bits.Div64(hi, lo, 1000)
	if r > 0 {
		if q == ^uint64(0) {
			return 0, false
		}
		q++
	}
	return q, true
}

func checkFee(feeTx sdk.FeeTx, priceMilli uint64) error {
	required, ok := RequiredFee(feeTx.GetGas(), priceMilli)
	if !ok || feeTx.GetFee() < required {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee,
			"insufficient fee; got: %d required: %d", feeTx.GetFee(), required)
	}
	return nil
}

// MempoolFeeDecorator enforces the node local minimum gas price. It only
// runs in check mode, so it never affects consensus.
type MempoolFeeDecorator struct {
	minGasPriceMilli uint64
}

func NewMempoolFeeDecorator(minGasPriceMilli uint64) MempoolFeeDecorator {
	return MempoolFeeDecorator{minGasPriceMilli: minGasPriceMilli}
}

func (mfd MempoolFeeDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	feeTx, ok := tx.(sdk.FeeTx)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "Tx must be a FeeTx")
	}

	if ctx.IsCheckTx() && mfd.minGasPriceMilli > 0 {
		if err := checkFee(feeTx, mfd.minGasPriceMilli); err != nil {
			return err
		}
	}
	return next(ctx, tx)
}

// FeeSufficiencyDecorator enforces the min_gas_price_milli param in every
// mode except simulation.
type FeeSufficiencyDecorator struct {
	ak AccountKeeper
}

func NewFeeSufficiencyDecorator(ak AccountKeeper) FeeSufficiencyDecorator {
	return FeeSufficiencyDecorator{ak: ak}
}

func (fsd FeeSufficiencyDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	feeTx, ok := tx.(sdk.FeeTx)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "Tx must be a FeeTx")
	}

	if !ctx.IsSimulate() {
		params, err := fsd.ak.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := checkFee(feeTx, params.MinGasPriceMilli); err != nil {
			return err
		}
	}
	return next(ctx, tx)
}
