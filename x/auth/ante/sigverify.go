package ante

import (
	"bytes"
	"strconv"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/ed25519"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// SigVerifiableTx is a single signer transaction.
type SigVerifiableTx interface {
	sdk.FeeTx
	GetSigner() sdk.AccAddress
	GetPubKey() []byte
	GetSequence() uint64
	GetSignature() []byte
	GetSignBytes(chainID string, accNum uint64) ([]byte, error)
}

func signerAccount(ctx *sdk.TxContext, ak AccountKeeper, sigTx SigVerifiableTx) (*types.BaseAccount, error) {
	acc, err := ak.GetAccount(ctx, sigTx.GetSigner())
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownAddress, "account %s does not exist", sigTx.GetSigner())
	}
	return acc, nil
}

// SetPubKeyDecorator binds the public key of the signer to its account,
// creating the account on its first transaction.
type SetPubKeyDecorator struct {
	ak AccountKeeper
}

func NewSetPubKeyDecorator(ak AccountKeeper) SetPubKeyDecorator {
	return SetPubKeyDecorator{ak: ak}
}

func (spkd SetPubKeyDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	sigTx, ok := tx.(SigVerifiableTx)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "invalid transaction type")
	}

	signer := sigTx.GetSigner()
	acc, err := spkd.ak.GetAccount(ctx, signer)
	if err != nil {
		return err
	}
	if acc == nil {
		if acc, err = spkd.ak.NewAccountWithAddress(ctx, signer); err != nil {
			return err
		}
		ctx.PushEvent(sdk.NewEvent(types.EventTypeNewAccount,
			sdk.NewAttribute(types.AttributeKeyAddress, signer.String()),
			sdk.NewAttribute(types.AttributeKeyAccountNumber, strconv.FormatUint(acc.AccountNumber, 10)),
		))
	}

	switch {
	case len(acc.PubKey) == 0:
		if err := acc.SetPubKey(sigTx.GetPubKey()); err != nil {
			return sdkerrors.Wrap(sdkerrors.ErrInvalidPubKey, err.Error())
		}
		if err := spkd.ak.SetAccount(ctx, acc); err != nil {
			return err
		}
	case !bytes.Equal(acc.PubKey, sigTx.GetPubKey()):
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "pubkey does not match account %s", acc.Address)
	}

	return next(ctx, tx)
}

// SigVerificationDecorator checks the sequence and the ed25519 signature of
// the signer. Simulation and recheck charge the gas but skip verification.
type SigVerificationDecorator struct {
	ak AccountKeeper
}

func NewSigVerificationDecorator(ak AccountKeeper) SigVerificationDecorator {
	return SigVerificationDecorator{ak: ak}
}

func (svd SigVerificationDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	sigTx, ok := tx.(SigVerifiableTx)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "invalid transaction type")
	}

	params, err := svd.ak.GetParams(ctx)
	if err != nil {
		return err
	}
	if err := ctx.GasMeter().ConsumeGas(params.SigVerifyCostED25519, "ante verify: ed25519"); err != nil {
		return err
	}

	acc, err := signerAccount(ctx, svd.ak, sigTx)
	if err != nil {
		return err
	}
	if sigTx.GetSequence() != acc.Sequence {
		return sdkerrors.Wrapf(
			sdkerrors.ErrWrongSequence,
			"account sequence mismatch, expected %d, got %d", acc.Sequence, sigTx.GetSequence(),
		)
	}

	if ctx.IsSimulate() || ctx.IsReCheckTx() {
		return next(ctx, tx)
	}

	signBytes, err := sigTx.GetSignBytes(ctx.ChainID(), acc.AccountNumber)
	if err != nil {
		return err
	}
	if !ed25519.PubKey(acc.PubKey).VerifySignature(signBytes, sigTx.GetSignature()) {
		return sdkerrors.Wrapf(
			sdkerrors.ErrUnauthorized,
			"signature verification failed; please verify account number (%d) and chain-id (%s)",
			acc.AccountNumber, ctx.ChainID(),
		)
	}

	return next(ctx, tx)
}

// IncrementSequenceDecorator increments the sequence of the signer. Since
// ante writes persist even when a message fails, a transaction included in
// a block cannot be replayed.
type IncrementSequenceDecorator struct {
	ak AccountKeeper
}

func NewIncrementSequenceDecorator(ak AccountKeeper) IncrementSequenceDecorator {
	return IncrementSequenceDecorator{ak: ak}
}

func (isd IncrementSequenceDecorator) AnteHandle(ctx *sdk.TxContext, tx sdk.Tx, next sdk.AnteHandler) error {
	sigTx, ok := tx.(SigVerifiableTx)
	if !ok {
		return sdkerrors.Wrap(sdkerrors.ErrTxDecode, "invalid transaction type")
	}

	acc, err := signerAccount(ctx, isd.ak, sigTx)
	if err != nil {
		return err
	}
	acc.Sequence++
	if err := isd.ak.SetAccount(ctx, acc); err != nil {
		return err
	}

	return next(ctx, tx)
}
