package tx

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// MaxGasWanted is the largest gas limit a transaction may declare.
const MaxGasWanted = uint64((1 << 63) - 1)

var _ sdk.FeeTx = (*Wrapper)(nil)

// Wrapper is a decoded transaction. It keeps the raw body and auth info
// bytes so that sign bytes are rebuilt from what was received.
type Wrapper struct {
	raw      *types.TxRaw
	body     *types.TxBody
	authInfo *types.AuthInfo
	msgs     []sdk.Msg
	size     int
}

func (w *Wrapper) GetMsgs() []sdk.Msg { return w.msgs }

func (w *Wrapper) GetMemo() string { return w.body.Memo }

func (w *Wrapper) GetTimeoutHeight() uint64 { return w.body.TimeoutHeight }

func (w *Wrapper) GetGas() uint64 { return w.authInfo.Fee.GetGasLimit() }

func (w *Wrapper) GetFee() uint64 { return w.authInfo.Fee.GetAmount() }

func (w *Wrapper) GetPubKey() []byte { return w.authInfo.PubKey }

func (w *Wrapper) GetSequence() uint64 { return w.authInfo.Sequence }

func (w *Wrapper) GetSignature() []byte { return w.raw.Signature }

// Size is the length of the encoded transaction.
func (w *Wrapper) Size() int { return w.size }

// GetSigner returns the address of the signing key.
func (w *Wrapper) GetSigner() sdk.AccAddress {
	return types.AddressFromPubKey(w.authInfo.PubKey)
}

// GetSignBytes returns the bytes the signer signs.
func (w *Wrapper) GetSignBytes(chainID string, accNum uint64) ([]byte, error) {
	return SignBytes(w.raw.BodyBytes, w.raw.AuthInfoBytes, chainID, accNum)
}

// ValidateBasic checks the transaction without state. All messages must be
// signed by the one signer of the transaction.
func (w *Wrapper) ValidateBasic() error {
	if len(w.msgs) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "must contain at least one message")
	}
	if w.authInfo.Fee == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "missing fee")
	}
	if w.GetGas() == 0 || w.GetGas() > MaxGasWanted {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid gas supplied; %d", w.GetGas())
	}
	if len(w.raw.Signature) == 0 {
		return sdkerrors.ErrNoSignatures
	}
	if len(w.authInfo.PubKey) != ed25519.PubKeySize {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "expected %d bytes, got %d", ed25519.PubKeySize, len(w.authInfo.PubKey))
	}

	signer := w.GetSigner()
	for _, msg := range w.msgs {
		for _, addr := range msg.GetSigners() {
			if !addr.Equals(signer) {
				return sdkerrors.Wrapf(types.ErrTooManySigners, "message signer %s, tx signer %s", addr, signer)
			}
		}
	}
	return nil
}

// SignBytes encodes the SignDoc of a transaction.
func SignBytes(bodyBytes, authInfoBytes []byte, chainID string, accNum uint64) ([]byte, error) {
	doc := &types.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: accNum,
	}
	return codec.NewProtoCodec().Marshal(doc)
}
