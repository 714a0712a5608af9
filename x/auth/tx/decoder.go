package tx

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// DefaultTxDecoder decodes TxRaw bytes. Only messages registered with cdc
// are accepted.
func DefaultTxDecoder(cdc codec.BinaryCodec) sdk.TxDecoder {
	return func(txBytes []byte) (sdk.Tx, error) {
		if len(txBytes) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrTxDecode, "tx bytes are empty")
		}

		var raw types.TxRaw
		if err := cdc.Unmarshal(txBytes, &raw); err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
		}

		var body types.TxBody
		if err := cdc.Unmarshal(raw.BodyBytes, &body); err != nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrTxDecode, "body: %v", err)
		}

		var authInfo types.AuthInfo
		if err := cdc.Unmarshal(raw.AuthInfoBytes, &authInfo); err != nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrTxDecode, "auth info: %v", err)
		}

		msgs := make([]sdk.Msg, 0, len(body.Messages))
		for _, any := range body.Messages {
			msg, err := cdc.UnpackMsg(any)
			if err != nil {
				return nil, err
			}
			msgs = append(msgs, msg)
		}

		return &Wrapper{
			raw:      &raw,
			body:     &body,
			authInfo: &authInfo,
			msgs:     msgs,
			size:     len(txBytes),
		}, nil
	}
}

// DefaultTxEncoder encodes a decoded transaction back to its wire form.
func DefaultTxEncoder(cdc codec.BinaryCodec) sdk.TxEncoder {
	return func(tx sdk.Tx) ([]byte, error) {
		w, ok := tx.(*Wrapper)
		if !ok {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidType, "expected %T, got %T", &Wrapper{}, tx)
		}
		return cdc.Marshal(w.raw)
	}
}
