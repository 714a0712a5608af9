package tx

import (
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/types"
)

// Builder assembles and signs transactions.
type Builder struct {
	cdc codec.BinaryCodec

	msgs          []sdk.Msg
	memo          string
	timeoutHeight uint64
	fee           types.Fee
}

func NewBuilder(cdc codec.BinaryCodec) *Builder {
	return &Builder{cdc: cdc}
}

func (b *Builder) SetMsgs(msgs ...sdk.Msg) *Builder {
	b.msgs = msgs
	return b
}

func (b *Builder) SetMemo(memo string) *Builder {
	b.memo = memo
	return b
}

func (b *Builder) SetTimeoutHeight(height uint64) *Builder {
	b.timeoutHeight = height
	return b
}

func (b *Builder) SetFee(amount, gasLimit uint64) *Builder {
	b.fee = types.Fee{Amount: amount, GasLimit: gasLimit}
	return b
}

// Sign encodes the transaction signed by key for the account accNum at
// sequence seq.
func (b *Builder) Sign(key ed25519.PrivKey, chainID string, accNum, seq uint64) ([]byte, error) {
	body := &types.TxBody{Memo: b.memo, TimeoutHeight: b.timeoutHeight}
	for _, msg := range b.msgs {
		any, err := b.cdc.PackAny(msg)
		if err != nil {
			return nil, err
		}
		body.Messages = append(body.Messages, any)
	}
	bodyBytes, err := b.cdc.Marshal(body)
	if err != nil {
		return nil, err
	}

	fee := b.fee
	authInfo := &types.AuthInfo{
		PubKey:   key.PubKey().Bytes(),
		Sequence: seq,
		Fee:      &fee,
	}
	authInfoBytes, err := b.cdc.Marshal(authInfo)
	if err != nil {
		return nil, err
	}

	signBytes, err := SignBytes(bodyBytes, authInfoBytes, chainID, accNum)
	if err != nil {
		return nil, err
	}
	sig, err := key.Sign(signBytes)
	if err != nil {
		return nil, err
	}

	return b.cdc.Marshal(&types.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signature:     sig,
	})
}
