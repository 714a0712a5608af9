package app

import (
	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	authtx "github.com/babylonchain/chainkit/x/auth/tx"
)

// EncodingConfig bundles the codec and the transaction wire format.
type EncodingConfig struct {
	Codec     *codec.ProtoCodec
	TxDecoder sdk.TxDecoder
	TxEncoder sdk.TxEncoder
}

// MakeEncodingConfig returns a fresh encoding config. Messages are
// registered with its codec when the module manager is built.
func MakeEncodingConfig() EncodingConfig {
	cdc := codec.NewProtoCodec()
	return EncodingConfig{
		Codec:     cdc,
		TxDecoder: authtx.DefaultTxDecoder(cdc),
		TxEncoder: authtx.DefaultTxEncoder(cdc),
	}
}
