package types

import (
	"github.com/gogo/protobuf/proto"
)

// Msg is a state transition request carried by a transaction.
type Msg interface {
	proto.Message

	// ValidateBasic performs stateless checks.
	ValidateBasic() error

	// GetSigners returns the addresses that must sign the transaction.
	GetSigners() []AccAddress
}

// Tx is a decoded transaction.
type Tx interface {
	GetMsgs() []Msg
	ValidateBasic() error
}

// FeeTx is a transaction that declares its gas limit and fee.
type FeeTx interface {
	Tx
	GetGas() uint64
	GetFee() uint64
}

// TxDecoder decodes transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

// TxEncoder encodes a transaction.
type TxEncoder func(tx Tx) ([]byte, error)
