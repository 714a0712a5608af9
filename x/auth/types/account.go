package types

import (
	"errors"

	"github.com/gogo/protobuf/proto"
	"github.com/tendermint/tendermint/crypto/ed25519"

	sdk "github.com/babylonchain/chainkit/types"
)

// BaseAccount is the state of an externally owned account. PubKey is empty
// until the account signs its first transaction.
type BaseAccount struct {
	Address       string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty" yaml:"address"`
	PubKey        []byte `protobuf:"bytes,2,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty" yaml:"pub_key"`
	AccountNumber uint64 `protobuf:"varint,3,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty" yaml:"account_number"`
	Sequence      uint64 `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty" yaml:"sequence"`
}

func (m *BaseAccount) Reset()                { *m = BaseAccount{} }
func (m *BaseAccount) String() string        { return proto.CompactTextString(m) }
func (*BaseAccount) ProtoMessage()           {}
func (*BaseAccount) XXX_MessageName() string { return "chainkit.auth.v1.BaseAccount" }

// NewBaseAccount returns a fresh account without a public key.
func NewBaseAccount(addr sdk.AccAddress, accNum uint64) *BaseAccount {
	return &BaseAccount{
		Address:       addr.String(),
		AccountNumber: accNum,
	}
}

// GetAddress panics on a malformed address; stored accounts are validated.
func (m *BaseAccount) GetAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(m.Address)
}

// SetPubKey binds pk to the account. pk must hash to the account address.
func (m *BaseAccount) SetPubKey(pk []byte) error {
	if len(pk) != ed25519.PubKeySize {
		return errors.New("invalid ed25519 public key length")
	}
	if !m.GetAddress().Equals(AddressFromPubKey(pk)) {
		return errors.New("public key does not match account address")
	}
	m.PubKey = pk
	return nil
}

// Validate checks the address and the public key binding.
func (m BaseAccount) Validate() error {
	addr, err := sdk.AccAddressFromBech32(m.Address)
	if err != nil {
		return err
	}
	if len(m.PubKey) == 0 {
		return nil
	}
	if len(m.PubKey) != ed25519.PubKeySize {
		return errors.New("invalid ed25519 public key length")
	}
	if !addr.Equals(AddressFromPubKey(m.PubKey)) {
		return errors.New("account address and pubkey address do not match")
	}
	return nil
}

// AddressFromPubKey derives the account address of an ed25519 public key.
func AddressFromPubKey(pk []byte) sdk.AccAddress {
	return sdk.AccAddress(ed25519.PubKey(pk).Address())
}
