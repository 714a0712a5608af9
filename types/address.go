package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/tmhash"
)

const (
	// Bech32PrefixAccAddr is the human readable part of account addresses.
	Bech32PrefixAccAddr = "chain"

	// AddrLen is the length of account addresses derived from public keys.
	AddrLen = tmhash.TruncatedSize
	// ContractAddrLen is the length of contract addresses.
	ContractAddrLen = 32
)

// AccAddress is the raw byte form of an account or contract address.
type AccAddress []byte

// AccAddressFromBech32 parses a bech32 address with the account prefix.
func AccAddressFromBech32(address string) (AccAddress, error) {
	if len(address) == 0 {
		return nil, errors.New("empty address string is not allowed")
	}

	hrp, bz, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return nil, err
	}
	if hrp != Bech32PrefixAccAddr {
		return nil, fmt.Errorf("invalid Bech32 prefix; expected %s, got %s", Bech32PrefixAccAddr, hrp)
	}
	if err := VerifyAddressFormat(bz); err != nil {
		return nil, err
	}
	return AccAddress(bz), nil
}

// MustAccAddressFromBech32 panics on an invalid address.
func MustAccAddressFromBech32(address string) AccAddress {
	addr, err := AccAddressFromBech32(address)
	if err != nil {
		panic(err)
	}
	return addr
}

// VerifyAddressFormat accepts account and contract address lengths.
func VerifyAddressFormat(bz []byte) error {
	if len(bz) != AddrLen && len(bz) != ContractAddrLen {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownAddress, "address length must be %d or %d, got %d", AddrLen, ContractAddrLen, len(bz))
	}
	return nil
}

// NewModuleAddress derives the address of a module account.
func NewModuleAddress(name string) AccAddress {
	return AccAddress(tmhash.SumTruncated([]byte(name)))
}

func (aa AccAddress) Empty() bool {
	return len(aa) == 0
}

func (aa AccAddress) Equals(other AccAddress) bool {
	return bytes.Equal(aa, other)
}

func (aa AccAddress) Bytes() []byte {
	return aa
}

func (aa AccAddress) String() string {
	if aa.Empty() {
		return ""
	}
	bech32Addr, err := bech32.ConvertAndEncode(Bech32PrefixAccAddr, aa)
	if err != nil {
		panic(err)
	}
	return bech32Addr
}
