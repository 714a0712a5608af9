package types

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// GenesisState defines the auth module's genesis state.
type GenesisState struct {
	Params   *Params        `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
	Accounts []*BaseAccount `protobuf:"bytes,2,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "chainkit.auth.v1.GenesisState" }

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	p := DefaultParams()
	return &GenesisState{
		Params: &p,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Params == nil {
		return fmt.Errorf("params cannot be empty")
	}
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	addrs := make(map[string]bool, len(gs.Accounts))
	numbers := make(map[uint64]bool, len(gs.Accounts))
	for _, acc := range gs.Accounts {
		if err := acc.Validate(); err != nil {
			return fmt.Errorf("invalid account %s: %w", acc.Address, err)
		}
		if addrs[acc.Address] {
			return fmt.Errorf("duplicate account %s", acc.Address)
		}
		if numbers[acc.AccountNumber] {
			return fmt.Errorf("duplicate account number %d", acc.AccountNumber)
		}
		addrs[acc.Address] = true
		numbers[acc.AccountNumber] = true
	}
	return nil
}
