package types

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// GenesisState defines the mint module's genesis state.
type GenesisState struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
	Minter *Minter `protobuf:"bytes,2,opt,name=minter,proto3" json:"minter,omitempty"`
}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "chainkit.mint.v1.GenesisState" }

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, minter Minter) *GenesisState {
	return &GenesisState{Params: &params, Minter: &minter}
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), DefaultMinter())
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
	if gs.Minter == nil {
		return fmt.Errorf("minter cannot be empty")
	}
	return gs.Minter.Validate()
}
