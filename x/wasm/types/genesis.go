package types

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/gogo/protobuf/proto"

	sdk "github.com/babylonchain/chainkit/types"
)

// GenesisState defines the wasm module's genesis state.
type GenesisState struct {
	Params    *Params     `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
	Codes     []*Code     `protobuf:"bytes,2,rep,name=codes,proto3" json:"codes,omitempty"`
	Contracts []*Contract `protobuf:"bytes,3,rep,name=contracts,proto3" json:"contracts,omitempty"`
	Sequences []*Sequence `protobuf:"bytes,4,rep,name=sequences,proto3" json:"sequences,omitempty"`
}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "chainkit.wasm.v1.GenesisState" }

// Code is an uploaded code blob with its metadata.
type Code struct {
	CodeID    uint64    `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	CodeInfo  *CodeInfo `protobuf:"bytes,2,opt,name=code_info,json=codeInfo,proto3" json:"code_info,omitempty"`
	CodeBytes []byte    `protobuf:"bytes,3,opt,name=code_bytes,json=codeBytes,proto3" json:"code_bytes,omitempty"`
}

func (m *Code) Reset()                { *m = Code{} }
func (m *Code) String() string        { return proto.CompactTextString(m) }
func (*Code) ProtoMessage()           {}
func (*Code) XXX_MessageName() string { return "chainkit.wasm.v1.Code" }

// Contract is an instantiated contract with its full storage.
type Contract struct {
	ContractAddress string        `protobuf:"bytes,1,opt,name=contract_address,json=contractAddress,proto3" json:"contract_address,omitempty"`
	ContractInfo    *ContractInfo `protobuf:"bytes,2,opt,name=contract_info,json=contractInfo,proto3" json:"contract_info,omitempty"`
	ContractState   []*Model      `protobuf:"bytes,3,rep,name=contract_state,json=contractState,proto3" json:"contract_state,omitempty"`
}

func (m *Contract) Reset()                { *m = Contract{} }
func (m *Contract) String() string        { return proto.CompactTextString(m) }
func (*Contract) ProtoMessage()           {}
func (*Contract) XXX_MessageName() string { return "chainkit.wasm.v1.Contract" }

// Sequence is the value of one id counter.
type Sequence struct {
	IDKey []byte `protobuf:"bytes,1,opt,name=id_key,json=idKey,proto3" json:"id_key,omitempty"`
	Value uint64 `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Sequence) Reset()                { *m = Sequence{} }
func (m *Sequence) String() string        { return proto.CompactTextString(m) }
func (*Sequence) ProtoMessage()           {}
func (*Sequence) XXX_MessageName() string { return "chainkit.wasm.v1.Sequence" }

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
		return fmt.Errorf("params: %w", err)
	}

	codeIDs := make(map[uint64]bool, len(gs.Codes))
	var maxCodeID uint64
	for i, c := range gs.Codes {
		if err := c.ValidateBasic(); err != nil {
			return fmt.Errorf("code %d: %w", i, err)
		}
		if codeIDs[c.CodeID] {
			return fmt.Errorf("duplicate code id %d", c.CodeID)
		}
		codeIDs[c.CodeID] = true
		if c.CodeID > maxCodeID {
			maxCodeID = c.CodeID
		}
	}

	addrs := make(map[string]bool, len(gs.Contracts))
	for i, c := range gs.Contracts {
		if err := c.ValidateBasic(); err != nil {
			return fmt.Errorf("contract %d: %w", i, err)
		}
		if addrs[c.ContractAddress] {
			return fmt.Errorf("duplicate contract %s", c.ContractAddress)
		}
		addrs[c.ContractAddress] = true
		if !codeIDs[c.ContractInfo.CodeID] {
			return fmt.Errorf("contract %s: unknown code id %d", c.ContractAddress, c.ContractInfo.CodeID)
		}
	}

	seqs := make(map[string]bool, len(gs.Sequences))
	for _, s := range gs.Sequences {
		if !bytes.Equal(s.IDKey, KeyLastCodeID) && !bytes.Equal(s.IDKey, KeyLastInstanceID) {
			return fmt.Errorf("unknown sequence key %X", s.IDKey)
		}
		if seqs[string(s.IDKey)] {
			return fmt.Errorf("duplicate sequence %X", s.IDKey)
		}
		seqs[string(s.IDKey)] = true
		if bytes.Equal(s.IDKey, KeyLastCodeID) && s.Value <= maxCodeID {
			return fmt.Errorf("sequence %X must exceed the largest code id %d", s.IDKey, maxCodeID)
		}
	}
	return nil
}

// ValidateBasic checks the code metadata against the blob.
func (c Code) ValidateBasic() error {
	if c.CodeID == 0 {
		return fmt.Errorf("code id must be positive")
	}
	if c.CodeInfo == nil {
		return fmt.Errorf("code info cannot be empty")
	}
	if err := c.CodeInfo.ValidateBasic(); err != nil {
		return err
	}
	if len(c.CodeBytes) == 0 {
		return fmt.Errorf("code bytes cannot be empty")
	}
	if sum := sha256.Sum256(c.CodeBytes); !bytes.Equal(sum[:], c.CodeInfo.Checksum) {
		return fmt.Errorf("checksum does not match code bytes")
	}
	return nil
}

// ValidateBasic checks the contract address and metadata.
func (c Contract) ValidateBasic() error {
	addr, err := sdk.AccAddressFromBech32(c.ContractAddress)
	if err != nil {
		return fmt.Errorf("contract address: %w", err)
	}
	if len(addr) != sdk.ContractAddrLen {
		return fmt.Errorf("contract address must be %d bytes", sdk.ContractAddrLen)
	}
	if c.ContractInfo == nil {
		return fmt.Errorf("contract info cannot be empty")
	}
	if err := c.ContractInfo.ValidateBasic(); err != nil {
		return err
	}
	for _, m := range c.ContractState {
		if len(m.Key) == 0 {
			return fmt.Errorf("contract state: empty key")
		}
	}
	return nil
}
