package types

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	sdk "github.com/babylonchain/chainkit/types"
)

// ChecksumLen is the length of a code checksum.
const ChecksumLen = 32

// MaxLabelSize is the longest contract label accepted.
const MaxLabelSize = 128

// CodeInfo is the metadata of an uploaded code blob.
type CodeInfo struct {
	// Checksum is the sha256 of the code blob and its key in the engine.
	Checksum          []byte       `protobuf:"bytes,1,opt,name=checksum,proto3" json:"checksum,omitempty"`
	Creator           string       `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	InstantiateConfig AccessConfig `protobuf:"bytes,3,opt,name=instantiate_config,json=instantiateConfig,proto3" json:"instantiate_config"`
}

func (m *CodeInfo) Reset()                { *m = CodeInfo{} }
func (m *CodeInfo) String() string        { return proto.CompactTextString(m) }
func (*CodeInfo) ProtoMessage()           {}
func (*CodeInfo) XXX_MessageName() string { return "chainkit.wasm.v1.CodeInfo" }

// NewCodeInfo fills a new CodeInfo struct
func NewCodeInfo(checksum []byte, creator sdk.AccAddress, instantiatePermission AccessConfig) CodeInfo {
	return CodeInfo{
		Checksum:          checksum,
		Creator:           creator.String(),
		InstantiateConfig: instantiatePermission,
	}
}

// ValidateBasic performs stateless checks.
func (c CodeInfo) ValidateBasic() error {
	if len(c.Checksum) != ChecksumLen {
		return sdkerrors.Wrapf(ErrInvalidCode, "checksum length %d", len(c.Checksum))
	}
	if _, err := sdk.AccAddressFromBech32(c.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "creator: %v", err)
	}
	if err := c.InstantiateConfig.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "instantiate config")
	}
	return nil
}

// ContractInfo is the metadata of an instantiated contract.
type ContractInfo struct {
	CodeID  uint64 `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Creator string `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	// Admin may migrate the contract. Empty means the contract is immutable.
	Admin string `protobuf:"bytes,3,opt,name=admin,proto3" json:"admin,omitempty"`
	Label string `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	// Created is the block height of the instantiation.
	Created int64 `protobuf:"varint,5,opt,name=created,proto3" json:"created,omitempty"`
}

func (m *ContractInfo) Reset()                { *m = ContractInfo{} }
func (m *ContractInfo) String() string        { return proto.CompactTextString(m) }
func (*ContractInfo) ProtoMessage()           {}
func (*ContractInfo) XXX_MessageName() string { return "chainkit.wasm.v1.ContractInfo" }

// NewContractInfo creates a new instance of a given WASM contract info
func NewContractInfo(codeID uint64, creator, admin sdk.AccAddress, label string, created int64) ContractInfo {
	var adminAddr string
	if !admin.Empty() {
		adminAddr = admin.String()
	}
	return ContractInfo{
		CodeID:  codeID,
		Creator: creator.String(),
		Admin:   adminAddr,
		Label:   label,
		Created: created,
	}
}

// ValidateBasic performs stateless checks.
func (c ContractInfo) ValidateBasic() error {
	if c.CodeID == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "code id")
	}
	if _, err := sdk.AccAddressFromBech32(c.Creator); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "creator: %v", err)
	}
	if len(c.Admin) != 0 {
		if _, err := sdk.AccAddressFromBech32(c.Admin); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "admin: %v", err)
		}
	}
	return ValidateLabel(c.Label)
}

// AdminAddr returns the admin address, or nil for an immutable contract.
func (c ContractInfo) AdminAddr() sdk.AccAddress {
	if c.Admin == "" {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(c.Admin)
	if err != nil {
		panic(err)
	}
	return addr
}

// ValidateLabel rejects blank and oversized labels.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return sdkerrors.Wrap(ErrInvalidRequest, "label is required")
	}
	if len(label) > MaxLabelSize {
		return sdkerrors.Wrapf(ErrInvalidRequest, "label cannot be longer than %d characters", MaxLabelSize)
	}
	return nil
}

// Model is one raw key-value pair of a contract's storage.
type Model struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Model) Reset()                { *m = Model{} }
func (m *Model) String() string        { return proto.CompactTextString(m) }
func (*Model) ProtoMessage()           {}
func (*Model) XXX_MessageName() string { return "chainkit.wasm.v1.Model" }
