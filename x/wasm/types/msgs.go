package types

import (
	"encoding/json"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	sdk "github.com/babylonchain/chainkit/types"
)

var (
	_ sdk.Msg = (*MsgStoreCode)(nil)
	_ sdk.Msg = (*MsgInstantiateContract)(nil)
	_ sdk.Msg = (*MsgExecuteContract)(nil)
	_ sdk.Msg = (*MsgMigrateContract)(nil)
	_ sdk.Msg = (*MsgUpdateAdmin)(nil)
	_ sdk.Msg = (*MsgClearAdmin)(nil)
	_ sdk.Msg = (*MsgUpdateParams)(nil)
)

// MsgStoreCode uploads a code blob.
type MsgStoreCode struct {
	Sender       string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	WASMByteCode []byte `protobuf:"bytes,2,opt,name=wasm_byte_code,json=wasmByteCode,proto3" json:"wasm_byte_code,omitempty"`
	// InstantiatePermission overrides the default instantiate permission.
	InstantiatePermission *AccessConfig `protobuf:"bytes,3,opt,name=instantiate_permission,json=instantiatePermission,proto3" json:"instantiate_permission,omitempty"`
}

func (m *MsgStoreCode) Reset()                { *m = MsgStoreCode{} }
func (m *MsgStoreCode) String() string        { return proto.CompactTextString(m) }
func (*MsgStoreCode) ProtoMessage()           {}
func (*MsgStoreCode) XXX_MessageName() string { return "chainkit.wasm.v1.MsgStoreCode" }

func (m *MsgStoreCode) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgStoreCode) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if len(m.WASMByteCode) == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "code bytes: empty")
	}
	if m.InstantiatePermission != nil {
		if err := m.InstantiatePermission.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "instantiate permission")
		}
	}
	return nil
}

// MsgStoreCodeResponse returns the id and checksum of the stored code.
type MsgStoreCodeResponse struct {
	CodeID   uint64 `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Checksum []byte `protobuf:"bytes,2,opt,name=checksum,proto3" json:"checksum,omitempty"`
}

func (m *MsgStoreCodeResponse) Reset()                { *m = MsgStoreCodeResponse{} }
func (m *MsgStoreCodeResponse) String() string        { return proto.CompactTextString(m) }
func (*MsgStoreCodeResponse) ProtoMessage()           {}
func (*MsgStoreCodeResponse) XXX_MessageName() string { return "chainkit.wasm.v1.MsgStoreCodeResponse" }

// MsgInstantiateContract creates a contract from uploaded code.
type MsgInstantiateContract struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	// Admin may migrate the contract. It is optional.
	Admin  string `protobuf:"bytes,2,opt,name=admin,proto3" json:"admin,omitempty"`
	CodeID uint64 `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Label  string `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	// Msg is the JSON encoded instantiate message of the contract.
	Msg []byte `protobuf:"bytes,5,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *MsgInstantiateContract) Reset()                { *m = MsgInstantiateContract{} }
func (m *MsgInstantiateContract) String() string        { return proto.CompactTextString(m) }
func (*MsgInstantiateContract) ProtoMessage()           {}
func (*MsgInstantiateContract) XXX_MessageName() string { return "chainkit.wasm.v1.MsgInstantiateContract" }

func (m *MsgInstantiateContract) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgInstantiateContract) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if m.CodeID == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "code id is required")
	}
	if err := ValidateLabel(m.Label); err != nil {
		return err
	}
	if len(m.Admin) != 0 {
		if err := validateAddress("admin", m.Admin); err != nil {
			return err
		}
	}
	return validateContractMsg(m.Msg)
}

// MsgInstantiateContractResponse returns the address of the new contract
// and the data it returned.
type MsgInstantiateContractResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Data    []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MsgInstantiateContractResponse) Reset()                { *m = MsgInstantiateContractResponse{} }
func (m *MsgInstantiateContractResponse) String() string        { return proto.CompactTextString(m) }
func (*MsgInstantiateContractResponse) ProtoMessage()           {}
func (*MsgInstantiateContractResponse) XXX_MessageName() string { return "chainkit.wasm.v1.MsgInstantiateContractResponse" }

// MsgExecuteContract calls a contract.
type MsgExecuteContract struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract string `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	// Msg is the JSON encoded execute message of the contract.
	Msg []byte `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *MsgExecuteContract) Reset()                { *m = MsgExecuteContract{} }
func (m *MsgExecuteContract) String() string        { return proto.CompactTextString(m) }
func (*MsgExecuteContract) ProtoMessage()           {}
func (*MsgExecuteContract) XXX_MessageName() string { return "chainkit.wasm.v1.MsgExecuteContract" }

func (m *MsgExecuteContract) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgExecuteContract) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if err := validateAddress("contract", m.Contract); err != nil {
		return err
	}
	return validateContractMsg(m.Msg)
}

// MsgExecuteContractResponse returns the data of the call.
type MsgExecuteContractResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MsgExecuteContractResponse) Reset()                { *m = MsgExecuteContractResponse{} }
func (m *MsgExecuteContractResponse) String() string        { return proto.CompactTextString(m) }
func (*MsgExecuteContractResponse) ProtoMessage()           {}
func (*MsgExecuteContractResponse) XXX_MessageName() string { return "chainkit.wasm.v1.MsgExecuteContractResponse" }

// MsgMigrateContract moves a contract to new code. Only the admin may send it.
type MsgMigrateContract struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract string `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	CodeID   uint64 `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	// Msg is the JSON encoded migrate message of the contract.
	Msg []byte `protobuf:"bytes,4,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *MsgMigrateContract) Reset()                { *m = MsgMigrateContract{} }
func (m *MsgMigrateContract) String() string        { return proto.CompactTextString(m) }
func (*MsgMigrateContract) ProtoMessage()           {}
func (*MsgMigrateContract) XXX_MessageName() string { return "chainkit.wasm.v1.MsgMigrateContract" }

func (m *MsgMigrateContract) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgMigrateContract) ValidateBasic() error {
	if m.CodeID == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "code id is required")
	}
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if err := validateAddress("contract", m.Contract); err != nil {
		return err
	}
	return validateContractMsg(m.Msg)
}

// MsgMigrateContractResponse returns the data of the migration.
type MsgMigrateContractResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MsgMigrateContractResponse) Reset()                { *m = MsgMigrateContractResponse{} }
func (m *MsgMigrateContractResponse) String() string        { return proto.CompactTextString(m) }
func (*MsgMigrateContractResponse) ProtoMessage()           {}
func (*MsgMigrateContractResponse) XXX_MessageName() string { return "chainkit.wasm.v1.MsgMigrateContractResponse" }

// MsgUpdateAdmin hands the admin role of a contract to another address.
type MsgUpdateAdmin struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	NewAdmin string `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
	Contract string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (m *MsgUpdateAdmin) Reset()                { *m = MsgUpdateAdmin{} }
func (m *MsgUpdateAdmin) String() string        { return proto.CompactTextString(m) }
func (*MsgUpdateAdmin) ProtoMessage()           {}
func (*MsgUpdateAdmin) XXX_MessageName() string { return "chainkit.wasm.v1.MsgUpdateAdmin" }

func (m *MsgUpdateAdmin) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgUpdateAdmin) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if err := validateAddress("contract", m.Contract); err != nil {
		return err
	}
	if err := validateAddress("new admin", m.NewAdmin); err != nil {
		return err
	}
	if m.Sender == m.NewAdmin {
		return sdkerrors.Wrap(ErrInvalidRequest, "new admin is the same as the old")
	}
	return nil
}

// MsgClearAdmin removes the admin of a contract, making it immutable.
type MsgClearAdmin struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (m *MsgClearAdmin) Reset()                { *m = MsgClearAdmin{} }
func (m *MsgClearAdmin) String() string        { return proto.CompactTextString(m) }
func (*MsgClearAdmin) ProtoMessage()           {}
func (*MsgClearAdmin) XXX_MessageName() string { return "chainkit.wasm.v1.MsgClearAdmin" }

func (m *MsgClearAdmin) GetSigners() []sdk.AccAddress {
	return signers(m.Sender)
}

func (m *MsgClearAdmin) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	return validateAddress("contract", m.Contract)
}

// MsgUpdateParams replaces the wasm params. Only the authority may send it.
type MsgUpdateParams struct {
	Authority string  `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	Params    *Params `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *MsgUpdateParams) Reset()                { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string        { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()           {}
func (*MsgUpdateParams) XXX_MessageName() string { return "chainkit.wasm.v1.MsgUpdateParams" }

func (m *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	return signers(m.Authority)
}

func (m *MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Params == nil {
		return sdkerrors.Wrap(ErrInvalidRequest, "params cannot be empty")
	}
	if err := m.Params.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidRequest, err.Error())
	}
	return nil
}

func signers(addr string) []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{signer}
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "%s: %v", field, err)
	}
	return nil
}

func validateContractMsg(msg []byte) error {
	if len(msg) == 0 {
		return sdkerrors.Wrap(ErrInvalidRequest, "msg: empty")
	}
	if !json.Valid(msg) {
		return sdkerrors.Wrap(ErrInvalidRequest, "msg: invalid json")
	}
	return nil
}

// MsgServer handles the wasm messages.
type MsgServer interface {
	StoreCode(ctx *sdk.TxContext, msg *MsgStoreCode) (*MsgStoreCodeResponse, error)
	InstantiateContract(ctx *sdk.TxContext, msg *MsgInstantiateContract) (*MsgInstantiateContractResponse, error)
	ExecuteContract(ctx *sdk.TxContext, msg *MsgExecuteContract) (*MsgExecuteContractResponse, error)
	MigrateContract(ctx *sdk.TxContext, msg *MsgMigrateContract) (*MsgMigrateContractResponse, error)
	UpdateAdmin(ctx *sdk.TxContext, msg *MsgUpdateAdmin) error
	ClearAdmin(ctx *sdk.TxContext, msg *MsgClearAdmin) error
	UpdateParams(ctx *sdk.TxContext, msg *MsgUpdateParams) error
}
