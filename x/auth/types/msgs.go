package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	sdk "github.com/babylonchain/chainkit/types"
)

var _ sdk.Msg = (*MsgUpdateParams)(nil)

// MsgUpdateParams replaces the auth params. Only the authority may send it.
type MsgUpdateParams struct {
	Authority string  `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	Params    *Params `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *MsgUpdateParams) Reset()                { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string        { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()           {}
func (*MsgUpdateParams) XXX_MessageName() string { return "chainkit.auth.v1.MsgUpdateParams" }

// GetSigners returns the expected signers for a MsgUpdateParams message.
func (m *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %v", err)
	}
	if m.Params == nil {
		return sdkerrors.Wrap(ErrInvalidParams, "params cannot be empty")
	}
	if err := m.Params.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}
