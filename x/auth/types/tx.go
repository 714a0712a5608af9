package types

import (
	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
)

// TxRaw is the wire form of a transaction. BodyBytes and AuthInfoBytes are
// kept as signed, so the signature is checked over the exact bytes received.
type TxRaw struct {
	BodyBytes     []byte `protobuf:"bytes,1,opt,name=body_bytes,json=bodyBytes,proto3" json:"body_bytes,omitempty"`
	AuthInfoBytes []byte `protobuf:"bytes,2,opt,name=auth_info_bytes,json=authInfoBytes,proto3" json:"auth_info_bytes,omitempty"`
	Signature     []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *TxRaw) Reset()                { *m = TxRaw{} }
func (m *TxRaw) String() string        { return proto.CompactTextString(m) }
func (*TxRaw) ProtoMessage()           {}
func (*TxRaw) XXX_MessageName() string { return "chainkit.tx.v1.TxRaw" }

// TxBody holds the messages of a transaction.
type TxBody struct {
	Messages      []*gogotypes.Any `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Memo          string           `protobuf:"bytes,2,opt,name=memo,proto3" json:"memo,omitempty"`
	TimeoutHeight uint64           `protobuf:"varint,3,opt,name=timeout_height,json=timeoutHeight,proto3" json:"timeout_height,omitempty"`
}

func (m *TxBody) Reset()                { *m = TxBody{} }
func (m *TxBody) String() string        { return proto.CompactTextString(m) }
func (*TxBody) ProtoMessage()           {}
func (*TxBody) XXX_MessageName() string { return "chainkit.tx.v1.TxBody" }

// Fee is the fee paid for a transaction and its gas limit.
type Fee struct {
	Amount   uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	GasLimit uint64 `protobuf:"varint,2,opt,name=gas_limit,json=gasLimit,proto3" json:"gas_limit,omitempty"`
}

func (m *Fee) Reset()                { *m = Fee{} }
func (m *Fee) String() string        { return proto.CompactTextString(m) }
func (*Fee) ProtoMessage()           {}
func (*Fee) XXX_MessageName() string { return "chainkit.tx.v1.Fee" }

func (m *Fee) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Fee) GetGasLimit() uint64 {
	if m != nil {
		return m.GasLimit
	}
	return 0
}

// AuthInfo identifies the signer and the fee of a transaction.
type AuthInfo struct {
	PubKey   []byte `protobuf:"bytes,1,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	Sequence uint64 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Fee      *Fee   `protobuf:"bytes,3,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *AuthInfo) Reset()                { *m = AuthInfo{} }
func (m *AuthInfo) String() string        { return proto.CompactTextString(m) }
func (*AuthInfo) ProtoMessage()           {}
func (*AuthInfo) XXX_MessageName() string { return "chainkit.tx.v1.AuthInfo" }

// SignDoc is the document signed by the transaction signer.
type SignDoc struct {
	BodyBytes     []byte `protobuf:"bytes,1,opt,name=body_bytes,json=bodyBytes,proto3" json:"body_bytes,omitempty"`
	AuthInfoBytes []byte `protobuf:"bytes,2,opt,name=auth_info_bytes,json=authInfoBytes,proto3" json:"auth_info_bytes,omitempty"`
	ChainId       string `protobuf:"bytes,3,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	AccountNumber uint64 `protobuf:"varint,4,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
}

func (m *SignDoc) Reset()                { *m = SignDoc{} }
func (m *SignDoc) String() string        { return proto.CompactTextString(m) }
func (*SignDoc) ProtoMessage()           {}
func (*SignDoc) XXX_MessageName() string { return "chainkit.tx.v1.SignDoc" }
