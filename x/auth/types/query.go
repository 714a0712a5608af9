package types

import (
	"github.com/gogo/protobuf/proto"

	"github.com/babylonchain/chainkit/types/query"
)

// Query paths served by x/auth.
const (
	QueryPathAccount  = "/chainkit.auth.v1.Query/Account"
	QueryPathAccounts = "/chainkit.auth.v1.Query/Accounts"
	QueryPathParams   = "/chainkit.auth.v1.Query/Params"
)

// QueryAccountRequest is the request type for the Query/Account RPC method.
type QueryAccountRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryAccountRequest) Reset()                { *m = QueryAccountRequest{} }
func (m *QueryAccountRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryAccountRequest) ProtoMessage()           {}
func (*QueryAccountRequest) XXX_MessageName() string { return "chainkit.auth.v1.QueryAccountRequest" }

// QueryAccountResponse is the response type for the Query/Account RPC method.
type QueryAccountResponse struct {
	Account *BaseAccount `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
}

func (m *QueryAccountResponse) Reset()                { *m = QueryAccountResponse{} }
func (m *QueryAccountResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryAccountResponse) ProtoMessage()           {}
func (*QueryAccountResponse) XXX_MessageName() string { return "chainkit.auth.v1.QueryAccountResponse" }

// QueryAccountsRequest is the request type for the Query/Accounts RPC method.
type QueryAccountsRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryAccountsRequest) Reset()                { *m = QueryAccountsRequest{} }
func (m *QueryAccountsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryAccountsRequest) ProtoMessage()           {}
func (*QueryAccountsRequest) XXX_MessageName() string { return "chainkit.auth.v1.QueryAccountsRequest" }

// QueryAccountsResponse is the response type for the Query/Accounts RPC method.
type QueryAccountsResponse struct {
	Accounts   []*BaseAccount      `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryAccountsResponse) Reset()                { *m = QueryAccountsResponse{} }
func (m *QueryAccountsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryAccountsResponse) ProtoMessage()           {}
func (*QueryAccountsResponse) XXX_MessageName() string { return "chainkit.auth.v1.QueryAccountsResponse" }

// QueryParamsRequest is request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "chainkit.auth.v1.QueryParamsRequest" }

// QueryParamsResponse is response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "chainkit.auth.v1.QueryParamsResponse" }
