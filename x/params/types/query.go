package types

import (
	"github.com/gogo/protobuf/proto"
)

// Query paths served by x/params.
const (
	QueryPathParams    = "/chainkit.params.v1.Query/Params"
	QueryPathSubspaces = "/chainkit.params.v1.Query/Subspaces"
)

// ParamChange is one raw parameter value.
type ParamChange struct {
	Subspace string `protobuf:"bytes,1,opt,name=subspace,proto3" json:"subspace,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Value    string `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *ParamChange) Reset()                { *m = ParamChange{} }
func (m *ParamChange) String() string        { return proto.CompactTextString(m) }
func (*ParamChange) ProtoMessage()           {}
func (*ParamChange) XXX_MessageName() string { return "chainkit.params.v1.ParamChange" }

// QueryParamsRequest is the request type for the Query/Params method.
type QueryParamsRequest struct {
	Subspace string `protobuf:"bytes,1,opt,name=subspace,proto3" json:"subspace,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "chainkit.params.v1.QueryParamsRequest" }

// QueryParamsResponse is the response type for the Query/Params method.
type QueryParamsResponse struct {
	Param *ParamChange `protobuf:"bytes,1,opt,name=param,proto3" json:"param,omitempty"`
}

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "chainkit.params.v1.QueryParamsResponse" }

// SubspaceKeys lists the registered keys of one subspace.
type SubspaceKeys struct {
	Subspace string   `protobuf:"bytes,1,opt,name=subspace,proto3" json:"subspace,omitempty"`
	Keys     []string `protobuf:"bytes,2,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *SubspaceKeys) Reset()                { *m = SubspaceKeys{} }
func (m *SubspaceKeys) String() string        { return proto.CompactTextString(m) }
func (*SubspaceKeys) ProtoMessage()           {}
func (*SubspaceKeys) XXX_MessageName() string { return "chainkit.params.v1.Subspace" }

// QuerySubspacesRequest is the request type for the Query/Subspaces method.
type QuerySubspacesRequest struct{}

func (m *QuerySubspacesRequest) Reset()                { *m = QuerySubspacesRequest{} }
func (m *QuerySubspacesRequest) String() string        { return proto.CompactTextString(m) }
func (*QuerySubspacesRequest) ProtoMessage()           {}
func (*QuerySubspacesRequest) XXX_MessageName() string { return "chainkit.params.v1.QuerySubspacesRequest" }

// QuerySubspacesResponse is the response type for the Query/Subspaces method.
type QuerySubspacesResponse struct {
	Subspaces []*SubspaceKeys `protobuf:"bytes,1,rep,name=subspaces,proto3" json:"subspaces,omitempty"`
}

func (m *QuerySubspacesResponse) Reset()                { *m = QuerySubspacesResponse{} }
func (m *QuerySubspacesResponse) String() string        { return proto.CompactTextString(m) }
func (*QuerySubspacesResponse) ProtoMessage()           {}
func (*QuerySubspacesResponse) XXX_MessageName() string { return "chainkit.params.v1.QuerySubspacesResponse" }

// GenesisState is empty: every module stores its own params at genesis.
type GenesisState struct{}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "chainkit.params.v1.GenesisState" }
