package types

import (
	"github.com/gogo/protobuf/proto"
)

// Query paths served by x/mint.
const (
	QueryPathParams           = "/chainkit.mint.v1.Query/Params"
	QueryPathInflation        = "/chainkit.mint.v1.Query/Inflation"
	QueryPathAnnualProvisions = "/chainkit.mint.v1.Query/AnnualProvisions"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "chainkit.mint.v1.QueryParamsRequest" }

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "chainkit.mint.v1.QueryParamsResponse" }

// QueryInflationRequest is the request type for the Query/Inflation RPC method.
type QueryInflationRequest struct{}

func (m *QueryInflationRequest) Reset()                { *m = QueryInflationRequest{} }
func (m *QueryInflationRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryInflationRequest) ProtoMessage()           {}
func (*QueryInflationRequest) XXX_MessageName() string { return "chainkit.mint.v1.QueryInflationRequest" }

// QueryInflationResponse is the response type for the Query/Inflation RPC
// method.
type QueryInflationResponse struct {
	// Inflation is the yearly rate as a decimal string.
	Inflation string `protobuf:"bytes,1,opt,name=inflation,proto3" json:"inflation,omitempty"`
}

func (m *QueryInflationResponse) Reset()                { *m = QueryInflationResponse{} }
func (m *QueryInflationResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryInflationResponse) ProtoMessage()           {}
func (*QueryInflationResponse) XXX_MessageName() string { return "chainkit.mint.v1.QueryInflationResponse" }

// QueryAnnualProvisionsRequest is the request type for the
// Query/AnnualProvisions RPC method.
type QueryAnnualProvisionsRequest struct{}

func (m *QueryAnnualProvisionsRequest) Reset()                { *m = QueryAnnualProvisionsRequest{} }
func (m *QueryAnnualProvisionsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryAnnualProvisionsRequest) ProtoMessage()           {}
func (*QueryAnnualProvisionsRequest) XXX_MessageName() string { return "chainkit.mint.v1.QueryAnnualProvisionsRequest" }

// QueryAnnualProvisionsResponse is the response type for the
// Query/AnnualProvisions RPC method.
type QueryAnnualProvisionsResponse struct {
	AnnualProvisions string `protobuf:"bytes,1,opt,name=annual_provisions,json=annualProvisions,proto3" json:"annual_provisions,omitempty"`
}

func (m *QueryAnnualProvisionsResponse) Reset()                { *m = QueryAnnualProvisionsResponse{} }
func (m *QueryAnnualProvisionsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryAnnualProvisionsResponse) ProtoMessage()           {}
func (*QueryAnnualProvisionsResponse) XXX_MessageName() string { return "chainkit.mint.v1.QueryAnnualProvisionsResponse" }
