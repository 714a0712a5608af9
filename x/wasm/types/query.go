package types

import (
	"github.com/gogo/protobuf/proto"

	"github.com/babylonchain/chainkit/types/query"
)

// Query paths served by x/wasm.
const (
	QueryPathContractInfo       = "/chainkit.wasm.v1.Query/ContractInfo"
	QueryPathContractsByCode    = "/chainkit.wasm.v1.Query/ContractsByCode"
	QueryPathRawContractState   = "/chainkit.wasm.v1.Query/RawContractState"
	QueryPathSmartContractState = "/chainkit.wasm.v1.Query/SmartContractState"
	QueryPathCode               = "/chainkit.wasm.v1.Query/Code"
	QueryPathCodes              = "/chainkit.wasm.v1.Query/Codes"
	QueryPathParams             = "/chainkit.wasm.v1.Query/Params"
)

// QueryContractInfoRequest is the request type for the Query/ContractInfo RPC method.
type QueryContractInfoRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryContractInfoRequest) Reset()                { *m = QueryContractInfoRequest{} }
func (m *QueryContractInfoRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryContractInfoRequest) ProtoMessage()           {}
func (*QueryContractInfoRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryContractInfoRequest" }

// QueryContractInfoResponse is the response type for the Query/ContractInfo RPC method.
type QueryContractInfoResponse struct {
	Address      string        `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	ContractInfo *ContractInfo `protobuf:"bytes,2,opt,name=contract_info,json=contractInfo,proto3" json:"contract_info,omitempty"`
}

func (m *QueryContractInfoResponse) Reset()                { *m = QueryContractInfoResponse{} }
func (m *QueryContractInfoResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryContractInfoResponse) ProtoMessage()           {}
func (*QueryContractInfoResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryContractInfoResponse" }

// QueryContractsByCodeRequest is the request type for the Query/ContractsByCode RPC method.
type QueryContractsByCodeRequest struct {
	CodeID     uint64             `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Pagination *query.PageRequest `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryContractsByCodeRequest) Reset()                { *m = QueryContractsByCodeRequest{} }
func (m *QueryContractsByCodeRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryContractsByCodeRequest) ProtoMessage()           {}
func (*QueryContractsByCodeRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryContractsByCodeRequest" }

// QueryContractsByCodeResponse is the response type for the Query/ContractsByCode RPC method.
type QueryContractsByCodeResponse struct {
	Contracts  []string            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryContractsByCodeResponse) Reset()                { *m = QueryContractsByCodeResponse{} }
func (m *QueryContractsByCodeResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryContractsByCodeResponse) ProtoMessage()           {}
func (*QueryContractsByCodeResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryContractsByCodeResponse" }

// QueryRawContractStateRequest is the request type for the Query/RawContractState RPC method.
type QueryRawContractStateRequest struct {
	Address   string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	QueryData []byte `protobuf:"bytes,2,opt,name=query_data,json=queryData,proto3" json:"query_data,omitempty"`
}

func (m *QueryRawContractStateRequest) Reset()                { *m = QueryRawContractStateRequest{} }
func (m *QueryRawContractStateRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryRawContractStateRequest) ProtoMessage()           {}
func (*QueryRawContractStateRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryRawContractStateRequest" }

// QueryRawContractStateResponse is the response type for the Query/RawContractState RPC method.
type QueryRawContractStateResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *QueryRawContractStateResponse) Reset()                { *m = QueryRawContractStateResponse{} }
func (m *QueryRawContractStateResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryRawContractStateResponse) ProtoMessage()           {}
func (*QueryRawContractStateResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryRawContractStateResponse" }

// QuerySmartContractStateRequest is the request type for the Query/SmartContractState RPC method.
type QuerySmartContractStateRequest struct {
	Address   string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	QueryData []byte `protobuf:"bytes,2,opt,name=query_data,json=queryData,proto3" json:"query_data,omitempty"`
}

func (m *QuerySmartContractStateRequest) Reset()                { *m = QuerySmartContractStateRequest{} }
func (m *QuerySmartContractStateRequest) String() string        { return proto.CompactTextString(m) }
func (*QuerySmartContractStateRequest) ProtoMessage()           {}
func (*QuerySmartContractStateRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QuerySmartContractStateRequest" }

// QuerySmartContractStateResponse is the response type for the Query/SmartContractState RPC method.
type QuerySmartContractStateResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *QuerySmartContractStateResponse) Reset()                { *m = QuerySmartContractStateResponse{} }
func (m *QuerySmartContractStateResponse) String() string        { return proto.CompactTextString(m) }
func (*QuerySmartContractStateResponse) ProtoMessage()           {}
func (*QuerySmartContractStateResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QuerySmartContractStateResponse" }

// QueryCodeRequest is the request type for the Query/Code RPC method.
type QueryCodeRequest struct {
	CodeID uint64 `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
}

func (m *QueryCodeRequest) Reset()                { *m = QueryCodeRequest{} }
func (m *QueryCodeRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryCodeRequest) ProtoMessage()           {}
func (*QueryCodeRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryCodeRequest" }

// CodeInfoResponse is the code metadata returned by the Code and Codes queries.
type CodeInfoResponse struct {
	CodeID                uint64        `protobuf:"varint,1,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Creator               string        `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	Checksum              []byte        `protobuf:"bytes,3,opt,name=checksum,proto3" json:"checksum,omitempty"`
	InstantiatePermission *AccessConfig `protobuf:"bytes,4,opt,name=instantiate_permission,json=instantiatePermission,proto3" json:"instantiate_permission,omitempty"`
}

func (m *CodeInfoResponse) Reset()                { *m = CodeInfoResponse{} }
func (m *CodeInfoResponse) String() string        { return proto.CompactTextString(m) }
func (*CodeInfoResponse) ProtoMessage()           {}
func (*CodeInfoResponse) XXX_MessageName() string { return "chainkit.wasm.v1.CodeInfoResponse" }

// QueryCodeResponse is the response type for the Query/Code RPC method.
type QueryCodeResponse struct {
	CodeInfo *CodeInfoResponse `protobuf:"bytes,1,opt,name=code_info,json=codeInfo,proto3" json:"code_info,omitempty"`
	Data     []byte            `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *QueryCodeResponse) Reset()                { *m = QueryCodeResponse{} }
func (m *QueryCodeResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryCodeResponse) ProtoMessage()           {}
func (*QueryCodeResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryCodeResponse" }

// QueryCodesRequest is the request type for the Query/Codes RPC method.
type QueryCodesRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryCodesRequest) Reset()                { *m = QueryCodesRequest{} }
func (m *QueryCodesRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryCodesRequest) ProtoMessage()           {}
func (*QueryCodesRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryCodesRequest" }

// QueryCodesResponse is the response type for the Query/Codes RPC method.
type QueryCodesResponse struct {
	CodeInfos  []*CodeInfoResponse `protobuf:"bytes,1,rep,name=code_infos,json=codeInfos,proto3" json:"code_infos,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryCodesResponse) Reset()                { *m = QueryCodesResponse{} }
func (m *QueryCodesResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryCodesResponse) ProtoMessage()           {}
func (*QueryCodesResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryCodesResponse" }

// QueryParamsRequest is request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "chainkit.wasm.v1.QueryParamsRequest" }

// QueryParamsResponse is response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "chainkit.wasm.v1.QueryParamsResponse" }
