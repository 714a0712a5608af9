package types

import (
	"fmt"

	"gopkg.in/yaml.v2"

	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// Default parameter values
const (
	DefaultMaxContractSize uint64 = 1_000_000
	DefaultQueryGasLimit   uint64 = 3_000_000
	DefaultMemoryCacheSize uint32 = 40
)

// Parameter store keys
var (
	KeyCodeUploadAccess             = []byte("CodeUploadAccess")
	KeyInstantiateDefaultPermission = []byte("InstantiateDefaultPermission")
	KeyMaxContractSize              = []byte("MaxContractSize")
	KeyQueryGasLimit                = []byte("QueryGasLimit")
	KeyMemoryCacheSize              = []byte("MemoryCacheSize")
)

var _ paramstypes.ParamSet = (*Params)(nil)

// Params defines the parameters for the wasm module.
type Params struct {
	CodeUploadAccess             AccessConfig `protobuf:"bytes,1,opt,name=code_upload_access,json=codeUploadAccess,proto3" json:"code_upload_access" yaml:"code_upload_access"`
	InstantiateDefaultPermission AccessType   `protobuf:"varint,2,opt,name=instantiate_default_permission,json=instantiateDefaultPermission,proto3,enum=chainkit.wasm.v1.AccessType" json:"instantiate_default_permission,omitempty" yaml:"instantiate_default_permission"`
	// MaxContractSize is the largest code blob MsgStoreCode accepts, in bytes.
	MaxContractSize uint64 `protobuf:"varint,3,opt,name=max_contract_size,json=maxContractSize,proto3" json:"max_contract_size,omitempty" yaml:"max_contract_size"`
	// QueryGasLimit bounds the gas of one smart query.
	QueryGasLimit uint64 `protobuf:"varint,4,opt,name=query_gas_limit,json=queryGasLimit,proto3" json:"query_gas_limit,omitempty" yaml:"query_gas_limit"`
	// MemoryCacheSize is the number of compiled codes the engine keeps.
	MemoryCacheSize uint32 `protobuf:"varint,5,opt,name=memory_cache_size,json=memoryCacheSize,proto3" json:"memory_cache_size,omitempty" yaml:"memory_cache_size"`
}

func (m *Params) Reset()                { *m = Params{} }
func (*Params) ProtoMessage()           {}
func (*Params) XXX_MessageName() string { return "chainkit.wasm.v1.Params" }

// ParamKeyTable the param key table for the wasm module
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		CodeUploadAccess:             AllowEverybody,
		InstantiateDefaultPermission: AccessTypeEverybody,
		MaxContractSize:              DefaultMaxContractSize,
		QueryGasLimit:                DefaultQueryGasLimit,
		MemoryCacheSize:              DefaultMemoryCacheSize,
	}
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeyCodeUploadAccess, &p.CodeUploadAccess, validateAccessConfig),
		paramstypes.NewParamSetPair(KeyInstantiateDefaultPermission, &p.InstantiateDefaultPermission, validateAccessType),
		paramstypes.NewParamSetPair(KeyMaxContractSize, &p.MaxContractSize, validatePositiveUint64("max contract size")),
		paramstypes.NewParamSetPair(KeyQueryGasLimit, &p.QueryGasLimit, validatePositiveUint64("query gas limit")),
		paramstypes.NewParamSetPair(KeyMemoryCacheSize, &p.MemoryCacheSize, validateMemoryCacheSize),
	}
}

func validateAccessConfig(i interface{}) error {
	v, ok := i.(AccessConfig)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return v.ValidateBasic()
}

func validateAccessType(i interface{}) error {
	a, ok := i.(AccessType)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	switch a {
	case AccessTypeNobody, AccessTypeEverybody, AccessTypeAnyOfAddresses:
		return nil
	case AccessTypeUnspecified:
		return fmt.Errorf("empty access type")
	default:
		return fmt.Errorf("unknown access type: %d", a)
	}
}

func validatePositiveUint64(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint64)
		if !ok {
			return fmt.Errorf("invalid parameter type: %T", i)
		}
		if v == 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}

func validateMemoryCacheSize(i interface{}) error {
	v, ok := i.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("memory cache size must be positive")
	}
	return nil
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateAccessConfig(p.CodeUploadAccess); err != nil {
		return fmt.Errorf("code upload access: %w", err)
	}
	if err := validateAccessType(p.InstantiateDefaultPermission); err != nil {
		return fmt.Errorf("instantiate default permission: %w", err)
	}
	if err := validatePositiveUint64("max contract size")(p.MaxContractSize); err != nil {
		return err
	}
	if err := validatePositiveUint64("query gas limit")(p.QueryGasLimit); err != nil {
		return err
	}
	return validateMemoryCacheSize(p.MemoryCacheSize)
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
