package types

import (
	"fmt"

	"gopkg.in/yaml.v2"

	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// Default parameter values
const (
	DefaultMaxMemoCharacters    uint64 = 256
	DefaultTxSizeCostPerByte    uint64 = 10
	DefaultSigVerifyCostED25519 uint64 = 590
	DefaultMinGasPriceMilli     uint64 = 0
)

// Parameter store keys
var (
	KeyMaxMemoCharacters    = []byte("MaxMemoCharacters")
	KeyTxSizeCostPerByte    = []byte("TxSizeCostPerByte")
	KeySigVerifyCostED25519 = []byte("SigVerifyCostED25519")
	KeyMinGasPriceMilli     = []byte("MinGasPriceMilli")
)

var _ paramstypes.ParamSet = (*Params)(nil)

// Params defines the parameters for the auth module.
type Params struct {
	MaxMemoCharacters    uint64 `protobuf:"varint,1,opt,name=max_memo_characters,json=maxMemoCharacters,proto3" json:"max_memo_characters,omitempty" yaml:"max_memo_characters"`
	TxSizeCostPerByte    uint64 `protobuf:"varint,2,opt,name=tx_size_cost_per_byte,json=txSizeCostPerByte,proto3" json:"tx_size_cost_per_byte,omitempty" yaml:"tx_size_cost_per_byte"`
	SigVerifyCostED25519 uint64 `protobuf:"varint,3,opt,name=sig_verify_cost_ed25519,json=sigVerifyCostEd25519,proto3" json:"sig_verify_cost_ed25519,omitempty" yaml:"sig_verify_cost_ed25519"`
	// MinGasPriceMilli is the consensus minimum fee per thousand gas units.
	MinGasPriceMilli uint64 `protobuf:"varint,4,opt,name=min_gas_price_milli,json=minGasPriceMilli,proto3" json:"min_gas_price_milli,omitempty" yaml:"min_gas_price_milli"`
}

func (m *Params) Reset()                { *m = Params{} }
func (*Params) ProtoMessage()           {}
func (*Params) XXX_MessageName() string { return "chainkit.auth.v1.Params" }

// ParamKeyTable the param key table for the auth module
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		MaxMemoCharacters:    DefaultMaxMemoCharacters,
		TxSizeCostPerByte:    DefaultTxSizeCostPerByte,
		SigVerifyCostED25519: DefaultSigVerifyCostED25519,
		MinGasPriceMilli:     DefaultMinGasPriceMilli,
	}
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeyMaxMemoCharacters, &p.MaxMemoCharacters, validatePositive("max memo characters")),
		paramstypes.NewParamSetPair(KeyTxSizeCostPerByte, &p.TxSizeCostPerByte, validatePositive("tx size cost per byte")),
		paramstypes.NewParamSetPair(KeySigVerifyCostED25519, &p.SigVerifyCostED25519, validatePositive("ed25519 signature verification cost")),
		paramstypes.NewParamSetPair(KeyMinGasPriceMilli, &p.MinGasPriceMilli, validateUint64),
	}
}

func validatePositive(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint64)
		if !ok {
			return fmt.Errorf("invalid parameter type: %T", i)
		}
		if v == 0 {
			return fmt.Errorf("invalid %s: %d", name, v)
		}
		return nil
	}
}

func validateUint64(i interface{}) error {
	if _, ok := i.(uint64); !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}

// Validate validates the set of params
func (p Params) Validate() error {
	for _, pair := range p.ParamSetPairs() {
		if err := pair.ValidatorFn(*pair.Value.(*uint64)); err != nil {
			return err
		}
	}
	return nil
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
