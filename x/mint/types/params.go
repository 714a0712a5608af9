package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	paramstypes "github.com/babylonchain/chainkit/x/params/types"
)

// BpsPerUnit is the number of basis points in one.
const BpsPerUnit = 10_000

// Default parameter values
const (
	DefaultMintDenom     = "ustake"
	DefaultInflationBps  = uint64(500)
	DefaultBlocksPerYear = uint64(60 * 60 * 8766 / 5) // assuming 5 second blocks
)

// Parameter store keys
var (
	KeyMintDenom     = []byte("MintDenom")
	KeyInflationBps  = []byte("InflationBps")
	KeyBlocksPerYear = []byte("BlocksPerYear")
)

var _ paramstypes.ParamSet = (*Params)(nil)

// Params defines the parameters for the mint module.
type Params struct {
	MintDenom string `protobuf:"bytes,1,opt,name=mint_denom,json=mintDenom,proto3" json:"mint_denom,omitempty" yaml:"mint_denom"`
	// InflationBps is the yearly inflation in basis points of the supply.
	InflationBps  uint64 `protobuf:"varint,2,opt,name=inflation_bps,json=inflationBps,proto3" json:"inflation_bps,omitempty" yaml:"inflation_bps"`
	BlocksPerYear uint64 `protobuf:"varint,3,opt,name=blocks_per_year,json=blocksPerYear,proto3" json:"blocks_per_year,omitempty" yaml:"blocks_per_year"`
}

func (m *Params) Reset()                { *m = Params{} }
func (*Params) ProtoMessage()           {}
func (*Params) XXX_MessageName() string { return "chainkit.mint.v1.Params" }

// ParamKeyTable the param key table for the mint module
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(mintDenom string, inflationBps, blocksPerYear uint64) Params {
	return Params{
		MintDenom:     mintDenom,
		InflationBps:  inflationBps,
		BlocksPerYear: blocksPerYear,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultMintDenom, DefaultInflationBps, DefaultBlocksPerYear)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeyMintDenom, &p.MintDenom, validateMintDenom),
		paramstypes.NewParamSetPair(KeyInflationBps, &p.InflationBps, validateInflationBps),
		paramstypes.NewParamSetPair(KeyBlocksPerYear, &p.BlocksPerYear, validateBlocksPerYear),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateMintDenom(p.MintDenom); err != nil {
		return err
	}
	if err := validateInflationBps(p.InflationBps); err != nil {
		return err
	}
	return validateBlocksPerYear(p.BlocksPerYear)
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

func validateMintDenom(i interface{}) error {
	v, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("mint denom cannot be blank")
	}
	if strings.ContainsAny(v, " \t\n\r") {
		return fmt.Errorf("mint denom cannot contain whitespace")
	}
	return nil
}

func validateInflationBps(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v > BpsPerUnit {
		return fmt.Errorf("inflation too large: %d bps", v)
	}
	return nil
}

func validateBlocksPerYear(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("blocks per year must be positive")
	}
	return nil
}
