package types

import (
	"fmt"

	sdkmath "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
)

// DefaultInitialSupply is the supply of the default genesis minter.
const DefaultInitialSupply = 1_000_000_000_000

// Minter tracks the minted supply. Amounts are base-10 integers.
type Minter struct {
	Supply           string `protobuf:"bytes,1,opt,name=supply,proto3" json:"supply,omitempty" yaml:"supply"`
	AnnualProvisions string `protobuf:"bytes,2,opt,name=annual_provisions,json=annualProvisions,proto3" json:"annual_provisions,omitempty" yaml:"annual_provisions"`
	TotalMinted      string `protobuf:"bytes,3,opt,name=total_minted,json=totalMinted,proto3" json:"total_minted,omitempty" yaml:"total_minted"`
}

func (m *Minter) Reset()                { *m = Minter{} }
func (m *Minter) String() string        { return proto.CompactTextString(m) }
func (*Minter) ProtoMessage()           {}
func (*Minter) XXX_MessageName() string { return "chainkit.mint.v1.Minter" }

// NewMinter returns a new Minter object.
func NewMinter(supply, annualProvisions, totalMinted sdkmath.Int) Minter {
	return Minter{
		Supply:           supply.String(),
		AnnualProvisions: annualProvisions.String(),
		TotalMinted:      totalMinted.String(),
	}
}

// InitialMinter returns a minter over supply that has minted nothing yet.
func InitialMinter(supply sdkmath.Int) Minter {
	return NewMinter(supply, sdkmath.ZeroInt(), sdkmath.ZeroInt())
}

// DefaultMinter returns a Minter object with default values.
func DefaultMinter() Minter {
	return InitialMinter(sdkmath.NewInt(DefaultInitialSupply))
}

func parseAmount(name, s string) (sdkmath.Int, error) {
	v, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("%s: invalid amount %q", name, s)
	}
	if v.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("%s: negative amount %s", name, s)
	}
	return v, nil
}

// Amounts returns the parsed supply, annual provisions and total minted.
func (m Minter) Amounts() (supply, annualProvisions, totalMinted sdkmath.Int, err error) {
	if supply, err = parseAmount("supply", m.Supply); err != nil {
		return
	}
	if annualProvisions, err = parseAmount("annual provisions", m.AnnualProvisions); err != nil {
		return
	}
	totalMinted, err = parseAmount("total minted", m.TotalMinted)
	return
}

// Validate returns an error if the minter is invalid.
func (m Minter) Validate() error {
	supply, _, totalMinted, err := m.Amounts()
	if err != nil {
		return err
	}
	if totalMinted.GT(supply) {
		return fmt.Errorf("total minted %s exceeds supply %s", totalMinted, supply)
	}
	return nil
}

// Inflation returns the yearly inflation rate of params.
func Inflation(params Params) sdkmath.Dec {
	return sdkmath.NewDecWithPrec(int64(params.InflationBps), 4)
}

// NextAnnualProvisions returns the yearly provisions at the current supply.
func NextAnnualProvisions(params Params, supply sdkmath.Int) sdkmath.Int {
	return supply.Mul(sdkmath.NewIntFromUint64(params.InflationBps)).QuoRaw(BpsPerUnit)
}

// BlockProvision returns the amount minted in one block at the current
// supply, truncated.
func BlockProvision(params Params, supply sdkmath.Int) sdkmath.Int {
	return NextAnnualProvisions(params, supply).Quo(sdkmath.NewIntFromUint64(params.BlocksPerYear))
}

// Mint returns the minter after minting provision at params.
func (m Minter) Mint(params Params) (Minter, sdkmath.Int, error) {
	supply, _, totalMinted, err := m.Amounts()
	if err != nil {
		return m, sdkmath.Int{}, err
	}
	annual := NextAnnualProvisions(params, supply)
	provision := annual.Quo(sdkmath.NewIntFromUint64(params.BlocksPerYear))
	return NewMinter(supply.Add(provision), annual, totalMinted.Add(provision)), provision, nil
}
