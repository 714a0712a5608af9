package types

import (
	"fmt"
	"math"
	"math/bits"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Gas measures computation and storage cost.
type Gas = uint64

// Gas consumption descriptors.
const (
	GasIterNextCostFlatDesc = "IterNextFlat"
	GasValuePerByteDesc     = "ValuePerByte"
	GasWritePerByteDesc     = "WritePerByte"
	GasReadPerByteDesc      = "ReadPerByte"
	GasWriteCostFlatDesc    = "WriteFlat"
	GasReadCostFlatDesc     = "ReadFlat"
	GasHasDesc              = "Has"
	GasDeleteDesc           = "Delete"
)

// GasMeter tracks gas consumed against a limit.
type GasMeter interface {
	GasConsumed() Gas
	GasConsumedToLimit() Gas
	GasRemaining() Gas
	Limit() Gas
	// ConsumeGas charges amount or fails without consuming anything.
	ConsumeGas(amount Gas, descriptor string) error
	// RefundGas gives back previously consumed gas.
	RefundGas(amount Gas, descriptor string)
	IsPastLimit() bool
	IsOutOfGas() bool
	String() string
}

type basicGasMeter struct {
	limit    Gas
	consumed Gas
}

// NewGasMeter returns a meter bounded by limit.
func NewGasMeter(limit Gas) GasMeter {
	return &basicGasMeter{limit: limit}
}

func (g *basicGasMeter) GasConsumed() Gas {
	return g.consumed
}

func (g *basicGasMeter) GasRemaining() Gas {
	if g.IsPastLimit() {
		return 0
	}
	return g.limit - g.consumed
}

func (g *basicGasMeter) Limit() Gas {
	return g.limit
}

func (g *basicGasMeter) GasConsumedToLimit() Gas {
	if g.IsPastLimit() {
		return g.limit
	}
	return g.consumed
}

func (g *basicGasMeter) ConsumeGas(amount Gas, descriptor string) error {
	consumed, carry := bits.Add64(g.consumed, amount, 0)
	if carry != 0 {
		return sdkerrors.Wrap(ErrGasOverflow, descriptor)
	}
	if consumed > g.limit {
		return sdkerrors.Wrapf(sdkerrors.ErrOutOfGas, "out of gas in location: %s; gasWanted: %d, gasUsed: %d",
			descriptor, g.limit, g.consumed)
	}
	g.consumed = consumed
	return nil
}

func (g *basicGasMeter) RefundGas(amount Gas, descriptor string) {
	if g.consumed < amount {
		panic(fmt.Sprintf("negative gas refund in %s", descriptor))
	}
	g.consumed -= amount
}

func (g *basicGasMeter) IsPastLimit() bool {
	return g.consumed > g.limit
}

func (g *basicGasMeter) IsOutOfGas() bool {
	return g.consumed >= g.limit
}

func (g *basicGasMeter) String() string {
	return fmt.Sprintf("BasicGasMeter:\n  limit: %d\n  consumed: %d", g.limit, g.consumed)
}

type infiniteGasMeter struct {
	consumed Gas
}

// NewInfiniteGasMeter returns a meter that only overflows.
func NewInfiniteGasMeter() GasMeter {
	return &infiniteGasMeter{}
}

func (g *infiniteGasMeter) GasConsumed() Gas {
	return g.consumed
}

func (g *infiniteGasMeter) GasConsumedToLimit() Gas {
	return g.consumed
}

func (g *infiniteGasMeter) GasRemaining() Gas {
	return math.MaxUint64 - g.consumed
}

func (g *infiniteGasMeter) Limit() Gas {
	return math.MaxUint64
}

func (g *infiniteGasMeter) ConsumeGas(amount Gas, descriptor string) error {
	consumed, carry := bits.Add64(g.consumed, amount, 0)
	if carry != 0 {
		return sdkerrors.Wrap(ErrGasOverflow, descriptor)
	}
	g.consumed = consumed
	return nil
}

func (g *infiniteGasMeter) RefundGas(amount Gas, descriptor string) {
	if g.consumed < amount {
		panic(fmt.Sprintf("negative gas refund in %s", descriptor))
	}
	g.consumed -= amount
}

func (g *infiniteGasMeter) IsPastLimit() bool {
	return false
}

func (g *infiniteGasMeter) IsOutOfGas() bool {
	return false
}

func (g *infiniteGasMeter) String() string {
	return fmt.Sprintf("InfiniteGasMeter:\n  consumed: %d", g.consumed)
}

// GasConfig defines gas cost for each operation on a KVStore.
type GasConfig struct {
	HasCost          Gas
	DeleteCost       Gas
	ReadCostFlat     Gas
	ReadCostPerByte  Gas
	WriteCostFlat    Gas
	WriteCostPerByte Gas
	IterNextCostFlat Gas
}

// KVGasConfig returns the default gas costs of namespace access.
func KVGasConfig() GasConfig {
	return GasConfig{
		HasCost:          1000,
		DeleteCost:       1000,
		ReadCostFlat:     1000,
		ReadCostPerByte:  3,
		WriteCostFlat:    2000,
		WriteCostPerByte: 30,
		IterNextCostFlat: 30,
	}
}
