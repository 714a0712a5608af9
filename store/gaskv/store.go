package gaskv

import (
	"github.com/babylonchain/chainkit/store/types"
)

var (
	_ types.KVReader = ReadStore{}
	_ types.KVStore  = Store{}
)

// ReadStore charges gas for every read of the wrapped reader. A failed charge
// aborts the operation before it touches the parent.
type ReadStore struct {
	gasMeter  types.GasMeter
	gasConfig types.GasConfig
	parent    types.KVReader
}

// NewReadStore returns a metered read-only view of parent.
func NewReadStore(parent types.KVReader, gasMeter types.GasMeter, gasConfig types.GasConfig) ReadStore {
	return ReadStore{
		gasMeter:  gasMeter,
		gasConfig: gasConfig,
		parent:    parent,
	}
}

func (gs ReadStore) Get(key []byte) ([]byte, error) {
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostFlat, types.GasReadCostFlatDesc); err != nil {
		return nil, err
	}
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostPerByte*types.Gas(len(key)), types.GasReadPerByteDesc); err != nil {
		return nil, err
	}
	value, err := gs.parent.Get(key)
	if err != nil {
		return nil, err
	}
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.ReadCostPerByte*types.Gas(len(value)), types.GasValuePerByteDesc); err != nil {
		return nil, err
	}
	return value, nil
}

func (gs ReadStore) Has(key []byte) (bool, error) {
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.HasCost, types.GasHasDesc); err != nil {
		return false, err
	}
	return gs.parent.Has(key)
}

func (gs ReadStore) Iterator(start, end []byte) (types.Iterator, error) {
	return gs.iterator(start, end, true)
}

func (gs ReadStore) ReverseIterator(start, end []byte) (types.Iterator, error) {
	return gs.iterator(start, end, false)
}

func (gs ReadStore) iterator(start, end []byte, ascending bool) (types.Iterator, error) {
	var (
		parent types.Iterator
		err    error
	)
	if ascending {
		parent, err = gs.parent.Iterator(start, end)
	} else {
		parent, err = gs.parent.ReverseIterator(start, end)
	}
	if err != nil {
		return nil, err
	}

	gi := &gasIterator{
		gasMeter:  gs.gasMeter,
		gasConfig: gs.gasConfig,
		parent:    parent,
	}
	if err := gi.consumeSeekGas(); err != nil {
		parent.Close()
		return nil, err
	}
	return gi, nil
}

// Store is the metered read-write view.
type Store struct {
	ReadStore
	parent types.KVStore
}

// NewStore returns a metered view of parent.
func NewStore(parent types.KVStore, gasMeter types.GasMeter, gasConfig types.GasConfig) Store {
	return Store{
		ReadStore: NewReadStore(parent, gasMeter, gasConfig),
		parent:    parent,
	}
}

func (gs Store) Set(key []byte, value []byte) error {
	types.AssertValidValue(value)
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.WriteCostFlat, types.GasWriteCostFlatDesc); err != nil {
		return err
	}
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.WriteCostPerByte*types.Gas(len(key)+len(value)), types.GasWritePerByteDesc); err != nil {
		return err
	}
	return gs.parent.Set(key, value)
}

func (gs Store) Delete(key []byte) error {
	if err := gs.gasMeter.ConsumeGas(gs.gasConfig.DeleteCost, types.GasDeleteDesc); err != nil {
		return err
	}
	return gs.parent.Delete(key)
}

// gasIterator charges for every entry it positions on. Once a charge fails
// the iterator becomes invalid and Error reports the failure.
type gasIterator struct {
	gasMeter  types.GasMeter
	gasConfig types.GasConfig
	parent    types.Iterator
	err       error
}

var _ types.Iterator = (*gasIterator)(nil)

func (gi *gasIterator) Domain() (start []byte, end []byte) {
	return gi.parent.Domain()
}

func (gi *gasIterator) Valid() bool {
	return gi.err == nil && gi.parent.Valid()
}

func (gi *gasIterator) Next() {
	if err := gi.gasMeter.ConsumeGas(gi.gasConfig.IterNextCostFlat, types.GasIterNextCostFlatDesc); err != nil {
		gi.err = err
		return
	}
	gi.parent.Next()
	gi.err = gi.consumeSeekGas()
}

func (gi *gasIterator) Key() []byte {
	return gi.parent.Key()
}

func (gi *gasIterator) Value() []byte {
	return gi.parent.Value()
}

func (gi *gasIterator) Close() error {
	return gi.parent.Close()
}

func (gi *gasIterator) Error() error {
	if gi.err != nil {
		return gi.err
	}
	return gi.parent.Error()
}

// consumeSeekGas charges for the entry the parent is positioned on.
func (gi *gasIterator) consumeSeekGas() error {
	if !gi.parent.Valid() {
		return nil
	}
	key := gi.parent.Key()
	value := gi.parent.Value()
	return gi.gasMeter.ConsumeGas(gi.gasConfig.ReadCostPerByte*types.Gas(len(key)+len(value)), types.GasValuePerByteDesc)
}
