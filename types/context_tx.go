package types

import (
	"fmt"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	"github.com/babylonchain/chainkit/store/cachemulti"
	"github.com/babylonchain/chainkit/store/gaskv"
	storetypes "github.com/babylonchain/chainkit/store/types"
)

// ExecMode tells a TxContext which ABCI call it serves.
type ExecMode uint8

const (
	ExecModeCheck ExecMode = iota
	ExecModeReCheck
	ExecModeSimulate
	ExecModeDeliver
)

func (m ExecMode) String() string {
	switch m {
	case ExecModeCheck:
		return "check"
	case ExecModeReCheck:
		return "recheck"
	case ExecModeSimulate:
		return "simulate"
	case ExecModeDeliver:
		return "deliver"
	default:
		return fmt.Sprintf("ExecMode(%d)", m)
	}
}

// Checkpoint marks the pending writes and events of a TxContext.
type Checkpoint struct {
	depth  int
	events []Event
}

// TxContext is the transaction phase. Every namespace access is charged to
// the gas meter, and pending writes can be rolled back to a checkpoint.
type TxContext struct {
	eventBuffer
	layers    []*cachemulti.Store
	header    tmproto.Header
	gasMeter  storetypes.GasMeter
	gasConfig storetypes.GasConfig
	txIndex   uint32
	txHash    [32]byte
	mode      ExecMode
	logger    log.Logger
}

// NewTxContext builds the context of the txIndex-th transaction of a block.
// ms is the pending write set of the transaction.
func NewTxContext(
	ms *cachemulti.Store,
	header tmproto.Header,
	gasMeter storetypes.GasMeter,
	txIndex uint32,
	txHash [32]byte,
	mode ExecMode,
	logger log.Logger,
) *TxContext {
	return &TxContext{
		layers:    []*cachemulti.Store{ms},
		header:    header,
		gasMeter:  gasMeter,
		gasConfig: storetypes.KVGasConfig(),
		txIndex:   txIndex,
		txHash:    txHash,
		mode:      mode,
		logger:    logger,
	}
}

// NewSimulateTxContext builds a context for simulation: it has no position
// in a block, so its index and hash are zero.
func NewSimulateTxContext(ms *cachemulti.Store, header tmproto.Header, gasMeter storetypes.GasMeter, logger log.Logger) *TxContext {
	return NewTxContext(ms, header, gasMeter, 0, [32]byte{}, ExecModeSimulate, logger)
}

func (c *TxContext) Height() int64                     { return c.header.Height }
func (c *TxContext) ChainID() string                   { return c.header.ChainID }
func (c *TxContext) GetTime() time.Time                { return c.header.Time }
func (c *TxContext) Header() tmproto.Header            { return c.header }
func (c *TxContext) Logger() log.Logger                { return c.logger }
func (c *TxContext) TxIndex() uint32                   { return c.txIndex }
func (c *TxContext) TxHash() [32]byte                  { return c.txHash }
func (c *TxContext) GasMeter() storetypes.GasMeter     { return c.gasMeter }
func (c *TxContext) ExecMode() ExecMode                { return c.mode }
func (c *TxContext) IsCheckTx() bool                   { return c.mode == ExecModeCheck || c.mode == ExecModeReCheck }
func (c *TxContext) IsReCheckTx() bool                 { return c.mode == ExecModeReCheck }
func (c *TxContext) IsSimulate() bool                  { return c.mode == ExecModeSimulate }
func (c *TxContext) KVGasConfig() storetypes.GasConfig { return c.gasConfig }

// WithGasConfig overrides the namespace access costs.
func (c *TxContext) WithGasConfig(cfg storetypes.GasConfig) *TxContext {
	c.gasConfig = cfg
	return c
}

func (c *TxContext) top() *cachemulti.Store {
	return c.layers[len(c.layers)-1]
}

func (c *TxContext) KVStore(key storetypes.StoreKey) storetypes.KVReader {
	return gaskv.NewReadStore(c.top().GetKVStore(key), c.gasMeter, c.gasConfig)
}

func (c *TxContext) KVStoreMut(key storetypes.StoreKey) storetypes.KVStore {
	return gaskv.NewStore(c.top().GetKVStore(key), c.gasMeter, c.gasConfig)
}

// Checkpoint starts a nested write layer and records the event buffer.
func (c *TxContext) Checkpoint() Checkpoint {
	c.layers = append(c.layers, c.top().CacheMultiStore())
	return Checkpoint{depth: len(c.layers), events: c.snapshot()}
}

func (c *TxContext) checkTop(cp Checkpoint) error {
	if cp.depth < 2 || cp.depth != len(c.layers) {
		return sdkerrors.Wrapf(storetypes.ErrCheckpoint, "checkpoint at depth %d, current depth %d", cp.depth, len(c.layers))
	}
	return nil
}

// CommitCheckpoint keeps the writes made since cp in the enclosing layer.
// cp must be the innermost open checkpoint.
func (c *TxContext) CommitCheckpoint(cp Checkpoint) error {
	if err := c.checkTop(cp); err != nil {
		return err
	}
	if err := c.top().Write(); err != nil {
		return err
	}
	c.layers = c.layers[:len(c.layers)-1]
	return nil
}

// RevertToCheckpoint discards the writes made since cp and restores the
// event buffer recorded at cp. cp must be the innermost open checkpoint.
func (c *TxContext) RevertToCheckpoint(cp Checkpoint) error {
	if err := c.checkTop(cp); err != nil {
		return err
	}
	c.top().Discard()
	c.layers = c.layers[:len(c.layers)-1]
	c.events = cp.events
	return nil
}

// PendingWrites returns the writes of key held by the outermost layer.
func (c *TxContext) PendingWrites(key storetypes.StoreKey) []storetypes.KVPair {
	return c.layers[0].WriteSet(key)
}
