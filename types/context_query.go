package types

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// QueryContext reads the immutable state of one committed height. It has no
// write, event or gas operations, and its namespace views cannot be
// converted into writers.
type QueryContext struct {
	ms      storetypes.MultiStoreReader
	height  int64
	time    time.Time
	chainID string
	logger  log.Logger
}

func NewQueryContext(ms storetypes.MultiStoreReader, height int64, blockTime time.Time, chainID string, logger log.Logger) *QueryContext {
	return &QueryContext{
		ms:      ms,
		height:  height,
		time:    blockTime,
		chainID: chainID,
		logger:  logger,
	}
}

func (c *QueryContext) Height() int64      { return c.height }
func (c *QueryContext) ChainID() string    { return c.chainID }
func (c *QueryContext) Logger() log.Logger { return c.logger }

// BlockTime is the time of the block committed at Height.
func (c *QueryContext) BlockTime() time.Time { return c.time }

func (c *QueryContext) KVStore(key storetypes.StoreKey) storetypes.KVReader {
	return c.ms.GetKVReader(key)
}
