package types

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// InitContext is the genesis phase: state is writable, nothing is metered and
// no events are collected. Its height is always 0.
type InitContext struct {
	ms      storetypes.MultiStore
	chainID string
	time    time.Time
	logger  log.Logger
}

func NewInitContext(ms storetypes.MultiStore, chainID string, genesisTime time.Time, logger log.Logger) *InitContext {
	return &InitContext{
		ms:      ms,
		chainID: chainID,
		time:    genesisTime,
		logger:  logger,
	}
}

func (c *InitContext) Height() int64      { return 0 }
func (c *InitContext) ChainID() string    { return c.chainID }
func (c *InitContext) GetTime() time.Time { return c.time }
func (c *InitContext) Logger() log.Logger { return c.logger }

func (c *InitContext) KVStore(key storetypes.StoreKey) storetypes.KVReader {
	return c.ms.GetKVStore(key)
}

func (c *InitContext) KVStoreMut(key storetypes.StoreKey) storetypes.KVStore {
	return c.ms.GetKVStore(key)
}
