package types

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// BlockContext is the begin and end block phase. Writes are not metered.
type BlockContext struct {
	eventBuffer
	ms     storetypes.MultiStore
	header tmproto.Header
	logger log.Logger
}

func NewBlockContext(ms storetypes.MultiStore, header tmproto.Header, logger log.Logger) *BlockContext {
	return &BlockContext{
		ms:     ms,
		header: header,
		logger: logger,
	}
}

func (c *BlockContext) Height() int64           { return c.header.Height }
func (c *BlockContext) ChainID() string         { return c.header.ChainID }
func (c *BlockContext) GetTime() time.Time      { return c.header.Time }
func (c *BlockContext) Header() tmproto.Header  { return c.header }
func (c *BlockContext) Logger() log.Logger      { return c.logger }
func (c *BlockContext) TxIndex() uint32         { return 0 }
func (c *BlockContext) TxHash() (hash [32]byte) { return }

func (c *BlockContext) KVStore(key storetypes.StoreKey) storetypes.KVReader {
	return c.ms.GetKVStore(key)
}

func (c *BlockContext) KVStoreMut(key storetypes.StoreKey) storetypes.KVStore {
	return c.ms.GetKVStore(key)
}
