package types

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// QueryableContext is implemented by every phase context.
type QueryableContext interface {
	Height() int64
	ChainID() string
	// KVStore returns a read-only view of the namespace of key.
	KVStore(key storetypes.StoreKey) storetypes.KVReader
	Logger() log.Logger
}

// MutableContext is implemented by the phases that may write state.
type MutableContext interface {
	QueryableContext
	// KVStoreMut returns a read-write view of the namespace of key.
	KVStoreMut(key storetypes.StoreKey) storetypes.KVStore
	GetTime() time.Time
}

// TransactionalContext is implemented by the phases that emit events.
type TransactionalContext interface {
	MutableContext
	PushEvent(event Event)
	AppendEvents(events []Event)
	// EventsDrain removes and returns the buffered events.
	EventsDrain() []Event
	TxIndex() uint32
	TxHash() [32]byte
}

var (
	_ MutableContext       = (*InitContext)(nil)
	_ TransactionalContext = (*BlockContext)(nil)
	_ TransactionalContext = (*TxContext)(nil)
	_ QueryableContext     = (*QueryContext)(nil)
)

// eventBuffer is the append-only event list of one phase.
type eventBuffer struct {
	events []Event
}

func (b *eventBuffer) PushEvent(event Event) {
	b.events = append(b.events, event)
}

func (b *eventBuffer) AppendEvents(events []Event) {
	b.events = append(b.events, events...)
}

func (b *eventBuffer) EventsDrain() []Event {
	events := b.events
	b.events = nil
	if events == nil {
		return []Event{}
	}
	return events
}

func (b *eventBuffer) snapshot() []Event {
	return append([]Event(nil), b.events...)
}
