package types

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

// Event is the ABCI event type; events reach consensus unchanged.
type Event = abci.Event

// Attribute is a key-value pair of an Event.
type Attribute = abci.EventAttribute

// Common event types and attribute keys.
const (
	EventTypeMessage = "message"

	AttributeKeyAction = "action"
	AttributeKeyModule = "module"
	AttributeKeySender = "sender"
)

// NewEvent builds an event of type ty.
func NewEvent(ty string, attrs ...Attribute) Event {
	return Event{Type: ty, Attributes: attrs}
}

// NewAttribute builds an indexed attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: []byte(key), Value: []byte(value), Index: true}
}

// EventAttribute returns the value of the first attribute named key.
func EventAttribute(event Event, key string) (string, bool) {
	for _, attr := range event.Attributes {
		if string(attr.Key) == key {
			return string(attr.Value), true
		}
	}
	return "", false
}
