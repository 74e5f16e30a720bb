// Package msg defines the interface for different message brokers.
package msg

import (
	"github.com/tarancss/adptools/lib/store"
)

// ToolCalls is the topic exchange receiving one event per tool invocation, routed by "<chain>.<tool>".
const ToolCalls = "tc"

// MsgBroker publishes tool invocation events and lets observers follow them.
type MsgBroker interface {
	Setup(interface{}) error
	Close() error

	// SendCall publishes the record of a finished tool invocation.
	SendCall(c store.Call) error
	// GetCalls consumes the events whose routing key matches pattern (ie. "solana.*", "#").
	GetCalls(pattern string) (<-chan store.Call, <-chan error, error)
}

// RoutingKey returns the routing key of an event: "<chain>.<tool>", with "none" for tools without a chain.
func RoutingKey(c store.Call) string {
	chain := c.Chain
	if chain == "" {
		chain = "none"
	}

	return chain + "." + c.Tool
}
