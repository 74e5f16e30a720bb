// Package block defines the interface required for all blockchain or network mappers.
package block

import (
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"

	"github.com/tarancss/adptools/lib/block/ethereum"
	"github.com/tarancss/adptools/lib/block/solana"
	"github.com/tarancss/adptools/lib/block/types"
)

// Chain is an interface that contains the required methods to translate a read operation into a JSON-RPC call for a
// given network and to decode the values the tools format themselves.
type Chain interface {
	Chain() types.Chain
	Symbol() string
	Map(op types.Op, a types.Args) (types.Call, error)
	Height(raw json.RawMessage) (uint64, error)
	Balance(raw json.RawMessage) (decimal.Decimal, error)
}

// Init loads the mappers of all supported chains into a map.
func Init() map[types.Chain]Chain {
	m := make(map[types.Chain]Chain)

	for _, c := range []Chain{ethereum.Init(), solana.Init()} {
		m[c.Chain()] = c
	}

	log.Printf("Blockchain mappers loaded: %v\n", types.Chains())

	return m
}

// Map returns the upstream call for op on chain c. It fails with types.ErrUnsupportedChain when bc has no mapper for c
// and with types.ErrUnsupported when the mapper does not serve op.
func Map(bc map[types.Chain]Chain, op types.Op, c types.Chain, a types.Args) (types.Call, error) {
	m, ok := bc[c]
	if !ok {
		return types.Call{}, types.ErrUnsupportedChain
	}

	return m.Map(op, a)
}
