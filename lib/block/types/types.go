// Package types common blockchain types.
package types

import (
	"errors"
	"strings"
)

// Chain selects the blockchain network a tool call targets.
type Chain int

// Supported chains. The zero value is not a valid chain.
const (
	ETH Chain = iota + 1
	Solana
)

var chainNames = map[Chain]string{ //nolint:gochecknoglobals // lookup table
	ETH:    "eth",
	Solana: "solana",
}

// String returns the selector name used by tool arguments ("eth", "solana").
func (c Chain) String() string {
	if s, ok := chainNames[c]; ok {
		return s
	}

	return "unknown"
}

// Chains returns the supported chains in declaration order.
func Chains() []Chain {
	return []Chain{ETH, Solana}
}

// ParseChain returns the Chain for the given selector name. Matching is case-insensitive.
func ParseChain(s string) (Chain, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range chainNames {
		if name == s {
			return c, nil
		}
	}

	return 0, ErrUnsupportedChain
}

// Op is an abstract read operation that each chain maps onto its own JSON-RPC method.
type Op int

// Operations known to the chain mappers. BlockHeight and Block are the two steps of a latest-blocks lookup.
const (
	ChainInfo Op = iota + 1
	WalletBalance
	Transaction
	BlockHeight
	Block
	SolanaAccount
	GasPrice
)

var opNames = map[Op]string{ //nolint:gochecknoglobals // lookup table
	ChainInfo:     "chain-info",
	WalletBalance: "wallet-balance",
	Transaction:   "transaction",
	BlockHeight:   "block-height",
	Block:         "block",
	SolanaAccount: "solana-account",
	GasPrice:      "gas-price",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return "unknown"
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	return []Op{ChainInfo, WalletBalance, Transaction, BlockHeight, Block, SolanaAccount, GasPrice}
}

// Args carries the validated arguments an operation may need. Unused fields are ignored by the mappers.
type Args struct {
	Address string
	TxID    string
	Block   uint64
}

// Call is a single upstream JSON-RPC invocation: the method name and its ordered parameters.
type Call struct {
	Method string
	Params []interface{}
}

// Error codes.
var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrUnsupported      = errors.New("operation not supported on chain")
	ErrBadQuantity      = errors.New("result is not a valid quantity")
	ErrBadBalance       = errors.New("result does not contain a balance value")
)
