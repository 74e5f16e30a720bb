// Package solana implements the read operations for the solana network.
package solana

import (
	"encoding/json"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/tarancss/adptools/lib/block/types"
)

// Symbol is the native currency symbol.
const Symbol = "SOL"

// Solana maps the read operations onto the solana JSON-RPC methods.
type Solana struct{}

// Init returns the solana mapper.
func Init() *Solana {
	return &Solana{}
}

// Chain returns the chain selector served by this mapper.
func (s *Solana) Chain() types.Chain {
	return types.Solana
}

// Symbol returns the native currency symbol.
func (s *Solana) Symbol() string {
	return Symbol
}

type config struct {
	Encoding solanago.EncodingType `json:"encoding"`
}

// Map returns the upstream call for op. Ops that solana does not serve return types.ErrUnsupported.
func (s *Solana) Map(op types.Op, a types.Args) (types.Call, error) {
	switch op {
	case types.ChainInfo:
		return types.Call{Method: "getVersion", Params: []interface{}{}}, nil
	case types.WalletBalance:
		return types.Call{Method: "getBalance", Params: []interface{}{a.Address}}, nil
	case types.Transaction:
		return types.Call{Method: "getTransaction", Params: []interface{}{a.TxID, config{solanago.EncodingJSON}}}, nil
	case types.BlockHeight:
		return types.Call{Method: "getBlockHeight", Params: []interface{}{}}, nil
	case types.Block:
		return types.Call{Method: "getBlock", Params: []interface{}{a.Block, config{solanago.EncodingJSON}}}, nil
	case types.SolanaAccount:
		return types.Call{Method: "getAccountInfo", Params: []interface{}{a.Address, config{solanago.EncodingJSONParsed}}}, nil
	case types.GasPrice:
	}

	return types.Call{}, types.ErrUnsupported
}

// Height decodes the integer returned by getBlockHeight.
func (s *Solana) Height(raw json.RawMessage) (uint64, error) {
	var n *uint64
	if err := json.Unmarshal(raw, &n); err != nil || n == nil {
		return 0, types.ErrBadQuantity
	}

	return *n, nil
}

// Balance decodes the lamports value of a getBalance result and returns it in SOL.
func (s *Solana) Balance(raw json.RawMessage) (decimal.Decimal, error) {
	var r struct {
		Value *uint64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &r); err != nil || r.Value == nil {
		return decimal.Zero, types.ErrBadBalance
	}

	lamports := decimal.NewFromBigInt(new(big.Int).SetUint64(*r.Value), 0)

	return lamports.Div(decimal.NewFromBigInt(new(big.Int).SetUint64(solanago.LAMPORTS_PER_SOL), 0)), nil
}
