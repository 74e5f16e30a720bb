// Implements interface for ethereum networks
package ethereum

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"

	"github.com/tarancss/adptools/lib/block/types"
)

// Unit symbols.
const (
	Symbol    = "ETH"
	GasSymbol = "Gwei"
)

// unitDigits is the number of decimals kept when converting wei, enough to render a single wei exactly.
const unitDigits = 18

// Ethereum maps the read operations onto the ethereum JSON-RPC methods and decodes their quantities.
type Ethereum struct{}

// Init returns the ethereum mapper.
func Init() *Ethereum {
	return &Ethereum{}
}

// Chain returns the chain selector served by this mapper.
func (e *Ethereum) Chain() types.Chain {
	return types.ETH
}

// Symbol returns the native currency symbol.
func (e *Ethereum) Symbol() string {
	return Symbol
}

// Map returns the upstream call for op. Ops that ethereum does not serve return types.ErrUnsupported.
func (e *Ethereum) Map(op types.Op, a types.Args) (types.Call, error) {
	switch op {
	case types.ChainInfo:
		return types.Call{Method: "eth_getBlockByNumber", Params: []interface{}{"latest", false}}, nil
	case types.WalletBalance:
		return types.Call{Method: "eth_getBalance", Params: []interface{}{a.Address, "latest"}}, nil
	case types.Transaction:
		return types.Call{Method: "eth_getTransactionByHash", Params: []interface{}{a.TxID}}, nil
	case types.BlockHeight:
		return types.Call{Method: "eth_blockNumber", Params: []interface{}{}}, nil
	case types.Block:
		return types.Call{Method: "eth_getBlockByNumber", Params: []interface{}{hexutil.EncodeUint64(a.Block), false}}, nil
	case types.GasPrice:
		return types.Call{Method: "eth_gasPrice", Params: []interface{}{}}, nil
	case types.SolanaAccount:
	}

	return types.Call{}, types.ErrUnsupported
}

// Height decodes the hex block number returned by eth_blockNumber.
func (e *Ethereum) Height(raw json.RawMessage) (uint64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, types.ErrBadQuantity
	}

	n, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, types.ErrBadQuantity
	}

	return n, nil
}

// Balance decodes the hex wei amount returned by eth_getBalance and returns it in ether.
func (e *Ethereum) Balance(raw json.RawMessage) (decimal.Decimal, error) {
	wei, err := quantity(raw)
	if err != nil {
		return decimal.Zero, err
	}

	return toUnit(wei, params.Ether), nil
}

// GasPrice decodes the hex wei amount returned by eth_gasPrice and returns it in gwei.
func GasPrice(raw json.RawMessage) (decimal.Decimal, error) {
	wei, err := quantity(raw)
	if err != nil {
		return decimal.Zero, err
	}

	return toUnit(wei, params.GWei), nil
}

// quantity decodes a JSON string holding a 0x-prefixed hex quantity.
func quantity(raw json.RawMessage) (*big.Int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, types.ErrBadQuantity
	}

	v, err := hexutil.DecodeBig(s)
	if err != nil {
		return nil, types.ErrBadQuantity
	}

	return v, nil
}

// toUnit converts a wei amount to the unit worth perUnit wei.
func toUnit(wei *big.Int, perUnit int64) decimal.Decimal {
	return decimal.NewFromBigInt(wei, 0).DivRound(decimal.NewFromInt(perUnit), unitDigits)
}
