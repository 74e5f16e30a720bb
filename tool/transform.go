package tool

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tarancss/adptools/lib/block/ethereum"
	"github.com/tarancss/adptools/lib/block/types"
)

const indent = "  "

// pretty re-indents a raw upstream result.
func pretty(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// prettyBlocks renders the fetched blocks as an indented JSON array, in fetch order.
func prettyBlocks(blocks []json.RawMessage) (string, error) {
	b, err := json.MarshalIndent(blocks, "", indent)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// balance renders a balance result in the native currency of chain c.
func (d *Dispatcher) balance(c types.Chain, address string, raw json.RawMessage) (string, error) {
	m := d.bc[c]

	v, err := m.Balance(raw)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Address %s has balance: %s %s", address, v.String(), m.Symbol()), nil
}

// gasPrice renders an eth_gasPrice result in gwei.
func gasPrice(raw json.RawMessage) (string, error) {
	v, err := ethereum.GasPrice(raw)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Current Ethereum gas price: %s %s", v.String(), ethereum.GasSymbol), nil
}
