package ethereum

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tarancss/adptools/lib/block/types"
)

// TestMap checks the method name and the encoded parameters produced for every ethereum operation.
func TestMap(t *testing.T) {
	e := Init()
	args := types.Args{Address: "0xabc", TxID: "0xdef", Block: 100}

	for i, tc := range []struct {
		op     types.Op
		method string
		params string
	}{
		{types.ChainInfo, "eth_getBlockByNumber", `["latest",false]`},
		{types.WalletBalance, "eth_getBalance", `["0xabc","latest"]`},
		{types.Transaction, "eth_getTransactionByHash", `["0xdef"]`},
		{types.BlockHeight, "eth_blockNumber", `[]`},
		{types.Block, "eth_getBlockByNumber", `["0x64",false]`},
		{types.GasPrice, "eth_gasPrice", `[]`},
	} {
		c, err := e.Map(tc.op, args)
		if err != nil {
			t.Errorf("[%d] Map %s error:%e", i, tc.op, err)
			continue
		}

		p, _ := json.Marshal(c.Params)
		if c.Method != tc.method || string(p) != tc.params {
			t.Errorf("[%d] Map %s got %s %s, expected %s %s", i, tc.op, c.Method, p, tc.method, tc.params)
		}
	}

	if _, err := e.Map(types.SolanaAccount, args); !errors.Is(err, types.ErrUnsupported) {
		t.Errorf("Map solana-account expected ErrUnsupported, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	e := Init()

	for i, tc := range []struct {
		raw string
		bal string
		gas string
		err bool
	}{
		{`"0xde0b6b3a7640000"`, "1", "1000000000", false},
		{`"0x0"`, "0", "0", false},
		{`"0x1"`, "0.000000000000000001", "0.000000001", false},
		{`"0x3b9aca00"`, "0.000000001", "1", false},
		{`"0x22ecb25c00"`, "0.00000015", "150", false},
		{`"xyz"`, "", "", true},
		{`12`, "", "", true},
		{`null`, "", "", true},
	} {
		bal, err := e.Balance(json.RawMessage(tc.raw))
		if (err != nil) != tc.err || (err == nil && bal.String() != tc.bal) {
			t.Errorf("[%d] Balance got %s err:%v, expected %s", i, bal, err, tc.bal)
		}

		gas, err := GasPrice(json.RawMessage(tc.raw))
		if (err != nil) != tc.err || (err == nil && gas.String() != tc.gas) {
			t.Errorf("[%d] GasPrice got %s err:%v, expected %s", i, gas, err, tc.gas)
		}
	}

	n, err := e.Height(json.RawMessage(`"0x29bf9b"`))
	if err != nil || n != 2736027 {
		t.Errorf("Height got %d err:%v", n, err)
	}

	if _, err = e.Height(json.RawMessage(`{}`)); !errors.Is(err, types.ErrBadQuantity) {
		t.Errorf("Height expected ErrBadQuantity, got %v", err)
	}
}
