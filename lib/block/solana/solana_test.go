package solana

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tarancss/adptools/lib/block/types"
)

func TestMap(t *testing.T) {
	s := Init()
	args := types.Args{Address: "Addr1", TxID: "Sig1", Block: 50}

	for i, tc := range []struct {
		op     types.Op
		method string
		params string
	}{
		{types.ChainInfo, "getVersion", `[]`},
		{types.WalletBalance, "getBalance", `["Addr1"]`},
		{types.Transaction, "getTransaction", `["Sig1",{"encoding":"json"}]`},
		{types.BlockHeight, "getBlockHeight", `[]`},
		{types.Block, "getBlock", `[50,{"encoding":"json"}]`},
		{types.SolanaAccount, "getAccountInfo", `["Addr1",{"encoding":"jsonParsed"}]`},
	} {
		c, err := s.Map(tc.op, args)
		if err != nil {
			t.Errorf("[%d] Map %s error:%e", i, tc.op, err)
			continue
		}

		p, _ := json.Marshal(c.Params)
		if c.Method != tc.method || string(p) != tc.params {
			t.Errorf("[%d] Map %s got %s %s, expected %s %s", i, tc.op, c.Method, p, tc.method, tc.params)
		}
	}

	if _, err := s.Map(types.GasPrice, args); !errors.Is(err, types.ErrUnsupported) {
		t.Errorf("Map gas-price expected ErrUnsupported, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	s := Init()

	for i, tc := range []struct {
		raw string
		bal string
		err bool
	}{
		{`{"context":{"slot":1},"value":2500000000}`, "2.5", false},
		{`{"context":{"slot":1},"value":0}`, "0", false},
		{`{"value":1}`, "0.000000001", false},
		{`{"value":1000000000}`, "1", false},
		{`{"context":{"slot":1}}`, "", true},
		{`"0x10"`, "", true},
		{`null`, "", true},
	} {
		bal, err := s.Balance(json.RawMessage(tc.raw))
		if (err != nil) != tc.err || (err == nil && bal.String() != tc.bal) {
			t.Errorf("[%d] Balance got %s err:%v, expected %s", i, bal, err, tc.bal)
		}
	}

	n, err := s.Height(json.RawMessage(`287463521`))
	if err != nil || n != 287463521 {
		t.Errorf("Height got %d err:%v", n, err)
	}

	if _, err = s.Height(json.RawMessage(`null`)); !errors.Is(err, types.ErrBadQuantity) {
		t.Errorf("Height expected ErrBadQuantity, got %v", err)
	}
}
