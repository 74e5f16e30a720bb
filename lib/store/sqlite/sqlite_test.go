package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tarancss/adptools/lib/store"
)

func TestCalls(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("New err:%e", err)
	}
	defer s.CloseSQLite()

	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, c := range []store.Call{
		{Tool: "get-chain-info", Chain: "eth", Args: `{"chain":"eth"}`, Upstream: 1, Millis: 12, TS: ts},
		{Tool: "get-latest-blocks", Chain: "solana", Args: `{"count":3}`, Upstream: 4, Skipped: 1, TS: ts.Add(time.Second)},
		{Tool: "get-wallet-balance", Chain: "eth", Args: `{}`, IsError: true, Error: "Missing required argument: address", TS: ts.Add(2 * time.Second)},
	} {
		if err = s.SaveCall(c); err != nil {
			t.Errorf("[%d] SaveCall err:%e", i, err)
		}
	}

	calls, err := s.GetCalls("", 0)
	if err != nil || len(calls) != 3 {
		t.Fatalf("GetCalls got %+v err:%v", calls, err)
	}

	// newest first
	if calls[0].Tool != "get-wallet-balance" || !calls[0].IsError || calls[0].Error == "" || calls[2].Tool != "get-chain-info" {
		t.Errorf("unexpected order or content %+v", calls)
	}

	if c := calls[1]; c.Upstream != 4 || c.Skipped != 1 || c.Chain != "solana" || !c.TS.Equal(ts.Add(time.Second)) || c.ID != "2" {
		t.Errorf("unexpected record %+v", c)
	}

	calls, err = s.GetCalls("get-chain-info", 10)
	if err != nil || len(calls) != 1 || calls[0].Millis != 12 || calls[0].Args != `{"chain":"eth"}` {
		t.Errorf("GetCalls filtered got %+v err:%v", calls, err)
	}

	calls, err = s.GetCalls("", 2)
	if err != nil || len(calls) != 2 {
		t.Errorf("GetCalls limited got %+v err:%v", calls, err)
	}
}
