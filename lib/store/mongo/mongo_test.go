//go:build integration
// +build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/tarancss/adptools/lib/store"
)

// This test requires an available MongoDB server at localhost:27017.
var uri string = "mongodb://localhost:27017"

func TestCalls(t *testing.T) {
	m, err := New(uri)
	if err != nil {
		t.Fatalf("err:%e", err)
	}
	defer m.CloseMongo()

	_ = m.c.Database(Database).Collection(Collection).Drop(context.Background())

	ts := time.Now().UTC().Truncate(time.Millisecond)
	for i, tool := range []string{"get-chain-info", "get-eth-gas-price", "get-chain-info"} {
		if err = m.SaveCall(store.Call{Tool: tool, Chain: "eth", Args: "{}", Upstream: 1, TS: ts.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Errorf("SaveCall err:%e", err)
		}
	}

	calls, err := m.GetCalls("", 10)
	if err != nil || len(calls) != 3 || calls[0].Tool != "get-chain-info" || calls[1].Tool != "get-eth-gas-price" {
		t.Errorf("GetCalls got %+v err:%v", calls, err)
	}

	calls, err = m.GetCalls("get-chain-info", 1)
	if err != nil || len(calls) != 1 || !calls[0].TS.Equal(ts.Add(2*time.Second)) || calls[0].ID == "" {
		t.Errorf("GetCalls filtered got %+v err:%v", calls, err)
	}
}
