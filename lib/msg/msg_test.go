package msg

import (
	"testing"

	"github.com/tarancss/adptools/lib/store"
)

func TestRoutingKey(t *testing.T) {
	if k := RoutingKey(store.Call{Tool: "get-chain-info", Chain: "eth"}); k != "eth.get-chain-info" {
		t.Errorf("unexpected key %s", k)
	}

	if k := RoutingKey(store.Call{Tool: "foo"}); k != "none.foo" {
		t.Errorf("unexpected key %s", k)
	}
}
