package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tarancss/adptools/lib/block/types"
)

// Argument names and defaults.
const (
	ArgAddress = "address"
	ArgTxID    = "txid"
	ArgChain   = "chain"
	ArgCount   = "count"

	DefaultChain = "eth"
	DefaultCount = 5
)

// required returns the string argument name. Absent, null and empty values are missing.
func (inv *invocation) required(name string) (string, error) {
	v, ok := inv.args[name]
	if !ok || v == nil {
		return "", &ArgError{Arg: name, Missing: true}
	}

	s, ok := v.(string)
	if !ok {
		return "", &ArgError{Arg: name}
	}

	if s == "" {
		return "", &ArgError{Arg: name, Missing: true}
	}

	return s, nil
}

// selectChain resolves the chain argument, defaulting to eth.
func (inv *invocation) selectChain() error {
	name := DefaultChain

	if v, ok := inv.args[ArgChain]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr {
			return &ChainError{Chain: fmt.Sprint(v), Tool: inv.tool}
		}

		if s != "" {
			name = s
		}
	}

	c, err := types.ParseChain(name)
	if err != nil {
		return &ChainError{Chain: name, Tool: inv.tool}
	}

	inv.chain = c

	return nil
}

// count returns the count argument, defaulting to DefaultCount. Numbers must be integral; numeric strings are
// accepted for callers that only pass strings (ie. the command line).
func (inv *invocation) count() (int, error) {
	v, ok := inv.args[ArgCount]
	if !ok || v == nil {
		return DefaultCount, nil
	}

	switch n := v.(type) {
	case float64:
		if n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			return int(n), nil
		}
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, nil
		}
	}

	return 0, &ArgError{Arg: ArgCount}
}
