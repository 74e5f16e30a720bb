package types

import (
	"errors"
	"testing"
)

func TestParseChain(t *testing.T) {
	for i, tc := range []struct {
		in  string
		out Chain
		err error
	}{
		{"eth", ETH, nil},
		{"ETH", ETH, nil},
		{" solana ", Solana, nil},
		{"btc", 0, ErrUnsupportedChain},
		{"", 0, ErrUnsupportedChain},
	} {
		c, err := ParseChain(tc.in)
		if c != tc.out || !errors.Is(err, tc.err) {
			t.Errorf("[%d] ParseChain(%q) got %v err:%v", i, tc.in, c, err)
		}
	}

	if ETH.String() != "eth" || Solana.String() != "solana" || Chain(9).String() != "unknown" {
		t.Errorf("unexpected chain names")
	}
}
