package store

import "testing"

func TestLimit(t *testing.T) {
	for in, out := range map[int]int{-1: DefaultLimit, 0: DefaultLimit, 1: 1, 200: 200, 5000: MaxLimit} {
		if got := Limit(in); got != out {
			t.Errorf("Limit(%d) got %d, expected %d", in, got, out)
		}
	}
}
