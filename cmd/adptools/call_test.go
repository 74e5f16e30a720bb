package main

import "testing"

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"address=0xabc", "count=3", "memo=a=b"})
	if err != nil || args["address"] != "0xabc" || args["count"] != "3" || args["memo"] != "a=b" {
		t.Errorf("unexpected args %v err:%v", args, err)
	}

	if _, err = parseArgs([]string{"address"}); err == nil {
		t.Errorf("expected an error for a bare key")
	}

	if _, err = parseArgs([]string{"=x"}); err == nil {
		t.Errorf("expected an error for an empty key")
	}
}
