// Package main: blockchain tool server.
//
// adptools exposes read-only blockchain tools (chain info, balances, transactions, latest blocks, solana accounts
// and eth gas price) to MCP clients, over stdio or HTTP, backed by a JSON-RPC gateway.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errToolFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}

		os.Exit(1)
	}
}
