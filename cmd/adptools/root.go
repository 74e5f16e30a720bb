package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.3.0" //nolint:gochecknoglobals // set at build time with -ldflags "-X main.version=..."

// flags shared by all commands
var ( //nolint:gochecknoglobals // cobra flags
	confPath string
	monitor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "adptools",
	Short: "Blockchain read tools for MCP clients",
	Long: `adptools serves read-only blockchain tools to MCP clients, backed by a JSON-RPC gateway.

Tools:
  get-chain-info       latest eth block or solana node version
  get-wallet-balance   native balance of an address (ETH or SOL)
  get-transaction      transaction details by hash or signature
  get-latest-blocks    the most recent blocks, newest first
  get-solana-account   parsed solana account information
  get-eth-gas-price    current eth gas price in Gwei

Examples:
  adptools serve -c conf.json                          # serve the configured transport
  adptools tools                                       # list the tools
  adptools call get-wallet-balance address=0xabc...    # invoke a tool once
  adptools call get-latest-blocks chain=solana count=3
  adptools watch 'solana.*'                            # follow tool call events`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() { //nolint:gochecknoinits // cobra wiring
	rootCmd.PersistentFlags().StringVarP(&confPath, "config", "c", "", "configuration file (JSON, or YAML with a .yaml/.yml extension)")
	rootCmd.PersistentFlags().BoolVarP(&monitor, "monitor", "m", false, "serve Prometheus metrics on :9100/metrics")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adptools v%s\n", version)
	},
}
