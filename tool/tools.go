package tool

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tarancss/adptools/lib/block/types"
)

// Tool names.
const (
	GetChainInfo     = "get-chain-info"
	GetWalletBalance = "get-wallet-balance"
	GetTransaction   = "get-transaction"
	GetLatestBlocks  = "get-latest-blocks"
	GetSolanaAccount = "get-solana-account"
	GetEthGasPrice   = "get-eth-gas-price"
)

type runner func(ctx context.Context, d *Dispatcher, inv *invocation) (string, error)

// definition binds a tool schema to the function serving it.
type definition struct {
	tool mcp.Tool
	run  runner
}

func chainOption() mcp.ToolOption {
	return mcp.WithString(ArgChain,
		mcp.Description("Blockchain to query: eth or solana"),
		mcp.Enum(types.ETH.String(), types.Solana.String()),
		mcp.DefaultString(DefaultChain),
	)
}

var definitions = []definition{ //nolint:gochecknoglobals // tool table
	{
		mcp.NewTool(GetChainInfo,
			mcp.WithDescription("Get general information about a blockchain: the latest block on eth, the node version on solana"),
			chainOption(),
		),
		chainInfo,
	},
	{
		mcp.NewTool(GetWalletBalance,
			mcp.WithDescription("Get the native currency balance of a wallet address"),
			mcp.WithString(ArgAddress, mcp.Required(), mcp.Description("Wallet address")),
			chainOption(),
		),
		walletBalance,
	},
	{
		mcp.NewTool(GetTransaction,
			mcp.WithDescription("Get the details of a transaction by its hash or signature"),
			mcp.WithString(ArgTxID, mcp.Required(), mcp.Description("Transaction hash (eth) or signature (solana)")),
			chainOption(),
		),
		transaction,
	},
	{
		mcp.NewTool(GetLatestBlocks,
			mcp.WithDescription("Get the most recent blocks, newest first"),
			mcp.WithNumber(ArgCount, mcp.Description("Number of blocks to fetch"), mcp.DefaultNumber(DefaultCount)),
			chainOption(),
		),
		latestBlocks,
	},
	{
		mcp.NewTool(GetSolanaAccount,
			mcp.WithDescription("Get the parsed account information of a Solana address"),
			mcp.WithString(ArgAddress, mcp.Required(), mcp.Description("Solana account address")),
		),
		solanaAccount,
	},
	{
		mcp.NewTool(GetEthGasPrice,
			mcp.WithDescription("Get the current Ethereum gas price in Gwei"),
		),
		ethGasPrice,
	},
}

var registry = func() map[string]definition { //nolint:gochecknoglobals // tool table
	m := make(map[string]definition, len(definitions))
	for _, def := range definitions {
		m[def.tool.Name] = def
	}

	return m
}()

// Tools returns the schemas of all tools, in a stable order.
func Tools() []mcp.Tool {
	tt := make([]mcp.Tool, 0, len(definitions))
	for _, def := range definitions {
		tt = append(tt, def.tool)
	}

	return tt
}

func chainInfo(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	if err := inv.selectChain(); err != nil {
		return "", err
	}

	raw, err := d.call(ctx, inv, types.ChainInfo, types.Args{})
	if err != nil {
		return "", err
	}

	return pretty(raw)
}

func walletBalance(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	address, err := inv.required(ArgAddress)
	if err != nil {
		return "", err
	}

	if err = inv.selectChain(); err != nil {
		return "", err
	}

	raw, err := d.call(ctx, inv, types.WalletBalance, types.Args{Address: address})
	if err != nil {
		return "", err
	}

	return d.balance(inv.chain, address, raw)
}

func transaction(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	txid, err := inv.required(ArgTxID)
	if err != nil {
		return "", err
	}

	if err = inv.selectChain(); err != nil {
		return "", err
	}

	raw, err := d.call(ctx, inv, types.Transaction, types.Args{TxID: txid})
	if err != nil {
		return "", err
	}

	return pretty(raw)
}

// latestBlocks fetches the tip height and then, one at a time, count blocks going down from the tip. Blocks whose
// lookup fails are left out of the result.
func latestBlocks(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	count, err := inv.count()
	if err != nil {
		return "", err
	}

	if err = inv.selectChain(); err != nil {
		return "", err
	}

	raw, err := d.call(ctx, inv, types.BlockHeight, types.Args{})
	if err != nil {
		return "", err
	}

	tip, err := d.bc[inv.chain].Height(raw)
	if err != nil {
		return "", err
	}

	blocks := []json.RawMessage{}

	for i := 0; i < count && uint64(i) <= tip; i++ {
		n := tip - uint64(i)

		b, err := d.call(ctx, inv, types.Block, types.Args{Block: n})
		if err != nil {
			log.Printf("[%s] Skipping block %d: %v", inv.chain, n, err)

			inv.skipped++

			continue
		}

		blocks = append(blocks, b)
	}

	return prettyBlocks(blocks)
}

func solanaAccount(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	address, err := inv.required(ArgAddress)
	if err != nil {
		return "", err
	}

	inv.chain = types.Solana

	raw, err := d.call(ctx, inv, types.SolanaAccount, types.Args{Address: address})
	if err != nil {
		return "", err
	}

	return pretty(raw)
}

func ethGasPrice(ctx context.Context, d *Dispatcher, inv *invocation) (string, error) {
	inv.chain = types.ETH

	raw, err := d.call(ctx, inv, types.GasPrice, types.Args{})
	if err != nil {
		return "", err
	}

	return gasPrice(raw)
}
