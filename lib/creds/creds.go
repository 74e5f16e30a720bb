// Package creds resolves the access token appended to the gateway URL for each chain.
package creds

import (
	"context"

	"github.com/tarancss/adptools/lib/block/types"
	"github.com/tarancss/adptools/lib/config"
)

// placeholders are sent when no token is configured, so the gateway answers with its own authentication error.
var placeholders = map[types.Chain]string{ //nolint:gochecknoglobals // lookup table
	types.ETH:    "YOUR_ETH_ACCESS_TOKEN",
	types.Solana: "YOUR_SOLANA_ACCESS_TOKEN",
}

// keys are the names a caller uses to override a chain token for a single request.
var keys = map[types.Chain]string{ //nolint:gochecknoglobals // lookup table
	types.ETH:    config.EnvEthToken,
	types.Solana: config.EnvSolanaToken,
}

// Key returns the override key for chain c.
func Key(c types.Chain) string {
	return keys[c]
}

// Resolver holds the configured token of every chain.
type Resolver struct {
	tokens map[types.Chain]string
}

// New returns a Resolver with the tokens read from the configuration.
func New(conf config.ServiceConfig) *Resolver {
	return &Resolver{tokens: map[types.Chain]string{
		types.ETH:    conf.EthToken,
		types.Solana: conf.SolanaToken,
	}}
}

// Resolve returns the token for chain c. A non-empty override wins over the configured token, which wins over the
// placeholder. It never fails.
func (r *Resolver) Resolve(c types.Chain, override map[string]string) string {
	if t := override[Key(c)]; t != "" {
		return t
	}

	if t := r.tokens[c]; t != "" {
		return t
	}

	return placeholders[c]
}

type ctxKey struct{}

// WithOverride returns a copy of ctx carrying per-request token overrides keyed by Key.
func WithOverride(ctx context.Context, override map[string]string) context.Context {
	return context.WithValue(ctx, ctxKey{}, override)
}

// Override returns the token overrides carried by ctx, or nil.
func Override(ctx context.Context) map[string]string {
	m, _ := ctx.Value(ctxKey{}).(map[string]string)

	return m
}
