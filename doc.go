// Package adptools and its sub-packages implement a tool server that lets MCP clients query blockchains.
/*
adptools exposes six read-only tools to language model clients speaking the Model Context Protocol (MCP):

  get-chain-info       latest eth block, or the solana node version
  get-wallet-balance   native balance of an address, in ETH or SOL
  get-transaction      transaction details by hash (eth) or signature (solana)
  get-latest-blocks    the most recent blocks of a chain, newest first
  get-solana-account   parsed solana account information
  get-eth-gas-price    current eth gas price in Gwei

Architecture

Every tool call is dispatched (package tool) to a single JSON-RPC gateway, addressed as <gateway>/<access token> with
one token per chain. A blockchain layer (package lib/block) maps each abstract operation onto the eth or solana RPC
method and decodes the quantities it returns. The RPC client (package lib/rpc) performs exactly one POST per upstream
call, and resolves the access token (package lib/creds) from a per-request override, the configuration, or a placeholder.
Failures never escape as protocol errors: they become tool responses flagged as errors.

Tool calls can be recorded in an audit store (package lib/store, with mongodb, postgresql and sqlite implementations)
and published as events on a message broker (package lib/msg, amqp), so other instances or `adptools watch` can follow
them in real time. Both are optional and configured via a JSON or YAML config file or ADP_ OS ENV variables (package
lib/config).

Server

The server (package server) serves the tools over stdio for local MCP clients, or over an HTTP API with optional bearer
token authorization, per-request access token headers and an endpoint to read the audit log. It can be started running
cmd/adptools (adptools serve). The service can also be monitored via a Prometheus API by setting the flag "-m" at
startup.

*/
package adptools
