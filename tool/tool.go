// Package tool implements the tool dispatcher.
//
// A tool call names one of the read tools and carries its arguments. The dispatcher validates them, maps the tool to
// the upstream JSON-RPC call(s) of the selected chain, and renders the result as text content. Every failure,
// including a panic, is reported as an error response: nothing escapes Dispatch.
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/tarancss/adptools/lib/block"
	"github.com/tarancss/adptools/lib/block/types"
	"github.com/tarancss/adptools/lib/msg"
	"github.com/tarancss/adptools/lib/store"
)

// Request is a tool invocation: the tool name and its arguments.
type Request struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"arguments"`
}

// Content is a single content item of a tool response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the result of a tool invocation.
type Response struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Text returns the text of the first content item.
func (r Response) Text() string {
	if len(r.Content) == 0 {
		return ""
	}

	return r.Content[0].Text
}

func text(s string) Response {
	return Response{Content: []Content{{Type: "text", Text: s}}}
}

func failure(s string) Response {
	return Response{Content: []Content{{Type: "text", Text: s}}, IsError: true}
}

// Caller performs a single upstream JSON-RPC call.
type Caller interface {
	Call(ctx context.Context, chain types.Chain, call types.Call) (json.RawMessage, error)
}

// ErrUnknownTool is reported for tool names that are not registered.
var ErrUnknownTool = errors.New("Unknown tool")

// ArgError reports a missing or malformed tool argument.
type ArgError struct {
	Arg     string
	Missing bool
}

func (e *ArgError) Error() string {
	if e.Missing {
		return "Missing required argument: " + e.Arg
	}

	return "Invalid argument: " + e.Arg
}

// ChainError reports a chain selector the tool cannot serve.
type ChainError struct {
	Chain string
	Tool  string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("Unsupported chain: %s for %s", e.Chain, e.Tool)
}

func (e *ChainError) Unwrap() error {
	return types.ErrUnsupportedChain
}

// Dispatcher serves tool invocations. It is safe for concurrent use: invocations share only the immutable mappers and
// the upstream client.
type Dispatcher struct {
	bc  map[types.Chain]block.Chain // chain mappers
	rpc Caller
	mb  msg.MsgBroker // optional, receives one event per invocation
	db  store.DB      // optional, audit log
}

// New returns a Dispatcher. mb and db may be nil.
func New(bc map[types.Chain]block.Chain, rpc Caller, mb msg.MsgBroker, db store.DB) *Dispatcher {
	return &Dispatcher{
		bc:  bc,
		rpc: rpc,
		mb:  mb,
		db:  db,
	}
}

// invocation holds the state of a single tool call.
type invocation struct {
	tool     string
	args     map[string]interface{}
	chain    types.Chain // zero until resolved
	upstream int         // upstream calls made
	skipped  int         // latest-blocks lookups that failed
}

// Dispatch runs the named tool and returns its response.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (res Response) {
	start := time.Now()
	inv := &invocation{tool: req.Name, args: req.Args}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] panic serving tool call: %v\n%s", req.Name, r, debug.Stack())

			res = failure(fmt.Sprintf("Error: %v", r))
		}

		d.record(inv, res, time.Since(start))
	}()

	t, ok := registry[req.Name]
	if !ok {
		return failure(fmt.Sprintf("%s: %s", ErrUnknownTool, req.Name))
	}

	out, err := t.run(ctx, d, inv)
	if err != nil {
		return failure(message(err))
	}

	return text(out)
}

// message renders err for an error response. Validation errors are reported as they are, anything else comes from
// upstream or decoding and gets the "Error: " prefix.
func message(err error) string {
	var ae *ArgError

	var ce *ChainError

	if errors.As(err, &ae) || errors.As(err, &ce) {
		return err.Error()
	}

	return "Error: " + err.Error()
}

// call maps op on the invocation chain and performs the upstream call.
func (d *Dispatcher) call(ctx context.Context, inv *invocation, op types.Op, a types.Args) (json.RawMessage, error) {
	c, err := block.Map(d.bc, op, inv.chain, a)
	if err != nil {
		return nil, &ChainError{Chain: inv.chain.String(), Tool: inv.tool}
	}

	inv.upstream++

	return d.rpc.Call(ctx, inv.chain, c)
}
