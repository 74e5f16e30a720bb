// Package rpc implements the single upstream client: one JSON-RPC 2.0 POST per call to the gateway URL of the chain.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tarancss/adptools/lib/block/types"
	"github.com/tarancss/adptools/lib/creds"
)

// FallbackMessage is used when the node returns a JSON-RPC error without a message.
const FallbackMessage = "Unknown RPC error"

// Request is the JSON-RPC 2.0 envelope sent upstream.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Response is the JSON-RPC 2.0 envelope returned by the node.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// Error is a JSON-RPC protocol error reported by the node.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Tokens resolves the access token for a chain given the per-request overrides.
type Tokens interface {
	Resolve(c types.Chain, override map[string]string) string
}

// Client posts JSON-RPC calls to the gateway.
type Client struct {
	base   string
	tokens Tokens
	hc     *http.Client
}

// New returns a Client for the gateway base URL. A nil hc uses http.DefaultClient.
func New(base string, tokens Tokens, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{base: strings.TrimRight(base, "/"), tokens: tokens, hc: hc}
}

// Call performs exactly one HTTP request for call on chain c and returns the raw result. Protocol errors are returned
// as *Error; transport errors carry the underlying failure description. There are no retries.
func (c *Client) Call(ctx context.Context, chain types.Chain, call types.Call) (result json.RawMessage, err error) {
	start := time.Now()

	defer func() {
		observe(chain, call.Method, err, time.Since(start))
	}()

	params := call.Params
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(Request{JSONRPC: "2.0", Method: call.Method, Params: params, ID: 1})
	if err != nil {
		return nil, err
	}

	u := c.base + "/" + c.tokens.Resolve(chain, creds.Override(ctx))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, unwrapURL(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r Response
	decErr := json.Unmarshal(data, &r)

	if decErr == nil && r.Error != nil {
		if r.Error.Message == "" {
			r.Error.Message = FallbackMessage
		}

		return nil, r.Error
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if decErr != nil {
		return nil, fmt.Errorf("invalid response: %w", decErr)
	}

	if len(r.Result) == 0 {
		return json.RawMessage("null"), nil
	}

	return r.Result, nil
}

// unwrapURL drops the request URL from transport errors so the access token never reaches a tool response.
func unwrapURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}

	return err
}
