/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/trustbloc/vctrust/pkg/chain"
)

const (
	submitMethod = "anchor_submitHash"

	codeInvalidParams = -32602
	codeDuplicateHash = -32001
)

// HTTPClient interface for the http client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits hashes to an anchoring registry over JSON-RPC 2.0.
type Client struct {
	url        string
	httpClient HTTPClient
	requestID  uint64
}

// Opt represents Client`s option.
type Opt func(*Client)

// WithHTTPClient allows providing HTTP client.
func WithHTTPClient(client HTTPClient) Opt {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new registry client.
func NewClient(url string, opts ...Opt) *Client {
	client := &Client{
		url:        url,
		httpClient: &http.Client{},
	}

	for _, fn := range opts {
		fn(client)
	}

	return client
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type submitResult struct {
	TxID        string `json:"txId"`
	BlockNumber uint64 `json:"blockNumber"`
	Timestamp   int64  `json:"timestamp"`
}

// Endpoint returns the registry URL.
func (c *Client) Endpoint() string {
	return c.url
}

// Submit anchors hash and waits for the registry's confirmation.
func (c *Client) Submit(ctx context.Context, hash string) (*chain.Receipt, error) {
	body, err := json.Marshal(&request{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.requestID, 1),
		Method:  submitMethod,
		Params:  []interface{}{hash},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http Do: %w", err)
	}

	defer resp.Body.Close() // nolint: errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry responded with status %d: %s", resp.StatusCode, respBody)
	}

	var rpcResp response
	if err = json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, mapError(rpcResp.Error)
	}

	var result submitResult
	if err = json.Unmarshal(rpcResp.Result, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	if result.TxID == "" {
		return nil, errors.New("registry returned no transaction id")
	}

	return &chain.Receipt{
		TxID:        result.TxID,
		BlockNumber: result.BlockNumber,
		AnchoredAt:  time.Unix(result.Timestamp, 0).UTC(),
	}, nil
}

func mapError(e *rpcError) error {
	switch e.Code {
	case codeDuplicateHash:
		return fmt.Errorf("%w: %s", chain.ErrDuplicateHash, e.Message)
	case codeInvalidParams:
		return fmt.Errorf("%w: %s", chain.ErrMalformedHash, e.Message)
	default:
		return fmt.Errorf("rpc error %d: %s", e.Code, e.Message)
	}
}
