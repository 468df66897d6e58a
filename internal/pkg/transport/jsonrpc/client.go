// Package jsonrpc is a small JSON-RPC 2.0 client over HTTP, used to talk to
// EVM nodes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError matches every *Error with errors.Is.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned for a non-2xx answer without a JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrNullResult is returned by Call when the result is null.
	ErrNullResult = errors.New("null result")
)

// Error is the error object of a JSON-RPC response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrProviderReturnedError
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	Error  *Error          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Client sends raw JSON-RPC calls.
type Client interface {
	// Fetch calls method and returns its undecoded result. Provider errors
	// are returned as *Error.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*client)(nil)

// NewClient returns a Client posting to endpoint through httpClient.
func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode/100 != 2 {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return nil, fmt.Errorf("decoding %s response: %w", method, err)
	}

	if data.Error != nil {
		return nil, data.Error
	}

	return data.Result, nil
}

// Call fetches method through c and decodes the result into T.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return out, fmt.Errorf("%w: %s", ErrNullResult, method)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decoding %s result: %w", method, err)
	}

	return out, nil
}
