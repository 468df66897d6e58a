// Package ethereum adapts an EVM JSON-RPC node to the fetcher and pipeline
// ports: it answers state lookups (code, nonce, storage, calls) and streams the
// transactions of new blocks as bot events.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/chainsentry/internal/fetcher"
	"github.com/gabapcia/chainsentry/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrInvalidSlot is returned when a storage slot is neither hex nor decimal.
var ErrInvalidSlot = errors.New("invalid storage slot")

// latestBlock is the block tag used when no block number is requested.
const latestBlock = "latest"

// client answers fetcher lookups through an EVM JSON-RPC node.
type client struct {
	conn jsonrpc.Client // underlying JSON-RPC connection
}

var _ fetcher.Provider = (*client)(nil)

// NewClient creates a node client on top of conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{conn: conn}
}

// blockTag encodes block as a JSON-RPC block parameter. Zero means the latest block.
func blockTag(block uint64) string {
	if block == 0 {
		return latestBlock
	}
	return hexutil.EncodeUint64(block)
}

// slotKey encodes a storage slot given either as 0x-prefixed hex or as a decimal index.
func slotKey(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if strings.HasPrefix(slot, "0x") || strings.HasPrefix(slot, "0X") {
		return slot, nil
	}

	n, ok := new(big.Int).SetString(slot, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	return hexutil.EncodeBig(n), nil
}

// CodeAt returns the bytecode deployed at address as a 0x-prefixed hex string.
func (c *client) CodeAt(ctx context.Context, address string) (string, error) {
	return jsonrpc.Call[string](ctx, c.conn, "eth_getCode", address, latestBlock)
}

// NonceAt returns the number of transactions sent from address.
func (c *client) NonceAt(ctx context.Context, address string) (uint64, error) {
	nonce, err := jsonrpc.Call[hexutil.Uint64](ctx, c.conn, "eth_getTransactionCount", address, latestBlock)
	return uint64(nonce), err
}

// StorageAt returns the 32-byte word stored at slot of address.
func (c *client) StorageAt(ctx context.Context, address, slot string, block uint64) (string, error) {
	key, err := slotKey(slot)
	if err != nil {
		return "", err
	}

	return jsonrpc.Call[string](ctx, c.conn, "eth_getStorageAt", address, key, blockTag(block))
}

// CallContract executes a read-only call of data against to.
func (c *client) CallContract(ctx context.Context, to string, data []byte, block uint64) ([]byte, error) {
	msg := map[string]string{
		"to":   to,
		"data": hexutil.Encode(data),
	}

	out, err := jsonrpc.Call[hexutil.Bytes](ctx, c.conn, "eth_call", msg, blockTag(block))
	return out, err
}
