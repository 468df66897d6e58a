package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrUnexpectedResponse is returned when a remote answer has an unexpected shape.
var ErrUnexpectedResponse = errors.New("unexpected response")

var (
	ownerSelector    = crypto.Keccak256([]byte("owner()"))[:4]
	getOwnerSelector = crypto.Keccak256([]byte("getOwner()"))[:4]
)

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// GetCode implements Client.
//
// Only non-empty bytecode is cached, so an address that has not been deployed
// yet is checked again on the next call.
func (c *client) GetCode(ctx context.Context, address string) (string, bool) {
	address = normalize(address)
	if code, ok := c.codeCache.get(address); ok {
		return code, true
	}

	p := policy[string]{operation: "GetCode", record: true}
	code, ok, _ := execute(ctx, c, p, address, func(ctx context.Context) (string, error) {
		return c.provider.CodeAt(ctx, address)
	})
	if !ok {
		return "", false
	}

	if code == "" {
		code = emptyCode
	}

	if code != emptyCode {
		c.codeCache.add(address, code)
	}

	return code, true
}

// IsEOA implements Client.
func (c *client) IsEOA(ctx context.Context, address string) (bool, bool) {
	address = normalize(address)
	if isEOA, ok := c.eoaCache.get(address); ok {
		return isEOA, true
	}

	code, ok := c.GetCode(ctx, address)
	if !ok {
		return false, false
	}

	isEOA := code == emptyCode
	c.eoaCache.add(address, isEOA)
	return isEOA, true
}

// GetNonce implements Client.
func (c *client) GetNonce(ctx context.Context, address string) uint64 {
	address = normalize(address)
	if nonce, ok := c.nonceCache.get(address); ok {
		return nonce
	}

	p := policy[uint64]{operation: "GetNonce", fallback: constant(NonceFallback), record: true}
	nonce, ok, _ := execute(ctx, c, p, address, func(ctx context.Context) (uint64, error) {
		return c.provider.NonceAt(ctx, address)
	})
	if ok {
		c.nonceCache.add(address, nonce)
	}

	return nonce
}

// GetStorageSlot implements Client.
func (c *client) GetStorageSlot(ctx context.Context, address, slot string, block uint64) (string, bool) {
	address = normalize(address)

	p := policy[string]{operation: "GetStorageSlot", record: true}
	key := fmt.Sprintf("%s:%s:%d", address, slot, block)
	value, ok, _ := execute(ctx, c, p, key, func(ctx context.Context) (string, error) {
		return c.provider.StorageAt(ctx, address, slot, block)
	})
	return value, ok
}

// GetOwner implements Client.
//
// Each accessor is tried once. Results are cached per (address, block) since
// ownership changes over time; empty results are not cached.
func (c *client) GetOwner(ctx context.Context, address string, block uint64) string {
	address = normalize(address)
	key := fmt.Sprintf("%s:%d", address, block)
	if owner, ok := c.ownerCache.get(key); ok {
		return owner
	}

	for _, accessor := range []struct {
		operation string
		selector  []byte
	}{
		{"GetOwner.owner", ownerSelector},
		{"GetOwner.getOwner", getOwnerSelector},
	} {
		p := policy[string]{operation: accessor.operation, retry: c.once}
		owner, ok, _ := execute(ctx, c, p, key, func(ctx context.Context) (string, error) {
			out, err := c.provider.CallContract(ctx, address, accessor.selector, block)
			if err != nil {
				return "", err
			}
			return decodeAddressWord(out)
		})
		if ok && owner != "" {
			c.ownerCache.add(key, owner)
			return owner
		}
	}

	return ""
}

// decodeAddressWord reads an ABI-encoded address from the first 32-byte word of out.
func decodeAddressWord(out []byte) (string, error) {
	if len(out) < common.HashLength {
		return "", fmt.Errorf("%w: %d bytes returned for an address", ErrUnexpectedResponse, len(out))
	}

	return strings.ToLower(common.BytesToAddress(out[:common.HashLength]).Hex()), nil
}
