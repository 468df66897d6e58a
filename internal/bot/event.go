// Package bot defines the contract shared by every detection bot: the
// transaction event they receive, the findings they emit and the helpers used
// to pull typed arguments out of logs and call data.
package bot

import (
	"context"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Bot inspects one transaction event at a time and returns zero or more findings.
//
// HandleTransaction is never called concurrently for the same Bot instance.
// Remote lookups must degrade to their documented fallbacks instead of
// returning an error; an error means the event itself could not be handled.
type Bot interface {
	Name() string
	HandleTransaction(ctx context.Context, event TransactionEvent) ([]Finding, error)
}

// Log is an event log emitted while executing a transaction.
type Log struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
}

// TransactionEvent is a processed transaction together with the logs it produced.
// Addresses and the hash are kept lowercase (see Normalize).
type TransactionEvent struct {
	ChainID     int64         `json:"chainId" validate:"required"`
	Hash        string        `json:"hash" validate:"required"`
	From        string        `json:"from" validate:"required"`
	To          string        `json:"to"`
	Value       *hexutil.Big  `json:"value"`
	Input       hexutil.Bytes `json:"input"`
	BlockNumber uint64        `json:"blockNumber"`
	Timestamp   int64         `json:"timestamp"`
	Logs        []Log         `json:"logs"`
}

// Normalize lowercases the hash and the sender/recipient addresses.
func (e TransactionEvent) Normalize() TransactionEvent {
	e.Hash = strings.ToLower(e.Hash)
	e.From = NormalizeAddress(e.From)
	e.To = NormalizeAddress(e.To)
	return e
}

// ValueWei returns the transferred native value. A missing value is zero.
func (e TransactionEvent) ValueWei() *big.Int {
	if e.Value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.Value.ToInt())
}

// Selector returns the 4-byte function selector of the call data, or nil when
// the input is shorter than a selector.
func (e TransactionEvent) Selector() []byte {
	if len(e.Input) < 4 {
		return nil
	}
	return e.Input[:4]
}

// FilterLogs returns the logs emitted by address whose first topic is one of topics.
// With no topics every log of address is returned.
func (e TransactionEvent) FilterLogs(address common.Address, topics ...common.Hash) []Log {
	var out []Log
	for _, l := range e.Logs {
		if l.Address != address {
			continue
		}

		if len(topics) > 0 && (len(l.Topics) == 0 || !slices.Contains(topics, l.Topics[0])) {
			continue
		}

		out = append(out, l)
	}
	return out
}

// IsCallTo reports whether the transaction targets address.
func (e TransactionEvent) IsCallTo(address common.Address) bool {
	return NormalizeAddress(e.To) == NormalizeAddress(address.Hex())
}

// NormalizeAddress lowercases and trims an address string.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
