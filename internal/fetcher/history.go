package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/gabapcia/chainsentry/internal/pkg/types"

	"golang.org/x/sync/errgroup"
)

// Transaction is a record of an address history as returned by the explorer
// txlist endpoint. Numeric fields are kept as the decimal strings the API returns.
type Transaction struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	IsError     string `json:"isError"`
	Input       string `json:"input"`
}

// ValueWei returns the transferred value. Unparsable values are zero.
func (t Transaction) ValueWei() *big.Int {
	v, ok := new(big.Int).SetString(t.Value, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Block returns the block number of the record. Unparsable values are zero.
func (t Transaction) Block() uint64 {
	n, _ := strconv.ParseUint(t.BlockNumber, 10, 64)
	return n
}

// history fetches one ascending page of the transactions of address.
func (c *client) history(ctx context.Context, address string, chainID int64) ([]Transaction, error) {
	raw, err := c.explorerQuery(ctx, chainID, url.Values{
		"module":     {"account"},
		"action":     {"txlist"},
		"address":    {address},
		"startblock": {"0"},
		"endblock":   {"99999999"},
		"page":       {"1"},
		"offset":     {strconv.Itoa(c.cfg.historyOffset)},
		"sort":       {"asc"},
	})
	if err != nil {
		return nil, err
	}

	txs, err := decodeResult[[]Transaction](raw)
	if err != nil {
		return nil, err
	}

	for i := range txs {
		txs[i].Hash = normalize(txs[i].Hash)
		txs[i].From = normalize(txs[i].From)
		txs[i].To = normalize(txs[i].To)
	}

	return txs, nil
}

// historyOp fetches the history of address and evaluates it, resolving to
// fallback when the history cannot be fetched.
func historyOp[T any](ctx context.Context, c *client, operation, address string, chainID int64, fallback T, eval func([]Transaction) T) T {
	p := policy[T]{operation: operation, fallback: constant(fallback)}
	key := fmt.Sprintf("%d:%s", chainID, address)

	v, _, _ := execute(ctx, c, p, key, func(ctx context.Context) (T, error) {
		txs, err := c.history(ctx, address, chainID)
		if err != nil {
			var zero T
			return zero, err
		}
		return eval(txs), nil
	})

	return v
}

// GetAddressInfo implements Client.
func (c *client) GetAddressInfo(ctx context.Context, address, counterparty string, chainID int64, txHash string) AddressInfo {
	address, counterparty, txHash = normalize(address), normalize(counterparty), normalize(txHash)

	return historyOp(ctx, c, "GetAddressInfo", address, chainID, AddressInfo{HasInteracted: true}, func(txs []Transaction) AddressInfo {
		return addressInfo(txs, address, counterparty, txHash)
	})
}

// HaveInteractedAgain implements Client.
func (c *client) HaveInteractedAgain(ctx context.Context, from, to string, chainID int64, txHash string) bool {
	from, to, txHash = normalize(from), normalize(to), normalize(txHash)

	return historyOp(ctx, c, "HaveInteractedAgain", from, chainID, true, func(txs []Transaction) bool {
		return interactedAgain(txs, from, to, txHash)
	})
}

// HaveInteractedWithSameAddress implements Client.
//
// One history page is fetched per distinct victim, at most FanOutLimit at a
// time. A failing leg never cancels the others, but once every leg finished a
// single exhausted leg turns the whole answer into true.
func (c *client) HaveInteractedWithSameAddress(ctx context.Context, victims []string, attacker string, chainID int64) bool {
	distinct := make([]string, 0, len(victims))
	victimSet := types.NewSet[string]()
	for _, v := range victims {
		v = normalize(v)
		if v == "" || victimSet.Has(v) {
			continue
		}
		victimSet.Add(v)
		distinct = append(distinct, v)
	}

	if len(distinct) < 2 {
		return false
	}

	exclude := victimSet
	if attacker = normalize(attacker); attacker != "" {
		exclude.Add(attacker)
	}

	var (
		counterparties = make([]types.Set[string], len(distinct))
		exhausted      atomic.Bool
		g              errgroup.Group
	)

	g.SetLimit(c.cfg.fanOutLimit)
	for i, victim := range distinct {
		g.Go(func() error {
			p := policy[[]Transaction]{operation: "HaveInteractedWithSameAddress"}
			key := fmt.Sprintf("%d:%s", chainID, victim)

			txs, ok, _ := execute(ctx, c, p, key, func(ctx context.Context) ([]Transaction, error) {
				return c.history(ctx, victim, chainID)
			})
			if !ok {
				exhausted.Store(true)
				return nil
			}

			counterparties[i] = outgoingCounterparties(txs, victim, exclude)
			return nil
		})
	}
	_ = g.Wait()

	if exhausted.Load() {
		return true
	}

	return sharedByMajority(counterparties)
}

// IsRecentlyInvolvedInTransfer implements Client.
func (c *client) IsRecentlyInvolvedInTransfer(ctx context.Context, address string, chainID int64, txHash string, blockWindow uint64) bool {
	address, txHash = normalize(address), normalize(txHash)

	return historyOp(ctx, c, "IsRecentlyInvolvedInTransfer", address, chainID, true, func(txs []Transaction) bool {
		return recentlyInvolved(txs, address, txHash, blockWindow)
	})
}

// HasValidEntries implements Client.
func (c *client) HasValidEntries(ctx context.Context, address string, chainID int64, txHash string) bool {
	address, txHash = normalize(address), normalize(txHash)

	return historyOp(ctx, c, "HasValidEntries", address, chainID, false, func(txs []Transaction) bool {
		return validEntries(txs, txHash)
	})
}

// GetAddresses implements Client.
func (c *client) GetAddresses(ctx context.Context, address string, chainID int64) []string {
	address = normalize(address)

	return historyOp(ctx, c, "GetAddresses", address, chainID, []string(nil), func(txs []Transaction) []string {
		return distinctCounterparties(txs, address)
	})
}

// IsValueUnique implements Client.
func (c *client) IsValueUnique(ctx context.Context, address string, chainID int64, value *big.Int, txHash string) bool {
	address, txHash = normalize(address), normalize(txHash)
	if value == nil {
		value = new(big.Int)
	}

	return historyOp(ctx, c, "IsValueUnique", address, chainID, false, func(txs []Transaction) bool {
		return valueUnique(txs, value, txHash)
	})
}

// GetNumberOfLogs implements Client.
func (c *client) GetNumberOfLogs(ctx context.Context, address string, chainID int64, fromBlock, toBlock uint64) int {
	address = normalize(address)

	p := policy[int]{operation: "GetNumberOfLogs", fallback: constant(0)}
	key := fmt.Sprintf("%d:%s:%d-%d", chainID, address, fromBlock, toBlock)
	n, _, _ := execute(ctx, c, p, key, func(ctx context.Context) (int, error) {
		raw, err := c.explorerQuery(ctx, chainID, url.Values{
			"module":    {"logs"},
			"action":    {"getLogs"},
			"address":   {address},
			"fromBlock": {strconv.FormatUint(fromBlock, 10)},
			"toBlock":   {strconv.FormatUint(toBlock, 10)},
		})
		if err != nil {
			return 0, err
		}

		logs, err := decodeResult[[]json.RawMessage](raw)
		if err != nil {
			return 0, err
		}
		return len(logs), nil
	})

	return n
}

// GetSourceCode implements Client.
func (c *client) GetSourceCode(ctx context.Context, address string, chainID int64) string {
	address = normalize(address)

	p := policy[string]{operation: "GetSourceCode", fallback: constant("")}
	key := fmt.Sprintf("%d:%s", chainID, address)
	source, _, _ := execute(ctx, c, p, key, func(ctx context.Context) (string, error) {
		raw, err := c.explorerQuery(ctx, chainID, url.Values{
			"module":  {"contract"},
			"action":  {"getsourcecode"},
			"address": {address},
		})
		if err != nil {
			return "", err
		}

		entries, err := decodeResult[[]struct {
			SourceCode string `json:"SourceCode"`
		}](raw)
		if err != nil {
			return "", err
		}

		if len(entries) == 0 {
			return "", fmt.Errorf("%w: empty source code result", ErrUnexpectedResponse)
		}
		return entries[0].SourceCode, nil
	})

	return source
}
