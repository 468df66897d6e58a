package fetcher

import (
	"math/big"

	"github.com/gabapcia/chainsentry/internal/pkg/types"
)

// validEntriesWindow is how many records before the target HasValidEntries inspects.
const validEntriesWindow = 3

// indexOf returns the position of hash in txs, or -1.
func indexOf(txs []Transaction, hash string) int {
	if hash == "" {
		return -1
	}

	for i, tx := range txs {
		if tx.Hash == hash {
			return i
		}
	}
	return -1
}

// addressInfo looks for a transfer between address and counterparty, in either
// direction, strictly before hash. All records are inspected when hash is absent.
func addressInfo(txs []Transaction, address, counterparty, hash string) AddressInfo {
	end := len(txs)
	if i := indexOf(txs, hash); i >= 0 {
		end = i
	}

	info := AddressInfo{TransactionCount: len(txs)}
	for _, tx := range txs[:end] {
		if (tx.From == address && tx.To == counterparty) || (tx.From == counterparty && tx.To == address) {
			info.HasInteracted = true
			break
		}
	}

	return info
}

// interactedAgain looks for a from -> to record strictly after hash.
// All records are inspected when hash is absent.
func interactedAgain(txs []Transaction, from, to, hash string) bool {
	start := 0
	if i := indexOf(txs, hash); i >= 0 {
		start = i + 1
	}

	for _, tx := range txs[start:] {
		if tx.From == from && tx.To == to {
			return true
		}
	}
	return false
}

// outgoingCounterparties returns the recipients of transactions sent by victim,
// skipping contract creations and the addresses in exclude.
func outgoingCounterparties(txs []Transaction, victim string, exclude types.Set[string]) types.Set[string] {
	out := types.NewSet[string]()
	for _, tx := range txs {
		if tx.From != victim || tx.To == "" {
			continue
		}

		if exclude.Has(tx.To) {
			continue
		}

		out.Add(tx.To)
	}
	return out
}

// sharedByMajority reports whether one counterparty appears in at least
// ceil(n/2) of the n sets, and in no fewer than two of them.
func sharedByMajority(sets []types.Set[string]) bool {
	threshold := max((len(sets)+1)/2, 2)

	counts := make(map[string]int)
	for _, set := range sets {
		for counterparty := range set {
			counts[counterparty]++
			if counts[counterparty] >= threshold {
				return true
			}
		}
	}
	return false
}

// recentlyInvolved looks for another non-zero transfer involving address at or
// before the block of hash and at most window blocks earlier.
func recentlyInvolved(txs []Transaction, address, hash string, window uint64) bool {
	i := indexOf(txs, hash)
	if i < 0 {
		return false
	}

	target := txs[i].Block()
	for j, tx := range txs {
		if j == i || (tx.From != address && tx.To != address) || tx.ValueWei().Sign() <= 0 {
			continue
		}

		if b := tx.Block(); b <= target && target-b <= window {
			return true
		}
	}
	return false
}

// validEntries inspects the records right before hash: none may carry a zero
// value and no sender may appear twice. A missing hash is never valid.
func validEntries(txs []Transaction, hash string) bool {
	i := indexOf(txs, hash)
	if i < 0 {
		return false
	}

	senders := types.NewSet[string]()
	for _, tx := range txs[max(0, i-validEntriesWindow):i] {
		if tx.ValueWei().Sign() == 0 {
			return false
		}

		if senders.Has(tx.From) {
			return false
		}
		senders.Add(tx.From)
	}
	return true
}

// distinctCounterparties lists every address address exchanged a transaction
// with, in first-seen order.
func distinctCounterparties(txs []Transaction, address string) []string {
	seen := types.NewSet[string]()
	out := make([]string, 0)

	for _, tx := range txs {
		counterparty := tx.From
		if tx.From == address {
			counterparty = tx.To
		}

		if counterparty == "" || counterparty == address {
			continue
		}

		if seen.Has(counterparty) {
			continue
		}

		seen.Add(counterparty)
		out = append(out, counterparty)
	}
	return out
}

// valueUnique reports whether no record other than hash carries value.
func valueUnique(txs []Transaction, value *big.Int, hash string) bool {
	for _, tx := range txs {
		if tx.Hash == hash {
			continue
		}

		if tx.ValueWei().Cmp(value) == 0 {
			return false
		}
	}
	return true
}
