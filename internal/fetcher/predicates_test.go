package fetcher

import (
	"math/big"
	"testing"

	"github.com/gabapcia/chainsentry/internal/pkg/types"

	"github.com/stretchr/testify/assert"
)

func tx(hash, from, to, value string, block string) Transaction {
	return Transaction{Hash: hash, From: from, To: to, Value: value, BlockNumber: block}
}

func TestTransaction(t *testing.T) {
	t.Run("parses decimal value and block number", func(t *testing.T) {
		record := tx("0x1", "0xa", "0xb", "1000000000000000000", "42")
		assert.Equal(t, "1000000000000000000", record.ValueWei().String())
		assert.Equal(t, uint64(42), record.Block())
	})

	t.Run("unparsable fields read as zero", func(t *testing.T) {
		record := tx("0x1", "0xa", "0xb", "n/a", "")
		assert.Equal(t, 0, record.ValueWei().Sign())
		assert.Zero(t, record.Block())
	})
}

func TestAddressInfo(t *testing.T) {
	txs := []Transaction{
		tx("0x1", "0xa", "0xc", "1", "1"),
		tx("0x2", "0xb", "0xa", "1", "2"),
		tx("0x3", "0xa", "0xd", "1", "3"),
	}

	t.Run("finds an earlier transfer in either direction", func(t *testing.T) {
		info := addressInfo(txs, "0xa", "0xb", "0x3")
		assert.True(t, info.HasInteracted)
		assert.Equal(t, 3, info.TransactionCount)
	})

	t.Run("ignores the target and later records", func(t *testing.T) {
		info := addressInfo(txs, "0xa", "0xb", "0x2")
		assert.False(t, info.HasInteracted)
	})

	t.Run("inspects every record when the hash is absent", func(t *testing.T) {
		assert.True(t, addressInfo(txs, "0xa", "0xd", "0xmissing").HasInteracted)
		assert.False(t, addressInfo(txs, "0xa", "0xe", "").HasInteracted)
	})
}

func TestInteractedAgain(t *testing.T) {
	txs := []Transaction{
		tx("0x1", "0xa", "0xb", "1", "1"),
		tx("0x2", "0xa", "0xc", "1", "2"),
		tx("0x3", "0xa", "0xb", "1", "3"),
	}

	t.Run("finds a later transfer in the same direction", func(t *testing.T) {
		assert.True(t, interactedAgain(txs, "0xa", "0xb", "0x1"))
	})

	t.Run("does not count the target itself", func(t *testing.T) {
		assert.False(t, interactedAgain(txs, "0xa", "0xb", "0x3"))
		assert.False(t, interactedAgain(txs, "0xb", "0xa", "0x1"))
	})
}

func TestSharedByMajority(t *testing.T) {
	t.Run("two of four victims sharing a counterparty is a majority", func(t *testing.T) {
		sets := []types.Set[string]{
			types.NewSet("0xattacker", "0xdex"),
			types.NewSet("0xattacker"),
			types.NewSet("0xother"),
			types.NewSet[string](),
		}
		assert.True(t, sharedByMajority(sets))
	})

	t.Run("no counterparty reaching the majority", func(t *testing.T) {
		sets := []types.Set[string]{
			types.NewSet("0x1"),
			types.NewSet("0x2"),
			types.NewSet("0x3"),
			types.NewSet("0x4"),
		}
		assert.False(t, sharedByMajority(sets))
	})

	t.Run("a single victim never shares with itself", func(t *testing.T) {
		sets := []types.Set[string]{types.NewSet("0x1"), types.NewSet("0x2")}
		assert.False(t, sharedByMajority(sets))
	})

	t.Run("five victims need three sharing", func(t *testing.T) {
		sets := []types.Set[string]{
			types.NewSet("0xz"), types.NewSet("0xz"), types.NewSet("0x1"), types.NewSet("0x2"), types.NewSet("0x3"),
		}
		assert.False(t, sharedByMajority(sets))

		sets[2] = types.NewSet("0xz")
		assert.True(t, sharedByMajority(sets))
	})
}

func TestOutgoingCounterparties(t *testing.T) {
	t.Run("keeps recipients of outgoing transfers except excluded ones", func(t *testing.T) {
		txs := []Transaction{
			tx("0x1", "0xv1", "0xattacker", "1", "1"),
			tx("0x2", "0xv1", "0xv2", "1", "2"),
			tx("0x3", "0xother", "0xv1", "1", "3"),
			tx("0x4", "0xv1", "", "0", "4"),
		}

		got := outgoingCounterparties(txs, "0xv1", types.NewSet("0xv1", "0xv2"))
		assert.ElementsMatch(t, []string{"0xattacker"}, got.ToSlice())
	})
}

func TestRecentlyInvolved(t *testing.T) {
	txs := []Transaction{
		tx("0x1", "0xa", "0xb", "5", "90"),
		tx("0x2", "0xc", "0xa", "0", "98"),
		tx("0x3", "0xa", "0xd", "1", "100"),
		tx("0x4", "0xa", "0xe", "7", "120"),
	}

	t.Run("finds a non zero transfer inside the window", func(t *testing.T) {
		assert.True(t, recentlyInvolved(txs, "0xa", "0x3", 10))
	})

	t.Run("ignores zero value and out of window transfers", func(t *testing.T) {
		assert.False(t, recentlyInvolved(txs, "0xa", "0x3", 5))
	})

	t.Run("ignores transfers after the target block", func(t *testing.T) {
		assert.False(t, recentlyInvolved(txs, "0xe", "0x4", 1000))
	})

	t.Run("a missing target is not recent", func(t *testing.T) {
		assert.False(t, recentlyInvolved(txs, "0xa", "0xmissing", 1000))
	})
}

func TestValidEntries(t *testing.T) {
	t.Run("three distinct non zero senders before the target are valid", func(t *testing.T) {
		txs := []Transaction{
			tx("0x0", "0xz", "0xa", "0", "1"),
			tx("0x1", "0xb", "0xa", "1", "2"),
			tx("0x2", "0xc", "0xa", "2", "3"),
			tx("0x3", "0xd", "0xa", "3", "4"),
			tx("0x4", "0xa", "0xe", "4", "5"),
		}
		assert.True(t, validEntries(txs, "0x4"))
	})

	t.Run("a zero value transfer among the preceding three is invalid", func(t *testing.T) {
		txs := []Transaction{
			tx("0x1", "0xb", "0xa", "1", "2"),
			tx("0x2", "0xc", "0xa", "0", "3"),
			tx("0x3", "0xd", "0xa", "3", "4"),
			tx("0x4", "0xa", "0xe", "4", "5"),
		}
		assert.False(t, validEntries(txs, "0x4"))
	})

	t.Run("a repeated sender among the preceding three is invalid", func(t *testing.T) {
		txs := []Transaction{
			tx("0x1", "0xb", "0xa", "1", "2"),
			tx("0x2", "0xb", "0xa", "2", "3"),
			tx("0x4", "0xa", "0xe", "4", "5"),
		}
		assert.False(t, validEntries(txs, "0x4"))
	})

	t.Run("a target without predecessors is valid", func(t *testing.T) {
		assert.True(t, validEntries([]Transaction{tx("0x1", "0xa", "0xb", "1", "1")}, "0x1"))
	})

	t.Run("a missing target is invalid", func(t *testing.T) {
		assert.False(t, validEntries([]Transaction{tx("0x1", "0xa", "0xb", "1", "1")}, "0x2"))
	})
}

func TestDistinctCounterparties(t *testing.T) {
	t.Run("returns counterparties in first seen order", func(t *testing.T) {
		txs := []Transaction{
			tx("0x1", "0xa", "0xc", "1", "1"),
			tx("0x2", "0xb", "0xa", "1", "2"),
			tx("0x3", "0xa", "0xc", "1", "3"),
			tx("0x4", "0xa", "", "1", "4"),
			tx("0x5", "0xa", "0xa", "1", "5"),
		}
		assert.Equal(t, []string{"0xc", "0xb"}, distinctCounterparties(txs, "0xa"))
	})

	t.Run("an empty history yields an empty, non nil list", func(t *testing.T) {
		got := distinctCounterparties(nil, "0xa")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestValueUnique(t *testing.T) {
	txs := []Transaction{
		tx("0x1", "0xa", "0xb", "100", "1"),
		tx("0x2", "0xa", "0xc", "250", "2"),
		tx("0x3", "0xa", "0xd", "100", "3"),
	}

	t.Run("a value only carried by the target is unique", func(t *testing.T) {
		assert.True(t, valueUnique(txs, big.NewInt(250), "0x2"))
	})

	t.Run("a value repeated elsewhere is not unique", func(t *testing.T) {
		assert.False(t, valueUnique(txs, big.NewInt(100), "0x1"))
	})
}
