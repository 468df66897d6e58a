package fetcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabapcia/chainsentry/internal/errcollector"
	providerMocks "github.com/gabapcia/chainsentry/internal/fetcher/mocks"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testChainID int64 = 1

func init() {
	_ = logger.Init("error")
}

func newTestClient(provider Provider, opts ...Option) (*client, *errcollector.Ring) {
	ring := errcollector.NewRing(10)
	base := []Option{
		WithRetry(retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond))),
		WithErrorSink(ring),
		WithExplorerRateLimit(0, 1),
		WithHTTPClient(transporthttp.NewClient(transporthttp.WithTimeout(2 * time.Second))),
	}
	return New(provider, append(base, opts...)...), ring
}

// explorerServer serves Etherscan-style answers produced by handle and counts requests.
type explorerServer struct {
	*httptest.Server
	calls atomic.Int32

	mu      sync.Mutex
	queries []url.Values
}

func newExplorerServer(t *testing.T, handle func(q url.Values) (int, any)) *explorerServer {
	s := &explorerServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)

		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		s.mu.Unlock()

		status, body := handle(r.URL.Query())
		w.WriteHeader(status)
		if raw, ok := body.(string); ok {
			_, _ = w.Write([]byte(raw))
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *explorerServer) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

func okResult(result any) map[string]any {
	return map[string]any{"status": "1", "message": "OK", "result": result}
}

func withExplorer(s *explorerServer, keys ...string) Option {
	return WithExplorers(map[int64]Explorer{testChainID: {URL: s.URL, APIKeys: keys}})
}

func TestGetCode(t *testing.T) {
	t.Run("non empty code is cached after the first call", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xabc").Return("0x6080", nil).Once()

		c, _ := newTestClient(provider)

		for range 2 {
			code, ok := c.GetCode(t.Context(), "0xABC")
			assert.True(t, ok)
			assert.Equal(t, "0x6080", code)
		}
	})

	t.Run("empty code is never cached", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xabc").Return("0x", nil).Times(2)

		c, _ := newTestClient(provider)

		for range 2 {
			code, ok := c.GetCode(t.Context(), "0xabc")
			assert.True(t, ok)
			assert.Equal(t, "0x", code)
		}
		assert.Zero(t, c.codeCache.len())
	})

	t.Run("exhaustion returns no code and records exactly one error", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xabc").Return("", errors.New("connection refused")).Times(3)

		c, ring := newTestClient(provider)

		code, ok := c.GetCode(t.Context(), "0xabc")
		assert.False(t, ok)
		assert.Empty(t, code)

		records := ring.Snapshot()
		require.Len(t, records, 1)
		assert.Equal(t, "GetCode", records[0].Operation)
		assert.Equal(t, "0xabc", records[0].Key)
		assert.Equal(t, "connection refused", records[0].Message)
		assert.NotEmpty(t, records[0].Stack)
	})

	t.Run("a failure followed by a success is not recorded", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xabc").Return("", errors.New("timeout")).Once()
		provider.EXPECT().CodeAt(mock.Anything, "0xabc").Return("0x60", nil).Once()

		c, ring := newTestClient(provider)

		code, ok := c.GetCode(t.Context(), "0xabc")
		assert.True(t, ok)
		assert.Equal(t, "0x60", code)
		assert.Zero(t, ring.Len())
	})
}

func TestIsEOA(t *testing.T) {
	t.Run("addresses with code are not EOAs and the answer is cached", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xcontract").Return("0x6080604052", nil).Once()

		c, _ := newTestClient(provider)

		for range 3 {
			isEOA, ok := c.IsEOA(t.Context(), "0xcontract")
			assert.True(t, ok)
			assert.False(t, isEOA)
		}
	})

	t.Run("addresses without code are EOAs and the answer is cached", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xwallet").Return("0x", nil).Once()

		c, _ := newTestClient(provider)

		for range 2 {
			isEOA, ok := c.IsEOA(t.Context(), "0xwallet")
			assert.True(t, ok)
			assert.True(t, isEOA)
		}
	})

	t.Run("a failed code lookup is unknown and not cached", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CodeAt(mock.Anything, "0xwallet").Return("", errors.New("boom")).Times(6)

		c, _ := newTestClient(provider)

		for range 2 {
			isEOA, ok := c.IsEOA(t.Context(), "0xwallet")
			assert.False(t, ok)
			assert.False(t, isEOA)
		}
		assert.Zero(t, c.eoaCache.len())
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("returns and caches the provider nonce", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().NonceAt(mock.Anything, "0xabc").Return(uint64(7), nil).Once()

		c, _ := newTestClient(provider)

		assert.Equal(t, uint64(7), c.GetNonce(t.Context(), "0xabc"))
		assert.Equal(t, uint64(7), c.GetNonce(t.Context(), "0xabc"))
	})

	t.Run("exhaustion returns the sentinel, records one error and caches nothing", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().NonceAt(mock.Anything, "0xabc").Return(uint64(0), errors.New("boom")).Times(3)

		c, ring := newTestClient(provider)

		assert.Equal(t, NonceFallback, c.GetNonce(t.Context(), "0xabc"))
		assert.Equal(t, uint64(100000), NonceFallback)
		assert.Equal(t, 1, ring.Len())
		assert.Zero(t, c.nonceCache.len())
	})
}

func TestGetStorageSlot(t *testing.T) {
	t.Run("returns the raw slot value", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().StorageAt(mock.Anything, "0xabc", "0x0", uint64(10)).Return("0x01", nil).Once()

		c, _ := newTestClient(provider)

		value, ok := c.GetStorageSlot(t.Context(), "0xabc", "0x0", 10)
		assert.True(t, ok)
		assert.Equal(t, "0x01", value)
	})

	t.Run("exhaustion returns no value and records exactly one error", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().StorageAt(mock.Anything, "0xabc", "0x0", uint64(10)).Return("", errors.New("boom")).Times(3)

		c, ring := newTestClient(provider)

		value, ok := c.GetStorageSlot(t.Context(), "0xabc", "0x0", 10)
		assert.False(t, ok)
		assert.Empty(t, value)

		records := ring.Snapshot()
		require.Len(t, records, 1)
		assert.Equal(t, "GetStorageSlot", records[0].Operation)
	})
}

func addressWord(hexAddr string) []byte {
	out := make([]byte, 32)
	b := new(big.Int)
	b.SetString(strings.TrimPrefix(hexAddr, "0x"), 16)
	b.FillBytes(out)
	return out
}

func TestGetOwner(t *testing.T) {
	owner := "0x00000000000000000000000000000000000000aa"

	t.Run("owner() answers and the result is cached per block", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CallContract(mock.Anything, "0xlottery", ownerSelector, uint64(5)).Return(addressWord(owner), nil).Once()
		provider.EXPECT().CallContract(mock.Anything, "0xlottery", ownerSelector, uint64(6)).Return(addressWord(owner), nil).Once()

		c, _ := newTestClient(provider)

		assert.Equal(t, owner, c.GetOwner(t.Context(), "0xlottery", 5))
		assert.Equal(t, owner, c.GetOwner(t.Context(), "0xlottery", 5))
		assert.Equal(t, owner, c.GetOwner(t.Context(), "0xlottery", 6))
	})

	t.Run("falls back to getOwner() after a single owner() failure", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CallContract(mock.Anything, "0xtoken", ownerSelector, uint64(5)).Return(nil, errors.New("execution reverted")).Once()
		provider.EXPECT().CallContract(mock.Anything, "0xtoken", getOwnerSelector, uint64(5)).Return(addressWord(owner), nil).Once()

		c, _ := newTestClient(provider)

		assert.Equal(t, owner, c.GetOwner(t.Context(), "0xtoken", 5))
	})

	t.Run("returns empty when neither accessor answers and does not cache it", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		provider.EXPECT().CallContract(mock.Anything, "0xtoken", ownerSelector, uint64(5)).Return([]byte{0x01}, nil).Times(2)
		provider.EXPECT().CallContract(mock.Anything, "0xtoken", getOwnerSelector, uint64(5)).Return(nil, errors.New("execution reverted")).Times(2)

		c, ring := newTestClient(provider)

		assert.Empty(t, c.GetOwner(t.Context(), "0xtoken", 5))
		assert.Empty(t, c.GetOwner(t.Context(), "0xtoken", 5))
		assert.Zero(t, ring.Len(), "owner lookups are not recorded")
	})
}

func TestGetSignature(t *testing.T) {
	t.Run("returns the first signature and caches it", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusOK, "transfer(address,uint256);many_msg_babbage(bytes1)\n"
		})

		c, _ := newTestClient(nil, WithSignatureURL(srv.URL))

		for range 2 {
			sig, err := c.GetSignature(t.Context(), "0xA9059CBB")
			require.NoError(t, err)
			assert.Equal(t, "transfer(address,uint256)", sig)
		}
		assert.Equal(t, int32(1), srv.calls.Load())
	})

	t.Run("unknown selectors resolve to empty without caching", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusNotFound, "404: Not Found"
		})

		c, _ := newTestClient(nil, WithSignatureURL(srv.URL))

		for range 2 {
			sig, err := c.GetSignature(t.Context(), "deadbeef")
			require.NoError(t, err)
			assert.Empty(t, sig)
		}
		assert.Equal(t, int32(2), srv.calls.Load())
	})

	t.Run("three consecutive failures propagate an error", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusBadGateway, "bad gateway"
		})

		c, ring := newTestClient(nil, WithSignatureURL(srv.URL))

		sig, err := c.GetSignature(t.Context(), "0xa9059cbb")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Empty(t, sig)
		assert.Equal(t, int32(3), srv.calls.Load())
		assert.Zero(t, ring.Len(), "signature failures are not recorded")
	})

	t.Run("rejects malformed selectors without calling out", func(t *testing.T) {
		c, _ := newTestClient(nil, WithSignatureURL("http://127.0.0.1:0"))

		_, err := c.GetSignature(t.Context(), "0x1234")
		assert.ErrorIs(t, err, ErrInvalidSelector)

		_, err = c.GetSignature(t.Context(), "zzzzzzzz")
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})
}

func TestGetLabel(t *testing.T) {
	t.Run("returns the first label for a supported chain", func(t *testing.T) {
		srv := newExplorerServer(t, func(q url.Values) (int, any) {
			assert.Equal(t, "0xabc", q.Get("address"))
			assert.Equal(t, "56", q.Get("chainId"))
			return http.StatusOK, map[string]any{"labels": []map[string]any{{"label": "Fake_Phishing1"}, {"label": "other"}}}
		})

		c, _ := newTestClient(nil, WithLabelURL(srv.URL))

		assert.Equal(t, "Fake_Phishing1", c.GetLabel(t.Context(), "0xABC", 56))
	})

	t.Run("unsupported chains are never queried", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusOK, map[string]any{"labels": []map[string]any{{"label": "x"}}}
		})

		c, _ := newTestClient(nil, WithLabelURL(srv.URL))

		assert.Empty(t, c.GetLabel(t.Context(), "0xabc", 10))
		assert.Zero(t, srv.calls.Load())
	})

	t.Run("failures resolve to empty", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusInternalServerError, "oops"
		})

		c, _ := newTestClient(nil, WithLabelURL(srv.URL))

		assert.Empty(t, c.GetLabel(t.Context(), "0xabc", 1))
		assert.Equal(t, int32(3), srv.calls.Load())
	})

	t.Run("disabled without an endpoint", func(t *testing.T) {
		c, _ := newTestClient(nil)
		assert.Empty(t, c.GetLabel(t.Context(), "0xabc", 1))
	})
}

func TestCacheCapacity(t *testing.T) {
	t.Run("never exceeds its capacity and evicts the least recently used entry", func(t *testing.T) {
		provider := providerMocks.NewProvider(t)
		for _, addr := range []string{"0x1", "0x2", "0x3"} {
			provider.EXPECT().CodeAt(mock.Anything, addr).Return("0x60", nil).Once()
		}
		provider.EXPECT().CodeAt(mock.Anything, "0x1").Return("0x60", nil).Once()

		c, _ := newTestClient(provider, WithCacheSizes(CacheSizes{Code: 2}))

		c.GetCode(t.Context(), "0x1")
		c.GetCode(t.Context(), "0x2")
		c.GetCode(t.Context(), "0x2")
		c.GetCode(t.Context(), "0x3")
		assert.Equal(t, 2, c.codeCache.len())

		// 0x1 was evicted, 0x2 and 0x3 remain cached
		c.GetCode(t.Context(), "0x1")
		assert.LessOrEqual(t, c.codeCache.len(), 2)
	})

	t.Run("zero sizes keep the defaults", func(t *testing.T) {
		c, _ := newTestClient(nil, WithCacheSizes(CacheSizes{Code: 3}))
		assert.Equal(t, DefaultCacheSizes.EOA, c.cfg.cacheSizes.EOA)
		assert.Equal(t, 3, c.cfg.cacheSizes.Code)
	})
}

func TestExplorerQuery(t *testing.T) {
	t.Run("sends the txlist query with one of the configured keys", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusOK, okResult([]Transaction{})
		})

		c, _ := newTestClient(nil, withExplorer(srv, "k1", "k2"), WithHistoryOffset(50))

		c.GetAddresses(t.Context(), "0xABC", testChainID)

		q := srv.lastQuery()
		assert.Equal(t, "account", q.Get("module"))
		assert.Equal(t, "txlist", q.Get("action"))
		assert.Equal(t, "0xabc", q.Get("address"))
		assert.Equal(t, "0", q.Get("startblock"))
		assert.Equal(t, "99999999", q.Get("endblock"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "50", q.Get("offset"))
		assert.Equal(t, "asc", q.Get("sort"))
		assert.Contains(t, []string{"k1", "k2"}, q.Get("apikey"))
	})

	t.Run("omits the key when none is configured", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusOK, okResult([]Transaction{})
		})

		c, _ := newTestClient(nil, withExplorer(srv))
		c.GetAddresses(t.Context(), "0xabc", testChainID)

		assert.False(t, srv.lastQuery().Has("apikey"))
	})

	t.Run("soft failures are retried", func(t *testing.T) {
		var n atomic.Int32
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			if n.Add(1) == 1 {
				return http.StatusOK, map[string]any{"status": "0", "message": "NOTOK", "result": "Max rate limit reached"}
			}
			return http.StatusOK, okResult([]Transaction{{Hash: "0x1", From: "0xabc", To: "0xdef", Value: "1"}})
		})

		c, _ := newTestClient(nil, withExplorer(srv))

		assert.Equal(t, []string{"0xdef"}, c.GetAddresses(t.Context(), "0xabc", testChainID))
		assert.Equal(t, int32(2), srv.calls.Load())
	})

	t.Run("persistent soft failures and wrong shapes end in the fallback", func(t *testing.T) {
		for _, body := range []any{
			map[string]any{"status": "0", "message": "Query Timeout occured. Please select a smaller result dataset", "result": nil},
			map[string]any{"status": "0", "message": "No transactions found", "result": []any{}},
			map[string]any{"status": "1", "message": "OK", "result": "Invalid API Key"},
			"<html>cloudflare</html>",
		} {
			srv := newExplorerServer(t, func(url.Values) (int, any) {
				return http.StatusOK, body
			})

			c, _ := newTestClient(nil, withExplorer(srv))

			assert.Nil(t, c.GetAddresses(t.Context(), "0xabc", testChainID), fmt.Sprint(body))
			assert.Equal(t, int32(3), srv.calls.Load())
		}
	})

	t.Run("unsupported chains resolve to the fallback", func(t *testing.T) {
		c, _ := newTestClient(nil)
		assert.Nil(t, c.GetAddresses(t.Context(), "0xabc", 999999))
	})

	t.Run("explorers can be configured with keys only", func(t *testing.T) {
		c, _ := newTestClient(nil, WithExplorers(map[int64]Explorer{56: {APIKeys: []string{"k"}}}))
		assert.Equal(t, DefaultExplorerURLs[56], c.cfg.explorers[56].URL)
		assert.Equal(t, []string{"k"}, c.cfg.explorers[56].APIKeys)
	})
}

func TestPickKey(t *testing.T) {
	t.Run("handles empty, single and multiple keys", func(t *testing.T) {
		assert.Empty(t, pickKey(nil))
		assert.Equal(t, "a", pickKey([]string{"a"}))

		seen := map[string]bool{}
		for range 200 {
			seen[pickKey([]string{"a", "b", "c"})] = true
		}
		assert.Len(t, seen, 3)
	})
}

// historyServer answers txlist queries from a fixed address -> records table.
func historyServer(t *testing.T, histories map[string][]Transaction, failing ...string) *explorerServer {
	return newExplorerServer(t, func(q url.Values) (int, any) {
		addr := q.Get("address")
		for _, f := range failing {
			if f == addr {
				return http.StatusOK, map[string]any{"status": "0", "message": "NOTOK", "result": "Max rate limit reached"}
			}
		}
		txs, ok := histories[addr]
		if !ok {
			txs = []Transaction{}
		}
		return http.StatusOK, map[string]any{"status": "1", "message": "OK", "result": txs}
	})
}

func TestHaveInteractedWithSameAddress(t *testing.T) {
	histories := map[string][]Transaction{
		"0xv1": {tx("0x11", "0xv1", "0xattacker", "1", "1"), tx("0x12", "0xv1", "0xdex", "1", "2")},
		"0xv2": {tx("0x21", "0xv2", "0xattacker", "1", "1"), tx("0x22", "0xv2", "0xdex", "1", "3")},
		"0xv3": {tx("0x31", "0xv3", "0xattacker", "1", "1"), tx("0x32", "0xv3", "0xcex", "1", "2")},
		"0xv4": {tx("0x41", "0xfunder", "0xv4", "1", "1")},
	}

	t.Run("two of four victims sharing a counterparty is enough", func(t *testing.T) {
		srv := historyServer(t, histories)
		c, _ := newTestClient(nil, withExplorer(srv))

		assert.True(t, c.HaveInteractedWithSameAddress(t.Context(), []string{"0xv1", "0xv2", "0xv3", "0xv4"}, "0xattacker", testChainID))
		assert.Equal(t, int32(4), srv.calls.Load())
	})

	t.Run("the attacker itself is not a shared counterparty", func(t *testing.T) {
		drained := map[string][]Transaction{
			"0xv1": {tx("0x11", "0xv1", "0xattacker", "1", "1")},
			"0xv2": {tx("0x21", "0xv2", "0xattacker", "1", "1")},
			"0xv3": {tx("0x31", "0xv3", "0xattacker", "1", "1")},
		}
		c, _ := newTestClient(nil, withExplorer(historyServer(t, drained)))

		assert.False(t, c.HaveInteractedWithSameAddress(t.Context(), []string{"0xv1", "0xv2", "0xv3"}, "0xATTACKER", testChainID))
	})

	t.Run("no counterparty reaching the majority", func(t *testing.T) {
		srv := historyServer(t, histories)
		c, _ := newTestClient(nil, withExplorer(srv))

		assert.False(t, c.HaveInteractedWithSameAddress(t.Context(), []string{"0xv1", "0xv3", "0xv4", "0xv5"}, "0xattacker", testChainID))
	})

	t.Run("fewer than two distinct victims never match", func(t *testing.T) {
		srv := historyServer(t, histories)
		c, _ := newTestClient(nil, withExplorer(srv))

		assert.False(t, c.HaveInteractedWithSameAddress(t.Context(), []string{"0xv1", "0xV1"}, "0xattacker", testChainID))
		assert.Zero(t, srv.calls.Load())
	})

	t.Run("an exhausted leg turns the answer into true without cancelling siblings", func(t *testing.T) {
		srv := historyServer(t, histories, "0xv4")
		c, _ := newTestClient(nil, withExplorer(srv), WithFanOutLimit(2))

		assert.True(t, c.HaveInteractedWithSameAddress(t.Context(), []string{"0xv1", "0xv3", "0xv4"}, "0xattacker", testChainID))
		assert.Equal(t, int32(2+3), srv.calls.Load(), "each healthy leg once, the failing leg three times")
	})
}

func TestHistoryPredicates(t *testing.T) {
	histories := map[string][]Transaction{
		"0xattacker": {
			tx("0x1", "0xv1", "0xattacker", "10", "100"),
			tx("0x2", "0xv2", "0xattacker", "0", "101"),
			tx("0x3", "0xv3", "0xattacker", "30", "102"),
			tx("0x4", "0xattacker", "0xcex", "40", "103"),
			tx("0x5", "0xv1", "0xattacker", "10", "104"),
		},
		"0xvictim": {
			tx("0xa", "0xvictim", "0xfriend", "1", "10"),
			tx("0xb", "0xvictim", "0xattacker", "5", "20"),
			tx("0xc", "0xvictim", "0xattacker", "6", "30"),
		},
	}
	srv := historyServer(t, histories, "0xdown")
	c, _ := newTestClient(nil, withExplorer(srv))
	ctx := t.Context()

	t.Run("has valid entries rejects a zero value transfer among the preceding three", func(t *testing.T) {
		assert.False(t, c.HasValidEntries(ctx, "0xattacker", testChainID, "0x4"))
	})

	t.Run("has valid entries accepts organic predecessors", func(t *testing.T) {
		assert.True(t, c.HasValidEntries(ctx, "0xattacker", testChainID, "0x2"))
	})

	t.Run("has valid entries falls back to false", func(t *testing.T) {
		assert.False(t, c.HasValidEntries(ctx, "0xdown", testChainID, "0x1"))
	})

	t.Run("address info sees interactions before the target only", func(t *testing.T) {
		info := c.GetAddressInfo(ctx, "0xvictim", "0xattacker", testChainID, "0xb")
		assert.False(t, info.HasInteracted)
		assert.Equal(t, 3, info.TransactionCount)

		info = c.GetAddressInfo(ctx, "0xvictim", "0xattacker", testChainID, "0xc")
		assert.True(t, info.HasInteracted)
	})

	t.Run("address info falls back to has interacted", func(t *testing.T) {
		info := c.GetAddressInfo(ctx, "0xdown", "0xattacker", testChainID, "0x1")
		assert.True(t, info.HasInteracted)
		assert.Zero(t, info.TransactionCount)
	})

	t.Run("have interacted again looks after the target", func(t *testing.T) {
		assert.True(t, c.HaveInteractedAgain(ctx, "0xvictim", "0xattacker", testChainID, "0xb"))
		assert.False(t, c.HaveInteractedAgain(ctx, "0xvictim", "0xattacker", testChainID, "0xc"))
		assert.True(t, c.HaveInteractedAgain(ctx, "0xdown", "0xattacker", testChainID, "0xc"))
	})

	t.Run("recently involved in transfer uses the block window", func(t *testing.T) {
		assert.True(t, c.IsRecentlyInvolvedInTransfer(ctx, "0xattacker", testChainID, "0x3", 2))
		assert.False(t, c.IsRecentlyInvolvedInTransfer(ctx, "0xattacker", testChainID, "0x1", 5))
		assert.True(t, c.IsRecentlyInvolvedInTransfer(ctx, "0xdown", testChainID, "0x1", 5))
	})

	t.Run("get addresses lists distinct counterparties", func(t *testing.T) {
		assert.Equal(t, []string{"0xv1", "0xv2", "0xv3", "0xcex"}, c.GetAddresses(ctx, "0xattacker", testChainID))
		assert.Nil(t, c.GetAddresses(ctx, "0xdown", testChainID))
	})

	t.Run("value uniqueness ignores the target record", func(t *testing.T) {
		assert.True(t, c.IsValueUnique(ctx, "0xattacker", testChainID, big.NewInt(30), "0x3"))
		assert.False(t, c.IsValueUnique(ctx, "0xattacker", testChainID, big.NewInt(10), "0x1"))
		assert.False(t, c.IsValueUnique(ctx, "0xdown", testChainID, big.NewInt(10), "0x1"))
	})
}

func TestGetNumberOfLogs(t *testing.T) {
	t.Run("counts logs in the block range", func(t *testing.T) {
		srv := newExplorerServer(t, func(q url.Values) (int, any) {
			assert.Equal(t, "logs", q.Get("module"))
			assert.Equal(t, "getLogs", q.Get("action"))
			assert.Equal(t, "10", q.Get("fromBlock"))
			assert.Equal(t, "20", q.Get("toBlock"))
			return http.StatusOK, okResult([]map[string]any{{"data": "0x"}, {"data": "0x"}})
		})

		c, _ := newTestClient(nil, withExplorer(srv))
		assert.Equal(t, 2, c.GetNumberOfLogs(t.Context(), "0xabc", testChainID, 10, 20))
	})

	t.Run("falls back to zero", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusServiceUnavailable, "down"
		})

		c, _ := newTestClient(nil, withExplorer(srv))
		assert.Zero(t, c.GetNumberOfLogs(t.Context(), "0xabc", testChainID, 10, 20))
	})
}

func TestGetSourceCode(t *testing.T) {
	t.Run("returns the first source entry", func(t *testing.T) {
		srv := newExplorerServer(t, func(q url.Values) (int, any) {
			assert.Equal(t, "contract", q.Get("module"))
			assert.Equal(t, "getsourcecode", q.Get("action"))
			return http.StatusOK, okResult([]map[string]any{{"SourceCode": "contract Vault {}"}})
		})

		c, _ := newTestClient(nil, withExplorer(srv))
		assert.Equal(t, "contract Vault {}", c.GetSourceCode(t.Context(), "0xabc", testChainID))
	})

	t.Run("an empty result falls back to empty source", func(t *testing.T) {
		srv := newExplorerServer(t, func(url.Values) (int, any) {
			return http.StatusOK, okResult([]map[string]any{})
		})

		c, _ := newTestClient(nil, withExplorer(srv))
		assert.Empty(t, c.GetSourceCode(t.Context(), "0xabc", testChainID))
		assert.Equal(t, int32(3), srv.calls.Load())
	})
}
