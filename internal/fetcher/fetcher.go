// Package fetcher answers derived questions about addresses and their
// transaction history ("is this an EOA", "did these two interact before",
// "is this value unique") on behalf of the detection bots.
//
// Facts come from an RPC Provider and from Etherscan-family explorer APIs.
// Every remote call is retried a fixed number of times with a constant pause
// and, once exhausted, resolves to the fallback documented on each method.
// Only GetSignature propagates the failure to the caller.
//
// Successful lookups of immutable facts (code, EOA status, nonce, owner at a
// block, selector signatures) are kept in bounded LRU caches owned by the
// client instance. Failed lookups are never cached.
package fetcher

import (
	"context"
	"math/big"

	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const tracerName = "github.com/gabapcia/chainsentry/internal/fetcher"

// NonceFallback is returned by GetNonce when the provider cannot be reached.
//
// It stands for "unknown" but reads as a large nonce, so threshold checks of
// the form nonce < N treat an unreachable provider as "not fresh". Callers that
// care must compare against it explicitly.
const NonceFallback uint64 = 100000

// emptyCode is the bytecode reported for accounts without code.
const emptyCode = "0x"

// Provider is the subset of an EVM JSON-RPC node used by the client.
// A block number of 0 means the latest block.
type Provider interface {
	CodeAt(ctx context.Context, address string) (string, error)
	NonceAt(ctx context.Context, address string) (uint64, error)
	StorageAt(ctx context.Context, address, slot string, block uint64) (string, error)
	CallContract(ctx context.Context, to string, data []byte, block uint64) ([]byte, error)
}

// AddressInfo summarizes the history of an address relative to a counterparty.
type AddressInfo struct {
	HasInteracted    bool
	TransactionCount int
}

// Client is the read-only fact source consumed by the bots.
type Client interface {
	// GetCode returns the bytecode at address. ok is false when the provider
	// could not be reached after every attempt.
	GetCode(ctx context.Context, address string) (code string, ok bool)

	// IsEOA reports whether address has no code. ok is false when the code
	// lookup failed.
	IsEOA(ctx context.Context, address string) (isEOA bool, ok bool)

	// GetNonce returns the transaction count of address, or NonceFallback.
	GetNonce(ctx context.Context, address string) uint64

	// GetStorageSlot reads a raw storage slot at block. ok is false on failure.
	GetStorageSlot(ctx context.Context, address, slot string, block uint64) (value string, ok bool)

	// GetOwner calls owner(), then getOwner(), on address at block and
	// returns "" when neither answers.
	GetOwner(ctx context.Context, address string, block uint64) string

	// GetSignature resolves a 4-byte selector to its text signature. Unknown
	// selectors resolve to "". Transport failures are returned as errors.
	GetSignature(ctx context.Context, selector string) (string, error)

	// GetLabel returns the first community label of address, or "".
	GetLabel(ctx context.Context, address string, chainID int64) string

	// GetAddressInfo reports whether address and counterparty exchanged a
	// transaction before txHash. Falls back to HasInteracted=true.
	GetAddressInfo(ctx context.Context, address, counterparty string, chainID int64, txHash string) AddressInfo

	// HaveInteractedAgain reports whether from sent to to again after txHash.
	// Falls back to true.
	HaveInteractedAgain(ctx context.Context, from, to string, chainID int64, txHash string) bool

	// HaveInteractedWithSameAddress reports whether a majority of victims sent
	// funds to a common counterparty other than attacker and the victims
	// themselves. An empty attacker excludes only the victims. Falls back to true.
	HaveInteractedWithSameAddress(ctx context.Context, victims []string, attacker string, chainID int64) bool

	// IsRecentlyInvolvedInTransfer reports whether address took part in another
	// non-zero transfer within blockWindow blocks before txHash. Falls back to true.
	IsRecentlyInvolvedInTransfer(ctx context.Context, address string, chainID int64, txHash string, blockWindow uint64) bool

	// HasValidEntries reports whether the records preceding txHash look like
	// organic activity. Falls back to false.
	HasValidEntries(ctx context.Context, address string, chainID int64, txHash string) bool

	// GetAddresses returns the distinct counterparties of address in first-seen
	// order. Falls back to nil.
	GetAddresses(ctx context.Context, address string, chainID int64) []string

	// IsValueUnique reports whether no record other than txHash moved value.
	// Falls back to false.
	IsValueUnique(ctx context.Context, address string, chainID int64, value *big.Int, txHash string) bool

	// GetNumberOfLogs counts the logs emitted by address in [fromBlock, toBlock].
	// Falls back to 0.
	GetNumberOfLogs(ctx context.Context, address string, chainID int64, fromBlock, toBlock uint64) int

	// GetSourceCode returns the verified source of address. Falls back to "".
	GetSourceCode(ctx context.Context, address string, chainID int64) string
}

// client is the default Client implementation.
type client struct {
	cfg      config
	provider Provider
	tracer   trace.Tracer

	once retry.Retry // single attempt, used by GetOwner

	eoaCache       *cache[bool]
	nonceCache     *cache[uint64]
	codeCache      *cache[string]
	signatureCache *cache[string]
	ownerCache     *cache[string]

	limiters *limiterSet
}

var _ Client = (*client)(nil)

// New builds a Client reading chain state from provider.
//
// Defaults: 3 attempts with a fixed 1s pause, an in-memory error ring of
// errcollector.DefaultCapacity records, the public explorer endpoints listed in
// DefaultExplorerURLs without API keys, 5 explorer requests per second per chain,
// a history page of 1000 records and at most 5 concurrent history fetches.
func New(provider Provider, opts ...Option) *client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		cfg:      cfg,
		provider: provider,
		tracer:   otel.Tracer(tracerName),
		once:     retry.New(retry.WithAttempts(1)),

		eoaCache:       newCache[bool]("eoa", cfg.cacheSizes.EOA),
		nonceCache:     newCache[uint64]("nonce", cfg.cacheSizes.Nonce),
		codeCache:      newCache[string]("code", cfg.cacheSizes.Code),
		signatureCache: newCache[string]("signature", cfg.cacheSizes.Signature),
		ownerCache:     newCache[string]("owner", cfg.cacheSizes.Owner),

		limiters: newLimiterSet(rate.Limit(cfg.explorerRPS), cfg.explorerBurst),
	}
}
