package fetcher

import (
	"maps"
	"time"

	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultSignatureURL serves one file per selector, named after its 8 hex chars.
	DefaultSignatureURL = "https://raw.githubusercontent.com/ethereum-lists/4bytes/master/signatures"

	// DefaultHistoryOffset is the page size requested from the explorer.
	DefaultHistoryOffset = 1000

	// DefaultFanOutLimit bounds concurrent history fetches of HaveInteractedWithSameAddress.
	DefaultFanOutLimit = 5

	// DefaultExplorerRPS is the per-chain explorer request rate.
	DefaultExplorerRPS = 5
)

// CacheSizes holds the capacity of each LRU cache.
type CacheSizes struct {
	EOA       int
	Nonce     int
	Code      int
	Signature int
	Owner     int
}

// DefaultCacheSizes are the capacities used unless WithCacheSizes is given.
var DefaultCacheSizes = CacheSizes{
	EOA:       50_000,
	Nonce:     50_000,
	Code:      10_000,
	Signature: 10_000,
	Owner:     10_000,
}

// Explorer is an Etherscan-compatible API endpoint and the keys it accepts.
type Explorer struct {
	URL     string
	APIKeys []string
}

// config holds internal settings of the client.
type config struct {
	errSink       errcollector.Sink
	httpClient    *retryablehttp.Client
	retry         retry.Retry
	explorers     map[int64]Explorer
	explorerRPS   float64
	explorerBurst int
	historyOffset int
	fanOutLimit   int
	signatureURL  string
	labelURL      string
	cacheSizes    CacheSizes
}

// Option defines a functional option for configuring the client.
type Option func(*config)

func defaultConfig() config {
	explorers := make(map[int64]Explorer, len(DefaultExplorerURLs))
	for chainID, url := range DefaultExplorerURLs {
		explorers[chainID] = Explorer{URL: url}
	}

	return config{
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(time.Second),
		),
		errSink:       errcollector.NewRing(errcollector.DefaultCapacity),
		httpClient:    transporthttp.NewClient(),
		explorers:     explorers,
		explorerRPS:   DefaultExplorerRPS,
		explorerBurst: 1,
		historyOffset: DefaultHistoryOffset,
		fanOutLimit:   DefaultFanOutLimit,
		signatureURL:  DefaultSignatureURL,
		cacheSizes:    DefaultCacheSizes,
	}
}

// WithErrorSink sets where exhausted code, nonce and storage lookups are recorded.
func WithErrorSink(sink errcollector.Sink) Option {
	return func(c *config) {
		c.errSink = sink
	}
}

// WithHTTPClient sets the HTTP client used for explorer, signature and label calls.
// Transport-level retries should stay disabled: the client already retries each call.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithRetry replaces the retry policy applied to every remote call.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithExplorers merges the given explorers into the default table. An entry
// with an empty URL keeps the default URL for that chain and only sets its keys.
func WithExplorers(explorers map[int64]Explorer) Option {
	return func(c *config) {
		merged := maps.Clone(c.explorers)
		for chainID, e := range explorers {
			if e.URL == "" {
				e.URL = merged[chainID].URL
			}
			merged[chainID] = e
		}
		c.explorers = merged
	}
}

// WithExplorerRateLimit sets the per-chain explorer request rate and burst.
func WithExplorerRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.explorerRPS = rps
		c.explorerBurst = max(burst, 1)
	}
}

// WithHistoryOffset sets how many records a history page holds.
func WithHistoryOffset(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.historyOffset = n
		}
	}
}

// WithFanOutLimit bounds concurrent history fetches.
func WithFanOutLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fanOutLimit = n
		}
	}
}

// WithSignatureURL sets the base URL of the selector database.
func WithSignatureURL(url string) Option {
	return func(c *config) {
		c.signatureURL = url
	}
}

// WithLabelURL sets the label service endpoint. Labels are disabled while it is empty.
func WithLabelURL(url string) Option {
	return func(c *config) {
		c.labelURL = url
	}
}

// WithCacheSizes overrides the LRU capacities. Zero fields keep their default.
func WithCacheSizes(sizes CacheSizes) Option {
	return func(c *config) {
		c.cacheSizes = CacheSizes{
			EOA:       orDefault(sizes.EOA, DefaultCacheSizes.EOA),
			Nonce:     orDefault(sizes.Nonce, DefaultCacheSizes.Nonce),
			Code:      orDefault(sizes.Code, DefaultCacheSizes.Code),
			Signature: orDefault(sizes.Signature, DefaultCacheSizes.Signature),
			Owner:     orDefault(sizes.Owner, DefaultCacheSizes.Owner),
		}
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
