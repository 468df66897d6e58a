package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"

	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"

	"golang.org/x/time/rate"
)

var (
	// ErrUnsupportedChain is returned when no explorer is configured for a chain id.
	ErrUnsupportedChain = errors.New("no explorer configured for chain")

	// ErrSoftFailure is returned when the explorer answers with a retryable message
	// such as a rate limit, a query timeout or an empty history.
	ErrSoftFailure = errors.New("explorer soft failure")

	// ErrUnexpectedStatus is returned for non-2xx HTTP answers.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// DefaultExplorerURLs maps chain ids to their public Etherscan-family API.
var DefaultExplorerURLs = map[int64]string{
	1:     "https://api.etherscan.io/api",
	10:    "https://api-optimistic.etherscan.io/api",
	56:    "https://api.bscscan.com/api",
	137:   "https://api.polygonscan.com/api",
	250:   "https://api.ftmscan.com/api",
	42161: "https://api.arbiscan.io/api",
	43114: "https://api.snowtrace.io/api",
}

// softFailurePrefixes are explorer messages that are retried rather than trusted.
var softFailurePrefixes = []string{
	"NOTOK",
	"Query Timeout",
	"No transactions found",
}

// explorerResponse is the envelope shared by every Etherscan-family endpoint.
type explorerResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// limiterSet lazily creates one token bucket per chain id.
type limiterSet struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[int64]*rate.Limiter
}

// A non-positive limit disables rate limiting.
func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	if limit <= 0 {
		limit = rate.Inf
	}

	return &limiterSet{
		limit:    limit,
		burst:    burst,
		limiters: make(map[int64]*rate.Limiter),
	}
}

// wait blocks until the explorer of chainID may be called again or ctx is done.
func (s *limiterSet) wait(ctx context.Context, chainID int64) error {
	s.mu.Lock()
	l, ok := s.limiters[chainID]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[chainID] = l
	}
	s.mu.Unlock()

	return l.Wait(ctx)
}

// pickKey returns one of keys uniformly at random, or "" when there is none.
func pickKey(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	default:
		return keys[rand.IntN(len(keys))]
	}
}

// explorerQuery performs a single explorer request and returns its "result" field.
func (c *client) explorerQuery(ctx context.Context, chainID int64, params url.Values) (json.RawMessage, error) {
	explorer, ok := c.cfg.explorers[chainID]
	if !ok || explorer.URL == "" {
		return nil, retry.Permanent(fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID))
	}

	if err := c.limiters.wait(ctx, chainID); err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	if key := pickKey(explorer.APIKeys); key != "" {
		query.Set("apikey", key)
	}

	body, status, err := transporthttp.GetBody(ctx, c.cfg.httpClient, explorer.URL+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var res explorerResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	for _, prefix := range softFailurePrefixes {
		if strings.HasPrefix(res.Message, prefix) {
			return nil, fmt.Errorf("%w: %s", ErrSoftFailure, res.Message)
		}
	}

	return res.Result, nil
}

// decodeResult unmarshals an explorer result, reporting a shape mismatch
// (e.g. an error string where a list was expected) as ErrUnexpectedResponse.
func decodeResult[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return out, nil
}
