package fetcher

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"
)

// ErrInvalidSelector is returned by GetSignature for anything other than 4 hex-encoded bytes.
var ErrInvalidSelector = errors.New("invalid function selector")

// unknownSelectorPrefix starts the body returned for selectors missing from the database.
const unknownSelectorPrefix = "404"

// GetSignature implements Client.
//
// Unlike every other lookup, an exhausted signature lookup is returned as an
// error instead of a fallback value. Known signatures are cached; unknown
// selectors are not.
func (c *client) GetSignature(ctx context.Context, selector string) (string, error) {
	selector = strings.TrimPrefix(normalize(selector), "0x")
	if _, err := hex.DecodeString(selector); err != nil || len(selector) != 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
	}

	if sig, ok := c.signatureCache.get(selector); ok {
		return sig, nil
	}

	p := policy[string]{operation: "GetSignature", propagate: true}
	sig, _, err := execute(ctx, c, p, selector, func(ctx context.Context) (string, error) {
		body, status, err := transporthttp.GetBody(ctx, c.cfg.httpClient, c.cfg.signatureURL+"/"+selector)
		if err != nil {
			return "", err
		}

		text := strings.TrimSpace(string(body))
		if strings.HasPrefix(text, unknownSelectorPrefix) || status == http.StatusNotFound {
			return "", nil
		}

		if status < 200 || status > 299 {
			return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
		}

		first, _, _ := strings.Cut(text, ";")
		return strings.TrimSpace(first), nil
	})
	if err != nil {
		return "", err
	}

	if sig != "" {
		c.signatureCache.add(selector, sig)
	}

	return sig, nil
}
