package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"
)

// labelChains are the chain ids the label service knows about.
var labelChains = []int64{1, 56, 137}

type labelResponse struct {
	Labels []struct {
		Label string `json:"label"`
	} `json:"labels"`
}

// GetLabel implements Client.
//
// Labels are best-effort hints: any failure, an unsupported chain or an
// unset label endpoint all resolve to "".
func (c *client) GetLabel(ctx context.Context, address string, chainID int64) string {
	address = normalize(address)
	if c.cfg.labelURL == "" || !slices.Contains(labelChains, chainID) {
		return ""
	}

	query := url.Values{
		"address": {address},
		"chainId": {strconv.FormatInt(chainID, 10)},
	}

	p := policy[string]{operation: "GetLabel", fallback: constant("")}
	label, _, _ := execute(ctx, c, p, address, func(ctx context.Context) (string, error) {
		body, status, err := transporthttp.GetBody(ctx, c.cfg.httpClient, c.cfg.labelURL+"?"+query.Encode())
		if err != nil {
			return "", err
		}

		if status < 200 || status > 299 {
			return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
		}

		var res labelResponse
		if err := json.Unmarshal(body, &res); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
		}

		if len(res.Labels) == 0 {
			return "", nil
		}
		return res.Labels[0].Label, nil
	})

	return label
}
