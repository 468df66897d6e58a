// Package fetcherhealth turns the failures recorded by the fetch client into
// findings, so that a degraded explorer or RPC provider is visible in the same
// stream as the detections it may be suppressing.
package fetcherhealth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/pkg/types"
)

const (
	// Name identifies the bot in logs and metrics.
	Name = "fetcher-health"

	// AlertID is set on every finding of this bot.
	AlertID = "FETCHER-DEGRADED"
)

type detector struct {
	records errcollector.Drainer
}

var _ bot.Bot = (*detector)(nil)

// New builds the bot reading from records.
func New(records errcollector.Drainer) *detector {
	return &detector{records: records}
}

func (d *detector) Name() string {
	return Name
}

// HandleTransaction drains the error collector and reports what it held as a
// single finding. Nothing is reported while the collector is empty.
func (d *detector) HandleTransaction(ctx context.Context, event bot.TransactionEvent) ([]bot.Finding, error) {
	records, err := d.records.Drain(ctx)
	if err != nil {
		return nil, fmt.Errorf("draining error records: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	operations := types.NewSet[string]()
	for _, r := range records {
		operations.Add(r.Operation)
	}

	last := records[len(records)-1]

	f := bot.NewFinding(
		"Fetch Client Degraded",
		fmt.Sprintf("%d remote lookups exhausted their retries since the last report", len(records)),
		AlertID,
		bot.SeverityLow,
		bot.FindingTypeDegraded,
	)

	f.Metadata["count"] = strconv.Itoa(len(records))
	f.Metadata["operations"] = strings.Join(types.Sorted(operations), ",")
	f.Metadata["lastOperation"] = last.Operation
	f.Metadata["lastKey"] = last.Key
	f.Metadata["lastError"] = last.Message
	f.Metadata["lastErrorAt"] = last.Time.Format(time.RFC3339)
	f.Metadata["txHash"] = event.Hash

	return []bot.Finding{f}, nil
}
