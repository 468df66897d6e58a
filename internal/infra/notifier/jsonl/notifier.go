// Package jsonl writes findings as JSON lines, one finding per line.
package jsonl

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pipeline"
)

// Line is the record written for every finding.
type Line struct {
	Bot         string      `json:"bot"`
	ChainID     int64       `json:"chainId"`
	TxHash      string      `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber,omitempty"`
	Finding     bot.Finding `json:"finding"`
}

type notifier struct {
	mu  sync.Mutex // bots notify concurrently
	enc *json.Encoder
}

var _ pipeline.FindingNotifier = (*notifier)(nil)

// NewNotifier writes findings to w.
func NewNotifier(w io.Writer) *notifier {
	return &notifier{enc: json.NewEncoder(w)}
}

// NotifyFindings implements pipeline.FindingNotifier. Lines of one call are
// written contiguously.
func (n *notifier) NotifyFindings(_ context.Context, botName string, event bot.TransactionEvent, findings []bot.Finding) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, f := range findings {
		line := Line{
			Bot:         botName,
			ChainID:     event.ChainID,
			TxHash:      event.Hash,
			BlockNumber: event.BlockNumber,
			Finding:     f,
		}

		if err := n.enc.Encode(line); err != nil {
			return err
		}
	}

	return nil
}
