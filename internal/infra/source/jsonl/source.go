// Package jsonl replays transaction events stored as JSON lines, one
// bot.TransactionEvent per line.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pipeline"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/x/chflow"
)

// maxLineSize bounds a single encoded event. Blocks with large receipts can
// produce lines far above bufio's default.
const maxLineSize = 16 << 20

// Stdin is the path Open reads from os.Stdin.
const Stdin = "-"

type source struct {
	r io.Reader

	mu     sync.Mutex
	cancel context.CancelFunc
}

var _ pipeline.EventSource = (*source)(nil)

// NewSource reads events from r. If r is an io.Closer it is closed by Close.
func NewSource(r io.Reader) *source {
	return &source{r: r}
}

// Open reads events from the file at path, or from stdin when path is Stdin.
func Open(path string) (*source, error) {
	if path == Stdin {
		return NewSource(io.NopCloser(os.Stdin)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return NewSource(f), nil
}

// Start implements pipeline.EventSource. Lines that are blank or cannot be
// decoded are skipped with a warning. The channel is closed at end of input.
func (s *source) Start(ctx context.Context) (<-chan bot.TransactionEvent, error) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	eventsCh := make(chan bot.TransactionEvent)
	go func() {
		defer close(eventsCh)

		scanner := bufio.NewScanner(s.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		line := 0
		for scanner.Scan() {
			line++

			data := scanner.Bytes()
			if len(data) == 0 {
				continue
			}

			var event bot.TransactionEvent
			if err := json.Unmarshal(data, &event); err != nil {
				logger.Warn(ctx, "skipping malformed event line", "input.line", line, "error", err)
				continue
			}

			if !chflow.Send(ctx, eventsCh, event) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			logger.Error(ctx, "error reading events", "input.line", line, "error", err)
		}
	}()

	return eventsCh, nil
}

// Close stops the reader and closes the underlying input when it is closable.
func (s *source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if c, ok := s.r.(io.Closer); ok {
		_ = c.Close()
	}
}
