package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/metrics"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/validator"
	"github.com/gabapcia/chainsentry/internal/pkg/x/chflow"
)

// dispatch normalizes every valid event of eventsCh and hands it to every bot.
// The bot channels are closed once eventsCh is exhausted or ctx is done.
func (s *service) dispatch(ctx context.Context, eventsCh <-chan bot.TransactionEvent, outs []chan<- bot.TransactionEvent) {
	defer func() {
		for _, out := range outs {
			close(out)
		}
	}()

	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		if err := validator.Validate(event); err != nil {
			logger.Warn(ctx, "dropping invalid transaction event", "tx.hash", event.Hash, "error", err)
			continue
		}

		event = event.Normalize()
		metrics.EventsTotal.WithLabelValues(strconv.FormatInt(event.ChainID, 10)).Inc()

		if !chflow.Broadcast(ctx, outs, event) {
			return
		}
	}
}

// runBot feeds b one event at a time until eventsCh is closed or ctx is done.
func (s *service) runBot(ctx context.Context, b bot.Bot, eventsCh <-chan bot.TransactionEvent) {
	ctx = logger.Derive(ctx, "bot.name", b.Name())

	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		s.handle(ctx, b, event)
	}
}

// handle runs b on event and delivers its valid findings.
func (s *service) handle(ctx context.Context, b bot.Bot, event bot.TransactionEvent) {
	ctx = logger.Derive(ctx, "tx.hash", event.Hash, "chain.id", event.ChainID)

	start := time.Now()
	findings, err := safeHandle(ctx, b, event)
	metrics.BotHandleDuration.WithLabelValues(b.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BotErrorsTotal.WithLabelValues(b.Name()).Inc()
		logger.Error(ctx, "error handling transaction event", "error", err)
		return
	}

	var valid []bot.Finding
	for _, f := range findings {
		if err := f.Validate(); err != nil {
			logger.Error(ctx, "dropping invalid finding", "finding.alert_id", f.AlertID, "error", err)
			continue
		}

		metrics.FindingsTotal.WithLabelValues(b.Name(), string(f.Severity)).Inc()
		valid = append(valid, f)
	}

	if len(valid) == 0 {
		return
	}

	if err := s.notifier.NotifyFindings(ctx, b.Name(), event, valid); err != nil {
		metrics.NotifyErrorsTotal.Inc()
		logger.Error(ctx, "error notifying findings", "findings.count", len(valid), "error", err)
	}
}

// safeHandle turns a panicking bot into an error so one faulty rule cannot
// stop the others.
func safeHandle(ctx context.Context, b bot.Bot, event bot.TransactionEvent) (findings []bot.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bot panicked: %v", r)
		}
	}()

	return b.HandleTransaction(ctx, event)
}
