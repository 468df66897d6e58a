// Package pipeline wires an event source to the detection bots and forwards
// the findings they produce to a notifier.
//
// Every bot runs in its own goroutine and receives events one at a time, in
// source order. A slow bot only delays itself until its buffer is full.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/chainsentry/internal/bot"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
//
// The service must be started only once per lifecycle.
var ErrServiceAlreadyStarted = errors.New("service already started")

// DefaultBufferSize is how many events may wait in front of each bot.
const DefaultBufferSize = 64

// EventSource produces the transaction events inspected by the bots.
type EventSource interface {
	// Start begins producing events. The returned channel is closed once the
	// source is exhausted or ctx is done.
	Start(ctx context.Context) (<-chan bot.TransactionEvent, error)

	// Close releases the resources held by the source.
	Close()
}

// FindingNotifier delivers the findings a bot produced for one event.
type FindingNotifier interface {
	NotifyFindings(ctx context.Context, botName string, event bot.TransactionEvent, findings []bot.Finding) error
}

// Service defines the pipeline lifecycle.
type Service interface {
	// Start launches the source and one worker per bot.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	// Call Close to shut down all background routines.
	Start(ctx context.Context) error

	// Done is closed once the source is exhausted and every bot handled
	// every event it received. It is nil before Start.
	Done() <-chan struct{}

	// Close cancels all routines and closes the source.
	// It is safe to call Close even if the service was never started.
	Close()
}

type config struct {
	bufferSize int
}

// Option defines a functional option for configuring the service.
type Option func(*config)

// WithBufferSize sets how many events may wait in front of each bot.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// closeFunc stops background goroutines and dependencies.
type closeFunc func()

type service struct {
	cfg config

	mu        sync.Mutex    // protects lifecycle state
	isStarted bool          // ensures Start is called only once
	closeFunc closeFunc     // cancels context and closes the source
	done      chan struct{} // closed when every worker returned

	source   EventSource
	notifier FindingNotifier
	bots     []bot.Bot
}

var _ Service = (*service)(nil)

// Start begins dispatching events from the source to every bot.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	eventsCh, err := s.source.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	var (
		wg   sync.WaitGroup
		outs = make([]chan<- bot.TransactionEvent, len(s.bots))
		done = make(chan struct{})
	)

	for i, b := range s.bots {
		ch := make(chan bot.TransactionEvent, s.cfg.bufferSize)
		outs[i] = ch

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runBot(ctx, b, ch)
		}()
	}

	go func() {
		s.dispatch(ctx, eventsCh, outs)
		wg.Wait()
		close(done)
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		s.source.Close()
	}
	s.isStarted = true
	return nil
}

// Done implements Service.
func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// Close shuts down all processing routines and the source.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New creates a pipeline feeding events from source to bots and findings to notifier.
func New(source EventSource, notifier FindingNotifier, bots []bot.Bot, opts ...Option) *service {
	cfg := config{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		bots:     bots,
	}
}
