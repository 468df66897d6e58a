package ethereum

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pipeline"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainsentry/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// averageNumberOfTransactionsPerBlock defines the default buffer size for the event channel.
	averageNumberOfTransactionsPerBlock = 200

	// DefaultPollInterval is the expected time between blocks.
	DefaultPollInterval = 12 * time.Second
)

// ErrNoCheckpointFound is returned by LoadCheckpoint when nothing was saved yet for a chain.
var ErrNoCheckpointFound = errors.New("no checkpoint found for chain")

// CheckpointStorage persists the last block whose events were fully emitted.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the checkpoint of chainID.
	SaveCheckpoint(ctx context.Context, chainID int64, block uint64) error

	// LoadCheckpoint returns ErrNoCheckpointFound when chainID has no checkpoint.
	LoadCheckpoint(ctx context.Context, chainID int64) (uint64, error)
}

type (
	// transactionResponse is the subset of an RPC transaction object turned into an event.
	transactionResponse struct {
		Hash  string        `json:"hash"`
		From  string        `json:"from"`
		To    string        `json:"to"`
		Value *hexutil.Big  `json:"value"`
		Input hexutil.Bytes `json:"input"`
	}

	// blockResponse is the subset of eth_getBlockByNumber used by the source.
	blockResponse struct {
		Number       hexutil.Uint64        `json:"number"`
		Hash         string                `json:"hash"`
		Timestamp    hexutil.Uint64        `json:"timestamp"`
		Transactions []transactionResponse `json:"transactions"`
	}

	// receiptResponse is the subset of eth_getBlockReceipts used by the source.
	receiptResponse struct {
		TransactionHash string    `json:"transactionHash"`
		Logs            []bot.Log `json:"logs"`
	}
)

// toEvents pairs every transaction of b with the logs of its receipt.
func (b blockResponse) toEvents(chainID int64, receipts []receiptResponse) []bot.TransactionEvent {
	logs := make(map[string][]bot.Log, len(receipts))
	for _, r := range receipts {
		logs[strings.ToLower(r.TransactionHash)] = r.Logs
	}

	events := make([]bot.TransactionEvent, len(b.Transactions))
	for i, tx := range b.Transactions {
		events[i] = bot.TransactionEvent{
			ChainID:     chainID,
			Hash:        tx.Hash,
			From:        tx.From,
			To:          tx.To,
			Value:       tx.Value,
			Input:       tx.Input,
			BlockNumber: uint64(b.Number),
			Timestamp:   int64(b.Timestamp),
			Logs:        logs[strings.ToLower(tx.Hash)],
		}
	}
	return events
}

type sourceConfig struct {
	pollInterval time.Duration
	checkpoints  CheckpointStorage
}

// SourceOption configures a block source.
type SourceOption func(*sourceConfig)

// WithPollInterval sets the pause between two polls of the node.
func WithPollInterval(d time.Duration) SourceOption {
	return func(c *sourceConfig) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithCheckpointStorage makes the source resume after the last checkpointed block.
func WithCheckpointStorage(s CheckpointStorage) SourceOption {
	return func(c *sourceConfig) {
		c.checkpoints = s
	}
}

// blockSource polls the node for new blocks and emits one event per transaction.
type blockSource struct {
	cfg     sourceConfig
	conn    jsonrpc.Client
	chainID int64

	mu     sync.Mutex
	cancel context.CancelFunc
}

var _ pipeline.EventSource = (*blockSource)(nil)

// NewBlockSource creates a source streaming the transactions of chainID from conn.
func NewBlockSource(conn jsonrpc.Client, chainID int64, opts ...SourceOption) *blockSource {
	cfg := sourceConfig{pollInterval: DefaultPollInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &blockSource{cfg: cfg, conn: conn, chainID: chainID}
}

// getLatestBlockNumber fetches the latest block number from the node.
func (s *blockSource) getLatestBlockNumber(ctx context.Context) (uint64, error) {
	n, err := jsonrpc.Call[hexutil.Uint64](ctx, s.conn, "eth_blockNumber")
	return uint64(n), err
}

// getBlockEvents retrieves a full block and its receipts.
func (s *blockSource) getBlockEvents(ctx context.Context, number uint64) ([]bot.TransactionEvent, error) {
	block, err := jsonrpc.Call[blockResponse](ctx, s.conn, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	if err != nil {
		return nil, err
	}

	receipts, err := jsonrpc.Call[[]receiptResponse](ctx, s.conn, "eth_getBlockReceipts", hexutil.EncodeUint64(number))
	if err != nil {
		return nil, err
	}

	return block.toEvents(s.chainID, receipts), nil
}

// startBlock resolves the first block to emit: right after the checkpoint when
// there is one, otherwise the latest block.
func (s *blockSource) startBlock(ctx context.Context) (uint64, error) {
	if s.cfg.checkpoints != nil {
		block, err := s.cfg.checkpoints.LoadCheckpoint(ctx, s.chainID)
		if err == nil {
			return block + 1, nil
		}

		if !errors.Is(err, ErrNoCheckpointFound) {
			return 0, err
		}
	}

	return s.getLatestBlockNumber(ctx)
}

// pollNewBlocks emits every block from next up to the latest known block and
// returns the next block to poll. A failed block is retried on the next poll
// instead of being skipped.
func (s *blockSource) pollNewBlocks(ctx context.Context, next uint64, eventsCh chan<- bot.TransactionEvent) uint64 {
	latest, err := s.getLatestBlockNumber(ctx)
	if err != nil {
		logger.Error(ctx, "failed to fetch latest block number", "chain.id", s.chainID, "error", err)
		return next
	}

	for ; next <= latest; next++ {
		events, err := s.getBlockEvents(ctx, next)
		if err != nil {
			logger.Error(ctx, "failed to fetch block", "chain.id", s.chainID, "block.number", next, "error", err)
			return next
		}

		for _, ev := range events {
			if !chflow.Send(ctx, eventsCh, ev) {
				return next
			}
		}

		if s.cfg.checkpoints == nil {
			continue
		}

		if err := s.cfg.checkpoints.SaveCheckpoint(ctx, s.chainID, next); err != nil {
			logger.Error(ctx, "failed to save checkpoint", "chain.id", s.chainID, "block.number", next, "error", err)
		}
	}

	return next
}

// Start implements pipeline.EventSource. The first poll happens right away and
// the returned channel is closed when ctx is done or Close is called.
func (s *blockSource) Start(ctx context.Context) (<-chan bot.TransactionEvent, error) {
	next, err := s.startBlock(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	eventsCh := make(chan bot.TransactionEvent, averageNumberOfTransactionsPerBlock)
	go func() {
		defer close(eventsCh)

		ticker := time.NewTicker(s.cfg.pollInterval)
		defer ticker.Stop()

		for {
			next = s.pollNewBlocks(ctx, next, eventsCh)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return eventsCh, nil
}

// Close implements pipeline.EventSource.
func (s *blockSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
