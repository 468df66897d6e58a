// Package privatekey detects likely private-key compromises: several fresh
// victims draining native funds to the same young externally-owned account.
package privatekey

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/fetcher"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/types"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// Name identifies the bot in logs and metrics.
	Name = "private-key-compromise"

	// AlertID is set on every finding of this bot.
	AlertID = "PKC-1"

	// DefaultMinVictims is how many distinct victims an attacker needs before a finding is emitted.
	DefaultMinVictims = 3

	// DefaultMaxAttackerNonce bounds the nonce of an attacker account. It sits
	// below fetcher.NonceFallback, so an unreachable provider never qualifies
	// an attacker.
	DefaultMaxAttackerNonce = 10_000

	// DefaultMaxTrackedAttackers bounds how many candidate attackers keep
	// their victims in memory. The least recently seen one is forgotten first.
	DefaultMaxTrackedAttackers = 10_000
)

// Fetcher is the subset of fetcher.Client the bot relies on.
type Fetcher interface {
	IsEOA(ctx context.Context, address string) (isEOA bool, ok bool)
	GetNonce(ctx context.Context, address string) uint64
	GetAddressInfo(ctx context.Context, address, counterparty string, chainID int64, txHash string) fetcher.AddressInfo
	HasValidEntries(ctx context.Context, address string, chainID int64, txHash string) bool
	HaveInteractedWithSameAddress(ctx context.Context, victims []string, attacker string, chainID int64) bool
	GetLabel(ctx context.Context, address string, chainID int64) string
}

// AlertedStore remembers attackers that were already reported.
type AlertedStore interface {
	IsAlerted(ctx context.Context, attacker string) (bool, error)
	MarkAlerted(ctx context.Context, attacker string) error
}

type config struct {
	minVictims       int          // distinct victims needed for a finding
	maxAttackerNonce uint64       // exclusive upper bound of an attacker nonce
	maxTracked       int          // candidate attackers kept in memory
	alerted          AlertedStore // attackers already reported
}

// Option defines a functional option for configuring the bot.
type Option func(*config)

// WithMinVictims sets how many distinct victims trigger a finding. Values below 2 are ignored.
func WithMinVictims(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.minVictims = n
		}
	}
}

// WithMaxAttackerNonce sets the exclusive upper bound of an attacker nonce.
func WithMaxAttackerNonce(n uint64) Option {
	return func(c *config) {
		c.maxAttackerNonce = n
	}
}

// WithMaxTrackedAttackers bounds how many candidate attackers are remembered
// between events. Values below 1 are ignored.
func WithMaxTrackedAttackers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTracked = n
		}
	}
}

// WithAlertedStore replaces the in-memory store of reported attackers.
func WithAlertedStore(s AlertedStore) Option {
	return func(c *config) {
		c.alerted = s
	}
}

// detector is not safe for concurrent use; the pipeline hands it one event at a time.
type detector struct {
	cfg     config
	fetcher Fetcher

	victims *lru.Cache[string, types.Set[string]] // "<chain>:<attacker>" -> victims
}

var _ bot.Bot = (*detector)(nil)

// New builds the bot. Without options it needs DefaultMinVictims victims, an
// attacker nonce below DefaultMaxAttackerNonce and keeps reported attackers in memory.
func New(f Fetcher, opts ...Option) *detector {
	cfg := config{
		minVictims:       DefaultMinVictims,
		maxAttackerNonce: DefaultMaxAttackerNonce,
		maxTracked:       DefaultMaxTrackedAttackers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.alerted == nil {
		cfg.alerted = NewMemoryStore()
	}

	// lru.New only fails for a non-positive size, which the options rule out.
	victims, _ := lru.New[string, types.Set[string]](cfg.maxTracked)

	return &detector{
		cfg:     cfg,
		fetcher: f,
		victims: victims,
	}
}

func (d *detector) Name() string {
	return Name
}

// HandleTransaction records event as a victim transfer when it qualifies and
// reports the receiving account once enough distinct victims were seen.
func (d *detector) HandleTransaction(ctx context.Context, event bot.TransactionEvent) ([]bot.Finding, error) {
	event = event.Normalize()
	victim, attacker := event.From, event.To

	if !isNativeTransfer(event) {
		return nil, nil
	}

	key := fmt.Sprintf("%d:%s", event.ChainID, attacker)
	alerted, err := d.cfg.alerted.IsAlerted(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("checking alerted attacker %s: %w", attacker, err)
	}

	if alerted || !d.qualifies(ctx, event) {
		return nil, nil
	}

	victims, ok := d.victims.Get(key)
	if !ok {
		victims = types.NewSet[string]()
		d.victims.Add(key, victims)
	}
	victims.Add(victim)
	if victims.Len() < d.cfg.minVictims {
		return nil, nil
	}

	finding := d.newFinding(ctx, event.ChainID, attacker, types.Sorted(victims))

	d.victims.Remove(key)
	if err := d.cfg.alerted.MarkAlerted(ctx, key); err != nil {
		logger.Error(ctx, "error marking attacker as alerted",
			"bot.name", Name,
			"attacker.address", attacker,
			"error", err,
		)
	}

	return []bot.Finding{finding}, nil
}

// isNativeTransfer reports whether event moves native value between two distinct accounts.
func isNativeTransfer(event bot.TransactionEvent) bool {
	return event.To != "" &&
		event.From != event.To &&
		len(event.Input) == 0 &&
		event.ValueWei().Sign() > 0
}

// qualifies checks the receiving account and the history of both parties.
func (d *detector) qualifies(ctx context.Context, event bot.TransactionEvent) bool {
	victim, attacker := event.From, event.To

	isEOA, ok := d.fetcher.IsEOA(ctx, attacker)
	if !ok || !isEOA {
		return false
	}

	if d.fetcher.GetNonce(ctx, attacker) >= d.cfg.maxAttackerNonce {
		return false
	}

	if d.fetcher.GetAddressInfo(ctx, victim, attacker, event.ChainID, event.Hash).HasInteracted {
		return false
	}

	return d.fetcher.HasValidEntries(ctx, attacker, event.ChainID, event.Hash)
}

func (d *detector) newFinding(ctx context.Context, chainID int64, attacker string, victims []string) bot.Finding {
	shared := d.fetcher.HaveInteractedWithSameAddress(ctx, victims, attacker, chainID)
	label := d.fetcher.GetLabel(ctx, attacker, chainID)

	confidence := 0.6
	if shared {
		confidence = 0.8
	}

	f := bot.NewFinding(
		"Possible Private Key Compromise",
		fmt.Sprintf("%s received native funds from %d fresh victims", attacker, len(victims)),
		AlertID,
		bot.SeverityHigh,
		bot.FindingTypeSuspicious,
	)

	f.Metadata["attacker"] = attacker
	f.Metadata["victims"] = strings.Join(victims, ",")
	f.Metadata["victimCount"] = strconv.Itoa(len(victims))
	f.Metadata["sharedCounterparty"] = strconv.FormatBool(shared)
	f.Metadata["chainId"] = strconv.FormatInt(chainID, 10)
	if label != "" {
		f.Metadata["attackerLabel"] = label
	}

	f.Labels = append(f.Labels, bot.Label{Entity: attacker, EntityType: "Address", Label: "Attacker", Confidence: confidence})
	for _, v := range victims {
		f.Labels = append(f.Labels, bot.Label{Entity: v, EntityType: "Address", Label: "Victim", Confidence: confidence})
	}

	return f
}
