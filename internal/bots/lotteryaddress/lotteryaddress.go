// Package lotteryaddress reports changes to the privileged addresses of the
// PancakeSwap lottery: operator, treasury, injector and random generator.
package lotteryaddress

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// Name identifies the bot in logs and metrics.
	Name = "lottery-address"

	// AddressesAlertID is set on findings raised for operator/treasury/injector changes.
	AddressesAlertID = "CAKE-LOTTERY-ADDRESSES"

	// RandomGeneratorAlertID is set on findings raised for random generator changes.
	RandomGeneratorAlertID = "CAKE-LOTTERY-RNG"
)

// DefaultLottery is the PancakeSwap lottery v2 contract on BNB Chain.
var DefaultLottery = common.HexToAddress("0x5aF6D33DE2ccEC94efb1bDF8f92Bd58085432d2c")

const lotteryABI = `[
	{"type":"event","name":"NewOperatorAndTreasuryAndInjectorAddresses","anonymous":false,"inputs":[
		{"name":"operator","type":"address","indexed":false},
		{"name":"treasury","type":"address","indexed":false},
		{"name":"injector","type":"address","indexed":false}
	]},
	{"type":"event","name":"NewRandomGenerator","anonymous":false,"inputs":[
		{"name":"randomGenerator","type":"address","indexed":true}
	]}
]`

var (
	lottery              = bot.MustParseABI(lotteryABI)
	addressesEvent       = lottery.Events["NewOperatorAndTreasuryAndInjectorAddresses"]
	randomGeneratorEvent = lottery.Events["NewRandomGenerator"]
)

// OwnerFetcher resolves the owner of a contract at a given block.
type OwnerFetcher interface {
	GetOwner(ctx context.Context, address string, block uint64) string
}

type detector struct {
	lottery common.Address
	owners  OwnerFetcher
}

var _ bot.Bot = (*detector)(nil)

// New builds the bot watching the lottery contract at address.
func New(address common.Address, owners OwnerFetcher) *detector {
	return &detector{lottery: address, owners: owners}
}

func (d *detector) Name() string {
	return Name
}

// HandleTransaction re-emits the new addresses carried by the lottery logs of
// event, together with the lottery owner at that block.
func (d *detector) HandleTransaction(ctx context.Context, event bot.TransactionEvent) ([]bot.Finding, error) {
	logs := event.FilterLogs(d.lottery, addressesEvent.ID, randomGeneratorEvent.ID)
	if len(logs) == 0 {
		return nil, nil
	}

	owner := d.owners.GetOwner(ctx, d.lottery.Hex(), event.BlockNumber)

	findings := make([]bot.Finding, 0, len(logs))
	for _, l := range logs {
		f, err := d.newFinding(event, l, owner)
		if err != nil {
			logger.Warn(ctx, "skipping undecodable lottery log",
				"bot.name", Name,
				"tx.hash", event.Hash,
				"error", err,
			)
			continue
		}

		findings = append(findings, f)
	}

	return findings, nil
}

func (d *detector) newFinding(event bot.TransactionEvent, l bot.Log, owner string) (bot.Finding, error) {
	var (
		f  bot.Finding
		ev = addressesEvent
	)

	if l.Topics[0] == randomGeneratorEvent.ID {
		ev = randomGeneratorEvent
	}

	args, err := bot.DecodeLog(ev, l)
	if err != nil {
		return f, err
	}

	if ev.ID == randomGeneratorEvent.ID {
		f = bot.NewFinding(
			"Lottery Random Generator Changed",
			fmt.Sprintf("The lottery random generator was set to %s", bot.FormatValue(args["randomGenerator"])),
			RandomGeneratorAlertID,
			bot.SeverityHigh,
			bot.FindingTypeInfo,
		)
	} else {
		f = bot.NewFinding(
			"Lottery Addresses Changed",
			"The lottery operator addresses were updated",
			AddressesAlertID,
			bot.SeverityHigh,
			bot.FindingTypeInfo,
		)
	}

	f.Protocol = "PancakeSwap"
	for key, value := range args {
		f.Metadata[key] = bot.FormatValue(value)
	}
	f.Metadata["lottery"] = bot.FormatValue(d.lottery)
	f.Metadata["owner"] = owner
	f.Metadata["sender"] = event.From

	return f, nil
}
