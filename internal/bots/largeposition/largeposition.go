// Package largeposition reports Alpaca Finance leveraged positions whose loan
// exceeds the threshold configured for the vault they borrow from.
package largeposition

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	// Name identifies the bot in logs and metrics.
	Name = "large-position"

	// AlertID is set on every finding of this bot.
	AlertID = "ALPACA-LARGE-POSITION"
)

const vaultABI = `[
	{"type":"event","name":"Work","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"loan","type":"uint256","indexed":false}
	]}
]`

var workEvent = bot.MustParseABI(vaultABI).Events["Work"]

type detector struct {
	thresholds Thresholds
}

var _ bot.Bot = (*detector)(nil)

// New builds the bot. A nil thresholds map selects DefaultThresholds.
func New(thresholds Thresholds) *detector {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}

	return &detector{thresholds: thresholds}
}

func (d *detector) Name() string {
	return Name
}

// HandleTransaction emits one finding per Work log whose loan is strictly
// greater than the threshold of the emitting vault.
func (d *detector) HandleTransaction(ctx context.Context, event bot.TransactionEvent) ([]bot.Finding, error) {
	var findings []bot.Finding

	for _, l := range event.Logs {
		vault, ok := d.thresholds[l.Address]
		if !ok || len(l.Topics) == 0 || l.Topics[0] != workEvent.ID {
			continue
		}

		positionID, loan, err := decodeWork(workEvent, l)
		if err != nil {
			logger.Warn(ctx, "skipping undecodable work log",
				"bot.name", Name,
				"tx.hash", event.Hash,
				"vault.address", vault.Address.Hex(),
				"error", err,
			)
			continue
		}

		if loan.Cmp(vault.Threshold) <= 0 {
			continue
		}

		findings = append(findings, newFinding(vault, positionID, loan))
	}

	return findings, nil
}

func decodeWork(event abi.Event, l bot.Log) (*big.Int, *big.Int, error) {
	args, err := bot.DecodeLog(event, l)
	if err != nil {
		return nil, nil, err
	}

	id, okID := args["id"].(*big.Int)
	loan, okLoan := args["loan"].(*big.Int)
	if !okID || !okLoan {
		return nil, nil, fmt.Errorf("unexpected work arguments: %v", args)
	}

	return id, loan, nil
}

func newFinding(vault Vault, positionID, loan *big.Int) bot.Finding {
	f := bot.NewFinding(
		"Large Position Opened",
		fmt.Sprintf("Position %s borrowed %s from %s", positionID, loan, vault.Name),
		AlertID,
		bot.SeverityInfo,
		bot.FindingTypeInfo,
	)

	f.Protocol = "Alpaca Finance"
	f.Metadata["positionId"] = positionID.String()
	f.Metadata["loanAmount"] = loan.String()
	f.Metadata["vault"] = bot.FormatValue(vault.Address)
	f.Metadata["vaultName"] = vault.Name

	return f
}
