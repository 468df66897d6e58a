// Package autocakeadmin reports privileged activity on the PancakeSwap
// auto-compounding CAKE vault: pause switches and admin-only setter calls.
package autocakeadmin

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// Name identifies the bot in logs and metrics.
	Name = "auto-cake-admin"

	// EventAlertID is set on findings raised for Pause/Unpause logs.
	EventAlertID = "CAKE-ADMIN-EVENT"

	// CallAlertID is set on findings raised for admin method calls.
	CallAlertID = "CAKE-ADMIN-CALL"
)

// DefaultVault is the CakeVault contract on BNB Chain.
var DefaultVault = common.HexToAddress("0xa80240Eb5d7E05d3F250cF000eEc0891d00b51CC")

const cakeVaultABI = `[
	{"type":"event","name":"Pause","anonymous":false,"inputs":[]},
	{"type":"event","name":"Unpause","anonymous":false,"inputs":[]},
	{"type":"function","name":"setAdmin","inputs":[{"name":"_admin","type":"address"}],"outputs":[]},
	{"type":"function","name":"setTreasury","inputs":[{"name":"_treasury","type":"address"}],"outputs":[]},
	{"type":"function","name":"setPerformanceFee","inputs":[{"name":"_performanceFee","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"setCallFee","inputs":[{"name":"_callFee","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"setWithdrawFee","inputs":[{"name":"_withdrawFee","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"setWithdrawFeePeriod","inputs":[{"name":"_withdrawFeePeriod","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"emergencyWithdraw","inputs":[],"outputs":[]},
	{"type":"function","name":"inCaseTokensGetStuck","inputs":[{"name":"_token","type":"address"}],"outputs":[]}
]`

var cakeVault = bot.MustParseABI(cakeVaultABI)

type detector struct {
	vault common.Address
}

var _ bot.Bot = (*detector)(nil)

// New builds the bot watching vault.
func New(vault common.Address) *detector {
	return &detector{vault: vault}
}

func (d *detector) Name() string {
	return Name
}

// HandleTransaction reports every Pause/Unpause log of the vault and, when the
// transaction calls the vault, the admin method it invoked.
func (d *detector) HandleTransaction(ctx context.Context, event bot.TransactionEvent) ([]bot.Finding, error) {
	var findings []bot.Finding

	for _, name := range []string{"Pause", "Unpause"} {
		ev := cakeVault.Events[name]
		for range event.FilterLogs(d.vault, ev.ID) {
			findings = append(findings, d.eventFinding(event, ev.Name))
		}
	}

	if !event.IsCallTo(d.vault) {
		return findings, nil
	}

	method, args, err := bot.DecodeCall(cakeVault, event.Input)
	if err != nil {
		logger.Debug(ctx, "call to vault is not an admin method",
			"bot.name", Name,
			"tx.hash", event.Hash,
			"tx.selector", hexutil.Encode(event.Selector()),
			"error", err,
		)
		return findings, nil
	}

	return append(findings, d.callFinding(event, method, args)), nil
}

func (d *detector) eventFinding(event bot.TransactionEvent, name string) bot.Finding {
	f := bot.NewFinding(
		"CakeVault "+name,
		fmt.Sprintf("The CakeVault emitted %s in transaction %s", name, event.Hash),
		EventAlertID,
		bot.SeverityMedium,
		bot.FindingTypeInfo,
	)

	f.Protocol = "PancakeSwap"
	f.Metadata["event"] = name
	f.Metadata["vault"] = bot.FormatValue(d.vault)
	f.Metadata["sender"] = event.From

	return f
}

func (d *detector) callFinding(event bot.TransactionEvent, method *abi.Method, args map[string]any) bot.Finding {
	f := bot.NewFinding(
		"CakeVault Admin Call",
		fmt.Sprintf("%s called %s on the CakeVault", event.From, method.Sig),
		CallAlertID,
		bot.SeverityMedium,
		bot.FindingTypeInfo,
	)

	f.Protocol = "PancakeSwap"
	f.Metadata["method"] = method.RawName
	f.Metadata["vault"] = bot.FormatValue(d.vault)
	f.Metadata["sender"] = event.From

	for key, value := range args {
		f.Metadata[strings.TrimPrefix(key, "_")] = bot.FormatValue(value)
	}

	return f
}
