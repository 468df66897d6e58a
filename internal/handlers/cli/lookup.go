package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/urfave/cli/v3"
)

// ErrLookupFailed is returned when the fetch client could not answer after
// every attempt.
var ErrLookupFailed = errors.New("lookup failed")

// ErrInvalidValue is returned when --value is neither decimal nor 0x-prefixed hex.
var ErrInvalidValue = errors.New("invalid value")

// Lookup is the part of the fetch client exposed by the lookup subcommands.
type Lookup interface {
	GetCode(ctx context.Context, address string) (string, bool)
	IsEOA(ctx context.Context, address string) (bool, bool)
	GetNonce(ctx context.Context, address string) uint64
	GetStorageSlot(ctx context.Context, address, slot string, block uint64) (string, bool)
	GetOwner(ctx context.Context, address string, block uint64) string
	GetSignature(ctx context.Context, selector string) (string, error)
	GetLabel(ctx context.Context, address string, chainID int64) string
	GetSourceCode(ctx context.Context, address string, chainID int64) string
	GetAddresses(ctx context.Context, address string, chainID int64) []string
	HaveInteractedAgain(ctx context.Context, from, to string, chainID int64, txHash string) bool
	IsRecentlyInvolvedInTransfer(ctx context.Context, address string, chainID int64, txHash string, blockWindow uint64) bool
	IsValueUnique(ctx context.Context, address string, chainID int64, value *big.Int, txHash string) bool
	GetNumberOfLogs(ctx context.Context, address string, chainID int64, fromBlock, toBlock uint64) int
}

func addressFlag() cli.Flag {
	return &cli.StringFlag{Name: "address", Usage: "Account or contract address", Required: true}
}

func chainFlag(deps Dependencies) cli.Flag {
	return &cli.Int64Flag{Name: "chain", Usage: "Chain id used to pick the explorer", Value: deps.ChainID}
}

func blockFlag() cli.Flag {
	return &cli.Uint64Flag{Name: "block", Usage: "Block number (0 for the latest block)"}
}

func txFlag() cli.Flag {
	return &cli.StringFlag{Name: "tx", Usage: "Hash of the transaction under inspection", Required: true}
}

func printLine(w io.Writer, v any) error {
	_, err := fmt.Fprintln(w, v)
	return err
}

// lookupCommand groups one subcommand per fetch client fact.
//
// Usage example:
//
//	chainsentry lookup owner --address 0x5aF6D33DE2ccEC94efb1bDF8f92Bd58085432d2c
func lookupCommand(deps Dependencies) *cli.Command {
	out := deps.Stdout

	return &cli.Command{
		Name:        "lookup",
		Description: "Queries a single fact through the fetch client, with its retries, caches and fallbacks.",
		Usage:       "Prints the answer of one fetch client operation.",
		Commands: []*cli.Command{
			{
				Name:  "eoa",
				Usage: "Reports whether an address has no code",
				Flags: []cli.Flag{addressFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					isEOA, ok := deps.Lookup.IsEOA(ctx, c.String("address"))
					if !ok {
						return ErrLookupFailed
					}
					return printLine(out, isEOA)
				},
			},
			{
				Name:  "nonce",
				Usage: "Prints the transaction count of an address",
				Flags: []cli.Flag{addressFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return printLine(out, deps.Lookup.GetNonce(ctx, c.String("address")))
				},
			},
			{
				Name:  "code",
				Usage: "Prints the bytecode deployed at an address",
				Flags: []cli.Flag{addressFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					code, ok := deps.Lookup.GetCode(ctx, c.String("address"))
					if !ok {
						return ErrLookupFailed
					}
					return printLine(out, code)
				},
			},
			{
				Name:  "storage",
				Usage: "Prints a raw storage slot",
				Flags: []cli.Flag{
					addressFlag(),
					&cli.StringFlag{Name: "slot", Usage: "Slot index, decimal or 0x-prefixed hex", Required: true},
					blockFlag(),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					value, ok := deps.Lookup.GetStorageSlot(ctx, c.String("address"), c.String("slot"), c.Uint64("block"))
					if !ok {
						return ErrLookupFailed
					}
					return printLine(out, value)
				},
			},
			{
				Name:  "owner",
				Usage: "Prints the owner() or getOwner() of a contract",
				Flags: []cli.Flag{addressFlag(), blockFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return printLine(out, deps.Lookup.GetOwner(ctx, c.String("address"), c.Uint64("block")))
				},
			},
			{
				Name:  "signature",
				Usage: "Resolves a 4-byte function selector",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "selector", Usage: "Function selector, e.g. 0xa9059cbb", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					signature, err := deps.Lookup.GetSignature(ctx, c.String("selector"))
					if err != nil {
						return err
					}
					return printLine(out, signature)
				},
			},
			{
				Name:  "label",
				Usage: "Prints the community label of an address",
				Flags: []cli.Flag{addressFlag(), chainFlag(deps)},
				Action: func(ctx context.Context, c *cli.Command) error {
					return printLine(out, deps.Lookup.GetLabel(ctx, c.String("address"), c.Int64("chain")))
				},
			},
			{
				Name:  "source",
				Usage: "Prints the verified source code of a contract",
				Flags: []cli.Flag{addressFlag(), chainFlag(deps)},
				Action: func(ctx context.Context, c *cli.Command) error {
					return printLine(out, deps.Lookup.GetSourceCode(ctx, c.String("address"), c.Int64("chain")))
				},
			},
			{
				Name:  "addresses",
				Usage: "Lists the counterparties of an address, first seen first",
				Flags: []cli.Flag{addressFlag(), chainFlag(deps)},
				Action: func(ctx context.Context, c *cli.Command) error {
					addresses := deps.Lookup.GetAddresses(ctx, c.String("address"), c.Int64("chain"))
					if len(addresses) == 0 {
						return nil
					}
					return printLine(out, strings.Join(addresses, "\n"))
				},
			},
			{
				Name:  "interacted-again",
				Usage: "Reports whether --from sent to --to again after --tx",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "Sender address", Required: true},
					&cli.StringFlag{Name: "to", Usage: "Recipient address", Required: true},
					chainFlag(deps),
					txFlag(),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					again := deps.Lookup.HaveInteractedAgain(ctx, c.String("from"), c.String("to"), c.Int64("chain"), c.String("tx"))
					return printLine(out, again)
				},
			},
			{
				Name:  "recent-transfer",
				Usage: "Reports whether an address moved funds within --window blocks of --tx",
				Flags: []cli.Flag{
					addressFlag(),
					chainFlag(deps),
					txFlag(),
					&cli.Uint64Flag{Name: "window", Usage: "Block distance counted as recent", Value: 100},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					recent := deps.Lookup.IsRecentlyInvolvedInTransfer(ctx, c.String("address"), c.Int64("chain"), c.String("tx"), c.Uint64("window"))
					return printLine(out, recent)
				},
			},
			{
				Name:  "value-unique",
				Usage: "Reports whether no other transfer of an address carried --value",
				Flags: []cli.Flag{
					addressFlag(),
					chainFlag(deps),
					txFlag(),
					&cli.StringFlag{Name: "value", Usage: "Amount in wei, decimal or 0x-prefixed hex", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					value, ok := math.ParseBig256(c.String("value"))
					if !ok {
						return fmt.Errorf("%w: %q", ErrInvalidValue, c.String("value"))
					}
					return printLine(out, deps.Lookup.IsValueUnique(ctx, c.String("address"), c.Int64("chain"), value, c.String("tx")))
				},
			},
			{
				Name:  "logs",
				Usage: "Counts the logs emitted by a contract in a block range",
				Flags: []cli.Flag{
					addressFlag(),
					chainFlag(deps),
					&cli.Uint64Flag{Name: "from-block", Usage: "First block of the range", Required: true},
					&cli.Uint64Flag{Name: "to-block", Usage: "Last block of the range", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					count := deps.Lookup.GetNumberOfLogs(ctx, c.String("address"), c.Int64("chain"), c.Uint64("from-block"), c.Uint64("to-block"))
					return printLine(out, count)
				},
			},
		},
	}
}
