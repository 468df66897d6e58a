// Package cli exposes chainsentry as a command-line application: running the
// detection pipeline and querying the fetch client by hand.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/chainsentry/internal/pipeline"

	"github.com/urfave/cli/v3"
)

// Dependencies are the services the commands act on.
type Dependencies struct {
	// Lookup answers the lookup subcommands.
	Lookup Lookup

	// OpenSource returns the event source for the --input flag of run.
	// An empty input selects the live node.
	OpenSource func(input string) (pipeline.EventSource, error)

	// NewPipeline builds the pipeline reading from source.
	NewPipeline func(source pipeline.EventSource) pipeline.Service

	// ServeMetrics, when set, is started by run and serves until its context
	// is done.
	ServeMetrics func(ctx context.Context) error

	// ChainID is the default --chain of the lookup subcommands.
	ChainID int64

	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

// newApp builds the root command.
func newApp(deps Dependencies) *cli.Command {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainsentry",
		Description:           "Runs heuristic detection bots over EVM transactions and inspects the facts they rely on.",
		Usage:                 "chainsentry [command] [flags]",
		Writer:                deps.Stdout,
		Commands: []*cli.Command{
			runCommand(deps),
			lookupCommand(deps),
		},
	}
}

// Run parses os.Args and executes the matching command.
//
// Commands:
//
//   - `run`: streams events through the detection bots until the input ends or a signal arrives.
//   - `lookup`: queries a single fact (code, nonce, owner, label, ...) through the fetch client.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}
