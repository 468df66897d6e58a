package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/chainsentry/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// runCommand returns the command that starts the detection pipeline.
//
// Usage example:
//
//	chainsentry run --input events.jsonl
//	chainsentry run
//
// Without --input the live node is polled. The command returns when the input
// is exhausted or on SIGINT/SIGTERM.
func runCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Streams transaction events through every detection bot and writes the findings.",
		Usage:       "Runs the detection pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "JSON lines file of transaction events (\"-\" for stdin); polls the node when empty",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			source, err := deps.OpenSource(c.String("input"))
			if err != nil {
				return err
			}

			svc := deps.NewPipeline(source)

			if deps.ServeMetrics != nil {
				metricsCtx, stopMetrics := context.WithCancel(ctx)
				defer stopMetrics()

				go func() {
					if err := deps.ServeMetrics(metricsCtx); err != nil {
						logger.Error(ctx, "metrics server stopped", "error", err)
					}
				}()
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-svc.Done():
			case <-ctx.Done():
			}

			return nil
		},
	}
}
