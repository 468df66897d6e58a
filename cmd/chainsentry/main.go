package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/bots/autocakeadmin"
	"github.com/gabapcia/chainsentry/internal/bots/fetcherhealth"
	"github.com/gabapcia/chainsentry/internal/bots/largeposition"
	"github.com/gabapcia/chainsentry/internal/bots/lotteryaddress"
	"github.com/gabapcia/chainsentry/internal/bots/privatekey"
	"github.com/gabapcia/chainsentry/internal/config"
	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/fetcher"
	"github.com/gabapcia/chainsentry/internal/handlers/cli"
	"github.com/gabapcia/chainsentry/internal/infra/blockchain/ethereum"
	notifierjsonl "github.com/gabapcia/chainsentry/internal/infra/notifier/jsonl"
	sourcejsonl "github.com/gabapcia/chainsentry/internal/infra/source/jsonl"
	"github.com/gabapcia/chainsentry/internal/infra/storage/redis"
	"github.com/gabapcia/chainsentry/internal/metrics"
	"github.com/gabapcia/chainsentry/internal/pipeline"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainsentry/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/chainsentry/internal/pkg/transport/http"
	"github.com/gabapcia/chainsentry/internal/pkg/transport/jsonrpc"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// userAgent identifies chainsentry to nodes and lookup services.
func userAgent() string {
	return "chainsentry/" + version
}

// errNoRPC is returned by run when no input is given and no node is configured.
var errNoRPC = errors.New("no --input given and CHAINSENTRY_RPC_URL is not set")

// state holds the stores shared by the fetcher and the bots.
type state struct {
	errors      errcollector.Collector
	alerted     privatekey.AlertedStore
	checkpoints ethereum.CheckpointStorage
	close       func() error
}

// newState keeps everything in memory unless Redis is configured.
func newState(ctx context.Context, cfg config.Config) (state, error) {
	if cfg.RedisAddr == "" {
		return state{
			errors:  errcollector.NewRing(cfg.ErrorCapacity),
			alerted: privatekey.NewMemoryStore(),
			close:   func() error { return nil },
		}, nil
	}

	rc, err := redis.NewClient(ctx, cfg.RedisAddr,
		redis.WithCredentials(cfg.RedisUsername, cfg.RedisPassword),
		redis.WithDB(cfg.RedisDB),
	)
	if err != nil {
		return state{}, fmt.Errorf("connecting to redis: %w", err)
	}

	return state{
		errors:      rc.ErrorSink(cfg.ErrorCapacity),
		alerted:     rc,
		checkpoints: rc,
		close:       rc.Close,
	}, nil
}

func newFetcher(cfg config.Config, provider fetcher.Provider, sink errcollector.Sink) fetcher.Client {
	opts := []fetcher.Option{
		fetcher.WithErrorSink(sink),
		fetcher.WithHTTPClient(transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithUserAgent(userAgent()),
		)),
		fetcher.WithRetry(retry.New(
			retry.WithAttempts(cfg.FetchAttempts),
			retry.WithDelay(cfg.FetchDelay),
		)),
		fetcher.WithExplorers(map[int64]fetcher.Explorer{
			cfg.ChainID: {URL: cfg.ExplorerURL, APIKeys: cfg.ExplorerAPIKeys},
		}),
		fetcher.WithExplorerRateLimit(cfg.ExplorerRPS, 1),
		fetcher.WithHistoryOffset(cfg.HistoryOffset),
		fetcher.WithFanOutLimit(cfg.FanOutLimit),
		fetcher.WithLabelURL(cfg.LabelURL),
	}

	if cfg.SignatureURL != "" {
		opts = append(opts, fetcher.WithSignatureURL(cfg.SignatureURL))
	}

	return fetcher.New(provider, opts...)
}

func newBots(cfg config.Config, fetch fetcher.Client, st state) ([]bot.Bot, error) {
	thresholds := largeposition.DefaultThresholds()
	if cfg.ThresholdsFile != "" {
		var err error
		if thresholds, err = largeposition.LoadThresholdsFile(cfg.ThresholdsFile); err != nil {
			return nil, fmt.Errorf("loading thresholds: %w", err)
		}
	}

	return []bot.Bot{
		largeposition.New(thresholds),
		autocakeadmin.New(autocakeadmin.DefaultVault),
		lotteryaddress.New(lotteryaddress.DefaultLottery, fetch),
		privatekey.New(fetch,
			privatekey.WithMinVictims(cfg.MinVictims),
			privatekey.WithAlertedStore(st.alerted),
		),
		fetcherhealth.New(st.errors),
	}, nil
}

func run(ctx context.Context, cfg config.Config) error {
	if cfg.TelemetryEnabled {
		opts := []telemetry.Option{telemetry.WithServiceVersion(version)}
		if cfg.TelemetryEndpoint != "" {
			opts = append(opts, telemetry.WithEndpoint(cfg.TelemetryEndpoint))
		}
		if cfg.TelemetryInsecure {
			opts = append(opts, telemetry.WithInsecure())
		}

		shutdown, err := telemetry.Init(ctx, cfg.ServiceName, opts...)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Error(ctx, "failed to shut down telemetry", "error", err)
			}
		}()
	}

	st, err := newState(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	rpcHTTP := transporthttp.NewClient(transporthttp.WithTimeout(cfg.HTTPTimeout), transporthttp.WithUserAgent(userAgent()))
	conn := jsonrpc.NewClient(rpcHTTP.StandardClient(), cfg.RPCURL)

	fetch := newFetcher(cfg, ethereum.NewClient(conn), st.errors)

	bots, err := newBots(cfg, fetch, st)
	if err != nil {
		return err
	}

	notifier := notifierjsonl.NewNotifier(os.Stdout)

	var serveMetrics func(context.Context) error
	if cfg.MetricsAddr != "" {
		serveMetrics = func(ctx context.Context) error {
			return metrics.Serve(ctx, cfg.MetricsAddr)
		}
	}

	return cli.Run(ctx, cli.Dependencies{
		Lookup:  fetch,
		ChainID: cfg.ChainID,
		Stdout:  os.Stdout,
		OpenSource: func(input string) (pipeline.EventSource, error) {
			if input != "" {
				return sourcejsonl.Open(input)
			}

			if cfg.RPCURL == "" {
				return nil, errNoRPC
			}

			return ethereum.NewBlockSource(conn, cfg.ChainID,
				ethereum.WithPollInterval(cfg.PollInterval),
				ethereum.WithCheckpointStorage(st.checkpoints),
			), nil
		},
		NewPipeline: func(source pipeline.EventSource) pipeline.Service {
			return pipeline.New(source, notifier, bots)
		},
		ServeMetrics: serveMetrics,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "initializing logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "chainsentry failed", "error", err)
		cancel()
		_ = logger.Sync()
		os.Exit(1)
	}
}
