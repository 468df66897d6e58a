// Package metrics declares the Prometheus collectors shared across the
// fetcher, the bots and the pipeline, and exposes them over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chainsentry"

// Fetch call outcomes used as the "status" label of FetchCallsTotal.
const (
	StatusOK        = "ok"
	StatusExhausted = "exhausted"
)

var (
	// Fetcher
	FetchCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "calls_total",
		Help:      "Remote fetch operations by final outcome",
	}, []string{"operation", "status"})

	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "call_duration_seconds",
		Help:      "Remote fetch operation duration including retries",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by cache name and result (hit/miss)",
	}, []string{"cache", "result"})

	ErrorRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetcher",
		Name:      "error_records_total",
		Help:      "Exhausted remote calls appended to the error collector",
	}, []string{"operation"})

	// Bots
	FindingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "bot",
		Name:      "findings_total",
		Help:      "Findings emitted by bot and severity",
	}, []string{"bot", "severity"})

	BotErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "bot",
		Name:      "errors_total",
		Help:      "Errors returned by bot handlers",
	}, []string{"bot"})

	BotHandleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "bot",
		Name:      "handle_duration_seconds",
		Help:      "Time spent by a bot handling one transaction event",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
	}, []string{"bot"})

	// Pipeline
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "events_total",
		Help:      "Transaction events received by chain id",
	}, []string{"chain"})

	NotifyErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "notify_errors_total",
		Help:      "Finding batches the notifier failed to deliver",
	})
)

// CacheResult returns the "result" label value for a cache lookup.
func CacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// Serve exposes the default registry on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
