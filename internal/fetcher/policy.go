package fetcher

import (
	"context"
	"time"

	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/metrics"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"
	"github.com/gabapcia/chainsentry/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// policy describes how a single remote operation behaves once every attempt failed.
type policy[T any] struct {
	operation string      // operation name used in logs, spans, metrics and error records
	fallback  func() T    // value returned on exhaustion when the failure does not propagate
	propagate bool        // return the failure to the caller instead of the fallback
	record    bool        // append an error record to the error sink on exhaustion
	retry     retry.Retry // overrides the client retry policy when set
}

// constant returns a fallback producer always yielding v.
func constant[T any](v T) func() T {
	return func() T { return v }
}

// execute runs fn under the client retry policy.
//
// On success it returns (value, true, nil). On exhaustion it returns
// (fallback, false, nil), or (zero, false, err) when the policy propagates.
func execute[T any](ctx context.Context, c *client, p policy[T], key string, fn func(ctx context.Context) (T, error)) (T, bool, error) {
	ctx, span := c.tracer.Start(ctx, "fetcher."+p.operation, trace.WithAttributes(
		attribute.String("fetch.operation", p.operation),
		attribute.String("fetch.key", key),
	))
	defer span.End()

	r := p.retry
	if r == nil {
		r = c.cfg.retry
	}

	start := time.Now()
	v, err := retry.Value(ctx, r, func() (T, error) {
		return fn(ctx)
	})
	metrics.FetchDuration.WithLabelValues(p.operation).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.FetchCallsTotal.WithLabelValues(p.operation, metrics.StatusOK).Inc()
		return v, true, nil
	}

	metrics.FetchCallsTotal.WithLabelValues(p.operation, metrics.StatusExhausted).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, "remote call exhausted")

	logger.Warn(ctx, "remote call exhausted",
		"fetch.operation", p.operation,
		"fetch.key", key,
		"error", err,
	)

	if p.record {
		if sinkErr := c.cfg.errSink.Append(ctx, errcollector.NewRecord(p.operation, key, err)); sinkErr != nil {
			logger.Error(ctx, "error appending error record", "fetch.operation", p.operation, "error", sinkErr)
		} else {
			metrics.ErrorRecordsTotal.WithLabelValues(p.operation).Inc()
		}
	}

	var zero T
	if p.propagate {
		return zero, false, err
	}

	if p.fallback == nil {
		return zero, false, nil
	}

	return p.fallback(), false, nil
}
