package fastview

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("ontodag.fastview")

// Metrics for fast view construction.
var (
	buildLatency  metric.Float64Histogram
	ancestorPairs metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. With no MeterProvider installed
// they are no-ops.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"fastview_build_duration_seconds",
			metric.WithDescription("Duration of fast view construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		ancestorPairs, err = meter.Int64Histogram(
			"fastview_ancestor_pairs",
			metric.WithDescription("Number of (term, ancestor) pairs per view"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordBuild(ctx context.Context, took time.Duration, terms, pairs int) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Int("terms", terms))
	buildLatency.Record(ctx, took.Seconds(), attrs)
	ancestorPairs.Record(ctx, int64(pairs), attrs)
}
