package ontology

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("ontodag.ontology")

// Metrics for ontology freezing.
var (
	freezeLatency   metric.Float64Histogram
	freezeTotal     metric.Int64Counter
	termsFrozen     metric.Int64Histogram
	syntheticRoots  metric.Int64Counter
	skippedRelation metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. With no MeterProvider installed
// they are no-ops.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		freezeLatency, err = meter.Float64Histogram(
			"ontology_freeze_duration_seconds",
			metric.WithDescription("Duration of ontology freeze (cycle check, root synthesis, arena build)"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		freezeTotal, err = meter.Int64Counter(
			"ontology_freeze_total",
			metric.WithDescription("Total number of freeze attempts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		termsFrozen, err = meter.Int64Histogram(
			"ontology_terms",
			metric.WithDescription("Number of terms per frozen ontology"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		syntheticRoots, err = meter.Int64Counter(
			"ontology_artificial_roots_total",
			metric.WithDescription("Total artificial roots synthesized"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		skippedRelation, err = meter.Int64Counter(
			"ontology_skipped_relations_total",
			metric.WithDescription("Parent relations dropped during Build because the target was absent"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordFreeze(ctx context.Context, start time.Time, terms int, artificial bool, err error) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Bool("artificial_root", artificial),
		attribute.Bool("success", err == nil),
	)
	freezeLatency.Record(ctx, time.Since(start).Seconds(), attrs)
	freezeTotal.Add(ctx, 1, attrs)
	if err != nil {
		return
	}
	termsFrozen.Record(ctx, int64(terms))
	if artificial {
		syntheticRoots.Add(ctx, 1)
	}
}

func recordSkipped(ctx context.Context, n int) {
	if n == 0 || initMetrics() != nil {
		return
	}
	skippedRelation.Add(ctx, int64(n))
}
