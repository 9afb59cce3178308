package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments: initialized once via InitMetrics().
var (
	calcCounter      metric.Int64Counter
	calcHistogram    metric.Float64Histogram
	errorCounter     metric.Int64Counter
	nonFiniteCounter metric.Int64Counter
	lssGauge         metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the separator
// calculators. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("separator")

	var err error

	calcCounter, err = meter.Int64Counter("separator.calculations.total",
		metric.WithDescription("Total number of separator sizing calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("separator.calculation.duration",
		metric.WithDescription("Duration of separator sizing calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("separator.errors.total",
		metric.WithDescription("Total number of rejected calculation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	nonFiniteCounter, err = meter.Int64Counter("separator.nonfinite_steps.total",
		metric.WithDescription("Derivation steps that produced NaN or Infinity"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return fmt.Errorf("creating non-finite counter: %w", err)
	}

	lssGauge, err = meter.Float64Gauge("separator.last_seam_to_seam_length",
		metric.WithDescription("Seam-to-seam length of the last finite calculation"),
		metric.WithUnit("[in_i]"),
	)
	if err != nil {
		return fmt.Errorf("creating seam-to-seam gauge: %w", err)
	}

	return nil
}
