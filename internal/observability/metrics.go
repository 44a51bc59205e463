package observability

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the compiler's instruments.
type Metrics struct {
	parseCount       metric.Int64Counter
	parseDuration    metric.Float64Histogram
	generateCount    metric.Int64Counter
	unsupportedCount metric.Int64Counter
	errorCount       metric.Int64Counter
}

// NewMetrics creates metrics using the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	m.parseCount, _ = meter.Int64Counter("exprtree.parse.count")             //nolint:errcheck
	m.parseDuration, _ = meter.Float64Histogram("exprtree.parse.duration")   //nolint:errcheck
	m.generateCount, _ = meter.Int64Counter("exprtree.generate.count")       //nolint:errcheck
	m.unsupportedCount, _ = meter.Int64Counter("exprtree.unsupported.count") //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("exprtree.error.count")             //nolint:errcheck

	return m
}

// RecordParse records one parse operation.
func (m *Metrics) RecordParse(ctx context.Context, seconds float64, unsupported int, failed bool) {
	if m == nil {
		return
	}
	m.parseCount.Add(ctx, 1)
	m.parseDuration.Record(ctx, seconds)
	if unsupported > 0 {
		m.unsupportedCount.Add(ctx, int64(unsupported))
	}
	if failed {
		m.errorCount.Add(ctx, 1)
	}
}

// RecordGenerate records one generate operation.
func (m *Metrics) RecordGenerate(ctx context.Context) {
	if m == nil {
		return
	}
	m.generateCount.Add(ctx, 1)
}
