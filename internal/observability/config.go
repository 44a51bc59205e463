package observability

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the observability configuration for the compiler.
type Config struct {
	// TracerProvider is the OpenTelemetry tracer provider.
	// If nil, tracing is disabled.
	TracerProvider trace.TracerProvider

	// MeterProvider is the OpenTelemetry meter provider.
	// If nil, metrics collection is disabled.
	MeterProvider metric.MeterProvider

	// ServiceName is used to identify this component in traces and metrics.
	ServiceName string
}

// Option is a functional option for configuring observability.
type Option func(*Config)

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Config) {
		c.MeterProvider = mp
	}
}

// WithServiceName sets the service name for identification.
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// New builds a Config from options and materializes tracer and metrics,
// falling back to no-op implementations for anything left unset.
func New(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tracer returns the configured tracer, or a no-op tracer when no provider
// was set.
func (c *Config) Tracer() *Tracer {
	if c == nil || c.TracerProvider == nil {
		return NewNoopTracer()
	}
	return NewTracer(c.TracerProvider, c.ServiceName)
}

// Metrics returns the configured metrics, or no-op metrics when no provider
// was set.
func (c *Config) Metrics() *Metrics {
	if c == nil || c.MeterProvider == nil {
		return NewNoopMetrics()
	}
	return NewMetrics(c.MeterProvider)
}
