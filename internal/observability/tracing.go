package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with compiler-specific span creation
// methods.
type Tracer struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{
		tracer:      tp.Tracer(TracerName),
		serviceName: serviceName,
	}
}

// StartParse starts a span for parsing an expression into the tree.
func (t *Tracer) StartParse(ctx context.Context, expressionLength int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "exprtree.parse", trace.WithAttributes(
		OperationAttr(OpParse),
		ExpressionLengthAttr(expressionLength),
	))
}

// StartGenerate starts a span for generating text from the tree.
func (t *Tracer) StartGenerate(ctx context.Context) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "exprtree.generate", trace.WithAttributes(
		OperationAttr(OpGenerate),
	))
}

// StartValidate starts a span for sample-event validation.
func (t *Tracer) StartValidate(ctx context.Context, expressionLength int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "exprtree.validate", trace.WithAttributes(
		OperationAttr(OpValidate),
		ExpressionLengthAttr(expressionLength),
	))
}

// RecordError records an error on the span and marks it failed.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
}
