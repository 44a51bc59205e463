// Package observability provides OpenTelemetry-based instrumentation for the
// expression compiler.
//
// All observability features are opt-in. When not configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/glassflow/go-exprtree"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/glassflow/go-exprtree"
)

// Semantic attribute keys for compiler spans.
const (
	AttrOperation        = "exprtree.operation"
	AttrExpressionLength = "exprtree.expression.length"
	AttrRuleCount        = "exprtree.tree.rule_count"
	AttrUnsupportedCount = "exprtree.unsupported.count"
	AttrErrorMessage     = "exprtree.error.message"
)

// Operation names for the exprtree.operation attribute.
const (
	OpParse    = "parse"
	OpGenerate = "generate"
	OpValidate = "validate"
)

// OperationAttr builds the operation attribute.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// ExpressionLengthAttr builds the expression-length attribute.
func ExpressionLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrExpressionLength, n)
}

// RuleCountAttr builds the parsed-rule count attribute.
func RuleCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrRuleCount, n)
}

// UnsupportedCountAttr builds the unsupported-construct count attribute.
func UnsupportedCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrUnsupportedCount, n)
}
