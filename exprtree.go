// Package exprtree compiles between the Expr filter language accepted by the
// pipeline engine and the structured filter tree edited in the console UI.
//
// Both directions are first-class and round-trip safe: Parse turns Expr text
// into a tree of rules and groups, Generate re-derives canonical Expr text
// from the tree. Repeated calls with identical input produce byte-identical
// output, which the UI relies on for dirty-checking.
package exprtree

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/glassflow/go-exprtree/internal/cst"
	"github.com/glassflow/go-exprtree/internal/filter"
	"github.com/glassflow/go-exprtree/internal/observability"
	"github.com/glassflow/go-exprtree/internal/sample"
)

// Compiler converts between Expr text and filter trees. The zero-cost
// default is unobservable; providers can be attached through options.
type Compiler struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string

	tracer  *observability.Tracer
	metrics *observability.Metrics
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithTracerProvider attaches an OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) CompilerOption {
	return func(c *Compiler) { c.tracerProvider = tp }
}

// WithMeterProvider attaches an OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) CompilerOption {
	return func(c *Compiler) { c.meterProvider = mp }
}

// WithServiceName names this component in traces and metrics.
func WithServiceName(name string) CompilerOption {
	return func(c *Compiler) { c.serviceName = name }
}

// NewCompiler creates a compiler. Without options all instrumentation is
// no-op.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	cfg := observability.New(
		observability.WithTracerProvider(c.tracerProvider),
		observability.WithMeterProvider(c.meterProvider),
		observability.WithServiceName(c.serviceName),
	)
	c.tracer = cfg.Tracer()
	c.metrics = cfg.Metrics()
	return c
}

// ParseResult is a parsed expression: the editable tree plus the names of
// any constructs that had no tree mapping and were dropped.
type ParseResult struct {
	Tree        *FilterGroup
	Unsupported []string
}

// Parse compiles Expr text into a filter tree. A rule at the top level is
// wrapped in a single-child group so the result is always a group. Parse
// fails only when the grammar rejects the input or nothing at all could be
// mapped; partially supported expressions succeed with Unsupported set.
func (c *Compiler) Parse(ctx context.Context, expression string) (*ParseResult, error) {
	ctx, span := c.tracer.StartParse(ctx, len(expression))
	defer span.End()
	start := time.Now()

	result, err := parseExpression(expression)
	unsupported := 0
	if result != nil {
		unsupported = len(result.Unsupported)
		span.SetAttributes(
			observability.RuleCountAttr(filter.CountRules(result.Tree)),
			observability.UnsupportedCountAttr(unsupported),
		)
	}
	if err != nil {
		observability.RecordError(span, err)
	}
	c.metrics.RecordParse(ctx, time.Since(start).Seconds(), unsupported, err != nil)
	return result, err
}

func parseExpression(expression string) (*ParseResult, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	tree, err := cst.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	ast := filter.Reduce(tree)
	if ast == nil {
		return nil, fmt.Errorf("%w: expression could not be reduced", ErrParseFailed)
	}

	diags := &filter.Diagnostics{}
	node := filter.Transform(ast, diags)
	if node == nil {
		if len(diags.Unsupported) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedExpression, strings.Join(diags.Unsupported, "; "))
		}
		return nil, ErrUnsupportedExpression
	}

	group, ok := node.(*FilterGroup)
	if !ok {
		group = filter.NewFilterGroup(CombinatorAnd, node)
	}
	return &ParseResult{Tree: group, Unsupported: diags.Unsupported}, nil
}

// Generate serializes the tree back into canonical Expr text. Incomplete
// rules and empty groups are omitted; an entirely incomplete tree renders as
// the empty string.
func (c *Compiler) Generate(ctx context.Context, group *FilterGroup) string {
	ctx, span := c.tracer.StartGenerate(ctx)
	defer span.End()
	c.metrics.RecordGenerate(ctx)
	if group == nil {
		return ""
	}
	return filter.GroupToExpr(group)
}

// ValidateTree checks every rule in the tree and returns per-field errors.
// Errors block serialization in the UI but never corrupt the tree.
func (c *Compiler) ValidateTree(group *FilterGroup) []FieldError {
	if group == nil {
		return nil
	}
	return filter.ValidateGroup(group)
}

// ValidateAgainstSchema generates text from the tree and compiles it against
// a synthetic event built from the field schema, mirroring the pipeline
// engine's own compilation step.
func (c *Compiler) ValidateAgainstSchema(ctx context.Context, group *FilterGroup, fields []SchemaField) error {
	expression := c.Generate(ctx, group)
	_, span := c.tracer.StartValidate(ctx, len(expression))
	defer span.End()
	if expression == "" {
		err := ErrEmptyExpression
		observability.RecordError(span, err)
		return err
	}
	if err := sample.Validate(expression, fields); err != nil {
		observability.RecordError(span, err)
		return err
	}
	return nil
}

// Fingerprint returns a stable digest of the tree's canonical text, suitable
// for dirty-checking.
func (c *Compiler) Fingerprint(group *FilterGroup) uint64 {
	return filter.Fingerprint(group)
}

var defaultCompiler = NewCompiler()

// Parse compiles Expr text into a filter tree using the default compiler.
func Parse(expression string) (*ParseResult, error) {
	return defaultCompiler.Parse(context.Background(), expression)
}

// Generate serializes a tree to Expr text using the default compiler.
func Generate(group *FilterGroup) string {
	return defaultCompiler.Generate(context.Background(), group)
}

// ValidateTree checks every rule in the tree using the default compiler.
func ValidateTree(group *FilterGroup) []FieldError {
	return defaultCompiler.ValidateTree(group)
}

// ValidateAgainstSchema validates a tree against a field schema using the
// default compiler.
func ValidateAgainstSchema(group *FilterGroup, fields []SchemaField) error {
	return defaultCompiler.ValidateAgainstSchema(context.Background(), group, fields)
}

// Fingerprint returns a stable digest of the tree's canonical text.
func Fingerprint(group *FilterGroup) uint64 {
	return defaultCompiler.Fingerprint(group)
}
