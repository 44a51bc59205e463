package exprtree

import "errors"

// Sentinel errors for the compiler's fatal conditions. Unsupported
// constructs inside an otherwise valid expression are not errors; they are
// collected on the ParseResult instead.
var (
	// ErrEmptyExpression indicates the input contained no expression text.
	ErrEmptyExpression = errors.New("exprtree: empty expression")

	// ErrParseFailed indicates the grammar rejected the input or no AST
	// could be produced from it. The expression tree is undefined.
	ErrParseFailed = errors.New("exprtree: parse failed")

	// ErrUnsupportedExpression indicates the expression parsed but none of
	// it could be mapped onto the filter tree.
	ErrUnsupportedExpression = errors.New("exprtree: expression has no supported conditions")
)
