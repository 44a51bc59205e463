package exprtree

import (
	"github.com/glassflow/go-exprtree/internal/filter"
	"github.com/glassflow/go-exprtree/internal/sample"
)

// TreeNode re-exports the tree child union (*FilterRule or *FilterGroup)
// for external consumers.
type TreeNode = filter.TreeNode

// FilterRule re-exports the editable rule type for external consumers.
type FilterRule = filter.FilterRule

// FilterGroup re-exports the editable group type for external consumers.
type FilterGroup = filter.FilterGroup

// Operator re-exports the rule operator type for external consumers.
type Operator = filter.Operator

// Combinator re-exports the group combinator type for external consumers.
type Combinator = filter.Combinator

// FieldType re-exports the field value type for external consumers.
type FieldType = filter.FieldType

// ArithmeticNode re-exports the arithmetic expression node type.
type ArithmeticNode = filter.ArithmeticNode

// ArithmeticTerm re-exports the arithmetic operand union.
type ArithmeticTerm = filter.ArithmeticTerm

// FieldOperand re-exports the field-reference operand.
type FieldOperand = filter.FieldOperand

// LiteralOperand re-exports the literal operand.
type LiteralOperand = filter.LiteralOperand

// FunctionOperand re-exports the function-call operand.
type FunctionOperand = filter.FunctionOperand

// ChainedFunction re-exports one step of a function pipeline.
type ChainedFunction = filter.ChainedFunction

// FieldError re-exports the per-field validation error type.
type FieldError = filter.FieldError

// SchemaField re-exports the event schema entry used for sample validation.
type SchemaField = sample.Field

// Rule operators.
const (
	OpEqual              = filter.OpEqual
	OpNotEqual           = filter.OpNotEqual
	OpGreaterThan        = filter.OpGreaterThan
	OpGreaterThanOrEqual = filter.OpGreaterThanOrEqual
	OpLessThan           = filter.OpLessThan
	OpLessThanOrEqual    = filter.OpLessThanOrEqual
	OpIn                 = filter.OpIn
	OpNotIn              = filter.OpNotIn
	OpIsNull             = filter.OpIsNull
	OpIsNotNull          = filter.OpIsNotNull
)

// Group combinators.
const (
	CombinatorAnd = filter.CombinatorAnd
	CombinatorOr  = filter.CombinatorOr
)

// Field value types.
const (
	FieldTypeString = filter.FieldTypeString
	FieldTypeInt    = filter.FieldTypeInt
	FieldTypeFloat  = filter.FieldTypeFloat
	FieldTypeBool   = filter.FieldTypeBool
)

// NewFilterRule returns an empty rule with a fresh id.
func NewFilterRule() *FilterRule { return filter.NewFilterRule() }

// NewFilterGroup returns a group with a fresh id joining the given children.
func NewFilterGroup(combinator Combinator, children ...TreeNode) *FilterGroup {
	return filter.NewFilterGroup(combinator, children...)
}

// NewArithmeticNode returns an arithmetic node with a fresh id.
func NewArithmeticNode(left ArithmeticTerm, operator string, right ArithmeticTerm) *ArithmeticNode {
	return filter.NewArithmeticNode(left, operator, right)
}

// NewSyntheticNode wraps a bare operand in the single-operand storage shape.
func NewSyntheticNode(term ArithmeticTerm) *ArithmeticNode {
	return filter.NewSyntheticNode(term)
}

// DecomposeChain unfolds a nested function call into an innermost-first
// pipeline plus its source operand.
func DecomposeChain(functionName string, args []ArithmeticTerm) ([]ChainedFunction, ArithmeticTerm) {
	return filter.DecomposeChain(functionName, args)
}

// ComposeChain folds a pipeline back into a nested function call.
func ComposeChain(chain []ChainedFunction, source ArithmeticTerm) ArithmeticTerm {
	return filter.ComposeChain(chain, source)
}

// BuildWaterfall compiles a first-non-empty-value selection over slots.
func BuildWaterfall(slots []ArithmeticTerm) ArithmeticTerm {
	return filter.BuildWaterfall(slots)
}

// BuildConcat compiles slot concatenation with an optional post chain.
func BuildConcat(slots []ArithmeticTerm, post []ChainedFunction) ArithmeticTerm {
	return filter.BuildConcat(slots, post)
}
