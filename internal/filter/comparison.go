package filter

import (
	"strings"
)

// transformComparison maps a single comparison onto a FilterRule. Branches
// that cannot fully resolve record a diagnostic and return nil; the caller
// drops nil children without aborting its siblings.
func transformComparison(operator string, left, right ASTNode, diags *Diagnostics) *FilterRule {
	if operator == "in" || operator == "not in" {
		return transformMembership(operator, left, right, diags)
	}

	if lit, ok := right.(*LiteralExpr); ok && lit.Type == LiteralNil {
		return transformNilComparison(operator, left, diags)
	}

	if isArithmeticLeft(left) {
		return transformArithmeticComparison(operator, left, right, diags)
	}

	if rule := fieldComparison(operator, left, right, false); rule != nil {
		return rule
	}
	// Retry with the sides swapped to recover literal-first comparisons
	// such as "10 > price".
	if rule := fieldComparison(operator, right, left, true); rule != nil {
		return rule
	}
	diags.report("comparison with unsupported operands")
	return nil
}

func transformMembership(operator string, left, right ASTNode, diags *Diagnostics) *FilterRule {
	field, ok := left.(*IdentifierExpr)
	if !ok {
		diags.report("membership check on a non-field expression")
		return nil
	}
	array, ok := right.(*ArrayExpr)
	if !ok || len(array.Elements) == 0 {
		diags.report("membership check without an array literal")
		return nil
	}

	values := make([]string, len(array.Elements))
	var first *LiteralExpr
	for i, element := range array.Elements {
		lit, ok := element.(*LiteralExpr)
		if !ok {
			diags.report("non-literal array element")
			return nil
		}
		if first == nil {
			first = lit
		}
		values[i] = lit.Value
	}

	rule := NewFilterRule()
	rule.Field = field.Name
	rule.FieldType = literalFieldType(first)
	rule.Operator = OpIn
	if operator == "not in" {
		rule.Operator = OpNotIn
	}
	rule.Value = strings.Join(values, ", ")
	return rule
}

// transformNilComparison maps "x == nil" / "x != nil" onto the null-check
// operators. Other comparators against nil have no tree form.
func transformNilComparison(operator string, left ASTNode, diags *Diagnostics) *FilterRule {
	field, ok := left.(*IdentifierExpr)
	if !ok {
		diags.report("nil comparison on a non-field expression")
		return nil
	}
	var op Operator
	switch operator {
	case "==":
		op = OpIsNull
	case "!=":
		op = OpIsNotNull
	default:
		diags.report("ordering comparison against nil")
		return nil
	}
	rule := NewFilterRule()
	rule.Field = field.Name
	rule.FieldType = FieldTypeString
	rule.Operator = op
	return rule
}

func transformArithmeticComparison(operator string, left, right ASTNode, diags *Diagnostics) *FilterRule {
	op, ok := comparisonOperators[operator]
	if !ok {
		diags.report("comparison operator " + operator)
		return nil
	}
	lit, ok := right.(*LiteralExpr)
	if !ok || lit.Type != LiteralNumber {
		diags.report("arithmetic comparison without a numeric value")
		return nil
	}
	term, ok := buildArithmeticTerm(left)
	if !ok {
		diags.report("unsupported arithmetic expression")
		return nil
	}
	node, ok := term.(*ArithmeticNode)
	if !ok {
		// A bare field or function call is stored in the synthetic
		// single-operand shape so the tree has one uniform layout.
		node = NewSyntheticNode(term)
	}

	rule := NewFilterRule()
	rule.FieldType = numberFieldType(lit.Value)
	rule.Operator = op
	rule.Value = lit.Value
	rule.UseArithmeticExpression = true
	rule.ArithmeticExpression = node
	return rule
}

// fieldComparison builds a plain field-vs-literal rule. When swapped is set
// the operands arrived literal-first and the comparator is mirrored.
func fieldComparison(operator string, left, right ASTNode, swapped bool) *FilterRule {
	op, ok := comparisonOperators[operator]
	if !ok {
		return nil
	}
	field, ok := left.(*IdentifierExpr)
	if !ok {
		return nil
	}
	lit, ok := right.(*LiteralExpr)
	if !ok || lit.Type == LiteralNil {
		return nil
	}
	if swapped {
		op = mirroredOperators[op]
	}
	rule := NewFilterRule()
	rule.Field = field.Name
	rule.FieldType = literalFieldType(lit)
	rule.Operator = op
	rule.Value = lit.Value
	return rule
}

func literalFieldType(lit *LiteralExpr) FieldType {
	switch lit.Type {
	case LiteralNumber:
		return numberFieldType(lit.Value)
	case LiteralBoolean:
		return FieldTypeBool
	default:
		return FieldTypeString
	}
}

func numberFieldType(value string) FieldType {
	if strings.ContainsAny(value, ".eE") {
		return FieldTypeFloat
	}
	return FieldTypeInt
}
