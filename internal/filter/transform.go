package filter

// Transform converts an AST into the editable tree form. A nil result means
// the node had no supported mapping; the reason is recorded in diags.
func Transform(node ASTNode, diags *Diagnostics) TreeNode {
	switch n := node.(type) {
	case *GroupExpr:
		// Grouping is structural; the flattening step keeps parenthesized
		// operands as opaque children, so here we just look inside.
		return Transform(n.Expr, diags)
	case *UnaryExpr:
		if n.Operator != "!" && n.Operator != "not" {
			diags.report("unary operator " + n.Operator)
			return nil
		}
		return invert(Transform(n.Operand, diags))
	case *BinaryExpr:
		if combinator, ok := logicalCombinators[n.Operator]; ok {
			return transformLogical(n, combinator, diags)
		}
		if isComparisonOperator(n.Operator) || n.Operator == "in" || n.Operator == "not in" {
			rule := transformComparison(n.Operator, n.Left, n.Right, diags)
			if rule == nil {
				return nil
			}
			return rule
		}
		diags.report("top-level operator " + n.Operator)
		return nil
	default:
		diags.report("unsupported expression form")
		return nil
	}
}

// transformLogical flattens a run of the same logical operator into one
// group with N children. Nested runs of a different combinator, and
// parenthesized sub-expressions, stay separate children.
func transformLogical(node *BinaryExpr, combinator Combinator, diags *Diagnostics) TreeNode {
	var operands []ASTNode
	collectOperands(node, combinator, &operands)

	var children []TreeNode
	for _, operand := range operands {
		if child := Transform(operand, diags); child != nil {
			children = append(children, child)
		}
	}
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return NewFilterGroup(combinator, children...)
	}
}

// collectOperands gathers every operand joined by the same combinator at
// this nesting level. A GroupExpr is not descended into: explicit
// parentheses are significant and must survive round-trips.
func collectOperands(node ASTNode, combinator Combinator, out *[]ASTNode) {
	if bin, ok := node.(*BinaryExpr); ok {
		if c, logical := logicalCombinators[bin.Operator]; logical && c == combinator {
			collectOperands(bin.Left, combinator, out)
			collectOperands(bin.Right, combinator, out)
			return
		}
	}
	*out = append(*out, node)
}

// invert flips the negation of a rule or group. Null-check operators absorb
// the negation into the operator itself so "not (x == nil)" stores as
// isNotNull rather than a negated isNull.
func invert(node TreeNode) TreeNode {
	switch n := node.(type) {
	case *FilterRule:
		switch n.Operator {
		case OpIsNull:
			n.Operator = OpIsNotNull
		case OpIsNotNull:
			n.Operator = OpIsNull
		default:
			n.Not = !n.Not
		}
		return n
	case *FilterGroup:
		n.Not = !n.Not
		return n
	default:
		return nil
	}
}
