package filter

import (
	"strings"

	"github.com/google/uuid"
)

// ArithmeticTerm is one side of an arithmetic node: a field reference, a
// literal, a function call, or a nested *ArithmeticNode.
type ArithmeticTerm interface {
	arithmeticTerm()
}

// FieldOperand references an event field by name.
type FieldOperand struct {
	Field string `json:"field"`
}

func (o *FieldOperand) arithmeticTerm() {}

// LiteralOperand holds a literal in its Expr text form (strings keep their
// quotes so generated text stays valid).
type LiteralOperand struct {
	Value string `json:"value"`
}

func (o *LiteralOperand) arithmeticTerm() {}

// FunctionOperand is a function call whose arguments are themselves terms.
type FunctionOperand struct {
	Name string           `json:"name"`
	Args []ArithmeticTerm `json:"args"`
}

func (o *FunctionOperand) arithmeticTerm() {}

// ArithmeticNode is a binary arithmetic expression over two terms.
type ArithmeticNode struct {
	ID       string         `json:"id"`
	Left     ArithmeticTerm `json:"left"`
	Operator string         `json:"operator"`
	Right    ArithmeticTerm `json:"right"`
}

func (n *ArithmeticNode) arithmeticTerm() {}

// NewArithmeticNode returns a node with a fresh id.
func NewArithmeticNode(left ArithmeticTerm, operator string, right ArithmeticTerm) *ArithmeticNode {
	return &ArithmeticNode{ID: uuid.NewString(), Left: left, Operator: operator, Right: right}
}

// NewSyntheticNode wraps a bare term in the canonical single-operand shape
// "term + 0" so it can be stored in the same node type as real arithmetic.
// Consumers unwrap it instead of rendering the dummy addition.
func NewSyntheticNode(term ArithmeticTerm) *ArithmeticNode {
	return NewArithmeticNode(term, "+", &LiteralOperand{Value: "0"})
}

// IsSynthetic reports whether the node is a single-operand wrapper.
func (n *ArithmeticNode) IsSynthetic() bool {
	lit, ok := n.Right.(*LiteralOperand)
	return ok && n.Operator == "+" && lit.Value == "0" && n.Left != nil
}

// Text renders the node as canonical Expr text. Real arithmetic is always
// fully parenthesized because the consuming grammar requires unambiguous
// nesting; the synthetic wrapper renders as its left term alone.
func (n *ArithmeticNode) Text() string {
	if n.IsSynthetic() {
		return termText(n.Left)
	}
	return "(" + termText(n.Left) + " " + n.Operator + " " + termText(n.Right) + ")"
}

func termText(term ArithmeticTerm) string {
	switch t := term.(type) {
	case *FieldOperand:
		return t.Field
	case *LiteralOperand:
		return t.Value
	case *FunctionOperand:
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = termText(arg)
		}
		return t.Name + "(" + strings.Join(args, ", ") + ")"
	case *ArithmeticNode:
		return t.Text()
	default:
		return ""
	}
}

// Operator precedence and associativity for the display renderer.
var arithmeticPrecedence = map[string]int{
	"*": 2,
	"/": 2,
	"%": 2,
	"+": 1,
	"-": 1,
}

var associativeOps = map[string]bool{
	"+": true,
	"*": true,
}

// DisplayText renders the node for humans, eliding parentheses wherever the
// result stays unambiguous. Parentheses are kept when the child has lower
// precedence than its parent, or equal precedence on the right side of a
// non-associative operator (a - (b - c) must not collapse to a - b - c).
func (n *ArithmeticNode) DisplayText() string {
	return displayNode(n, "", false)
}

func displayNode(n *ArithmeticNode, parentOp string, right bool) string {
	if n.IsSynthetic() {
		return displayTerm(n.Left, parentOp, right)
	}
	text := displayTerm(n.Left, n.Operator, false) + " " + n.Operator + " " + displayTerm(n.Right, n.Operator, true)
	if needsParens(n.Operator, parentOp, right) {
		return "(" + text + ")"
	}
	return text
}

func displayTerm(term ArithmeticTerm, parentOp string, right bool) string {
	if nested, ok := term.(*ArithmeticNode); ok {
		return displayNode(nested, parentOp, right)
	}
	return termText(term)
}

func needsParens(childOp, parentOp string, right bool) bool {
	if parentOp == "" {
		return false
	}
	if childOp == parentOp && associativeOps[childOp] {
		return false
	}
	childPrec := arithmeticPrecedence[childOp]
	parentPrec := arithmeticPrecedence[parentOp]
	if childPrec < parentPrec {
		return true
	}
	return childPrec == parentPrec && right && !associativeOps[parentOp]
}

// IsComplete reports whether every leaf operand is populated and every node
// has an operator, down both branches.
func (n *ArithmeticNode) IsComplete() bool {
	return n.Operator != "" && termComplete(n.Left) && termComplete(n.Right)
}

func termComplete(term ArithmeticTerm) bool {
	switch t := term.(type) {
	case *FieldOperand:
		return t.Field != ""
	case *LiteralOperand:
		return t.Value != ""
	case *FunctionOperand:
		if t.Name == "" {
			return false
		}
		for _, arg := range t.Args {
			if !termComplete(arg) {
				return false
			}
		}
		return true
	case *ArithmeticNode:
		return t.IsComplete()
	default:
		return false
	}
}

// buildArithmeticTerm converts an AST sub-tree into an arithmetic term.
// Parentheses are transparent here: canonical text re-parenthesizes fully.
func buildArithmeticTerm(node ASTNode) (ArithmeticTerm, bool) {
	switch n := node.(type) {
	case *GroupExpr:
		return buildArithmeticTerm(n.Expr)
	case *IdentifierExpr:
		return &FieldOperand{Field: n.Name}, true
	case *LiteralExpr:
		switch n.Type {
		case LiteralNumber, LiteralBoolean:
			return &LiteralOperand{Value: n.Value}, true
		case LiteralString:
			return &LiteralOperand{Value: quoteString(n.Value)}, true
		default:
			return nil, false
		}
	case *FunctionCallExpr:
		fn := &FunctionOperand{Name: n.Function}
		for _, arg := range n.Args {
			term, ok := buildArithmeticTerm(arg)
			if !ok {
				return nil, false
			}
			fn.Args = append(fn.Args, term)
		}
		return fn, true
	case *BinaryExpr:
		if !arithmeticOps[n.Operator] {
			return nil, false
		}
		left, ok := buildArithmeticTerm(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := buildArithmeticTerm(n.Right)
		if !ok {
			return nil, false
		}
		return NewArithmeticNode(left, n.Operator, right), true
	default:
		return nil, false
	}
}

// isArithmeticLeft reports whether an AST node can serve as a computed
// left-hand side: binary arithmetic, a function call, or parentheses
// wrapping either.
func isArithmeticLeft(node ASTNode) bool {
	switch n := node.(type) {
	case *BinaryExpr:
		return arithmeticOps[n.Operator]
	case *FunctionCallExpr:
		return true
	case *GroupExpr:
		return isArithmeticLeft(n.Expr)
	default:
		return false
	}
}
