package filter

import (
	"strings"

	"github.com/glassflow/go-exprtree/internal/cst"
)

// Reduce walks the concrete syntax tree and builds the AST. A nil result
// means the sub-tree could not be reduced; callers must check explicitly.
func Reduce(tree *cst.Tree) ASTNode {
	if tree == nil || tree.Root == nil {
		return nil
	}
	return reduceNode(tree.NewCursor())
}

// reduceNode dispatches on the cursor's node kind. Unknown kinds fall back
// to the first child so wrapper nodes introduced by the grammar never break
// the reduction.
func reduceNode(c *cst.Cursor) ASTNode {
	switch c.Kind() {
	case cst.KindExpression:
		return reduceFirstChild(c)
	case cst.KindParenthesized:
		inner := reduceFirstChild(c)
		if inner == nil {
			return nil
		}
		return &GroupExpr{Expr: inner}
	case cst.KindBinary:
		return reduceBinary(c)
	case cst.KindUnary:
		return reduceUnary(c)
	case cst.KindIdentifier:
		return &IdentifierExpr{Name: leafText(c)}
	case cst.KindInteger, cst.KindFloat:
		return &LiteralExpr{Value: leafText(c), Type: LiteralNumber}
	case cst.KindString:
		return &LiteralExpr{Value: unquoteString(leafText(c)), Type: LiteralString}
	case cst.KindBoolean:
		return &LiteralExpr{Value: leafText(c), Type: LiteralBoolean}
	case cst.KindNil:
		return &LiteralExpr{Value: "nil", Type: LiteralNil}
	case cst.KindArray:
		return reduceArray(c)
	case cst.KindCall:
		return reduceCall(c)
	default:
		return reduceFirstChild(c)
	}
}

// reduceFirstChild unwraps a single-child wrapper node.
func reduceFirstChild(c *cst.Cursor) ASTNode {
	cur := c.Clone()
	if !cur.FirstChild() {
		return nil
	}
	return reduceNode(cur)
}

// reduceBinary reduces the left child, scans following siblings for an
// operator token (including the two-token "not in" sequence), then reduces
// the right child. Any missing piece yields nil.
func reduceBinary(c *cst.Cursor) ASTNode {
	cur := c.Clone()
	if !cur.FirstChild() {
		return nil
	}
	left := reduceNode(cur.Clone())
	if left == nil {
		return nil
	}

	var operator string
	for operator == "" {
		if !cur.NextSibling() {
			return nil
		}
		switch cur.Kind() {
		case cst.KindCompareOp, cst.KindLogicOp, cst.KindArithOp:
			operator = leafText(cur)
		case cst.KindNot:
			if !cur.NextSibling() || cur.Kind() != cst.KindIn {
				return nil
			}
			operator = "not in"
		case cst.KindIn:
			operator = "in"
		}
	}

	if !cur.NextSibling() {
		return nil
	}
	right := reduceNode(cur.Clone())
	if right == nil {
		return nil
	}
	return &BinaryExpr{Left: left, Operator: operator, Right: right}
}

func reduceUnary(c *cst.Cursor) ASTNode {
	cur := c.Clone()
	if !cur.FirstChild() {
		return nil
	}
	operator := leafText(cur)
	if operator != "!" && operator != "not" {
		return nil
	}
	if !cur.NextSibling() {
		return nil
	}
	operand := reduceNode(cur)
	if operand == nil {
		return nil
	}
	return &UnaryExpr{Operator: operator, Operand: operand}
}

func reduceArray(c *cst.Cursor) ASTNode {
	arr := &ArrayExpr{}
	cur := c.Clone()
	if !cur.FirstChild() {
		return arr
	}
	for {
		element := reduceNode(cur.Clone())
		if element == nil {
			return nil
		}
		arr.Elements = append(arr.Elements, element)
		if !cur.NextSibling() {
			break
		}
	}
	return arr
}

// reduceCall expects a callee identifier followed by an Arguments wrapper or
// bare sibling argument nodes.
func reduceCall(c *cst.Cursor) ASTNode {
	cur := c.Clone()
	if !cur.FirstChild() || cur.Kind() != cst.KindIdentifier {
		return nil
	}
	call := &FunctionCallExpr{Function: leafText(cur)}
	for cur.NextSibling() {
		if cur.Kind() == cst.KindArguments {
			args := cur.Clone()
			if !args.FirstChild() {
				continue
			}
			for {
				arg := reduceNode(args.Clone())
				if arg == nil {
					return nil
				}
				call.Args = append(call.Args, arg)
				if !args.NextSibling() {
					break
				}
			}
			continue
		}
		arg := reduceNode(cur.Clone())
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
	}
	return call
}

// leafText returns the trimmed source text of the current node.
func leafText(c *cst.Cursor) string {
	return strings.TrimSpace(c.Text())
}

// unquoteString strips the surrounding quotes and resolves single
// backslash escapes.
func unquoteString(raw string) string {
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		raw = raw[1 : len(raw)-1]
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}
