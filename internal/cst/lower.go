package cst

import "strings"

// lowering converts grammar structs into the generic named-node tree. Binary
// levels are folded left-associatively; operator tokens become leaf nodes so
// consumers can scan siblings for them.
type lowering struct {
	src string
}

func (l *lowering) script(s *ExprScript) *Node {
	root := &Node{Kind: KindExpression, From: s.Pos.Offset, To: s.EndPos.Offset}
	root.AddChild(l.or(s.Root))
	root.From = root.Children[0].From
	root.To = root.Children[0].To
	return root
}

func (l *lowering) or(e *OrExpression) *Node {
	node := l.and(e.Head)
	for _, clause := range e.Tail {
		rhs := l.and(clause.Expr)
		node = l.binary(node, l.opLeaf(KindLogicOp, clause.Op.Pos.Offset, clause.Op.Text), rhs)
	}
	return node
}

func (l *lowering) and(e *AndExpression) *Node {
	node := l.not(e.Head)
	for _, clause := range e.Tail {
		rhs := l.not(clause.Expr)
		node = l.binary(node, l.opLeaf(KindLogicOp, clause.Op.Pos.Offset, clause.Op.Text), rhs)
	}
	return node
}

func (l *lowering) not(e *NotExpression) *Node {
	if e.Not != nil {
		kind := KindLogicOp
		if e.Not.Text == "not" {
			kind = KindNot
		}
		op := l.opLeaf(kind, e.Not.Pos.Offset, e.Not.Text)
		operand := l.not(e.Operand)
		node := &Node{Kind: KindUnary, From: op.From, To: operand.To}
		node.AddChild(op)
		node.AddChild(operand)
		return node
	}
	return l.comparison(e.Cmp)
}

func (l *lowering) comparison(e *Comparison) *Node {
	left := l.add(e.Left)
	if e.Op == nil {
		return left
	}
	right := l.add(e.Right)
	node := &Node{Kind: KindBinary, From: left.From, To: right.To}
	node.AddChild(left)
	switch {
	case e.Op.Cmp != "":
		node.AddChild(l.opLeaf(KindCompareOp, e.Op.Pos.Offset, e.Op.Cmp))
	case e.Op.Not != "":
		notFrom := e.Op.Pos.Offset
		node.AddChild(l.opLeaf(KindNot, notFrom, e.Op.Not))
		rest := notFrom + len(e.Op.Not)
		inFrom := rest + strings.Index(l.src[rest:], "in")
		node.AddChild(l.opLeaf(KindIn, inFrom, e.Op.In))
	default:
		node.AddChild(l.opLeaf(KindIn, e.Op.Pos.Offset, e.Op.In))
	}
	node.AddChild(right)
	return node
}

func (l *lowering) add(e *AddExpression) *Node {
	node := l.mul(e.Head)
	for _, clause := range e.Tail {
		rhs := l.mul(clause.Term)
		node = l.binary(node, l.opLeaf(KindArithOp, clause.Op.Pos.Offset, clause.Op.Text), rhs)
	}
	return node
}

func (l *lowering) mul(e *MulExpression) *Node {
	node := l.primary(e.Head)
	for _, clause := range e.Tail {
		rhs := l.primary(clause.Term)
		node = l.binary(node, l.opLeaf(KindArithOp, clause.Op.Pos.Offset, clause.Op.Text), rhs)
	}
	return node
}

func (l *lowering) primary(p *Primary) *Node {
	from := p.Pos.Offset
	switch {
	case p.Paren != nil:
		node := &Node{Kind: KindParenthesized, From: from, To: p.EndPos.Offset}
		node.AddChild(l.or(p.Paren))
		return node
	case p.Array != nil:
		node := &Node{Kind: KindArray, From: p.Array.Pos.Offset, To: p.Array.EndPos.Offset}
		for _, el := range p.Array.Elements {
			node.AddChild(l.or(el))
		}
		return node
	case p.Boolean != "":
		return l.opLeaf(KindBoolean, from, p.Boolean)
	case p.Nil != "":
		return l.opLeaf(KindNil, from, p.Nil)
	case p.Number != nil:
		kind := KindInteger
		if strings.Contains(p.Number.Value, ".") {
			kind = KindFloat
		}
		return &Node{Kind: kind, From: p.Number.Pos.Offset, To: p.Number.EndPos.Offset}
	case p.Str != "":
		return l.opLeaf(KindString, from, p.Str)
	case p.Call != nil:
		return l.call(p.Call)
	default:
		// The span covers the selector's true source extent, which may
		// include whitespace around the dots; the joined name is stored so
		// Text never depends on that spacing.
		name := strings.Join(p.Selector, ".")
		return &Node{Kind: KindIdentifier, From: from, To: p.EndPos.Offset, text: name}
	}
}

func (l *lowering) call(c *CallExpr) *Node {
	node := &Node{Kind: KindCall, From: c.Pos.Offset, To: c.EndPos.Offset}
	node.AddChild(l.opLeaf(KindIdentifier, c.Pos.Offset, c.Callee))
	args := &Node{Kind: KindArguments, From: c.Pos.Offset + len(c.Callee), To: c.EndPos.Offset}
	for _, arg := range c.Args {
		args.AddChild(l.or(arg))
	}
	node.AddChild(args)
	return node
}

func (l *lowering) binary(left, op, right *Node) *Node {
	node := &Node{Kind: KindBinary, From: left.From, To: right.To}
	node.AddChild(left)
	node.AddChild(op)
	node.AddChild(right)
	return node
}

func (l *lowering) opLeaf(kind string, from int, text string) *Node {
	return &Node{Kind: kind, From: from, To: from + len(text)}
}
