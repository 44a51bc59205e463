// Package filter implements the bidirectional compiler between Expr text and
// the editable filter tree: CST reduction into an AST, AST transformation
// into rules and groups, and generation of canonical Expr text back out of
// the tree.
package filter

// ASTNode represents a node in the abstract syntax tree
type ASTNode interface {
	astNode()
}

// LiteralType classifies a literal's value kind.
type LiteralType string

const (
	LiteralString  LiteralType = "string"
	LiteralNumber  LiteralType = "number"
	LiteralBoolean LiteralType = "boolean"
	LiteralNil     LiteralType = "nil"
)

// BinaryExpr represents a binary expression (e.g., a && b, x + y)
type BinaryExpr struct {
	Left     ASTNode
	Operator string
	Right    ASTNode
}

func (e *BinaryExpr) astNode() {}

// UnaryExpr represents a unary expression (e.g., !x, not x)
type UnaryExpr struct {
	Operator string
	Operand  ASTNode
}

func (e *UnaryExpr) astNode() {}

// IdentifierExpr represents a field reference, including dotted selectors
type IdentifierExpr struct {
	Name string
}

func (e *IdentifierExpr) astNode() {}

// LiteralExpr represents a literal value. Value holds the unquoted,
// unescaped text of the literal.
type LiteralExpr struct {
	Value string
	Type  LiteralType
}

func (e *LiteralExpr) astNode() {}

// ArrayExpr represents an array literal (e.g., [1, 2, 3])
type ArrayExpr struct {
	Elements []ASTNode
}

func (e *ArrayExpr) astNode() {}

// GroupExpr represents a parenthesized expression. Explicit grouping is
// significant and survives round-trips, so it is kept as its own node.
type GroupExpr struct {
	Expr ASTNode
}

func (e *GroupExpr) astNode() {}

// FunctionCallExpr represents a function call (e.g., upper(name))
type FunctionCallExpr struct {
	Function string
	Args     []ASTNode
}

func (e *FunctionCallExpr) astNode() {}
