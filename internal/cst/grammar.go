package cst

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer rules for the Expr subset the pipeline engine accepts. Order matters:
// CmpOp must come before Bang so "!=" is not split, Float before Integer.
var ExprLexerRules = []lexer.SimpleRule{
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Integer", Pattern: `[0-9]+`},

	{Name: "DString", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "SString", Pattern: `'([^'\\]|\\.)*'`},

	{Name: "CmpOp", Pattern: `==|!=|>=|<=|>|<`},
	{Name: "AndOp", Pattern: `&&`},
	{Name: "OrOp", Pattern: `\|\|`},
	{Name: "Bang", Pattern: `!`},

	{Name: "AddOp", Pattern: `[+-]`},
	{Name: "MulOp", Pattern: `[*/%]`},

	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[\[\](),.]`},

	{Name: "whitespace", Pattern: `\s+`},
}

var ExprLexerDefinition = lexer.MustSimple(ExprLexerRules)

// ExprScript is the grammar root. Keywords (and, or, not, in, true, false,
// nil) are ordinary Ident tokens matched by value inside the grammar.
type ExprScript struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Root *OrExpression `parser:"@@"`
}

type OrExpression struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Head *AndExpression `parser:"@@"`
	Tail []*OrClause    `parser:"@@*"`
}

type OrClause struct {
	Op   OrOpToken      `parser:"@@"`
	Expr *AndExpression `parser:"@@"`
}

type AndExpression struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Head *NotExpression `parser:"@@"`
	Tail []*AndClause   `parser:"@@*"`
}

type AndClause struct {
	Op   AndOpToken     `parser:"@@"`
	Expr *NotExpression `parser:"@@"`
}

// NotExpression is either a prefixed negation or a plain comparison. The
// prefix recurses so "!" and "not" can stack.
type NotExpression struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Not     *NotOpToken    `parser:"( @@"`
	Operand *NotExpression `parser:"  @@ )"`
	Cmp     *Comparison    `parser:"| @@"`
}

type Comparison struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Left  *AddExpression `parser:"@@"`
	Op    *CompareOp     `parser:"( @@"`
	Right *AddExpression `parser:"  @@ )?"`
}

// CompareOp is either a comparator token or the (optionally negated)
// membership keyword sequence "not in" / "in".
type CompareOp struct {
	Pos lexer.Position

	Cmp string `parser:"( @CmpOp"`
	Not string `parser:"| @\"not\"?"`
	In  string `parser:"  @\"in\" )"`
}

type AddExpression struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Head *MulExpression `parser:"@@"`
	Tail []*AddClause   `parser:"@@*"`
}

type AddClause struct {
	Op   AddOpToken     `parser:"@@"`
	Term *MulExpression `parser:"@@"`
}

type MulExpression struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Head *Primary     `parser:"@@"`
	Tail []*MulClause `parser:"@@*"`
}

type MulClause struct {
	Op   MulOpToken `parser:"@@"`
	Term *Primary   `parser:"@@"`
}

type Primary struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Paren    *OrExpression `parser:"  \"(\" @@ \")\""`
	Array    *ArrayLit     `parser:"| @@"`
	Boolean  string        `parser:"| @(\"true\" | \"false\")"`
	Nil      string        `parser:"| @\"nil\""`
	Number   *NumberLit    `parser:"| @@"`
	Str      string        `parser:"| @(DString | SString)"`
	Call     *CallExpr     `parser:"| @@"`
	Selector []string      `parser:"| @Ident (\".\" @Ident)*"`
}

type ArrayLit struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Elements []*OrExpression `parser:"\"[\" ( @@ ( \",\" @@ )* )? \"]\""`
}

type CallExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Callee string          `parser:"@Ident"`
	Args   []*OrExpression `parser:"\"(\" ( @@ ( \",\" @@ )* )? \")\""`
}

type NumberLit struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Minus string `parser:"@\"-\"?"`
	Value string `parser:"@(Float | Integer)"`
}

type OrOpToken struct {
	Pos  lexer.Position
	Text string `parser:"@(OrOp | \"or\")"`
}

type AndOpToken struct {
	Pos  lexer.Position
	Text string `parser:"@(AndOp | \"and\")"`
}

type NotOpToken struct {
	Pos  lexer.Position
	Text string `parser:"@(Bang | \"not\")"`
}

type AddOpToken struct {
	Pos  lexer.Position
	Text string `parser:"@AddOp"`
}

type MulOpToken struct {
	Pos  lexer.Position
	Text string `parser:"@MulOp"`
}
