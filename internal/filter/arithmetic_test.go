package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func field(name string) *FieldOperand  { return &FieldOperand{Field: name} }
func literal(v string) *LiteralOperand { return &LiteralOperand{Value: v} }
func node(l ArithmeticTerm, op string, r ArithmeticTerm) *ArithmeticNode {
	return NewArithmeticNode(l, op, r)
}

func TestArithmeticCanonicalText(t *testing.T) {
	n := node(field("a"), "+", node(field("b"), "*", field("c")))
	assert.Equal(t, "(a + (b * c))", n.Text(), "canonical text is always fully parenthesized")

	fn := &FunctionOperand{Name: "round", Args: []ArithmeticTerm{field("x"), literal("2")}}
	assert.Equal(t, "(round(x, 2) / y)", node(fn, "/", field("y")).Text())
}

func TestSyntheticNodeUnwraps(t *testing.T) {
	fn := &FunctionOperand{Name: "int", Args: []ArithmeticTerm{field("amount")}}
	synthetic := NewSyntheticNode(fn)

	assert.True(t, synthetic.IsSynthetic())
	assert.Equal(t, "int(amount)", synthetic.Text(), "synthetic wrapper must never render + 0")
	assert.Equal(t, "int(amount)", synthetic.DisplayText())
}

func TestDisplayTextAssociativeChains(t *testing.T) {
	leftNested := node(node(field("a"), "+", field("b")), "+", field("c"))
	rightNested := node(field("a"), "+", node(field("b"), "+", field("c")))

	assert.Equal(t, "a + b + c", leftNested.DisplayText())
	assert.Equal(t, "a + b + c", rightNested.DisplayText(),
		"both nestings of an associative operator render identically")
}

func TestDisplayTextNonAssociativeRightBranch(t *testing.T) {
	leftNested := node(node(field("a"), "-", field("b")), "-", field("c"))
	rightNested := node(field("a"), "-", node(field("b"), "-", field("c")))

	assert.Equal(t, "a - b - c", leftNested.DisplayText())
	assert.Equal(t, "a - (b - c)", rightNested.DisplayText(),
		"the right branch of a non-associative chain keeps its parentheses")
	assert.NotEqual(t, leftNested.DisplayText(), rightNested.DisplayText())
}

func TestDisplayTextPrecedence(t *testing.T) {
	tests := []struct {
		name string
		n    *ArithmeticNode
		want string
	}{
		{
			name: "lower precedence child keeps parens",
			n:    node(node(field("a"), "+", field("b")), "*", field("c")),
			want: "(a + b) * c",
		},
		{
			name: "higher precedence child drops parens",
			n:    node(node(field("a"), "*", field("b")), "+", field("c")),
			want: "a * b + c",
		},
		{
			name: "division right branch keeps parens",
			n:    node(field("a"), "/", node(field("b"), "/", field("c"))),
			want: "a / (b / c)",
		},
		{
			name: "multiplication right branch drops parens",
			n:    node(field("a"), "*", node(field("b"), "*", field("c"))),
			want: "a * b * c",
		},
		{
			name: "modulo right branch keeps parens",
			n:    node(field("a"), "%", node(field("b"), "%", field("c"))),
			want: "a % (b % c)",
		},
		{
			name: "mixed same precedence on the right of plus",
			n:    node(field("a"), "+", node(field("b"), "-", field("c"))),
			want: "a + b - c",
		},
		{
			name: "subtraction of a sum",
			n:    node(field("a"), "-", node(field("b"), "+", field("c"))),
			want: "a - (b + c)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.DisplayText())
		})
	}
}

func TestIsComplete(t *testing.T) {
	assert.True(t, node(field("a"), "+", literal("1")).IsComplete())
	assert.False(t, node(field(""), "+", literal("1")).IsComplete())
	assert.False(t, node(field("a"), "", literal("1")).IsComplete())
	assert.False(t, node(field("a"), "+", literal("")).IsComplete())

	fn := &FunctionOperand{Name: "round", Args: []ArithmeticTerm{field("x"), literal("2")}}
	assert.True(t, node(fn, "*", field("y")).IsComplete())

	incompleteFn := &FunctionOperand{Name: "round", Args: []ArithmeticTerm{field("")}}
	assert.False(t, node(incompleteFn, "*", field("y")).IsComplete())

	unnamed := &FunctionOperand{Args: []ArithmeticTerm{field("x")}}
	assert.False(t, node(unnamed, "*", field("y")).IsComplete())

	nested := node(node(field("a"), "+", field("b")), "*", field(""))
	assert.False(t, nested.IsComplete())
}
