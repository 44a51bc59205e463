package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassflow/go-exprtree/internal/cst"
)

func TestRuleToExpr(t *testing.T) {
	tests := []struct {
		name string
		rule FilterRule
		want string
	}{
		{
			name: "string equality",
			rule: FilterRule{Field: "name", FieldType: FieldTypeString, Operator: OpEqual, Value: "alice"},
			want: `name == "alice"`,
		},
		{
			name: "numeric comparison",
			rule: FilterRule{Field: "price", FieldType: FieldTypeFloat, Operator: OpGreaterThan, Value: "10.5"},
			want: "price > 10.5",
		},
		{
			name: "boolean normalization",
			rule: FilterRule{Field: "active", FieldType: FieldTypeBool, Operator: OpEqual, Value: "True"},
			want: "active == true",
		},
		{
			name: "is null emits no value",
			rule: FilterRule{Field: "email", FieldType: FieldTypeString, Operator: OpIsNull},
			want: "email == nil",
		},
		{
			name: "is not null emits no value",
			rule: FilterRule{Field: "email", FieldType: FieldTypeString, Operator: OpIsNotNull},
			want: "email != nil",
		},
		{
			name: "in splits the stored value",
			rule: FilterRule{Field: "status", FieldType: FieldTypeString, Operator: OpIn, Value: "active, pending"},
			want: `status in ["active", "pending"]`,
		},
		{
			name: "not in",
			rule: FilterRule{Field: "code", FieldType: FieldTypeInt, Operator: OpNotIn, Value: "1, 2, 3"},
			want: "code not in [1, 2, 3]",
		},
		{
			name: "negated rule",
			rule: FilterRule{Field: "price", FieldType: FieldTypeInt, Operator: OpGreaterThan, Value: "100", Not: true},
			want: "!(price > 100)",
		},
		{
			name: "string escaping",
			rule: FilterRule{Field: "msg", FieldType: FieldTypeString, Operator: OpEqual, Value: `say "hi"`},
			want: `msg == "say \"hi\""`,
		},
		{
			name: "missing value renders empty",
			rule: FilterRule{Field: "price", FieldType: FieldTypeInt, Operator: OpGreaterThan},
			want: "",
		},
		{
			name: "missing field renders empty",
			rule: FilterRule{FieldType: FieldTypeInt, Operator: OpGreaterThan, Value: "1"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuleToExpr(&tt.rule))
		})
	}
}

func TestRuleToExprArithmetic(t *testing.T) {
	rule := &FilterRule{
		FieldType:               FieldTypeInt,
		Operator:                OpGreaterThan,
		Value:                   "100",
		UseArithmeticExpression: true,
		ArithmeticExpression: NewArithmeticNode(
			&FieldOperand{Field: "price"}, "*", &FieldOperand{Field: "quantity"},
		),
	}
	assert.Equal(t, "(price * quantity) > 100", RuleToExpr(rule))

	rule.ArithmeticExpression = NewSyntheticNode(&FunctionOperand{
		Name: "int",
		Args: []ArithmeticTerm{&FieldOperand{Field: "amount"}},
	})
	assert.Equal(t, "int(amount) > 100", RuleToExpr(rule))

	rule.ArithmeticExpression = NewArithmeticNode(&FieldOperand{Field: "a"}, "+", &FieldOperand{})
	assert.Equal(t, "", RuleToExpr(rule), "incomplete arithmetic renders empty")
}

func TestGroupToExpr(t *testing.T) {
	group := NewFilterGroup(CombinatorAnd,
		&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
		&FilterRule{Field: "b", FieldType: FieldTypeInt, Operator: OpEqual, Value: "2"},
	)
	assert.Equal(t, "(a == 1 and b == 2)", GroupToExpr(group))
}

func TestGroupToExprSingleChild(t *testing.T) {
	group := NewFilterGroup(CombinatorAnd,
		&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
	)
	assert.Equal(t, "a == 1", GroupToExpr(group), "single child needs no parentheses")
}

func TestGroupToExprSkipsIncomplete(t *testing.T) {
	group := NewFilterGroup(CombinatorOr,
		&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
		&FilterRule{Field: "", Operator: OpEqual, Value: "2"},
		NewFilterGroup(CombinatorAnd), // empty sub-group drops out entirely
	)
	assert.Equal(t, "a == 1", GroupToExpr(group))
}

func TestGroupToExprEmpty(t *testing.T) {
	assert.Equal(t, "", GroupToExpr(NewFilterGroup(CombinatorAnd)))
}

func TestGroupToExprNot(t *testing.T) {
	group := NewFilterGroup(CombinatorOr,
		&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
		&FilterRule{Field: "b", FieldType: FieldTypeInt, Operator: OpEqual, Value: "2"},
	)
	group.Not = true
	assert.Equal(t, "!(a == 1 or b == 2)", GroupToExpr(group))

	single := NewFilterGroup(CombinatorAnd,
		&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
	)
	single.Not = true
	assert.Equal(t, "!(a == 1)", GroupToExpr(single))
}

func TestGroupToExprNested(t *testing.T) {
	group := NewFilterGroup(CombinatorAnd,
		NewFilterGroup(CombinatorOr,
			&FilterRule{Field: "a", FieldType: FieldTypeInt, Operator: OpEqual, Value: "1"},
			&FilterRule{Field: "b", FieldType: FieldTypeInt, Operator: OpEqual, Value: "2"},
		),
		&FilterRule{Field: "c", FieldType: FieldTypeInt, Operator: OpEqual, Value: "3"},
	)
	assert.Equal(t, "((a == 1 or b == 2) and c == 3)", GroupToExpr(group))
}

// ruleRoundTrip parses text, expects a single rule, regenerates text from it
// and parses again, asserting the two rules match structurally.
func ruleRoundTrip(t *testing.T, input string) {
	t.Helper()
	first, _ := transformText(t, input)
	rule, ok := first.(*FilterRule)
	require.True(t, ok, "expected a rule from %q", input)

	regenerated := RuleToExpr(rule)
	require.NotEmpty(t, regenerated, "rule from %q must serialize", input)

	tree, err := cst.Parse(regenerated)
	require.NoError(t, err, "regenerated text %q must re-parse", regenerated)
	diags := &Diagnostics{}
	second := Transform(Reduce(tree), diags)
	require.Empty(t, diags.Unsupported)
	again, ok := second.(*FilterRule)
	require.True(t, ok, "regenerated %q must transform back to a rule", regenerated)

	assert.Equal(t, rule.Field, again.Field)
	assert.Equal(t, rule.Operator, again.Operator)
	assert.Equal(t, rule.Value, again.Value)
	assert.Equal(t, rule.Not, again.Not)
	assert.Equal(t, rule.FieldType, again.FieldType)
}

func TestRuleRoundTrips(t *testing.T) {
	inputs := []string{
		"price > 100",
		"price >= 10.5",
		`name == "alice"`,
		"active == true",
		"email == nil",
		"email != nil",
		`status in ["active", "pending"]`,
		"code not in [1, 2, 3]",
		"!(price > 100)",
		"100 > price",
		"(price * quantity) > 100",
		"int(amount) >= 10",
		"user.address.city != \"Berlin\"",
	}
	for _, input := range inputs {
		ruleRoundTrip(t, input)
	}
}
