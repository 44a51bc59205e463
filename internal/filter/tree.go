package filter

import "github.com/google/uuid"

// TreeNode is either a *FilterRule or a *FilterGroup.
type TreeNode interface {
	treeNode()
}

// FilterRule is a single editable condition. Either Field or
// ArithmeticExpression is the effective left operand: when
// UseArithmeticExpression is set, Field is empty and FieldType is numeric.
type FilterRule struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	FieldType FieldType `json:"fieldType"`
	Operator  Operator  `json:"operator"`
	Value     string    `json:"value"`
	Not       bool      `json:"not"`

	UseArithmeticExpression bool            `json:"useArithmeticExpression,omitempty"`
	ArithmeticExpression    *ArithmeticNode `json:"arithmeticExpression,omitempty"`
}

func (r *FilterRule) treeNode() {}

// FilterGroup joins child rules and groups with a single combinator.
type FilterGroup struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Combinator Combinator `json:"combinator"`
	Not        bool       `json:"not"`
	Children   []TreeNode `json:"children"`
}

func (g *FilterGroup) treeNode() {}

// NewFilterRule returns an empty rule with a fresh id.
func NewFilterRule() *FilterRule {
	return &FilterRule{ID: uuid.NewString()}
}

// NewFilterGroup returns a group with a fresh id joining the given children.
func NewFilterGroup(combinator Combinator, children ...TreeNode) *FilterGroup {
	return &FilterGroup{
		ID:         uuid.NewString(),
		Type:       "group",
		Combinator: combinator,
		Children:   children,
	}
}

// CountRules returns the number of rules in the group, including nested ones.
func CountRules(group *FilterGroup) int {
	if group == nil {
		return 0
	}
	count := 0
	for _, child := range group.Children {
		switch c := child.(type) {
		case *FilterRule:
			count++
		case *FilterGroup:
			count += CountRules(c)
		}
	}
	return count
}
