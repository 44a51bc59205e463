package filter

// Operator identifies a rule's comparison operator as stored in the tree.
type Operator string

const (
	OpEqual              Operator = "eq"
	OpNotEqual           Operator = "neq"
	OpGreaterThan        Operator = "gt"
	OpGreaterThanOrEqual Operator = "gte"
	OpLessThan           Operator = "lt"
	OpLessThanOrEqual    Operator = "lte"
	OpIn                 Operator = "in"
	OpNotIn              Operator = "notIn"
	OpIsNull             Operator = "isNull"
	OpIsNotNull          Operator = "isNotNull"
)

// Combinator is the logical joiner of a group's children.
type Combinator string

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
)

// FieldType classifies the left operand's value type.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "bool"
)

// comparisonOperators maps Expr comparator spellings to tree operators.
var comparisonOperators = map[string]Operator{
	"==": OpEqual,
	"!=": OpNotEqual,
	">":  OpGreaterThan,
	">=": OpGreaterThanOrEqual,
	"<":  OpLessThan,
	"<=": OpLessThanOrEqual,
}

// operatorSymbols maps tree operators back to Expr text. The null checks
// carry their nil operand so the generator can emit them without a value.
var operatorSymbols = map[Operator]string{
	OpEqual:              "==",
	OpNotEqual:           "!=",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpIn:                 "in",
	OpNotIn:              "not in",
	OpIsNull:             "== nil",
	OpIsNotNull:          "!= nil",
}

// mirroredOperators gives the comparator for swapped operands, recovering
// expressions written literal-first ("10 > field" becomes field lt 10).
var mirroredOperators = map[Operator]Operator{
	OpEqual:              OpEqual,
	OpNotEqual:           OpNotEqual,
	OpGreaterThan:        OpLessThan,
	OpGreaterThanOrEqual: OpLessThanOrEqual,
	OpLessThan:           OpGreaterThan,
	OpLessThanOrEqual:    OpGreaterThanOrEqual,
}

// logicalCombinators maps both logical operator spellings onto combinators.
var logicalCombinators = map[string]Combinator{
	"&&":  CombinatorAnd,
	"and": CombinatorAnd,
	"||":  CombinatorOr,
	"or":  CombinatorOr,
}

// arithmeticOps is the set of operators valid inside arithmetic expressions.
var arithmeticOps = map[string]bool{
	"+": true,
	"-": true,
	"*": true,
	"/": true,
	"%": true,
}

func isComparisonOperator(op string) bool {
	_, ok := comparisonOperators[op]
	return ok
}

// noValueOperators require no right-hand value in generated text.
func (op Operator) needsValue() bool {
	return op != OpIsNull && op != OpIsNotNull
}

func (op Operator) isArrayOperator() bool {
	return op == OpIn || op == OpNotIn
}
