package cst

// Node kind strings produced by the lowering step. These mirror the grammar's
// vocabulary and are the only contract between the parser and its consumers.
const (
	KindExpression    = "Expression"
	KindBinary        = "BinaryExpression"
	KindUnary         = "UnaryExpression"
	KindParenthesized = "ParenthesizedExpression"
	KindIdentifier    = "Identifier"
	KindInteger       = "Integer"
	KindFloat         = "Float"
	KindString        = "String"
	KindBoolean       = "Boolean"
	KindNil           = "Nil"
	KindArray         = "Array"
	KindCall          = "CallExpression"
	KindArguments     = "Arguments"
	KindCompareOp     = "CompareOp"
	KindLogicOp       = "LogicOp"
	KindArithOp       = "ArithOp"
	KindIn            = "in"
	KindNot           = "not"
)
