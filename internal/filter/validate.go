package filter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError reports one invalid attribute of a rule. Validation never
// mutates the tree and never panics; errors block serialization, nothing
// else.
type FieldError struct {
	RuleID  string `json:"ruleId"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("rule %s: %s: %s", e.RuleID, e.Field, e.Message)
}

// ValidateRule checks a single rule and returns one error per invalid
// attribute.
func ValidateRule(rule *FilterRule) []FieldError {
	var errs []FieldError
	fail := func(field, message string) {
		errs = append(errs, FieldError{RuleID: rule.ID, Field: field, Message: message})
	}

	if rule.UseArithmeticExpression {
		if rule.ArithmeticExpression == nil {
			fail("arithmeticExpression", "missing arithmetic expression")
		} else if !rule.ArithmeticExpression.IsComplete() {
			fail("arithmeticExpression", "arithmetic expression is incomplete")
		}
		if rule.Field != "" {
			fail("field", "field must be empty when an arithmetic expression is used")
		}
		if rule.FieldType != FieldTypeInt && rule.FieldType != FieldTypeFloat {
			fail("fieldType", "arithmetic rules require a numeric field type")
		}
	} else if rule.Field == "" {
		fail("field", "missing field")
	}

	if rule.Operator == "" {
		fail("operator", "missing operator")
		return errs
	}
	if _, ok := operatorSymbols[rule.Operator]; !ok {
		fail("operator", fmt.Sprintf("unknown operator %q", rule.Operator))
		return errs
	}
	if !rule.Operator.needsValue() {
		return errs
	}

	if rule.Value == "" {
		fail("value", "missing value")
		return errs
	}
	if rule.Operator.isArrayOperator() {
		for _, item := range strings.Split(rule.Value, ",") {
			if strings.TrimSpace(item) == "" {
				fail("value", "array value contains an empty element")
				continue
			}
			errs = append(errs, validateTypedValue(rule, strings.TrimSpace(item))...)
		}
		return errs
	}
	return append(errs, validateTypedValue(rule, rule.Value)...)
}

func validateTypedValue(rule *FilterRule, value string) []FieldError {
	switch rule.FieldType {
	case FieldTypeInt, FieldTypeFloat:
		if _, err := decimal.NewFromString(value); err != nil {
			return []FieldError{{
				RuleID:  rule.ID,
				Field:   "value",
				Message: fmt.Sprintf("%q is not a valid number", value),
			}}
		}
	case FieldTypeBool:
		lower := strings.ToLower(value)
		if lower != "true" && lower != "false" {
			return []FieldError{{
				RuleID:  rule.ID,
				Field:   "value",
				Message: fmt.Sprintf("%q is not a valid boolean", value),
			}}
		}
	}
	return nil
}

// ValidateGroup walks the tree and collects errors from every rule.
func ValidateGroup(group *FilterGroup) []FieldError {
	var errs []FieldError
	for _, child := range group.Children {
		switch c := child.(type) {
		case *FilterRule:
			errs = append(errs, ValidateRule(c)...)
		case *FilterGroup:
			errs = append(errs, ValidateGroup(c)...)
		}
	}
	return errs
}
