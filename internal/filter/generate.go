package filter

import "strings"

// RuleToExpr serializes one rule to Expr text. Incomplete rules render as
// the empty string and are skipped by the enclosing group.
func RuleToExpr(rule *FilterRule) string {
	left := rule.Field
	if rule.UseArithmeticExpression {
		if rule.ArithmeticExpression == nil || !rule.ArithmeticExpression.IsComplete() {
			return ""
		}
		left = rule.ArithmeticExpression.Text()
	}
	if left == "" || rule.Operator == "" {
		return ""
	}
	symbol, ok := operatorSymbols[rule.Operator]
	if !ok {
		return ""
	}

	var text string
	switch {
	case !rule.Operator.needsValue():
		text = left + " " + symbol
	case rule.Operator.isArrayOperator():
		if rule.Value == "" {
			return ""
		}
		text = left + " " + symbol + " " + formatArrayValue(rule.Value, rule.FieldType)
	default:
		if rule.Value == "" {
			return ""
		}
		text = left + " " + symbol + " " + formatValue(rule.Value, rule.FieldType)
	}
	if rule.Not {
		text = "!(" + text + ")"
	}
	return text
}

// GroupToExpr serializes a group and its children. Children that render
// empty are dropped; a group with no surviving children renders empty and
// must be treated as absent by its parent.
func GroupToExpr(group *FilterGroup) string {
	var parts []string
	for _, child := range group.Children {
		switch c := child.(type) {
		case *FilterRule:
			if text := RuleToExpr(c); text != "" {
				parts = append(parts, text)
			}
		case *FilterGroup:
			if text := GroupToExpr(c); text != "" {
				parts = append(parts, text)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}

	text := strings.Join(parts, " "+string(group.Combinator)+" ")
	if len(parts) > 1 {
		text = "(" + text + ")"
	}
	if group.Not {
		if len(parts) > 1 {
			text = "!" + text
		} else {
			text = "!(" + text + ")"
		}
	}
	return text
}

// formatArrayValue splits the stored comma-joined value and renders an Expr
// array literal with each element formatted per the field type.
func formatArrayValue(value string, fieldType FieldType) string {
	raw := strings.Split(value, ",")
	parts := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts = append(parts, formatValue(item, fieldType))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(value string, fieldType FieldType) string {
	switch fieldType {
	case FieldTypeInt, FieldTypeFloat:
		return strings.TrimSpace(value)
	case FieldTypeBool:
		return strings.ToLower(strings.TrimSpace(value))
	default:
		return quoteString(value)
	}
}

// quoteString renders a double-quoted Expr string literal, escaping
// backslashes and embedded quotes.
func quoteString(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' || value[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('"')
	return b.String()
}
