// Package sample validates generated expressions by compiling and running
// them against a synthetic event built from the pipeline's field schema.
// Everything happens in-process; no network is involved.
package sample

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/tidwall/sjson"
)

// Field is one entry of the event schema the expression is checked against.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// defaultValue returns a zero value of the field's declared type. Field
// types follow the Kafka schema vocabulary used by the pipeline engine.
func defaultValue(fieldType string) (any, error) {
	switch fieldType {
	case "string", "bytes":
		return "", nil
	case "int", "int8", "int16", "int32", "int64":
		return 0, nil
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return 0, nil
	case "float", "float32", "float64":
		return 0.0, nil
	case "bool":
		return false, nil
	default:
		return nil, fmt.Errorf("unknown field type %q", fieldType)
	}
}

// Event builds a JSON event populating every schema field with its default
// value. Dotted field names become nested objects.
func Event(fields []Field) (string, error) {
	doc := "{}"
	for _, field := range fields {
		value, err := defaultValue(field.Type)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field.Name, err)
		}
		doc, err = sjson.Set(doc, field.Name, value)
		if err != nil {
			return "", fmt.Errorf("set field %s: %w", field.Name, err)
		}
	}
	return doc, nil
}

// Validate compiles the expression against a synthetic event and requires a
// boolean result, mirroring what the pipeline engine will do with it.
func Validate(expression string, fields []Field) error {
	if expression == "" {
		return fmt.Errorf("empty expression")
	}

	doc, err := Event(fields)
	if err != nil {
		return err
	}
	env := make(map[string]any)
	if err := json.Unmarshal([]byte(doc), &env); err != nil {
		return fmt.Errorf("unmarshal sample event: %w", err)
	}

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return fmt.Errorf("compile expression: %w", err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return fmt.Errorf("eval expression: %w", err)
	}
	if _, ok := result.(bool); !ok {
		return fmt.Errorf("expression must evaluate to a boolean, got %T", result)
	}
	return nil
}
