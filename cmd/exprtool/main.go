// Command exprtool parses an Expr filter expression, prints the resulting
// filter tree as JSON, and regenerates canonical text from it. With a field
// schema it also validates the regenerated expression against a sample
// event.
//
// Usage:
//
//	exprtool [-fields fields.json] 'price > 100 && status in ["active"]'
//
// The fields file is a JSON array of {"name": ..., "type": ...} entries.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"

	exprtree "github.com/glassflow/go-exprtree"
)

func main() {
	fieldsPath := flag.String("fields", "", "path to a JSON field schema for sample validation")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if flag.NArg() != 1 {
		log.Error("expected exactly one expression argument")
		os.Exit(2)
	}
	expression := flag.Arg(0)

	result, err := exprtree.Parse(expression)
	if err != nil {
		log.Error("parse failed", "error", err)
		os.Exit(1)
	}
	for _, feature := range result.Unsupported {
		log.Warn("unsupported construct dropped", "construct", feature)
	}

	tree, err := json.MarshalIndent(result.Tree, "", "  ")
	if err != nil {
		log.Error("encode tree", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(tree))

	regenerated := exprtree.Generate(result.Tree)
	fmt.Printf("expression: %s\n", regenerated)
	fmt.Printf("fingerprint: %016x\n", exprtree.Fingerprint(result.Tree))

	if *fieldsPath == "" {
		return
	}
	fields, err := loadFields(*fieldsPath)
	if err != nil {
		log.Error("load field schema", "path", *fieldsPath, "error", err)
		os.Exit(1)
	}
	if err := exprtree.ValidateAgainstSchema(result.Tree, fields); err != nil {
		log.Error("sample validation failed", "error", err)
		os.Exit(1)
	}
	log.Info("sample validation passed", "fields", len(fields))
}

func loadFields(path string) ([]exprtree.SchemaField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("field schema must be a JSON array")
	}
	var fields []exprtree.SchemaField
	for _, entry := range parsed.Array() {
		fields = append(fields, exprtree.SchemaField{
			Name: entry.Get("name").String(),
			Type: entry.Get("type").String(),
		})
	}
	return fields, nil
}
