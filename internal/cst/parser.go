package cst

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var exprParser = participle.MustBuild[ExprScript](
	participle.Lexer(ExprLexerDefinition),
	participle.UseLookahead(2),
)

// Parse parses Expr source text into a concrete syntax tree. The returned
// Tree keeps a reference to the source so node text can be resolved by span.
func Parse(input string) (*Tree, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("parse expression: empty input")
	}
	script, err := exprParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse expression: %w", err)
	}
	l := &lowering{src: input}
	return &Tree{Root: l.script(script), Source: input}, nil
}
