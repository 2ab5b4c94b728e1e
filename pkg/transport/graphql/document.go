package graphql

import (
	"bytes"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseDocument parses a GraphQL query document and returns it in the
// formatter's canonical layout.
func ParseDocument(name, src string) (string, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: src})
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}
	if len(doc.Operations) != 1 {
		return "", fmt.Errorf("parse %s: expected exactly one operation, got %d", name, len(doc.Operations))
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String(), nil
}

// MustParseDocument is ParseDocument for package-level query constants.
func MustParseDocument(name, src string) string {
	doc, err := ParseDocument(name, src)
	if err != nil {
		panic(err)
	}
	return doc
}
