package graphql

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("post", `query   post($id: String) {post(input: {selector: {_id: $id}}) {result {_id title}}}`)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	parsed, err := parser.ParseQuery(&ast.Source{Name: "canonical", Input: doc})
	if err != nil {
		t.Fatalf("Canonical document does not parse: %v", err)
	}
	if len(parsed.Operations) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(parsed.Operations))
	}
	op := parsed.Operations[0]
	if op.Name != "post" {
		t.Errorf("Expected operation name 'post', got '%s'", op.Name)
	}
	if op.Operation != ast.Query {
		t.Errorf("Expected a query operation, got '%s'", op.Operation)
	}
	if len(op.VariableDefinitions) != 1 || op.VariableDefinitions[0].Variable != "id" {
		t.Errorf("Expected a single $id variable, got %v", op.VariableDefinitions)
	}

	again, err := ParseDocument("post", doc)
	if err != nil {
		t.Fatalf("ParseDocument on canonical output failed: %v", err)
	}
	if again != doc {
		t.Errorf("Canonical form is not stable:\n%s\n%s", doc, again)
	}
}

func TestParseDocument_IgnoresWhitespace(t *testing.T) {
	a, err := ParseDocument("a", `query q($id: String) { post(id: $id) { _id } }`)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	b, err := ParseDocument("b", "query q(\n  $id: String\n) {\n  post(id: $id) {\n    _id\n  }\n}\n")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if a != b {
		t.Errorf("Expected equal canonical forms:\n%s\n%s", a, b)
	}
}

func TestParseDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Unclosed", `query { post {`},
		{"Empty", ``},
		{"TwoOperations", `query a { x } query b { y }`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDocument(tc.name, tc.src); err == nil {
				t.Errorf("Expected error for %q", tc.src)
			}
		})
	}
}

func TestMustParseDocument_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on invalid document")
		}
	}()
	MustParseDocument("bad", `query {`)
}
