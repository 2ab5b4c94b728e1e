package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("https://example.com/graphql", `query Q($id: String) { post(id: $id) { _id } }`,
		WithVariable("id", "abc"),
		WithHeader("User-Agent", "test-agent"),
	)

	req, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if req.Method != http.MethodPost {
		t.Errorf("Expected method POST, got %s", req.Method)
	}
	if req.URL.String() != "https://example.com/graphql" {
		t.Errorf("Expected endpoint URL, got %s", req.URL.String())
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}
	if ua := req.Header.Get("User-Agent"); ua != "test-agent" {
		t.Errorf("Expected User-Agent 'test-agent', got '%s'", ua)
	}

	raw, _ := io.ReadAll(req.Body)
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if body.Query != b.Query {
		t.Errorf("Expected query %q, got %q", b.Query, body.Query)
	}
	if body.Variables["id"] != "abc" {
		t.Errorf("Expected variables.id 'abc', got %v", body.Variables["id"])
	}
}

func TestBuilder_BodyIsDeterministic(t *testing.T) {
	vars := map[string]interface{}{
		"terms": map[string]interface{}{
			"view":   "postCommentsTop",
			"postId": "abc",
			"limit":  10,
			"extra":  []interface{}{"a", "b"},
		},
	}

	first, err := NewBuilder("https://example.com/graphql", "query { a }", WithVariables(vars)).Body()
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		next, err := NewBuilder("https://example.com/graphql", "query { a }", WithVariables(vars)).Body()
		if err != nil {
			t.Fatalf("Body failed: %v", err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("Body differs between builds:\n%s\n%s", first, next)
		}
	}
}

func TestBuilder_NilVariablesEncodeAsObject(t *testing.T) {
	body, err := NewBuilder("https://example.com/graphql", "query { a }").Body()
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	want := `{"query":"query { a }","variables":{}}`
	if string(body) != want {
		t.Errorf("Expected %s, got %s", want, body)
	}
}

func TestBuilder_Options(t *testing.T) {
	b := NewBuilder("https://a.example.com", "query { a }")
	b.ApplyOptions(
		WithEndpoint("https://b.example.com"),
		WithQuery("query { b }"),
		WithHeaders(map[string]string{"X-One": "1", "X-Two": "2"}),
	)

	if b.Endpoint != "https://b.example.com" {
		t.Errorf("Expected endpoint override, got %s", b.Endpoint)
	}
	if b.Query != "query { b }" {
		t.Errorf("Expected query override, got %s", b.Query)
	}
	if len(b.Headers) != 2 {
		t.Errorf("Expected 2 headers, got %d", len(b.Headers))
	}
}
