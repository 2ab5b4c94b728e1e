package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Builder constructs GraphQL requests.
type Builder struct {
	Endpoint  string
	Query     string
	Variables map[string]interface{}
	Headers   map[string]string
}

// NewBuilder sets up a GraphQL Builder.
// Endpoint is the full URL of your GraphQL endpoint.
func NewBuilder(endpoint, query string, opts ...BuilderOption) *Builder {
	b := &Builder{
		Endpoint: endpoint,
		Query:    query,
	}
	b.ApplyOptions(opts...)
	return b
}

// Body returns the JSON request body. Map keys are encoded in sorted order,
// so equal query and variables always give identical bytes.
func (b *Builder) Body() ([]byte, error) {
	variables := b.Variables
	if variables == nil {
		variables = map[string]interface{}{}
	}
	body := map[string]interface{}{
		"query":     b.Query,
		"variables": variables,
	}
	return json.Marshal(body)
}

// Build creates the *http.Request with JSON body.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	buf, err := b.Body()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
