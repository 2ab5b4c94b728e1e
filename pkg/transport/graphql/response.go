package graphql

import (
	"bytes"
	"encoding/json"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/MrToph/lesswrong-api/pkg/errors"
)

// Response is the GraphQL response envelope.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors,omitempty"`
}

// DecodeResponse parses a raw response body and decodes its "data" member
// into out. A body without data is always an error, never an empty result.
func DecodeResponse(raw []byte, out interface{}) (gqlerror.List, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.WrapError(err, errors.ErrDecode, "failed to decode response JSON")
	}

	data := bytes.TrimSpace(resp.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		if len(resp.Errors) > 0 {
			return resp.Errors, errors.WrapError(resp.Errors, errors.ErrDecode, "response has no data")
		}
		return nil, errors.WrapError(nil, errors.ErrDecode, "missing field data")
	}

	if out == nil {
		return resp.Errors, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.Errors, errors.WrapError(err, errors.ErrDecode, "failed to decode data")
	}
	return resp.Errors, nil
}
