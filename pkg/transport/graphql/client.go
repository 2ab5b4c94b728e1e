package graphql

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	"github.com/MrToph/lesswrong-api/pkg/errors"
)

// RequestIDHeader carries a per-request id so upstream logs can be matched
// against ours.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody caps how much of a failed response body ends up in HTTPError.
const maxErrorBody = 512

// HTTPDoer is the minimal interface the client needs from *http.Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPError wraps non-2xx responses.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, e.Body)
}

// Client executes GraphQL operations. It holds no per-call state and may be
// shared between goroutines.
type Client struct {
	doer   HTTPDoer
	logger *zap.Logger
}

// NewClient wraps an HTTPDoer (e.g. *http.Client). A nil doer gets a fresh
// *http.Client with a 30 second timeout.
func NewClient(doer HTTPDoer, opts ...ClientOption) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		doer:   doer,
		logger: zap.NewNop(),
	}
	c.ApplyOptions(opts...)
	return c
}

// Execute sends a built request.
func (c *Client) Execute(req *http.Request) (*http.Response, error) {
	return c.doer.Do(req)
}

// Do runs one request/response round trip and decodes the "data" member of
// the response into out. Upstream GraphQL errors that came back alongside
// data are returned as the first value; the caller decides what they mean.
func (c *Client) Do(ctx context.Context, b *Builder, out interface{}) (gqlerror.List, error) {
	req, err := b.Build(ctx)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrTransport, "failed to build request")
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("endpoint", b.Endpoint),
	)

	start := time.Now()
	resp, err := c.Execute(req)
	if err != nil {
		log.Debug("graphql request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, errors.WrapError(err, errors.ErrTransport, "http do")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrTransport, "failed to read response body")
	}

	log.Debug("graphql request",
		zap.Int("status_code", resp.StatusCode),
		zap.Int("response_length", len(body)),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := string(body)
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return nil, errors.WrapError(&HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       text,
		}, errors.ErrTransport, "unexpected status code")
	}

	gqlErrs, err := DecodeResponse(body, out)
	if len(gqlErrs) > 0 {
		log.Warn("graphql response carried errors", zap.Error(gqlErrs))
	}
	return gqlErrs, err
}
