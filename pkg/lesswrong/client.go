// Package lesswrong fetches posts and their comments from the LessWrong
// GraphQL API.
package lesswrong

import (
	"context"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	"github.com/MrToph/lesswrong-api/pkg/config"
	"github.com/MrToph/lesswrong-api/pkg/errors"
	"github.com/MrToph/lesswrong-api/pkg/transport/graphql"
)

// Client talks to the LessWrong GraphQL endpoint. Its fields are set once in
// NewClient and only read afterwards, so one Client may serve many goroutines.
type Client struct {
	gql      *graphql.Client
	endpoint string
	headers  map[string]string
	logger   *zap.Logger
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	hc := &http.Client{Timeout: o.timeout}
	if o.httpClient != nil {
		copied := *o.httpClient
		hc = &copied
		// a supplied client keeps its own Timeout unless WithTimeout was used
		if o.timeoutSet {
			hc.Timeout = o.timeout
		}
	}

	headers := make(map[string]string, len(o.headers)+1)
	for k, v := range o.headers {
		headers[k] = v
	}
	if o.userAgent != "" {
		headers["User-Agent"] = o.userAgent
	}

	return &Client{
		gql:      graphql.NewClient(hc, graphql.WithLogger(o.logger)),
		endpoint: o.endpoint,
		headers:  headers,
		logger:   o.logger,
	}
}

// NewClientFromConfig creates a Client from a loaded config. Extra options
// are applied after the config.
func NewClientFromConfig(cfg *config.Client, opts ...Option) *Client {
	return NewClient(append(FromConfig(cfg), opts...)...)
}

// Endpoint returns the GraphQL endpoint the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) builder(query string, variables map[string]interface{}) *graphql.Builder {
	return graphql.NewBuilder(c.endpoint, query,
		graphql.WithHeaders(c.headers),
		graphql.WithVariables(variables),
	)
}

// GetPost fetches a single post by id.
//
// It fails with errors.ErrNotFound when upstream has no such post,
// errors.ErrTransport on network or HTTP failure and errors.ErrDecode when
// the response does not have the expected shape.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	if id == "" {
		return nil, errors.WrapError(nil, errors.ErrValidation, "post id is required")
	}

	var data postData
	gqlErrs, err := c.gql.Do(ctx, c.builder(postQuery, postVariables(id)), &data)
	if err != nil {
		return nil, err
	}

	if data.Post == nil || data.Post.Result == nil {
		if len(gqlErrs) > 0 {
			return nil, errors.WrapError(gqlErrs, errors.ErrNotFound, "post "+id)
		}
		return nil, errors.WrapError(nil, errors.ErrNotFound, "post "+id)
	}

	post, err := data.Post.Result.toPost()
	if err != nil {
		return nil, err
	}
	if post.ID != id {
		return nil, errors.WrapError(nil, errors.ErrDecode, "post._id "+post.ID+" does not match requested id "+id)
	}

	c.logger.Debug("fetched post", zap.String("post_id", id), zap.String("title", post.Title))
	return post, nil
}

// GetComments fetches up to limit comments on a post, best ones first.
// A post without comments gives an empty slice, not an error. Deleted
// comments and comments with an empty body are left out.
func (c *Client) GetComments(ctx context.Context, postID string, limit int) ([]Comment, error) {
	if postID == "" {
		return nil, errors.WrapError(nil, errors.ErrValidation, "post id is required")
	}
	if limit < 0 {
		return nil, errors.WrapError(nil, errors.ErrValidation, "limit must not be negative")
	}
	if limit == 0 {
		return []Comment{}, nil
	}

	var data commentsData
	gqlErrs, err := c.gql.Do(ctx, c.builder(commentsQuery, commentsVariables(postID, limit)), &data)
	if err != nil {
		return nil, err
	}

	if data.Comments == nil {
		return nil, decodeFailure(gqlErrs, "comments")
	}
	if data.Comments.Results == nil {
		return nil, decodeFailure(gqlErrs, "comments.results")
	}

	results := *data.Comments.Results
	comments := make([]Comment, 0, min(len(results), limit))
	skipped := 0
	for _, wc := range results {
		if len(comments) == limit {
			break
		}
		if wc == nil || wc.skip() {
			skipped++
			continue
		}
		comment, err := wc.toComment(postID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	c.logger.Debug("fetched comments",
		zap.String("post_id", postID),
		zap.Int("count", len(comments)),
		zap.Int("skipped", skipped),
	)
	return comments, nil
}

func decodeFailure(gqlErrs gqlerror.List, field string) error {
	if len(gqlErrs) > 0 {
		return errors.WrapError(gqlErrs, errors.ErrDecode, "missing/malformatted field "+field)
	}
	return missing(field)
}
