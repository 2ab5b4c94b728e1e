package lesswrong

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MrToph/lesswrong-api/pkg/config"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	timeoutSet bool
	userAgent  string
	headers    map[string]string
	logger     *zap.Logger
}

func defaultOptions() *options {
	return &options{
		endpoint:  config.DefaultEndpoint,
		timeout:   config.DefaultTimeout,
		userAgent: config.DefaultUserAgent,
		headers:   make(map[string]string),
		logger:    zap.NewNop(),
	}
}

// WithEndpoint points the client at another GraphQL endpoint.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithHTTPClient sets the HTTP client. It is copied, never mutated, and its
// Timeout is used as is.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout sets the per-request timeout. Zero means no timeout. It
// overrides the Timeout of a client passed to WithHTTPClient; without it
// that client's own Timeout is kept.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
		o.timeoutSet = true
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers[key] = value
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// FromConfig turns a loaded config into options.
func FromConfig(cfg *config.Client) []Option {
	if cfg == nil {
		return nil
	}
	var opts []Option
	if cfg.Timeout != nil {
		opts = append(opts, WithTimeout(*cfg.Timeout))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, WithEndpoint(cfg.Endpoint))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}
	for k, v := range cfg.Headers {
		opts = append(opts, WithHeader(k, v))
	}
	return opts
}
