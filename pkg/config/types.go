package config

import "time"

// Client represents the full config for one LessWrong API client
type Client struct {
	Endpoint  string            `yaml:"endpoint"`             // GraphQL endpoint URL
	Timeout   *time.Duration    `yaml:"timeout,omitempty"`    // Per-request timeout, 0 disables, unset means DefaultTimeout
	UserAgent string            `yaml:"user_agent,omitempty"` // User-Agent header value
	Headers   map[string]string `yaml:"headers,omitempty"`    // Extra HTTP headers
	LogLevel  string            `yaml:"log_level,omitempty"`  // debug, info, warn, error
}

// Defaults used when a field is left empty
const (
	DefaultEndpoint  = "https://www.lesswrong.com/graphql"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "lesswrong-api-go/1.0"
	DefaultLogLevel  = "info"
)

// LogLevels lists the accepted log_level values
var LogLevels = []string{"debug", "info", "warn", "error"}
