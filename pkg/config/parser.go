package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrToph/lesswrong-api/pkg/errors"
)

type ValidationError struct {
	Field   string
	Message string
}

type Validator interface {
	Validate(config interface{}) []ValidationError
}

// Returns the string representation of validation error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultValueSetter Handles the interface for setting default values
type DefaultValueSetter interface {
	SetDefaults(config interface{})
}

// VariableExpander defines the interface for expanding variables
type VariableExpander interface {
	Expand(data []byte) []byte
}

// EnvExpander implements VariableExpander using environment variables
type EnvExpander struct{}

// Expand expands environment variables with the given data
func (e *EnvExpander) Expand(data []byte) []byte {
	expanded := os.Expand(string(data), os.Getenv)
	return []byte(expanded)
}

// ClientLoader loads Client configurations
type ClientLoader struct {
	expander      VariableExpander
	validators    []Validator
	defaultSetter DefaultValueSetter
}

// NewClientLoader creates a new ClientLoader with the given components
func NewClientLoader(
	expander VariableExpander,
	defaultSetter DefaultValueSetter,
	validators ...Validator,
) *ClientLoader {
	return &ClientLoader{
		expander:      expander,
		validators:    validators,
		defaultSetter: defaultSetter,
	}
}

// DefaultLoader expands env vars, fills defaults and runs every validator.
func DefaultLoader() *ClientLoader {
	return NewClientLoader(&EnvExpander{}, &ClientDefaults{}, &RequiredFieldValidator{})
}

// Load a client config from YAML file
func (l *ClientLoader) Load(path string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "failed to read file")
	}

	return l.Parse(data)
}

// Parse parses a yaml config
func (l *ClientLoader) Parse(data []byte) (*Client, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var cfg Client
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "failed to parse YAML")
	}

	if l.defaultSetter != nil {
		l.defaultSetter.SetDefaults(&cfg)
	}

	var allErrors []ValidationError
	for _, validator := range l.validators {
		allErrors = append(allErrors, validator.Validate(&cfg)...)
	}

	if len(allErrors) > 0 {
		msgs := make([]string, 0, len(allErrors))
		for _, e := range allErrors {
			msgs = append(msgs, e.Error())
		}
		return nil, errors.WrapError(nil, errors.ErrConfiguration, "validation errors: "+strings.Join(msgs, "; "))
	}

	return &cfg, nil
}

// ClientDefaults implements DefaultValueSetter for Client
type ClientDefaults struct{}

// SetDefaults sets default values for Client
func (d *ClientDefaults) SetDefaults(config interface{}) {
	cfg, ok := config.(*Client)
	if !ok {
		return
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == nil {
		timeout := DefaultTimeout
		cfg.Timeout = &timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// RequiredFieldValidator validates required fields of the client config
type RequiredFieldValidator struct{}

// Validate checks endpoint, timeout and log level
func (v *RequiredFieldValidator) Validate(config interface{}) []ValidationError {
	cfg, ok := config.(*Client)
	if !ok {
		return []ValidationError{{Field: "config", Message: "not a Client"}}
	}

	var errs []ValidationError

	if cfg.Endpoint == "" {
		errs = append(errs, ValidationError{Field: "endpoint", Message: "is required"})
	} else if u, err := url.Parse(cfg.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{Field: "endpoint", Message: "must be an absolute http(s) URL"})
	}

	if cfg.Timeout != nil && *cfg.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "timeout", Message: "must not be negative"})
	}

	if cfg.LogLevel != "" && !knownLevel(cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level %q, want one of %s", cfg.LogLevel, strings.Join(LogLevels, ", ")),
		})
	}

	return errs
}

func knownLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}
