package domain

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultTimeoutMs is the request timeout used when none is configured.
const DefaultTimeoutMs = 30000

// Config is the immutable configuration snapshot for one fix invocation.
type Config struct {
	Endpoint    string `yaml:"endpoint"     json:"endpoint"`
	TimeoutMs   int    `yaml:"timeout_ms"   json:"timeout_ms"`
	Verbose     bool   `yaml:"verbose"      json:"verbose"`
	DiffPreview bool   `yaml:"diff_preview" json:"diff_preview"`
}

// ConfigOverrides is one configuration layer. Pointer types distinguish
// "not specified" from zero values.
type ConfigOverrides struct {
	Endpoint    *string `yaml:"endpoint,omitempty"     toml:"endpoint"     json:"endpoint,omitempty"`
	TimeoutMs   *int    `yaml:"timeout_ms,omitempty"   toml:"timeout_ms"   json:"timeout_ms,omitempty"`
	Verbose     *bool   `yaml:"verbose,omitempty"      toml:"verbose"      json:"verbose,omitempty"`
	DiffPreview *bool   `yaml:"diff_preview,omitempty" toml:"diff_preview" json:"diff_preview,omitempty"`
}

// DefaultConfig returns the built-in defaults. There is no default endpoint.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:   DefaultTimeoutMs,
		DiffPreview: true,
	}
}

// Apply overlays the specified fields of o on c.
func (c Config) Apply(o ConfigOverrides) Config {
	if o.Endpoint != nil {
		c.Endpoint = *o.Endpoint
	}
	if o.TimeoutMs != nil {
		c.TimeoutMs = *o.TimeoutMs
	}
	if o.Verbose != nil {
		c.Verbose = *o.Verbose
	}
	if o.DiffPreview != nil {
		c.DiffPreview = *o.DiffPreview
	}
	return c
}

// Timeout returns TimeoutMs as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Validate checks value ranges. A missing endpoint is not a validation error
// here; the fix client reports it when a request is attempted.
func (c Config) Validate() error {
	if c.TimeoutMs <= 0 {
		return NewConfigError(fmt.Sprintf("timeout_ms must be positive, got %d", c.TimeoutMs), nil)
	}
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return NewConfigError(fmt.Sprintf("invalid endpoint %q", c.Endpoint), err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return NewConfigError(fmt.Sprintf("endpoint %q must be an http(s) URL", c.Endpoint), nil)
		}
	}
	return nil
}
