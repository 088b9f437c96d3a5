package httpclient

import (
	"fmt"
	"net/url"
	"time"
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths. Required.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the request timeout. Zero leaves the transport default
	// in place (no client-side deadline).
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if _, ok := c.Headers["Accept"]; !ok {
		c.Headers["Accept"] = "application/json"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base_url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("httpclient: invalid base_url: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("httpclient: timeout must not be negative")
	}
	return nil
}
